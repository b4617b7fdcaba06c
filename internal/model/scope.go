package model

// Scope carries the identity of the requesting user through the
// usecase layers. It is built once per inbound message by the delivery
// handler and treated as read-only below it.
type Scope struct {
	UserID         string // Transport-level user ID (Teams "from" ID)
	UserMail       string // Primary key for todos, bookings and profiles
	UserName       string
	ConversationID string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)
