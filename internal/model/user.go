package model

import "time"

// UserProfile is the directory record for one employee, keyed by mail.
// PreferredModel is empty until the user switches models explicitly.
type UserProfile struct {
	Mail           string
	Name           string
	Department     string
	JobTitle       string
	PreferredModel string
	LastActiveAt   time.Time
}
