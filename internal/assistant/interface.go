package assistant

import (
	"context"

	"office-assistant/internal/model"
)

// UseCase defines the business logic interface for the assistant.
type UseCase interface {
	// ProcessMessage routes one user message through intent
	// classification to the matching workflow and returns the reply
	// text. Failures never surface as errors; the reply degrades to
	// general conversation or a friendly notice instead.
	ProcessMessage(ctx context.Context, sc model.Scope, text string) string

	// WelcomeMessage greets a user added to a conversation.
	WelcomeMessage(sc model.Scope) string
}
