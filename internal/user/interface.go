package user

import (
	"context"

	"office-assistant/internal/model"
)

// UseCase defines the business logic interface for the user domain.
type UseCase interface {
	// GetProfile returns the stored profile, creating a stub from the
	// scope when the user has not been seen before.
	GetProfile(ctx context.Context, sc model.Scope) (model.UserProfile, error)

	// TouchProfile records activity and refreshes identity fields
	// from the scope.
	TouchProfile(ctx context.Context, sc model.Scope) (model.UserProfile, error)

	// SetPreferredModel stores the chat model the user selected.
	SetPreferredModel(ctx context.Context, sc model.Scope, modelName string) (model.UserProfile, error)
}
