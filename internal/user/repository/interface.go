package repository

import (
	"context"
	"errors"

	"office-assistant/internal/model"
)

// ErrNotFound is returned when no profile exists for the mail.
var ErrNotFound = errors.New("user profile not found")

// UserRepository is the interface for user profile storage, keyed by
// mail address.
type UserRepository interface {
	Get(ctx context.Context, mail string) (model.UserProfile, error)
	Upsert(ctx context.Context, profile model.UserProfile) (model.UserProfile, error)
}
