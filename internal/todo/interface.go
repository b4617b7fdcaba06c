package todo

import (
	"context"

	"office-assistant/internal/model"
)

// UseCase defines the business logic interface for the todo domain.
type UseCase interface {
	// Create adds a todo item without duplicate checking.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// SmartCreate adds a todo item after checking pending items for
	// near-duplicates. When candidates are found the item is NOT
	// created; the caller must surface the candidates for user
	// confirmation.
	SmartCreate(ctx context.Context, sc model.Scope, input CreateInput) (SmartCreateOutput, error)

	// List returns the user's todo items, pending first.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)

	// Complete marks items by their 1-based positions in the pending
	// list, as displayed to the user.
	Complete(ctx context.Context, sc model.Scope, input CompleteInput) (CompleteOutput, error)

	// Stats summarizes item counts by status.
	Stats(ctx context.Context, sc model.Scope) (model.TodoStats, error)
}
