package repository

import (
	"context"
	"errors"

	"office-assistant/internal/model"
)

// ErrNotFound is returned when no item matches the given ID for the
// user.
var ErrNotFound = errors.New("todo item not found")

// TodoRepository is the interface for todo item storage.
type TodoRepository interface {
	Create(ctx context.Context, item model.TodoItem) (model.TodoItem, error)
	ListByUser(ctx context.Context, userMail string) ([]model.TodoItem, error)
	ListPending(ctx context.Context, userMail string) ([]model.TodoItem, error)
	UpdateStatus(ctx context.Context, userMail, id string, status model.TodoStatus) (model.TodoItem, error)
}
