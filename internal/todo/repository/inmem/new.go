package inmem

import (
	"sync"

	"office-assistant/internal/model"
	"office-assistant/internal/todo/repository"
)

// implRepository stores todo items in memory, keyed per user. Item
// order within a user is insertion order.
type implRepository struct {
	mu    sync.RWMutex
	items map[string][]model.TodoItem
}

var _ repository.TodoRepository = (*implRepository)(nil)

// New creates an in-memory todo repository.
func New() *implRepository {
	return &implRepository{
		items: make(map[string][]model.TodoItem),
	}
}
