package inmem

import (
	"context"
	"time"

	"github.com/google/uuid"

	"office-assistant/internal/model"
	"office-assistant/internal/todo/repository"
)

func (r *implRepository) Create(ctx context.Context, item model.TodoItem) (model.TodoItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Status == "" {
		item.Status = model.TodoStatusPending
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	r.items[item.UserMail] = append(r.items[item.UserMail], item)
	return item, nil
}

func (r *implRepository) ListByUser(ctx context.Context, userMail string) ([]model.TodoItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.items[userMail]
	out := make([]model.TodoItem, len(items))
	copy(out, items)
	return out, nil
}

func (r *implRepository) ListPending(ctx context.Context, userMail string) ([]model.TodoItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.TodoItem
	for _, item := range r.items[userMail] {
		if item.IsPending() {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, userMail, id string, status model.TodoStatus) (model.TodoItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.items[userMail]
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Status = status
		if status == model.TodoStatusCompleted {
			now := time.Now()
			items[i].CompletedAt = &now
		}
		return items[i], nil
	}
	return model.TodoItem{}, repository.ErrNotFound
}
