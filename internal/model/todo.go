package model

import "time"

// TodoStatus is the lifecycle state of a todo item.
type TodoStatus string

const (
	TodoStatusPending   TodoStatus = "pending"
	TodoStatusCompleted TodoStatus = "completed"
	TodoStatusCancelled TodoStatus = "cancelled"
)

// TodoItem is a single todo entry owned by one user.
type TodoItem struct {
	ID          string
	UserMail    string
	Content     string
	Status      TodoStatus
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// IsPending reports whether the item is still open.
func (t TodoItem) IsPending() bool {
	return t.Status == TodoStatusPending
}

// IsCompleted reports whether the item has been completed.
func (t TodoItem) IsCompleted() bool {
	return t.Status == TodoStatusCompleted
}

// TodoStats summarizes a user's todo counts.
type TodoStats struct {
	Total     int
	Pending   int
	Completed int
	Cancelled int
}
