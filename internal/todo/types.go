package todo

import (
	"office-assistant/internal/model"
	"office-assistant/internal/similarity"
)

// CreateInput is the input for creating a todo item.
type CreateInput struct {
	Content string
}

// CreateOutput is the result of an unconditional create.
type CreateOutput struct {
	Item model.TodoItem
}

// SmartCreateOutput is the result of a duplicate-checked create.
// Created is false when Duplicates is non-empty.
type SmartCreateOutput struct {
	Created    bool
	Item       model.TodoItem
	Duplicates []similarity.Match
}

// ListOutput is the result of listing a user's items.
type ListOutput struct {
	Pending   []model.TodoItem
	Completed []model.TodoItem
}

// CompleteInput names items by their 1-based positions in the pending
// list shown to the user.
type CompleteInput struct {
	Indices []int
}

// CompleteOutput reports which items were completed and which indices
// were out of range.
type CompleteOutput struct {
	Completed      []model.TodoItem
	InvalidIndices []int
}
