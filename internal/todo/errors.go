package todo

import "errors"

// Domain-specific errors for the todo package.
var (
	ErrEmptyContent = errors.New("todo content is empty")
	ErrNoIndices    = errors.New("no item indices given")
	ErrNotFound     = errors.New("todo item not found")
)
