// Package todo provides use cases for managing todo items.
// It validates input and maps store absence to sentinel errors for the HTTP layer.
package todo

import "errors"

// Sentinel errors for todo use case operations.
var (
	// ErrTodoNotFound indicates that the requested todo does not exist.
	ErrTodoNotFound = errors.New("todo not found")
)
