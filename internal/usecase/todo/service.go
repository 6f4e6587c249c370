package todo

import (
	"context"
	"fmt"
	"log/slog"

	"todo-api/internal/domain/entity"
	"todo-api/internal/observability/logging"
	"todo-api/internal/repository"
)

// CreateInput represents the input parameters for creating a new todo.
type CreateInput struct {
	Title     string
	Completed bool
}

// UpdateInput represents the input parameters for updating an existing todo.
// Nil fields are left unchanged.
type UpdateInput struct {
	ID        string
	Title     *string
	Completed *bool
}

// Service provides todo management use cases.
type Service struct {
	Repo repository.TodoRepository
}

// Create validates the input and stores a new todo.
// Returns a ValidationError if the title is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (entity.Todo, error) {
	if err := entity.ValidateTitle(in.Title); err != nil {
		return entity.Todo{}, fmt.Errorf("create todo: %w", err)
	}

	todo := s.Repo.Create(in.Title, in.Completed)
	todoLogger(ctx, todo.ID).Debug("todo created")
	return todo, nil
}

// List returns every todo. The result is never nil.
func (s *Service) List(_ context.Context) []entity.Todo {
	return s.Repo.List()
}

// Get returns the todo with the given ID or ErrTodoNotFound.
func (s *Service) Get(_ context.Context, id string) (entity.Todo, error) {
	todo, ok := s.Repo.Get(id)
	if !ok {
		return entity.Todo{}, ErrTodoNotFound
	}
	return todo, nil
}

// Update applies the provided fields to an existing todo.
// Returns ErrTodoNotFound if the todo does not exist.
// Returns a ValidationError if the new title is invalid.
func (s *Service) Update(ctx context.Context, in UpdateInput) (entity.Todo, error) {
	patch := entity.TodoPatch{Title: in.Title, Completed: in.Completed}
	if err := patch.Validate(); err != nil {
		return entity.Todo{}, fmt.Errorf("update todo: %w", err)
	}

	// Nothing to change: read instead of taking the write path.
	if patch.IsEmpty() {
		todo, ok := s.Repo.Get(in.ID)
		if !ok {
			return entity.Todo{}, ErrTodoNotFound
		}
		todoLogger(ctx, todo.ID).Debug("todo update without fields")
		return todo, nil
	}

	todo, ok := s.Repo.Update(in.ID, patch)
	if !ok {
		return entity.Todo{}, ErrTodoNotFound
	}
	todoLogger(ctx, todo.ID).Debug("todo updated",
		slog.Bool("title_changed", in.Title != nil),
		slog.Bool("completed_changed", in.Completed != nil))
	return todo, nil
}

// Delete removes a todo by its ID.
// Returns ErrTodoNotFound if the todo does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.Repo.Delete(id) {
		return ErrTodoNotFound
	}
	todoLogger(ctx, id).Debug("todo deleted")
	return nil
}

// todoLogger returns the request's logger tagged with the request and todo IDs.
func todoLogger(ctx context.Context, todoID string) *slog.Logger {
	return logging.WithFields(logging.WithRequestID(ctx, logging.FromContext(ctx)),
		map[string]any{"todo_id": todoID})
}
