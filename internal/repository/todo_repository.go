package repository

import (
	"todo-api/internal/domain/entity"
)

// TodoRepository stores todo items.
// Absence is reported with a false result, never with an error.
type TodoRepository interface {
	Create(title string, completed bool) entity.Todo
	Get(id string) (entity.Todo, bool)
	List() []entity.Todo
	Update(id string, patch entity.TodoPatch) (entity.Todo, bool)
	Delete(id string) bool
	Count() int
}
