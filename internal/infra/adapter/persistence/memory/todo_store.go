// Package memory provides an in-memory implementation of the todo repository.
package memory

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"todo-api/internal/domain/entity"
	"todo-api/internal/repository"
)

var _ repository.TodoRepository = (*TodoStore)(nil)

// TodoStore is a thread-safe in-memory todo store.
//
// IDs come from a monotonic counter and are never reused, even after a delete.
// The counter and the map are always changed together under mu, so no caller
// can observe an assigned ID without its record.
type TodoStore struct {
	mu      sync.Mutex
	todos   map[string]entity.Todo
	counter uint64
}

// NewTodoStore creates an empty store whose first ID will be "1".
func NewTodoStore() *TodoStore {
	return &TodoStore{todos: make(map[string]entity.Todo)}
}

// Create assigns the next ID, stores the todo and returns a copy.
func (s *TodoStore) Create(title string, completed bool) entity.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	todo := entity.Todo{
		ID:        strconv.FormatUint(s.counter, 10),
		Title:     title,
		Completed: completed,
	}
	s.todos[todo.ID] = todo
	return todo
}

// Get returns the todo with the given ID.
// The second result is false when no such todo exists.
func (s *TodoStore) Get(id string) (entity.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	return todo, ok
}

// List returns a snapshot of all todos ordered by ascending ID.
// It never returns nil.
func (s *TodoStore) List() []entity.Todo {
	s.mu.Lock()
	out := make([]entity.Todo, 0, len(s.todos))
	for _, todo := range s.todos {
		out = append(out, todo)
	}
	s.mu.Unlock()

	slices.SortFunc(out, func(a, b entity.Todo) int {
		return compareIDs(a.ID, b.ID)
	})
	return out
}

// Update applies the non-nil fields of patch to the todo with the given ID.
// When the todo does not exist nothing is changed and false is returned.
func (s *TodoStore) Update(id string, patch entity.TodoPatch) (entity.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok {
		return entity.Todo{}, false
	}
	todo = patch.Apply(todo)
	s.todos[id] = todo
	return todo, true
}

// Delete removes the todo with the given ID and reports whether it existed.
func (s *TodoStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return false
	}
	delete(s.todos, id)
	return true
}

// Count returns the number of stored todos.
func (s *TodoStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.todos)
}

// Clear removes every todo and resets the ID counter.
// It exists for tests and fresh starts; no HTTP route reaches it.
func (s *TodoStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.todos)
	s.counter = 0
}

// compareIDs orders decimal IDs numerically. IDs never carry leading zeros,
// so a shorter ID is always the smaller one.
func compareIDs(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}
