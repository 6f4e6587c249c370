package todo

import "todo-api/internal/domain/entity"

// DTO is the wire representation of a todo.
type DTO struct {
	ID        string `json:"id" example:"1"`
	Title     string `json:"title" example:"Buy milk"`
	Completed bool   `json:"completed" example:"false"`
}

// CreateRequest is the body of POST /todos.
type CreateRequest struct {
	Title     *string `json:"title" example:"Buy milk"`
	Completed *bool   `json:"completed,omitempty" example:"false"`
}

// UpdateRequest is the body of PUT /todos/{id}. Omitted fields are left unchanged.
type UpdateRequest struct {
	Title     *string `json:"title,omitempty" example:"Buy oat milk"`
	Completed *bool   `json:"completed,omitempty" example:"true"`
}

func toDTO(t entity.Todo) DTO {
	return DTO{ID: t.ID, Title: t.Title, Completed: t.Completed}
}

func toDTOs(todos []entity.Todo) []DTO {
	out := make([]DTO, 0, len(todos))
	for _, t := range todos {
		out = append(out, toDTO(t))
	}
	return out
}
