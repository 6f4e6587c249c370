package todo

import (
	"errors"
	"fmt"
	"net/http"

	"todo-api/internal/domain/entity"
	"todo-api/internal/handler/http/respond"
	todoUC "todo-api/internal/usecase/todo"
)

// writeServiceError maps use case errors to HTTP responses.
func writeServiceError(w http.ResponseWriter, id string, err error) {
	var ve *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		respond.Validation(w, respond.FieldError{Field: ve.Field, Message: ve.Message})
	case errors.Is(err, todoUC.ErrTodoNotFound):
		respond.WriteError(w, http.StatusNotFound,
			respond.NewAppError(http.StatusNotFound, fmt.Sprintf("todo with id '%s' not found", id), err))
	default:
		respond.WriteError(w, http.StatusInternalServerError, err)
	}
}
