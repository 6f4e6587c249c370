package todo

import (
	"net/http"

	"todo-api/internal/handler/http/respond"
	todoUC "todo-api/internal/usecase/todo"
)

type CreateHandler struct{ Svc *todoUC.Service }

// ServeHTTP TODO作成
// @Summary      TODO作成
// @Description  新しいTODOを作成します。IDはサーバー側で採番されます
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        todo body CreateRequest true "作成するTODO"
// @Success      201 {object} DTO "Created"
// @Failure      422 {object} respond.ErrorBody "Validation failed"
// @Router       /todos [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == nil {
		respond.Validation(w, respond.FieldError{Field: "title", Message: "field required"})
		return
	}

	in := todoUC.CreateInput{Title: *req.Title}
	if req.Completed != nil {
		in.Completed = *req.Completed
	}

	created, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, "", err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created))
}
