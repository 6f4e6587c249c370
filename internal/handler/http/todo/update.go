package todo

import (
	"net/http"

	"todo-api/internal/handler/http/respond"
	todoUC "todo-api/internal/usecase/todo"
)

type UpdateHandler struct{ Svc *todoUC.Service }

// ServeHTTP TODO更新
// @Summary      TODO更新
// @Description  指定されたフィールドのみ更新します。省略したフィールドは変更されません
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id path string true "TODO ID"
// @Param        todo body UpdateRequest true "更新するフィールド"
// @Success      200 {object} DTO "OK"
// @Failure      404 {object} respond.ErrorBody "Not found"
// @Failure      422 {object} respond.ErrorBody "Validation failed"
// @Router       /todos/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.Svc.Update(r.Context(), todoUC.UpdateInput{
		ID: id, Title: req.Title, Completed: req.Completed,
	})
	if err != nil {
		writeServiceError(w, id, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(updated))
}
