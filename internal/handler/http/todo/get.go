package todo

import (
	"net/http"

	"todo-api/internal/handler/http/respond"
	todoUC "todo-api/internal/usecase/todo"
)

type GetHandler struct{ Svc *todoUC.Service }

// ServeHTTP TODO取得
// @Summary      TODO取得
// @Description  指定IDのTODOを返します
// @Tags         todos
// @Produce      json
// @Param        id path string true "TODO ID"
// @Success      200 {object} DTO "OK"
// @Failure      404 {object} respond.ErrorBody "Not found"
// @Router       /todos/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	found, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, id, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(found))
}
