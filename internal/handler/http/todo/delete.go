package todo

import (
	"net/http"

	todoUC "todo-api/internal/usecase/todo"
)

type DeleteHandler struct{ Svc *todoUC.Service }

// ServeHTTP TODO削除
// @Summary      TODO削除
// @Description  指定IDのTODOを削除します
// @Tags         todos
// @Param        id path string true "TODO ID"
// @Success      204 "No Content"
// @Failure      404 {object} respond.ErrorBody "Not found"
// @Router       /todos/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
