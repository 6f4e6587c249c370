package todo

import (
	"net/http"

	"todo-api/internal/handler/http/respond"
	todoUC "todo-api/internal/usecase/todo"
)

type ListHandler struct{ Svc *todoUC.Service }

// ServeHTTP TODO一覧取得
// @Summary      TODO一覧取得
// @Description  すべてのTODOをID昇順で返します
// @Tags         todos
// @Produce      json
// @Success      200 {array} DTO "OK"
// @Router       /todos [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, toDTOs(h.Svc.List(r.Context())))
}
