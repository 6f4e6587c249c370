// Package todo provides the HTTP handlers for the todo CRUD endpoints.
package todo

import (
	"net/http"

	todoUC "todo-api/internal/usecase/todo"
)

// Register registers all todo-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *todoUC.Service) {
	mux.Handle("POST   /todos", CreateHandler{svc})
	mux.Handle("GET    /todos", ListHandler{svc})
	mux.Handle("GET    /todos/{id}", GetHandler{svc})
	mux.Handle("PUT    /todos/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /todos/{id}", DeleteHandler{svc})
}
