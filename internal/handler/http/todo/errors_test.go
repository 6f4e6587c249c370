package todo

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-api/internal/domain/entity"
	todoUC "todo-api/internal/usecase/todo"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "not found names the id",
			err:      fmt.Errorf("get todo: %w", todoUC.ErrTodoNotFound),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"todo with id '42' not found"}`,
		},
		{
			name:     "validation error carries field detail",
			err:      fmt.Errorf("update todo: %w", &entity.ValidationError{Field: "title", Message: "must not be empty"}),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"error":"validation failed","details":[{"field":"title","message":"must not be empty"}]}`,
		},
		{
			name:     "unexpected error is masked",
			err:      errors.New("store corrupted at 0xdeadbeef"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeServiceError(rr, "42", tt.err)

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.NotContains(t, rr.Body.String(), "deadbeef")
		})
	}
}
