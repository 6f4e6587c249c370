package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"todo-api/internal/handler/http/respond"
)

// decodeJSON reads a single JSON value from the request body into dst.
// On failure it writes the error response and returns false: 413 when the
// body exceeds the configured limit, 422 for anything else.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var (
		maxBytesErr *http.MaxBytesError
		typeErr     *json.UnmarshalTypeError
		syntaxErr   *json.SyntaxError
	)
	switch {
	case errors.As(err, &maxBytesErr):
		respond.Error(w, http.StatusRequestEntityTooLarge,
			fmt.Errorf("request body must not exceed %d bytes", maxBytesErr.Limit))
	case errors.As(err, &typeErr) && typeErr.Field != "":
		respond.Validation(w, respond.FieldError{
			Field:   typeErr.Field,
			Message: "must be a " + jsonKind(typeErr.Type),
		})
	case errors.Is(err, io.EOF):
		respond.Validation(w, respond.FieldError{Field: "body", Message: "request body is required"})
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		respond.Validation(w, respond.FieldError{Field: "body", Message: "request body must be valid JSON"})
	default:
		respond.Validation(w, respond.FieldError{Field: "body", Message: "request body must be a JSON object"})
	}
	return false
}

// jsonKind names Go types the way API clients know them.
func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	default:
		return t.String()
	}
}
