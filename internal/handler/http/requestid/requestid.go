// Package requestid provides middleware and utilities for managing HTTP request IDs.
// It assigns one ID per request so log records and responses can be correlated.
package requestid

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// RequestIDKey is the context key for storing request IDs.
	RequestIDKey contextKey = "request_id"
	// RequestIDHeader is the HTTP header name for request IDs.
	RequestIDHeader = "X-Request-ID"

	stateKey contextKey = "request_state"
)

// State is request-scoped storage for the request ID.
//
// Middleware that runs before Middleware (and therefore cannot see the
// context it derives) installs a State with WithState and reads it back
// once the downstream chain has returned. The ID is set at most once.
type State struct {
	id atomic.Pointer[string]
}

// ID returns the established request ID, or "" if none was set yet.
func (s *State) ID() string {
	if p := s.id.Load(); p != nil {
		return *p
	}
	return ""
}

// establish records id unless an ID is already present.
func (s *State) establish(id string) bool {
	return s.id.CompareAndSwap(nil, &id)
}

// WithState returns a context carrying a new, empty State.
func WithState(ctx context.Context) (context.Context, *State) {
	st := &State{}
	return context.WithValue(ctx, stateKey, st), st
}

// StateFromContext returns the State installed by WithState, or nil.
func StateFromContext(ctx context.Context) *State {
	st, _ := ctx.Value(stateKey).(*State)
	return st
}

// FromContext retrieves the request ID from the context.
// Returns an empty string if no request ID is found.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	if st := StateFromContext(ctx); st != nil {
		return st.ID()
	}
	return ""
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Middleware generates or propagates request IDs for HTTP requests.
// If an X-Request-ID header exists, it uses that value; otherwise, it generates a new UUID v4.
// The ID is stored in the request context and any request State, and the
// response header is set before the next handler runs so that every
// response, including error responses, carries it.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := WithRequestID(r.Context(), requestID)
		if st := StateFromContext(ctx); st != nil {
			st.establish(requestID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
