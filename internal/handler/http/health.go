// Package http provides HTTP handlers and middleware for the web application.
// It includes the health, root and metrics endpoints and the middleware chain
// that adds request IDs, access logs, metrics, tracing and panic recovery.
package http

import (
	"net/http"
	"time"

	"todo-api/internal/handler/http/respond"
)

// HealthTimestampLayout renders UTC instants with microsecond precision and a
// trailing Z, for example 2024-05-01T12:00:00.123456Z.
const HealthTimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// HealthResponse represents the JSON response for the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`    // always "healthy" while the process serves requests
	Timestamp string `json:"timestamp"` // ISO 8601, UTC
}

// HealthHandler handles health check endpoint requests.
// The service has no external dependencies, so a response means healthy.
type HealthHandler struct {
	// Now defaults to time.Now.
	Now func() time.Time
}

// ServeHTTP returns 200 OK with the current UTC time.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: now().UTC().Format(HealthTimestampLayout),
	})
}

// RootResponse is returned by GET /.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// RootHandler reports that the API is up and which version is running.
type RootHandler struct {
	Version string
}

// ServeHTTP writes the banner. Only the exact root path is served; anything
// else reaching this handler is 404.
func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respond.JSON(w, http.StatusNotFound, respond.ErrorBody{Error: "not found"})
		return
	}
	respond.JSON(w, http.StatusOK, RootResponse{
		Message: "TODO API is running",
		Version: h.Version,
	})
}
