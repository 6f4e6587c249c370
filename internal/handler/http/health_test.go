package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_ServeHTTP(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 21, 30, 15, 123456789, time.FixedZone("JST", 9*3600))
	h := &HealthHandler{Now: func() time.Time { return fixed }}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"healthy","timestamp":"2024-05-01T12:30:15.123456Z"}`, rr.Body.String())
}

func TestHealthHandler_RealClock(t *testing.T) {
	h := &HealthHandler{}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)

	ts, err := time.Parse(time.RFC3339Nano, resp.Timestamp)
	require.NoError(t, err, "timestamp must be ISO 8601")
	assert.Equal(t, time.UTC, ts.Location())
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestHealthHandler_CacheControl(t *testing.T) {
	rr := httptest.NewRecorder()
	(&HealthHandler{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, "no-cache, no-store, must-revalidate", rr.Header().Get("Cache-Control"))
}

func TestRootHandler_ServeHTTP(t *testing.T) {
	h := &RootHandler{Version: "1.0.0"}

	t.Run("root path", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"TODO API is running","version":"1.0.0"}`, rr.Body.String())
	})

	t.Run("unknown path", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
