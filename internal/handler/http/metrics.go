package http

import (
	"net/http"
	"strings"
	"time"

	"todo-api/internal/handler/http/pathutil"
	"todo-api/internal/handler/http/responsewriter"
	"todo-api/internal/observability/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values used when the request itself cannot be trusted as a label.
const (
	OtherMethodLabel   = "OTHER"
	UnmatchedPathLabel = "/{unmatched}"
)

// RouteLookup reports the pattern that would serve a request.
// *http.ServeMux satisfies it.
type RouteLookup interface {
	Handler(r *http.Request) (h http.Handler, pattern string)
}

// MetricsMiddleware records HTTP request metrics for completed responses.
// It uses path normalization to prevent label cardinality explosion from ID-containing paths.
// The middleware tracks:
// - In-flight requests (gauge incremented/decremented per request)
// - Request count by method, path template and status
// - Request duration by method and path template
//
// Methods outside the standard set are recorded as OTHER. When routes is
// non-nil, requests that no route serves are recorded under a single path
// label, as are requests caught by a subtree pattern other than their own
// root. A panic escaping next is not counted; only the in-flight gauge is
// restored.
func MetricsMiddleware(m *metrics.Metrics, routes RouteLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.HTTPRequestsInFlight.Inc()
			defer m.HTTPRequestsInFlight.Dec()

			rw := responsewriter.Wrap(w)

			start := time.Now()
			next.ServeHTTP(rw, r)
			duration := time.Since(start)

			status := rw.StatusCode()
			m.RecordHTTPRequest(methodLabel(r.Method), pathLabel(routes, r, status, rw.Header()), status, duration)
		})
	}
}

var knownMethods = map[string]struct{}{
	http.MethodGet: {}, http.MethodHead: {}, http.MethodPost: {},
	http.MethodPut: {}, http.MethodPatch: {}, http.MethodDelete: {},
	http.MethodConnect: {}, http.MethodOptions: {}, http.MethodTrace: {},
}

func methodLabel(method string) string {
	if _, ok := knownMethods[method]; ok {
		return method
	}
	return OtherMethodLabel
}

// pathLabel returns the bounded path label for r.
// Example: /todos/123 -> /todos/{id}
func pathLabel(routes RouteLookup, r *http.Request, status int, header http.Header) string {
	if routes == nil {
		return pathutil.NormalizePath(r.URL.Path)
	}

	_, pattern := routes.Handler(r)
	if pattern == "" && status == http.StatusMethodNotAllowed {
		// The path is routed for other methods; label it by the most
		// specific of those routes.
		for _, method := range strings.Split(header.Get("Allow"), ",") {
			alt := r.Clone(r.Context())
			alt.Method = strings.TrimSpace(method)
			if _, p := routes.Handler(alt); p != "" {
				if label := routeLabel(p, r.URL.Path); label != UnmatchedPathLabel {
					return label
				}
			}
		}
		return UnmatchedPathLabel
	}
	if pattern == "" {
		return UnmatchedPathLabel
	}
	return routeLabel(pattern, r.URL.Path)
}

// routeLabel maps a matched pattern and request path to a label.
// Subtree patterns label every path below them with the pattern itself, and
// the root subtree only labels "/".
func routeLabel(pattern, path string) string {
	// Drop the method and host parts: "GET /swagger/" -> "/swagger/".
	if i := strings.Index(pattern, "/"); i >= 0 {
		pattern = pattern[i:]
	}
	if strings.HasSuffix(pattern, "/") && pattern != path {
		if pattern == "/" {
			return UnmatchedPathLabel
		}
		return pattern
	}
	return pathutil.NormalizePath(path)
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint
// serving everything registered with g.
func MetricsHandler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
