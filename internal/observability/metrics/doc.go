// Package metrics provides the Prometheus collectors exported by the service.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (count, duration, in-flight)
//   - Business metrics (stored todos)
//   - Go runtime and process metrics via NewRegistry
//
// Collectors are registered on an explicit registry rather than the global
// default one and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "todo-api/internal/observability/metrics"
//
//	func main() {
//	    reg := metrics.NewRegistry()
//	    m := metrics.New(reg)
//	    m.RecordHTTPRequest("GET", "/todos/{id}", 200, 3*time.Millisecond)
//	}
package metrics
