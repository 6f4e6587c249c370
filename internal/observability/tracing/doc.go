// Package tracing provides OpenTelemetry tracing integration.
//
// Setup installs the global tracer provider, optionally exporting spans to
// stdout. Middleware starts one server span per HTTP request and returns the
// trace ID in the X-Trace-Id response header so clients can correlate their
// requests with server logs.
//
// Example usage:
//
//	import "todo-api/internal/observability/tracing"
//
//	func main() {
//	    shutdown, err := tracing.Setup(tracing.Options{ServiceName: "todo-api"})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer shutdown(context.Background())
//	}
package tracing
