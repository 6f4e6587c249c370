// Package observability groups the service's structured logging, Prometheus
// metrics and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus collectors bound to an explicit registry
//   - tracing: OpenTelemetry tracer provider and HTTP middleware
package observability
