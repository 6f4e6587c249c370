package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DurationBuckets are the latency histogram bucket bounds in seconds.
var DurationBuckets = []float64{.005, .01, .025, .05, .075, .1, .25, .5, .75, 1}

// Metrics holds every collector the service exports. A Metrics value is
// bound to the registry it was created with, so tests can build isolated
// instances without touching the global default registry.
type Metrics struct {
	// HTTPRequestsTotal counts completed HTTP requests by method, path template and status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInFlight tracks requests currently being served
	HTTPRequestsInFlight prometheus.Gauge

	// TodosTotal tracks the number of todos currently stored
	TodosTotal prometheus.Gauge
}

// New creates the service metrics and registers them with reg.
// It panics if any collector is already registered with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: DurationBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		TodosTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "todos_total",
				Help: "Total number of todos in the store",
			},
		),
	}
}

// NewRegistry returns a registry preloaded with the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// RecordHTTPRequest records one completed HTTP request.
// path must already be normalized to a template.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// SetTodosTotal updates the stored todo count gauge.
func (m *Metrics) SetTodosTotal(count int) {
	m.TodosTotal.Set(float64(count))
}
