// Package observability provides Prometheus instrumentation for the service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the tide service.
type Metrics struct {
	// Core computation metrics.
	PointsSynthesized prometheus.Counter
	ExtremaDetected   prometheus.Counter

	// HTTP metrics, labelled by route and status code.
	Requests        *prometheus.CounterVec   // labels: path, code
	RequestDuration *prometheus.HistogramVec // labels: path
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.PointsSynthesized,
		m.ExtremaDetected,
		m.Requests,
		m.RequestDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		PointsSynthesized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tide_app",
			Name:      "points_synthesized_total",
			Help:      "Total level samples computed by the harmonic synthesizer.",
		}),
		ExtremaDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tide_app",
			Name:      "extrema_detected_total",
			Help:      "Total high/low tide events reported.",
		}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tide_app",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"path", "code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tide_app",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"path"}),
	}
}
