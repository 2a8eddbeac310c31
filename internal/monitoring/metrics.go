// Package monitoring exposes Prometheus metrics for the HTTP surface and the
// extraction pipeline.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Extraction metrics
	ExtractionsTotal   *prometheus.CounterVec
	ExtractionDuration *prometheus.HistogramVec
	ExtractionErrors   *prometheus.CounterVec

	startTime time.Time
}

// NewMetrics creates a metrics collector. Call at most once per process;
// promauto registers with the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quarry_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quarry_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quarry_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),
		ResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quarry_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),

		ExtractionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quarry_extractions_total",
				Help: "Total number of extraction calls",
			},
			[]string{"engine", "status"},
		),
		ExtractionDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quarry_extraction_duration_seconds",
				Help:    "Extraction call duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"engine"},
		),
		ExtractionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quarry_extraction_errors_total",
				Help: "Total number of extraction errors by kind",
			},
			[]string{"engine", "kind"},
		),
	}
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))
}

// RecordExtraction records one extraction call.
func (m *Metrics) RecordExtraction(engine, status string, duration time.Duration) {
	m.ExtractionsTotal.WithLabelValues(engine, status).Inc()
	m.ExtractionDuration.WithLabelValues(engine).Observe(duration.Seconds())
}

// RecordExtractionError records one failed extraction by error kind.
func (m *Metrics) RecordExtractionError(engine, kind string) {
	m.ExtractionErrors.WithLabelValues(engine, kind).Inc()
}

// Uptime reports how long the collector has been alive.
func (m *Metrics) Uptime() time.Duration {
	return time.Since(m.startTime)
}
