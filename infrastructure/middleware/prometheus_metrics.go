// Package middleware provides cross-cutting observability for the rating
// engine: a Prometheus MetricsCollector and solver decorators for metrics
// and distributed tracing.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/thermalab/hxcore/internal/ports"
)

var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It backs the solver decorator, the property-lookup
// middleware, and the metrics diagnostics sink.
type PrometheusMetrics struct {
	latency    *prometheus.HistogramVec
	counters   *prometheus.CounterVec
	gauges     *prometheus.GaugeVec
	histograms *prometheus.HistogramVec
}

// NewPrometheusMetrics creates a PrometheusMetrics instance and registers
// its collectors with the given registerer. Pass prometheus.DefaultRegisterer
// for the process-global registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hx_operation_duration_seconds",
				Help:    "Execution time of engine operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "fluid", "arrangement"},
		),
		counters: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hx_events_total",
				Help: "Count of engine events such as solves, lookups and warnings.",
			},
			[]string{"metric", "fluid", "arrangement", "correlation", "side", "status"},
		),
		gauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hx_state",
				Help: "Current engine state values.",
			},
			[]string{"metric"},
		),
		histograms: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hx_values",
				Help:    "Distributions of engine quantities such as duty and effectiveness.",
				Buckets: prometheus.ExponentialBuckets(1, 10, 10),
			},
			[]string{"metric", "arrangement"},
		),
	}
}

// RecordLatency implements the MetricsCollector interface.
func (pm *PrometheusMetrics) RecordLatency(
	operation string, duration time.Duration, labels map[string]string,
) {
	pm.latency.WithLabelValues(
		operation, labels["fluid"], labels["arrangement"],
	).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	pm.counters.WithLabelValues(
		metric, labels["fluid"], labels["arrangement"],
		labels["correlation"], labels["side"], labels["status"],
	).Add(value)
}

// RecordGauge implements the MetricsCollector interface.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, _ map[string]string,
) {
	pm.gauges.WithLabelValues(metric).Set(value)
}

// RecordHistogram implements the MetricsCollector interface.
func (pm *PrometheusMetrics) RecordHistogram(
	metric string, value float64, labels map[string]string,
) {
	pm.histograms.WithLabelValues(metric, labels["arrangement"]).Observe(value)
}
