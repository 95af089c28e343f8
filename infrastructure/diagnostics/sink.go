// Package diagnostics provides DiagnosticsSink implementations for the
// applicability advisories raised by the correlation layer.
// Sinks are fire-and-forget by contract: none of them blocks, and none
// can fail a solve.
package diagnostics

import (
	"context"
	"sync"

	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

var (
	_ ports.DiagnosticsSink = (*NopSink)(nil)
	_ ports.DiagnosticsSink = (*CollectorSink)(nil)
	_ ports.DiagnosticsSink = (*MetricsSink)(nil)
)

// NopSink discards every warning.
type NopSink struct{}

// Warn implements DiagnosticsSink by doing nothing.
func (NopSink) Warn(context.Context, domain.ApplicabilityWarning) {}

// CollectorSink accumulates warnings in memory for later inspection,
// typically in tests and engineering review tooling.
type CollectorSink struct {
	mu       sync.Mutex
	warnings []domain.ApplicabilityWarning
}

// NewCollectorSink creates an empty collector.
func NewCollectorSink() *CollectorSink { return &CollectorSink{} }

// Warn appends the warning to the collection.
func (c *CollectorSink) Warn(_ context.Context, w domain.ApplicabilityWarning) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, w)
}

// Warnings returns a copy of everything collected so far.
func (c *CollectorSink) Warnings() []domain.ApplicabilityWarning {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.ApplicabilityWarning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// MetricsSink counts warnings through the MetricsCollector port, labeled by
// correlation and side.
type MetricsSink struct {
	metrics ports.MetricsCollector
}

// NewMetricsSink creates a sink over the given collector.
func NewMetricsSink(metrics ports.MetricsCollector) *MetricsSink {
	return &MetricsSink{metrics: metrics}
}

// Warn increments the warning counter for the correlation and side.
func (s *MetricsSink) Warn(_ context.Context, w domain.ApplicabilityWarning) {
	s.metrics.RecordCounter("applicability_warnings_total", 1, map[string]string{
		"correlation": w.Correlation,
		"side":        w.Side,
	})
}

// FanoutSink forwards each warning to every wrapped sink in order.
type FanoutSink []ports.DiagnosticsSink

// Warn implements DiagnosticsSink.
func (f FanoutSink) Warn(ctx context.Context, w domain.ApplicabilityWarning) {
	for _, sink := range f {
		sink.Warn(ctx, w)
	}
}
