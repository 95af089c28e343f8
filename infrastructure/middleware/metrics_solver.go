package middleware

import (
	"context"
	"time"

	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

var _ ports.Solver = (*MeteredSolver)(nil)

// MeteredSolver decorates a Solver with latency and outcome metrics. The
// wrapped solve is untouched; instrumentation failures cannot alter the
// result.
type MeteredSolver struct {
	next    ports.Solver
	metrics ports.MetricsCollector
}

// NewMeteredSolver wraps next with metrics recording.
func NewMeteredSolver(next ports.Solver, metrics ports.MetricsCollector) *MeteredSolver {
	return &MeteredSolver{next: next, metrics: metrics}
}

// Solve forwards the call and records duration, outcome, duty and
// effectiveness, labeled by flow arrangement.
func (m *MeteredSolver) Solve(
	ctx context.Context,
	bundle domain.TubeBundle,
	hot, cold domain.StreamState,
	opts domain.SolveOptions,
) (*domain.HXResult, error) {
	start := time.Now()
	result, err := m.next.Solve(ctx, bundle, hot, cold, opts)

	labels := map[string]string{"arrangement": bundle.Arrangement.String()}
	m.metrics.RecordLatency("solve", time.Since(start), labels)

	if err != nil {
		labels["status"] = "error"
		m.metrics.RecordCounter("solves_total", 1, labels)
		return nil, err
	}

	labels["status"] = "ok"
	m.metrics.RecordCounter("solves_total", 1, labels)
	if n := len(result.Warnings); n > 0 {
		m.metrics.RecordCounter("solve_warnings_total", float64(n), labels)
	}
	m.metrics.RecordHistogram("duty_watts", result.Thermal.Q, labels)
	m.metrics.RecordHistogram("effectiveness", result.Thermal.Effectiveness, labels)
	return result, nil
}
