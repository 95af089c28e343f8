package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

var _ ports.Solver = (*TracedSolver)(nil)

// tracerName identifies this instrumentation scope.
const tracerName = "hxcore/solver"

// TracedSolver decorates a Solver with an OpenTelemetry span per solve,
// carrying geometry and outcome attributes plus one event per
// applicability warning.
type TracedSolver struct {
	next   ports.Solver
	tracer trace.Tracer
}

// NewTracedSolver wraps next with tracing.
func NewTracedSolver(next ports.Solver) *TracedSolver {
	return &TracedSolver{next: next, tracer: otel.Tracer(tracerName)}
}

// Solve runs the wrapped solve inside a span.
func (t *TracedSolver) Solve(
	ctx context.Context,
	bundle domain.TubeBundle,
	hot, cold domain.StreamState,
	opts domain.SolveOptions,
) (*domain.HXResult, error) {
	ctx, span := t.tracer.Start(ctx, "Engine.Solve", trace.WithAttributes(
		attribute.String("hx.arrangement", bundle.Arrangement.String()),
		attribute.Int("hx.passes", bundle.PassCount()),
		attribute.Int("hx.tubes", bundle.TubeCount()),
		attribute.String("hx.hot_fluid", hot.FluidID),
		attribute.String("hx.cold_fluid", cold.FluidID),
	))
	defer span.End()

	result, err := t.next.Solve(ctx, bundle, hot, cold, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Float64("hx.duty_watts", result.Thermal.Q),
		attribute.Float64("hx.effectiveness", result.Thermal.Effectiveness),
		attribute.Float64("hx.ntu", result.Thermal.NTU),
		attribute.Float64("hx.tube_dp_pa", result.Hydraulic.TubeTotal),
	)
	for _, w := range result.Warnings {
		span.AddEvent("correlation.out_of_range", trace.WithAttributes(
			attribute.String("correlation", w.Correlation),
			attribute.String("side", w.Side),
			attribute.Float64("reynolds", w.Reynolds),
		))
	}
	return result, nil
}
