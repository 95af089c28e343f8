// Package application implements the steady-state 0D rating engine: overall
// coefficient composition, the epsilon-NTU thermal core, the itemized
// pressure-drop model, and the surrounding orchestration (options, case
// loading, parametric sweeps).
package application

import (
	"context"
	"fmt"

	"github.com/thermalab/hxcore/infrastructure/correlations"
	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

// Verify interface compliance at compile time.
var _ ports.Solver = (*Engine)(nil)

// Engine is the in-process rating engine. It holds only immutable
// collaborators, keeps no state across calls and performs no I/O of its
// own beyond the synchronous property lookups, so concurrent Solve calls
// need no synchronization.
type Engine struct {
	// props supplies fluid properties; required.
	props ports.PropertyProvider

	// diag receives applicability advisories; optional.
	diag ports.DiagnosticsSink
}

// EngineOption configures optional Engine collaborators.
type EngineOption func(*Engine)

// WithDiagnostics attaches a diagnostics sink that receives applicability
// warnings. Without one, warnings are only attached to results.
func WithDiagnostics(sink ports.DiagnosticsSink) EngineOption {
	return func(e *Engine) { e.diag = sink }
}

// NewEngine creates a rating engine around the given property provider.
func NewEngine(props ports.PropertyProvider, opts ...EngineOption) (*Engine, error) {
	if props == nil {
		return nil, fmt.Errorf("property provider is required")
	}
	e := &Engine{props: props}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Solve rates the exchanger defined by bundle, hot and cold. The data flow
// is fixed: correlation layer derives h_in, h_out and f; the thermal core
// turns UA into NTU, effectiveness, duty and outlet temperatures; the
// hydraulic model itemizes the losses; the aggregator folds everything into
// one immutable HXResult.
func (e *Engine) Solve(
	ctx context.Context,
	bundle domain.TubeBundle,
	hot, cold domain.StreamState,
	opts domain.SolveOptions,
) (*domain.HXResult, error) {
	if !bundle.Arrangement.Valid() {
		return nil, domain.NewThermalModelError("arrangement", string(bundle.Arrangement),
			domain.ErrUnknownArrangement)
	}
	if opts.TubeSide == "" {
		opts.TubeSide = domain.TubeSideHot
	}
	if !opts.TubeSide.Valid() {
		return nil, fmt.Errorf("invalid tube side assignment %q", opts.TubeSide)
	}
	if hot.MassFlow <= 0 {
		return nil, domain.NewFlowStateError(hot.FluidID, domain.ErrNonPositiveMassFlow)
	}
	if cold.MassFlow <= 0 {
		return nil, domain.NewFlowStateError(cold.FluidID, domain.ErrNonPositiveMassFlow)
	}
	if hot.InletTemp < cold.InletTemp {
		return nil, domain.NewThermalModelError("inlet_temperatures",
			fmt.Sprintf("hot=%g K, cold=%g K", hot.InletTemp, cold.InletTemp),
			fmt.Errorf("hot inlet below cold inlet"))
	}

	hotProps, err := e.lookup(ctx, hot)
	if err != nil {
		return nil, err
	}
	coldProps, err := e.lookup(ctx, cold)
	if err != nil {
		return nil, err
	}

	tubeStream, tubeProps := hot, hotProps
	outStream, outProps := cold, coldProps
	tubeHeated := false
	if opts.TubeSide == domain.TubeSideCold {
		tubeStream, tubeProps = cold, coldProps
		outStream, outProps = hot, hotProps
		tubeHeated = true
	}

	// Tube side: representative velocity over the mean pass flow area.
	tube := bundle.Tube
	vTube := correlations.MeanVelocity(tubeStream.MassFlow, tubeProps.Density, bundle.MeanPassFlowArea())
	reTube := correlations.Reynolds(tubeProps.Density, vTube, tube.HydraulicDiameter(), tubeProps.Viscosity)
	prTube := correlations.Prandtl(tubeProps.Cp, tubeProps.Viscosity, tubeProps.Conductivity)

	internal, err := correlations.SelectInternal(reTube, opts.InternalCorrelation)
	if err != nil {
		return nil, err
	}
	nuTube := internal.Evaluate(ports.NusseltRequest{
		Reynolds: reTube,
		Prandtl:  prTube,
		Heating:  tubeHeated,
	})
	hIn := nuTube.Nusselt * tubeProps.Conductivity / tube.InnerDiameter()

	// Outside: approach velocity over the frontal area, outer diameter as
	// the characteristic length.
	vOut := correlations.MeanVelocity(outStream.MassFlow, outProps.Density, bundle.FrontalArea())
	reOut := correlations.Reynolds(outProps.Density, vOut, tube.OuterDiameter, outProps.Viscosity)
	prOut := correlations.Prandtl(outProps.Cp, outProps.Viscosity, outProps.Conductivity)

	external, err := correlations.SelectExternal(opts.ExternalCorrelation)
	if err != nil {
		return nil, err
	}
	nuOut := external.Evaluate(ports.NusseltRequest{
		Reynolds: reOut,
		Prandtl:  prOut,
		Rows:     bundle.Rows,
		Heating:  !tubeHeated,
	})
	hOut := nuOut.Nusselt * outProps.Conductivity / tube.OuterDiameter

	friction := correlations.SelectFriction(reTube).Evaluate(reTube)

	warnings := e.collectWarnings(ctx, opts, nuTube, nuOut, friction)

	// Overall coefficient: 1/UA = 1/(h_in*A_in) + R_wall + 1/(h_out*A_out).
	rTotal := 1/(hIn*bundle.InnerArea()) + 1/(hOut*bundle.OuterArea())
	if opts.WallConductivity > 0 {
		rTotal += bundle.WallResistance(opts.WallConductivity)
	}
	ua := 1 / rTotal

	thermal, err := solveThermal(
		bundle.Arrangement,
		ua,
		hot.CapacityRate(hotProps.Cp),
		cold.CapacityRate(coldProps.Cp),
		hot.InletTemp,
		cold.InletTemp,
	)
	if err != nil {
		return nil, err
	}

	hydraulic, err := tubeSideLosses(bundle, tubeStream.MassFlow, tubeProps.Density,
		friction.FrictionFactor, opts)
	if err != nil {
		return nil, err
	}
	hydraulic.OutsideLoss, err = outsideLoss(bundle, outProps.Density, vOut, opts)
	if err != nil {
		return nil, err
	}

	tubeDiag := domain.SideDiagnostics{
		Velocity:          vTube,
		Reynolds:          reTube,
		Prandtl:           prTube,
		HeatTransferCoeff: hIn,
		Nusselt:           nuTube,
	}
	outDiag := domain.SideDiagnostics{
		Velocity:          vOut,
		Reynolds:          reOut,
		Prandtl:           prOut,
		HeatTransferCoeff: hOut,
		Nusselt:           nuOut,
	}

	return buildResult(bundle, hot, cold, tubeDiag, outDiag, friction, thermal, hydraulic, warnings), nil
}

// lookup performs the single synchronous property call for one stream and
// validates the returned set. Failures surface as FlowStateError; any retry
// policy belongs to the provider, not here.
func (e *Engine) lookup(ctx context.Context, s domain.StreamState) (domain.FluidProperties, error) {
	props, err := e.props.FluidProperties(ctx, s.FluidID, s.InletTemp, s.Pressure)
	if err != nil {
		return domain.FluidProperties{}, domain.NewFlowStateError(s.FluidID, err)
	}
	if err := props.Validate(); err != nil {
		return domain.FluidProperties{}, domain.NewFlowStateError(s.FluidID, err)
	}
	return props, nil
}

// collectWarnings gathers out-of-range correlation evaluations and, when
// forwarding is enabled, hands them to the diagnostics sink. Forwarding is
// fire-and-forget: a panicking sink is absorbed and never fails the solve.
func (e *Engine) collectWarnings(
	ctx context.Context,
	opts domain.SolveOptions,
	nuTube, nuOut, friction domain.CorrelationResult,
) []domain.ApplicabilityWarning {
	var warnings []domain.ApplicabilityWarning
	add := func(res domain.CorrelationResult, side ports.FlowSide) {
		if res.InRange {
			return
		}
		warnings = append(warnings, domain.ApplicabilityWarning{
			Correlation: res.Correlation,
			Side:        string(side),
			Reynolds:    res.Reynolds,
			Prandtl:     res.Prandtl,
			Note:        res.RangeNote,
		})
	}
	add(nuTube, ports.SideTube)
	add(nuOut, ports.SideOutside)
	add(friction, ports.SideTube)

	if e.diag != nil && opts.WarnOnApplicability {
		for _, w := range warnings {
			e.emit(ctx, w)
		}
	}
	return warnings
}

func (e *Engine) emit(ctx context.Context, w domain.ApplicabilityWarning) {
	defer func() { _ = recover() }()
	e.diag.Warn(ctx, w)
}
