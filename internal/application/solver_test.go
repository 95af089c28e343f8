package application

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermalab/hxcore/infrastructure/correlations"
	"github.com/thermalab/hxcore/infrastructure/diagnostics"
	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
	"github.com/thermalab/hxcore/internal/testutils"
)

func newTestEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()
	engine, err := NewEngine(testutils.NewMockPropertyProvider(), opts...)
	require.NoError(t, err)
	return engine
}

func TestNewEngine_RequiresProvider(t *testing.T) {
	_, err := NewEngine(nil)
	require.Error(t, err)
}

func TestEngineSolve_WaterAirRating(t *testing.T) {
	engine := newTestEngine(t)
	bundle := testutils.ReferenceBundle(domain.Counterflow)
	hot, cold := testutils.ReferenceStreams()

	result, err := engine.Solve(context.Background(), bundle, hot, cold,
		domain.DefaultSolveOptions())
	require.NoError(t, err)

	// Water through 40 tubes per pass lands well inside the turbulent
	// Gnielinski band; no advisory should fire.
	assert.Equal(t, correlations.NameGnielinski, result.TubeSide.Nusselt.Correlation)
	assert.Equal(t, correlations.NameZukauskas, result.OutsideSide.Nusselt.Correlation)
	assert.Equal(t, correlations.NamePetukhov, result.Friction.Correlation)
	assert.Empty(t, result.Warnings)

	thermal := result.Thermal
	assert.Positive(t, thermal.UA)
	assert.Positive(t, thermal.Q)
	assert.Greater(t, thermal.Effectiveness, 0.0)
	assert.LessOrEqual(t, thermal.Effectiveness, 1.0)
	assert.InDelta(t, 1005.0/8360.0, thermal.CapacityRatio, 1e-9)

	// Outlets bracketed by the inlets.
	assert.Less(t, thermal.HotOutlet, hot.InletTemp)
	assert.Greater(t, thermal.HotOutlet, cold.InletTemp)
	assert.Greater(t, thermal.ColdOutlet, cold.InletTemp)
	assert.Less(t, thermal.ColdOutlet, hot.InletTemp)

	// Both sides account for the same duty.
	hotDuty := 8360.0 * (hot.InletTemp - thermal.HotOutlet)
	coldDuty := 1005.0 * (thermal.ColdOutlet - cold.InletTemp)
	assert.InEpsilon(t, thermal.Q, hotDuty, 1e-9)
	assert.InEpsilon(t, thermal.Q, coldDuty, 1e-9)

	hydraulic := result.Hydraulic
	assert.Equal(t, hydraulic.Friction+hydraulic.Inlet+hydraulic.Outlet+hydraulic.Return,
		hydraulic.TubeTotal)
	assert.Positive(t, hydraulic.OutsideLoss)
}

func TestEngineSolve_TubeSideColdSwapsStreams(t *testing.T) {
	engine := newTestEngine(t)
	bundle := testutils.ReferenceBundle(domain.Counterflow)
	hot, cold := testutils.ReferenceStreams()

	opts := domain.DefaultSolveOptions()
	opts.TubeSide = domain.TubeSideCold
	result, err := engine.Solve(context.Background(), bundle, hot, cold, opts)
	require.NoError(t, err)

	// Air inside 25x2 mm tubes runs fast: the tube-side Reynolds number must
	// reflect air properties, not water.
	tube := bundle.Tube
	vAir := correlations.MeanVelocity(cold.MassFlow, testutils.AirProps.Density,
		bundle.MeanPassFlowArea())
	wantRe := correlations.Reynolds(testutils.AirProps.Density, vAir,
		tube.HydraulicDiameter(), testutils.AirProps.Viscosity)
	assert.InEpsilon(t, wantRe, result.TubeSide.Reynolds, 1e-12)

	wantPr := correlations.Prandtl(testutils.WaterProps.Cp,
		testutils.WaterProps.Viscosity, testutils.WaterProps.Conductivity)
	assert.InEpsilon(t, wantPr, result.OutsideSide.Prandtl, 1e-12)
}

func TestEngineSolve_WallConductionLowersUA(t *testing.T) {
	engine := newTestEngine(t)
	bundle := testutils.ReferenceBundle(domain.Counterflow)
	hot, cold := testutils.ReferenceStreams()

	bare, err := engine.Solve(context.Background(), bundle, hot, cold,
		domain.DefaultSolveOptions())
	require.NoError(t, err)

	opts := domain.DefaultSolveOptions()
	opts.WallConductivity = 16.0 // stainless steel
	withWall, err := engine.Solve(context.Background(), bundle, hot, cold, opts)
	require.NoError(t, err)

	assert.Less(t, withWall.Thermal.UA, bare.Thermal.UA)
	assert.Less(t, withWall.Thermal.Q, bare.Thermal.Q)
}

// TestEngineSolve_OutOfRangeIsAdvisory pins the turbulent Gnielinski
// correlation onto a deeply laminar oil stream. The solve must complete with
// the advisory attached, never fail.
func TestEngineSolve_OutOfRangeIsAdvisory(t *testing.T) {
	sink := diagnostics.NewCollectorSink()
	engine := newTestEngine(t, WithDiagnostics(sink))

	bundle := testutils.ReferenceBundle(domain.Counterflow)
	hot, err := domain.NewStreamState("oil", 2.0, 353.15, 101325)
	require.NoError(t, err)
	_, cold := testutils.ReferenceStreams()

	opts := domain.DefaultSolveOptions()
	opts.InternalCorrelation = correlations.NameGnielinski
	result, err := engine.Solve(context.Background(), bundle, hot, cold, opts)
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	warning := result.Warnings[0]
	assert.Equal(t, correlations.NameGnielinski, warning.Correlation)
	assert.Equal(t, string(ports.SideTube), warning.Side)
	assert.NotEmpty(t, warning.Note)
	assert.False(t, result.TubeSide.Nusselt.InRange)

	assert.Equal(t, result.Warnings, sink.Warnings())
}

func TestEngineSolve_WarningsSilencedButAttached(t *testing.T) {
	sink := diagnostics.NewCollectorSink()
	engine := newTestEngine(t, WithDiagnostics(sink))

	bundle := testutils.ReferenceBundle(domain.Counterflow)
	hot, err := domain.NewStreamState("oil", 2.0, 353.15, 101325)
	require.NoError(t, err)
	_, cold := testutils.ReferenceStreams()

	opts := domain.DefaultSolveOptions()
	opts.InternalCorrelation = correlations.NameGnielinski
	opts.WarnOnApplicability = false
	result, err := engine.Solve(context.Background(), bundle, hot, cold, opts)
	require.NoError(t, err)

	assert.Len(t, result.Warnings, 1)
	assert.Empty(t, sink.Warnings(), "disabled forwarding must not reach the sink")
}

type panickingSink struct{}

func (panickingSink) Warn(context.Context, domain.ApplicabilityWarning) {
	panic("sink exploded")
}

func TestEngineSolve_PanickingSinkIsAbsorbed(t *testing.T) {
	engine := newTestEngine(t, WithDiagnostics(panickingSink{}))

	bundle := testutils.ReferenceBundle(domain.Counterflow)
	hot, err := domain.NewStreamState("oil", 2.0, 353.15, 101325)
	require.NoError(t, err)
	_, cold := testutils.ReferenceStreams()

	opts := domain.DefaultSolveOptions()
	opts.InternalCorrelation = correlations.NameGnielinski
	result, err := engine.Solve(context.Background(), bundle, hot, cold, opts)
	require.NoError(t, err)
	assert.Len(t, result.Warnings, 1)
}

func TestEngineSolve_Errors(t *testing.T) {
	bundle := testutils.ReferenceBundle(domain.Counterflow)
	hot, cold := testutils.ReferenceStreams()

	unknownFluid, err := domain.NewStreamState("mercury", 1.0, 353.15, 101325)
	require.NoError(t, err)

	badArrangement := bundle
	badArrangement.Arrangement = domain.FlowArrangement("crossflow_unmixed")

	coldAboveHot := cold
	coldAboveHot.InletTemp = hot.InletTemp + 10

	zeroFlow := hot
	zeroFlow.MassFlow = 0

	tests := []struct {
		name    string
		bundle  domain.TubeBundle
		hot     domain.StreamState
		cold    domain.StreamState
		opts    domain.SolveOptions
		wantErr any
	}{
		{
			name:   "unknown fluid",
			bundle: bundle, hot: unknownFluid, cold: cold,
			opts:    domain.DefaultSolveOptions(),
			wantErr: new(*domain.FlowStateError),
		},
		{
			name:   "unknown arrangement",
			bundle: badArrangement, hot: hot, cold: cold,
			opts:    domain.DefaultSolveOptions(),
			wantErr: new(*domain.ThermalModelError),
		},
		{
			name:   "cold inlet above hot inlet",
			bundle: bundle, hot: hot, cold: coldAboveHot,
			opts:    domain.DefaultSolveOptions(),
			wantErr: new(*domain.ThermalModelError),
		},
		{
			name:   "zero hot mass flow",
			bundle: bundle, hot: zeroFlow, cold: cold,
			opts:    domain.DefaultSolveOptions(),
			wantErr: new(*domain.FlowStateError),
		},
	}

	engine := newTestEngine(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Solve(context.Background(), tt.bundle, tt.hot, tt.cold, tt.opts)
			require.Error(t, err)
			assert.ErrorAs(t, err, tt.wantErr)
		})
	}
}

func TestEngineSolve_UnknownCorrelationOverride(t *testing.T) {
	engine := newTestEngine(t)
	bundle := testutils.ReferenceBundle(domain.Counterflow)
	hot, cold := testutils.ReferenceStreams()

	opts := domain.DefaultSolveOptions()
	opts.InternalCorrelation = "sieder_tate"
	_, err := engine.Solve(context.Background(), bundle, hot, cold, opts)
	assert.ErrorIs(t, err, correlations.ErrUnknownCorrelation)

	opts = domain.DefaultSolveOptions()
	opts.ExternalCorrelation = "bell_delaware"
	_, err = engine.Solve(context.Background(), bundle, hot, cold, opts)
	assert.ErrorIs(t, err, correlations.ErrUnknownCorrelation)
}

func TestEngineSolve_EmptyTubeSideDefaultsToHot(t *testing.T) {
	engine := newTestEngine(t)
	bundle := testutils.ReferenceBundle(domain.Counterflow)
	hot, cold := testutils.ReferenceStreams()

	var opts domain.SolveOptions
	result, err := engine.Solve(context.Background(), bundle, hot, cold, opts)
	require.NoError(t, err)

	wantPr := correlations.Prandtl(testutils.WaterProps.Cp,
		testutils.WaterProps.Viscosity, testutils.WaterProps.Conductivity)
	assert.InEpsilon(t, wantPr, result.TubeSide.Prandtl, 1e-12)
}

// TestEngineSolve_ArrangementOrdering rates the same hardware in all three
// arrangements; counterflow must transfer at least as much as the others.
func TestEngineSolve_ArrangementOrdering(t *testing.T) {
	engine := newTestEngine(t)
	hot, cold := testutils.ReferenceStreams()

	duties := make(map[domain.FlowArrangement]float64, len(allArrangements))
	for _, arrangement := range allArrangements {
		bundle := testutils.ReferenceBundle(arrangement)
		result, err := engine.Solve(context.Background(), bundle, hot, cold,
			domain.DefaultSolveOptions())
		require.NoError(t, err)
		duties[arrangement] = result.Thermal.Q
	}

	assert.GreaterOrEqual(t, duties[domain.Counterflow], duties[domain.Cocurrent])
	assert.GreaterOrEqual(t, duties[domain.Counterflow], duties[domain.CrossflowBothMixed])
	for _, q := range duties {
		assert.False(t, math.IsNaN(q))
		assert.Positive(t, q)
	}
}
