package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/testutils"
)

func sweepCase(t *testing.T, name, hotFluid string, hotFlow float64) *Case {
	t.Helper()
	hot, err := domain.NewStreamState(hotFluid, hotFlow, 353.15, 101325)
	require.NoError(t, err)
	cold, err := domain.NewStreamState("air", 1.0, 293.15, 101325)
	require.NoError(t, err)
	return &Case{
		Name:    name,
		Bundle:  testutils.ReferenceBundle(domain.Counterflow),
		Hot:     hot,
		Cold:    cold,
		Options: domain.DefaultSolveOptions(),
	}
}

func TestSweep_PreservesInputOrder(t *testing.T) {
	engine := newTestEngine(t)
	cases := []*Case{
		sweepCase(t, "low-flow", "water", 0.5),
		sweepCase(t, "mid-flow", "water", 2.0),
		sweepCase(t, "high-flow", "water", 8.0),
	}

	results, err := Sweep(context.Background(), engine, cases, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Same(t, cases[i], r.Case)
		require.NoError(t, r.Err)
		require.NotNil(t, r.Result)
	}

	// More hot-side flow means more duty across this sweep.
	assert.Less(t, results[0].Result.Thermal.Q, results[1].Result.Thermal.Q)
	assert.Less(t, results[1].Result.Thermal.Q, results[2].Result.Thermal.Q)
}

func TestSweep_RecordsPerCaseFailures(t *testing.T) {
	engine := newTestEngine(t)
	cases := []*Case{
		sweepCase(t, "good", "water", 2.0),
		sweepCase(t, "bad-fluid", "mercury", 2.0),
		sweepCase(t, "also-good", "water", 4.0),
	}

	results, err := Sweep(context.Background(), engine, cases, 2)
	require.NoError(t, err, "a failing case must not fail the sweep")
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
	var flowErr *domain.FlowStateError
	assert.ErrorAs(t, results[1].Err, &flowErr)
	assert.Nil(t, results[1].Result)
	assert.NoError(t, results[2].Err)
}

func TestSweep_RequiresSolver(t *testing.T) {
	_, err := Sweep(context.Background(), nil, nil, 1)
	require.Error(t, err)
}

func TestSweep_CancelledContext(t *testing.T) {
	engine := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Sweep(ctx, engine, []*Case{sweepCase(t, "one", "water", 2.0)}, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	duty := func(q float64) SweepResult {
		return SweepResult{Result: &domain.HXResult{
			Thermal: domain.ThermalResult{Q: q},
		}}
	}

	t.Run("empty sweep", func(t *testing.T) {
		summary := Summarize(nil)
		assert.Zero(t, summary.Solved)
		assert.Zero(t, summary.Failed)
		assert.Zero(t, summary.MeanDuty)
	})

	t.Run("all failed", func(t *testing.T) {
		summary := Summarize([]SweepResult{
			{Err: assert.AnError},
			{Err: assert.AnError},
		})
		assert.Zero(t, summary.Solved)
		assert.Equal(t, 2, summary.Failed)
		assert.Zero(t, summary.MinDuty)
	})

	t.Run("mixed results", func(t *testing.T) {
		summary := Summarize([]SweepResult{
			duty(1000),
			{Err: assert.AnError},
			duty(3000),
			duty(2000),
		})
		assert.Equal(t, 3, summary.Solved)
		assert.Equal(t, 1, summary.Failed)
		assert.InDelta(t, 1000.0, summary.MinDuty, 1e-12)
		assert.InDelta(t, 3000.0, summary.MaxDuty, 1e-12)
		assert.InDelta(t, 2000.0, summary.MeanDuty, 1e-12)
	})
}
