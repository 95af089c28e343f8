package application

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermalab/hxcore/internal/domain"
)

var allArrangements = []domain.FlowArrangement{
	domain.Counterflow,
	domain.Cocurrent,
	domain.CrossflowBothMixed,
}

func TestEffectiveness_KnownValues(t *testing.T) {
	tests := []struct {
		name        string
		arrangement domain.FlowArrangement
		ntu         float64
		cr          float64
		want        float64
	}{
		{
			name:        "counterflow with Cr=0 reduces to 1-exp(-NTU)",
			arrangement: domain.Counterflow,
			ntu:         2.0, cr: 0,
			want: 1 - math.Exp(-2.0),
		},
		{
			name:        "cocurrent with Cr=0 reduces to 1-exp(-NTU)",
			arrangement: domain.Cocurrent,
			ntu:         2.0, cr: 0,
			want: 1 - math.Exp(-2.0),
		},
		{
			name:        "counterflow at balanced capacity uses the limit",
			arrangement: domain.Counterflow,
			ntu:         3.0, cr: 1.0,
			want: 3.0 / 4.0,
		},
		{
			name:        "cocurrent at balanced capacity",
			arrangement: domain.Cocurrent,
			ntu:         3.0, cr: 1.0,
			want: (1 - math.Exp(-6.0)) / 2,
		},
		{
			name:        "crossflow both mixed at zero NTU",
			arrangement: domain.CrossflowBothMixed,
			ntu:         0, cr: 0.5,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := effectiveness(tt.arrangement, tt.ntu, tt.cr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEffectiveness_Validation(t *testing.T) {
	tests := []struct {
		name        string
		arrangement domain.FlowArrangement
		ntu         float64
		cr          float64
	}{
		{"negative NTU", domain.Counterflow, -1, 0.5},
		{"NaN NTU", domain.Counterflow, math.NaN(), 0.5},
		{"infinite NTU", domain.Counterflow, math.Inf(1), 0.5},
		{"negative Cr", domain.Counterflow, 1, -0.1},
		{"Cr above one", domain.Counterflow, 1, 1.1},
		{"NaN Cr", domain.Counterflow, 1, math.NaN()},
		{"unknown arrangement", domain.FlowArrangement("crossflow_unmixed"), 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := effectiveness(tt.arrangement, tt.ntu, tt.cr)
			require.Error(t, err)

			var thermalErr *domain.ThermalModelError
			assert.ErrorAs(t, err, &thermalErr)
		})
	}
}

// TestEffectiveness_MonotoneAndBounded checks that effectiveness stays in
// [0,1] for every arrangement and that the counterflow and cocurrent
// relations are non-decreasing in NTU. The both-mixed crossflow relation is
// excluded from the monotonicity sweep: it peaks and then decays slightly
// toward its large-NTU asymptote, see TestEffectiveness_CrossflowPeaksAndDecays.
func TestEffectiveness_MonotoneAndBounded(t *testing.T) {
	crValues := []float64{0, 0.25, 0.5, 0.75, 1.0}

	for _, arrangement := range allArrangements {
		for _, cr := range crValues {
			prev := -1.0
			for ntu := 0.0; ntu <= 30.0; ntu += 0.1 {
				eps, err := effectiveness(arrangement, ntu, cr)
				require.NoError(t, err)

				assert.GreaterOrEqual(t, eps, 0.0,
					"%s Cr=%.2f NTU=%.1f", arrangement, cr, ntu)
				assert.LessOrEqual(t, eps, 1.0,
					"%s Cr=%.2f NTU=%.1f", arrangement, cr, ntu)
				if arrangement != domain.CrossflowBothMixed {
					assert.GreaterOrEqual(t, eps, prev-1e-12,
						"%s Cr=%.2f NTU=%.1f not monotone", arrangement, cr, ntu)
				}
				prev = eps
			}
		}
	}
}

// TestEffectiveness_CrossflowPeaksAndDecays pins down the shape of the
// both-mixed crossflow relation: non-decreasing well before saturation,
// then a shallow decay past the peak (near NTU=3 at Cr=1) toward the
// large-NTU asymptote 1/(1+Cr), which it approaches from above.
func TestEffectiveness_CrossflowPeaksAndDecays(t *testing.T) {
	for _, cr := range []float64{0.25, 0.5, 1.0} {
		prev := -1.0
		for ntu := 0.0; ntu <= 2.0; ntu += 0.05 {
			eps, err := effectiveness(domain.CrossflowBothMixed, ntu, cr)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, eps, prev-1e-12,
				"Cr=%.2f NTU=%.2f not monotone before saturation", cr, ntu)
			prev = eps
		}
	}

	tests := []struct {
		cr, peakNTU float64
	}{
		{cr: 0.25, peakNTU: 5.5},
		{cr: 1.0, peakNTU: 3.0},
	}
	for _, tt := range tests {
		peak, err := effectiveness(domain.CrossflowBothMixed, tt.peakNTU, tt.cr)
		require.NoError(t, err)
		deep, err := effectiveness(domain.CrossflowBothMixed, 30.0, tt.cr)
		require.NoError(t, err)

		assert.Greater(t, peak, deep, "Cr=%.2f decays past its peak", tt.cr)
		assert.Greater(t, deep, 1/(1+tt.cr), "Cr=%.2f stays above the asymptote", tt.cr)
	}
}

// TestEffectiveness_CounterflowBeatsCocurrent checks the arrangement
// ordering invariant for identical NTU and Cr > 0.
func TestEffectiveness_CounterflowBeatsCocurrent(t *testing.T) {
	for _, cr := range []float64{0.1, 0.5, 0.9, 1.0} {
		for _, ntu := range []float64{0.2, 1.0, 3.0, 8.0} {
			counter, err := effectiveness(domain.Counterflow, ntu, cr)
			require.NoError(t, err)
			cocurrent, err := effectiveness(domain.Cocurrent, ntu, cr)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, counter, cocurrent,
				"Cr=%.2f NTU=%.1f", cr, ntu)
		}
	}
}

// TestEffectiveness_CounterflowUnityLimit verifies the general counterflow
// relation evaluated just below Cr=1 agrees with the limiting formula
// NTU/(1+NTU) within 1e-6 relative error.
func TestEffectiveness_CounterflowUnityLimit(t *testing.T) {
	const cr = 0.999999
	for _, ntu := range []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0} {
		general, err := effectiveness(domain.Counterflow, ntu, cr)
		require.NoError(t, err)

		limit := ntu / (1 + ntu)
		assert.InEpsilon(t, limit, general, 1e-6, "NTU=%.1f", ntu)
	}
}

// TestSolveThermal_ReferenceScenario reproduces the documented single-pass
// counterflow water/air rating: UA = 5000 W/K, water 2 kg/s cp 4180 at
// 80 C against air 1 kg/s cp 1005 at 20 C.
func TestSolveThermal_ReferenceScenario(t *testing.T) {
	const (
		ua     = 5000.0
		cHot   = 2.0 * 4180.0 // 8360 W/K
		cCold  = 1.0 * 1005.0 // 1005 W/K, the limiting stream
		hotIn  = 353.15
		coldIn = 293.15
	)

	result, err := solveThermal(domain.Counterflow, ua, cHot, cCold, hotIn, coldIn)
	require.NoError(t, err)

	assert.InEpsilon(t, 1005.0/8360.0, result.CapacityRatio, 1e-9)
	assert.InEpsilon(t, 5000.0/1005.0, result.NTU, 1e-9)
	assert.InEpsilon(t, 0.9886, result.Effectiveness, 1e-3)
	assert.InEpsilon(t, 59640.0, result.Q, 1e-3)
	assert.InEpsilon(t, 273.15+79.35, result.ColdOutlet, 1e-3)
	assert.InEpsilon(t, 273.15+72.87, result.HotOutlet, 1e-3)
}

// TestSolveThermal_EnergyBalance checks that both outlet temperatures are
// consistent with the same duty for all arrangements.
func TestSolveThermal_EnergyBalance(t *testing.T) {
	cases := []struct {
		ua, cHot, cCold, hotIn, coldIn float64
	}{
		{5000, 8360, 1005, 353.15, 293.15},
		{1200, 2000, 2000, 420.0, 300.0},
		{300, 500, 4000, 380.0, 290.0},
	}

	for _, arrangement := range allArrangements {
		for _, c := range cases {
			result, err := solveThermal(arrangement, c.ua, c.cHot, c.cCold, c.hotIn, c.coldIn)
			require.NoError(t, err)

			hotSide := c.cHot * (c.hotIn - result.HotOutlet)
			coldSide := c.cCold * (result.ColdOutlet - c.coldIn)
			assert.InDelta(t, hotSide, coldSide, 1e-6*math.Abs(result.Q)+1e-9,
				"%s UA=%.0f", arrangement, c.ua)

			assert.GreaterOrEqual(t, result.HotOutlet, c.coldIn)
			assert.LessOrEqual(t, result.ColdOutlet, c.hotIn)
		}
	}
}
