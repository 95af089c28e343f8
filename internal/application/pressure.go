package application

import (
	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/infrastructure/correlations"
)

// Engineering defaults for the minor-loss coefficients. Callers override
// them per solve through SolveOptions.
const (
	// defaultInletK is a sharp-edged entrance from a header.
	defaultInletK = 0.5

	// defaultOutletK is a discharge into a plenum.
	defaultOutletK = 1.0

	// defaultReturnK is one 180-degree return between passes.
	defaultReturnK = 1.5

	// defaultOutsideZeta is the per-row outside bank loss coefficient.
	defaultOutsideZeta = 1.2
)

// lossCoeff substitutes the default when an override is left at zero.
func lossCoeff(override, def float64) float64 {
	if override > 0 {
		return override
	}
	return def
}

// tubeSideLosses composes the itemized tube-side pressure drop:
//
//   - Darcy friction f*(L_eff/D_h)*q per pass, summed over all passes with
//     each pass's own velocity,
//   - one inlet and one outlet minor loss per bundle, at the first and last
//     pass velocities,
//   - one return loss per pass transition, at the velocity of the pass
//     being entered.
//
// Every component must come out non-negative; a negative value means an
// upstream correlation or geometry defect and aborts the solve.
func tubeSideLosses(
	bundle domain.TubeBundle,
	massFlow, density, frictionFactor float64,
	opts domain.SolveOptions,
) (domain.HydraulicResult, error) {
	tube := bundle.Tube
	dh := tube.HydraulicDiameter()

	passes := bundle.PassCount()
	velocities := make([]float64, passes)
	for i := 0; i < passes; i++ {
		velocities[i] = correlations.MeanVelocity(massFlow, density, bundle.PassFlowArea(i))
	}

	var friction float64
	for _, v := range velocities {
		friction += frictionFactor * (tube.EffectiveLength / dh) * correlations.DynamicPressure(density, v)
	}

	inlet := lossCoeff(opts.InletLossCoeff, defaultInletK) *
		correlations.DynamicPressure(density, velocities[0])
	outlet := lossCoeff(opts.OutletLossCoeff, defaultOutletK) *
		correlations.DynamicPressure(density, velocities[passes-1])

	var ret float64
	kReturn := lossCoeff(opts.ReturnLossCoeff, defaultReturnK)
	for i := 1; i < passes; i++ {
		ret += kReturn * correlations.DynamicPressure(density, velocities[i])
	}

	for _, c := range []struct {
		name  string
		value float64
	}{
		{"friction", friction},
		{"inlet", inlet},
		{"outlet", outlet},
		{"return", ret},
	} {
		if c.value < 0 {
			return domain.HydraulicResult{},
				domain.NewHydraulicModelError(c.name, c.value, domain.ErrNegativeLoss)
		}
	}

	return domain.HydraulicResult{
		Friction:  friction,
		Inlet:     inlet,
		Outlet:    outlet,
		Return:    ret,
		TubeTotal: friction + inlet + outlet + ret,
	}, nil
}

// outsideLoss is the lumped outside bank loss zeta * rows * q at the
// frontal-area approach velocity.
func outsideLoss(bundle domain.TubeBundle, density, velocity float64, opts domain.SolveOptions) (float64, error) {
	zeta := lossCoeff(opts.OutsideLossCoeff, defaultOutsideZeta)
	dp := zeta * float64(bundle.Rows) * correlations.DynamicPressure(density, velocity)
	if dp < 0 {
		return 0, domain.NewHydraulicModelError("outside", dp, domain.ErrNegativeLoss)
	}
	return dp, nil
}
