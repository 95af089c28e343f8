package application

import (
	"fmt"
	"math"

	"github.com/thermalab/hxcore/internal/domain"
)

// crUnityTol decides when the counterflow capacity ratio is numerically one
// and the limiting formula epsilon = NTU/(1+NTU) replaces the general
// relation, whose numerator and denominator both vanish at Cr = 1.
const crUnityTol = 1e-9

// ntuZeroTol decides when the crossflow relation switches to its NTU -> 0
// limit, avoiding the 0/0 singularity of the 1/NTU term.
const ntuZeroTol = 1e-12

// effectiveness computes epsilon for the given arrangement, NTU and
// capacity ratio. The dispatch is exhaustive over the three supported
// arrangements; anything else is a ThermalModelError, never a silent
// fallthrough to the wrong formula.
func effectiveness(arrangement domain.FlowArrangement, ntu, cr float64) (float64, error) {
	if math.IsNaN(ntu) || math.IsInf(ntu, 0) || ntu < 0 {
		return 0, domain.NewThermalModelError("NTU", fmt.Sprintf("%g", ntu),
			fmt.Errorf("NTU must be finite and non-negative"))
	}
	if math.IsNaN(cr) || math.IsInf(cr, 0) || cr < 0 || cr > 1 {
		return 0, domain.NewThermalModelError("Cr", fmt.Sprintf("%g", cr),
			fmt.Errorf("capacity ratio must lie in [0,1]"))
	}

	var eps float64
	switch arrangement {
	case domain.Counterflow:
		if math.Abs(1-cr) < crUnityTol {
			eps = ntu / (1 + ntu)
		} else {
			e := math.Exp(-ntu * (1 - cr))
			eps = (1 - e) / (1 - cr*e)
		}

	case domain.Cocurrent:
		eps = (1 - math.Exp(-ntu*(1+cr))) / (1 + cr)

	case domain.CrossflowBothMixed:
		switch {
		case ntu < ntuZeroTol:
			eps = 0
		case cr < ntuZeroTol:
			// Cr -> 0 limit shared by every arrangement.
			eps = 1 - math.Exp(-ntu)
		default:
			eps = 1 / (1/(1-math.Exp(-ntu)) + cr/(1-math.Exp(-cr*ntu)) - 1/ntu)
		}

	default:
		return 0, domain.NewThermalModelError("arrangement", string(arrangement),
			domain.ErrUnknownArrangement)
	}

	// Floating-point guard; the relations are bounded by [0,1] analytically.
	if eps < 0 {
		eps = 0
	}
	if eps > 1 {
		eps = 1
	}
	return eps, nil
}

// solveThermal evaluates the epsilon-NTU relations for a known overall
// conductance and the two capacity rates, returning duty, effectiveness and
// both outlet temperatures. Outlets follow from the per-stream energy
// balance, so C_hot*(hotIn-hotOut) == C_cold*(coldOut-coldIn) by
// construction.
func solveThermal(
	arrangement domain.FlowArrangement,
	ua, cHot, cCold, hotIn, coldIn float64,
) (domain.ThermalResult, error) {
	cMin := math.Min(cHot, cCold)
	cMax := math.Max(cHot, cCold)
	cr := cMin / cMax
	ntu := ua / cMin

	eps, err := effectiveness(arrangement, ntu, cr)
	if err != nil {
		return domain.ThermalResult{}, err
	}

	q := eps * cMin * (hotIn - coldIn)
	return domain.ThermalResult{
		Q:             q,
		UA:            ua,
		NTU:           ntu,
		Effectiveness: eps,
		CapacityRatio: cr,
		HotOutlet:     hotIn - q/cHot,
		ColdOutlet:    coldIn + q/cCold,
	}, nil
}
