package correlations

import (
	"math"

	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

var _ ports.NusseltCorrelation = (*Gnielinski)(nil)

// Gnielinski is the Gnielinski correlation for turbulent flow in smooth
// tubes, used with the explicit Petukhov friction factor:
//
//	Nu = (f/8)(Re-1000)Pr / (1 + 12.7*sqrt(f/8)*(Pr^(2/3)-1))
//
// It is the automatic tube-side choice above the laminar limit.
//
// Documented range: 3000 < Re < 5e6, 0.5 < Pr < 2000.
type Gnielinski struct{}

var gnielinskiRange = validityRange{reMin: 3000, reMax: 5e6, prMin: 0.5, prMax: 2000}

// Name returns the correlation identifier.
func (Gnielinski) Name() string { return NameGnielinski }

// Side returns the tube side.
func (Gnielinski) Side() ports.FlowSide { return ports.SideTube }

// Evaluate computes the Gnielinski Nusselt number, flagging regimes outside
// the documented range without altering the value.
func (Gnielinski) Evaluate(req ports.NusseltRequest) domain.CorrelationResult {
	f := petukhovFactor(req.Reynolds)
	num := (f / 8) * (req.Reynolds - 1000) * req.Prandtl
	den := 1 + 12.7*math.Sqrt(f/8)*(math.Pow(req.Prandtl, 2.0/3.0)-1)
	inRange, note := gnielinskiRange.check(req.Reynolds, req.Prandtl)
	return domain.CorrelationResult{
		Correlation: NameGnielinski,
		Nusselt:     num / den,
		Reynolds:    req.Reynolds,
		Prandtl:     req.Prandtl,
		InRange:     inRange,
		RangeNote:   note,
	}
}
