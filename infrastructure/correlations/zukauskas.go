package correlations

import (
	"math"

	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

var _ ports.NusseltCorrelation = (*Zukauskas)(nil)

// Zukauskas is the Zukauskas correlation for crossflow over tube banks,
//
//	Nu = C * Re^m * Pr^0.36
//
// with (C, m) picked by Reynolds band and a finite-row correction
// (rows/20)^0.2 applied below twenty rows. It is the automatic outside
// choice.
//
// Documented range: 10 <= Re <= 2e6, 0.7 <= Pr <= 500.
type Zukauskas struct{}

var zukauskasRange = validityRange{reMin: 10, reMax: 2e6, prMin: 0.7, prMax: 500}

// zukauskasCoeffs returns the (C, m) pair for the Reynolds band.
func zukauskasCoeffs(re float64) (c, m float64) {
	switch {
	case re < 1e2:
		return 0.90, 0.40
	case re < 1e3:
		return 0.52, 0.50
	case re < 2e5:
		return 0.27, 0.63
	default:
		return 0.021, 0.84
	}
}

// Name returns the correlation identifier.
func (Zukauskas) Name() string { return NameZukauskas }

// Side returns the outside side.
func (Zukauskas) Side() ports.FlowSide { return ports.SideOutside }

// Evaluate computes the Zukauskas Nusselt number with the finite-row
// correction.
func (Zukauskas) Evaluate(req ports.NusseltRequest) domain.CorrelationResult {
	c, m := zukauskasCoeffs(req.Reynolds)
	nu := c * math.Pow(req.Reynolds, m) * math.Pow(req.Prandtl, 0.36)
	if req.Rows > 0 && req.Rows < 20 {
		nu *= math.Pow(float64(req.Rows)/20, 0.20)
	}
	inRange, note := zukauskasRange.check(req.Reynolds, req.Prandtl)
	return domain.CorrelationResult{
		Correlation: NameZukauskas,
		Nusselt:     nu,
		Reynolds:    req.Reynolds,
		Prandtl:     req.Prandtl,
		InRange:     inRange,
		RangeNote:   note,
	}
}
