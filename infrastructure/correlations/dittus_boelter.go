package correlations

import (
	"math"

	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

var _ ports.NusseltCorrelation = (*DittusBoelter)(nil)

// DittusBoelter is the classic turbulent tube correlation
//
//	Nu = 0.023 * Re^0.8 * Pr^n
//
// with n = 0.4 when the tube-side fluid is heated and n = 0.3 when cooled.
// It is available as a caller-pinned alternative to Gnielinski.
//
// Documented range: 1e4 <= Re <= 5e6, 0.7 <= Pr <= 160.
type DittusBoelter struct{}

var dittusBoelterRange = validityRange{reMin: 1e4, reMax: 5e6, prMin: 0.7, prMax: 160}

// Name returns the correlation identifier.
func (DittusBoelter) Name() string { return NameDittusBoelter }

// Side returns the tube side.
func (DittusBoelter) Side() ports.FlowSide { return ports.SideTube }

// Evaluate computes the Dittus-Boelter Nusselt number with the
// direction-dependent Prandtl exponent.
func (DittusBoelter) Evaluate(req ports.NusseltRequest) domain.CorrelationResult {
	n := 0.3
	if req.Heating {
		n = 0.4
	}
	nu := 0.023 * math.Pow(req.Reynolds, 0.8) * math.Pow(req.Prandtl, n)
	inRange, note := dittusBoelterRange.check(req.Reynolds, req.Prandtl)
	return domain.CorrelationResult{
		Correlation: NameDittusBoelter,
		Nusselt:     nu,
		Reynolds:    req.Reynolds,
		Prandtl:     req.Prandtl,
		InRange:     inRange,
		RangeNote:   note,
	}
}
