package correlations

import (
	"math"

	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

var _ ports.NusseltCorrelation = (*Kern)(nil)

// Kern is the Kern method shell-side correlation
//
//	Nu = 0.36 * Re^0.55 * Pr^(1/3)
//
// available as a caller-pinned alternative to Zukauskas for the outside
// stream.
//
// Documented range: 2e3 <= Re <= 1e6, 0.5 <= Pr <= 500.
type Kern struct{}

var kernRange = validityRange{reMin: 2e3, reMax: 1e6, prMin: 0.5, prMax: 500}

// Name returns the correlation identifier.
func (Kern) Name() string { return NameKern }

// Side returns the outside side.
func (Kern) Side() ports.FlowSide { return ports.SideOutside }

// Evaluate computes the Kern Nusselt number.
func (Kern) Evaluate(req ports.NusseltRequest) domain.CorrelationResult {
	nu := 0.36 * math.Pow(req.Reynolds, 0.55) * math.Cbrt(req.Prandtl)
	inRange, note := kernRange.check(req.Reynolds, req.Prandtl)
	return domain.CorrelationResult{
		Correlation: NameKern,
		Nusselt:     nu,
		Reynolds:    req.Reynolds,
		Prandtl:     req.Prandtl,
		InRange:     inRange,
		RangeNote:   note,
	}
}
