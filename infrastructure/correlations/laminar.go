package correlations

import (
	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

var _ ports.NusseltCorrelation = (*LaminarConstWall)(nil)

// LaminarConstWall is the fully developed laminar solution for a circular
// tube with constant wall temperature, Nu = 3.66. It is the automatic
// tube-side choice below the laminar limit.
//
// Documented range: Re <= 2300, any Prandtl.
type LaminarConstWall struct{}

// laminarNusselt is independent of Re and Pr once the flow is fully
// developed.
const laminarNusselt = 3.66

var laminarRange = validityRange{reMin: 0, reMax: ReLaminarLimit}

// Name returns the correlation identifier.
func (LaminarConstWall) Name() string { return NameLaminarConstWall }

// Side returns the tube side.
func (LaminarConstWall) Side() ports.FlowSide { return ports.SideTube }

// Evaluate returns Nu = 3.66, flagging regimes past the laminar limit.
func (LaminarConstWall) Evaluate(req ports.NusseltRequest) domain.CorrelationResult {
	inRange, note := laminarRange.check(req.Reynolds, req.Prandtl)
	return domain.CorrelationResult{
		Correlation: NameLaminarConstWall,
		Nusselt:     laminarNusselt,
		Reynolds:    req.Reynolds,
		Prandtl:     req.Prandtl,
		InRange:     inRange,
		RangeNote:   note,
	}
}
