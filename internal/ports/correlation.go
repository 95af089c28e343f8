package ports

import "github.com/thermalab/hxcore/internal/domain"

// FlowSide identifies which exchanger side a correlation applies to.
type FlowSide string

// Exchanger sides.
const (
	// SideTube is the internal (tube-side) flow.
	SideTube FlowSide = "tube"

	// SideOutside is the external stream crossing the bundle.
	SideOutside FlowSide = "outside"
)

// NusseltRequest carries the dimensionless regime and the geometry class
// details one Nusselt evaluation needs. It is plain data: correlations are
// pure functions of the request.
type NusseltRequest struct {
	// Reynolds number of the flow [-].
	Reynolds float64

	// Prandtl number of the fluid [-].
	Prandtl float64

	// Rows is the tube row count in the outside flow direction. Outside
	// correlations apply a finite-row correction; internal ones ignore it.
	Rows int

	// Heating reports whether the correlated fluid is being heated.
	// Correlations with direction-dependent exponents use it; others
	// ignore it.
	Heating bool
}

// NusseltCorrelation is one named Nusselt-number correlation with a
// documented applicability range. Implementations must be stateless and
// safe for concurrent use.
type NusseltCorrelation interface {
	// Name returns the unique correlation identifier used for selection
	// overrides and result tagging.
	Name() string

	// Side returns the exchanger side the correlation is formulated for.
	Side() FlowSide

	// Evaluate computes the Nusselt number for the request. When the
	// regime falls outside the documented range the result carries
	// InRange=false and a note; the value is still computed, never
	// clamped, and the evaluation never fails on range alone.
	Evaluate(req NusseltRequest) domain.CorrelationResult
}

// FrictionCorrelation is one named Darcy friction-factor correlation with a
// documented applicability range. Implementations must be stateless and
// safe for concurrent use.
type FrictionCorrelation interface {
	// Name returns the unique correlation identifier.
	Name() string

	// Evaluate computes the Darcy friction factor at the given Reynolds
	// number, flagging out-of-range regimes the same way Nusselt
	// correlations do.
	Evaluate(reynolds float64) domain.CorrelationResult
}
