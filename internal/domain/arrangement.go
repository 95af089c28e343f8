package domain

import "fmt"

// FlowArrangement identifies the relative flow topology of the two streams.
// The set is closed: the bundle geometry defines the topology and the solver
// dispatches exhaustively over these values, so an unrecognized arrangement
// fails fast instead of falling through to an incorrect formula.
type FlowArrangement string

// Supported flow arrangements.
const (
	// Counterflow has the two streams flowing in opposite directions.
	Counterflow FlowArrangement = "counterflow"

	// Cocurrent has the two streams flowing in the same direction.
	Cocurrent FlowArrangement = "cocurrent"

	// CrossflowBothMixed is crossflow with both streams mixed. Unmixed and
	// mixed/unmixed crossflow variants are intentionally unsupported.
	CrossflowBothMixed FlowArrangement = "crossflow_both_mixed"
)

// ParseFlowArrangement converts a string into a FlowArrangement, rejecting
// anything outside the supported closed set.
func ParseFlowArrangement(s string) (FlowArrangement, error) {
	switch FlowArrangement(s) {
	case Counterflow, Cocurrent, CrossflowBothMixed:
		return FlowArrangement(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownArrangement, s)
	}
}

// Valid reports whether the arrangement is one of the supported values.
func (a FlowArrangement) Valid() bool {
	switch a {
	case Counterflow, Cocurrent, CrossflowBothMixed:
		return true
	default:
		return false
	}
}

// String returns the canonical identifier for the arrangement.
func (a FlowArrangement) String() string { return string(a) }

// TubeLayout identifies the tube grid pattern seen by the outside stream.
type TubeLayout string

// Supported tube layouts.
const (
	// LayoutInline aligns tube rows in the outside flow direction.
	LayoutInline TubeLayout = "inline"

	// LayoutStaggered offsets alternate tube rows.
	LayoutStaggered TubeLayout = "staggered"
)

// Valid reports whether the layout is one of the supported values.
func (l TubeLayout) Valid() bool {
	return l == LayoutInline || l == LayoutStaggered
}
