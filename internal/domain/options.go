package domain

// TubeSide selects which of the two streams flows inside the tubes.
type TubeSide string

// Tube-side assignments.
const (
	// TubeSideHot routes the hot stream through the tubes.
	TubeSideHot TubeSide = "hot"

	// TubeSideCold routes the cold stream through the tubes.
	TubeSideCold TubeSide = "cold"
)

// Valid reports whether the assignment is one of the supported values.
func (s TubeSide) Valid() bool { return s == TubeSideHot || s == TubeSideCold }

// SolveOptions configures one solve invocation. The zero value is not
// meaningful; start from DefaultSolveOptions and override fields.
type SolveOptions struct {
	// TubeSide assigns the hot or cold stream to the tube side.
	TubeSide TubeSide `json:"tube_side" yaml:"tube_side"`

	// InternalCorrelation pins a named tube-side Nusselt correlation
	// instead of automatic regime-based selection. Empty means automatic.
	InternalCorrelation string `json:"internal_correlation,omitempty" yaml:"internal_correlation"`

	// ExternalCorrelation pins a named outside Nusselt correlation.
	// Empty means automatic.
	ExternalCorrelation string `json:"external_correlation,omitempty" yaml:"external_correlation"`

	// WallConductivity enables the cylindrical-wall conduction term in the
	// overall coefficient when positive [W/(m*K)]. Zero disables it.
	WallConductivity float64 `json:"wall_conductivity,omitempty" yaml:"wall_conductivity"`

	// WarnOnApplicability forwards applicability advisories to the
	// diagnostics sink. Warnings stay attached to the result either way;
	// false only silences the sink, it never escalates to an error.
	WarnOnApplicability bool `json:"warn_on_applicability" yaml:"warn_on_applicability"`

	// InletLossCoeff is the entrance minor-loss coefficient K_in.
	// Zero selects the engineering default.
	InletLossCoeff float64 `json:"inlet_loss_coeff,omitempty" yaml:"inlet_loss_coeff"`

	// OutletLossCoeff is the exit minor-loss coefficient K_out.
	// Zero selects the engineering default.
	OutletLossCoeff float64 `json:"outlet_loss_coeff,omitempty" yaml:"outlet_loss_coeff"`

	// ReturnLossCoeff is the per-return loss coefficient K_return.
	// Zero selects the engineering default.
	ReturnLossCoeff float64 `json:"return_loss_coeff,omitempty" yaml:"return_loss_coeff"`

	// OutsideLossCoeff is the per-row outside loss coefficient zeta.
	// Zero selects the engineering default.
	OutsideLossCoeff float64 `json:"outside_loss_coeff,omitempty" yaml:"outside_loss_coeff"`
}

// DefaultSolveOptions returns the documented defaults: hot stream in the
// tubes, automatic correlation selection, wall conduction disabled, and
// advisory warnings forwarded to the diagnostics sink.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		TubeSide:            TubeSideHot,
		WarnOnApplicability: true,
	}
}
