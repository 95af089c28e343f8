package domain

// CorrelationResult carries the outcome of one correlation evaluation. The
// applicability flag is a soft signal: an out-of-range regime is reported,
// never clamped and never fatal by itself.
type CorrelationResult struct {
	// Correlation identifies the named correlation that produced the result.
	Correlation string `json:"correlation"`

	// Nusselt is the computed Nusselt number [-]. Zero for friction-only
	// evaluations.
	Nusselt float64 `json:"nusselt"`

	// FrictionFactor is the Darcy friction factor [-]. Zero for
	// Nusselt-only evaluations.
	FrictionFactor float64 `json:"friction_factor"`

	// Reynolds is the Reynolds number the correlation was evaluated at [-].
	Reynolds float64 `json:"reynolds"`

	// Prandtl is the Prandtl number the correlation was evaluated at [-].
	Prandtl float64 `json:"prandtl"`

	// InRange reports whether the regime fell inside the correlation's
	// documented validity range.
	InRange bool `json:"in_range"`

	// RangeNote describes the violated bound when InRange is false.
	RangeNote string `json:"range_note,omitempty"`
}

// SideDiagnostics captures the per-side flow state derived during a solve.
// Engineering review inspects these alongside the lumped results.
type SideDiagnostics struct {
	// Velocity is the representative mean velocity [m/s].
	Velocity float64 `json:"velocity"`

	// Reynolds number [-].
	Reynolds float64 `json:"reynolds"`

	// Prandtl number [-].
	Prandtl float64 `json:"prandtl"`

	// HeatTransferCoeff is the convective coefficient h [W/(m^2*K)].
	HeatTransferCoeff float64 `json:"heat_transfer_coeff"`

	// Nusselt is the correlation outcome the coefficient was derived from.
	Nusselt CorrelationResult `json:"nusselt_correlation"`
}

// ThermalResult is the lumped epsilon-NTU solution. The energy balance
// C_hot*(T_hot_in - T_hot_out) == C_cold*(T_cold_out - T_cold_in) holds
// within floating-point tolerance by construction.
type ThermalResult struct {
	// Q is the heat duty [W].
	Q float64 `json:"q"`

	// UA is the overall conductance [W/K].
	UA float64 `json:"ua"`

	// NTU is the number of transfer units UA/C_min [-].
	NTU float64 `json:"ntu"`

	// Effectiveness is epsilon in [0,1].
	Effectiveness float64 `json:"effectiveness"`

	// CapacityRatio is C_min/C_max in [0,1].
	CapacityRatio float64 `json:"capacity_ratio"`

	// HotOutlet is the hot stream outlet temperature [K].
	HotOutlet float64 `json:"hot_outlet"`

	// ColdOutlet is the cold stream outlet temperature [K].
	ColdOutlet float64 `json:"cold_outlet"`
}

// HydraulicResult itemizes the pressure losses. The tube-side breakdown is
// retained, not only the sum, because engineering review requires inspecting
// each term; TubeTotal is the exact sum of the four tube-side items.
type HydraulicResult struct {
	// Friction is the Darcy friction loss summed over all passes [Pa].
	Friction float64 `json:"friction"`

	// Inlet is the single entrance minor loss for the bundle [Pa].
	Inlet float64 `json:"inlet"`

	// Outlet is the single exit minor loss for the bundle [Pa].
	Outlet float64 `json:"outlet"`

	// Return is the total loss over the P-1 pass returns [Pa].
	Return float64 `json:"return"`

	// TubeTotal is Friction + Inlet + Outlet + Return [Pa].
	TubeTotal float64 `json:"tube_total"`

	// OutsideLoss is the lumped outside-stream loss over the bundle [Pa].
	OutsideLoss float64 `json:"outside_loss"`
}

// HXResult is the read-only snapshot returned by one solve. It is built once
// with every field populated, never mutated afterwards, and ownership
// transfers entirely to the caller.
type HXResult struct {
	// Bundle echoes the geometry the solve ran against.
	Bundle TubeBundle `json:"bundle"`

	// Hot and Cold echo the stream definitions.
	Hot  StreamState `json:"hot"`
	Cold StreamState `json:"cold"`

	// TubeSide and OutsideSide carry per-side flow diagnostics.
	TubeSide    SideDiagnostics `json:"tube_side"`
	OutsideSide SideDiagnostics `json:"outside_side"`

	// Friction is the tube-side friction-factor evaluation.
	Friction CorrelationResult `json:"friction"`

	// Thermal is the epsilon-NTU solution.
	Thermal ThermalResult `json:"thermal"`

	// Hydraulic is the itemized pressure-loss result.
	Hydraulic HydraulicResult `json:"hydraulic"`

	// Warnings lists correlation applicability advisories raised during the
	// solve. Empty when every correlation ran inside its documented range.
	Warnings []ApplicabilityWarning `json:"warnings,omitempty"`
}
