package domain

import (
	"errors"
	"fmt"
)

// Common domain errors returned by constructors and the solve pipeline.
var (
	// ErrNonPositiveDimension indicates a geometric dimension that must be
	// strictly positive was zero or negative.
	ErrNonPositiveDimension = errors.New("dimension must be positive")

	// ErrEffectiveLength indicates an effective length that exceeds the
	// total tube length.
	ErrEffectiveLength = errors.New("effective length exceeds total length")

	// ErrPassPartition indicates a per-pass tube partition that does not
	// sum to the bundle's total tube count.
	ErrPassPartition = errors.New("pass partition inconsistent with tube count")

	// ErrNonPositiveMassFlow indicates a stream constructed with a mass
	// flow rate that is zero or negative.
	ErrNonPositiveMassFlow = errors.New("mass flow rate must be positive")

	// ErrMissingProperties indicates the property provider returned
	// incomplete or non-physical fluid properties.
	ErrMissingProperties = errors.New("missing or non-physical fluid properties")

	// ErrUnknownArrangement indicates a flow arrangement value outside the
	// supported closed set.
	ErrUnknownArrangement = errors.New("unknown flow arrangement")

	// ErrNegativeLoss indicates a computed pressure-loss component was
	// negative, which signals an upstream correlation or geometry defect.
	ErrNegativeLoss = errors.New("negative pressure loss component")
)

// GeometryError reports invalid tube or bundle construction parameters.
// It is fatal and raised at construction time, before any solve is attempted.
type GeometryError struct {
	// Field names the offending construction parameter.
	Field string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface for GeometryError.
func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry error: field=%s, err=%v", e.Field, e.Err)
}

// Unwrap returns the underlying error for errors.Is / errors.As matching.
func (e *GeometryError) Unwrap() error { return e.Err }

// NewGeometryError creates a GeometryError for the given field.
func NewGeometryError(field string, err error) *GeometryError {
	return &GeometryError{Field: field, Err: err}
}

// FlowStateError reports an invalid stream definition or a failed property
// lookup. It is fatal, raised at construction or on the first lookup.
type FlowStateError struct {
	// FluidID identifies the stream's working fluid.
	FluidID string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface for FlowStateError.
func (e *FlowStateError) Error() string {
	return fmt.Sprintf("flow state error: fluid=%s, err=%v", e.FluidID, e.Err)
}

// Unwrap returns the underlying error.
func (e *FlowStateError) Unwrap() error { return e.Err }

// NewFlowStateError creates a FlowStateError for the given fluid.
func NewFlowStateError(fluidID string, err error) *FlowStateError {
	return &FlowStateError{FluidID: fluidID, Err: err}
}

// ThermalModelError reports a non-physical thermal solution: a negative or
// non-finite capacity ratio or NTU, or an unsupported flow arrangement.
// It aborts the solve.
type ThermalModelError struct {
	// Quantity names the offending quantity, e.g. "NTU" or "arrangement".
	Quantity string

	// Value is the offending value rendered for diagnostics.
	Value string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface for ThermalModelError.
func (e *ThermalModelError) Error() string {
	return fmt.Sprintf("thermal model error: %s=%s, err=%v", e.Quantity, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *ThermalModelError) Unwrap() error { return e.Err }

// NewThermalModelError creates a ThermalModelError for the given quantity.
func NewThermalModelError(quantity, value string, err error) *ThermalModelError {
	return &ThermalModelError{Quantity: quantity, Value: value, Err: err}
}

// HydraulicModelError reports a negative computed pressure loss. A negative
// component is never physical and signals a defect upstream, so the solve
// aborts rather than report a misleading breakdown.
type HydraulicModelError struct {
	// Component names the loss component, e.g. "friction" or "return".
	Component string

	// Value is the offending loss in pascals.
	Value float64

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface for HydraulicModelError.
func (e *HydraulicModelError) Error() string {
	return fmt.Sprintf("hydraulic model error: component=%s, value=%g Pa, err=%v",
		e.Component, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *HydraulicModelError) Unwrap() error { return e.Err }

// NewHydraulicModelError creates a HydraulicModelError for the given component.
func NewHydraulicModelError(component string, value float64, err error) *HydraulicModelError {
	return &HydraulicModelError{Component: component, Value: value, Err: err}
}

// ApplicabilityWarning records a correlation evaluated outside its documented
// validity range. It is advisory: the solve completes and the warning is
// attached to the result, never raised as an error and never silently
// clamped away.
type ApplicabilityWarning struct {
	// Correlation identifies the named correlation that was out of range.
	Correlation string `json:"correlation"`

	// Side identifies the exchanger side, "tube" or "outside".
	Side string `json:"side"`

	// Reynolds is the Reynolds number at which the correlation was applied.
	Reynolds float64 `json:"reynolds"`

	// Prandtl is the Prandtl number at which the correlation was applied.
	Prandtl float64 `json:"prandtl"`

	// Note describes the documented range that was violated.
	Note string `json:"note"`
}

// String renders the warning for diagnostics sinks.
func (w ApplicabilityWarning) String() string {
	return fmt.Sprintf("correlation %s on %s side outside documented range (Re=%.4g, Pr=%.4g): %s",
		w.Correlation, w.Side, w.Reynolds, w.Prandtl, w.Note)
}
