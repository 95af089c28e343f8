package domain

import "fmt"

// StreamState is the immutable definition of one fluid stream entering the
// exchanger. Thermophysical properties are not stored here; they come from
// the property-provider collaborator at solve time.
type StreamState struct {
	// FluidID identifies the working fluid for the property provider,
	// e.g. "water" or "air".
	FluidID string `json:"fluid_id"`

	// MassFlow is the total mass flow rate of the stream [kg/s].
	MassFlow float64 `json:"mass_flow"`

	// InletTemp is the stream inlet temperature [K].
	InletTemp float64 `json:"inlet_temp"`

	// Pressure is the stream pressure used for property lookup [Pa].
	Pressure float64 `json:"pressure"`
}

// NewStreamState validates and returns a stream definition.
// It returns a FlowStateError when the fluid identity is empty, the mass
// flow is non-positive, or temperature or pressure are non-physical.
func NewStreamState(fluidID string, massFlow, inletTemp, pressure float64) (StreamState, error) {
	if fluidID == "" {
		return StreamState{}, NewFlowStateError(fluidID,
			fmt.Errorf("fluid identity must not be empty"))
	}
	if massFlow <= 0 {
		return StreamState{}, NewFlowStateError(fluidID, ErrNonPositiveMassFlow)
	}
	if inletTemp <= 0 {
		return StreamState{}, NewFlowStateError(fluidID,
			fmt.Errorf("inlet temperature must be positive (absolute scale), got %g K", inletTemp))
	}
	if pressure <= 0 {
		return StreamState{}, NewFlowStateError(fluidID,
			fmt.Errorf("pressure must be positive, got %g Pa", pressure))
	}
	return StreamState{
		FluidID:   fluidID,
		MassFlow:  massFlow,
		InletTemp: inletTemp,
		Pressure:  pressure,
	}, nil
}

// CapacityRate returns the stream heat capacity rate C = m_dot * cp [W/K]
// for the given specific heat.
func (s StreamState) CapacityRate(cp float64) float64 { return s.MassFlow * cp }

// FluidProperties is the property set returned by the provider at one
// temperature and pressure. All values are SI.
type FluidProperties struct {
	// Density [kg/m^3].
	Density float64 `json:"density"`

	// Viscosity is the dynamic viscosity [Pa*s].
	Viscosity float64 `json:"viscosity"`

	// Cp is the isobaric specific heat [J/(kg*K)].
	Cp float64 `json:"cp"`

	// Conductivity is the thermal conductivity [W/(m*K)].
	Conductivity float64 `json:"conductivity"`
}

// Validate reports whether every property is present and physical.
// A zero or negative value means the provider returned incomplete data.
func (p FluidProperties) Validate() error {
	switch {
	case p.Density <= 0:
		return fmt.Errorf("%w: density=%g", ErrMissingProperties, p.Density)
	case p.Viscosity <= 0:
		return fmt.Errorf("%w: viscosity=%g", ErrMissingProperties, p.Viscosity)
	case p.Cp <= 0:
		return fmt.Errorf("%w: cp=%g", ErrMissingProperties, p.Cp)
	case p.Conductivity <= 0:
		return fmt.Errorf("%w: conductivity=%g", ErrMissingProperties, p.Conductivity)
	}
	return nil
}
