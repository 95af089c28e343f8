package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrors_WrapAndRender(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{
			name:     "geometry error",
			err:      NewGeometryError("outer_diameter", ErrNonPositiveDimension),
			sentinel: ErrNonPositiveDimension,
			contains: "outer_diameter",
		},
		{
			name:     "flow state error",
			err:      NewFlowStateError("water", ErrMissingProperties),
			sentinel: ErrMissingProperties,
			contains: "water",
		},
		{
			name:     "thermal model error",
			err:      NewThermalModelError("NTU", "-1", errors.New("negative")),
			contains: "NTU=-1",
		},
		{
			name:     "hydraulic model error",
			err:      NewHydraulicModelError("return", -12.5, ErrNegativeLoss),
			sentinel: ErrNegativeLoss,
			contains: "-12.5 Pa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.err.Error(), tt.contains)
			if tt.sentinel != nil {
				assert.ErrorIs(t, tt.err, tt.sentinel)
			}
			// A wrapping layer must not break errors.Is matching.
			wrapped := fmt.Errorf("solving case: %w", tt.err)
			if tt.sentinel != nil {
				assert.ErrorIs(t, wrapped, tt.sentinel)
			}
		})
	}
}

func TestApplicabilityWarning_String(t *testing.T) {
	w := ApplicabilityWarning{
		Correlation: "gnielinski",
		Side:        "tube",
		Reynolds:    101.1,
		Prandtl:     428.6,
		Note:        "Re=101.1 outside [3000, 5e+06]",
	}
	s := w.String()
	assert.Contains(t, s, "gnielinski")
	assert.Contains(t, s, "tube")
	assert.Contains(t, s, "Re=101.1")
}
