// Package testutils provides shared fixtures for engine tests: a
// deterministic property provider and canonical fluid property sets.
package testutils

import (
	"context"
	"fmt"
	"sync"

	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

// Canonical single-state property sets used across tests. Values are
// representative engineering figures, not temperature-resolved data.
var (
	// WaterProps approximates liquid water near 60 C.
	WaterProps = domain.FluidProperties{
		Density:      983.0,
		Viscosity:    4.67e-4,
		Cp:           4180.0,
		Conductivity: 0.654,
	}

	// AirProps approximates dry air near 20 C and atmospheric pressure.
	AirProps = domain.FluidProperties{
		Density:      1.204,
		Viscosity:    1.82e-5,
		Cp:           1005.0,
		Conductivity: 0.0259,
	}

	// OilProps approximates a light thermal oil, useful for exercising
	// laminar tube-side regimes.
	OilProps = domain.FluidProperties{
		Density:      860.0,
		Viscosity:    3.0e-2,
		Cp:           2000.0,
		Conductivity: 0.14,
	}
)

var _ ports.PropertyProvider = (*MockPropertyProvider)(nil)

// MockPropertyProvider implements the PropertyProvider interface with
// deterministic responses, call counting and injectable failures for
// middleware tests.
type MockPropertyProvider struct {
	mu sync.Mutex

	table map[string]domain.FluidProperties

	// failures is the number of upcoming lookups that return failErr
	// before the provider starts succeeding.
	failures int
	failErr  error

	calls int
}

// NewMockPropertyProvider creates a provider preloaded with the canonical
// water, air and oil property sets.
func NewMockPropertyProvider() *MockPropertyProvider {
	return &MockPropertyProvider{
		table: map[string]domain.FluidProperties{
			"water": WaterProps,
			"air":   AirProps,
			"oil":   OilProps,
		},
	}
}

// SetFluid registers or replaces the property set for fluidID.
func (m *MockPropertyProvider) SetFluid(fluidID string, props domain.FluidProperties) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.table[fluidID] = props
}

// FailNext makes the next n lookups return err before succeeding again.
func (m *MockPropertyProvider) FailNext(n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = n
	m.failErr = err
}

// Calls returns how many lookups have been performed.
func (m *MockPropertyProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// FluidProperties implements the PropertyProvider interface.
func (m *MockPropertyProvider) FluidProperties(
	_ context.Context, fluidID string, _, _ float64,
) (domain.FluidProperties, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.failures > 0 {
		m.failures--
		return domain.FluidProperties{}, m.failErr
	}

	props, ok := m.table[fluidID]
	if !ok {
		return domain.FluidProperties{}, fmt.Errorf("%w: no property data for fluid %q",
			domain.ErrMissingProperties, fluidID)
	}
	return props, nil
}
