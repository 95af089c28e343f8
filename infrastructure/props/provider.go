// Package props provides property-provider implementations and the
// decorator middleware that wraps them (retry, rate limiting, metrics).
// The solve core performs one synchronous lookup per side; every
// reliability policy for that lookup lives here, behind the
// ports.PropertyProvider contract.
package props

import (
	"context"
	"fmt"

	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

// Middleware wraps a PropertyProvider with additional behavior.
type Middleware func(ports.PropertyProvider) ports.PropertyProvider

// Chain applies middlewares to a base provider. The first middleware in the
// list becomes the outermost layer.
func Chain(base ports.PropertyProvider, middlewares ...Middleware) ports.PropertyProvider {
	provider := base
	for i := len(middlewares) - 1; i >= 0; i-- {
		provider = middlewares[i](provider)
	}
	return provider
}

var _ ports.PropertyProvider = (*ConstantProvider)(nil)

// ConstantProvider serves a fixed property set per fluid, independent of
// temperature and pressure. It suits reference calculations and tests where
// properties are quoted at a single representative state.
type ConstantProvider struct {
	table map[string]domain.FluidProperties
}

// NewConstantProvider creates a provider over a fluid table. The table is
// copied; the provider is immutable and safe for concurrent use.
func NewConstantProvider(table map[string]domain.FluidProperties) *ConstantProvider {
	copied := make(map[string]domain.FluidProperties, len(table))
	for id, p := range table {
		copied[id] = p
	}
	return &ConstantProvider{table: copied}
}

// FluidProperties returns the registered property set for fluidID.
// Unknown fluids fail with an error that the engine surfaces as a
// FlowStateError.
func (p *ConstantProvider) FluidProperties(
	_ context.Context, fluidID string, _, _ float64,
) (domain.FluidProperties, error) {
	props, ok := p.table[fluidID]
	if !ok {
		return domain.FluidProperties{}, fmt.Errorf("%w: no property data for fluid %q",
			domain.ErrMissingProperties, fluidID)
	}
	return props, nil
}
