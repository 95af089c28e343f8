// Package ports defines the interfaces that form the contract between the
// domain/application layers and the infrastructure layer.
// These interfaces enable dependency inversion and make the engine testable.
package ports

import (
	"context"

	"github.com/thermalab/hxcore/internal/domain"
)

// PropertyProvider supplies temperature- and pressure-dependent fluid
// properties to the correlation layer and thermal solver.
// The core performs exactly one synchronous lookup per side per solve;
// retry and backoff policy belongs to the provider implementation, never
// to the solve pipeline.
type PropertyProvider interface {
	// FluidProperties returns the property set for fluidID at temperature
	// [K] and pressure [Pa]. Implementations must be safe for concurrent
	// use; parametric sweeps call them from multiple goroutines.
	//
	// A lookup failure or an incomplete property set surfaces to the
	// caller as a FlowStateError.
	FluidProperties(ctx context.Context, fluidID string, temperature, pressure float64) (domain.FluidProperties, error)
}

// DiagnosticsSink receives correlation applicability advisories raised
// during a solve. Sinks are invoked fire-and-forget: they must not block,
// and a sink failure never fails the solve.
type DiagnosticsSink interface {
	// Warn delivers one applicability warning. Implementations must return
	// quickly and must not panic; the engine does not inspect any outcome.
	Warn(ctx context.Context, warning domain.ApplicabilityWarning)
}
