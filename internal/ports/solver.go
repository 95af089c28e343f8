package ports

import (
	"context"

	"github.com/thermalab/hxcore/internal/domain"
)

// Solver is the single in-process entry point of the rating engine. It is
// implemented by the application engine and by observability decorators
// that wrap it.
// Each Solve call is a deterministic, synchronous, pure function of its
// immutable inputs; implementations hold no mutable cross-call state, so
// callers may run independent solves concurrently without synchronization.
type Solver interface {
	// Solve rates the exchanger defined by bundle and the two streams and
	// returns the immutable result snapshot, or one error from the domain
	// taxonomy. The returned result is fully populated and owned by the
	// caller.
	Solve(ctx context.Context, bundle domain.TubeBundle, hot, cold domain.StreamState, opts domain.SolveOptions) (*domain.HXResult, error)
}
