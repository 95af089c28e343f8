package props

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

// rateLimitedProvider paces lookups with a token bucket. Parametric sweeps
// can fan out many concurrent solves; this keeps a shared property service
// within its request budget.
type rateLimitedProvider struct {
	next    ports.PropertyProvider
	limiter *rate.Limiter
}

// RateLimitMiddleware creates middleware that enforces a sustained lookup
// rate with the given burst allowance.
func RateLimitMiddleware(limit rate.Limit, burst int) Middleware {
	limiter := rate.NewLimiter(limit, burst)
	return func(next ports.PropertyProvider) ports.PropertyProvider {
		return &rateLimitedProvider{next: next, limiter: limiter}
	}
}

// FluidProperties waits for a token before forwarding the lookup.
func (r *rateLimitedProvider) FluidProperties(
	ctx context.Context, fluidID string, temperature, pressure float64,
) (domain.FluidProperties, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return domain.FluidProperties{}, fmt.Errorf("property lookup rate limit: %w", err)
	}
	return r.next.FluidProperties(ctx, fluidID, temperature, pressure)
}
