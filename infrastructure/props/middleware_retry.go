package props

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

// retryProvider retries transient lookup failures with exponential backoff.
// The solve core deliberately contains no retry logic; this middleware is
// where that policy lives for providers backed by remote property services.
type retryProvider struct {
	next            ports.PropertyProvider
	initialInterval time.Duration
	maxElapsed      time.Duration
}

// RetryMiddleware creates middleware that retries failed lookups with
// exponential backoff, starting at initialInterval and giving up once
// maxElapsed is exhausted. initialInterval must be well below maxElapsed or
// no retry fits inside the budget. Context cancellation stops the retries
// immediately.
func RetryMiddleware(initialInterval, maxElapsed time.Duration) Middleware {
	return func(next ports.PropertyProvider) ports.PropertyProvider {
		return &retryProvider{
			next:            next,
			initialInterval: initialInterval,
			maxElapsed:      maxElapsed,
		}
	}
}

// FluidProperties retries the wrapped lookup. Validation failures of the
// returned data are not retried; repeating a lookup cannot fix incomplete
// property tables.
func (r *retryProvider) FluidProperties(
	ctx context.Context, fluidID string, temperature, pressure float64,
) (domain.FluidProperties, error) {
	policy := backoff.NewExponentialBackOff()
	if r.initialInterval > 0 {
		policy.InitialInterval = r.initialInterval
	}
	policy.MaxElapsedTime = r.maxElapsed

	return backoff.RetryWithData(func() (domain.FluidProperties, error) {
		props, err := r.next.FluidProperties(ctx, fluidID, temperature, pressure)
		if err != nil {
			if ctx.Err() != nil {
				return domain.FluidProperties{}, backoff.Permanent(ctx.Err())
			}
			return domain.FluidProperties{}, err
		}
		if verr := props.Validate(); verr != nil {
			return domain.FluidProperties{}, backoff.Permanent(verr)
		}
		return props, nil
	}, backoff.WithContext(policy, ctx))
}
