package props

import (
	"context"
	"time"

	"github.com/thermalab/hxcore/internal/domain"
	"github.com/thermalab/hxcore/internal/ports"
)

// meteredProvider records lookup latency and outcome counters through the
// MetricsCollector port.
type meteredProvider struct {
	next    ports.PropertyProvider
	metrics ports.MetricsCollector
}

// MetricsMiddleware creates middleware that instruments lookups.
func MetricsMiddleware(metrics ports.MetricsCollector) Middleware {
	return func(next ports.PropertyProvider) ports.PropertyProvider {
		return &meteredProvider{next: next, metrics: metrics}
	}
}

// FluidProperties forwards the lookup and records its latency and outcome,
// labeled by fluid.
func (m *meteredProvider) FluidProperties(
	ctx context.Context, fluidID string, temperature, pressure float64,
) (domain.FluidProperties, error) {
	start := time.Now()
	props, err := m.next.FluidProperties(ctx, fluidID, temperature, pressure)

	labels := map[string]string{"fluid": fluidID}
	m.metrics.RecordLatency("property_lookup", time.Since(start), labels)
	if err != nil {
		m.metrics.RecordCounter("property_lookup_errors_total", 1, labels)
	} else {
		m.metrics.RecordCounter("property_lookups_total", 1, labels)
	}
	return props, err
}
