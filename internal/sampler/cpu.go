package sampler

import (
	"context"
	"sync"

	"github.com/Dicklesworthstone/hostpulse/internal/fallible"
	"github.com/Dicklesworthstone/hostpulse/internal/model"
	"github.com/Dicklesworthstone/hostpulse/internal/platform"
)

// CPUEstimator reports host CPU utilization between consecutive calls.
type CPUEstimator struct {
	provider platform.Provider
	reporter fallible.Reporter

	mu       sync.Mutex
	baseline model.CPUTicks
	seeded   bool
}

// NewCPUEstimator seeds the baseline immediately so the first Percent call
// already covers a real interval.
func NewCPUEstimator(ctx context.Context, provider platform.Provider, reporter fallible.Reporter) *CPUEstimator {
	e := &CPUEstimator{provider: provider, reporter: reporter}
	e.baseline, e.seeded = e.read(ctx)
	return e
}

func (e *CPUEstimator) read(ctx context.Context) (model.CPUTicks, bool) {
	return fallible.Try(e.reporter, SourceCPUTicks, func() (model.CPUTicks, error) {
		return e.provider.CPUTicks(ctx)
	})
}

// Percent returns utilization in [0, 100] since the previous call (or since
// construction) and moves the baseline to the vector it just read.
func (e *CPUEstimator) Percent(ctx context.Context) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur, ok := e.read(ctx)
	if !ok {
		return 0
	}
	prev, seeded := e.baseline, e.seeded
	e.baseline, e.seeded = cur, true
	if !seeded {
		return 0
	}
	return Utilization(prev, cur)
}

// Utilization is the busy share of all ticks between two vectors, as a
// percentage. A category whose counter went backwards contributes nothing.
// Sums are kept in float64 so large deltas cannot wrap.
func Utilization(prev, cur model.CPUTicks) float64 {
	var busy, total float64
	for i := range cur {
		if cur[i] <= prev[i] {
			continue
		}
		d := float64(cur[i] - prev[i])
		total += d
		if !model.IsIdleState(i) {
			busy += d
		}
	}
	if total == 0 {
		return 0
	}
	return clampPercent(100 * busy / total)
}
