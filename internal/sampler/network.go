package sampler

import (
	"context"
	"sync"

	"github.com/benbjohnson/clock"

	"github.com/Dicklesworthstone/hostpulse/internal/fallible"
	"github.com/Dicklesworthstone/hostpulse/internal/model"
	"github.com/Dicklesworthstone/hostpulse/internal/platform"
)

const bitsPerByte = 8

// NetworkEstimator reports host-wide throughput (sent plus received) in
// megabits per second between consecutive calls. The first call returns 0.
type NetworkEstimator struct {
	provider platform.Provider
	reporter fallible.Reporter
	clock    clock.Clock

	mu       sync.Mutex
	baseline *model.CounterSample
}

// NewNetworkEstimator returns an estimator with no baseline.
func NewNetworkEstimator(provider platform.Provider, reporter fallible.Reporter, clk clock.Clock) *NetworkEstimator {
	if clk == nil {
		clk = clock.New()
	}
	return &NetworkEstimator{provider: provider, reporter: reporter, clock: clk}
}

// Mbps returns throughput since the previous call and replaces the baseline.
func (e *NetworkEstimator) Mbps(ctx context.Context) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	total, ok := e.totalBytes(ctx)
	if !ok {
		// Without a reading there is nothing to diff against next time either.
		e.baseline = nil
		return 0
	}
	cur := model.CounterSample{Value: total, TimestampMs: e.clock.Now().UnixMilli()}
	bytesPerSecond := Rate(e.baseline, cur)
	e.baseline = &cur
	return clampNonNegative(bytesPerSecond * bitsPerByte / 1_000_000)
}

// totalBytes sums sent and received bytes over every readable interface.
// ok is false only when the interface list itself could not be read.
func (e *NetworkEstimator) totalBytes(ctx context.Context) (uint64, bool) {
	ifaces, ok := fallible.Try(e.reporter, SourceNetInterfaces, func() ([]platform.NetInterface, error) {
		return e.provider.NetworkInterfaces(ctx)
	})
	if !ok {
		return 0, false
	}
	var total uint64
	for _, iface := range ifaces {
		if sent := fallible.Read(e.reporter, SourceNetCounters, int64(0), iface.SentBytes); sent > 0 {
			total += uint64(sent)
		}
		if recv := fallible.Read(e.reporter, SourceNetCounters, int64(0), iface.RecvBytes); recv > 0 {
			total += uint64(recv)
		}
	}
	return total, true
}
