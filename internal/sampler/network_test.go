package sampler

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/Dicklesworthstone/hostpulse/internal/platform"
)

func newNetworkFixture() (*fakeProvider, *clock.Mock, *recordingReporter, *NetworkEstimator) {
	p := &fakeProvider{}
	clk := clock.NewMock()
	rep := &recordingReporter{}
	return p, clk, rep, NewNetworkEstimator(p, rep, clk)
}

func assertMbps(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Mbps() = %v, want %v", got, want)
	}
}

func TestNetworkEstimator_FirstCallIsZero(t *testing.T) {
	p, _, _, e := newNetworkFixture()
	p.setInterfaces(fakeIface{name: "eth0", sent: 9_000_000_000, recv: 9_000_000_000})
	assertMbps(t, e.Mbps(context.Background()), 0)
}

func TestNetworkEstimator_OneMegabit(t *testing.T) {
	p, clk, _, e := newNetworkFixture()
	ctx := context.Background()

	p.setInterfaces(
		fakeIface{name: "eth0", sent: 400_000, recv: 500_000},
		fakeIface{name: "lo", sent: 50_000, recv: 50_000},
	)
	assertMbps(t, e.Mbps(ctx), 0)

	clk.Add(time.Second)
	p.setInterfaces(
		fakeIface{name: "eth0", sent: 450_000, recv: 575_000},
		fakeIface{name: "lo", sent: 50_000, recv: 50_000},
	)
	assertMbps(t, e.Mbps(ctx), 1.0)
}

func TestNetworkEstimator_NoTimeElapsed(t *testing.T) {
	p, _, _, e := newNetworkFixture()
	ctx := context.Background()

	p.setInterfaces(fakeIface{name: "eth0", sent: 1000, recv: 1000})
	e.Mbps(ctx)
	p.setInterfaces(fakeIface{name: "eth0", sent: 5000, recv: 5000})
	assertMbps(t, e.Mbps(ctx), 0)
}

func TestNetworkEstimator_CounterResetReplacesBaseline(t *testing.T) {
	p, clk, _, e := newNetworkFixture()
	ctx := context.Background()

	p.setInterfaces(fakeIface{name: "eth0", sent: 5_000_000})
	e.Mbps(ctx)

	clk.Add(time.Second)
	p.setInterfaces(fakeIface{name: "eth0", sent: 1_000_000})
	assertMbps(t, e.Mbps(ctx), 0)

	clk.Add(time.Second)
	p.setInterfaces(fakeIface{name: "eth0", sent: 1_250_000})
	assertMbps(t, e.Mbps(ctx), 2.0)
}

func TestNetworkEstimator_NonPositiveCountersContributeZero(t *testing.T) {
	p, clk, _, e := newNetworkFixture()
	ctx := context.Background()

	p.setInterfaces(fakeIface{name: "eth0", sent: -500, recv: 1_000_000})
	e.Mbps(ctx)

	clk.Add(time.Second)
	p.setInterfaces(fakeIface{name: "eth0", sent: -900, recv: 1_125_000})
	assertMbps(t, e.Mbps(ctx), 1.0)
}

func TestNetworkEstimator_InterfaceFailureIsSkipped(t *testing.T) {
	p, clk, rep, e := newNetworkFixture()
	ctx := context.Background()

	p.setInterfaces(
		fakeIface{name: "eth0", sent: 1_000_000},
		fakeIface{name: "wlan0", sentErr: errUnavailable, recvErr: errUnavailable},
	)
	e.Mbps(ctx)

	clk.Add(time.Second)
	p.setInterfaces(
		fakeIface{name: "eth0", sent: 1_125_000},
		fakeIface{name: "wlan0", sentErr: errUnavailable, recvErr: errUnavailable},
	)
	assertMbps(t, e.Mbps(ctx), 1.0)
	if n := rep.count(SourceNetCounters); n != 4 {
		t.Fatalf("reported %d counter failures, want 4", n)
	}
}

func TestNetworkEstimator_ListFailureDropsBaseline(t *testing.T) {
	p, clk, rep, e := newNetworkFixture()
	ctx := context.Background()

	p.setInterfaces(fakeIface{name: "eth0", sent: 1_000_000})
	e.Mbps(ctx)

	clk.Add(time.Second)
	p.failInterfaces(errUnavailable)
	assertMbps(t, e.Mbps(ctx), 0)
	if rep.count(SourceNetInterfaces) != 1 {
		t.Fatal("interface list failure was not reported")
	}

	clk.Add(time.Second)
	p.setInterfaces(fakeIface{name: "eth0", sent: 1_125_000})
	assertMbps(t, e.Mbps(ctx), 0)

	clk.Add(time.Second)
	p.setInterfaces(fakeIface{name: "eth0", sent: 1_250_000})
	assertMbps(t, e.Mbps(ctx), 1.0)
}

// steppingInterfaces returns an interface list whose sent counter grows by
// 125_000 bytes per read while the clock moves one second, so every interval
// between consecutive reads is exactly 1 Mbps.
func steppingInterfaces(clk *clock.Mock) func() []platform.NetInterface {
	var n int64
	return func() []platform.NetInterface {
		n++
		clk.Add(time.Second)
		return []platform.NetInterface{fakeIface{name: "eth0", sent: n * 125_000}}
	}
}

func TestNetworkEstimator_Concurrent(t *testing.T) {
	p, clk, _, e := newNetworkFixture()
	p.ifaceFn = steppingInterfaces(clk)

	var wg sync.WaitGroup
	results := make(chan float64, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- e.Mbps(context.Background())
		}()
	}
	wg.Wait()
	close(results)

	// Exactly one call finds no baseline; every other call diffs against the
	// reading stored by the call before it.
	zeros := 0
	for got := range results {
		switch {
		case got == 0:
			zeros++
		case math.Abs(got-1.0) > 1e-9:
			t.Fatalf("concurrent Mbps() = %v, want 1", got)
		}
	}
	if zeros != 1 {
		t.Fatalf("%d calls returned 0, want 1", zeros)
	}
}

func TestNetworkEstimator_CounterFailureShrinksBaseline(t *testing.T) {
	p, clk, rep, e := newNetworkFixture()
	ctx := context.Background()

	steady := fakeIface{name: "eth0", sent: 10_000_000_000, recv: 10_000_000_000}
	p.setInterfaces(steady)
	e.Mbps(ctx)

	// The failed fields are skipped, so the stored total drops to zero.
	clk.Add(time.Second)
	p.setInterfaces(fakeIface{name: "eth0", sentErr: errUnavailable, recvErr: errUnavailable})
	assertMbps(t, e.Mbps(ctx), 0)
	if n := rep.count(SourceNetCounters); n != 2 {
		t.Fatalf("reported %d counter failures, want 2", n)
	}

	// The recovered reading is diffed against that smaller total.
	clk.Add(time.Second)
	p.setInterfaces(steady)
	assertMbps(t, e.Mbps(ctx), 160_000)

	clk.Add(time.Second)
	assertMbps(t, e.Mbps(ctx), 0)
}
