// Package platform defines the Platform Metrics Provider: the raw, cumulative
// OS counters the sampler turns into rates and percentages. Two backends are
// available, gopsutil (any OS) and procfs (Linux only).
package platform

//go:generate mockgen -destination=mock_platform/mock_platform.go -package=mock_platform github.com/Dicklesworthstone/hostpulse/internal/platform Provider,TopProcessLister,NetInterface,Process

import (
	"context"
	"fmt"

	apperrors "github.com/Dicklesworthstone/hostpulse/internal/errors"
	"github.com/Dicklesworthstone/hostpulse/internal/model"
)

// Provider backend names accepted by New.
const (
	KindGopsutil = "gopsutil"
	KindProcfs   = "procfs"
)

// Provider supplies point samples of cumulative host counters. Every method
// may fail independently; callers decide what a failure degrades to.
type Provider interface {
	// CPUTicks returns the host-wide cumulative tick vector.
	CPUTicks(ctx context.Context) (model.CPUTicks, error)
	// Memory returns total and available physical memory.
	Memory(ctx context.Context) (model.MemoryStat, error)
	// NetworkInterfaces lists every interface with cumulative byte counters.
	NetworkInterfaces(ctx context.Context) ([]NetInterface, error)
	// Processes enumerates the whole process table in provider order.
	Processes(ctx context.Context) ([]Process, error)
}

// TopProcessLister is implemented by providers that can rank processes by
// cumulative CPU ratio themselves. Results are descending, ties in
// enumeration order, at most limit long.
type TopProcessLister interface {
	TopProcessesByCPU(ctx context.Context, limit int) ([]Process, error)
}

// NetInterface is one network interface. Counters are cumulative bytes since
// boot; a non-positive value means the counter is unavailable.
type NetInterface interface {
	Name() string
	SentBytes() (int64, error)
	RecvBytes() (int64, error)
}

// Process is a handle on one process table entry. Each field is read
// separately so one unreadable field does not hide the others.
type Process interface {
	PID() int32
	Name() (string, error)
	// CPURatio is cumulative CPU time divided by wall-clock lifetime.
	CPURatio() (float64, error)
	ResidentBytes() (uint64, error)
	Cmdline() (string, error)
}

// Kinds lists the backends New accepts.
func Kinds() []string { return []string{KindGopsutil, KindProcfs} }

// New builds the provider named kind and probes it once. A provider that
// cannot read CPU ticks at all is reported as apperrors.ProviderError.
func New(ctx context.Context, kind string) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch kind {
	case "", KindGopsutil:
		kind = KindGopsutil
		p = NewGopsutil()
	case KindProcfs:
		p, err = newProcfs(DefaultProcMount)
	default:
		err = fmt.Errorf("unknown provider, want one of %v", Kinds())
	}
	if err != nil {
		return nil, apperrors.ProviderError{Kind: kind, Cause: err}
	}
	if _, err := p.CPUTicks(ctx); err != nil {
		return nil, apperrors.ProviderError{Kind: kind, Cause: apperrors.WrapError(err, "probing cpu ticks")}
	}
	return p, nil
}

// counterIface is a NetInterface whose counters were read up front.
type counterIface struct {
	name       string
	sent, recv int64
}

func (c counterIface) Name() string              { return c.name }
func (c counterIface) SentBytes() (int64, error) { return c.sent, nil }
func (c counterIface) RecvBytes() (int64, error) { return c.recv, nil }

// toInt64 converts an unsigned counter, saturating instead of wrapping.
func toInt64(v uint64) int64 {
	const maxInt64 = 1<<63 - 1
	if v > maxInt64 {
		return maxInt64
	}
	return int64(v)
}

// secondsToTicks converts cumulative CPU seconds to model.CPUTicksPerSecond ticks.
func secondsToTicks(s float64) uint64 {
	if !(s > 0) {
		return 0
	}
	return uint64(s*model.CPUTicksPerSecond + 0.5)
}
