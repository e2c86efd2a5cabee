// Package sampler turns cumulative platform counters into the figures of a
// host snapshot. Every read goes through package fallible, so a snapshot
// always comes back complete, with unavailable figures reported as zero.
package sampler

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Dicklesworthstone/hostpulse/internal/fallible"
	"github.com/Dicklesworthstone/hostpulse/internal/model"
	"github.com/Dicklesworthstone/hostpulse/internal/platform"
)

// Read sources passed to fallible.Reporter.
const (
	SourceCPUTicks       = "cpu_ticks"
	SourceMemory         = "memory"
	SourceNetInterfaces  = "net_interfaces"
	SourceNetCounters    = "net_counters"
	SourceProcesses      = "processes"
	SourceProcessPID     = "process_pid"
	SourceProcessName    = "process_name"
	SourceProcessCPU     = "process_cpu"
	SourceProcessMemory  = "process_memory"
	SourceProcessCmdline = "process_cmdline"

	// Whole snapshot sections, reported when a section panicked outright.
	SectionCPU       = "section_cpu"
	SectionMemory    = "section_memory"
	SectionNetwork   = "section_network"
	SectionProcesses = "section_processes"
)

const tracerName = "github.com/Dicklesworthstone/hostpulse/internal/sampler"

// Sampler assembles snapshots. It owns the CPU and network baselines, each
// behind its own lock, and is safe for concurrent use.
type Sampler struct {
	provider platform.Provider
	reporter fallible.Reporter
	clock    clock.Clock
	tracer   trace.Tracer
	limit    int

	cpu   *CPUEstimator
	net   *NetworkEstimator
	procs *ProcessRanker
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithClock sets the clock used for network timestamps and Stream ticks.
func WithClock(c clock.Clock) Option {
	return func(s *Sampler) { s.clock = c }
}

// WithReporter sets where failed reads are reported.
func WithReporter(r fallible.Reporter) Option {
	return func(s *Sampler) { s.reporter = r }
}

// WithProcessLimit caps the process table; values <= 0 keep DefaultProcessLimit.
func WithProcessLimit(n int) Option {
	return func(s *Sampler) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Sampler) { s.tracer = tp.Tracer(tracerName) }
}

// New builds a Sampler over provider. The CPU baseline is read here, so the
// first snapshot already reports CPU load; network starts at 0.
func New(ctx context.Context, provider platform.Provider, opts ...Option) *Sampler {
	s := &Sampler{
		provider: provider,
		reporter: fallible.Discard,
		clock:    clock.New(),
		tracer:   otel.Tracer(tracerName),
		limit:    DefaultProcessLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cpu = NewCPUEstimator(ctx, provider, s.reporter)
	s.net = NewNetworkEstimator(provider, s.reporter, s.clock)
	s.procs = NewProcessRanker(provider, s.reporter, s.limit)
	return s
}

// ProcessLimit returns the process table cap.
func (s *Sampler) ProcessLimit() int { return s.limit }

// Snapshot reads the provider and returns a fully populated snapshot. It
// never fails; a section that cannot be computed carries its zero value.
func (s *Sampler) Snapshot(ctx context.Context) model.Snapshot {
	ctx, span := s.tracer.Start(ctx, "sampler.Snapshot")
	defer span.End()

	snap := model.Snapshot{Timestamp: s.clock.Now()}

	// Host memory and process memory share one total-memory reading.
	mem := fallible.Read(s.reporter, SourceMemory, model.MemoryStat{}, func() (model.MemoryStat, error) {
		return s.provider.Memory(ctx)
	})
	snap.Processes = fallible.Value(s.reporter, SectionProcesses, []model.ProcessView{}, func() []model.ProcessView {
		return s.procs.Top(ctx, mem.TotalBytes)
	})
	snap.MemoryPercent = round(fallible.Value(s.reporter, SectionMemory, 0.0, func() float64 {
		return MemoryPercent(mem)
	}), 1)
	snap.CPUPercent = round(fallible.Value(s.reporter, SectionCPU, 0.0, func() float64 {
		return s.cpu.Percent(ctx)
	}), 1)
	snap.NetworkMbps = round(fallible.Value(s.reporter, SectionNetwork, 0.0, func() float64 {
		return s.net.Mbps(ctx)
	}), 3)
	if snap.Processes == nil {
		snap.Processes = []model.ProcessView{}
	}

	span.SetAttributes(
		attribute.Float64("hostpulse.cpu_percent", snap.CPUPercent),
		attribute.Float64("hostpulse.memory_percent", snap.MemoryPercent),
		attribute.Float64("hostpulse.network_mbps", snap.NetworkMbps),
		attribute.Int("hostpulse.processes", len(snap.Processes)),
	)
	return snap
}

// Stream returns a channel that receives a snapshot every interval until ctx
// is done. Callers that only answer requests use Snapshot instead.
func (s *Sampler) Stream(ctx context.Context, interval time.Duration) <-chan model.Snapshot {
	ch := make(chan model.Snapshot)
	go func() {
		ticker := s.clock.Ticker(interval)
		defer ticker.Stop()
		defer close(ch)
		for {
			select {
			case <-ticker.C:
				select {
				case ch <- s.Snapshot(ctx):
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
