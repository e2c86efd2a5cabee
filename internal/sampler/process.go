package sampler

import (
	"context"
	"math"
	"sort"

	"github.com/Dicklesworthstone/hostpulse/internal/fallible"
	"github.com/Dicklesworthstone/hostpulse/internal/model"
	"github.com/Dicklesworthstone/hostpulse/internal/platform"
)

// DefaultProcessLimit is how many processes a snapshot lists.
const DefaultProcessLimit = 12

// ProcessRanker selects the processes with the highest cumulative CPU ratio.
// It holds no state between calls.
type ProcessRanker struct {
	provider platform.Provider
	reporter fallible.Reporter
	limit    int
}

// NewProcessRanker returns a ranker capped at limit entries; limit <= 0 means DefaultProcessLimit.
func NewProcessRanker(provider platform.Provider, reporter fallible.Reporter, limit int) *ProcessRanker {
	if limit <= 0 {
		limit = DefaultProcessLimit
	}
	return &ProcessRanker{provider: provider, reporter: reporter, limit: limit}
}

// Limit returns the maximum number of processes Top returns.
func (r *ProcessRanker) Limit() int { return r.limit }

// Top returns up to Limit processes sorted by CPU descending, ties in
// enumeration order. Memory percentages are relative to totalMemory, which
// must come from the same snapshot as the host memory figure.
// A process table that cannot be read yields an empty, non-nil slice.
func (r *ProcessRanker) Top(ctx context.Context, totalMemory uint64) []model.ProcessView {
	samples := r.Samples(ctx)
	views := make([]model.ProcessView, 0, len(samples))
	for _, s := range samples {
		views = append(views, processView(s, totalMemory))
	}
	return views
}

// Samples returns the resolved top processes before percentage conversion.
func (r *ProcessRanker) Samples(ctx context.Context) []model.ProcessSample {
	procs, ok := r.candidates(ctx)
	if !ok {
		return nil
	}

	ranked := make([]rankedProcess, 0, len(procs))
	for _, p := range procs {
		if p == nil {
			continue
		}
		ratio := fallible.Read(r.reporter, SourceProcessCPU, 0.0, p.CPURatio)
		ranked = append(ranked, rankedProcess{proc: p, ratio: sanitizeRatio(ratio)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].ratio > ranked[j].ratio })
	if len(ranked) > r.limit {
		ranked = ranked[:r.limit]
	}

	samples := make([]model.ProcessSample, 0, len(ranked))
	for _, rp := range ranked {
		samples = append(samples, r.resolve(rp))
	}
	return samples
}

// candidates prefers the provider's own ranking when it offers one.
func (r *ProcessRanker) candidates(ctx context.Context) ([]platform.Process, bool) {
	if lister, ok := r.provider.(platform.TopProcessLister); ok {
		return fallible.Try(r.reporter, SourceProcesses, func() ([]platform.Process, error) {
			return lister.TopProcessesByCPU(ctx, r.limit)
		})
	}
	return fallible.Try(r.reporter, SourceProcesses, func() ([]platform.Process, error) {
		return r.provider.Processes(ctx)
	})
}

type rankedProcess struct {
	proc  platform.Process
	ratio float64
}

func (r *ProcessRanker) resolve(rp rankedProcess) model.ProcessSample {
	p := rp.proc
	return model.ProcessSample{
		PID:           fallible.Value(r.reporter, SourceProcessPID, int32(0), p.PID),
		Name:          fallible.Read(r.reporter, SourceProcessName, "", p.Name),
		CPURatio:      rp.ratio,
		ResidentBytes: fallible.Read(r.reporter, SourceProcessMemory, uint64(0), p.ResidentBytes),
		Cmdline:       fallible.Read(r.reporter, SourceProcessCmdline, "", p.Cmdline),
	}
}

func processView(s model.ProcessSample, totalMemory uint64) model.ProcessView {
	var memPct float64
	if totalMemory > 0 {
		memPct = clampPercent(100 * float64(s.ResidentBytes) / float64(totalMemory))
	}
	return model.ProcessView{
		PID:           s.PID,
		Name:          s.Name,
		CPUPercent:    round(clampPercent(s.CPURatio*100), 2),
		MemoryPercent: round(memPct, 2),
		Cmdline:       s.Cmdline,
	}
}

func sanitizeRatio(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
