package platform

import (
	"context"
	"errors"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/Dicklesworthstone/hostpulse/internal/model"
)

var errNoCPUTimes = errors.New("no cpu times reported")

// Gopsutil reads counters through gopsutil. It works on every OS gopsutil supports.
type Gopsutil struct{}

// NewGopsutil returns a gopsutil-backed provider.
func NewGopsutil() *Gopsutil { return &Gopsutil{} }

func (g *Gopsutil) CPUTicks(ctx context.Context) (model.CPUTicks, error) {
	times, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return model.CPUTicks{}, err
	}
	if len(times) == 0 {
		return model.CPUTicks{}, errNoCPUTimes
	}
	t := times[0]
	var ticks model.CPUTicks
	ticks[model.CPUUser] = secondsToTicks(t.User)
	ticks[model.CPUNice] = secondsToTicks(t.Nice)
	ticks[model.CPUSystem] = secondsToTicks(t.System)
	ticks[model.CPUIdle] = secondsToTicks(t.Idle)
	ticks[model.CPUIOWait] = secondsToTicks(t.Iowait)
	ticks[model.CPUIRQ] = secondsToTicks(t.Irq)
	ticks[model.CPUSoftIRQ] = secondsToTicks(t.Softirq)
	ticks[model.CPUSteal] = secondsToTicks(t.Steal)
	return ticks, nil
}

func (g *Gopsutil) Memory(ctx context.Context) (model.MemoryStat, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return model.MemoryStat{}, err
	}
	return model.MemoryStat{TotalBytes: vm.Total, AvailableBytes: vm.Available}, nil
}

func (g *Gopsutil) NetworkInterfaces(ctx context.Context) ([]NetInterface, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, err
	}
	ifaces := make([]NetInterface, 0, len(counters))
	for _, c := range counters {
		ifaces = append(ifaces, counterIface{name: c.Name, sent: toInt64(c.BytesSent), recv: toInt64(c.BytesRecv)})
	}
	return ifaces, nil
}

func (g *Gopsutil) Processes(ctx context.Context) ([]Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		out = append(out, &gopsutilProcess{ctx: ctx, p: p})
	}
	return out, nil
}

// gopsutilProcess keeps the enumeration context; handles live for one snapshot.
type gopsutilProcess struct {
	ctx context.Context
	p   *process.Process
}

func (g *gopsutilProcess) PID() int32 { return g.p.Pid }

func (g *gopsutilProcess) Name() (string, error) { return g.p.NameWithContext(g.ctx) }

func (g *gopsutilProcess) CPURatio() (float64, error) {
	pct, err := g.p.CPUPercentWithContext(g.ctx)
	if err != nil {
		return 0, err
	}
	return pct / 100, nil
}

func (g *gopsutilProcess) ResidentBytes() (uint64, error) {
	info, err := g.p.MemoryInfoWithContext(g.ctx)
	if err != nil {
		return 0, err
	}
	return info.RSS, nil
}

func (g *gopsutilProcess) Cmdline() (string, error) { return g.p.CmdlineWithContext(g.ctx) }
