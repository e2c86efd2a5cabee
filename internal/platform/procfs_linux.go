//go:build linux

package platform

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/procfs"

	"github.com/Dicklesworthstone/hostpulse/internal/model"
)

// DefaultProcMount is where the procfs backend looks for /proc.
const DefaultProcMount = procfs.DefaultMountPoint

// userHZ is the tick rate of /proc/<pid>/stat times, as procfs assumes.
const userHZ = 100

var errNoMemTotal = errors.New("meminfo has no MemTotal")

// Procfs reads counters straight from /proc.
type Procfs struct {
	fs  procfs.FS
	now func() time.Time
}

// NewProcfs returns a provider reading the proc filesystem mounted at mountPoint.
func NewProcfs(mountPoint string) (*Procfs, error) {
	fs, err := procfs.NewFS(mountPoint)
	if err != nil {
		return nil, err
	}
	return &Procfs{fs: fs, now: time.Now}, nil
}

func newProcfs(mountPoint string) (Provider, error) { return NewProcfs(mountPoint) }

func (p *Procfs) CPUTicks(_ context.Context) (model.CPUTicks, error) {
	stat, err := p.fs.Stat()
	if err != nil {
		return model.CPUTicks{}, err
	}
	c := stat.CPUTotal
	var ticks model.CPUTicks
	ticks[model.CPUUser] = secondsToTicks(c.User)
	ticks[model.CPUNice] = secondsToTicks(c.Nice)
	ticks[model.CPUSystem] = secondsToTicks(c.System)
	ticks[model.CPUIdle] = secondsToTicks(c.Idle)
	ticks[model.CPUIOWait] = secondsToTicks(c.Iowait)
	ticks[model.CPUIRQ] = secondsToTicks(c.IRQ)
	ticks[model.CPUSoftIRQ] = secondsToTicks(c.SoftIRQ)
	ticks[model.CPUSteal] = secondsToTicks(c.Steal)
	return ticks, nil
}

func (p *Procfs) Memory(_ context.Context) (model.MemoryStat, error) {
	mi, err := p.fs.Meminfo()
	if err != nil {
		return model.MemoryStat{}, err
	}
	if mi.MemTotal == nil {
		return model.MemoryStat{}, errNoMemTotal
	}
	// meminfo reports kB.
	stat := model.MemoryStat{TotalBytes: *mi.MemTotal * 1024}
	switch {
	case mi.MemAvailable != nil:
		stat.AvailableBytes = *mi.MemAvailable * 1024
	default:
		// Kernels before 3.14 lack MemAvailable.
		stat.AvailableBytes = (deref(mi.MemFree) + deref(mi.Buffers) + deref(mi.Cached)) * 1024
	}
	return stat, nil
}

func (p *Procfs) NetworkInterfaces(_ context.Context) ([]NetInterface, error) {
	dev, err := p.fs.NetDev()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(dev))
	for name := range dev {
		names = append(names, name)
	}
	sort.Strings(names)

	ifaces := make([]NetInterface, 0, len(names))
	for _, name := range names {
		line := dev[name]
		ifaces = append(ifaces, counterIface{name: name, sent: toInt64(line.TxBytes), recv: toInt64(line.RxBytes)})
	}
	return ifaces, nil
}

func (p *Procfs) Processes(_ context.Context) ([]Process, error) {
	procs, err := p.fs.AllProcs()
	if err != nil {
		return nil, err
	}
	// Boot time is shared by every process in the listing; an error only
	// degrades CPURatio.
	var boot bootTime
	if stat, err := p.fs.Stat(); err != nil {
		boot.err = err
	} else {
		boot.seconds = float64(stat.BootTime)
	}
	now := p.now()
	out := make([]Process, 0, len(procs))
	for _, proc := range procs {
		out = append(out, &procfsProcess{proc: proc, now: now, boot: boot})
	}
	return out, nil
}

type bootTime struct {
	seconds float64
	err     error
}

// procfsProcess reads /proc/<pid>/stat at most once per snapshot.
type procfsProcess struct {
	proc procfs.Proc
	now  time.Time
	boot bootTime

	once    sync.Once
	stat    procfs.ProcStat
	statErr error
}

func (p *procfsProcess) loadStat() (procfs.ProcStat, error) {
	p.once.Do(func() { p.stat, p.statErr = p.proc.Stat() })
	return p.stat, p.statErr
}

func (p *procfsProcess) PID() int32 { return int32(p.proc.PID) }

func (p *procfsProcess) Name() (string, error) {
	stat, err := p.loadStat()
	if err != nil {
		return "", err
	}
	return stat.Comm, nil
}

func (p *procfsProcess) CPURatio() (float64, error) {
	stat, err := p.loadStat()
	if err != nil {
		return 0, err
	}
	if p.boot.err != nil {
		return 0, p.boot.err
	}
	start := p.boot.seconds + float64(stat.Starttime)/userHZ
	lifetime := float64(p.now.UnixNano())/float64(time.Second) - start
	if lifetime <= 0 {
		return 0, nil
	}
	return stat.CPUTime() / lifetime, nil
}

func (p *procfsProcess) ResidentBytes() (uint64, error) {
	stat, err := p.loadStat()
	if err != nil {
		return 0, err
	}
	if rss := stat.ResidentMemory(); rss > 0 {
		return uint64(rss), nil
	}
	return 0, nil
}

func (p *procfsProcess) Cmdline() (string, error) {
	args, err := p.proc.CmdLine()
	if err != nil {
		return "", err
	}
	return strings.Join(args, " "), nil
}

func deref(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}
