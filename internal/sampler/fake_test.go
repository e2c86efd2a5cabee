package sampler

import (
	"context"
	"errors"
	"sync"

	"github.com/Dicklesworthstone/hostpulse/internal/model"
	"github.com/Dicklesworthstone/hostpulse/internal/platform"
)

var errUnavailable = errors.New("unavailable")

// fakeProvider serves scripted readings. CPU ticks are consumed in order and
// the last vector repeats. tickFn and ifaceFn, when set, replace the scripts.
type fakeProvider struct {
	mu sync.Mutex

	ticks   []model.CPUTicks
	tickFn  func() model.CPUTicks
	tickErr error

	memory model.MemoryStat
	memErr error

	ifaces   []platform.NetInterface
	ifaceFn  func() []platform.NetInterface
	ifaceErr error

	procs   []platform.Process
	procErr error

	processCalls int
}

func (f *fakeProvider) CPUTicks(context.Context) (model.CPUTicks, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tickErr != nil {
		return model.CPUTicks{}, f.tickErr
	}
	if f.tickFn != nil {
		return f.tickFn(), nil
	}
	if len(f.ticks) == 0 {
		return model.CPUTicks{}, nil
	}
	t := f.ticks[0]
	if len(f.ticks) > 1 {
		f.ticks = f.ticks[1:]
	}
	return t, nil
}

func (f *fakeProvider) Memory(context.Context) (model.MemoryStat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.memory, f.memErr
}

func (f *fakeProvider) NetworkInterfaces(context.Context) ([]platform.NetInterface, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ifaceErr != nil {
		return nil, f.ifaceErr
	}
	if f.ifaceFn != nil {
		return f.ifaceFn(), nil
	}
	return append([]platform.NetInterface(nil), f.ifaces...), nil
}

func (f *fakeProvider) Processes(context.Context) ([]platform.Process, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.processCalls++
	if f.procErr != nil {
		return nil, f.procErr
	}
	return append([]platform.Process(nil), f.procs...), nil
}

func (f *fakeProvider) setTicks(ticks ...model.CPUTicks) {
	f.mu.Lock()
	f.ticks = ticks
	f.tickErr = nil
	f.mu.Unlock()
}

func (f *fakeProvider) setInterfaces(ifaces ...platform.NetInterface) {
	f.mu.Lock()
	f.ifaces = ifaces
	f.ifaceErr = nil
	f.mu.Unlock()
}

func (f *fakeProvider) failInterfaces(err error) {
	f.mu.Lock()
	f.ifaceErr = err
	f.mu.Unlock()
}

type fakeIface struct {
	name             string
	sent, recv       int64
	sentErr, recvErr error
}

func (i fakeIface) Name() string              { return i.name }
func (i fakeIface) SentBytes() (int64, error) { return i.sent, i.sentErr }
func (i fakeIface) RecvBytes() (int64, error) { return i.recv, i.recvErr }

type fakeProcess struct {
	pid     int32
	name    string
	ratio   float64
	rss     uint64
	cmd     string
	nameErr error
	cpuErr  error
	rssErr  error
	cmdErr  error
}

func (p fakeProcess) PID() int32                     { return p.pid }
func (p fakeProcess) Name() (string, error)          { return p.name, p.nameErr }
func (p fakeProcess) CPURatio() (float64, error)     { return p.ratio, p.cpuErr }
func (p fakeProcess) ResidentBytes() (uint64, error) { return p.rss, p.rssErr }
func (p fakeProcess) Cmdline() (string, error)       { return p.cmd, p.cmdErr }

// recordingReporter collects the sources of failed reads.
type recordingReporter struct {
	mu      sync.Mutex
	sources []string
}

func (r *recordingReporter) ReadFailed(source string, _ error) {
	r.mu.Lock()
	r.sources = append(r.sources, source)
	r.mu.Unlock()
}

func (r *recordingReporter) count(source string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.sources {
		if s == source {
			n++
		}
	}
	return n
}

func ticks(user, system, idle, iowait uint64) model.CPUTicks {
	var t model.CPUTicks
	t[model.CPUUser] = user
	t[model.CPUSystem] = system
	t[model.CPUIdle] = idle
	t[model.CPUIOWait] = iowait
	return t
}
