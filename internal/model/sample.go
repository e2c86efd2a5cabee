package model

import "time"

// CPU tick categories, in the order providers fill CPUTicks.
const (
	CPUUser = iota
	CPUNice
	CPUSystem
	CPUIdle
	CPUIOWait
	CPUIRQ
	CPUSoftIRQ
	CPUSteal
	NumCPUStates
)

// CPUTicksPerSecond is the tick rate providers use when converting CPU seconds to ticks.
const CPUTicksPerSecond = 100

// CPUTicks is a vector of cumulative tick counters indexed by the CPU* constants.
type CPUTicks [NumCPUStates]uint64

// IsIdleState reports whether the tick category at index i counts as idle time.
// Idle and iowait are idle; every other category is busy.
func IsIdleState(i int) bool { return i == CPUIdle || i == CPUIOWait }

// CounterSample is one observation of a cumulative counter.
type CounterSample struct {
	Value       uint64
	TimestampMs int64
}

// MemoryStat is a point sample of host memory in bytes.
type MemoryStat struct {
	TotalBytes     uint64
	AvailableBytes uint64
}

// ProcessSample is a process reading with every field already resolved.
type ProcessSample struct {
	PID           int32
	Name          string
	CPURatio      float64 // cumulative CPU time / lifetime
	ResidentBytes uint64
	Cmdline       string
}

// ProcessView is one row of the snapshot's process table.
type ProcessView struct {
	PID           int32   `json:"pid"`
	Name          string  `json:"name"`
	CPUPercent    float64 `json:"cpu"`
	MemoryPercent float64 `json:"memory"`
	Cmdline       string  `json:"cmd"`
}

// Snapshot is the response for a single request. Values are already rounded:
// cpu and memory to one decimal, network to three, process fields to two.
type Snapshot struct {
	CPUPercent    float64       `json:"cpu"`
	MemoryPercent float64       `json:"memory"`
	NetworkMbps   float64       `json:"network"`
	Processes     []ProcessView `json:"processes"`

	// Timestamp is when assembly started. Not part of the wire shape.
	Timestamp time.Time `json:"-"`
}

// Zero returns an all-zero snapshot with an empty (non-nil) process list.
func Zero() Snapshot { return Snapshot{Timestamp: time.Now(), Processes: []ProcessView{}} }
