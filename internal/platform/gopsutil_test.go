package platform

import (
	"context"
	"testing"
)

func TestGopsutil_ReadsHost(t *testing.T) {
	if testing.Short() {
		t.Skip("reads live host counters")
	}
	ctx := context.Background()
	g := NewGopsutil()

	ticks, err := g.CPUTicks(ctx)
	if err != nil {
		t.Skipf("cpu times unavailable here: %v", err)
	}
	var total uint64
	for _, v := range ticks {
		total += v
	}
	if total == 0 {
		t.Fatal("CPUTicks() returned an all-zero vector")
	}

	mem, err := g.Memory(ctx)
	if err != nil {
		t.Fatalf("Memory() error = %v", err)
	}
	if mem.TotalBytes == 0 || mem.AvailableBytes > mem.TotalBytes {
		t.Fatalf("Memory() = %+v", mem)
	}

	procs, err := g.Processes(ctx)
	if err != nil {
		t.Fatalf("Processes() error = %v", err)
	}
	if len(procs) == 0 {
		t.Fatal("Processes() returned no processes")
	}
}
