package sampler

import "github.com/Dicklesworthstone/hostpulse/internal/model"

// MemoryPercent is the used share of physical memory, in [0, 100].
func MemoryPercent(m model.MemoryStat) float64 {
	if m.TotalBytes == 0 {
		return 0
	}
	return clampPercent(100 * (1 - float64(m.AvailableBytes)/float64(m.TotalBytes)))
}
