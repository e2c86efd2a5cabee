package sampler

import (
	"math"

	"github.com/Dicklesworthstone/hostpulse/internal/model"
)

// Rate converts two readings of a cumulative counter into units per second.
// It returns 0 when there is no previous reading, when no time has elapsed,
// or when the counter went backwards (reset or wrap).
func Rate(prev *model.CounterSample, cur model.CounterSample) float64 {
	if prev == nil {
		return 0
	}
	elapsed := float64(cur.TimestampMs-prev.TimestampMs) / 1000
	if elapsed <= 0 || cur.Value < prev.Value {
		return 0
	}
	return float64(cur.Value-prev.Value) / elapsed
}

func clampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

func clampNonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
