// Package driver rates driver pace, consistency, form, error risk and
// wheel-to-wheel racecraft from observed session data.
package driver

import (
	"github.com/f1strategy/pitwall/internal/calc"
)

// Tier is a five-step driver performance classification.
type Tier string

const (
	TierElite        Tier = "elite"
	TierStrong       Tier = "strong"
	TierAverage      Tier = "average"
	TierBelowAverage Tier = "below_average"
	TierWeak         Tier = "weak"
)

// PaceDeltaResult is a driver's pace relative to the field.
type PaceDeltaResult struct {
	PaceDeltaS     float64 `json:"pace_delta_s"` // negative means faster than field
	PercentileRank float64 `json:"percentile_rank"`
}

// PaceDelta compares a driver's average lap time against the field
// average and maps the delta onto a 1-99 percentile rank.
func PaceDelta(lapTimes []float64, fieldAverage float64) PaceDeltaResult {
	if len(lapTimes) == 0 {
		return PaceDeltaResult{PercentileRank: 50.0}
	}
	delta := calc.Mean(lapTimes) - fieldAverage

	var percentile float64
	switch {
	case delta <= -0.5:
		percentile = 99.0
	case delta >= 1.5:
		percentile = 1.0
	default:
		normalized := (delta + 0.5) / 2.0
		percentile = 99.0 - normalized*98.0
	}

	return PaceDeltaResult{
		PaceDeltaS:     delta,
		PercentileRank: calc.Clamp(percentile, 1.0, 99.0),
	}
}

// ClassifyTier buckets a pace delta into a performance tier.
func ClassifyTier(paceDelta float64) Tier {
	switch {
	case paceDelta <= -0.5:
		return TierElite
	case paceDelta <= -0.2:
		return TierStrong
	case paceDelta <= 0.2:
		return TierAverage
	case paceDelta <= 0.8:
		return TierBelowAverage
	default:
		return TierWeak
	}
}
