package tyre

import (
	"github.com/f1strategy/pitwall/internal/calc"
)

// Degradation multiplier at maximum attack.
const maxPushMultiplier = 1.5

// PushPenaltyResult is the degradation cost of aggressive driving.
type PushPenaltyResult struct {
	PushMultiplier         float64 `json:"push_multiplier"`
	EstimatedLifeReduction int     `json:"estimated_life_reduction_laps"`
}

// PushPenalty maps push intensity (0 cruising, 1 maximum attack) linearly
// onto a degradation multiplier in [1.0, 1.5] and estimates the stint life
// lost to it.
func PushPenalty(pushLevel float64, baseStintLength int) PushPenaltyResult {
	push := calc.Clamp01(pushLevel)
	mult := 1.0 + push*(maxPushMultiplier-1.0)
	return PushPenaltyResult{
		PushMultiplier:         mult,
		EstimatedLifeReduction: int(float64(baseStintLength) * (mult - 1.0)),
	}
}

// SustainedPushEffect returns the effective degradation multiplier for a
// whole stint where only part of it is driven at the given push level.
func SustainedPushEffect(pushLevel float64, pushDurationLaps, totalStintLaps int) float64 {
	if totalStintLaps == 0 {
		return 1.0
	}
	pushMult := 1.0 + calc.Clamp01(pushLevel)*(maxPushMultiplier-1.0)
	normalLaps := totalStintLaps - pushDurationLaps
	return (pushMult*float64(pushDurationLaps) + float64(normalLaps)) / float64(totalStintLaps)
}
