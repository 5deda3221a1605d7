package tyre

import (
	"fmt"

	"github.com/f1strategy/pitwall/internal/calc"
)

// Rapid performance loss typically begins around 90% of expected life.
const defaultCliffThreshold = 0.90

// LifeProjectionInput parameterizes the remaining-life projection.
// CliffThreshold of 0 uses the default 0.90.
type LifeProjectionInput struct {
	TotalExpectedLife int
	LapsCompleted     int
	DegradationRate   float64 // observed, s/lap
	CliffThreshold    float64
}

// LifeProjectionResult predicts remaining usable life. HasCliffEstimate is
// false once the cliff lap has already been passed.
type LifeProjectionResult struct {
	RemainingLaps    int     `json:"remaining_laps"`
	CliffLapEstimate int     `json:"cliff_lap_estimate,omitempty"`
	HasCliffEstimate bool    `json:"has_cliff_estimate"`
	Confidence       float64 `json:"confidence"`
}

// LifeProjection estimates remaining tyre life and the lap where the
// performance cliff begins. Confidence drops when observed degradation is
// already rapid or the tyre is past its expected life, but never below 0.1.
func LifeProjection(in LifeProjectionInput) LifeProjectionResult {
	threshold := in.CliffThreshold
	if threshold == 0 {
		threshold = defaultCliffThreshold
	}
	threshold = calc.Clamp(threshold, 0.5, 1.0)

	lapsCompleted := in.LapsCompleted
	if lapsCompleted < 0 {
		lapsCompleted = 0
	}

	remaining := in.TotalExpectedLife - lapsCompleted
	if remaining < 0 {
		remaining = 0
	}

	cliffLap := int(float64(in.TotalExpectedLife) * threshold)

	confidence := 0.8
	if in.DegradationRate > 0.1 {
		penalty := (in.DegradationRate - 0.1) * 2
		if penalty > 0.3 {
			penalty = 0.3
		}
		confidence -= penalty
	}
	if lapsCompleted > in.TotalExpectedLife {
		confidence *= 0.5
	}

	out := LifeProjectionResult{
		RemainingLaps: remaining,
		Confidence:    calc.Clamp(confidence, 0.1, 1.0),
	}
	if cliffLap > lapsCompleted {
		out.CliffLapEstimate = cliffLap
		out.HasCliffEstimate = true
	}
	return out
}

// MaxSafeStint returns the longest recommended stint, leaving a safety
// margin of laps before the predicted cliff.
func MaxSafeStint(totalExpectedLife, safetyMarginLaps int) int {
	cliffLap := int(float64(totalExpectedLife) * defaultCliffThreshold)
	maxStint := cliffLap - safetyMarginLaps
	if maxStint < 1 {
		return 1
	}
	return maxStint
}

// StintFeasibility reports whether the current tyres can cover the rest of
// the race, with a short human-readable reason.
func StintFeasibility(remainingRaceLaps, tyreRemainingLife int, requireRacePace bool) (bool, string) {
	switch {
	case tyreRemainingLife >= remainingRaceLaps+2:
		return true, "tyres have comfortable margin"
	case tyreRemainingLife >= remainingRaceLaps:
		if requireRacePace {
			return false, "tyres will barely last but pace will drop"
		}
		return true, "tyres will just last"
	default:
		return false, fmt.Sprintf("tyres %d laps short", remainingRaceLaps-tyreRemainingLife)
	}
}
