// Package tyre models compound pace deltas, thermal behavior, degradation
// and remaining-life projection for a tyre set.
package tyre

import (
	"math"

	"github.com/f1strategy/pitwall/internal/calc"
	"github.com/f1strategy/pitwall/internal/models"
)

const (
	// Degradation at zero wear in seconds per lap.
	baseDegradation = 0.05

	wearCurveExponent = 1.5
)

// DegradationInput feeds the degradation curve. Zero values are usable:
// the temp factor floors at 0.5 and the push multiplier at its neutral 1.0.
type DegradationInput struct {
	WearLevel      float64 // 0 new, 1 fully worn
	TempFactor     float64 // from thermal window, min 0.5
	TrackAbrasion  float64 // 0 smooth, 1 very abrasive
	PushMultiplier float64 // from push penalty, min 1.0
}

// DegradationResult breaks the current degradation rate into its parts.
type DegradationResult struct {
	RateSPerLap     float64 `json:"degradation_rate_s_per_lap"`
	WearMultiplier  float64 `json:"wear_multiplier"`
	ThermalPenaltyS float64 `json:"thermal_penalty_s"`
}

// DegradationRate computes the current degradation rate. The wear curve is
// exponential so fresh tyres degrade slowly and worn tyres fall off a cliff.
func DegradationRate(in DegradationInput) DegradationResult {
	wear := calc.Clamp01(in.WearLevel)
	abrasion := calc.Clamp01(in.TrackAbrasion)
	tempFactor := math.Max(0.5, in.TempFactor)
	pushMult := math.Max(1.0, in.PushMultiplier)

	wearCurve := math.Exp(wear * wearCurveExponent)
	trackFactor := 1.0 + abrasion*0.5
	baseRate := baseDegradation * wearCurve

	rate := baseRate * trackFactor * tempFactor * pushMult
	thermalPenalty := baseRate * (tempFactor - 1.0) * trackFactor

	return DegradationResult{
		RateSPerLap:     rate,
		WearMultiplier:  wearCurve * trackFactor * tempFactor * pushMult,
		ThermalPenaltyS: math.Max(0, thermalPenalty),
	}
}

// ProjectStintDegradation returns the per-lap degradation rate across a
// stint, assuming wear grows linearly from the initial level to fully worn.
func ProjectStintDegradation(initialWear float64, stintLaps int, in DegradationInput) []float64 {
	if stintLaps <= 0 {
		return nil
	}
	wear := calc.Clamp01(initialWear)
	increment := (1.0 - wear) / float64(stintLaps)

	rates := make([]float64, 0, stintLaps)
	for lap := 0; lap < stintLaps; lap++ {
		in.WearLevel = wear
		rates = append(rates, DegradationRate(in).RateSPerLap)
		wear = math.Min(1.0, wear+increment)
	}
	return rates
}

// CompoundDeltaResult is the pace offset of a compound against the
// MEDIUM baseline.
type CompoundDeltaResult struct {
	Compound        models.Compound `json:"compound"`
	LapTimeDeltaS   float64         `json:"lap_time_delta_s"`
	BaselineAgainst models.Compound `json:"baseline_compound"`
}

// CompoundDelta looks up the per-lap pace delta of a compound versus MEDIUM.
// Negative means faster.
func CompoundDelta(compound models.Compound) CompoundDeltaResult {
	return CompoundDeltaResult{
		Compound:        compound,
		LapTimeDeltaS:   models.ProfileFor(compound).BaselinePaceDeltaS,
		BaselineAgainst: models.CompoundMedium,
	}
}

// RelativeDelta returns the pace delta between two compounds. Positive
// means compound a is slower than compound b.
func RelativeDelta(a, b models.Compound) float64 {
	return models.ProfileFor(a).BaselinePaceDeltaS - models.ProfileFor(b).BaselinePaceDeltaS
}
