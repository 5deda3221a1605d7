package driver

import (
	"math"

	"github.com/f1strategy/pitwall/internal/calc"
)

// An average driver makes roughly one mistake every 50 laps.
const baseErrorRatePer100 = 2.0

// ErrorRiskInput feeds the per-lap error probability model.
// ErrorProneness of 0 is treated as the neutral 1.0.
type ErrorRiskInput struct {
	PressureLevel   float64 // 0 none, 1 maximum
	FatigueFactor   float64 // 0 fresh, 1 exhausted
	TrackDifficulty float64 // 0-1 error-punishing nature
	ErrorProneness  float64 // 1.0 average, <1 better, >1 worse
}

// ErrorRiskResult is a per-lap mistake probability with its risk label.
type ErrorRiskResult struct {
	ErrorProbabilityPerLap float64 `json:"error_probability_per_lap"`
	RiskLevel              string  `json:"risk_level"`
}

// ErrorRisk estimates the per-lap probability of a driver mistake from
// pressure, fatigue, track difficulty and the driver's own proneness.
// The per-lap probability is capped at 0.2.
func ErrorRisk(in ErrorRiskInput) ErrorRiskResult {
	pressure := calc.Clamp01(in.PressureLevel)
	fatigue := calc.Clamp01(in.FatigueFactor)
	difficulty := calc.Clamp01(in.TrackDifficulty)
	proneness := in.ErrorProneness
	if proneness == 0 {
		proneness = 1.0
	}
	proneness = calc.Clamp(proneness, 0.1, 3.0)

	ratePer100 := baseErrorRatePer100 *
		(0.5 + pressure*1.5) *
		(1.0 + fatigue*0.5) *
		(0.7 + difficulty*0.6) *
		proneness

	p := calc.Clamp(ratePer100/100.0, 0.0, 0.2)

	var level string
	switch {
	case p < 0.01:
		level = "low"
	case p < 0.03:
		level = "medium"
	case p < 0.06:
		level = "high"
	default:
		level = "critical"
	}

	return ErrorRiskResult{ErrorProbabilityPerLap: p, RiskLevel: level}
}

// StintErrorResult extends ErrorRisk across a whole stint assuming
// independent per-lap trials.
type StintErrorResult struct {
	ErrorProbabilityPerLap float64 `json:"error_probability_per_lap"`
	ErrorProbabilityStint  float64 `json:"error_probability_stint"`
	ExpectedErrors         float64 `json:"expected_errors"`
	RiskLevel              string  `json:"risk_level"`
	StintLength            int     `json:"stint_length"`
}

// StintErrorRisk computes the probability of at least one mistake over a
// stint of the given length.
func StintErrorRisk(in ErrorRiskInput, stintLength int) StintErrorResult {
	perLap := ErrorRisk(in)
	return StintErrorResult{
		ErrorProbabilityPerLap: perLap.ErrorProbabilityPerLap,
		ErrorProbabilityStint:  1.0 - math.Pow(1.0-perLap.ErrorProbabilityPerLap, float64(stintLength)),
		ExpectedErrors:         perLap.ErrorProbabilityPerLap * float64(stintLength),
		RiskLevel:              perLap.RiskLevel,
		StintLength:            stintLength,
	}
}
