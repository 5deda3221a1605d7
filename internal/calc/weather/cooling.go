package weather

import (
	"github.com/f1strategy/pitwall/internal/calc"
)

// CoolingMarginResult is the thermal headroom of the cooling package.
type CoolingMarginResult struct {
	Margin float64 `json:"margin"`
	Status string  `json:"status"` // comfortable, adequate, tight, critical
}

// CoolingMargin nets installed cooling capacity against heat stress from
// ambient and track temperature. Track temperature dominates the stress.
func CoolingMargin(ambientTempC, trackTempC, coolingSpec float64) CoolingMarginResult {
	ambient := calc.Clamp(ambientTempC, -10, 50)
	trackTemp := calc.Clamp(trackTempC, 0, 70)
	spec := calc.Clamp01(coolingSpec)

	ambientStress := (ambient - 20) / 20
	if ambientStress < 0 {
		ambientStress = 0
	}
	trackStress := (trackTemp - 30) / 30
	if trackStress < 0 {
		trackStress = 0
	}
	stress := calc.Clamp01(ambientStress*0.4 + trackStress*0.6)

	margin := 0.3 + spec*0.4 - stress

	var status string
	switch {
	case margin > 0.3:
		status = "comfortable"
	case margin > 0.1:
		status = "adequate"
	case margin > -0.1:
		status = "tight"
	default:
		status = "critical"
	}

	return CoolingMarginResult{Margin: margin, Status: status}
}

// CoolingModeAdvice is a cooling mode recommendation.
type CoolingModeAdvice struct {
	Mode   string `json:"mode"` // minimum, medium, high, maximum
	Reason string `json:"reason"`
	Risk   string `json:"risk"` // low, medium, high
}

// RecommendCoolingMode picks a cooling mode from the available margin.
// Qualifying trades margin for speed when any headroom exists.
func RecommendCoolingMode(margin float64, racePhase string) CoolingModeAdvice {
	if racePhase == "quali" && margin > 0 {
		risk := "medium"
		if margin > 0.2 {
			risk = "low"
		}
		return CoolingModeAdvice{Mode: "minimum", Reason: "maximize speed in qualifying", Risk: risk}
	}
	switch {
	case margin < 0:
		return CoolingModeAdvice{Mode: "maximum", Reason: "thermal stress critical", Risk: "high"}
	case margin < 0.1:
		return CoolingModeAdvice{Mode: "high", Reason: "limited thermal margin", Risk: "medium"}
	default:
		return CoolingModeAdvice{Mode: "medium", Reason: "comfortable thermal margin", Risk: "low"}
	}
}
