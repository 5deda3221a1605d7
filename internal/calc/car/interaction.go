package car

import (
	"math"

	"github.com/f1strategy/pitwall/internal/calc"
	"github.com/f1strategy/pitwall/internal/models"
)

// TyreInteractionResult describes how a car's characteristics load and
// heat its tyres.
type TyreInteractionResult struct {
	WearMultiplier        float64 `json:"wear_multiplier"`
	ThermalGeneration     float64 `json:"thermal_generation"` // 0-1
	TempDeltaC            float64 `json:"temp_delta_c"`
	OperatingWindowRating float64 `json:"operating_window_rating"` // 0-1
}

// TyreInteraction models how downforce, weight and power translate into
// tyre wear and heat. Heavy, high-downforce cars wear tyres faster and
// run them hotter; balanced cars keep the widest operating window.
func TyreInteraction(downforceLevel, carWeightKG, powerOutput float64) TyreInteractionResult {
	downforce := calc.Clamp(downforceLevel, 0, 10)
	weight := calc.Clamp(carWeightKG, 700, 800)
	power := calc.Clamp(powerOutput, 0, 10)

	weightFactor := weight / 750.0
	downforceFactor := 0.8 + (downforce/10.0)*0.4

	thermal := (downforce/10.0)*0.6 + (power/10.0)*0.4

	downforceDeviation := math.Abs(downforce-5.0) / 5.0
	powerDeviation := math.Abs(power-5.0) / 5.0
	window := calc.Clamp01(1.0 - (downforceDeviation+powerDeviation)/2.0)

	return TyreInteractionResult{
		WearMultiplier:        weightFactor * downforceFactor,
		ThermalGeneration:     thermal,
		TempDeltaC:            thermal * 8.0,
		OperatingWindowRating: window,
	}
}

// CompoundAdvice is a compound recommendation derived from car character.
type CompoundAdvice struct {
	Recommendation     models.Compound `json:"recommendation"`
	Reason             string          `json:"reason"`
	TempRecommendation models.Compound `json:"temp_recommendation"`
	WearRecommendation models.Compound `json:"wear_recommendation"`
	EffectiveTempC     float64         `json:"effective_temp_c"`
	WearMultiplier     float64         `json:"wear_multiplier"`
}

// RecommendCompound picks a compound from the car's thermal and wear
// character at the given track temperature.
func RecommendCompound(downforceLevel, carWeightKG, powerOutput, trackTempC float64) CompoundAdvice {
	interaction := TyreInteraction(downforceLevel, carWeightKG, powerOutput)
	effectiveTemp := trackTempC + interaction.TempDeltaC

	var tempRec models.Compound
	switch {
	case effectiveTemp < 20:
		tempRec = models.CompoundSoft
	case effectiveTemp < 30:
		tempRec = models.CompoundMedium
	default:
		tempRec = models.CompoundHard
	}

	var wearRec models.Compound
	switch {
	case interaction.WearMultiplier > 1.15:
		wearRec = models.CompoundHard
	case interaction.WearMultiplier < 0.95:
		wearRec = models.CompoundSoft
	default:
		wearRec = models.CompoundMedium
	}

	advice := CompoundAdvice{
		TempRecommendation: tempRec,
		WearRecommendation: wearRec,
		EffectiveTempC:     effectiveTemp,
		WearMultiplier:     interaction.WearMultiplier,
	}
	switch {
	case effectiveTemp > 35:
		advice.Recommendation = models.CompoundHard
		advice.Reason = "high effective temperature requires durable compound"
	case effectiveTemp < 18:
		advice.Recommendation = models.CompoundSoft
		advice.Reason = "low temperature requires heat-generating compound"
	case interaction.WearMultiplier > 1.2:
		advice.Recommendation = models.CompoundHard
		if tempRec == models.CompoundSoft {
			advice.Recommendation = models.CompoundMedium
		}
		advice.Reason = "high wear characteristics favor harder compound"
	default:
		advice.Recommendation = models.CompoundMedium
		advice.Reason = "balanced car characteristics suit medium compound"
	}
	return advice
}
