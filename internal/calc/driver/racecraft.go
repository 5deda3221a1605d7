package driver

import (
	"github.com/f1strategy/pitwall/internal/calc"
)

// RacecraftInput describes a driver's wheel-to-wheel record.
// BattlesFought of 0 defaults to 10.
type RacecraftInput struct {
	OvertakingSuccessRate float64 // 0-1
	DefensiveSuccessRate  float64 // 0-1
	BattlesFought         int
	AvgTimeLostPerBattleS float64
}

// RacecraftResult is a 0-10 wheel-to-wheel rating with its components.
type RacecraftResult struct {
	RacecraftScore   float64 `json:"racecraft_score"`
	OvertakingRating float64 `json:"overtaking_rating"`
	DefensiveRating  float64 `json:"defensive_rating"`
	BattleEfficiency float64 `json:"battle_efficiency"`
}

// Racecraft combines overtaking, defending and battle efficiency into a
// single 0-10 score, nudged up slightly for drivers with a large battle
// sample.
func Racecraft(in RacecraftInput) RacecraftResult {
	overtaking := calc.Clamp01(in.OvertakingSuccessRate) * 10.0
	defensive := calc.Clamp01(in.DefensiveSuccessRate) * 10.0

	battles := in.BattlesFought
	if battles == 0 {
		battles = 10
	}
	if battles < 1 {
		battles = 1
	}

	timeLost := in.AvgTimeLostPerBattleS
	if timeLost < 0 {
		timeLost = 0
	}

	var efficiency float64
	switch {
	case timeLost <= 0.2:
		efficiency = 10.0
	case timeLost >= 1.0:
		efficiency = 0.0
	default:
		efficiency = 10.0 - (timeLost-0.2)/0.8*10.0
	}
	efficiency = calc.Clamp(efficiency, 0, 10)

	frequencyMult := 1.0 + calc.Clamp(float64(battles-5)/150.0, -1, 0.1)
	score := (overtaking*0.40 + defensive*0.30 + efficiency*0.30) * frequencyMult

	return RacecraftResult{
		RacecraftScore:   calc.Clamp(score, 0, 10),
		OvertakingRating: overtaking,
		DefensiveRating:  defensive,
		BattleEfficiency: efficiency,
	}
}

// RacecraftStyle classifies how a driver races wheel-to-wheel.
type RacecraftStyle struct {
	Style         string  `json:"style"`
	Description   string  `json:"description"`
	OverallRating string  `json:"overall_rating"`
	AvgScore      float64 `json:"avg_score"`
}

// ClassifyRacecraftStyle labels a driver's battle profile from the
// component ratings.
func ClassifyRacecraftStyle(overtaking, defensive, efficiency float64) RacecraftStyle {
	var style, description string
	switch {
	case overtaking > defensive+2:
		style = "aggressive_attacker"
		description = "excels at overtaking, prioritizes attack"
	case defensive > overtaking+2:
		style = "defensive_specialist"
		description = "strong defender, holds position well"
	case efficiency >= 7.0:
		style = "efficient_racer"
		description = "minimizes time loss in battles"
	case overtaking >= 7.0 && defensive >= 7.0:
		style = "complete_racer"
		description = "well-rounded wheel-to-wheel skills"
	default:
		style = "developing"
		description = "building racecraft experience"
	}

	avg := (overtaking + defensive + efficiency) / 3.0
	var overall string
	switch {
	case avg >= 8.0:
		overall = "elite"
	case avg >= 6.0:
		overall = "strong"
	case avg >= 4.0:
		overall = "competent"
	default:
		overall = "needs_improvement"
	}

	return RacecraftStyle{
		Style:         style,
		Description:   description,
		OverallRating: overall,
		AvgScore:      avg,
	}
}
