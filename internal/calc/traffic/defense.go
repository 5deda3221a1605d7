package traffic

import (
	"github.com/f1strategy/pitwall/internal/calc"
)

// DefenseResult is a 0-10 position-holding rating.
type DefenseResult struct {
	EffectivenessRating float64 `json:"effectiveness_rating"`
}

// DefenseEffectiveness rates how well a position can be held under
// attack. Track overtaking difficulty dominates, then straight-line
// speed, then driver skill.
func DefenseEffectiveness(overtakingDifficulty, carStraightSpeed, driverDefensiveSkill float64) DefenseResult {
	difficulty := calc.Clamp(overtakingDifficulty, 0, 10)
	speed := calc.Clamp(carStraightSpeed, 0, 10)
	skill := calc.Clamp(driverDefensiveSkill, 0, 10)

	rating := difficulty*0.50 + speed*0.30 + skill*0.20
	return DefenseResult{EffectivenessRating: calc.Clamp(rating, 0, 10)}
}

// DefenseDuration estimates how long a position can be defended.
type DefenseDuration struct {
	LapsHeld      int     `json:"laps_held"`
	Outcome       string  `json:"outcome"` // indefinite, immediate_loss, brief_defense, moderate_defense, strong_defense
	Effectiveness float64 `json:"effectiveness"`
	PaceDeficitS  float64 `json:"pace_deficit_s"`
}

// EstimateDefenseDuration projects how many laps a defense holds against
// a faster attacker. A non-positive pace deficit means the defense holds
// indefinitely.
func EstimateDefenseDuration(effectiveness, paceDeficitS float64) DefenseDuration {
	if paceDeficitS <= 0 {
		return DefenseDuration{
			LapsHeld:      999,
			Outcome:       "indefinite",
			Effectiveness: effectiveness,
			PaceDeficitS:  paceDeficitS,
		}
	}

	laps := int(effectiveness*2 - paceDeficitS*10)
	if laps < 0 {
		laps = 0
	}

	var outcome string
	switch {
	case laps == 0:
		outcome = "immediate_loss"
	case laps < 3:
		outcome = "brief_defense"
	case laps < 8:
		outcome = "moderate_defense"
	default:
		outcome = "strong_defense"
	}

	return DefenseDuration{
		LapsHeld:      laps,
		Outcome:       outcome,
		Effectiveness: effectiveness,
		PaceDeficitS:  paceDeficitS,
	}
}
