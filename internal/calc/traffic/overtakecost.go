package traffic

import (
	"github.com/f1strategy/pitwall/internal/calc"
)

// OvertakeCostResult is what a battle costs in time and tyre life.
type OvertakeCostResult struct {
	TimeCostS        float64 `json:"time_cost_s"`
	TyreLifeCostLaps float64 `json:"tyre_life_cost_laps"`
}

// OvertakeCost totals the dirty air time loss and the extra tyre wear of
// spending laps attacking another car.
func OvertakeCost(lapsInBattle int, dirtyAirPenaltyS, pushDegradationMult float64) OvertakeCostResult {
	laps := lapsInBattle
	if laps < 0 {
		laps = 0
	}
	penalty := calc.Clamp(dirtyAirPenaltyS, 0, 1)
	mult := calc.Clamp(pushDegradationMult, 1, 2)

	return OvertakeCostResult{
		TimeCostS:        float64(laps) * penalty,
		TyreLifeCostLaps: float64(laps) * (mult - 1.0),
	}
}

// OvertakeViability judges whether an attack is worth its cost.
type OvertakeViability struct {
	Recommendation  string  `json:"recommendation"` // highly_recommended, recommended, marginal, not_recommended
	Reason          string  `json:"reason"`
	NetTimeGainS    float64 `json:"net_time_gain_s"`
	TyreSustainable bool    `json:"tyre_sustainable"`
	TyreCostLaps    float64 `json:"tyre_life_cost_laps"`
}

// EvaluateOvertakeViability nets the expected gain against the attack
// cost and checks the tyre spend stays under a fifth of the remaining
// stint.
func EvaluateOvertakeViability(timeCostS, tyreCostLaps, expectedGainS float64, remainingStintLaps int) OvertakeViability {
	netGain := expectedGainS - timeCostS
	sustainable := tyreCostLaps < float64(remainingStintLaps)*0.2

	out := OvertakeViability{
		NetTimeGainS:    netGain,
		TyreSustainable: sustainable,
		TyreCostLaps:    tyreCostLaps,
	}
	switch {
	case netGain > 5.0 && sustainable:
		out.Recommendation = "highly_recommended"
		out.Reason = "large time gain with acceptable tyre cost"
	case netGain > 0 && sustainable:
		out.Recommendation = "recommended"
		out.Reason = "positive time gain, manageable tyre cost"
	case !sustainable:
		out.Recommendation = "not_recommended"
		out.Reason = "excessive tyre degradation risk"
	default:
		out.Recommendation = "marginal"
		out.Reason = "minimal benefit, consider track position value"
	}
	return out
}
