package racestate

import (
	"github.com/f1strategy/pitwall/internal/calc"
)

// NoCarGapS marks the absence of a car ahead or behind.
const NoCarGapS = 99.0

// PressureInput describes the cars around a driver. Use NoCarGapS when
// there is no car within range.
type PressureInput struct {
	GapToCarAheadS  float64
	GapToCarBehindS float64
	Position        int
}

// PressureResult is a 0-10 strategic pressure rating.
type PressureResult struct {
	PressureRating float64 `json:"pressure_rating"`
}

// PositionPressure rates the urgency of the driver's situation. Attack
// and defense pressure are step functions of the gaps, weighted by how
// much the position is worth.
func PositionPressure(in PressureInput) PressureResult {
	attack := gapPressure(in.GapToCarAheadS)
	defense := gapPressure(in.GapToCarBehindS)

	var importance float64
	switch {
	case in.Position <= 3:
		importance = 1.0
	case in.Position <= 10:
		importance = 0.7
	default:
		importance = 0.3
	}

	situational := attack
	if defense > situational {
		situational = defense
	}

	return PressureResult{
		PressureRating: calc.Clamp(situational*importance*10.0, 0, 10),
	}
}

func gapPressure(gapS float64) float64 {
	switch {
	case gapS < 1.0:
		return 1.0
	case gapS < 3.0:
		return 0.7
	case gapS < 5.0:
		return 0.3
	default:
		return 0.0
	}
}

// StrategicMode translates pressure and tyre condition into a driving
// approach.
type StrategicMode struct {
	Mode           string  `json:"mode"` // attack, defend, balanced, manage
	Reason         string  `json:"reason"`
	PressureRating float64 `json:"pressure_rating"`
	TyreCondition  float64 `json:"tyre_condition"`
}

// DetermineStrategicMode picks attack/defend/balanced/manage from the
// pressure rating and how much tyre life remains.
func DetermineStrategicMode(pressureRating float64, tyreAge, expectedTyreLife int) StrategicMode {
	if expectedTyreLife < 1 {
		expectedTyreLife = 1
	}
	tyreCondition := 1.0 - float64(tyreAge)/float64(expectedTyreLife)

	out := StrategicMode{
		PressureRating: pressureRating,
		TyreCondition:  tyreCondition,
	}
	switch {
	case pressureRating > 7.0 && tyreCondition > 0.5:
		out.Mode = "attack"
		out.Reason = "high pressure, good tyres, push for position"
	case pressureRating > 7.0:
		out.Mode = "defend"
		out.Reason = "high pressure, worn tyres, hold position"
	case pressureRating > 4.0:
		out.Mode = "balanced"
		out.Reason = "moderate pressure, balanced approach"
	default:
		out.Mode = "manage"
		out.Reason = "low pressure, manage tyres and fuel"
	}
	return out
}
