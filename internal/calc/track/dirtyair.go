package track

import (
	"math"

	"github.com/f1strategy/pitwall/internal/calc"
)

// Maximum lap time loss when right behind another car.
const maxDirtyAirPenalty = 0.8

// DirtyAirResult is the lap time cost of following another car.
type DirtyAirResult struct {
	PenaltySPerLap float64 `json:"penalty_s_per_lap"`
	GapS           float64 `json:"gap_s"`
}

// DirtyAirPenalty models wake turbulence as an exponential decay of the
// gap with a 1.2 s decay constant, scaled by the track's aero
// sensitivity. Beyond 3 s the effect is zero.
func DirtyAirPenalty(gapS, aeroSensitivity float64) DirtyAirResult {
	gap := math.Max(0, gapS)
	sensitivity := calc.Clamp01(aeroSensitivity)

	distanceFactor := 0.0
	if gap < 3.0 {
		distanceFactor = math.Exp(-gap / 1.2)
	}

	return DirtyAirResult{
		PenaltySPerLap: maxDirtyAirPenalty * distanceFactor * sensitivity,
		GapS:           gap,
	}
}

// StintDirtyAirImpact totals dirty air loss over a stint spent at an
// average gap behind another car.
type StintDirtyAirImpact struct {
	PenaltyPerLapS  float64 `json:"penalty_per_lap_s"`
	TotalStintLossS float64 `json:"total_stint_loss_s"`
	AvgGapS         float64 `json:"avg_gap_s"`
	LapsAffected    int     `json:"laps_affected"`
}

// DirtyAirStintImpact projects total time lost to dirty air over a stint.
func DirtyAirStintImpact(avgGapS float64, stintLength int, aeroSensitivity float64) StintDirtyAirImpact {
	perLap := DirtyAirPenalty(avgGapS, aeroSensitivity)
	return StintDirtyAirImpact{
		PenaltyPerLapS:  perLap.PenaltySPerLap,
		TotalStintLossS: perLap.PenaltySPerLap * float64(stintLength),
		AvgGapS:         avgGapS,
		LapsAffected:    stintLength,
	}
}
