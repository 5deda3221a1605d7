// Package racestate derives time-varying recommendations from live race
// parameters: gap evolution, pit windows, stint health and positional
// pressure.
package racestate

import (
	"math"
)

// GapProjectionResult is the projected gap between two cars.
// HasLapsToCatch is false when the gap is stable or the catch falls
// outside the projection range.
type GapProjectionResult struct {
	ProjectedGapS      float64 `json:"projected_gap_s"`
	ClosingRateSPerLap float64 `json:"closing_rate_s_per_lap"`
	LapsToCatch        int     `json:"laps_to_catch,omitempty"`
	HasLapsToCatch     bool    `json:"has_laps_to_catch"`
}

// ProjectGap extrapolates a gap linearly. A closing rate within 0.01
// s/lap of zero is treated as a stable gap.
func ProjectGap(currentGapS, paceDeltaS float64, lapsRemaining int) GapProjectionResult {
	projected := currentGapS - paceDeltaS*float64(lapsRemaining)

	out := GapProjectionResult{
		ProjectedGapS:      projected,
		ClosingRateSPerLap: paceDeltaS,
	}
	if math.Abs(paceDeltaS) > 0.01 {
		lapsToCatch := math.Abs(currentGapS / paceDeltaS)
		if paceDeltaS > 0 && lapsToCatch < float64(lapsRemaining) {
			out.LapsToCatch = int(lapsToCatch)
			out.HasLapsToCatch = true
		}
	}
	return out
}

// UndercutViability is the predicted outcome of pitting before a rival.
type UndercutViability struct {
	Outcome        string  `json:"outcome"`         // successful_undercut, marginal, failed
	PositionChange string  `json:"position_change"` // gained, very_close, lost
	NetGapS        float64 `json:"net_gap_s"`
	TimeGainedS    float64 `json:"time_gained_s"`
	Viability      string  `json:"viability"` // high, medium, low
}

// EvaluateUndercut nets the pit loss against fresh-tyre gains over the
// laps the opponent stays out. A negative net gap means the undercut
// takes the position.
func EvaluateUndercut(gapToCarAheadS, pitLossS, newTyreAdvantageS float64, lapsUntilOpponentPits int) UndercutViability {
	gapAfterPit := gapToCarAheadS + pitLossS
	timeGained := newTyreAdvantageS*float64(lapsUntilOpponentPits) + pitLossS
	netGap := gapAfterPit - timeGained

	out := UndercutViability{
		NetGapS:     netGap,
		TimeGainedS: timeGained,
	}
	switch {
	case netGap < 0:
		out.Outcome = "successful_undercut"
		out.PositionChange = "gained"
	case netGap < 2.0:
		out.Outcome = "marginal"
		out.PositionChange = "very_close"
	default:
		out.Outcome = "failed"
		out.PositionChange = "lost"
	}
	switch {
	case netGap < -1.0:
		out.Viability = "high"
	case netGap < 1.0:
		out.Viability = "medium"
	default:
		out.Viability = "low"
	}
	return out
}
