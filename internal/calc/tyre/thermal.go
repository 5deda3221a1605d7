package tyre

import (
	"github.com/f1strategy/pitwall/internal/models"
)

// Lap time penalty in seconds per degree Celsius outside the window.
const tempPenaltyFactor = 0.02

// ThermalResult describes how far a tyre is from its operating window.
type ThermalResult struct {
	TempPenaltySPerLap float64 `json:"temp_penalty_s_per_lap"`
	IsInWindow         bool    `json:"is_in_window"`
	TempDeltaC         float64 `json:"temp_delta_c"`
}

// ThermalWindow computes the lap time penalty for running a compound
// outside its optimal temperature range. The penalty is linear in the
// distance from the nearer window edge.
func ThermalWindow(trackTempC float64, compound models.Compound) ThermalResult {
	return ThermalWindowInRange(trackTempC, models.ProfileFor(compound).OptimalTemp)
}

// ThermalWindowInRange is ThermalWindow with an explicit window, for
// callers with session-specific tyre data.
func ThermalWindowInRange(trackTempC float64, window models.TempRange) ThermalResult {
	var delta float64
	switch {
	case trackTempC < window.MinC:
		delta = window.MinC - trackTempC
	case trackTempC > window.MaxC:
		delta = trackTempC - window.MaxC
	default:
		return ThermalResult{IsInWindow: true}
	}
	return ThermalResult{
		TempPenaltySPerLap: delta * tempPenaltyFactor,
		IsInWindow:         false,
		TempDeltaC:         delta,
	}
}
