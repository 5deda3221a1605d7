package car

import (
	"github.com/f1strategy/pitwall/internal/calc"
)

const (
	// Lap time penalty in seconds per kilogram of fuel.
	fuelEffectPerKG = 0.03

	// AvgFuelPerLapKG is the typical race fuel consumption rate.
	AvgFuelPerLapKG = 1.8

	// MaxFuelCapacityKG is the regulation fuel limit.
	MaxFuelCapacityKG = 110.0
)

// FuelEffectResult is the lap time cost of the current fuel load.
type FuelEffectResult struct {
	FuelPenaltyS float64 `json:"fuel_penalty_s"`
	FuelLoadKG   float64 `json:"fuel_load_kg"`
}

// FuelEffect computes the lap time penalty of carrying a fuel load,
// clamped to the regulation capacity.
func FuelEffect(fuelLoadKG float64) FuelEffectResult {
	load := calc.Clamp(fuelLoadKG, 0, MaxFuelCapacityKG)
	return FuelEffectResult{
		FuelPenaltyS: load * fuelEffectPerKG,
		FuelLoadKG:   load,
	}
}

// StintFuelResult tracks how the fuel penalty burns off over a stint.
type StintFuelResult struct {
	LapPenaltiesS   []float64 `json:"lap_penalties_s"`
	AveragePenaltyS float64   `json:"average_penalty_s"`
	TotalReductionS float64   `json:"total_fuel_effect_reduction_s"`
	InitialFuelKG   float64   `json:"initial_fuel_kg"`
	FinalFuelKG     float64   `json:"final_fuel_kg"`
}

// StintFuelEffect projects per-lap fuel penalties over a stint.
// InitialFuelKG of 0 sizes the load to the stint; fuelPerLap of 0 uses
// the default consumption rate.
func StintFuelEffect(stintLength int, initialFuelKG, fuelPerLap float64) StintFuelResult {
	if fuelPerLap <= 0 {
		fuelPerLap = AvgFuelPerLapKG
	}
	if initialFuelKG <= 0 {
		initialFuelKG = calc.Clamp(float64(stintLength)*fuelPerLap, 0, MaxFuelCapacityKG)
	}

	penalties := make([]float64, 0, stintLength)
	fuel := initialFuelKG
	for lap := 0; lap < stintLength; lap++ {
		penalties = append(penalties, FuelEffect(fuel).FuelPenaltyS)
		fuel -= fuelPerLap
		if fuel < 0 {
			fuel = 0
		}
	}

	out := StintFuelResult{
		LapPenaltiesS: penalties,
		InitialFuelKG: initialFuelKG,
		FinalFuelKG:   fuel,
	}
	if len(penalties) > 0 {
		out.AveragePenaltyS = calc.Mean(penalties)
		out.TotalReductionS = penalties[0] - penalties[len(penalties)-1]
	}
	return out
}

// LapsRemainingOnFuel estimates how many laps the current fuel covers.
func LapsRemainingOnFuel(currentFuelKG, fuelPerLap float64) int {
	if fuelPerLap <= 0 {
		fuelPerLap = AvgFuelPerLapKG
	}
	laps := int(currentFuelKG / fuelPerLap)
	if laps < 0 {
		return 0
	}
	return laps
}
