// Package weather models track evolution, thermal headroom, compound
// crossover timing and forecast volatility.
package weather

import (
	"math"

	"github.com/f1strategy/pitwall/internal/calc"
)

// Rubbering-in gains at most 15% of grip over a session.
const maxGripImprovement = 0.15

// GripEvolutionInput drives the track evolution model. InitialGrip of 0
// uses the typical green-track 0.85.
type GripEvolutionInput struct {
	LapsCompleted int
	TotalLaps     int
	InitialGrip   float64
	WeatherStable bool
}

// GripEvolutionResult is the current grip level and its lap time cost
// against a fully rubbered-in track.
type GripEvolutionResult struct {
	CurrentGripLevel float64 `json:"current_grip_level"`
	LapTimeDeltaS    float64 `json:"lap_time_delta_s"`
}

// GripEvolution models track grip improving logarithmically as rubber is
// laid down. Unstable weather halves the gain. Each 0.1 of missing grip
// costs 0.3 s of lap time.
func GripEvolution(in GripEvolutionInput) GripEvolutionResult {
	totalLaps := in.TotalLaps
	if totalLaps < 1 {
		totalLaps = 1
	}
	laps := in.LapsCompleted
	if laps < 0 {
		laps = 0
	}
	if laps > totalLaps {
		laps = totalLaps
	}
	initialGrip := in.InitialGrip
	if initialGrip == 0 {
		initialGrip = 0.85
	}
	initialGrip = calc.Clamp(initialGrip, 0.5, 1.0)

	progression := float64(laps) / float64(totalLaps)
	improvementFactor := 0.0
	if progression > 0 {
		improvementFactor = math.Log10(1 + progression*9)
	}

	improvement := maxGripImprovement * improvementFactor
	if !in.WeatherStable {
		improvement *= 0.5
	}

	grip := calc.Clamp01(initialGrip + improvement)
	return GripEvolutionResult{
		CurrentGripLevel: grip,
		LapTimeDeltaS:    (1.0 - grip) * 3.0,
	}
}

// PredictEndOfRaceGrip projects grip at the flag from the current level,
// with diminishing returns on the remaining rubbering-in.
func PredictEndOfRaceGrip(currentLap, totalLaps int, currentGrip float64) float64 {
	if totalLaps < 1 {
		return currentGrip
	}
	remainingProgression := float64(totalLaps-currentLap) / float64(totalLaps)
	additional := maxGripImprovement * math.Log10(1+remainingProgression*9) * 0.5
	return math.Min(1.0, currentGrip+additional)
}
