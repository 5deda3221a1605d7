// Package traffic models on-track congestion: density, defense
// effectiveness, overtake cost and DRS train formation.
package traffic

import (
	"math"

	"github.com/f1strategy/pitwall/internal/calc"
)

// DensityResult is congestion measured in cars per kilometer.
type DensityResult struct {
	DensityCarsPerKM float64 `json:"density_cars_per_km"`
	DensityLevel     string  `json:"density_level"` // low, moderate, high, very_high
}

// Density computes cars per kilometer of track. Monaco runs around six
// cars per km, Spa closer to three.
func Density(carsOnTrack int, trackLengthKM float64) DensityResult {
	cars := carsOnTrack
	if cars < 1 {
		cars = 1
	}
	if cars > 30 {
		cars = 30
	}
	length := calc.Clamp(trackLengthKM, 2.0, 10.0)

	density := float64(cars) / length

	var level string
	switch {
	case density > 5.0:
		level = "very_high"
	case density > 4.0:
		level = "high"
	case density > 3.0:
		level = "moderate"
	default:
		level = "low"
	}

	return DensityResult{DensityCarsPerKM: density, DensityLevel: level}
}

// TrafficImpact is the estimated lap time cost of running in traffic.
type TrafficImpact struct {
	PenaltySPerLap float64 `json:"traffic_penalty_s_per_lap"`
	Density        float64 `json:"density"`
	PositionFactor float64 `json:"position_factor"`
	AffectedMost   string  `json:"affected_most"`
}

// EstimateImpact scales the density penalty by where the driver runs:
// midfield cars see the most traffic, leaders and backmarkers the least.
func EstimateImpact(density float64, driverPosition, totalCars int) TrafficImpact {
	if totalCars <= 0 {
		totalCars = 20
	}
	midPosition := float64(totalCars) / 2.0
	positionDelta := math.Abs(float64(driverPosition) - midPosition)
	positionFactor := math.Max(0.3, 1.0-positionDelta/midPosition*0.7)

	basePenalty := math.Min(1.0, density/10.0)

	affected := "minimal"
	if positionFactor > 0.7 {
		affected = "midfield"
	}

	return TrafficImpact{
		PenaltySPerLap: basePenalty * positionFactor,
		Density:        density,
		PositionFactor: positionFactor,
		AffectedMost:   affected,
	}
}
