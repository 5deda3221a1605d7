// Package car rates car performance, setup balance, fuel effect,
// reliability risk and how the car treats its tyres.
package car

import (
	"github.com/f1strategy/pitwall/internal/calc"
)

// Default component weights for the composite performance index.
const (
	powerWeight = 0.30
	aeroWeight  = 0.35
	dragWeight  = 0.15
	gripWeight  = 0.20
)

// IndexWeights are custom component weights for the performance index.
// They are re-normalized to sum to 1 before use.
type IndexWeights struct {
	Power float64
	Aero  float64
	Drag  float64
	Grip  float64
}

// PerformanceIndexResult is a 0-10 composite car rating with the weighted
// contribution of each component.
type PerformanceIndexResult struct {
	PerformanceIndex  float64 `json:"performance_index"`
	PowerContribution float64 `json:"power_contribution"`
	AeroContribution  float64 `json:"aero_contribution"`
	DragContribution  float64 `json:"drag_contribution"`
	GripContribution  float64 `json:"grip_contribution"`
}

// PerformanceIndex combines power, aero efficiency, drag and mechanical
// grip ratings (each 0-10) into one 0-10 index. Drag is inverted since
// lower drag is better.
func PerformanceIndex(power, aeroEfficiency, dragCoefficient, mechanicalGrip float64) PerformanceIndexResult {
	return performanceIndex(power, aeroEfficiency, dragCoefficient, mechanicalGrip,
		powerWeight, aeroWeight, dragWeight, gripWeight)
}

// PerformanceIndexWeighted is PerformanceIndex with caller-supplied weights.
func PerformanceIndexWeighted(power, aeroEfficiency, dragCoefficient, mechanicalGrip float64, w IndexWeights) PerformanceIndexResult {
	total := w.Power + w.Aero + w.Drag + w.Grip
	if total == 0 {
		total = 1.0
	}
	return performanceIndex(power, aeroEfficiency, dragCoefficient, mechanicalGrip,
		w.Power/total, w.Aero/total, w.Drag/total, w.Grip/total)
}

func performanceIndex(power, aero, drag, grip, wPower, wAero, wDrag, wGrip float64) PerformanceIndexResult {
	power = calc.Clamp(power, 0, 10)
	aero = calc.Clamp(aero, 0, 10)
	drag = calc.Clamp(drag, 0, 10)
	grip = calc.Clamp(grip, 0, 10)

	powerContrib := power * wPower
	aeroContrib := aero * wAero
	dragContrib := (10.0 - drag) * wDrag
	gripContrib := grip * wGrip

	return PerformanceIndexResult{
		PerformanceIndex:  calc.Clamp(powerContrib+aeroContrib+dragContrib+gripContrib, 0, 10),
		PowerContribution: powerContrib,
		AeroContribution:  aeroContrib,
		DragContribution:  dragContrib,
		GripContribution:  gripContrib,
	}
}
