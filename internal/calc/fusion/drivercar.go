// Package fusion combines independent calculator outputs into composite
// ratings and a unified race-situation summary.
package fusion

import (
	"github.com/f1strategy/pitwall/internal/calc"
)

// DriverCarResult is the unified driver-plus-car performance rating.
type DriverCarResult struct {
	CombinedPerformance float64 `json:"combined_performance"` // 0-10
}

// DriverCarFusion weights car 60/driver 40 and applies a synergy
// adjustment of up to one point either way. The car dominates because
// the constructor sets the performance ceiling.
func DriverCarFusion(driverRating, carRating, synergyFactor float64) DriverCarResult {
	driver := calc.Clamp(driverRating, 0, 10)
	car := calc.Clamp(carRating, 0, 10)
	synergy := calc.Clamp(synergyFactor, -1, 1)

	combined := car*0.60 + driver*0.40 + synergy
	return DriverCarResult{CombinedPerformance: calc.Clamp(combined, 0, 10)}
}

// RacePaceEstimate converts a combined rating into an expected lap time.
type RacePaceEstimate struct {
	EstimatedLapTimeS    float64 `json:"estimated_lap_time_s"`
	PaceDeltaToBaselineS float64 `json:"pace_delta_to_baseline_s"`
	PerformanceTier      string  `json:"performance_tier"` // elite, strong, midfield, struggling, backmarker
	CombinedPerformance  float64 `json:"combined_performance"`
}

// EstimateRacePace maps a 0-10 combined rating onto a lap time around
// the baseline, worth up to 1.5 s either way at the extremes.
// baselineLapTimeS of 0 uses 90 s.
func EstimateRacePace(combinedPerformance, baselineLapTimeS float64) RacePaceEstimate {
	if baselineLapTimeS == 0 {
		baselineLapTimeS = 90.0
	}
	paceAdjustment := (combinedPerformance - 5.0) / 5.0 * -1.5

	var tier string
	switch {
	case combinedPerformance >= 8.5:
		tier = "elite"
	case combinedPerformance >= 7.0:
		tier = "strong"
	case combinedPerformance >= 5.0:
		tier = "midfield"
	case combinedPerformance >= 3.0:
		tier = "struggling"
	default:
		tier = "backmarker"
	}

	return RacePaceEstimate{
		EstimatedLapTimeS:    baselineLapTimeS + paceAdjustment,
		PaceDeltaToBaselineS: paceAdjustment,
		PerformanceTier:      tier,
		CombinedPerformance:  combinedPerformance,
	}
}
