package driver

import (
	"github.com/f1strategy/pitwall/internal/calc"
)

// ConsistencyResult measures lap-to-lap variation in driver performance.
type ConsistencyResult struct {
	ConsistencyScore       float64 `json:"consistency_score"` // 0-1, higher is steadier
	StdDevS                float64 `json:"std_dev_s"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
}

// Consistency scores how steady a driver's lap times are via the
// coefficient of variation. A CV of 0.002 or better is a perfect score,
// 0.010 or worse is zero. Fewer than three laps returns the neutral 0.5.
func Consistency(lapTimes []float64, excludeOutliers bool) ConsistencyResult {
	if len(lapTimes) < 3 {
		return ConsistencyResult{ConsistencyScore: 0.5}
	}

	times := lapTimes
	if excludeOutliers && len(lapTimes) >= 5 {
		times = calc.FilterOutliersIQR(lapTimes)
	}

	mean := calc.Mean(times)
	stdDev := calc.StdDev(times)
	cv := 0.0
	if mean > 0 {
		cv = stdDev / mean
	}

	var score float64
	switch {
	case cv <= 0.002:
		score = 1.0
	case cv >= 0.010:
		score = 0.0
	default:
		score = 1.0 - (cv-0.002)/0.008
	}

	return ConsistencyResult{
		ConsistencyScore:       calc.Clamp01(score),
		StdDevS:                stdDev,
		CoefficientOfVariation: cv,
	}
}

// ClassifyConsistency labels a consistency score.
func ClassifyConsistency(score float64) string {
	switch {
	case score >= 0.8:
		return "very_consistent"
	case score >= 0.6:
		return "consistent"
	case score >= 0.4:
		return "moderate"
	case score >= 0.2:
		return "inconsistent"
	default:
		return "very_inconsistent"
	}
}
