package weather

import (
	"math"

	"github.com/f1strategy/pitwall/internal/calc"
)

// VolatilityInput feeds the weather unpredictability score.
type VolatilityInput struct {
	ForecastConfidence   float64 // 0-1, higher is more certain
	CloudCover           float64 // 0-1
	WindVariability      float64 // 0-1
	HistoricalVolatility float64 // 0-1 for this circuit
}

// VolatilityResult is a 0-1 unpredictability score with its label.
type VolatilityResult struct {
	VolatilityScore float64 `json:"volatility_score"`
	VolatilityLevel string  `json:"volatility_level"` // stable, moderate, high
}

// Volatility scores weather unpredictability. Partial cloud cover is the
// most unstable state, so the cloud term peaks at 0.5 coverage.
func Volatility(in VolatilityInput) VolatilityResult {
	confidence := calc.Clamp01(in.ForecastConfidence)
	cloud := calc.Clamp01(in.CloudCover)
	wind := calc.Clamp01(in.WindVariability)
	historical := calc.Clamp01(in.HistoricalVolatility)

	uncertainty := 1.0 - confidence
	cloudInstability := 1.0 - math.Abs(cloud-0.5)*2

	score := calc.Clamp01(uncertainty*0.40 + cloudInstability*0.25 + wind*0.15 + historical*0.20)

	var level string
	switch {
	case score < 0.3:
		level = "stable"
	case score < 0.6:
		level = "moderate"
	default:
		level = "high"
	}

	return VolatilityResult{VolatilityScore: score, VolatilityLevel: level}
}

// StrategyRiskResult weighs weather volatility against strategy
// commitment.
type StrategyRiskResult struct {
	StrategicRisk  float64 `json:"strategic_risk"`
	Recommendation string  `json:"recommendation"` // conservative, balanced, committed
	Reason         string  `json:"reason"`
	Volatility     float64 `json:"volatility"`
}

// StrategyRisk scales volatility by how long the plan is committed for
// and whether spare tyre options remain.
func StrategyRisk(volatilityScore float64, committedStintLength int, tyreFlexibility bool) StrategyRiskResult {
	commitmentMult := 1.0 + math.Min(0.5, float64(committedStintLength-10)/40.0)
	flexibilityReduction := 1.0
	if tyreFlexibility {
		flexibilityReduction = 0.7
	}
	risk := calc.Clamp01(volatilityScore * commitmentMult * flexibilityReduction)

	out := StrategyRiskResult{StrategicRisk: risk, Volatility: volatilityScore}
	switch {
	case risk > 0.7:
		out.Recommendation = "conservative"
		out.Reason = "high weather risk, shorter stints retain flexibility"
	case risk > 0.4:
		out.Recommendation = "balanced"
		out.Reason = "moderate risk, plan for multiple scenarios"
	default:
		out.Recommendation = "committed"
		out.Reason = "low risk, can commit to long-term strategy"
	}
	return out
}
