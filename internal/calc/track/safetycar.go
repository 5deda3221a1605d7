package track

import (
	"github.com/f1strategy/pitwall/internal/calc"
)

// Deployment probability in a typical incident-free-history race.
const baseSCProbability = 0.30

// SafetyCarInput feeds the deployment probability model. HistoricalRate
// below 0 means unknown and falls back to the base probability.
type SafetyCarInput struct {
	BarrierProximity     float64 // 0-1
	HistoricalRate       float64 // track's observed SC rate, -1 if unknown
	WeatherRisk          float64 // 0-1
	FieldCompetitiveness float64 // 0-1, tighter field means more contact
}

// SafetyCarResult is a deployment probability with a four-step label.
type SafetyCarResult struct {
	Probability float64 `json:"probability"`
	RiskLevel   string  `json:"risk_level"` // low, medium, high, critical
}

// SafetyCarProbability multiplies the base (or historical) rate by
// barrier, weather and competitiveness factors, clamped to [0,1].
func SafetyCarProbability(in SafetyCarInput) SafetyCarResult {
	barriers := calc.Clamp01(in.BarrierProximity)
	weather := calc.Clamp01(in.WeatherRisk)
	competitiveness := calc.Clamp01(in.FieldCompetitiveness)

	baseProb := baseSCProbability
	if in.HistoricalRate >= 0 {
		baseProb = calc.Clamp01(in.HistoricalRate)
	}

	probability := calc.Clamp01(baseProb *
		(0.5 + barriers*1.5) *
		(1.0 + weather*1.5) *
		(0.8 + competitiveness*0.5))

	var level string
	switch {
	case probability < 0.2:
		level = "low"
	case probability < 0.5:
		level = "medium"
	case probability < 0.8:
		level = "high"
	default:
		level = "critical"
	}

	return SafetyCarResult{Probability: probability, RiskLevel: level}
}

// SCExpectation projects how much of the race will run behind the
// safety car.
type SCExpectation struct {
	Probability     float64 `json:"sc_probability"`
	ExpectedPeriods float64 `json:"expected_sc_periods"`
	ExpectedSCLaps  int     `json:"expected_sc_laps"`
	RaceLaps        int     `json:"race_laps"`
	StrategyNote    string  `json:"strategy_note"`
}

// EstimateExpectedSCLaps converts a deployment probability into expected
// safety car laps, allowing for multiple deployments in one race.
// avgDurationLaps of 0 uses the typical 5-lap period.
func EstimateExpectedSCLaps(scProbability float64, raceLaps, avgDurationLaps int) SCExpectation {
	if avgDurationLaps == 0 {
		avgDurationLaps = 5
	}
	expectedPeriods := scProbability * 1.5

	var note string
	switch {
	case scProbability > 0.6:
		note = "high SC risk, consider aggressive strategy"
	case scProbability > 0.3:
		note = "moderate SC risk, have contingency plans"
	default:
		note = "low SC risk, plan for clean race"
	}

	return SCExpectation{
		Probability:     scProbability,
		ExpectedPeriods: expectedPeriods,
		ExpectedSCLaps:  int(expectedPeriods * float64(avgDurationLaps)),
		RaceLaps:        raceLaps,
		StrategyNote:    note,
	}
}
