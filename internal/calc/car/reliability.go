package car

import (
	"math"

	"github.com/f1strategy/pitwall/internal/calc"
)

// RiskLevel is a four-step categorical risk label.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Probability thresholds for the categorical risk levels.
const (
	lowRiskThreshold    = 0.2
	mediumRiskThreshold = 0.5
	highRiskThreshold   = 0.8
)

// ClassifyRisk maps a failure probability onto a risk level.
func ClassifyRisk(probability float64) RiskLevel {
	switch {
	case probability < lowRiskThreshold:
		return RiskLow
	case probability < mediumRiskThreshold:
		return RiskMedium
	case probability < highRiskThreshold:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// ReliabilityInput describes a component's usage state.
type ReliabilityInput struct {
	ComponentAgeEvents int
	MaxComponentLife   int
	StressLevel        float64 // 0 easy, 1 maximum
	BaseFailureRate    float64 // historical, 0-1
}

// ReliabilityResult is a failure probability with its risk label.
type ReliabilityResult struct {
	FailureProbability float64   `json:"failure_probability"`
	RiskLevel          RiskLevel `json:"risk_level"`
}

// ReliabilityRisk estimates failure probability from component age, an
// over-allocation penalty once past the allowed life, and operating
// stress. Age risk grows exponentially, capped at 5x.
func ReliabilityRisk(in ReliabilityInput) ReliabilityResult {
	age := in.ComponentAgeEvents
	if age < 0 {
		age = 0
	}
	maxLife := in.MaxComponentLife
	if maxLife < 1 {
		maxLife = 1
	}
	stress := calc.Clamp01(in.StressLevel)
	baseRate := calc.Clamp01(in.BaseFailureRate)

	ageRatio := float64(age) / float64(maxLife)
	ageRisk := math.Min(math.Exp(ageRatio*2)-1, 5.0)

	penalty := 1.0
	if age > in.MaxComponentLife {
		penalty = 1.0 + float64(age-in.MaxComponentLife)*0.5
	}
	stressMult := 1.0 + stress*0.5

	probability := calc.Clamp01(baseRate * ageRisk * penalty * stressMult)
	return ReliabilityResult{
		FailureProbability: probability,
		RiskLevel:          ClassifyRisk(probability),
	}
}

// EventRisk is the projected risk at one upcoming event.
type EventRisk struct {
	Event      int       `json:"event"`
	AgeAtEvent int       `json:"age"`
	Risk       float64   `json:"risk"`
	RiskLevel  RiskLevel `json:"risk_level"`
	IsCritical bool      `json:"is_critical_event"`
}

// ComponentRecommendation advises whether to change a component before
// the upcoming events.
type ComponentRecommendation struct {
	Recommendation string      `json:"recommendation"` // change_component, monitor_closely, continue
	Reason         string      `json:"reason"`
	EventRisks     []EventRisk `json:"event_risks"`
}

// RecommendComponentChange projects risk forward across upcoming events,
// treating critical events (title deciders, home races) as higher stress,
// and recommends change/monitor/continue.
func RecommendComponentChange(currentAge, maxLife, upcomingEvents int, criticalEvents []int) ComponentRecommendation {
	critical := make(map[int]bool, len(criticalEvents))
	for _, e := range criticalEvents {
		critical[e] = true
	}

	risks := make([]EventRisk, 0, upcomingEvents)
	maxRisk := 0.0
	hasHighRisk := false
	criticalAtRisk := false
	for i := 0; i < upcomingEvents; i++ {
		stress := 0.5
		if critical[i] {
			stress = 0.7
		}
		r := ReliabilityRisk(ReliabilityInput{
			ComponentAgeEvents: currentAge + i + 1,
			MaxComponentLife:   maxLife,
			StressLevel:        stress,
			BaseFailureRate:    0.05,
		})
		risks = append(risks, EventRisk{
			Event:      i + 1,
			AgeAtEvent: currentAge + i + 1,
			Risk:       r.FailureProbability,
			RiskLevel:  r.RiskLevel,
			IsCritical: critical[i],
		})
		if r.FailureProbability > maxRisk {
			maxRisk = r.FailureProbability
		}
		if r.RiskLevel == RiskHigh || r.RiskLevel == RiskCritical {
			hasHighRisk = true
		}
		if critical[i] && r.RiskLevel != RiskLow {
			criticalAtRisk = true
		}
	}

	out := ComponentRecommendation{EventRisks: risks}
	switch {
	case criticalAtRisk || hasHighRisk:
		out.Recommendation = "change_component"
		out.Reason = "high failure risk detected"
		if criticalAtRisk {
			out.Reason += " at critical event"
		}
	case maxRisk > mediumRiskThreshold:
		out.Recommendation = "monitor_closely"
		out.Reason = "medium risk, consider strategic change"
	default:
		out.Recommendation = "continue"
		out.Reason = "risk acceptable for upcoming events"
	}
	return out
}
