package driver

import (
	"fmt"
)

// FormTrend describes the direction of recent results.
type FormTrend string

const (
	FormImproving FormTrend = "improving"
	FormStable    FormTrend = "stable"
	FormDeclining FormTrend = "declining"
)

// FormResult is a driver's recent momentum.
type FormResult struct {
	Trend  FormTrend `json:"form_trend"`
	Rating float64   `json:"form_rating"` // 0-10
}

// Form rates recent momentum from finishing positions (chronological,
// oldest first). The window keeps only the most recent races; the trend
// compares first-half and second-half average positions. windowRaces of 0
// uses the default 5.
func Form(recentPositions []int, windowRaces int) FormResult {
	if len(recentPositions) == 0 {
		return FormResult{Trend: FormStable, Rating: 5.0}
	}
	if windowRaces <= 0 {
		windowRaces = 5
	}

	positions := recentPositions
	if len(positions) > windowRaces {
		positions = positions[len(positions)-windowRaces:]
	}

	sum := 0.0
	for _, pos := range positions {
		score := 10.0 - float64(pos-1)/2.0
		if score < 0 {
			score = 0
		}
		sum += score
	}
	rating := sum / float64(len(positions))

	trend := FormStable
	if len(positions) >= 3 {
		mid := len(positions) / 2
		firstSum, secondSum := 0, 0
		for _, p := range positions[:mid] {
			firstSum += p
		}
		for _, p := range positions[mid:] {
			secondSum += p
		}
		change := float64(firstSum)/float64(mid) - float64(secondSum)/float64(len(positions)-mid)
		if change > 2.0 {
			trend = FormImproving
		} else if change < -2.0 {
			trend = FormDeclining
		}
	}

	return FormResult{Trend: trend, Rating: rating}
}

// RacePrediction is an expected next-race result derived from form.
type RacePrediction struct {
	PredictedPosition int     `json:"predicted_position"`
	Confidence        float64 `json:"confidence"`
	Reasoning         string  `json:"reasoning"`
}

// PredictNextRace projects the next finishing position from the last
// three results, nudged one place in the direction of the form trend.
func PredictNextRace(recentPositions []int) RacePrediction {
	if len(recentPositions) == 0 {
		return RacePrediction{PredictedPosition: 10, Confidence: 0.3, Reasoning: "insufficient data"}
	}

	form := Form(recentPositions, 0)

	window := recentPositions
	if len(window) > 3 {
		window = window[len(window)-3:]
	}
	sum := 0
	for _, p := range window {
		sum += p
	}
	recentAvg := float64(sum) / float64(len(window))

	adjustment := 0.0
	confidence := 0.6
	switch form.Trend {
	case FormImproving:
		adjustment = -1.0
		confidence = 0.7
	case FormDeclining:
		adjustment = 1.0
		confidence = 0.7
	}

	predicted := int(recentAvg + adjustment)
	if predicted < 1 {
		predicted = 1
	}
	if predicted > 20 {
		predicted = 20
	}

	return RacePrediction{
		PredictedPosition: predicted,
		Confidence:        confidence,
		Reasoning:         fmt.Sprintf("form trend: %s, rating: %.1f", form.Trend, form.Rating),
	}
}
