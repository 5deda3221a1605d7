package track

import (
	"github.com/f1strategy/pitwall/internal/calc"
)

// DifficultyInput describes the circuit features behind the overall
// challenge rating. Zero fields use typical-circuit defaults.
type DifficultyInput struct {
	CornerCount       int
	AvgCornerSpeedKPH float64
	ElevationChangeM  float64
	BarrierProximity  float64 // 0 far, 1 very close
}

// DifficultyResult is a 0-10 overall circuit challenge rating.
type DifficultyResult struct {
	DifficultyRating float64 `json:"difficulty_rating"`
}

// Difficulty rates a circuit's overall challenge from technical
// complexity, corner speed, physical demand and error margin. Slow,
// twisty, walled-in circuits score highest.
func Difficulty(in DifficultyInput) DifficultyResult {
	corners := in.CornerCount
	if corners < 5 {
		corners = 5
	}
	if corners > 30 {
		corners = 30
	}
	cornerSpeed := in.AvgCornerSpeedKPH
	if cornerSpeed == 0 {
		cornerSpeed = 120.0
	}
	cornerSpeed = calc.Clamp(cornerSpeed, 60, 250)
	elevation := calc.Clamp(in.ElevationChangeM, 0, 200)
	barriers := calc.Clamp01(in.BarrierProximity)

	technical := float64(corners) / 3.3
	if technical > 10 {
		technical = 10
	}

	var speedScore float64
	switch {
	case cornerSpeed > 180:
		speedScore = 2.0
	case cornerSpeed < 100:
		speedScore = 8.0
	default:
		speedScore = 8.0 - (cornerSpeed-100)/80*6.0
	}

	physical := 2.0 + calc.Clamp(elevation/100*6.0, 0, 6)
	errorMargin := 2.0 + barriers*8.0

	rating := technical*0.30 + speedScore*0.30 + physical*0.20 + errorMargin*0.20
	return DifficultyResult{DifficultyRating: calc.Clamp(rating, 0, 10)}
}

// ClassifyTrackType buckets a circuit into a broad category.
func ClassifyTrackType(difficultyRating float64, cornerCount int, avgCornerSpeedKPH float64) string {
	switch {
	case avgCornerSpeedKPH > 180 && cornerCount < 15:
		return "high_speed"
	case avgCornerSpeedKPH < 100 && difficultyRating > 7:
		return "street_circuit"
	case cornerCount > 20:
		return "technical"
	case difficultyRating < 4:
		return "flowing"
	default:
		return "balanced"
	}
}
