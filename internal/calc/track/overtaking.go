package track

import (
	"github.com/f1strategy/pitwall/internal/calc"
)

// OvertakingInput describes the circuit features that decide how hard
// passing is. Zero fields use typical-circuit defaults.
type OvertakingInput struct {
	DRSZones          int
	LongestStraightM  float64
	AvgCornerSpeedKPH float64
	TrackWidthM       float64
}

// OvertakingResult is a 0-10 difficulty rating with its class label.
type OvertakingResult struct {
	DifficultyRating float64 `json:"difficulty_rating"`
	DifficultyClass  string  `json:"difficulty_class"` // easy, moderate, hard, very_hard
}

// OvertakingDifficulty rates how hard it is to pass at a circuit. More
// DRS zones, longer straights and wider track all reduce the rating.
func OvertakingDifficulty(in OvertakingInput) OvertakingResult {
	drsZones := in.DRSZones
	if drsZones < 0 {
		drsZones = 0
	}
	if drsZones > 5 {
		drsZones = 5
	}
	straight := in.LongestStraightM
	if straight == 0 {
		straight = 500.0
	}
	straight = calc.Clamp(straight, 100, 2000)
	width := in.TrackWidthM
	if width == 0 {
		width = 12.0
	}
	width = calc.Clamp(width, 8, 20)

	drsMult := 1.5 - float64(drsZones)*0.16

	var straightMult float64
	switch {
	case straight < 500:
		straightMult = 1.3
	case straight > 1000:
		straightMult = 0.7
	default:
		straightMult = 1.3 - (straight-500)/500*0.6
	}

	var widthMult float64
	switch {
	case width < 10:
		widthMult = 1.2
	case width > 15:
		widthMult = 0.8
	default:
		widthMult = 1.2 - (width-10)/5*0.4
	}

	rating := calc.Clamp(5.0*drsMult*straightMult*widthMult, 0, 10)

	var class string
	switch {
	case rating < 3.0:
		class = "easy"
	case rating < 5.0:
		class = "moderate"
	case rating < 7.0:
		class = "hard"
	default:
		class = "very_hard"
	}

	return OvertakingResult{DifficultyRating: rating, DifficultyClass: class}
}

// EstimateOvertakesPerRace projects the total on-track passes for a race
// from the difficulty rating, scaled to field size.
func EstimateOvertakesPerRace(difficultyRating float64, fieldSize int) int {
	base := int(50 - difficultyRating*5)
	if base < 5 {
		base = 5
	}
	scaled := int(float64(base) * float64(fieldSize) / 20.0)
	if scaled < 1 {
		return 1
	}
	return scaled
}
