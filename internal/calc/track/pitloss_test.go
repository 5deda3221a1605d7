package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPitLoss(t *testing.T) {
	// Defaults: 300m at 80 vs 200 km/h plus a 2.5s stop.
	result := PitLoss(PitLossInput{})
	laneTime := 300.0 / 1000.0 / 80.0 * 3600.0
	trackTime := 300.0 / 1000.0 / 200.0 * 3600.0
	assert.InDelta(t, laneTime-trackTime+2.5, result.TotalLossS, 1e-9)
	assert.Equal(t, 2.5, result.StationaryTimeS)

	// A longer pit lane costs more.
	long := PitLoss(PitLossInput{PitLaneLengthM: 600})
	assert.Greater(t, long.TotalLossS, result.TotalLossS)
}

func TestPlanPitWindow(t *testing.T) {
	oneStop := PlanPitWindow(50, 30, 22.0, 90.0)
	assert.Equal(t, "1_stop", oneStop.Strategy)
	assert.Equal(t, 25, oneStop.OptimalLap)
	assert.LessOrEqual(t, oneStop.WindowEarliest, oneStop.OptimalLap)
	assert.GreaterOrEqual(t, oneStop.WindowLatest, oneStop.OptimalLap)

	multiStop := PlanPitWindow(70, 20, 22.0, 90.0)
	assert.Equal(t, "4_stop", multiStop.Strategy)
	assert.InDelta(t, 88.0, multiStop.TotalTimeLostS, 1e-9)
}

func TestOvertakingDifficulty(t *testing.T) {
	// Narrow street circuit with one DRS zone and a short straight.
	street := OvertakingDifficulty(OvertakingInput{
		DRSZones:         1,
		LongestStraightM: 400,
		TrackWidthM:      9,
	})
	// Wide power circuit with three DRS zones and a long straight.
	power := OvertakingDifficulty(OvertakingInput{
		DRSZones:         3,
		LongestStraightM: 1200,
		TrackWidthM:      16,
	})
	assert.Greater(t, street.DifficultyRating, power.DifficultyRating)
	assert.Equal(t, "easy", power.DifficultyClass)

	// Always clamped to [0,10].
	for _, r := range []OvertakingResult{street, power} {
		assert.GreaterOrEqual(t, r.DifficultyRating, 0.0)
		assert.LessOrEqual(t, r.DifficultyRating, 10.0)
	}
}

func TestEstimateOvertakesPerRace(t *testing.T) {
	easy := EstimateOvertakesPerRace(2.0, 20)
	hard := EstimateOvertakesPerRace(9.0, 20)
	assert.Greater(t, easy, hard)
	assert.GreaterOrEqual(t, hard, 1)
}

func TestDirtyAirPenalty(t *testing.T) {
	close := DirtyAirPenalty(0.5, 1.0)
	far := DirtyAirPenalty(2.5, 1.0)
	assert.Greater(t, close.PenaltySPerLap, far.PenaltySPerLap)

	// Beyond three seconds the air is clean.
	assert.Equal(t, 0.0, DirtyAirPenalty(3.5, 1.0).PenaltySPerLap)
}

func TestDifficulty(t *testing.T) {
	monacoLike := Difficulty(DifficultyInput{
		CornerCount:       19,
		AvgCornerSpeedKPH: 90,
		ElevationChangeM:  42,
		BarrierProximity:  1.0,
	})
	monzaLike := Difficulty(DifficultyInput{
		CornerCount:       11,
		AvgCornerSpeedKPH: 170,
		ElevationChangeM:  12,
		BarrierProximity:  0.2,
	})
	assert.Greater(t, monacoLike.DifficultyRating, monzaLike.DifficultyRating)
	assert.LessOrEqual(t, monacoLike.DifficultyRating, 10.0)
}

func TestSafetyCarProbability(t *testing.T) {
	streetWet := SafetyCarProbability(SafetyCarInput{
		BarrierProximity:     1.0,
		WeatherRisk:          0.8,
		FieldCompetitiveness: 0.7,
		HistoricalRate:       -1,
	})
	openDry := SafetyCarProbability(SafetyCarInput{
		BarrierProximity:     0.1,
		WeatherRisk:          0.0,
		FieldCompetitiveness: 0.2,
		HistoricalRate:       -1,
	})
	assert.Greater(t, streetWet.Probability, openDry.Probability)
	assert.LessOrEqual(t, streetWet.Probability, 1.0)
	assert.GreaterOrEqual(t, openDry.Probability, 0.0)
}
