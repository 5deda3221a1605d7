package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1strategy/pitwall/internal/models"
)

// lapTelemetry builds a minimal lap with one straight ending in one
// braking zone, offset to the given straight-line speed.
func lapTelemetry(straightKPH float64) []models.TelemetrySample {
	var samples []models.TelemetrySample
	for d := 0.0; d < 300; d += 50 {
		samples = append(samples, models.TelemetrySample{
			DistanceM: d,
			SpeedKPH:  straightKPH,
			Throttle:  1.0,
		})
	}
	samples = append(samples,
		models.TelemetrySample{DistanceM: 300, SpeedKPH: straightKPH - 40, Brake: true},
		models.TelemetrySample{DistanceM: 350, SpeedKPH: straightKPH - 130, Brake: true},
		models.TelemetrySample{DistanceM: 400, SpeedKPH: straightKPH - 100, Throttle: 0.5},
	)
	return samples
}

func TestPredictOvertakeAttack(t *testing.T) {
	prediction, err := PredictOvertake(BattleInput{
		AttackerTelemetry: lapTelemetry(280),
		DefenderTelemetry: lapTelemetry(270),
		GapS:              0.8,
		DRSAvailable:      true,
		TrackDifficulty:   3.0,
	})
	require.NoError(t, err)

	assert.InDelta(t, 22.0, prediction.SpeedAdvantageKPH, 1e-6)
	assert.InDelta(t, 0.88, prediction.OvertakeProbability, 1e-6)
	assert.Equal(t, models.ModeAttack, prediction.RecommendedMode)
	assert.Contains(t, prediction.BestOvertakeZone, "Zone 1")
	assert.Contains(t, prediction.KeyFactors, "Within DRS range")
	assert.Contains(t, prediction.KeyFactors, "Significant speed advantage")
	assert.Contains(t, prediction.KeyFactors, "Track favors overtaking")
	assert.Contains(t, prediction.KeyFactors, "DRS available")
}

func TestPredictOvertakePrepare(t *testing.T) {
	prediction, err := PredictOvertake(BattleInput{
		AttackerTelemetry: lapTelemetry(278),
		DefenderTelemetry: lapTelemetry(270),
		GapS:              1.5,
		TrackDifficulty:   2.0,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ModePrepare, prediction.RecommendedMode)
	assert.Contains(t, prediction.Recommendation, "PREPARE")
}

func TestPredictOvertakeDefend(t *testing.T) {
	prediction, err := PredictOvertake(BattleInput{
		AttackerTelemetry: lapTelemetry(270),
		DefenderTelemetry: lapTelemetry(280),
		GapS:              4.0,
		TrackDifficulty:   9.0,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ModeDefend, prediction.RecommendedMode)
	assert.Contains(t, prediction.KeyFactors, "Gap too large - need multiple laps")
	assert.LessOrEqual(t, prediction.DifficultyRating, 10.0)
}

func TestPredictOvertakeRequiresTelemetry(t *testing.T) {
	_, err := PredictOvertake(BattleInput{DefenderTelemetry: lapTelemetry(270)})
	assert.Error(t, err)

	_, err = PredictOvertake(BattleInput{AttackerTelemetry: lapTelemetry(270)})
	assert.Error(t, err)
}

func TestAnalyzeBattleProgression(t *testing.T) {
	// Half a second a lap closes one second of gap in two laps.
	progression, err := AnalyzeBattleProgression(
		[]float64{89.5, 89.5, 89.5},
		[]float64{90.0, 90.0, 90.0},
	)
	require.NoError(t, err)
	assert.True(t, progression.AttackerFaster)
	assert.InDelta(t, -0.5, progression.PaceDifferenceS, 1e-9)
	assert.InDelta(t, 0.5, progression.ClosingRatePerLapS, 1e-9)
	require.True(t, progression.HasClosingEstimate)
	assert.InDelta(t, 2.0, progression.LapsToDRSRange, 1e-9)
	assert.InDelta(t, 5.0, progression.BattleDurationEstimate, 1e-9)
}

func TestAnalyzeBattleProgressionSlowAttacker(t *testing.T) {
	progression, err := AnalyzeBattleProgression(
		[]float64{90.5, 90.5},
		[]float64{90.0, 90.0},
	)
	require.NoError(t, err)
	assert.False(t, progression.AttackerFaster)
	assert.False(t, progression.HasClosingEstimate)
}

func TestAnalyzeBattleProgressionDurationCap(t *testing.T) {
	// A tiny pace edge still caps the forecast at ten laps.
	progression, err := AnalyzeBattleProgression(
		[]float64{89.95},
		[]float64{90.0},
	)
	require.NoError(t, err)
	require.True(t, progression.HasClosingEstimate)
	assert.InDelta(t, 10.0, progression.BattleDurationEstimate, 1e-9)
}

func TestAnalyzeBattleProgressionValidation(t *testing.T) {
	_, err := AnalyzeBattleProgression(nil, []float64{90.0})
	assert.Error(t, err)
}
