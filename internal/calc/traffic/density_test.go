package traffic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDensity(t *testing.T) {
	// A full field on a short street circuit is congested.
	monaco := Density(20, 3.3)
	assert.InDelta(t, 6.06, monaco.DensityCarsPerKM, 0.01)
	assert.Equal(t, "very_high", monaco.DensityLevel)

	spa := Density(20, 7.0)
	assert.Equal(t, "low", spa.DensityLevel)

	// Zero cars floors to one.
	empty := Density(0, 5.0)
	assert.InDelta(t, 0.2, empty.DensityCarsPerKM, 1e-9)
}

func TestEstimateImpact(t *testing.T) {
	midfield := EstimateImpact(6.0, 10, 20)
	assert.InDelta(t, 0.6, midfield.PenaltySPerLap, 1e-9)
	assert.Equal(t, "midfield", midfield.AffectedMost)

	leader := EstimateImpact(6.0, 1, 20)
	assert.Less(t, leader.PenaltySPerLap, midfield.PenaltySPerLap)
	assert.Equal(t, "minimal", leader.AffectedMost)
}

func TestDefenseEffectiveness(t *testing.T) {
	result := DefenseEffectiveness(8, 6, 4)
	assert.InDelta(t, 6.6, result.EffectivenessRating, 1e-9)

	// Inputs clamp to the 0-10 scale.
	wild := DefenseEffectiveness(50, -3, 12)
	assert.LessOrEqual(t, wild.EffectivenessRating, 10.0)
	assert.GreaterOrEqual(t, wild.EffectivenessRating, 0.0)
}

func TestEstimateDefenseDuration(t *testing.T) {
	// A defender with equal or better pace holds forever.
	holds := EstimateDefenseDuration(6.6, -0.1)
	assert.Equal(t, 999, holds.LapsHeld)
	assert.Equal(t, "indefinite", holds.Outcome)

	strong := EstimateDefenseDuration(6.6, 0.5)
	assert.Equal(t, 8, strong.LapsHeld)
	assert.Equal(t, "strong_defense", strong.Outcome)

	brief := EstimateDefenseDuration(5.0, 0.8)
	assert.Equal(t, 2, brief.LapsHeld)
	assert.Equal(t, "brief_defense", brief.Outcome)

	hopeless := EstimateDefenseDuration(2.0, 1.0)
	assert.Equal(t, 0, hopeless.LapsHeld)
	assert.Equal(t, "immediate_loss", hopeless.Outcome)
}

func TestOvertakeCost(t *testing.T) {
	result := OvertakeCost(4, 0.5, 1.3)
	assert.InDelta(t, 2.0, result.TimeCostS, 1e-9)
	assert.InDelta(t, 1.2, result.TyreLifeCostLaps, 1e-9)

	// Negative laps floor to zero.
	none := OvertakeCost(-2, 0.5, 1.3)
	assert.Equal(t, 0.0, none.TimeCostS)
}

func TestEvaluateOvertakeViability(t *testing.T) {
	big := EvaluateOvertakeViability(2.0, 1.2, 8.0, 30)
	assert.Equal(t, "highly_recommended", big.Recommendation)
	assert.True(t, big.TyreSustainable)

	modest := EvaluateOvertakeViability(2.0, 1.2, 3.0, 30)
	assert.Equal(t, "recommended", modest.Recommendation)

	// Tyre spend over a fifth of the remaining stint kills the attack.
	shredding := EvaluateOvertakeViability(1.0, 3.0, 5.0, 10)
	assert.Equal(t, "not_recommended", shredding.Recommendation)
	assert.False(t, shredding.TyreSustainable)

	pointless := EvaluateOvertakeViability(2.0, 0.5, 1.5, 30)
	assert.Equal(t, "marginal", pointless.Recommendation)
}

func TestDRSTrainProbability(t *testing.T) {
	// A tight pack on a hard-to-pass track almost guarantees a train.
	packed := DRSTrainProbability(TrainProbabilityInput{
		CarsWithin1S:         3,
		FieldSpreadS:         3.0,
		OvertakingDifficulty: 8.0,
	})
	assert.Equal(t, 1.0, packed.TrainProbability)

	clear := DRSTrainProbability(TrainProbabilityInput{
		CarsWithin1S:         0,
		FieldSpreadS:         25.0,
		OvertakingDifficulty: 2.0,
	})
	assert.Equal(t, 0.0, clear.TrainProbability)

	pair := DRSTrainProbability(TrainProbabilityInput{
		CarsWithin1S: 2,
		FieldSpreadS: 10.0,
	})
	assert.InDelta(t, 0.44, pair.TrainProbability, 1e-9)
}

func TestEstimateTrainImpact(t *testing.T) {
	high := EstimateTrainImpact(0.7, 4, 5)
	assert.InDelta(t, 1.05, high.ExpectedTimeLossS, 1e-9)
	assert.Equal(t, "high train risk, pit early to avoid", high.StrategyNote)

	low := EstimateTrainImpact(0.1, 2, 3)
	assert.Equal(t, "low train risk", low.StrategyNote)
}
