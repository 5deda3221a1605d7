package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1strategy/pitwall/internal/models"
)

func TestCalculateOptimalStrategyNoStop(t *testing.T) {
	// Hards with 30 laps of life and 18 to go: stay out.
	rec, err := CalculateOptimalStrategy(PitStrategyInput{
		CurrentLap:      40,
		TotalLaps:       58,
		CurrentCompound: models.CompoundHard,
		CurrentTyreAge:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StrategyNoStop, rec.StrategyType)
	assert.Greater(t, rec.OptimalPitLap, 58)
	assert.Equal(t, models.CompoundHard, rec.RecommendedCompound)
	assert.Equal(t, 18, rec.ExpectedStintLength)
	assert.InDelta(t, 0.9, rec.Confidence, 1e-9)
}

func TestCalculateOptimalStrategyStandard(t *testing.T) {
	rec, err := CalculateOptimalStrategy(PitStrategyInput{
		CurrentLap:      10,
		TotalLaps:       58,
		CurrentCompound: models.CompoundMedium,
		CurrentTyreAge:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StrategyStandard, rec.StrategyType)
	assert.Equal(t, 25, rec.OptimalPitLap)
	assert.Equal(t, 22, rec.PitWindowStart)
	assert.Equal(t, 28, rec.PitWindowEnd)
	assert.Equal(t, models.CompoundHard, rec.RecommendedCompound)
	assert.InDelta(t, 0.85, rec.Confidence, 1e-9)
}

func TestCalculateOptimalStrategyUndercut(t *testing.T) {
	// A car ahead within a second makes the undercut the play.
	rec, err := CalculateOptimalStrategy(PitStrategyInput{
		CurrentLap:      10,
		TotalLaps:       58,
		CurrentCompound: models.CompoundMedium,
		CurrentTyreAge:  10,
		GapAheadS:       1.0,
		HasCarAhead:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StrategyUndercut, rec.StrategyType)
	assert.Greater(t, rec.UndercutAdvantageS, 2.0)
}

func TestCalculateOptimalStrategyOvercutAdvantage(t *testing.T) {
	// Fresh tyres and a safe gap behind report a clear-air gain without
	// forcing an overcut call.
	rec, err := CalculateOptimalStrategy(PitStrategyInput{
		CurrentLap:      10,
		TotalLaps:       58,
		CurrentCompound: models.CompoundSoft,
		CurrentTyreAge:  2,
		GapBehindS:      10.0,
		HasCarBehind:    true,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, rec.OvercutAdvantageS, 1e-9)
}

func TestCalculateOptimalStrategyUrgentPit(t *testing.T) {
	// Two laps of soft life left and 28 to run.
	rec, err := CalculateOptimalStrategy(PitStrategyInput{
		CurrentLap:      30,
		TotalLaps:       58,
		CurrentCompound: models.CompoundSoft,
		CurrentTyreAge:  13,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StrategyUrgentPit, rec.StrategyType)
	assert.Equal(t, 32, rec.OptimalPitLap)
}

func TestCalculateOptimalStrategyValidation(t *testing.T) {
	_, err := CalculateOptimalStrategy(PitStrategyInput{TotalLaps: 0})
	assert.Error(t, err)

	_, err = CalculateOptimalStrategy(PitStrategyInput{CurrentLap: 60, TotalLaps: 58})
	assert.Error(t, err)
}

func TestSimulateRaceStrategyOneStop(t *testing.T) {
	plan, err := SimulateRaceStrategy(58, models.CompoundMedium, 1)
	require.NoError(t, err)
	require.Len(t, plan, 2)

	assert.Equal(t, models.CompoundMedium, plan[0].Compound)
	assert.Equal(t, 1, plan[0].StartLap)
	assert.Equal(t, 25, plan[0].EndLap)
	assert.True(t, plan[0].PitAfter)

	assert.Equal(t, models.CompoundHard, plan[1].Compound)
	assert.Equal(t, 26, plan[1].StartLap)
	assert.Equal(t, 58, plan[1].EndLap)
	assert.False(t, plan[1].PitAfter)
}

func TestSimulateRaceStrategyTwoStop(t *testing.T) {
	plan, err := SimulateRaceStrategy(58, models.CompoundSoft, 2)
	require.NoError(t, err)
	require.Len(t, plan, 3)

	// The middle stint must use a second compound.
	assert.NotEqual(t, plan[0].Compound, plan[1].Compound)

	// Stints tile the race with no gaps.
	assert.Equal(t, 1, plan[0].StartLap)
	for i := 1; i < len(plan); i++ {
		assert.Equal(t, plan[i-1].EndLap+1, plan[i].StartLap)
	}
	assert.Equal(t, 58, plan[len(plan)-1].EndLap)
	assert.False(t, plan[len(plan)-1].PitAfter)
}

func TestSimulateRaceStrategyValidation(t *testing.T) {
	_, err := SimulateRaceStrategy(0, models.CompoundMedium, 1)
	assert.Error(t, err)

	_, err = SimulateRaceStrategy(58, models.CompoundMedium, -1)
	assert.Error(t, err)
}
