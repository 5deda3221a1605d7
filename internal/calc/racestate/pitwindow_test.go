package racestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitWindow(t *testing.T) {
	result := PitWindow(PitWindowInput{
		CurrentTyreAge:   18,
		ExpectedTyreLife: 30,
		RaceLaps:         58,
		CurrentLap:       18,
	})
	require.True(t, result.HasWindow)
	assert.Equal(t, 18, result.WindowOpensLap)
	assert.Equal(t, 22, result.OptimalLap)
	assert.Equal(t, 25, result.WindowClosesLap)
	assert.Less(t, result.WindowOpensLap, result.OptimalLap)
	assert.Less(t, result.OptimalLap, result.WindowClosesLap)
	assert.LessOrEqual(t, result.WindowClosesLap, 58)
}

func TestPitWindowNoWindowLate(t *testing.T) {
	// Fresh tyres two laps from the flag leave no window to use.
	result := PitWindow(PitWindowInput{
		CurrentTyreAge:   0,
		ExpectedTyreLife: 30,
		RaceLaps:         58,
		CurrentLap:       56,
	})
	assert.False(t, result.HasWindow)
}

func TestAdjustForTraffic(t *testing.T) {
	window := PitWindowResult{
		OptimalLap:      22,
		WindowOpensLap:  18,
		WindowClosesLap: 25,
		HasWindow:       true,
	}

	clear := AdjustForTraffic(window, nil, 3)
	assert.Equal(t, 22, clear.AdjustedLap)
	assert.Equal(t, "optimal lap is clear", clear.Reason)

	// Delaying is preferred over advancing at the same offset.
	delayed := AdjustForTraffic(window, []int{22}, 3)
	assert.Equal(t, 23, delayed.AdjustedLap)
	assert.Equal(t, "delayed 1 laps to avoid traffic", delayed.Reason)

	advanced := AdjustForTraffic(window, []int{22, 23}, 3)
	assert.Equal(t, 21, advanced.AdjustedLap)
	assert.Equal(t, "advanced 1 laps to avoid traffic", advanced.Reason)

	blocked := AdjustForTraffic(window, []int{20, 21, 22, 23, 24}, 2)
	assert.Equal(t, 22, blocked.AdjustedLap)
	assert.Equal(t, "no clear window available, accepting traffic", blocked.Reason)

	none := AdjustForTraffic(PitWindowResult{}, []int{22}, 3)
	assert.False(t, none.HasPit)
	assert.Equal(t, "no pit required", none.Reason)
}

func TestProjectGap(t *testing.T) {
	closing := ProjectGap(5.0, 0.5, 20)
	assert.InDelta(t, -5.0, closing.ProjectedGapS, 1e-9)
	require.True(t, closing.HasLapsToCatch)
	assert.Equal(t, 10, closing.LapsToCatch)

	// A near-zero pace delta is a stable gap.
	stable := ProjectGap(5.0, 0.005, 20)
	assert.False(t, stable.HasLapsToCatch)

	// Falling back never catches.
	dropping := ProjectGap(5.0, -0.5, 20)
	assert.False(t, dropping.HasLapsToCatch)
	assert.InDelta(t, 15.0, dropping.ProjectedGapS, 1e-9)
}

func TestEvaluateUndercut(t *testing.T) {
	works := EvaluateUndercut(3.0, 20.0, 1.5, 3)
	assert.Equal(t, "successful_undercut", works.Outcome)
	assert.Equal(t, "gained", works.PositionChange)
	assert.Equal(t, "high", works.Viability)

	marginal := EvaluateUndercut(3.0, 20.0, 1.0, 3)
	assert.Equal(t, "marginal", marginal.Outcome)
	assert.Equal(t, "very_close", marginal.PositionChange)
	assert.Equal(t, "medium", marginal.Viability)

	fails := EvaluateUndercut(5.0, 20.0, 1.0, 2)
	assert.Equal(t, "failed", fails.Outcome)
	assert.Equal(t, "lost", fails.PositionChange)
	assert.Equal(t, "low", fails.Viability)
}

func TestStintState(t *testing.T) {
	early := StintState(5, 25, 88.2, 88.0)
	assert.InDelta(t, 0.2, early.StintProgress, 1e-9)
	assert.Equal(t, PhaseEarly, early.StintPhase)
	assert.InDelta(t, 0.2, early.PaceDeltaS, 1e-9)

	assert.Equal(t, PhaseMid, StintState(10, 25, 88.5, 88.0).StintPhase)
	assert.Equal(t, PhaseLate, StintState(20, 25, 89.0, 88.0).StintPhase)
	assert.Equal(t, PhaseCritical, StintState(24, 25, 89.5, 88.0).StintPhase)

	// Progress caps at 1 past the expected length.
	over := StintState(30, 25, 90.0, 88.0)
	assert.Equal(t, 1.0, over.StintProgress)
}

func TestPredictRemainingStint(t *testing.T) {
	fresh := PredictRemainingStint(StintStateResult{PaceDeltaS: 0.2, StintPhase: PhaseEarly}, 10)
	assert.Equal(t, "continue", fresh.Recommendation)

	fading := PredictRemainingStint(StintStateResult{PaceDeltaS: 0.8, StintPhase: PhaseMid}, 5)
	assert.Equal(t, "monitor", fading.Recommendation)

	// The critical phase triples the projected loss.
	cooked := PredictRemainingStint(StintStateResult{PaceDeltaS: 1.0, StintPhase: PhaseCritical}, 10)
	assert.Equal(t, "pit_soon", cooked.Recommendation)
	assert.InDelta(t, 4.0, cooked.ExpectedPaceLossS, 1e-9)
}

func TestPositionPressure(t *testing.T) {
	podiumBattle := PositionPressure(PressureInput{
		GapToCarAheadS:  0.8,
		GapToCarBehindS: 0.8,
		Position:        1,
	})
	assert.Equal(t, 10.0, podiumBattle.PressureRating)

	cruising := PositionPressure(PressureInput{
		GapToCarAheadS:  NoCarGapS,
		GapToCarBehindS: NoCarGapS,
		Position:        8,
	})
	assert.Equal(t, 0.0, cruising.PressureRating)

	// The same battle matters less outside the points.
	backmarker := PositionPressure(PressureInput{
		GapToCarAheadS:  0.8,
		GapToCarBehindS: NoCarGapS,
		Position:        15,
	})
	assert.InDelta(t, 3.0, backmarker.PressureRating, 1e-9)
}

func TestDetermineStrategicMode(t *testing.T) {
	attack := DetermineStrategicMode(8.0, 5, 30)
	assert.Equal(t, "attack", attack.Mode)

	defend := DetermineStrategicMode(8.0, 25, 30)
	assert.Equal(t, "defend", defend.Mode)

	balanced := DetermineStrategicMode(5.0, 10, 30)
	assert.Equal(t, "balanced", balanced.Mode)

	manage := DetermineStrategicMode(2.0, 10, 30)
	assert.Equal(t, "manage", manage.Mode)
}
