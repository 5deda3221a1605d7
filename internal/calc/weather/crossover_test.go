package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossoverLap(t *testing.T) {
	// Soft-vs-hard style pairing: half a second faster, 0.05 s/lap more
	// degradation, crosses over at lap 10.
	result := CrossoverLap(CrossoverInput{
		CompoundAInitialPace: 89.3,
		CompoundBInitialPace: 89.8,
		CompoundADegRate:     0.09,
		CompoundBDegRate:     0.04,
	})
	require.True(t, result.HasCrossover)
	assert.Equal(t, 10, result.CrossoverLap)
	assert.Equal(t, 10, result.CompoundAFasterUntil)
	assert.Equal(t, 11, result.CompoundBFasterFrom)
}

func TestCrossoverLapNoCrossover(t *testing.T) {
	// The faster compound also degrades slower, so it never loses out.
	result := CrossoverLap(CrossoverInput{
		CompoundAInitialPace: 89.3,
		CompoundBInitialPace: 89.8,
		CompoundADegRate:     0.03,
		CompoundBDegRate:     0.05,
	})
	assert.False(t, result.HasCrossover)
}

func TestCrossoverLapSlowerStarter(t *testing.T) {
	result := CrossoverLap(CrossoverInput{
		CompoundAInitialPace: 89.8,
		CompoundBInitialPace: 89.3,
		CompoundADegRate:     0.04,
		CompoundBDegRate:     0.09,
	})
	require.True(t, result.HasCrossover)
	assert.Equal(t, 10, result.CrossoverLap)
}

func TestOptimalStintLength(t *testing.T) {
	none := OptimalStintLength(CrossoverResult{}, 30, 20)
	assert.Equal(t, 20, none.OptimalStintLength)
	assert.Equal(t, "no crossover point, maximize stint", none.Reasoning)

	crossover := CrossoverResult{CrossoverLap: 10, HasCrossover: true}
	early := OptimalStintLength(crossover, 30, 40)
	assert.Equal(t, 9, early.OptimalStintLength)
	assert.Equal(t, "stop before the crossover lap", early.Reasoning)

	limited := OptimalStintLength(crossover, 8, 40)
	assert.Equal(t, 8, limited.OptimalStintLength)
	assert.Equal(t, "run to tyre life before crossover", limited.Reasoning)
}

func TestGripEvolution(t *testing.T) {
	green := GripEvolution(GripEvolutionInput{LapsCompleted: 0, TotalLaps: 50, WeatherStable: true})
	assert.InDelta(t, 0.85, green.CurrentGripLevel, 1e-9)
	assert.InDelta(t, 0.45, green.LapTimeDeltaS, 1e-9)

	// A fully rubbered-in track reaches peak grip.
	rubbered := GripEvolution(GripEvolutionInput{LapsCompleted: 50, TotalLaps: 50, WeatherStable: true})
	assert.InDelta(t, 1.0, rubbered.CurrentGripLevel, 1e-9)
	assert.InDelta(t, 0.0, rubbered.LapTimeDeltaS, 1e-9)

	// Unstable weather halves the rubbering-in gain.
	washed := GripEvolution(GripEvolutionInput{LapsCompleted: 50, TotalLaps: 50, WeatherStable: false})
	assert.InDelta(t, 0.925, washed.CurrentGripLevel, 1e-9)
}

func TestGripEvolutionMonotonic(t *testing.T) {
	prev := 0.0
	for laps := 0; laps <= 50; laps += 5 {
		result := GripEvolution(GripEvolutionInput{LapsCompleted: laps, TotalLaps: 50, WeatherStable: true})
		assert.GreaterOrEqual(t, result.CurrentGripLevel, prev)
		prev = result.CurrentGripLevel
	}
}

func TestPredictEndOfRaceGrip(t *testing.T) {
	assert.Equal(t, 0.95, PredictEndOfRaceGrip(50, 50, 0.95))

	projected := PredictEndOfRaceGrip(10, 50, 0.9)
	assert.Greater(t, projected, 0.9)
	assert.LessOrEqual(t, projected, 1.0)
}

func TestCoolingMargin(t *testing.T) {
	cool := CoolingMargin(15, 25, 0.5)
	assert.InDelta(t, 0.5, cool.Margin, 1e-9)
	assert.Equal(t, "comfortable", cool.Status)

	scorching := CoolingMargin(40, 55, 0.5)
	assert.Less(t, scorching.Margin, -0.1)
	assert.Equal(t, "critical", scorching.Status)
}

func TestRecommendCoolingMode(t *testing.T) {
	quali := RecommendCoolingMode(0.3, "quali")
	assert.Equal(t, "minimum", quali.Mode)
	assert.Equal(t, "low", quali.Risk)

	overheating := RecommendCoolingMode(-0.1, "race")
	assert.Equal(t, "maximum", overheating.Mode)
	assert.Equal(t, "high", overheating.Risk)

	tight := RecommendCoolingMode(0.05, "race")
	assert.Equal(t, "high", tight.Mode)

	comfortable := RecommendCoolingMode(0.5, "race")
	assert.Equal(t, "medium", comfortable.Mode)
}

func TestVolatility(t *testing.T) {
	clear := Volatility(VolatilityInput{ForecastConfidence: 1.0, CloudCover: 0.0})
	assert.Equal(t, 0.0, clear.VolatilityScore)
	assert.Equal(t, "stable", clear.VolatilityLevel)

	// Partial cloud cover is the most unstable state.
	chaotic := Volatility(VolatilityInput{
		ForecastConfidence:   0.2,
		CloudCover:           0.5,
		WindVariability:      0.8,
		HistoricalVolatility: 0.7,
	})
	assert.Equal(t, "high", chaotic.VolatilityLevel)

	mixed := Volatility(VolatilityInput{
		ForecastConfidence:   0.7,
		CloudCover:           0.2,
		WindVariability:      0.3,
		HistoricalVolatility: 0.4,
	})
	assert.Equal(t, "moderate", mixed.VolatilityLevel)
}

func TestStrategyRisk(t *testing.T) {
	exposed := StrategyRisk(0.8, 30, false)
	assert.Equal(t, "conservative", exposed.Recommendation)

	hedged := StrategyRisk(0.5, 20, true)
	assert.Equal(t, "balanced", hedged.Recommendation)

	calm := StrategyRisk(0.2, 10, true)
	assert.Equal(t, "committed", calm.Recommendation)

	// Spare tyre options always reduce the risk.
	withFlex := StrategyRisk(0.6, 25, true)
	withoutFlex := StrategyRisk(0.6, 25, false)
	assert.Less(t, withFlex.StrategicRisk, withoutFlex.StrategicRisk)
}
