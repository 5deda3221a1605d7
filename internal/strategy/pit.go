// Package strategy holds the two orchestrators that turn calculator
// outputs into actionable race calls: the pit strategy simulator and
// the battle forecast.
package strategy

import (
	"github.com/f1strategy/pitwall/internal/models"
	"github.com/f1strategy/pitwall/pkg/utils"
)

// Degradation rates in seconds of lap time lost per lap of tyre age.
var pitDegradationRates = map[models.Compound]float64{
	models.CompoundSoft:   0.05,
	models.CompoundMedium: 0.03,
	models.CompoundHard:   0.015,
}

// Typical stint lengths in laps.
var pitStintLengths = map[models.Compound]int{
	models.CompoundSoft:   15,
	models.CompoundMedium: 25,
	models.CompoundHard:   35,
}

// PitLossS is the total time cost of a pit stop.
const PitLossS = 20.0

const (
	freshTyreGainS   = 1.5
	clearAirGainS    = 0.3
	undercutMaxGapS  = 25.0
	overcutMinGapS   = 3.0
	opportunityGainS = 2.0
)

// PitStrategyInput describes the car's situation at the moment the
// strategy is requested. The gap fields are only read when the
// corresponding HasCar flag is set.
type PitStrategyInput struct {
	CurrentLap      int
	TotalLaps       int
	CurrentCompound models.Compound
	CurrentTyreAge  int
	GapAheadS       float64
	GapBehindS      float64
	HasCarAhead     bool
	HasCarBehind    bool
}

func degradationRate(c models.Compound) float64 {
	if rate, ok := pitDegradationRates[c]; ok {
		return rate
	}
	return 0.03
}

func stintLength(c models.Compound) int {
	if laps, ok := pitStintLengths[c]; ok {
		return laps
	}
	return 25
}

// CalculateOptimalStrategy recommends when to pit, what to fit, and
// whether an undercut or overcut is on. If the current tyres cover the
// remaining distance it recommends no stop at all.
func CalculateOptimalStrategy(in PitStrategyInput) (models.StrategyRecommendation, error) {
	if in.TotalLaps < 1 {
		return models.StrategyRecommendation{}, utils.NewAppError(utils.ErrCodeValidation, "total_laps must be at least 1")
	}
	if in.CurrentLap < 0 || in.CurrentLap > in.TotalLaps {
		return models.StrategyRecommendation{}, utils.NewAppError(utils.ErrCodeValidation, "current_lap must be within the race distance")
	}

	remainingLaps := in.TotalLaps - in.CurrentLap
	degRate := degradationRate(in.CurrentCompound)

	maxStint := stintLength(in.CurrentCompound)
	remainingLife := maxStint - in.CurrentTyreAge
	if remainingLife < 0 {
		remainingLife = 0
	}

	if remainingLife >= remainingLaps {
		return models.StrategyRecommendation{
			OptimalPitLap:       in.TotalLaps + 1,
			PitWindowStart:      in.TotalLaps + 1,
			PitWindowEnd:        in.TotalLaps + 1,
			RecommendedCompound: in.CurrentCompound,
			ExpectedStintLength: remainingLaps,
			StrategyType:        models.StrategyNoStop,
			Confidence:          0.9,
		}, nil
	}

	optimalLap := in.CurrentLap + minInt(remainingLife, remainingLaps/2)

	windowStart := maxInt(in.CurrentLap+1, optimalLap-3)
	windowEnd := minInt(in.TotalLaps-5, optimalLap+3)

	nextCompound := chooseCompound(remainingLaps - (optimalLap - in.CurrentLap))

	undercutGain := 0.0
	if in.HasCarAhead {
		undercutGain = undercutAdvantage(in.CurrentTyreAge, degRate, in.GapAheadS)
	}
	overcutGain := 0.0
	if in.HasCarBehind {
		overcutGain = overcutAdvantage(in.CurrentTyreAge, degRate, in.GapBehindS)
	}

	var strategyType models.StrategyType
	switch {
	case undercutGain > opportunityGainS:
		strategyType = models.StrategyUndercut
	case overcutGain > opportunityGainS:
		strategyType = models.StrategyOvercut
	case remainingLife < 5:
		strategyType = models.StrategyUrgentPit
	default:
		strategyType = models.StrategyStandard
	}

	return models.StrategyRecommendation{
		OptimalPitLap:       optimalLap,
		PitWindowStart:      windowStart,
		PitWindowEnd:        windowEnd,
		UndercutAdvantageS:  undercutGain,
		OvercutAdvantageS:   overcutGain,
		RecommendedCompound: nextCompound,
		ExpectedStintLength: stintLength(nextCompound),
		StrategyType:        strategyType,
		Confidence:          0.85,
	}, nil
}

// chooseCompound picks the compound for a stint of the given length.
func chooseCompound(remainingLaps int) models.Compound {
	switch {
	case remainingLaps <= 15:
		return models.CompoundSoft
	case remainingLaps <= 25:
		return models.CompoundMedium
	default:
		return models.CompoundHard
	}
}

// undercutAdvantage nets the fresh-tyre gain and the rival's ongoing
// degradation against the gap that must be recovered around the stop.
func undercutAdvantage(tyreAge int, degRate, gapAheadS float64) float64 {
	if gapAheadS > undercutMaxGapS {
		return 0.0
	}
	rivalDegradation := float64(tyreAge) * degRate
	gain := freshTyreGainS + rivalDegradation - (gapAheadS - PitLossS)
	if gain < 0 {
		return 0.0
	}
	return gain
}

// overcutAdvantage values three laps of clear air against the cost of
// running on worn tyres. Only worth considering with a safe gap behind.
func overcutAdvantage(tyreAge int, degRate, gapBehindS float64) float64 {
	if gapBehindS < overcutMinGapS {
		return 0.0
	}
	gain := clearAirGainS*3 - float64(tyreAge)*degRate
	if gain < 0 {
		return 0.0
	}
	return gain
}

// SimulateRaceStrategy lays out a full race plan with the requested
// number of stops, honoring the two-compound rule where possible.
func SimulateRaceStrategy(totalLaps int, startingCompound models.Compound, numStops int) ([]models.StintPlan, error) {
	if totalLaps < 1 {
		return nil, utils.NewAppError(utils.ErrCodeValidation, "total_laps must be at least 1")
	}
	if numStops < 0 {
		return nil, utils.NewAppError(utils.ErrCodeValidation, "num_stops must not be negative")
	}

	plan := make([]models.StintPlan, 0, numStops+1)
	remainingLaps := totalLaps
	currentLap := 0
	compoundsUsed := map[models.Compound]bool{startingCompound: true}

	for stopNum := 0; stopNum <= numStops; stopNum++ {
		var compound models.Compound
		var length int

		switch {
		case stopNum == 0:
			compound = startingCompound
			length = minInt(stintLength(compound), remainingLaps/(numStops+1))
		case stopNum == numStops:
			compound = chooseCompound(remainingLaps)
			length = remainingLaps
		default:
			compound = nextUnusedCompound(compoundsUsed)
			compoundsUsed[compound] = true
			length = minInt(stintLength(compound), remainingLaps/(numStops+1-stopNum))
		}

		plan = append(plan, models.StintPlan{
			StintNumber: stopNum + 1,
			StartLap:    currentLap + 1,
			EndLap:      currentLap + length,
			Compound:    compound,
			StintLength: length,
			PitAfter:    stopNum < numStops,
		})

		currentLap += length
		remainingLaps -= length
		if remainingLaps <= 0 {
			break
		}
	}

	return plan, nil
}

func nextUnusedCompound(used map[models.Compound]bool) models.Compound {
	for _, c := range models.DryCompounds() {
		if !used[c] {
			return c
		}
	}
	return models.CompoundSoft
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
