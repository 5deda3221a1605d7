package traffic

import (
	"github.com/f1strategy/pitwall/internal/calc"
)

// TrainProbabilityInput describes the field state around a driver.
// FieldSpreadS of 0 defaults to 10 s, OvertakingDifficulty of 0 to 5.
type TrainProbabilityInput struct {
	CarsWithin1S         int
	FieldSpreadS         float64
	OvertakingDifficulty float64
}

// TrainProbabilityResult is the chance of a DRS train forming.
type TrainProbabilityResult struct {
	TrainProbability float64 `json:"train_probability"`
}

// DRSTrainProbability estimates the chance of a DRS train, where every
// car has DRS and the advantage cancels out. Clusters of cars within a
// second, a compressed field and a hard-to-pass track all raise it.
func DRSTrainProbability(in TrainProbabilityInput) TrainProbabilityResult {
	cars := in.CarsWithin1S
	if cars < 0 {
		cars = 0
	}
	spread := in.FieldSpreadS
	if spread == 0 {
		spread = 10.0
	}
	if spread < 1.0 {
		spread = 1.0
	}
	difficulty := in.OvertakingDifficulty
	if difficulty == 0 {
		difficulty = 5.0
	}
	difficulty = calc.Clamp(difficulty, 0, 10)

	var base float64
	switch {
	case cars >= 3:
		base = 0.7
	case cars == 2:
		base = 0.4
	case cars == 1:
		base = 0.1
	default:
		base = 0.0
	}

	var spreadMult float64
	switch {
	case spread < 5.0:
		spreadMult = 1.3
	case spread > 20.0:
		spreadMult = 0.7
	default:
		spreadMult = 1.3 - (spread-5.0)/15.0*0.6
	}

	difficultyMult := 1.0
	if difficulty > 7 {
		difficultyMult = 1.2
	} else if difficulty < 3 {
		difficultyMult = 0.8
	}

	return TrainProbabilityResult{
		TrainProbability: calc.Clamp01(base * spreadMult * difficultyMult),
	}
}

// TrainImpact is the expected cost of getting stuck in a DRS train.
type TrainImpact struct {
	TrainProbability  float64 `json:"train_probability"`
	CarsInTrain       int     `json:"cars_in_train"`
	ExpectedLapsStuck int     `json:"expected_laps_stuck"`
	ExpectedTimeLossS float64 `json:"expected_time_loss_s"`
	StrategyNote      string  `json:"strategy_note"`
}

// EstimateTrainImpact converts train probability into expected time loss
// at 0.3 s per lap stuck.
func EstimateTrainImpact(trainProbability float64, carsInTrain, lapsInTrain int) TrainImpact {
	var note string
	switch {
	case trainProbability > 0.6:
		note = "high train risk, pit early to avoid"
	case trainProbability > 0.3:
		note = "moderate train risk, monitor closely"
	default:
		note = "low train risk"
	}

	return TrainImpact{
		TrainProbability:  trainProbability,
		CarsInTrain:       carsInTrain,
		ExpectedLapsStuck: lapsInTrain,
		ExpectedTimeLossS: trainProbability * float64(lapsInTrain) * 0.3,
		StrategyNote:      note,
	}
}
