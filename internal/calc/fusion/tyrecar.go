package fusion

import (
	"math"
	"sort"

	"github.com/f1strategy/pitwall/internal/models"
)

// Single-point compound characteristics for the fusion model. The wet
// compounds carry dry-track pace penalties since this model assumes a
// dry reference lap.
type fusionCompound struct {
	basePace float64
	baseDeg  float64
	optTemp  float64
}

var fusionCompounds = map[models.Compound]fusionCompound{
	models.CompoundSoft:         {basePace: -0.4, baseDeg: 0.08, optTemp: 90},
	models.CompoundMedium:       {basePace: 0.0, baseDeg: 0.05, optTemp: 95},
	models.CompoundHard:         {basePace: 0.3, baseDeg: 0.03, optTemp: 100},
	models.CompoundIntermediate: {basePace: 0.5, baseDeg: 0.04, optTemp: 80},
	models.CompoundWet:          {basePace: 1.0, baseDeg: 0.02, optTemp: 65},
}

// TyreCarInput pairs a compound with the car running it.
type TyreCarInput struct {
	Compound     models.Compound
	CarDownforce float64 // 0-10
	CarWeightKG  float64
	TrackTempC   float64
}

// TyreCarResult is the expected pace and degradation of a compound on a
// specific car.
type TyreCarResult struct {
	ExpectedPaceDeltaS      float64 `json:"expected_pace_delta_s"`
	ExpectedDegradationRate float64 `json:"expected_degradation_rate"`
}

// TyreCarFusion adjusts a compound's base pace and degradation for the
// car running it. Downforce heats the tyres and adds wear, weight adds
// wear, and running more than 5 °C from the compound's optimal costs
// 0.02 s per extra degree.
func TyreCarFusion(in TyreCarInput) TyreCarResult {
	data, ok := fusionCompounds[in.Compound]
	if !ok {
		data = fusionCompounds[models.CompoundMedium]
	}

	downforceFactor := in.CarDownforce / 10.0
	wearMult := 1.0 + downforceFactor*0.3
	wearMult *= 1.0 + (in.CarWeightKG-700)/100*0.1

	effectiveTemp := in.TrackTempC + downforceFactor*8.0
	tempDeviation := math.Abs(effectiveTemp - data.optTemp)
	tempPenalty := 0.0
	if tempDeviation >= 5 {
		tempPenalty = (tempDeviation - 5) * 0.02
	}

	return TyreCarResult{
		ExpectedPaceDeltaS:      data.basePace + tempPenalty,
		ExpectedDegradationRate: data.baseDeg * wearMult,
	}
}

// CompoundOption is one scored entry of a compound sweep.
type CompoundOption struct {
	Compound         models.Compound `json:"compound"`
	Score            float64         `json:"score"`
	ExpectedPaceS    float64         `json:"expected_pace"`
	ExpectedLifeLaps int             `json:"expected_life"`
	CanCompleteStint bool            `json:"can_complete_stint"`
}

// CompoundRecommendation ranks the dry compounds for a target stint.
type CompoundRecommendation struct {
	RecommendedCompound models.Compound  `json:"recommended_compound"`
	ExpectedPaceDeltaS  float64          `json:"expected_pace_delta_s"`
	ExpectedLifeLaps    int              `json:"expected_life_laps"`
	CanCompleteStint    bool             `json:"can_complete_stint"`
	AllOptions          []CompoundOption `json:"all_options"`
}

var compoundBaseLife = map[models.Compound]float64{
	models.CompoundSoft:   20,
	models.CompoundMedium: 30,
	models.CompoundHard:   40,
}

// RecommendOptimalCompound sweeps SOFT/MEDIUM/HARD for the car and
// conditions, scoring each 60% on pace and 40% on whether it covers the
// target stint.
func RecommendOptimalCompound(carDownforce, carWeightKG, trackTempC float64, targetStintLength int) CompoundRecommendation {
	options := make([]CompoundOption, 0, 3)
	for _, compound := range models.DryCompounds() {
		fused := TyreCarFusion(TyreCarInput{
			Compound:     compound,
			CarDownforce: carDownforce,
			CarWeightKG:  carWeightKG,
			TrackTempC:   trackTempC,
		})

		adjustedLife := int(compoundBaseLife[compound] / fused.ExpectedDegradationRate * 0.05)

		paceScore := -fused.ExpectedPaceDeltaS
		lifeScore := 10.0
		if adjustedLife < targetStintLength {
			lifeScore = float64(adjustedLife) / float64(targetStintLength) * 10.0
		}

		options = append(options, CompoundOption{
			Compound:         compound,
			Score:            paceScore*0.6 + lifeScore*0.4,
			ExpectedPaceS:    fused.ExpectedPaceDeltaS,
			ExpectedLifeLaps: adjustedLife,
			CanCompleteStint: adjustedLife >= targetStintLength,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})

	best := options[0]
	return CompoundRecommendation{
		RecommendedCompound: best.Compound,
		ExpectedPaceDeltaS:  best.ExpectedPaceS,
		ExpectedLifeLaps:    best.ExpectedLifeLaps,
		CanCompleteStint:    best.CanCompleteStint,
		AllOptions:          options,
	}
}
