package strategy

import (
	"fmt"
	"math"

	"github.com/f1strategy/pitwall/internal/models"
	"github.com/f1strategy/pitwall/pkg/utils"
)

const (
	straightSpeedThresholdKPH = 250.0
	drsSpeedBonusKPH          = 12.0
	maxSpeedFactorKPH         = 20.0
	drsProbabilityBonus       = 0.2
)

// BattleInput pairs the telemetry of an attacking and defending car
// with the live gap between them.
type BattleInput struct {
	AttackerTelemetry []models.TelemetrySample
	DefenderTelemetry []models.TelemetrySample
	GapS              float64
	DRSAvailable      bool
	TrackDifficulty   float64 // 0-10
}

type trackZone struct {
	startM float64
	endM   float64
}

// PredictOvertake forecasts whether the attacker can get the move done.
// It measures the speed advantage in the straights and braking zones of
// the attacker's lap, then folds in the gap, track difficulty and DRS.
func PredictOvertake(in BattleInput) (models.BattlePrediction, error) {
	if len(in.AttackerTelemetry) == 0 || len(in.DefenderTelemetry) == 0 {
		return models.BattlePrediction{}, utils.NewAppError(utils.ErrCodeValidation, "telemetry required for both cars")
	}

	straights := identifyStraightZones(in.AttackerTelemetry)
	brakeZones := identifyBrakeZones(in.AttackerTelemetry)

	var speedDeltas []float64
	bestZone := "Unknown"
	maxAdvantage := 0.0

	zoneSets := []struct {
		label string
		zones []trackZone
	}{
		{"Straight", straights},
		{"Braking", brakeZones},
	}
	for _, set := range zoneSets {
		for idx, zone := range set.zones {
			attSpeed := meanSpeedInZone(in.AttackerTelemetry, zone)
			defSpeed := meanSpeedInZone(in.DefenderTelemetry, zone)
			advantage := attSpeed - defSpeed
			speedDeltas = append(speedDeltas, advantage)

			if math.Abs(advantage) > maxAdvantage {
				maxAdvantage = math.Abs(advantage)
				bestZone = fmt.Sprintf("%s Zone %d", set.label, idx+1)
			}
		}
	}

	avgSpeedAdvantage := 0.0
	if len(speedDeltas) > 0 {
		sum := 0.0
		for _, d := range speedDeltas {
			sum += d
		}
		avgSpeedAdvantage = sum / float64(len(speedDeltas))
	}
	if in.DRSAvailable {
		avgSpeedAdvantage += drsSpeedBonusKPH
	}

	probability := overtakeProbability(in.GapS, avgSpeedAdvantage, in.TrackDifficulty, in.DRSAvailable)

	difficulty := in.TrackDifficulty + in.GapS*2 - avgSpeedAdvantage/5
	if difficulty > 10 {
		difficulty = 10
	}
	if difficulty < 0 {
		difficulty = 0
	}

	var mode models.BattleMode
	var recommendation string
	switch {
	case probability > 0.6:
		mode = models.ModeAttack
		recommendation = "ATTACK - High probability of successful overtake"
	case probability > 0.3:
		mode = models.ModePrepare
		recommendation = "PREPARE - Monitor and wait for opportunity"
	default:
		mode = models.ModeDefend
		recommendation = "DEFEND - Focus on maintaining position"
	}

	var factors []string
	if in.GapS < 1.0 {
		factors = append(factors, "Within DRS range")
	}
	if avgSpeedAdvantage > 5.0 {
		factors = append(factors, "Significant speed advantage")
	}
	if in.TrackDifficulty < 5.0 {
		factors = append(factors, "Track favors overtaking")
	}
	if in.DRSAvailable {
		factors = append(factors, "DRS available")
	}
	if in.GapS > 2.0 {
		factors = append(factors, "Gap too large - need multiple laps")
	}

	return models.BattlePrediction{
		OvertakeProbability: probability,
		BestOvertakeZone:    bestZone,
		SpeedAdvantageKPH:   avgSpeedAdvantage,
		DRSAvailable:        in.DRSAvailable,
		DifficultyRating:    difficulty,
		RecommendedMode:     mode,
		Recommendation:      recommendation,
		KeyFactors:          factors,
	}, nil
}

// identifyStraightZones finds sustained high-speed sections of the lap.
func identifyStraightZones(telemetry []models.TelemetrySample) []trackZone {
	var zones []trackZone
	inStraight := false
	var startDist float64

	for _, sample := range telemetry {
		switch {
		case sample.SpeedKPH > straightSpeedThresholdKPH && !inStraight:
			inStraight = true
			startDist = sample.DistanceM
		case sample.SpeedKPH <= straightSpeedThresholdKPH && inStraight:
			inStraight = false
			zones = append(zones, trackZone{startM: startDist, endM: sample.DistanceM})
		}
	}
	return zones
}

// identifyBrakeZones finds the braking events on the lap.
func identifyBrakeZones(telemetry []models.TelemetrySample) []trackZone {
	var zones []trackZone
	inBrake := false
	var startDist float64

	for _, sample := range telemetry {
		switch {
		case sample.Brake && !inBrake:
			inBrake = true
			startDist = sample.DistanceM
		case !sample.Brake && inBrake:
			inBrake = false
			zones = append(zones, trackZone{startM: startDist, endM: sample.DistanceM})
		}
	}
	return zones
}

func meanSpeedInZone(telemetry []models.TelemetrySample, zone trackZone) float64 {
	sum := 0.0
	count := 0
	for _, sample := range telemetry {
		if sample.DistanceM >= zone.startM && sample.DistanceM <= zone.endM {
			sum += sample.SpeedKPH
			count++
		}
	}
	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

// overtakeProbability weights the gap, speed advantage, track
// difficulty and DRS into a single 0-1 chance.
func overtakeProbability(gapS, speedAdvKPH, trackDifficulty float64, drs bool) float64 {
	var gapFactor float64
	switch {
	case gapS < 0.5:
		gapFactor = 0.8
	case gapS < 1.0:
		gapFactor = 0.6
	case gapS < 2.0:
		gapFactor = 0.3
	default:
		gapFactor = 0.1
	}

	speedFactor := speedAdvKPH / maxSpeedFactorKPH
	if speedFactor > 1.0 {
		speedFactor = 1.0
	}
	if speedFactor < 0 {
		speedFactor = 0
	}

	trackFactor := 1.0 - trackDifficulty/10.0

	drsBonus := 0.0
	if drs {
		drsBonus = drsProbabilityBonus
	}

	probability := gapFactor*0.4 + speedFactor*0.3 + trackFactor*0.2 + drsBonus
	if probability > 1.0 {
		return 1.0
	}
	if probability < 0.0 {
		return 0.0
	}
	return probability
}

// BattleProgression summarizes how a multi-lap fight is trending.
type BattleProgression struct {
	PaceDifferenceS        float64 `json:"pace_difference"`
	AttackerFaster         bool    `json:"attacker_faster"`
	ClosingRatePerLapS     float64 `json:"closing_rate_per_lap"`
	LapsToDRSRange         float64 `json:"laps_to_drs_range,omitempty"`
	BattleDurationEstimate float64 `json:"battle_duration_estimate,omitempty"`
	HasClosingEstimate     bool    `json:"has_closing_estimate"`
}

// AnalyzeBattleProgression compares average lap pace over recent laps
// and estimates how long until the attacker reaches DRS range.
func AnalyzeBattleProgression(attackerLapTimesS, defenderLapTimesS []float64) (BattleProgression, error) {
	if len(attackerLapTimesS) == 0 || len(defenderLapTimesS) == 0 {
		return BattleProgression{}, utils.NewAppError(utils.ErrCodeValidation, "lap times required for both cars")
	}

	paceDiff := meanOf(attackerLapTimesS) - meanOf(defenderLapTimesS)

	out := BattleProgression{
		PaceDifferenceS: paceDiff,
		AttackerFaster:  paceDiff < 0,
	}
	if paceDiff < 0 {
		lapsToClose := math.Abs(1.0 / paceDiff)
		out.ClosingRatePerLapS = math.Abs(paceDiff)
		out.LapsToDRSRange = lapsToClose
		out.BattleDurationEstimate = math.Min(lapsToClose+3, 10)
		out.HasClosingEstimate = true
	}
	return out, nil
}

func meanOf(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
