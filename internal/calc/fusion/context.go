package fusion

import (
	"fmt"
	"strings"

	"github.com/f1strategy/pitwall/internal/models"
)

// RacePhase labels how far the race has run.
type RacePhase string

const (
	PhaseOpening RacePhase = "opening"
	PhaseMiddle  RacePhase = "middle"
	PhaseLate    RacePhase = "late"
	PhaseClosing RacePhase = "closing"
)

// ContextInput is the raw race state for one car.
type ContextInput struct {
	CurrentLap       int
	TotalLaps        int
	CurrentPosition  int
	GapAheadS        float64
	GapBehindS       float64
	TyreAge          int
	TyreCompound     models.Compound
	WeatherCondition string
}

// RaceContext is the unified race-situation snapshot the strategy layer
// reads from.
type RaceContext struct {
	RacePhase           RacePhase       `json:"race_phase"`
	RaceProgress        float64         `json:"race_progress"`
	LapsRemaining       int             `json:"laps_remaining"`
	Position            int             `json:"position"`
	StrategicImportance string          `json:"strategic_importance"` // critical, high, moderate
	InBattle            bool            `json:"in_battle"`
	GapAheadS           float64         `json:"gap_ahead_s"`
	GapBehindS          float64         `json:"gap_behind_s"`
	TyreAge             int             `json:"tyre_age"`
	TyreCompound        models.Compound `json:"tyre_compound"`
	TyreCondition       string          `json:"tyre_condition"` // fresh, used, worn, critical
	Weather             string          `json:"weather"`
}

// BuildRaceContext aggregates positional, tyre and weather state into a
// single snapshot with derived phase and urgency labels.
func BuildRaceContext(in ContextInput) RaceContext {
	totalLaps := in.TotalLaps
	if totalLaps < 1 {
		totalLaps = 1
	}
	progress := float64(in.CurrentLap) / float64(totalLaps)

	var phase RacePhase
	switch {
	case progress < 0.2:
		phase = PhaseOpening
	case progress < 0.5:
		phase = PhaseMiddle
	case progress < 0.8:
		phase = PhaseLate
	default:
		phase = PhaseClosing
	}

	var importance string
	switch {
	case in.CurrentPosition <= 3:
		importance = "critical"
	case in.CurrentPosition <= 10:
		importance = "high"
	default:
		importance = "moderate"
	}

	var tyreCondition string
	switch {
	case in.TyreAge < 10:
		tyreCondition = "fresh"
	case in.TyreAge < 20:
		tyreCondition = "used"
	case in.TyreAge < 30:
		tyreCondition = "worn"
	default:
		tyreCondition = "critical"
	}

	return RaceContext{
		RacePhase:           phase,
		RaceProgress:        progress,
		LapsRemaining:       in.TotalLaps - in.CurrentLap,
		Position:            in.CurrentPosition,
		StrategicImportance: importance,
		InBattle:            in.GapAheadS < 3.0 || in.GapBehindS < 3.0,
		GapAheadS:           in.GapAheadS,
		GapBehindS:          in.GapBehindS,
		TyreAge:             in.TyreAge,
		TyreCompound:        in.TyreCompound,
		TyreCondition:       tyreCondition,
		Weather:             in.WeatherCondition,
	}
}

// GenerateSituationSummary renders the context as a one-line readable
// summary for race-engineer style updates.
func GenerateSituationSummary(ctx RaceContext) string {
	parts := []string{
		fmt.Sprintf("Lap %d to go (%s phase)", ctx.LapsRemaining, ctx.RacePhase),
	}

	switch {
	case ctx.Position <= 3:
		parts = append(parts, fmt.Sprintf("P%d (podium position)", ctx.Position))
	case ctx.Position <= 10:
		parts = append(parts, fmt.Sprintf("P%d (points position)", ctx.Position))
	default:
		parts = append(parts, fmt.Sprintf("P%d", ctx.Position))
	}

	if ctx.InBattle {
		parts = append(parts, "in wheel-to-wheel battle")
	}

	parts = append(parts, fmt.Sprintf("%d laps on %s (%s)", ctx.TyreAge, ctx.TyreCompound, ctx.TyreCondition))

	if ctx.Weather != "" && ctx.Weather != "DRY" {
		parts = append(parts, fmt.Sprintf("weather: %s", ctx.Weather))
	}

	return strings.Join(parts, ", ")
}
