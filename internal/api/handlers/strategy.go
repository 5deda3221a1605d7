package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/f1strategy/pitwall/internal/models"
	"github.com/f1strategy/pitwall/internal/services"
	"github.com/f1strategy/pitwall/internal/strategy"
	"github.com/f1strategy/pitwall/pkg/utils"
)

type StrategyHandler struct {
	cache  *services.CacheService
	logger *logrus.Logger
}

func NewStrategyHandler(cache *services.CacheService, logger *logrus.Logger) *StrategyHandler {
	return &StrategyHandler{
		cache:  cache,
		logger: logger,
	}
}

// PitStrategyRequest is the body of POST /strategy/pit.
type PitStrategyRequest struct {
	SessionID      string   `json:"session_id"`
	CurrentLap     int      `json:"current_lap" binding:"required"`
	TotalLaps      int      `json:"total_laps" binding:"required"`
	Compound       string   `json:"compound" binding:"required"`
	CurrentTyreAge int      `json:"current_tyre_age"`
	GapAheadS      *float64 `json:"gap_ahead_s"`
	GapBehindS     *float64 `json:"gap_behind_s"`
}

// GetPitStrategy runs the pit strategy simulator for one car.
func (h *StrategyHandler) GetPitStrategy(c *gin.Context) {
	var req PitStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "invalid pit strategy request", err.Error())
		return
	}

	in := strategy.PitStrategyInput{
		CurrentLap:      req.CurrentLap,
		TotalLaps:       req.TotalLaps,
		CurrentCompound: models.ParseCompound(req.Compound),
		CurrentTyreAge:  req.CurrentTyreAge,
	}
	if req.GapAheadS != nil {
		in.HasCarAhead = true
		in.GapAheadS = *req.GapAheadS
	}
	if req.GapBehindS != nil {
		in.HasCarBehind = true
		in.GapBehindS = *req.GapBehindS
	}

	if req.SessionID != "" {
		key := services.StrategyCacheKey(req.SessionID, pitStrategyCacheParams(req))
		var cached models.StrategyRecommendation
		if err := h.cache.Get(c.Request.Context(), key, &cached); err == nil {
			utils.SendSuccess(c, cached)
			return
		}

		recommendation, err := strategy.CalculateOptimalStrategy(in)
		if err != nil {
			h.sendStrategyError(c, err)
			return
		}
		if err := h.cache.Set(c.Request.Context(), key, recommendation, services.TTLLive); err != nil {
			h.logger.WithError(err).Warn("Failed to cache pit strategy")
		}
		utils.SendSuccess(c, recommendation)
		return
	}

	recommendation, err := strategy.CalculateOptimalStrategy(in)
	if err != nil {
		h.sendStrategyError(c, err)
		return
	}
	utils.SendSuccess(c, recommendation)
}

// pitStrategyCacheParams covers every input that changes the
// recommendation. Absent gaps are left out of the map so they hash
// differently from a zero gap.
func pitStrategyCacheParams(req PitStrategyRequest) map[string]interface{} {
	params := map[string]interface{}{
		"lap":      req.CurrentLap,
		"total":    req.TotalLaps,
		"compound": req.Compound,
		"age":      req.CurrentTyreAge,
	}
	if req.GapAheadS != nil {
		params["gap_ahead"] = *req.GapAheadS
	}
	if req.GapBehindS != nil {
		params["gap_behind"] = *req.GapBehindS
	}
	return params
}

// RacePlanRequest is the body of POST /strategy/race-plan.
type RacePlanRequest struct {
	TotalLaps        int    `json:"total_laps" binding:"required"`
	StartingCompound string `json:"starting_compound"`
	NumStops         int    `json:"num_stops"`
}

// SimulateRacePlan lays out a full race pit plan.
func (h *StrategyHandler) SimulateRacePlan(c *gin.Context) {
	var req RacePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "invalid race plan request", err.Error())
		return
	}

	plan, err := strategy.SimulateRaceStrategy(req.TotalLaps, models.ParseCompound(req.StartingCompound), req.NumStops)
	if err != nil {
		h.sendStrategyError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{"stints": plan})
}

// BattleRequest is the body of POST /strategy/battle.
type BattleRequest struct {
	AttackerTelemetry []models.TelemetrySample `json:"attacker_telemetry" binding:"required"`
	DefenderTelemetry []models.TelemetrySample `json:"defender_telemetry" binding:"required"`
	GapS              float64                  `json:"gap_s"`
	DRSAvailable      bool                     `json:"drs_available"`
	TrackDifficulty   float64                  `json:"track_difficulty"`
}

// ForecastBattle predicts the outcome of an on-track fight.
func (h *StrategyHandler) ForecastBattle(c *gin.Context) {
	var req BattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "invalid battle request", err.Error())
		return
	}

	prediction, err := strategy.PredictOvertake(strategy.BattleInput{
		AttackerTelemetry: req.AttackerTelemetry,
		DefenderTelemetry: req.DefenderTelemetry,
		GapS:              req.GapS,
		DRSAvailable:      req.DRSAvailable,
		TrackDifficulty:   req.TrackDifficulty,
	})
	if err != nil {
		h.sendStrategyError(c, err)
		return
	}
	utils.SendSuccess(c, prediction)
}

// BattleProgressionRequest is the body of POST /strategy/battle/progression.
type BattleProgressionRequest struct {
	AttackerLapTimesS []float64 `json:"attacker_lap_times_s" binding:"required"`
	DefenderLapTimesS []float64 `json:"defender_lap_times_s" binding:"required"`
}

// AnalyzeBattleProgression reports how a multi-lap battle is trending.
func (h *StrategyHandler) AnalyzeBattleProgression(c *gin.Context) {
	var req BattleProgressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "invalid battle progression request", err.Error())
		return
	}

	progression, err := strategy.AnalyzeBattleProgression(req.AttackerLapTimesS, req.DefenderLapTimesS)
	if err != nil {
		h.sendStrategyError(c, err)
		return
	}
	utils.SendSuccess(c, progression)
}

func (h *StrategyHandler) sendStrategyError(c *gin.Context, err error) {
	var appErr *utils.AppError
	if errors.As(err, &appErr) && appErr.Code == utils.ErrCodeValidation {
		utils.SendValidationError(c, appErr.Message, appErr.Details)
		return
	}
	h.logger.WithError(err).Error("Strategy calculation failed")
	utils.SendInternalError(c, "strategy calculation failed")
}
