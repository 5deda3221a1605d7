package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/f1strategy/pitwall/internal/api/handlers"
	"github.com/f1strategy/pitwall/internal/services"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, cache *services.CacheService, tracks *services.TrackService, logger *logrus.Logger) {
	strategyHandler := handlers.NewStrategyHandler(cache, logger)
	trackHandler := handlers.NewTrackHandler(tracks)

	// Strategy endpoints
	group.POST("/strategy/pit", strategyHandler.GetPitStrategy)
	group.POST("/strategy/race-plan", strategyHandler.SimulateRacePlan)
	group.POST("/strategy/battle", strategyHandler.ForecastBattle)
	group.POST("/strategy/battle/progression", strategyHandler.AnalyzeBattleProgression)

	// Track reference endpoints
	group.GET("/tracks", trackHandler.ListTracks)
	group.GET("/tracks/:id", trackHandler.GetTrack)
}
