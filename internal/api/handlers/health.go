package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/f1strategy/pitwall/internal/services"
)

type HealthHandler struct {
	timing *services.LiveTimingClient
}

func NewHealthHandler(timing *services.LiveTimingClient) *HealthHandler {
	return &HealthHandler{timing: timing}
}

// GetHealth returns basic liveness plus the live-timing breaker state.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"service":       "pitwall",
		"time":          time.Now().UTC(),
		"breaker_state": h.timing.BreakerState().String(),
	})
}
