package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/f1strategy/pitwall/internal/services"
	"github.com/f1strategy/pitwall/pkg/utils"
)

type TrackHandler struct {
	tracks *services.TrackService
}

func NewTrackHandler(tracks *services.TrackService) *TrackHandler {
	return &TrackHandler{tracks: tracks}
}

// ListTracks returns all catalogued circuit profiles.
func (h *TrackHandler) ListTracks(c *gin.Context) {
	utils.SendSuccess(c, h.tracks.ListTracks())
}

// GetTrack returns one circuit profile by ID.
func (h *TrackHandler) GetTrack(c *gin.Context) {
	trackID := c.Param("id")
	profile, ok := h.tracks.GetTrack(trackID)
	if !ok {
		utils.SendNotFound(c, "track not found")
		return
	}
	utils.SendSuccess(c, profile)
}
