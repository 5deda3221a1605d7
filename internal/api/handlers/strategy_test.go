package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1strategy/pitwall/internal/services"
	"github.com/f1strategy/pitwall/pkg/utils"
)

func newStrategyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := NewStrategyHandler(nil, logger)

	router := gin.New()
	router.POST("/strategy/pit", handler.GetPitStrategy)
	router.POST("/strategy/race-plan", handler.SimulateRacePlan)
	router.POST("/strategy/battle/progression", handler.AnalyzeBattleProgression)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetPitStrategy(t *testing.T) {
	router := newStrategyRouter()

	rec := postJSON(t, router, "/strategy/pit", gin.H{
		"current_lap":      10,
		"total_laps":       58,
		"compound":         "MEDIUM",
		"current_tyre_age": 10,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "STANDARD_STRATEGY", data["strategy_type"])
}

func TestGetPitStrategyRejectsBadBody(t *testing.T) {
	router := newStrategyRouter()

	// Missing required fields.
	rec := postJSON(t, router, "/strategy/pit", gin.H{"compound": "MEDIUM"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, utils.ErrCodeValidation, resp.Error.Code)
}

func TestPitStrategyCacheKeyVariesWithGaps(t *testing.T) {
	base := PitStrategyRequest{
		SessionID:      "session-1",
		CurrentLap:     10,
		TotalLaps:      58,
		Compound:       "MEDIUM",
		CurrentTyreAge: 10,
	}
	gap := 1.0
	withGap := base
	withGap.GapAheadS = &gap
	zeroGap := 0.0
	withZeroGap := base
	withZeroGap.GapAheadS = &zeroGap
	behindGap := 1.0
	withGapBehind := base
	withGapBehind.GapBehindS = &behindGap

	keys := map[string]string{
		"no gaps":    services.StrategyCacheKey(base.SessionID, pitStrategyCacheParams(base)),
		"gap ahead":  services.StrategyCacheKey(base.SessionID, pitStrategyCacheParams(withGap)),
		"zero ahead": services.StrategyCacheKey(base.SessionID, pitStrategyCacheParams(withZeroGap)),
		"gap behind": services.StrategyCacheKey(base.SessionID, pitStrategyCacheParams(withGapBehind)),
	}
	seen := make(map[string]string, len(keys))
	for name, key := range keys {
		if prior, ok := seen[key]; ok {
			t.Fatalf("cache key for %q collides with %q: %s", name, prior, key)
		}
		seen[key] = name
	}
}

func TestGetPitStrategyRejectsOutOfRangeLap(t *testing.T) {
	router := newStrategyRouter()

	rec := postJSON(t, router, "/strategy/pit", gin.H{
		"current_lap": 60,
		"total_laps":  58,
		"compound":    "MEDIUM",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimulateRacePlan(t *testing.T) {
	router := newStrategyRouter()

	rec := postJSON(t, router, "/strategy/race-plan", gin.H{
		"total_laps":        58,
		"starting_compound": "MEDIUM",
		"num_stops":         1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Stints []struct {
				Compound string `json:"compound"`
				EndLap   int    `json:"end_lap"`
			} `json:"stints"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Stints, 2)
	assert.Equal(t, 58, resp.Data.Stints[1].EndLap)
}

func TestAnalyzeBattleProgressionEndpoint(t *testing.T) {
	router := newStrategyRouter()

	rec := postJSON(t, router, "/strategy/battle/progression", gin.H{
		"attacker_lap_times_s": []float64{89.5, 89.5},
		"defender_lap_times_s": []float64{90.0, 90.0},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := decodeData(t, rec)
	require.True(t, ok)
	assert.Equal(t, true, data["attacker_faster"])
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) (map[string]interface{}, bool) {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	return data, ok
}
