package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1strategy/pitwall/internal/services"
	"github.com/f1strategy/pitwall/pkg/utils"
)

func newTrackRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTrackHandler(services.NewTrackService())

	router := gin.New()
	router.GET("/tracks", handler.ListTracks)
	router.GET("/tracks/:id", handler.GetTrack)
	return router
}

func TestListTracks(t *testing.T) {
	router := newTrackRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracks", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 8)
}

func TestGetTrack(t *testing.T) {
	router := newTrackRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracks/monaco", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := decodeData(t, rec)
	require.True(t, ok)
	assert.Equal(t, "Circuit de Monaco", data["name"])
}

func TestGetTrackNotFound(t *testing.T) {
	router := newTrackRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracks/nordschleife", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, utils.ErrCodeNotFound, resp.Error.Code)
}
