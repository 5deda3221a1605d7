package services

import (
	"sort"
	"strings"

	"github.com/f1strategy/pitwall/internal/models"
)

// Static circuit reference data. Values are approximate public
// characteristics, good enough for the relative comparisons the
// calculators make.
var trackCatalog = map[string]models.TrackProfile{
	"monaco": {
		ID: "monaco", Name: "Circuit de Monaco",
		LengthKM: 3.337, CornerCount: 19, AvgCornerSpeedKPH: 89,
		DRSZones: 1, LongestStraightM: 510, TrackWidthM: 10,
		PitLaneLengthM: 335, ElevationChangeM: 42,
		BarrierProximity: 1.0, Abrasiveness: 0.3,
		DownforceDemand: "high_downforce", HistoricalSCRate: 0.7,
	},
	"monza": {
		ID: "monza", Name: "Autodromo Nazionale Monza",
		LengthKM: 5.793, CornerCount: 11, AvgCornerSpeedKPH: 168,
		DRSZones: 2, LongestStraightM: 1120, TrackWidthM: 12,
		PitLaneLengthM: 400, ElevationChangeM: 12,
		BarrierProximity: 0.2, Abrasiveness: 0.4,
		DownforceDemand: "low_downforce", HistoricalSCRate: 0.3,
	},
	"silverstone": {
		ID: "silverstone", Name: "Silverstone Circuit",
		LengthKM: 5.891, CornerCount: 18, AvgCornerSpeedKPH: 175,
		DRSZones: 2, LongestStraightM: 770, TrackWidthM: 15,
		PitLaneLengthM: 415, ElevationChangeM: 18,
		BarrierProximity: 0.2, Abrasiveness: 0.7,
		DownforceDemand: "balanced", HistoricalSCRate: 0.4,
	},
	"spa": {
		ID: "spa", Name: "Circuit de Spa-Francorchamps",
		LengthKM: 7.004, CornerCount: 19, AvgCornerSpeedKPH: 160,
		DRSZones: 2, LongestStraightM: 800, TrackWidthM: 14,
		PitLaneLengthM: 420, ElevationChangeM: 102,
		BarrierProximity: 0.4, Abrasiveness: 0.5,
		DownforceDemand: "balanced", HistoricalSCRate: 0.5,
	},
	"singapore": {
		ID: "singapore", Name: "Marina Bay Street Circuit",
		LengthKM: 4.94, CornerCount: 19, AvgCornerSpeedKPH: 105,
		DRSZones: 3, LongestStraightM: 560, TrackWidthM: 11,
		PitLaneLengthM: 380, ElevationChangeM: 8,
		BarrierProximity: 0.95, Abrasiveness: 0.4,
		DownforceDemand: "high_downforce", HistoricalSCRate: 0.9,
	},
	"suzuka": {
		ID: "suzuka", Name: "Suzuka International Racing Course",
		LengthKM: 5.807, CornerCount: 18, AvgCornerSpeedKPH: 155,
		DRSZones: 1, LongestStraightM: 830, TrackWidthM: 13,
		PitLaneLengthM: 390, ElevationChangeM: 40,
		BarrierProximity: 0.4, Abrasiveness: 0.8,
		DownforceDemand: "high_downforce", HistoricalSCRate: 0.4,
	},
	"bahrain": {
		ID: "bahrain", Name: "Bahrain International Circuit",
		LengthKM: 5.412, CornerCount: 15, AvgCornerSpeedKPH: 140,
		DRSZones: 3, LongestStraightM: 1090, TrackWidthM: 15,
		PitLaneLengthM: 430, ElevationChangeM: 17,
		BarrierProximity: 0.1, Abrasiveness: 0.9,
		DownforceDemand: "balanced", HistoricalSCRate: 0.3,
	},
	"interlagos": {
		ID: "interlagos", Name: "Autodromo Jose Carlos Pace",
		LengthKM: 4.309, CornerCount: 15, AvgCornerSpeedKPH: 145,
		DRSZones: 2, LongestStraightM: 650, TrackWidthM: 14,
		PitLaneLengthM: 370, ElevationChangeM: 43,
		BarrierProximity: 0.3, Abrasiveness: 0.6,
		DownforceDemand: "balanced", HistoricalSCRate: 0.6,
	},
}

// TrackService serves the static circuit catalog.
type TrackService struct{}

func NewTrackService() *TrackService {
	return &TrackService{}
}

// GetTrack looks up a circuit by ID. The second return is false when
// the circuit is not in the catalog.
func (s *TrackService) GetTrack(trackID string) (models.TrackProfile, bool) {
	profile, ok := trackCatalog[strings.ToLower(strings.TrimSpace(trackID))]
	return profile, ok
}

// ListTracks returns all catalogued circuits sorted by ID.
func (s *TrackService) ListTracks() []models.TrackProfile {
	tracks := make([]models.TrackProfile, 0, len(trackCatalog))
	for _, profile := range trackCatalog {
		tracks = append(tracks, profile)
	}
	sort.Slice(tracks, func(i, j int) bool {
		return tracks[i].ID < tracks[j].ID
	})
	return tracks
}
