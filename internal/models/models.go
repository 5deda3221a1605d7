package models

// TyreState describes a tyre set at a moment in the race.
type TyreState struct {
	Compound   Compound `json:"compound"`
	WearLevel  float64  `json:"wear_level"` // 0.0 fresh to 1.0 fully worn
	AgeLaps    int      `json:"age_laps"`
	TrackTempC float64  `json:"track_temp_c"`
}

// CarProfile holds the 0-10 scale performance ratings of a car.
type CarProfile struct {
	Power           float64 `json:"power"`
	AeroEfficiency  float64 `json:"aero_efficiency"`
	DragCoefficient float64 `json:"drag_coefficient"` // 0 slippery, 10 draggy
	MechanicalGrip  float64 `json:"mechanical_grip"`
	DownforceLevel  float64 `json:"downforce_level"`
	WeightKG        float64 `json:"weight_kg"`
}

// DriverSignal carries the observable inputs the driver calculators read.
type DriverSignal struct {
	LapTimesS             []float64 `json:"lap_times_s"`
	RecentPositions       []int     `json:"recent_positions"`
	OvertakingSuccessRate float64   `json:"overtaking_success_rate"` // 0-1
	DefensiveSuccessRate  float64   `json:"defensive_success_rate"`  // 0-1
}

// TrackProfile holds the static characteristics of a circuit.
type TrackProfile struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	LengthKM          float64 `json:"length_km"`
	CornerCount       int     `json:"corner_count"`
	AvgCornerSpeedKPH float64 `json:"avg_corner_speed_kph"`
	DRSZones          int     `json:"drs_zones"`
	LongestStraightM  float64 `json:"longest_straight_m"`
	TrackWidthM       float64 `json:"track_width_m"`
	PitLaneLengthM    float64 `json:"pit_lane_length_m"`
	ElevationChangeM  float64 `json:"elevation_change_m"`
	BarrierProximity  float64 `json:"barrier_proximity"` // 0 open runoff, 1 walls
	Abrasiveness      float64 `json:"abrasiveness"`      // 0-1
	DownforceDemand   string  `json:"downforce_demand"`  // high_downforce, balanced, low_downforce
	HistoricalSCRate  float64 `json:"historical_sc_rate"`
}

// RaceSituation is a snapshot of one car's race state.
type RaceSituation struct {
	CurrentLap int      `json:"current_lap"`
	TotalLaps  int      `json:"total_laps"`
	Position   int      `json:"position"`
	GapAheadS  float64  `json:"gap_ahead_s"`
	GapBehindS float64  `json:"gap_behind_s"`
	TyreAge    int      `json:"tyre_age"`
	Compound   Compound `json:"compound"`
}

// TelemetrySample is one point of a telemetry trace along the lap.
type TelemetrySample struct {
	DistanceM float64 `json:"distance_m"`
	SpeedKPH  float64 `json:"speed_kph"`
	Throttle  float64 `json:"throttle"`
	Brake     bool    `json:"brake"`
	DRS       bool    `json:"drs"`
}

// WeatherSample is one observation from the weather feed.
type WeatherSample struct {
	AirTempC   float64 `json:"air_temp_c"`
	TrackTempC float64 `json:"track_temp_c"`
	Humidity   float64 `json:"humidity"`
	WindSpeed  float64 `json:"wind_speed"`
	Rainfall   bool    `json:"rainfall"`
}

// LapSample is one completed lap from the timing feed.
type LapSample struct {
	LapNumber int      `json:"lap_number"`
	LapTimeS  float64  `json:"lap_time_s"`
	Compound  Compound `json:"compound"`
	TyreAge   int      `json:"tyre_age"`
	PitOutLap bool     `json:"pit_out_lap"`
	PitInLap  bool     `json:"pit_in_lap"`
}
