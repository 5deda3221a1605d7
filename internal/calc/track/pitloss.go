// Package track rates circuit characteristics: pit stop cost, overtaking
// difficulty, dirty air, overall difficulty and safety car likelihood.
package track

import "fmt"

// Defaults for a typical modern circuit.
const (
	DefaultPitLaneLengthM   = 300.0
	DefaultPitSpeedLimitKPH = 80.0
	DefaultTrackSpeedKPH    = 200.0
	DefaultStopDurationS    = 2.5
)

// PitLossInput describes pit lane geometry. Zero fields use the defaults.
type PitLossInput struct {
	PitLaneLengthM   float64
	PitSpeedLimitKPH float64
	TrackSpeedKPH    float64
	StopDurationS    float64
}

// PitLossResult is the total time cost of a pit stop.
type PitLossResult struct {
	TotalLossS      float64 `json:"total_loss_s"`
	StationaryTimeS float64 `json:"stationary_time_s"`
}

// PitLoss computes the time lost to a pit stop: the delta between
// driving the pit lane at the speed limit versus the same distance at
// racing speed, plus the stationary stop.
func PitLoss(in PitLossInput) PitLossResult {
	laneLength := in.PitLaneLengthM
	if laneLength == 0 {
		laneLength = DefaultPitLaneLengthM
	}
	speedLimit := in.PitSpeedLimitKPH
	if speedLimit == 0 {
		speedLimit = DefaultPitSpeedLimitKPH
	}
	trackSpeed := in.TrackSpeedKPH
	if trackSpeed == 0 {
		trackSpeed = DefaultTrackSpeedKPH
	}
	stop := in.StopDurationS
	if stop == 0 {
		stop = DefaultStopDurationS
	}

	laneTimeS := laneLength / 1000.0 / speedLimit * 3600.0
	trackTimeS := laneLength / 1000.0 / trackSpeed * 3600.0

	return PitLossResult{
		TotalLossS:      laneTimeS - trackTimeS + stop,
		StationaryTimeS: stop,
	}
}

// PitWindowPlan sketches a stop-count strategy from pit loss and tyre life.
type PitWindowPlan struct {
	Strategy       string  `json:"strategy"`
	OptimalLap     int     `json:"optimal_lap,omitempty"`
	WindowEarliest int     `json:"window_earliest,omitempty"`
	WindowLatest   int     `json:"window_latest,omitempty"`
	PitLossLaps    float64 `json:"pit_loss_laps"`
	TotalTimeLostS float64 `json:"total_time_lost_s,omitempty"`
}

// PlanPitWindow recommends a one-stop window when tyre life allows it,
// otherwise reports the stop count and the cumulative pit loss.
func PlanPitWindow(raceLaps, tyreLife int, pitLossS, lapTimeS float64) PitWindowPlan {
	pitLossLaps := 0.0
	if lapTimeS > 0 {
		pitLossLaps = pitLossS / lapTimeS
	}

	if raceLaps <= tyreLife*2 {
		optimal := raceLaps / 2
		earliest := optimal - int(float64(tyreLife)*0.2)
		if earliest < 10 {
			earliest = 10
		}
		latest := optimal + int(float64(tyreLife)*0.2)
		if latest > raceLaps-5 {
			latest = raceLaps - 5
		}
		return PitWindowPlan{
			Strategy:       "1_stop",
			OptimalLap:     optimal,
			WindowEarliest: earliest,
			WindowLatest:   latest,
			PitLossLaps:    pitLossLaps,
		}
	}

	numStops := raceLaps/tyreLife + 1
	return PitWindowPlan{
		Strategy:       fmt.Sprintf("%d_stop", numStops),
		PitLossLaps:    pitLossLaps,
		TotalTimeLostS: pitLossS * float64(numStops),
	}
}
