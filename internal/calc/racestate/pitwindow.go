package racestate

import (
	"fmt"
)

// PitWindowInput locates a pit window from tyre life and race distance.
type PitWindowInput struct {
	CurrentTyreAge   int
	ExpectedTyreLife int
	RaceLaps         int
	CurrentLap       int
}

// PitWindowResult bounds the stop. HasWindow is false when no window
// fits before the race ends.
type PitWindowResult struct {
	OptimalLap      int  `json:"optimal_lap,omitempty"`
	WindowOpensLap  int  `json:"window_opens_lap,omitempty"`
	WindowClosesLap int  `json:"window_closes_lap,omitempty"`
	HasWindow       bool `json:"has_window"`
}

// PitWindow opens at 60% of expected tyre life and closes at 85%, with
// the optimal lap biased two-thirds toward the close. All bounds are
// capped two laps before the flag.
func PitWindow(in PitWindowInput) PitWindowResult {
	minStint := int(float64(in.ExpectedTyreLife) * 0.6)
	if minStint < 10 {
		minStint = 10
	}
	earliest := in.CurrentLap + maxInt(0, minStint-in.CurrentTyreAge)

	maxSafeStint := int(float64(in.ExpectedTyreLife) * 0.85)
	latest := in.CurrentLap + maxInt(0, maxSafeStint-in.CurrentTyreAge)

	optimal := (earliest + latest*2) / 3

	if earliest > in.RaceLaps || latest > in.RaceLaps {
		return PitWindowResult{}
	}

	lastUsable := in.RaceLaps - 2
	return PitWindowResult{
		OptimalLap:      minInt(optimal, lastUsable),
		WindowOpensLap:  minInt(earliest, lastUsable),
		WindowClosesLap: minInt(latest, lastUsable),
		HasWindow:       true,
	}
}

// TrafficAdjustment is a traffic-aware shift of the optimal pit lap.
type TrafficAdjustment struct {
	AdjustedLap int    `json:"adjusted_lap,omitempty"`
	HasPit      bool   `json:"has_pit"`
	Reason      string `json:"reason"`
}

// AdjustForTraffic searches around the optimal lap for a traffic-free
// lap, preferring delay over advance at each offset.
func AdjustForTraffic(window PitWindowResult, trafficLaps []int, windowFlexibility int) TrafficAdjustment {
	if !window.HasWindow {
		return TrafficAdjustment{Reason: "no pit required"}
	}
	traffic := make(map[int]bool, len(trafficLaps))
	for _, lap := range trafficLaps {
		traffic[lap] = true
	}

	optimal := window.OptimalLap
	if !traffic[optimal] {
		return TrafficAdjustment{AdjustedLap: optimal, HasPit: true, Reason: "optimal lap is clear"}
	}
	for offset := 1; offset <= windowFlexibility; offset++ {
		if later := optimal + offset; !traffic[later] {
			return TrafficAdjustment{
				AdjustedLap: later,
				HasPit:      true,
				Reason:      fmt.Sprintf("delayed %d laps to avoid traffic", offset),
			}
		}
		if earlier := optimal - offset; earlier > 0 && !traffic[earlier] {
			return TrafficAdjustment{
				AdjustedLap: earlier,
				HasPit:      true,
				Reason:      fmt.Sprintf("advanced %d laps to avoid traffic", offset),
			}
		}
	}
	return TrafficAdjustment{AdjustedLap: optimal, HasPit: true, Reason: "no clear window available, accepting traffic"}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
