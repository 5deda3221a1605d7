package racestate

// StintPhase labels how far through a stint the tyres are.
type StintPhase string

const (
	PhaseEarly    StintPhase = "early"
	PhaseMid      StintPhase = "mid"
	PhaseLate     StintPhase = "late"
	PhaseCritical StintPhase = "critical"
)

// StintStateResult is a snapshot of stint health.
type StintStateResult struct {
	StintProgress float64    `json:"stint_progress"` // 0-1
	PaceDeltaS    float64    `json:"pace_delta_s"`   // pace lost since stint start
	StintPhase    StintPhase `json:"stint_phase"`
}

// StintState derives stint progress and phase from laps on tyre against
// the expected stint length, plus the pace lost since the stint began.
func StintState(lapsOnTyre, expectedStintLength int, currentPaceS, initialPaceS float64) StintStateResult {
	if expectedStintLength < 1 {
		expectedStintLength = 1
	}
	progress := float64(lapsOnTyre) / float64(expectedStintLength)
	if progress > 1.0 {
		progress = 1.0
	}

	var phase StintPhase
	switch {
	case progress < 0.3:
		phase = PhaseEarly
	case progress < 0.7:
		phase = PhaseMid
	case progress < 0.9:
		phase = PhaseLate
	default:
		phase = PhaseCritical
	}

	return StintStateResult{
		StintProgress: progress,
		PaceDeltaS:    currentPaceS - initialPaceS,
		StintPhase:    phase,
	}
}

// StintOutlook projects the rest of the stint from the current state.
type StintOutlook struct {
	Recommendation    string     `json:"recommendation"` // continue, monitor, pit_soon
	Reason            string     `json:"reason"`
	ExpectedPaceLossS float64    `json:"expected_total_pace_loss_s"`
	LapsRemaining     int        `json:"laps_remaining"`
	StintPhase        StintPhase `json:"stint_phase"`
}

// PredictRemainingStint extrapolates degradation over the remaining
// laps. Later phases accelerate the loss since the cliff is closer.
func PredictRemainingStint(state StintStateResult, lapsRemainingInStint int) StintOutlook {
	var acceleration float64
	switch state.StintPhase {
	case PhaseEarly:
		acceleration = 1.2
	case PhaseMid:
		acceleration = 1.5
	case PhaseLate:
		acceleration = 2.0
	default:
		acceleration = 3.0
	}

	additional := state.PaceDeltaS * acceleration * float64(lapsRemainingInStint) / 10.0
	total := state.PaceDeltaS + additional

	out := StintOutlook{
		ExpectedPaceLossS: total,
		LapsRemaining:     lapsRemainingInStint,
		StintPhase:        state.StintPhase,
	}
	switch {
	case total > 2.0:
		out.Recommendation = "pit_soon"
		out.Reason = "severe degradation expected"
	case total > 1.0:
		out.Recommendation = "monitor"
		out.Reason = "significant degradation expected"
	default:
		out.Recommendation = "continue"
		out.Reason = "performance acceptable"
	}
	return out
}
