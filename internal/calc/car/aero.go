package car

import (
	"math"

	"github.com/f1strategy/pitwall/internal/calc"
)

// TrackType categorizes circuits by downforce demand.
type TrackType string

const (
	TrackHighDownforce TrackType = "high_downforce"
	TrackBalanced      TrackType = "balanced"
	TrackLowDownforce  TrackType = "low_downforce"
)

var trackTypeFactors = map[TrackType]float64{
	TrackHighDownforce: 0.8,
	TrackBalanced:      0.5,
	TrackLowDownforce:  0.2,
}

// AeroBalanceResult scores a downforce/drag setup against a track type.
type AeroBalanceResult struct {
	BalanceScore    float64 `json:"balance_score"` // 0-10
	EfficiencyRatio float64 `json:"efficiency_ratio"`
	Recommendation  string  `json:"recommendation"` // increase_downforce, reduce_downforce, reduce_drag, optimal
}

// AeroDragBalance scores how well a setup suits a track. High downforce
// tracks weight the downforce delta heavily, low downforce tracks punish
// drag instead.
func AeroDragBalance(downforceLevel, dragLevel float64, trackType TrackType) AeroBalanceResult {
	downforce := calc.Clamp(downforceLevel, 0, 10)
	drag := calc.Clamp(dragLevel, 0, 10)

	factor, ok := trackTypeFactors[trackType]
	if !ok {
		factor = trackTypeFactors[TrackBalanced]
	}

	var efficiency float64
	if drag > 0 {
		efficiency = downforce / drag
	} else {
		efficiency = downforce * 10.0
	}

	idealDownforce := factor * 10.0
	idealDrag := (1.0 - factor) * 5.0
	downforcePenalty := math.Abs(downforce-idealDownforce) * factor
	dragPenalty := math.Abs(drag-idealDrag) * (1.0 - factor)
	score := math.Max(0, 10.0-(downforcePenalty+dragPenalty))

	var recommendation string
	switch {
	case downforce < idealDownforce-1.0:
		recommendation = "increase_downforce"
	case downforce > idealDownforce+1.0:
		recommendation = "reduce_downforce"
	case drag > idealDrag+1.0:
		recommendation = "reduce_drag"
	default:
		recommendation = "optimal"
	}

	return AeroBalanceResult{
		BalanceScore:    score,
		EfficiencyRatio: efficiency,
		Recommendation:  recommendation,
	}
}

// SetupLapTimeDelta estimates the lap time change from a setup adjustment.
// Each balance point is worth 0.05 s; negative means faster.
func SetupLapTimeDelta(currentDownforce, currentDrag, newDownforce, newDrag float64, trackType TrackType) float64 {
	current := AeroDragBalance(currentDownforce, currentDrag, trackType)
	proposed := AeroDragBalance(newDownforce, newDrag, trackType)
	return -(proposed.BalanceScore - current.BalanceScore) * 0.05
}
