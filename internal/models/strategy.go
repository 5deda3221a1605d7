package models

// StrategyType classifies a pit strategy recommendation.
type StrategyType string

const (
	StrategyNoStop    StrategyType = "NO_STOP"
	StrategyUndercut  StrategyType = "UNDERCUT_OPPORTUNITY"
	StrategyOvercut   StrategyType = "OVERCUT_OPPORTUNITY"
	StrategyUrgentPit StrategyType = "CRITICAL_URGENT_PIT"
	StrategyStandard  StrategyType = "STANDARD_STRATEGY"
)

// StrategyRecommendation is the pit strategy simulator's output.
// OptimalPitLap greater than the race length means no stop is required.
type StrategyRecommendation struct {
	OptimalPitLap       int          `json:"optimal_pit_lap"`
	PitWindowStart      int          `json:"pit_window_start"`
	PitWindowEnd        int          `json:"pit_window_end"`
	UndercutAdvantageS  float64      `json:"undercut_advantage_s"`
	OvercutAdvantageS   float64      `json:"overcut_advantage_s"`
	RecommendedCompound Compound     `json:"recommended_compound"`
	ExpectedStintLength int          `json:"expected_stint_length"`
	StrategyType        StrategyType `json:"strategy_type"`
	Confidence          float64      `json:"confidence"`
}

// BattleMode is the recommended approach to a wheel-to-wheel fight.
type BattleMode string

const (
	ModeAttack  BattleMode = "ATTACK"
	ModePrepare BattleMode = "PREPARE"
	ModeDefend  BattleMode = "DEFEND"
)

// BattlePrediction is the battle forecast output for one attacker
// versus one defender.
type BattlePrediction struct {
	OvertakeProbability float64    `json:"overtake_probability"`
	BestOvertakeZone    string     `json:"best_overtake_zone"`
	SpeedAdvantageKPH   float64    `json:"speed_advantage_kmh"`
	DRSAvailable        bool       `json:"drs_available"`
	DifficultyRating    float64    `json:"difficulty_rating"`
	RecommendedMode     BattleMode `json:"recommended_mode"`
	Recommendation      string     `json:"recommendation"`
	KeyFactors          []string   `json:"key_factors"`
}

// StintPlan is one stint of a simulated full-race strategy.
type StintPlan struct {
	StintNumber int      `json:"stint_number"`
	StartLap    int      `json:"start_lap"`
	EndLap      int      `json:"end_lap"`
	Compound    Compound `json:"compound"`
	StintLength int      `json:"stint_length"`
	PitAfter    bool     `json:"pit_after"`
}
