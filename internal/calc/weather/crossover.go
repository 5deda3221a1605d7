package weather

// CrossoverInput is two compounds modeled as linear pace plus linear
// degradation. Lap times in seconds, degradation in s/lap.
type CrossoverInput struct {
	CompoundAInitialPace float64
	CompoundBInitialPace float64
	CompoundADegRate     float64
	CompoundBDegRate     float64
}

// CrossoverResult locates the lap where the two compounds swap order.
// HasCrossover is false when the faster-starting compound also degrades
// no faster, so no crossover ever occurs.
type CrossoverResult struct {
	CrossoverLap         int  `json:"crossover_lap,omitempty"`
	HasCrossover         bool `json:"has_crossover"`
	CompoundAFasterUntil int  `json:"compound_a_faster_until,omitempty"`
	CompoundBFasterFrom  int  `json:"compound_b_faster_from,omitempty"`
}

// CrossoverLap solves the intersection of two linear pace models. The
// true curve is non-linear, but the linear fit holds well inside one
// stint.
func CrossoverLap(in CrossoverInput) CrossoverResult {
	if in.CompoundAInitialPace < in.CompoundBInitialPace {
		paceAdvantage := in.CompoundBInitialPace - in.CompoundAInitialPace
		degDiff := in.CompoundADegRate - in.CompoundBDegRate
		if degDiff <= 0 {
			return CrossoverResult{}
		}
		lap := int(paceAdvantage / degDiff)
		if lap < 1 {
			lap = 1
		}
		return CrossoverResult{
			CrossoverLap:         lap,
			HasCrossover:         true,
			CompoundAFasterUntil: lap,
			CompoundBFasterFrom:  lap + 1,
		}
	}

	paceAdvantage := in.CompoundAInitialPace - in.CompoundBInitialPace
	degDiff := in.CompoundBDegRate - in.CompoundADegRate
	if degDiff <= 0 {
		return CrossoverResult{CompoundBFasterFrom: 1}
	}
	lap := int(paceAdvantage / degDiff)
	if lap < 1 {
		lap = 1
	}
	return CrossoverResult{
		CrossoverLap:        lap,
		HasCrossover:        true,
		CompoundBFasterFrom: lap + 1,
	}
}

// StintLengthAdvice recommends how long to run before the crossover.
type StintLengthAdvice struct {
	OptimalStintLength int    `json:"optimal_stint_length"`
	Reasoning          string `json:"reasoning"`
}

// OptimalStintLength bounds the stint by the crossover lap when one
// exists, otherwise by tyre life and race distance.
func OptimalStintLength(crossover CrossoverResult, maxTyreLife, raceLapsRemaining int) StintLengthAdvice {
	if !crossover.HasCrossover {
		length := maxTyreLife
		if raceLapsRemaining < length {
			length = raceLapsRemaining
		}
		return StintLengthAdvice{
			OptimalStintLength: length,
			Reasoning:          "no crossover point, maximize stint",
		}
	}
	if crossover.CrossoverLap < maxTyreLife {
		return StintLengthAdvice{
			OptimalStintLength: crossover.CrossoverLap - 1,
			Reasoning:          "stop before the crossover lap",
		}
	}
	return StintLengthAdvice{
		OptimalStintLength: maxTyreLife,
		Reasoning:          "run to tyre life before crossover",
	}
}
