package models

import "strings"

// Compound is a closed set of dry and wet weather tyre compounds.
type Compound string

const (
	CompoundSoft         Compound = "SOFT"
	CompoundMedium       Compound = "MEDIUM"
	CompoundHard         Compound = "HARD"
	CompoundIntermediate Compound = "INTERMEDIATE"
	CompoundWet          Compound = "WET"
)

// TempRange is an optimal operating temperature window in Celsius.
type TempRange struct {
	MinC float64 `json:"min_c"`
	MaxC float64 `json:"max_c"`
}

// CompoundProfile holds the static characteristics of a tyre compound.
// Pace deltas are relative to the MEDIUM baseline.
type CompoundProfile struct {
	Name                Compound  `json:"name"`
	BaselinePaceDeltaS  float64   `json:"baseline_pace_delta_s"`
	BaseDegradationRate float64   `json:"base_degradation_rate"`
	OptimalTemp         TempRange `json:"optimal_temp_range"`
	ExpectedLifeLaps    int       `json:"expected_life_laps"`
}

var compoundProfiles = map[Compound]CompoundProfile{
	CompoundSoft: {
		Name:                CompoundSoft,
		BaselinePaceDeltaS:  -0.4,
		BaseDegradationRate: 0.08,
		OptimalTemp:         TempRange{MinC: 85, MaxC: 95},
		ExpectedLifeLaps:    15,
	},
	CompoundMedium: {
		Name:                CompoundMedium,
		BaselinePaceDeltaS:  0.0,
		BaseDegradationRate: 0.05,
		OptimalTemp:         TempRange{MinC: 90, MaxC: 100},
		ExpectedLifeLaps:    25,
	},
	CompoundHard: {
		Name:                CompoundHard,
		BaselinePaceDeltaS:  0.3,
		BaseDegradationRate: 0.03,
		OptimalTemp:         TempRange{MinC: 95, MaxC: 105},
		ExpectedLifeLaps:    35,
	},
	CompoundIntermediate: {
		Name:                CompoundIntermediate,
		BaselinePaceDeltaS:  0.0,
		BaseDegradationRate: 0.04,
		OptimalTemp:         TempRange{MinC: 70, MaxC: 90},
		ExpectedLifeLaps:    25,
	},
	CompoundWet: {
		Name:                CompoundWet,
		BaselinePaceDeltaS:  0.0,
		BaseDegradationRate: 0.02,
		OptimalTemp:         TempRange{MinC: 50, MaxC: 80},
		ExpectedLifeLaps:    30,
	},
}

// ParseCompound normalizes a compound name. Unrecognized names fall back
// to MEDIUM rather than failing, so malformed provider data still yields
// a usable strategy.
func ParseCompound(s string) Compound {
	c := Compound(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := compoundProfiles[c]; ok {
		return c
	}
	return CompoundMedium
}

// IsValidCompound reports whether the name maps to a known compound.
func IsValidCompound(s string) bool {
	_, ok := compoundProfiles[Compound(strings.ToUpper(strings.TrimSpace(s)))]
	return ok
}

// ProfileFor returns the static profile for a compound. Unknown compounds
// return the MEDIUM profile.
func ProfileFor(c Compound) CompoundProfile {
	if p, ok := compoundProfiles[c]; ok {
		return p
	}
	return compoundProfiles[CompoundMedium]
}

// DryCompounds lists the slick compounds in pace order, softest first.
func DryCompounds() []Compound {
	return []Compound{CompoundSoft, CompoundMedium, CompoundHard}
}
