package agent

import (
	"fmt"
	"io"
	"sort"

	"knockitoff/game"

	"gopkg.in/yaml.v3"
)

// KindValues is how much an AI tier believes each kind is worth.
type KindValues struct {
	Decoy   float64 `yaml:"decoy"`
	Soldier float64 `yaml:"soldier"`
	Captain float64 `yaml:"captain"`
	Crown   float64 `yaml:"crown"`
}

// Profile parameterizes one AI skill tier. Memory decay and move evaluation
// read only these fields; nothing branches on the tier name.
type Profile struct {
	Name             string     `yaml:"name"`
	RecallMoves      int        `yaml:"recall_moves"`       // Turns a memory record stays valid
	CaptureWeight    float64    `yaml:"capture_weight"`     // Immediate knock value
	ThreatWeight     float64    `yaml:"threat_weight"`      // Knocks set up for next turn
	SafetyWeight     float64    `yaml:"safety_weight"`      // Penalty for landing where it can be knocked
	MobilityWeight   float64    `yaml:"mobility_weight"`    // Freedom of the moved piece
	PositionWeight   float64    `yaml:"position_weight"`    // Whole-board evaluation
	RiskTolerance    float64    `yaml:"risk_tolerance"`     // 0 fears every threat, 1 ignores them
	UnknownKindValue float64    `yaml:"unknown_kind_value"` // Assumed value of an unobserved piece
	Randomness       float64    `yaml:"randomness"`         // Sampling temperature, 0 picks the best
	TopK             int        `yaml:"top_k"`              // Candidates considered when sampling
	Values           KindValues `yaml:"kind_values"`
}

// RecallWindow makes Profile a game.RecallPolicy.
func (p Profile) RecallWindow() int {
	return p.RecallMoves
}

// ValueOf returns the tier's value for kind.
func (p Profile) ValueOf(kind game.Kind) float64 {
	switch kind {
	case game.Decoy:
		return p.Values.Decoy
	case game.Soldier:
		return p.Values.Soldier
	case game.Captain:
		return p.Values.Captain
	case game.Crown:
		return p.Values.Crown
	default:
		return p.UnknownKindValue
	}
}

func (p Profile) validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile has no name")
	}
	if p.RecallMoves < 0 {
		return fmt.Errorf("profile %q: recall_moves cannot be negative", p.Name)
	}
	if p.RiskTolerance < 0 || p.RiskTolerance > 1 {
		return fmt.Errorf("profile %q: risk_tolerance must be within [0, 1]", p.Name)
	}
	if p.Randomness < 0 {
		return fmt.Errorf("profile %q: randomness cannot be negative", p.Name)
	}
	if p.Randomness > 0 && p.TopK < 1 {
		return fmt.Errorf("profile %q: top_k must be at least 1 when randomness is set", p.Name)
	}
	return nil
}

// Profiles indexes tiers by name.
type Profiles map[string]Profile

var standardValues = KindValues{Decoy: 0.5, Soldier: 1, Captain: 3, Crown: 6}

// DefaultProfiles returns the built-in tiers, weakest first: novice, casual,
// shrewd, master.
func DefaultProfiles() Profiles {
	return Profiles{
		"novice": {
			Name:             "novice",
			RecallMoves:      0,
			CaptureWeight:    1.0,
			ThreatWeight:     0.2,
			SafetyWeight:     0.2,
			MobilityWeight:   0.1,
			PositionWeight:   0,
			RiskTolerance:    0.8,
			UnknownKindValue: 1.5,
			Randomness:       1.0,
			TopK:             5,
			Values:           standardValues,
		},
		"casual": {
			Name:             "casual",
			RecallMoves:      3,
			CaptureWeight:    1.0,
			ThreatWeight:     0.5,
			SafetyWeight:     0.6,
			MobilityWeight:   0.2,
			PositionWeight:   0.5,
			RiskTolerance:    0.5,
			UnknownKindValue: 1.5,
			Randomness:       0.5,
			TopK:             3,
			Values:           standardValues,
		},
		"shrewd": {
			Name:             "shrewd",
			RecallMoves:      8,
			CaptureWeight:    1.2,
			ThreatWeight:     0.8,
			SafetyWeight:     1.0,
			MobilityWeight:   0.2,
			PositionWeight:   1.0,
			RiskTolerance:    0.3,
			UnknownKindValue: 1.5,
			Randomness:       0.2,
			TopK:             2,
			Values:           standardValues,
		},
		"master": {
			Name:             "master",
			RecallMoves:      20,
			CaptureWeight:    1.5,
			ThreatWeight:     1.0,
			SafetyWeight:     1.5,
			MobilityWeight:   0.3,
			PositionWeight:   1.5,
			RiskTolerance:    0.1,
			UnknownKindValue: 1.5,
			Randomness:       0,
			TopK:             1,
			Values:           standardValues,
		},
	}
}

// Lookup returns the tier for level.
func (ps Profiles) Lookup(level string) (Profile, error) {
	p, ok := ps[level]
	if !ok {
		return Profile{}, fmt.Errorf("unknown AI level %q", level)
	}
	return p, nil
}

// Validate checks every tier, in name order.
func (ps Profiles) Validate() error {
	for _, name := range ps.Names() {
		if err := ps[name].validate(); err != nil {
			return err
		}
	}
	return nil
}

// MustLookup is Lookup for wiring code, where an unknown level is a bug.
func (ps Profiles) MustLookup(level string) Profile {
	p, err := ps.Lookup(level)
	if err != nil {
		panic(err)
	}
	return p
}

// Names lists the tier names in alphabetical order.
func (ps Profiles) Names() []string {
	names := make([]string, 0, len(ps))
	for name := range ps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type profileFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// LoadProfiles reads tiers from YAML. Loaded tiers replace built-in tiers of
// the same name; the others are kept.
func LoadProfiles(r io.Reader) (Profiles, error) {
	var file profileFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}

	profiles := DefaultProfiles()
	for _, p := range file.Profiles {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("invalid profile: %w", err)
		}
		profiles[p.Name] = p
	}
	return profiles, nil
}
