package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/charleschow/gridiron-sim/internal/decision"
)

// ProbabilityConstants is the YAML-overridable subset of the decision
// engines' base rates (spec §6 "probability constants may be overridden
// at startup"), grounded on the teacher's RiskLimits loader: a flat
// struct decoded straight from a small YAML file, no schema versioning.
type ProbabilityConstants struct {
	OnsideKickProbability       *float64 `yaml:"onside_kick_probability"`
	TwoPointRunProbability      *float64 `yaml:"two_point_run_probability"`
	TwoPointConversionProbability *float64 `yaml:"two_point_conversion_probability"`
}

// LoadProbabilityConstants reads and parses a ProbabilityConstants file.
// A missing or empty path is not an error: it simply means no override
// applies, the package default rates described alongside each decision
// engine stand.
func LoadProbabilityConstants(path string) (ProbabilityConstants, error) {
	if path == "" {
		return ProbabilityConstants{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ProbabilityConstants{}, fmt.Errorf("read probability constants: %w", err)
	}

	var pc ProbabilityConstants
	if err := yaml.Unmarshal(data, &pc); err != nil {
		return ProbabilityConstants{}, fmt.Errorf("parse probability constants: %w", err)
	}
	return pc, nil
}

// Apply overwrites the decision package's live base rates with any
// non-nil override. SimulateGame loads Options.ProbabilityConstantsPath
// and calls this on every call, before any play is run; the overwritten
// package variables keep their values for later calls in the process.
func (pc ProbabilityConstants) Apply() {
	if pc.OnsideKickProbability != nil {
		decision.OnsideKickProbability = *pc.OnsideKickProbability
	}
	if pc.TwoPointRunProbability != nil {
		decision.TwoPointRunProbability = *pc.TwoPointRunProbability
	}
	if pc.TwoPointConversionProbability != nil {
		decision.TwoPointConversionProbability = *pc.TwoPointConversionProbability
	}
}
