package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charleschow/gridiron-sim/internal/decision"
)

func TestLoadProbabilityConstantsEmptyPathIsNotAnError(t *testing.T) {
	pc, err := LoadProbabilityConstants("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pc.OnsideKickProbability != nil {
		t.Fatalf("expected no override from an empty path")
	}
}

func TestLoadProbabilityConstantsAppliesOverride(t *testing.T) {
	original := decision.OnsideKickProbability
	defer func() { decision.OnsideKickProbability = original }()

	dir := t.TempDir()
	path := filepath.Join(dir, "probs.yaml")
	if err := os.WriteFile(path, []byte("onside_kick_probability: 0.2\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	pc, err := LoadProbabilityConstants(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pc.OnsideKickProbability == nil || *pc.OnsideKickProbability != 0.2 {
		t.Fatalf("expected override of 0.2, got %v", pc.OnsideKickProbability)
	}

	pc.Apply()
	if decision.OnsideKickProbability != 0.2 {
		t.Fatalf("expected Apply to overwrite the live decision package rate")
	}
}

func TestLoadOptionsDefaults(t *testing.T) {
	os.Unsetenv("RANDOM_SEED")
	os.Unsetenv("OVERTIME_RULES")
	opts := LoadOptions()
	if opts.OvertimeRules != "nfl" {
		t.Fatalf("expected default overtime rules nfl, got %q", opts.OvertimeRules)
	}
	if opts.MaxPlays != DefaultMaxPlays {
		t.Fatalf("expected default max plays, got %d", opts.MaxPlays)
	}
}
