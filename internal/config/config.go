// Package config holds SimulateGame's entry-point Options (spec §6) and
// the env/.env-driven defaults a CLI harness uses to build them, in the
// same envStr/envInt + godotenv.Load style the teacher's webhook/Kalshi
// Config.Load used.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/charleschow/gridiron-sim/internal/gamestate"
)

// Options configures a single SimulateGame call (spec §6). The three
// rules fields are looked up independently in internal/ruleset's
// registries, so a caller can e.g. run NFL overtime with no two-minute
// warning without the package needing a combined "mixed" ruleset entry.
type Options struct {
	RandomSeed uint32

	OvertimeRules         string // "nfl" or "nfl_playoff" ("ncaa" is reserved and rejected)
	TwoMinuteWarningRules string // "nfl" or "ncaa"
	EndOfHalfRules        string // "nfl" or "ncaa"

	ProbabilityConstantsPath string // optional YAML override, internal/config.LoadProbabilityConstants

	Logger gamestate.Logger

	MaxPlays int // safety valve against a runaway loop bug; 0 means the package default
}

// DefaultMaxPlays bounds a single game's play count generously above any
// realistic regulation-plus-overtime game, so a bug that fails to
// terminate a drive surfaces as an error instead of hanging forever.
const DefaultMaxPlays = 500

// LoadOptions builds Options from the environment (after loading a
// local .env via godotenv, same as the teacher's Config.Load), for the
// example CLI harness. Programmatic callers of SimulateGame should
// construct Options directly instead.
func LoadOptions() Options {
	_ = godotenv.Load()

	return Options{
		RandomSeed:               uint32(envInt("RANDOM_SEED", 1)),
		OvertimeRules:            envStr("OVERTIME_RULES", "nfl"),
		TwoMinuteWarningRules:    envStr("TWO_MINUTE_WARNING_RULES", "nfl"),
		EndOfHalfRules:           envStr("END_OF_HALF_RULES", "nfl"),
		ProbabilityConstantsPath: envStr("PROBABILITY_CONSTANTS_PATH", ""),
		MaxPlays:                 envInt("MAX_PLAYS", DefaultMaxPlays),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
