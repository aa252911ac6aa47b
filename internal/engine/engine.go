// Package engine implements the game-progression loop (spec §4.9) and
// the public SimulateGame entry point (spec §6): the outer state machine
// that wires the seeded RNG, skill checks, decision engines, play
// mechanics, play-result processors, and rulesets together into a
// finished game.
package engine

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/charleschow/gridiron-sim/internal/config"
	"github.com/charleschow/gridiron-sim/internal/gamestate"
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/player"
	"github.com/charleschow/gridiron-sim/internal/rng"
	"github.com/charleschow/gridiron-sim/internal/ruleset"
)

// ConfigError is returned by SimulateGame at entry for a malformed
// request (spec §7 "Configuration error... surfaced at simulate_game
// entry; game is not started"): an unknown ruleset identifier, an empty
// roster, or a roster missing a required position.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("engine: configuration error: %s", e.Reason)
}

// InvariantViolation is the panic value an internal engine bug raises
// (spec §7 "the engine fails fast... aborts the simulation with a
// diagnostic carrying the offending state"). SimulateGame is the only
// place that recovers one, converting it to a returned error.
type InvariantViolation struct {
	Message string
	Snapshot *gamestate.Game
}

func (e InvariantViolation) Error() string {
	return fmt.Sprintf("engine: invariant violation: %s", e.Message)
}

func fail(g *gamestate.Game, format string, args ...any) {
	panic(InvariantViolation{Message: fmt.Sprintf(format, args...), Snapshot: g})
}

// GameResult is simulate_game's return value (spec §6): the finished
// Game's score, winner, ordered plays, and per-player statistics (the
// latter read directly off Home/Away's Player.Stats, which the stats
// accumulator mutated in place play by play).
type GameResult struct {
	Home *player.Team
	Away *player.Team

	HomeScore int
	AwayScore int

	// Winner is nil when IsTie is true.
	Winner *play.Possession
	IsTie  bool

	Plays []*play.Play

	RandomSeed uint32
}

// SimulateGame runs one complete game from two rosters and options to a
// finished GameResult (spec §6's single entry point). Configuration
// errors are returned as *ConfigError without starting the game;
// internal invariant violations panic as InvariantViolation and are
// recovered here into a plain error, per spec §7.
func SimulateGame(home, away *player.Team, opts config.Options) (result *GameResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(InvariantViolation); ok {
				err = iv
				result = nil
				return
			}
			panic(r)
		}
	}()

	if cfgErr := validateInputs(home, away, opts); cfgErr != nil {
		return nil, cfgErr
	}

	rs, cfgErr := resolveRuleset(opts)
	if cfgErr != nil {
		return nil, cfgErr
	}

	if pc, perr := config.LoadProbabilityConstants(opts.ProbabilityConstantsPath); perr != nil {
		return nil, &ConfigError{Reason: perr.Error()}
	} else {
		pc.Apply()
	}

	seed := opts.RandomSeed
	if seed == 0 {
		seed = generateSeed()
	}

	maxPlays := opts.MaxPlays
	if maxPlays == 0 {
		maxPlays = config.DefaultMaxPlays
	}

	logger := opts.Logger
	if logger == nil {
		logger = gamestate.DiscardLogger
	}

	g := newGame(home, away, seed, logger)
	src := rng.New(seed)

	run(g, src, rs, maxPlays)

	return buildResult(g, seed), nil
}

func validateInputs(home, away *player.Team, opts config.Options) *ConfigError {
	if err := home.Validate(); err != nil {
		return &ConfigError{Reason: "home roster: " + err.Error()}
	}
	if err := away.Validate(); err != nil {
		return &ConfigError{Reason: "away roster: " + err.Error()}
	}
	return nil
}

// rulesetBundle bundles the three independently-selected policies a
// single SimulateGame call consults (spec §6: Options names three
// separate ruleset identifiers, not one combined family).
type rulesetBundle struct {
	Overtime         ruleset.Overtime
	TwoMinuteWarning ruleset.TwoMinuteWarning
	EndOfHalf        ruleset.EndOfHalf
}

func resolveRuleset(opts config.Options) (rulesetBundle, *ConfigError) {
	overtimeName := normalizeRulesetName(opts.OvertimeRules, "nfl")
	twoMinName := normalizeRulesetName(opts.TwoMinuteWarningRules, "nfl")
	endOfHalfName := normalizeRulesetName(opts.EndOfHalfRules, "nfl")

	ot, ok := ruleset.LookupOvertime(overtimeName)
	if !ok {
		return rulesetBundle{}, &ConfigError{Reason: "unknown OvertimeRules identifier: " + opts.OvertimeRules}
	}
	if _, reserved := ot.(ruleset.NCAAOvertime); reserved {
		return rulesetBundle{}, &ConfigError{Reason: "OvertimeRules identifier is reserved and not implemented: " + opts.OvertimeRules}
	}
	tmw, ok := ruleset.LookupTwoMinuteWarning(twoMinName)
	if !ok {
		return rulesetBundle{}, &ConfigError{Reason: "unknown TwoMinuteWarningRules identifier: " + opts.TwoMinuteWarningRules}
	}
	eoh, ok := ruleset.LookupEndOfHalf(endOfHalfName)
	if !ok {
		return rulesetBundle{}, &ConfigError{Reason: "unknown EndOfHalfRules identifier: " + opts.EndOfHalfRules}
	}
	return rulesetBundle{Overtime: ot, TwoMinuteWarning: tmw, EndOfHalf: eoh}, nil
}

// normalizeRulesetName maps spec §6's identifier casing ("NFL",
// "NFL_PLAYOFF", "NCAA") onto the registry's lowercase keys, defaulting
// an empty selector.
func normalizeRulesetName(name, fallback string) string {
	switch name {
	case "":
		return fallback
	case "NFL":
		return "nfl"
	case "NFL_PLAYOFF":
		return "nfl_playoff"
	case "NCAA":
		return "ncaa"
	default:
		return name
	}
}

func generateSeed() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err == nil {
		return binary.LittleEndian.Uint32(b[:])
	}
	return uint32(time.Now().UnixNano())
}

func newGame(home, away *player.Team, seed uint32, logger gamestate.Logger) *gamestate.Game {
	g := &gamestate.Game{
		Home: home,
		Away: away,

		Down:       play.DownNone,
		YardsToGo:  10,
		Possession: play.PossessionNone,

		HomeTimeouts: 3,
		AwayTimeouts: 3,

		Seed: seed,

		Halves: [2]*gamestate.Half{
			gamestate.NewHalf(gamestate.HalfFirst, gamestate.QuarterFirst, gamestate.QuarterSecond),
			gamestate.NewHalf(gamestate.HalfSecond, gamestate.QuarterThird, gamestate.QuarterFourth),
		},

		Logger: logger,
	}
	g.CurrentHalf = g.Halves[0]
	g.CurrentQuarter = g.Halves[0].Quarters[0]
	return g
}

func buildResult(g *gamestate.Game, seed uint32) *GameResult {
	res := &GameResult{
		Home:       g.Home,
		Away:       g.Away,
		HomeScore:  g.HomeScore,
		AwayScore:  g.AwayScore,
		Plays:      g.Plays,
		RandomSeed: seed,
	}
	switch {
	case g.HomeScore > g.AwayScore:
		w := play.PossessionHome
		res.Winner = &w
	case g.AwayScore > g.HomeScore:
		w := play.PossessionAway
		res.Winner = &w
	default:
		res.IsTie = true
	}
	return res
}

// logPlay never lets a logger failure reach the caller (spec §9
// "never let a logger error affect game state"); Game.Log already
// recovers internally.
func logPlay(g *gamestate.Game, p *play.Play) {
	g.Log("Q%d %s %s at %d: %s for %d (clock %.0f)",
		quarterNumber(g.CurrentQuarter), possessionName(g, p.Possession), p.Type, p.StartFieldPosition,
		p.Type, p.YardsGained, g.CurrentQuarter.TimeRemaining)
}

func possessionName(g *gamestate.Game, side play.Possession) string {
	return g.TeamFor(side).FullName()
}

func quarterNumber(q *gamestate.Quarter) int {
	if q == nil {
		return 0
	}
	switch q.Type {
	case gamestate.QuarterFirst:
		return 1
	case gamestate.QuarterSecond:
		return 2
	case gamestate.QuarterThird:
		return 3
	case gamestate.QuarterFourth:
		return 4
	default:
		return 5
	}
}
