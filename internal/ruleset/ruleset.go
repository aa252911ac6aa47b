// Package ruleset implements the pluggable rules policies the engine
// consults at quarter/half boundaries and in overtime (spec §4.8):
// Overtime, TwoMinuteWarning, and EndOfHalf, each behind a small
// interface so a ruleset can be swapped per Options without touching the
// engine's game-progression loop.
package ruleset

import (
	"fmt"

	"github.com/charleschow/gridiron-sim/internal/gamestate"
	"github.com/charleschow/gridiron-sim/internal/play"
)

// TwoMinuteWarning decides whether the warning fires for a half. The
// engine records a firing on the quarter's TwoMinuteWarningCalled latch;
// the game clock itself is not changed.
type TwoMinuteWarning interface {
	// Applies reports whether the warning should fire given the half's
	// current quarter and remaining time.
	Applies(q *gamestate.Quarter) bool
}

// EndOfHalf settles per-half state when a half's clock expires.
type EndOfHalf interface {
	// Expire resets Game's per-half state (timeouts) for the upcoming
	// half, or marks the game over after the second half.
	Expire(g *gamestate.Game)
}

// Overtime drives the extra-period state machine once regulation ends in
// a tie.
type Overtime interface {
	// Start initializes g.Overtime for the first period.
	Start(g *gamestate.Game, coinTossWinner play.Possession)
	// Continues reports whether overtime play goes on in the current
	// period: the score is level, the period's clock has not expired,
	// and (outside sudden death) the first team has not taken the lead
	// on its opening possession.
	Continues(g *gamestate.Game) bool
	// AllowsTies reports whether the game may end in a tie once this
	// ruleset's overtime allotment runs out (spec §4.8: professional
	// regular season allows ties, playoff does not).
	AllowsTies() bool
	// NextPeriod rolls g.Overtime into a fresh period after the current
	// one expires still tied, for rulesets with AllowsTies() == false
	// (spec §4.8 "unlimited 15-minute periods"). Regular-season NFL
	// never calls this (it allows ties, so the engine ends a level game
	// after its single period), so its implementation is unreachable in
	// practice.
	NextPeriod(g *gamestate.Game)
	// ShouldGameEnd folds spec §4.8's ShouldGameEnd and
	// GetNextPossessionAction into one call the engine makes the instant
	// a drive ends during overtime, scored or not. It updates
	// OvertimeState's possession bookkeeping (FirstPossessionComplete,
	// SecondPossessionComplete, the two PeriodScore fields,
	// PossessionsInCurrentPeriod, IsSuddenDeath, CurrentPossessionTeam,
	// Possessions) and reports whether the game is over right now: a
	// defensive score always ends it; a first-possession touchdown wins
	// outright; a first-possession field goal only earns the other side
	// a matching possession; once both sides have had theirs, or once
	// IsSuddenDeath is set, any score ends it. scoringSide is
	// play.PossessionNone when the drive ended without a score.
	ShouldGameEnd(g *gamestate.Game, scoringSide play.Possession, touchdown, fieldGoal, safety bool) bool
}

// NFLTwoMinuteWarning fires once per half, once 120 seconds or fewer
// remain in the second quarter of that half.
type NFLTwoMinuteWarning struct{}

func (NFLTwoMinuteWarning) Applies(q *gamestate.Quarter) bool {
	if q.TwoMinuteWarningCalled {
		return false
	}
	if q.Type != gamestate.QuarterSecond && q.Type != gamestate.QuarterFourth {
		return false
	}
	return q.TimeRemaining <= 120
}

// NCAATwoMinuteWarning never fires: NCAA football has no two-minute
// warning stoppage.
type NCAATwoMinuteWarning struct{}

func (NCAATwoMinuteWarning) Applies(*gamestate.Quarter) bool { return false }

// RegulationEndOfHalf resets timeouts to three per side at the half and
// marks the game over once the second half's clock expires.
type RegulationEndOfHalf struct{}

func (RegulationEndOfHalf) Expire(g *gamestate.Game) {
	if g.CurrentHalf != nil && g.CurrentHalf.Type == gamestate.HalfFirst {
		g.HomeTimeouts = 3
		g.AwayTimeouts = 3
		return
	}
	if g.CurrentHalf != nil {
		g.CurrentHalf.Type = gamestate.HalfGameOver
	}
}

// NFLOvertime implements the modified-sudden-death rule: both teams get
// a possession unless the first scores a touchdown; sudden death
// thereafter within a single 10-minute period (regular season: one
// period, a tie stands).
type NFLOvertime struct{}

func (NFLOvertime) Start(g *gamestate.Game, coinTossWinner play.Possession) {
	g.Overtime = &gamestate.OvertimeState{
		IsInOvertime:          true,
		CurrentPeriod:         1,
		FirstPossessionTeam:   coinTossWinner,
		CurrentPossessionTeam: coinTossWinner,
		HomeTimeoutsRemaining: 2,
		AwayTimeoutsRemaining: 2,
	}
	g.CurrentQuarter = gamestate.NewQuarter(gamestate.QuarterOvertime, gamestate.OvertimeSecondsNFL)
	g.Possession = coinTossWinner
	g.FieldPosition = 25
	g.Down = play.First
	g.YardsToGo = 10
}

func (NFLOvertime) Continues(g *gamestate.Game) bool {
	ot := g.Overtime
	if ot == nil {
		return false
	}
	if ot.FirstTeamPeriodScore > ot.SecondTeamPeriodScore && ot.FirstPossessionComplete {
		// The first team leads on period scoring after its opening
		// possession (a touchdown, or a field goal not yet matched).
		return false
	}
	if g.HomeScore != g.AwayScore {
		return false
	}
	return g.CurrentQuarter != nil && !g.CurrentQuarter.Expired()
}

// AllowsTies is true for the regular-season ruleset: a single 10-minute
// period that ends level stands as a tie (spec §4.8).
func (NFLOvertime) AllowsTies() bool { return true }

// NextPeriod is unreachable for regular-season overtime — one period is
// the entire allotment, so the engine ends the game as a tie before ever
// calling this.
func (NFLOvertime) NextPeriod(g *gamestate.Game) {
	panic("ruleset: NFLOvertime has no second period")
}

func (NFLOvertime) ShouldGameEnd(g *gamestate.Game, scoringSide play.Possession, touchdown, fieldGoal, safety bool) bool {
	ot := g.Overtime
	driveTeam := ot.CurrentPossessionTeam
	scored := touchdown || fieldGoal || safety

	if scored && scoringSide != driveTeam {
		// A score credited to the side that didn't have the ball — a
		// safety, or a defensive return off a block or turnover — always
		// ends the game outright, first possession or not.
		recordOvertimePossession(ot, driveTeam, g.FieldPosition, outcomeLabel(touchdown, fieldGoal, safety))
		return true
	}

	if ot.IsSuddenDeath {
		recordOvertimePossession(ot, driveTeam, g.FieldPosition, outcomeLabel(touchdown, fieldGoal, safety))
		ot.CurrentPossessionTeam = driveTeam.Opponent()
		return scored
	}

	if !ot.FirstPossessionComplete {
		ot.FirstPossessionComplete = true
		ot.PossessionsInCurrentPeriod++
		recordOvertimePossession(ot, driveTeam, g.FieldPosition, outcomeLabel(touchdown, fieldGoal, safety))
		if touchdown {
			ot.FirstTeamPeriodScore = 6
			return true
		}
		if fieldGoal {
			ot.FirstTeamPeriodScore = 3
		}
		ot.CurrentPossessionTeam = driveTeam.Opponent()
		return false
	}

	ot.SecondPossessionComplete = true
	ot.PossessionsInCurrentPeriod++
	recordOvertimePossession(ot, driveTeam, g.FieldPosition, outcomeLabel(touchdown, fieldGoal, safety))
	if touchdown {
		ot.SecondTeamPeriodScore = 6
		return true
	}
	if fieldGoal {
		ot.SecondTeamPeriodScore = 3
	}
	ot.CurrentPossessionTeam = driveTeam.Opponent()
	if g.HomeScore != g.AwayScore {
		return true
	}
	ot.IsSuddenDeath = true
	return false
}

func recordOvertimePossession(ot *gamestate.OvertimeState, team play.Possession, startingFieldPosition int, outcome string) {
	ot.Possessions = append(ot.Possessions, gamestate.OvertimePossession{
		Period:                ot.CurrentPeriod,
		Team:                  team,
		StartingFieldPosition: startingFieldPosition,
		Outcome:               outcome,
	})
}

func outcomeLabel(touchdown, fieldGoal, safety bool) string {
	switch {
	case touchdown:
		return "touchdown"
	case fieldGoal:
		return "field_goal"
	case safety:
		return "safety"
	default:
		return "none"
	}
}

// NFLPlayoffOvertime implements the postseason variant (spec §4.8):
// unlimited 15-minute periods, no ties allowed. The first period follows
// the same modified-sudden-death rule as the regular season (both teams
// get a possession unless the first scores a touchdown); any period
// after the first is straight sudden death, since the two-possession
// guarantee has already been honored once.
type NFLPlayoffOvertime struct{}

func (NFLPlayoffOvertime) Start(g *gamestate.Game, coinTossWinner play.Possession) {
	NFLOvertime{}.Start(g, coinTossWinner)
	g.CurrentQuarter.MaxDuration = PlayoffOvertimeSeconds
	g.CurrentQuarter.TimeRemaining = PlayoffOvertimeSeconds
}

func (NFLPlayoffOvertime) Continues(g *gamestate.Game) bool {
	ot := g.Overtime
	if ot == nil {
		return false
	}
	if ot.IsSuddenDeath {
		return g.HomeScore == g.AwayScore && g.CurrentQuarter != nil && !g.CurrentQuarter.Expired()
	}
	return NFLOvertime{}.Continues(g)
}

func (NFLPlayoffOvertime) AllowsTies() bool { return false }

// NextPeriod advances to a fresh period in pure sudden death: any score
// at all ends the game from here on, per spec §4.8's "same modified
// sudden death rules" applied after the first period's guarantee is
// spent.
func (NFLPlayoffOvertime) NextPeriod(g *gamestate.Game) {
	g.Overtime.CurrentPeriod++
	g.Overtime.IsSuddenDeath = true
	g.Overtime.FirstPossessionComplete = false
	g.Overtime.SecondPossessionComplete = false
	g.Overtime.FirstTeamPeriodScore = 0
	g.Overtime.SecondTeamPeriodScore = 0
	g.CurrentQuarter = gamestate.NewQuarter(gamestate.QuarterOvertime, PlayoffOvertimeSeconds)

	coinTossWinner := g.Overtime.CurrentPossessionTeam.Opponent()
	g.Overtime.CurrentPossessionTeam = coinTossWinner
	g.Possession = coinTossWinner
	g.FieldPosition = 25
	g.Down = play.First
	g.YardsToGo = 10
}

// ShouldGameEnd delegates to NFLOvertime: the difference between the two
// rulesets is entirely in what happens when a period's clock expires
// still tied (NextPeriod vs. a standing tie), not in how a score during a
// period is judged.
func (NFLPlayoffOvertime) ShouldGameEnd(g *gamestate.Game, scoringSide play.Possession, touchdown, fieldGoal, safety bool) bool {
	return NFLOvertime{}.ShouldGameEnd(g, scoringSide, touchdown, fieldGoal, safety)
}

// PlayoffOvertimeSeconds is the 15-minute playoff overtime period length
// (spec §4.8), versus the regular season's 10-minute OvertimeSecondsNFL.
const PlayoffOvertimeSeconds = 900

// NCAAOvertime is reserved but unimplemented: NCAA's alternating-
// possession-from-the-25 format has different down/clock semantics
// (no game clock runs during an NCAA overtime possession) that the
// engine's Quarter/Clock model doesn't represent. Selecting it as
// Options.OvertimeRules is a configuration error, not a silent fallback
// to the NFL rule: SimulateGame rejects it at entry instead of producing
// a game that silently plays under the wrong rules.
type NCAAOvertime struct{}

func (NCAAOvertime) Start(*gamestate.Game, play.Possession) {
	panic(ErrUnimplementedRuleset)
}

func (NCAAOvertime) Continues(*gamestate.Game) bool {
	panic(ErrUnimplementedRuleset)
}

func (NCAAOvertime) AllowsTies() bool { panic(ErrUnimplementedRuleset) }

func (NCAAOvertime) NextPeriod(*gamestate.Game) { panic(ErrUnimplementedRuleset) }

func (NCAAOvertime) ShouldGameEnd(*gamestate.Game, play.Possession, bool, bool, bool) bool {
	panic(ErrUnimplementedRuleset)
}

// ErrUnimplementedRuleset is the panic value every NCAAOvertime method
// raises. SimulateGame does not reach it: it returns a configuration
// error for an "ncaa" OvertimeRules selection before any play is run.
var ErrUnimplementedRuleset = fmt.Errorf("ruleset: NCAA overtime is registered but not implemented")

// Set bundles the three policies a ruleset needs to supply.
type Set struct {
	TwoMinuteWarning TwoMinuteWarning
	EndOfHalf        EndOfHalf
	Overtime         Overtime
}

// registry is the compile-time map of named rulesets (spec §4.8:
// "registered by name at compile time, not dynamically loaded").
var registry = map[string]Set{
	"nfl": {
		TwoMinuteWarning: NFLTwoMinuteWarning{},
		EndOfHalf:        RegulationEndOfHalf{},
		Overtime:         NFLOvertime{},
	},
	"ncaa": {
		TwoMinuteWarning: NCAATwoMinuteWarning{},
		EndOfHalf:        RegulationEndOfHalf{},
		Overtime:         NCAAOvertime{},
	},
	"nfl_playoff": {
		TwoMinuteWarning: NFLTwoMinuteWarning{},
		EndOfHalf:        RegulationEndOfHalf{},
		Overtime:         NFLPlayoffOvertime{},
	},
}

// Lookup returns the named ruleset bundle, or false if name isn't
// registered.
func Lookup(name string) (Set, bool) {
	s, ok := registry[name]
	return s, ok
}

// LookupOvertime, LookupTwoMinuteWarning, and LookupEndOfHalf let a
// caller (internal/config.Options) choose each policy independently
// rather than only as a bundle.
func LookupOvertime(name string) (Overtime, bool) {
	s, ok := registry[name]
	if !ok {
		return nil, false
	}
	return s.Overtime, true
}

func LookupTwoMinuteWarning(name string) (TwoMinuteWarning, bool) {
	s, ok := registry[name]
	if !ok {
		return nil, false
	}
	return s.TwoMinuteWarning, true
}

func LookupEndOfHalf(name string) (EndOfHalf, bool) {
	s, ok := registry[name]
	if !ok {
		return nil, false
	}
	return s.EndOfHalf, true
}
