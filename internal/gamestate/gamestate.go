// Package gamestate holds Game, Half, Quarter, and OvertimeState: the
// macro clock/quarter/half/overtime state machine data (spec §3) that
// the game-progression loop advances.
package gamestate

import (
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/player"
	"github.com/charleschow/gridiron-sim/internal/stats"
)

// QuarterType enumerates the quarter phases (spec §3).
type QuarterType int

const (
	QuarterFirst QuarterType = iota
	QuarterSecond
	QuarterThird
	QuarterFourth
	QuarterOvertime
	QuarterGameOver
)

// RegulationSeconds and OvertimeSeconds are the default MaxDuration
// values for a Quarter (spec §3).
const (
	RegulationSeconds = 900
	OvertimeSecondsNFL = 600
)

// Quarter tracks one quarter (or overtime period)'s clock.
type Quarter struct {
	Type                 QuarterType
	MaxDuration          int
	TimeRemaining        float64
	TwoMinuteWarningCalled bool
}

// NewQuarter constructs a Quarter with its clock set to MaxDuration.
func NewQuarter(t QuarterType, maxDuration int) *Quarter {
	return &Quarter{Type: t, MaxDuration: maxDuration, TimeRemaining: float64(maxDuration)}
}

// Elapse decrements the clock by seconds, floored at zero.
func (q *Quarter) Elapse(seconds float64) {
	q.TimeRemaining -= seconds
	if q.TimeRemaining < 0 {
		q.TimeRemaining = 0
	}
}

// Expired reports whether the quarter's clock has run out.
func (q *Quarter) Expired() bool {
	return q.TimeRemaining <= 0
}

// HalfType enumerates the two halves plus the terminal GameOver state
// (spec §3).
type HalfType int

const (
	HalfFirst HalfType = iota
	HalfSecond
	HalfGameOver
)

// Half holds its two quarters.
type Half struct {
	Type     HalfType
	Quarters [2]*Quarter
}

// NewHalf builds a regulation half: two 900-second quarters of the given
// QuarterTypes.
func NewHalf(t HalfType, first, second QuarterType) *Half {
	return &Half{
		Quarters: [2]*Quarter{
			NewQuarter(first, RegulationSeconds),
			NewQuarter(second, RegulationSeconds),
		},
		Type: t,
	}
}

// OvertimePossession records one possession's outcome during overtime.
type OvertimePossession struct {
	Period              int
	Team                play.Possession
	StartingFieldPosition int
	Outcome             string // "touchdown", "field_goal", "turnover_on_downs", "punt", "interception", "fumble", "none"
}

// OvertimeState tracks the extra-period state machine (spec §3).
type OvertimeState struct {
	IsInOvertime            bool
	CurrentPeriod           int
	FirstPossessionTeam     play.Possession
	CurrentPossessionTeam   play.Possession
	FirstPossessionComplete bool
	SecondPossessionComplete bool
	IsSuddenDeath           bool
	FirstTeamPeriodScore    int
	SecondTeamPeriodScore   int
	PossessionsInCurrentPeriod int
	Possessions             []OvertimePossession
	HomeTimeoutsRemaining   int
	AwayTimeoutsRemaining   int
}

// Game owns both teams, the completed plays, and all macro state (spec
// §3). It never references a Play's internals beyond what's in the Plays
// slice — the play-result processor is handed Game and Play separately
// so neither side needs a back-reference to the other (spec §9).
type Game struct {
	Home *player.Team
	Away *player.Team

	Plays   []*play.Play
	Current *play.Play

	FieldPosition int
	Down          play.Down
	YardsToGo     int
	Possession    play.Possession

	HomeScore int
	AwayScore int

	HomeTimeouts int
	AwayTimeouts int

	Seed uint32

	CurrentHalf    *Half
	CurrentQuarter *Quarter
	Halves         [2]*Half

	Overtime *OvertimeState

	Logger Logger

	HomeStats stats.TeamStats
	AwayStats stats.TeamStats
}

// TeamStatsFor returns the mutable team-stats bag for the given side.
func (g *Game) TeamStatsFor(side play.Possession) *stats.TeamStats {
	if side == play.PossessionHome {
		return &g.HomeStats
	}
	return &g.AwayStats
}

// Logger is the append-only play-by-play sink (spec §3/§9). Shared by
// Game and every Play as a handle, never a new logger per play; owned by
// the caller, and a write failure must never affect game state.
type Logger interface {
	LogPlay(format string, args ...any)
}

// discardLogger is used when the caller doesn't supply one (spec §6).
type discardLogger struct{}

func (discardLogger) LogPlay(string, ...any) {}

// DiscardLogger is the no-op sink used when Options.Logger is absent.
var DiscardLogger Logger = discardLogger{}

// Log writes to the game's logger, never panicking the simulation if the
// sink itself panics (spec §9 "never let a logger error affect game
// state").
func (g *Game) Log(format string, args ...any) {
	defer func() { _ = recover() }()
	g.Logger.LogPlay(format, args...)
}

// TeamFor returns the Team on the given side of the ball.
func (g *Game) TeamFor(side play.Possession) *player.Team {
	switch side {
	case play.PossessionHome:
		return g.Home
	case play.PossessionAway:
		return g.Away
	default:
		return nil
	}
}

// ScoreFor returns the current score for the given side.
func (g *Game) ScoreFor(side play.Possession) int {
	switch side {
	case play.PossessionHome:
		return g.HomeScore
	case play.PossessionAway:
		return g.AwayScore
	default:
		return 0
	}
}

// TimeoutsFor returns the remaining timeouts for the given side in the
// current half (or, during overtime, the overtime timeout pool).
func (g *Game) TimeoutsFor(side play.Possession) int {
	if g.Overtime != nil && g.Overtime.IsInOvertime {
		if side == play.PossessionHome {
			return g.Overtime.HomeTimeoutsRemaining
		}
		return g.Overtime.AwayTimeoutsRemaining
	}
	if side == play.PossessionHome {
		return g.HomeTimeouts
	}
	return g.AwayTimeouts
}
