// Package decision implements the situational policy engines (spec
// §4.5): pure functions of (context, RNG) -> tagged decision. Mechanics
// are kept strictly separate from decisions (spec §9 design note) so a
// play can be replayed with the same decision but a different mechanic
// for test isolation.
package decision

import "github.com/charleschow/gridiron-sim/internal/play"

// PlayCallContext carries every input PlayCallDecisionEngine consumes.
type PlayCallContext struct {
	Quarter            int // 1-4, 5+ for overtime
	Down               play.Down
	Leading            bool
	Trailing           bool
	TimeRemainingSec   float64
	TimeoutsRemaining  int
	ClockRunning       bool
	IsTwoPointAttempt  bool
}

// DownsRemaining returns how many downs (including the current one) the
// offense has left in this series.
func (c PlayCallContext) DownsRemaining() int {
	switch c.Down {
	case play.First:
		return 4
	case play.Second:
		return 3
	case play.Third:
		return 2
	case play.Fourth:
		return 1
	default:
		return 0
	}
}

// FourthDownContext carries every input FourthDownDecisionEngine
// consumes, plus the derived booleans the spec names (is_red_zone,
// is_short_yardage, is_trailing, is_late_game, is_fourth_quarter).
type FourthDownContext struct {
	FieldPosition    int // 0-100, own end zone to opponent's
	YardsToGo        int
	ScoreDiff        int // offense score minus defense score
	TimeRemainingSec float64
	IsHome           bool
}

func (c FourthDownContext) YardsToGoal() int { return 100 - c.FieldPosition }
func (c FourthDownContext) IsRedZone() bool  { return c.YardsToGoal() <= 20 }
func (c FourthDownContext) IsOpponentTerritory() bool { return c.FieldPosition > 50 }
func (c FourthDownContext) IsDeepOwnTerritory() bool  { return c.FieldPosition < 20 }
func (c FourthDownContext) IsShortYardage() bool      { return c.YardsToGo <= 2 }
func (c FourthDownContext) IsTrailing() bool          { return c.ScoreDiff < 0 }
func (c FourthDownContext) IsLeading() bool           { return c.ScoreDiff > 0 }
func (c FourthDownContext) IsLateGame() bool          { return c.TimeRemainingSec <= 300 }
func (c FourthDownContext) IsFourthQuarter() bool     { return c.TimeRemainingSec <= 900 }

// TimeoutContext carries every input TimeoutDecisionEngine consumes.
type TimeoutContext struct {
	TimeoutsRemaining    int
	ClockRunning         bool
	HalfTimeRemainingSec float64
	OffenseTrailing      bool
	DefenseTrailing      bool
	UpcomingFieldGoal    bool
	FieldGoalDistance    int
	IsKickingTeamView    bool // true when evaluating from the defense's (kicking/return) side
	PlayClockSec         int
}

// OnsideKickContext carries every input OnsideKickDecisionEngine
// consumes.
type OnsideKickContext struct {
	ScoreDiff        int // kicking team score minus receiving team score
	Quarter          int
	TimeRemainingSec float64
}

func (c OnsideKickContext) IsTrailingByOneScore() bool {
	return c.ScoreDiff <= -7
}

// FairCatchContext carries every input FairCatchDecisionEngine consumes.
type FairCatchContext struct {
	HangTime      float64
	FieldPosition int // receiving team's own-territory numbering, 0 = own goal line
	IsKickoff     bool
}

// PenaltyDecisionContext carries every input PenaltyDecisionEngine
// consumes: the penalty itself plus the yardage/down outcome of both the
// "accept" and "decline" universes (spec §4.5/§4.7).
type PenaltyDecisionContext struct {
	Penalty play.Penalty

	// OffensePossession is the side that had the ball on the play the
	// penalty is attached to. Penalty.CalledOn == OffensePossession
	// means it's an offensive penalty (defense decides); otherwise it's
	// a defensive penalty (offense decides).
	OffensePossession play.Possession

	// PlayYardsGained is the play's actual result, for comparison
	// against the penalty's yardage.
	PlayYardsGained int
	PlayScored      bool
	PlayGainedFirstDown bool

	// DeclineYieldsTurnoverOnDowns is true when, if the defense declines
	// an offensive penalty, the down/distance result of the underlying
	// play is a turnover on downs.
	DeclineYieldsTurnoverOnDowns bool
}
