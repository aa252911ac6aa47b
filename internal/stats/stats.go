// Package stats defines the per-player and per-team statistics bags and
// the accumulator functions that update them from a finished play (spec
// §3 "mutable statistics bag", component table "Stats accumulator" row).
//
// Grounded on the exhaustive named-column style of
// internal/core/training/hockey_store.go's HockeyRow, without adopting
// its persistence: these structs are in-memory counters only.
package stats

// PlayerStats is the box-score line for a single player, supplemented
// beyond spec §3 (which only says "a mutable statistics bag") with a
// concrete field set a complete implementation would track.
type PlayerStats struct {
	// Passing
	PassAttempts   int
	PassCompletions int
	PassYards      int
	PassTouchdowns int
	Interceptions  int // thrown

	// Rushing
	RushAttempts   int
	RushYards      int
	RushTouchdowns int
	FumblesLost    int

	// Receiving
	Targets          int
	Receptions       int
	ReceivingYards   int
	ReceivingTDs     int

	// Defense
	Tackles           int
	Sacks             float64
	ForcedFumbles     int
	FumbleRecoveries  int
	InterceptionsMade int
	PassesDefended    int

	// Special teams
	FieldGoalAttempts int
	FieldGoalsMade    int
	ExtraPointsMade   int
	Punts             int
	PuntYards         int
	KickReturnYards   int
	PuntReturnYards   int
}

// TeamStats is the team-level counterpart, derived from the same plays.
type TeamStats struct {
	TotalYards     int
	PassingYards   int
	RushingYards   int
	Turnovers      int
	Penalties      int
	PenaltyYards   int
	ThirdDownTries int
	ThirdDownConversions int
	FourthDownTries int
	FourthDownConversions int
	TimeOfPossessionSec float64
}

// RecordPassAttempt updates passer stats for a dropback that was not a
// sack (completion or incompletion).
func RecordPassAttempt(ps *PlayerStats, completed bool, yards int, touchdown bool, intercepted bool) {
	ps.PassAttempts++
	if intercepted {
		ps.Interceptions++
		return
	}
	if !completed {
		return
	}
	ps.PassCompletions++
	ps.PassYards += yards
	if touchdown {
		ps.PassTouchdowns++
	}
}

// RecordReception updates receiver stats for a targeted pass.
func RecordReception(ps *PlayerStats, caught bool, yards int, touchdown bool) {
	ps.Targets++
	if !caught {
		return
	}
	ps.Receptions++
	ps.ReceivingYards += yards
	if touchdown {
		ps.ReceivingTDs++
	}
}

// RecordRush updates a ball carrier's stats for a run play.
func RecordRush(ps *PlayerStats, yards int, touchdown bool, fumbleLost bool) {
	ps.RushAttempts++
	ps.RushYards += yards
	if touchdown {
		ps.RushTouchdowns++
	}
	if fumbleLost {
		ps.FumblesLost++
	}
}

// RecordSack credits a sacking defender.
func RecordSack(ps *PlayerStats, forcedFumble bool) {
	ps.Sacks += 1
	if forcedFumble {
		ps.ForcedFumbles++
	}
}

// RecordTackle credits a tackler.
func RecordTackle(ps *PlayerStats) {
	ps.Tackles++
}

// RecordInterception credits a defender who intercepted a pass.
func RecordInterception(ps *PlayerStats) {
	ps.InterceptionsMade++
}

// RecordFumbleRecovery credits whichever player recovered a fumble.
func RecordFumbleRecovery(ps *PlayerStats) {
	ps.FumbleRecoveries++
}

// RecordFieldGoal updates a kicker's field-goal stats.
func RecordFieldGoal(ps *PlayerStats, made bool) {
	ps.FieldGoalAttempts++
	if made {
		ps.FieldGoalsMade++
	}
}

// RecordExtraPoint updates a kicker's extra-point stats.
func RecordExtraPoint(ps *PlayerStats, made bool) {
	if made {
		ps.ExtraPointsMade++
	}
}

// RecordPunt updates a punter's stats.
func RecordPunt(ps *PlayerStats, netYards int) {
	ps.Punts++
	ps.PuntYards += netYards
}

// RecordKickReturn updates a returner's kickoff-return yardage.
func RecordKickReturn(ps *PlayerStats, yards int) {
	ps.KickReturnYards += yards
}

// RecordPuntReturn updates a returner's punt-return yardage.
func RecordPuntReturn(ps *PlayerStats, yards int) {
	ps.PuntReturnYards += yards
}

// RecordTeamYards folds a play's net yardage into team totals.
func RecordTeamYards(ts *TeamStats, yards int, wasPass bool) {
	ts.TotalYards += yards
	if wasPass {
		ts.PassingYards += yards
	} else {
		ts.RushingYards += yards
	}
}

// RecordTurnover increments the team turnover counter.
func RecordTurnover(ts *TeamStats) {
	ts.Turnovers++
}

// RecordPenalty folds an accepted penalty into team totals.
func RecordPenalty(ts *TeamStats, yards int) {
	ts.Penalties++
	ts.PenaltyYards += yards
}

// RecordDownAttempt updates third/fourth-down conversion tracking.
func RecordDownAttempt(ts *TeamStats, down int, converted bool) {
	switch down {
	case 3:
		ts.ThirdDownTries++
		if converted {
			ts.ThirdDownConversions++
		}
	case 4:
		ts.FourthDownTries++
		if converted {
			ts.FourthDownConversions++
		}
	}
}
