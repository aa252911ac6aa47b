package decision

import "github.com/charleschow/gridiron-sim/internal/rng"

// TimeoutCall is the decision TimeoutDecisionEngine returns.
type TimeoutCall int

const (
	TimeoutNone TimeoutCall = iota
	TimeoutStopClock
	TimeoutIceKicker
	TimeoutAvoidDelayOfGame
)

// DecideTimeout is TimeoutDecisionEngine (spec §4.5). Checks are ordered
// IceKicker, StopClock, AvoidDelayOfGame, matching the spec's listed
// precedence; returns None immediately (consuming no RNG) if no timeouts
// remain.
func DecideTimeout(src rng.Source, c TimeoutContext) TimeoutCall {
	if c.TimeoutsRemaining == 0 {
		return TimeoutNone
	}

	if c.UpcomingFieldGoal && c.FieldGoalDistance >= 45 && c.IsKickingTeamView {
		if src.NextDouble() < 0.30 {
			return TimeoutIceKicker
		}
	}

	if (c.DefenseTrailing || c.OffenseTrailing) && c.ClockRunning && c.HalfTimeRemainingSec <= 120 {
		if src.NextDouble() < 0.85 {
			return TimeoutStopClock
		}
	}

	if c.PlayClockSec <= 3 {
		if src.NextDouble() < 0.90 {
			return TimeoutAvoidDelayOfGame
		}
	}

	return TimeoutNone
}
