package engine

import (
	"github.com/charleschow/gridiron-sim/internal/decision"
	"github.com/charleschow/gridiron-sim/internal/gamestate"
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/player"
)

// quarterOrdinal reports the 1-4 (5 for overtime) value the decision
// contexts take for "Quarter", since gamestate.QuarterType isn't itself
// that numbering.
func quarterOrdinal(g *gamestate.Game) int {
	if g.Overtime != nil && g.Overtime.IsInOvertime {
		return 5
	}
	return quarterNumber(g.CurrentQuarter)
}

func playCallContext(g *gamestate.Game) decision.PlayCallContext {
	offenseScore := g.ScoreFor(g.Possession)
	defenseScore := g.ScoreFor(g.Possession.Opponent())
	return decision.PlayCallContext{
		Quarter:           quarterOrdinal(g),
		Down:              g.Down,
		Leading:           offenseScore > defenseScore,
		Trailing:          offenseScore < defenseScore,
		TimeRemainingSec:  g.CurrentQuarter.TimeRemaining,
		TimeoutsRemaining: g.TimeoutsFor(g.Possession),
		ClockRunning:      true,
	}
}

func fourthDownContext(g *gamestate.Game) decision.FourthDownContext {
	return decision.FourthDownContext{
		FieldPosition:    g.FieldPosition,
		YardsToGo:        g.YardsToGo,
		ScoreDiff:        g.ScoreFor(g.Possession) - g.ScoreFor(g.Possession.Opponent()),
		TimeRemainingSec: g.CurrentQuarter.TimeRemaining,
		IsHome:           g.Possession == play.PossessionHome,
	}
}

// fieldGoalAttemptDistance mirrors decision.fieldGoalAttemptDistance
// (unexported there): spot plus the 17 yards behind the line of
// scrimmage to the goalposts.
func fieldGoalAttemptDistance(fieldPosition int) int {
	return (100 - fieldPosition) + 17
}

func kickerRangeYards(t *player.Team) int {
	k := t.Find(player.K)
	if k == nil {
		return 45
	}
	return 45 + k.Ratings.Kicking/3
}

func onsideKickContext(g *gamestate.Game, kickingSide play.Possession) decision.OnsideKickContext {
	return decision.OnsideKickContext{
		ScoreDiff:        g.ScoreFor(kickingSide) - g.ScoreFor(kickingSide.Opponent()),
		Quarter:          quarterOrdinal(g),
		TimeRemainingSec: g.CurrentQuarter.TimeRemaining,
	}
}

func timeoutContext(g *gamestate.Game, side play.Possession, upcomingFieldGoal bool, fgDistance int, kickingTeamView bool) decision.TimeoutContext {
	offenseSide := g.Possession
	return decision.TimeoutContext{
		TimeoutsRemaining:    g.TimeoutsFor(side),
		ClockRunning:         true,
		HalfTimeRemainingSec: halfTimeRemaining(g),
		OffenseTrailing:      offenseSide == side && g.ScoreFor(offenseSide) < g.ScoreFor(offenseSide.Opponent()),
		DefenseTrailing:      offenseSide != side && g.ScoreFor(side) < g.ScoreFor(side.Opponent()),
		UpcomingFieldGoal:    upcomingFieldGoal,
		FieldGoalDistance:    fgDistance,
		IsKickingTeamView:    kickingTeamView,
		PlayClockSec:         40,
	}
}

// halfTimeRemaining sums the current quarter's clock with the other
// quarter of the same half, so a timeout context sees the full half
// (not just the active quarter).
func halfTimeRemaining(g *gamestate.Game) float64 {
	if g.CurrentHalf == nil || g.CurrentQuarter == nil {
		return 0
	}
	total := g.CurrentQuarter.TimeRemaining
	for _, q := range g.CurrentHalf.Quarters {
		if q != g.CurrentQuarter {
			total += q.TimeRemaining
		}
	}
	return total
}
