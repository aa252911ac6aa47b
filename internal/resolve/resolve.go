// Package resolve implements the play-result processor (spec §4.7): it
// takes a finished play.Play and the gamestate.Game it was run against as
// two separate arguments (never a method on either, breaking the
// Play<->Game cycle spec §9 flags) and folds the outcome into the game's
// score, field position, down/distance, possession, and stats.
package resolve

import (
	"github.com/charleschow/gridiron-sim/internal/decision"
	"github.com/charleschow/gridiron-sim/internal/gamestate"
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/player"
	"github.com/charleschow/gridiron-sim/internal/stats"
)

// Outcome summarizes what a processed play did to the game, for the
// engine's post-play step (two-point/extra-point prompt, logging,
// end-of-drive bookkeeping) without it having to re-inspect Play.
type Outcome struct {
	TouchdownScored  bool
	SafetyScored     bool
	ScoringSide      play.Possession
	TurnoverOnDowns  bool
	FirstDownGained  bool
	PossessionEnded  bool
}

// Apply enforces any penalties on p, settles field position/down/distance
// or scoring, updates Game's score and possession, appends p to
// Game.Plays, and folds the play into both teams' stats. It is the only
// place spec §4.7 allows game state to change outside Pre-play/Post-play
// bookkeeping in the engine.
func Apply(g *gamestate.Game, p *play.Play) Outcome {
	enforcePenalties(g, p)

	g.Plays = append(g.Plays, p)
	g.Current = p

	recordStats(g, p)

	out := Outcome{}

	switch {
	case p.IsSafety:
		out.SafetyScored = true
		out.ScoringSide = p.Possession.Opponent()
		awardScore(g, out.ScoringSide, 2)
		g.Possession = out.ScoringSide
		out.PossessionEnded = true
		return out

	case p.IsTouchdown:
		out.TouchdownScored = true
		out.ScoringSide = p.Possession
		awardScore(g, out.ScoringSide, 6)
		out.PossessionEnded = true
		return out

	case p.Type == play.TypeFieldGoal:
		if p.Kick != nil && p.Kick.Good {
			awardScore(g, p.Possession, 3)
		}
		g.Possession = p.Possession.Opponent()
		g.FieldPosition = 100 - p.EndFieldPosition
		g.Down = play.First
		g.YardsToGo = 10
		out.PossessionEnded = true
		return out
	}

	if p.PossessionChange {
		out.PossessionEnded = true
		g.Possession = p.Possession.Opponent()
		g.FieldPosition = 100 - p.EndFieldPosition
		g.Down = play.First
		g.YardsToGo = 10
		return out
	}

	g.FieldPosition = p.EndFieldPosition
	remaining := p.YardsToGo - p.YardsGained
	if remaining <= 0 {
		out.FirstDownGained = true
		g.Down = play.First
		g.YardsToGo = 10
		if g.FieldPosition > 90 {
			g.YardsToGo = 100 - g.FieldPosition
		}
		return out
	}

	g.YardsToGo = remaining
	next := p.Down.Next()
	if next == play.DownNone {
		out.TurnoverOnDowns = true
		out.PossessionEnded = true
		g.Possession = p.Possession.Opponent()
		g.FieldPosition = 100 - g.FieldPosition
		g.Down = play.First
		g.YardsToGo = 10
		return out
	}
	g.Down = next
	return out
}

func awardScore(g *gamestate.Game, side play.Possession, points int) {
	if side == play.PossessionHome {
		g.HomeScore += points
	} else {
		g.AwayScore += points
	}
}

// recordStats folds a finished play into both teams' per-player and
// per-team statistics (spec §3 "Stats accumulator").
func recordStats(g *gamestate.Game, p *play.Play) {
	offenseStats := g.TeamStatsFor(p.Possession)
	if p.Type == play.TypeRun || p.Type == play.TypePass {
		stats.RecordTeamYards(offenseStats, p.YardsGained, p.Type == play.TypePass)
	}
	if p.PossessionChange && (p.Type == play.TypeRun || p.Type == play.TypePass) {
		stats.RecordTurnover(offenseStats)
	}
	if (p.Type == play.TypeRun || p.Type == play.TypePass) && (p.Down == play.Third || p.Down == play.Fourth) {
		stats.RecordDownAttempt(offenseStats, int(p.Down), p.YardsGained >= p.YardsToGo)
	}

	switch p.Type {
	case play.TypeRun:
		if p.Run != nil && p.Run.Carrier != nil && !p.Run.IsKneel {
			stats.RecordRush(&p.Run.Carrier.Stats, p.YardsGained, p.IsTouchdown, fumbleLostBy(p, p.Run.Carrier))
		}
	case play.TypePass:
		if p.Pass != nil && p.Pass.Passer != nil && !p.Pass.IsSpike && !p.Pass.Sacked {
			stats.RecordPassAttempt(&p.Pass.Passer.Stats, p.Pass.Completion == play.Complete, p.YardsGained, p.IsTouchdown, p.Pass.Completion == play.Intercepted)
		}
		if p.Pass != nil && p.Pass.Target != nil && !p.Pass.IsSpike && !p.Pass.Sacked {
			stats.RecordReception(&p.Pass.Target.Stats, p.Pass.Completion == play.Complete, p.YardsGained, p.IsTouchdown)
		}
		if p.Pass != nil && p.Pass.Intercepts != nil {
			stats.RecordInterception(&p.Pass.Intercepts.Stats)
		}
	case play.TypeFieldGoal:
		if p.Kick != nil && p.Kick.Kicker != nil {
			stats.RecordFieldGoal(&p.Kick.Kicker.Stats, p.Kick.Good)
		}
	case play.TypePunt:
		if p.Kick != nil && p.Kick.Punter != nil {
			stats.RecordPunt(&p.Kick.Punter.Stats, p.Kick.Distance)
		}
		if p.Kick != nil && p.Kick.Return != nil {
			stats.RecordPuntReturn(&p.Kick.Return.Returner.Stats, p.Kick.Return.Yards)
		}
	case play.TypeKickoff:
		if p.Kick != nil && p.Kick.Return != nil {
			stats.RecordKickReturn(&p.Kick.Return.Returner.Stats, p.Kick.Return.Yards)
		}
	}

	for _, f := range p.Fumbles {
		if f.RecoveredBy != nil {
			stats.RecordFumbleRecovery(&f.RecoveredBy.Stats)
		}
	}
}

func fumbleLostBy(p *play.Play, carrier *player.Player) bool {
	for _, f := range p.Fumbles {
		if f.LostBy == carrier && f.RecoveringSide != p.Possession {
			return true
		}
	}
	return false
}

// enforcePenalties runs PenaltyDecisionEngine over every penalty attached
// to p and marks each Accepted. The fixed enumeration of automatic-first-
// down penalties always accepts (play.AutomaticFirstDownPenalties); spot
// adjustment from an accepted penalty is folded directly into
// p.YardsGained/EndFieldPosition before Apply settles down/distance. An
// accepted automatic-first-down or offensive penalty replaces the
// underlying play's result; any other accepted defensive penalty adds
// its yards to that result.
func enforcePenalties(g *gamestate.Game, p *play.Play) {
	for i := range p.Penalties {
		pen := &p.Penalties[i]
		ctx := decision.PenaltyDecisionContext{
			Penalty:             *pen,
			OffensePossession:   p.Possession,
			PlayYardsGained:     p.YardsGained,
			PlayScored:          p.IsTouchdown,
			PlayGainedFirstDown: p.YardsGained >= p.YardsToGo,
			DeclineYieldsTurnoverOnDowns: p.Down == play.Fourth && p.YardsGained < p.YardsToGo,
		}
		accepted := decision.DecidePenalty(ctx)
		pen.Accepted = &accepted
		if !accepted {
			continue
		}

		stats.RecordPenalty(g.TeamStatsFor(pen.CalledOn), pen.Yards)

		if play.AutomaticFirstDownPenalties[pen.Name] {
			p.YardsGained = p.YardsToGo
			p.IsTouchdown = false
			p.PossessionChange = false
			p.EndFieldPosition = p.StartFieldPosition + p.YardsToGo
			settlePenaltyBoundary(p)
			continue
		}

		if pen.CalledOn == p.Possession {
			p.YardsGained = -pen.Yards
			p.IsTouchdown = false
			p.PossessionChange = false
			p.EndFieldPosition = p.StartFieldPosition - pen.Yards
			settlePenaltyBoundary(p)
		} else {
			p.YardsGained += pen.Yards
			p.EndFieldPosition = p.EndFieldPosition + pen.Yards
			settlePenaltyBoundary(p)
		}
	}
}

// settlePenaltyBoundary applies spec §4.7's "penalty pushes the ball across
// a goal line" boundary rule: a raw enforced spot at or past the defense's
// goal line (100) is a touchdown for the offense; at or behind the
// offense's own goal line (0) is a safety. Either case supersedes whatever
// the underlying play had decided, then the spot is clamped into [0,100]
// for display/down-distance purposes.
func settlePenaltyBoundary(p *play.Play) {
	switch {
	case p.EndFieldPosition >= 100:
		p.IsTouchdown = true
		p.IsSafety = false
	case p.EndFieldPosition <= 0:
		p.IsSafety = true
		p.IsTouchdown = false
	}
	p.EndFieldPosition = clampSpot(p.EndFieldPosition)
}

func clampSpot(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

