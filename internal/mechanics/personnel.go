// Package mechanics implements one orchestrator per play type (spec
// §4.6): each runs its skill checks in a fixed order, writes outcomes
// into a play.Play, and accumulates elapsed time.
package mechanics

import (
	"github.com/charleschow/gridiron-sim/internal/gamestate"
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/player"
)

// defaultRating is the fallback used by the team-power averages below
// when a roster has no player at the averaged positions, and is every
// rating of the shared placeholder Player. Any single named player slot
// (carrier, passer, kicker, ...) that a roster lacks falls back to that
// placeholder instead of aborting, since spec §7 only requires a
// QB at configuration time — a thin roster otherwise is a playability
// choice, not a bug.
const defaultRating = 50

var placeholder = &player.Player{
	Ratings: player.Ratings{
		Speed: defaultRating, Strength: defaultRating, Agility: defaultRating,
		Awareness: defaultRating, Catching: defaultRating, Passing: defaultRating,
		Rushing: defaultRating, Blocking: defaultRating, Tackling: defaultRating,
		Coverage: defaultRating, Kicking: defaultRating,
	},
}

// offenseAndDefense returns the two teams from the current possession's
// point of view.
func offenseAndDefense(g *gamestate.Game) (offense, defense *player.Team) {
	offense = g.TeamFor(g.Possession)
	defense = g.TeamFor(g.Possession.Opponent())
	return
}

// pick returns the first player at pos, or the shared placeholder.
func pick(t *player.Team, pos player.Position) *player.Player {
	if t == nil {
		return placeholder
	}
	if p := t.Find(pos); p != nil {
		return p
	}
	return placeholder
}

// teamAverage returns the average of rate() over every roster player at
// pos, or defaultRating if none exist (the team-power calculator
// fallback spec §4.4 explicitly allows).
func teamAverage(t *player.Team, pos player.Position, rate func(*player.Player) int) int {
	if t == nil {
		return defaultRating
	}
	all := t.FindAll(pos)
	if len(all) == 0 {
		return defaultRating
	}
	sum := 0
	for _, p := range all {
		sum += rate(p)
	}
	return sum / len(all)
}

func blockingRating(p *player.Player) int  { return p.Ratings.Blocking }
func tacklingRating(p *player.Player) int  { return p.Ratings.Tackling }
func coverageRating(p *player.Player) int  { return p.Ratings.Coverage }
func awarenessRating(p *player.Player) int { return p.Ratings.Awareness }

// offensiveLineBlocking averages the blocking of every C, G and T on the
// roster.
func offensiveLineBlocking(t *player.Team) int {
	sum, n := 0, 0
	for _, pos := range []player.Position{player.C, player.G, player.T} {
		for _, p := range t.FindAll(pos) {
			sum += p.Ratings.Blocking
			n++
		}
	}
	if n == 0 {
		return defaultRating
	}
	return sum / n
}

// defensiveFrontPressure averages the pass-rushers.
func defensiveFrontPressure(t *player.Team) int {
	sum, n := 0, 0
	for _, pos := range []player.Position{player.DT, player.DE, player.LB, player.OLB} {
		for _, p := range t.FindAll(pos) {
			sum += p.Ratings.Rushing
			n++
		}
	}
	if n == 0 {
		return defaultRating
	}
	return sum / n
}

// runDefenseRating averages the linebackers' (LB) tackling.
func runDefenseRating(t *player.Team) int {
	return teamAverage(t, player.LB, tacklingRating)
}

// clampFieldPosition clamps an endpoint to [0, 100] (spec §4.6: "All
// mechanics clamp their computed field-position endpoints to [0, 100]").
func clampFieldPosition(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// recordFumble appends a Fumble event to the play. It does not touch
// p.PossessionChange; callers set that from the recovering side.
func recordFumble(p *play.Play, lostBy *player.Player, recoveredBy *player.Player, recoveringSide play.Possession, outOfBounds bool) {
	p.Fumbles = append(p.Fumbles, play.Fumble{
		LostBy:         lostBy,
		RecoveredBy:    recoveredBy,
		RecoveringSide: recoveringSide,
		OutOfBounds:    outOfBounds,
	})
}
