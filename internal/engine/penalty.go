package engine

import (
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/rng"
)

// penaltyOccurrenceRate is the flat chance a scrimmage play draws a flag
// at all. The skill-check catalogue has no listed formula for penalty
// occurrence itself (only for how an already-called penalty is
// enforced), so this rate is an engine-level addition, not a ported
// constant; see DESIGN.md.
const penaltyOccurrenceRate = 0.08

type penaltyTemplate struct {
	name      play.PenaltyName
	yards     int
	onOffense bool
}

var penaltyCatalogue = []penaltyTemplate{
	{play.PenaltyDefensiveHolding, 5, false},
	{play.PenaltyPassInterferenceDef, 15, false},
	{play.PenaltyRoughingThePasser, 15, false},
	{play.PenaltyOffside, 5, false},
	{play.PenaltyUnnecessaryRoughness, 15, false},
	{play.PenaltyFacemask, 15, false},
	{play.PenaltyOffensiveHolding, 10, true},
	{play.PenaltyFalseStart, 5, true},
	{play.PenaltyDelayOfGame, 5, true},
}

// maybeAttachPenalty rolls for a penalty on a scrimmage play and, if one
// occurs, appends it undecided (Accepted nil) for resolve.enforcePenalties
// to settle. At most one penalty per play; offsetting fouls are not
// modeled.
func maybeAttachPenalty(src rng.Source, p *play.Play) {
	if src.NextDouble() >= penaltyOccurrenceRate {
		return
	}
	tmpl := penaltyCatalogue[src.NextInt(len(penaltyCatalogue))]

	calledOn := p.Possession
	if !tmpl.onOffense {
		calledOn = p.Possession.Opponent()
	}

	p.Penalties = append(p.Penalties, play.Penalty{
		Name:     tmpl.name,
		Yards:    tmpl.yards,
		CalledOn: calledOn,
		Occurred: play.During,
	})
}
