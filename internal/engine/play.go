package engine

import (
	"github.com/charleschow/gridiron-sim/internal/decision"
	"github.com/charleschow/gridiron-sim/internal/distributions"
	"github.com/charleschow/gridiron-sim/internal/gamestate"
	"github.com/charleschow/gridiron-sim/internal/mechanics"
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/resolve"
	"github.com/charleschow/gridiron-sim/internal/rng"
)

// choosePassType rolls the depth-of-target bucket (spec §4.6: cumulative
// thresholds 0.15/0.50/0.85 over Screen/Short/Forward/Deep, "Forward"
// matching distributions.PassMedium). Chosen ahead of the pass mechanic
// itself rather than inside it, since the mechanic's signature takes an
// already-selected PassType (see internal/mechanics/pass.go).
func choosePassType(src rng.Source) distributions.PassType {
	roll := src.NextDouble()
	switch {
	case roll < 0.15:
		return distributions.PassScreen
	case roll < 0.50:
		return distributions.PassShort
	case roll < 0.85:
		return distributions.PassMedium
	default:
		return distributions.PassDeep
	}
}

// runScrimmageDown runs one down from snap through the play-result
// processor: pre-play decision, mechanic dispatch, penalty roll,
// resolve.Apply. Returns the finished play and its Outcome.
func runScrimmageDown(src rng.Source, g *gamestate.Game) (*play.Play, resolve.Outcome) {
	offenseTeam := g.TeamFor(g.Possession)

	if g.Down == play.Fourth {
		fdCtx := fourthDownContext(g)
		call := decision.DecideFourthDown(src, fdCtx, kickerRangeYards(offenseTeam))
		switch call {
		case decision.AttemptFieldGoal:
			p := mechanics.FieldGoalPlay(src, g, fieldGoalAttemptDistance(g.FieldPosition))
			logPlay(g, p)
			out := resolve.Apply(g, p)
			return p, out
		case decision.Punt:
			p := mechanics.PuntPlay(src, g)
			logPlay(g, p)
			out := resolve.Apply(g, p)
			return p, out
		}
		// GoForIt falls through to the normal play call below.
	}

	pcCtx := playCallContext(g)
	call := decision.DecidePlayCall(src, pcCtx)

	var p *play.Play
	switch call {
	case decision.CallKneel:
		p = mechanics.RunPlay(src, g, true)
	case decision.CallRun:
		p = mechanics.RunPlay(src, g, false)
	case decision.CallSpike:
		p = mechanics.PassPlay(src, g, distributions.PassShort, true)
	case decision.CallPass:
		pt := choosePassType(src)
		p = mechanics.PassPlay(src, g, pt, false)
	}

	maybeAttachPenalty(src, p)

	logPlay(g, p)
	out := resolve.Apply(g, p)
	return p, out
}

// runConversion handles the extra-point/two-point attempt after a
// touchdown (spec §4.9 "Post-touchdown: conversion attempt"). Points are
// awarded directly rather than through resolve.Apply, since a conversion
// isn't itself a down in the possession/down-and-distance sense — it
// always resolves straight to the ensuing kickoff.
func runConversion(src rng.Source, g *gamestate.Game, scoringSide play.Possession) {
	choice := decision.DecideConversion(src)

	savedDown, savedYardsToGo, savedFieldPosition := g.Down, g.YardsToGo, g.FieldPosition
	g.Possession = scoringSide
	g.Down = play.DownNone
	g.YardsToGo = 0

	var made bool
	if choice == decision.ExtraPoint {
		g.FieldPosition = 85
		p := mechanics.FieldGoalPlay(src, g, 18)
		made = p.Kick != nil && p.Kick.Good
		g.Log("conversion: extra point %s", resultWord(made))
	} else {
		g.FieldPosition = 98
		pcCtx := playCallContext(g)
		pcCtx.IsTwoPointAttempt = true
		call := decision.DecidePlayCall(src, pcCtx)
		var p *play.Play
		if call == decision.CallPass {
			p = mechanics.PassPlay(src, g, distributions.PassShort, false)
		} else {
			p = mechanics.RunPlay(src, g, false)
		}
		made = p.IsTouchdown
		g.Log("conversion: two-point attempt %s", resultWord(made))
	}

	if made {
		points := 1
		if choice == decision.TwoPointConversion {
			points = 2
		}
		if scoringSide == play.PossessionHome {
			g.HomeScore += points
		} else {
			g.AwayScore += points
		}
	}

	g.Down, g.YardsToGo, g.FieldPosition = savedDown, savedYardsToGo, savedFieldPosition
}

func resultWord(ok bool) string {
	if ok {
		return "good"
	}
	return "no good"
}

// runKickoff runs the kickoff from the 35 that starts a half or follows
// a touchdown's conversion or a made field goal (spec §4.9); the free
// kick after a safety is runFreeKickAfterSafety's. kickingSide is the
// team kicking the ball away.
func runKickoff(src rng.Source, g *gamestate.Game, kickingSide play.Possession) (*play.Play, resolve.Outcome) {
	g.Possession = kickingSide
	g.Down = play.DownNone
	g.YardsToGo = 0
	g.FieldPosition = 35

	onsideCtx := onsideKickContext(g, kickingSide)
	onside := decision.DecideOnsideKick(src, onsideCtx) == decision.OnsideKick

	p := mechanics.KickoffPlay(src, g, onside)
	logPlay(g, p)
	out := resolve.Apply(g, p)
	return p, out
}

// runFreeKickAfterSafety kicks off from the 20 after a safety (spec §4.9
// "the scored-upon team free-kicks from its own 20"), reusing the
// kickoff mechanic's distance/return model rather than a dedicated punt-
// style free kick, since the two share the same skill-check catalogue.
func runFreeKickAfterSafety(src rng.Source, g *gamestate.Game, kickingSide play.Possession) (*play.Play, resolve.Outcome) {
	g.Possession = kickingSide
	g.Down = play.DownNone
	g.YardsToGo = 0
	g.FieldPosition = 20

	p := mechanics.KickoffPlay(src, g, false)
	logPlay(g, p)
	out := resolve.Apply(g, p)
	return p, out
}
