package mechanics

import (
	"github.com/charleschow/gridiron-sim/internal/decision"
	"github.com/charleschow/gridiron-sim/internal/gamestate"
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/player"
	"github.com/charleschow/gridiron-sim/internal/rng"
	"github.com/charleschow/gridiron-sim/internal/skillcheck"
)

const (
	snapToWhistleFieldGoal = 4.5
	snapToWhistlePunt      = 8.0
	snapToWhistleKickoff   = 9.0
)

// FieldGoalPlay is the field-goal mechanic (spec §4.6). Fixed
// RNG-consumption order: snap, block check, then either (blocked)
// recovery roll and possible return, or make/miss roll and (on a miss)
// direction roll.
func FieldGoalPlay(src rng.Source, g *gamestate.Game, attemptDistance int) *play.Play {
	offense, defense := offenseAndDefense(g)
	kicker := pick(offense, player.K)
	snapper := pick(offense, player.LS)

	p := play.New(play.TypeFieldGoal, g.Possession, g.Down, g.YardsToGo, g.FieldPosition)
	p.ElapsedTime = snapToWhistleFieldGoal
	p.ClockStopped = true
	p.Kick = &play.KickDetail{Kicker: kicker, Distance: attemptDistance}

	snapResult := skillcheck.BadSnap(src, snapper.Ratings.Blocking)
	p.GoodSnap = !snapResult.Occurred

	rusher := pick(defense, player.DT)
	blocker := pick(offense, player.G)
	block := skillcheck.FieldGoalBlock(src, attemptDistance, kicker.Ratings.Kicking, rusher.Ratings.Rushing, blocker.Ratings.Blocking, !p.GoodSnap)
	if block.Occurred {
		p.Kick.Blocked = true
		return fieldGoalBlockOutcome(src, p, offense, defense)
	}

	made := skillcheck.FieldGoalMade(src, attemptDistance, kicker.Ratings.Kicking)
	if made.Occurred {
		p.Kick.Good = true
		p.EndFieldPosition = 100
		p.PossessionChange = true
	} else {
		p.Kick.MissDirection = missDirection(src)
		p.EndFieldPosition = clampFieldPosition(p.StartFieldPosition)
		p.PossessionChange = true
	}
	return p
}

// fieldGoalBlockOutcome resolves spec §4.6's "if blocked roll defense
// recovery at 0.50 (and possible defensive TD)": the offense falling on
// its own blocked kick keeps the ball at the spot; a defensive recovery
// gets a short return that occasionally goes the distance.
func fieldGoalBlockOutcome(src rng.Source, p *play.Play, offense, defense *player.Team) *play.Play {
	recovery := skillcheck.FieldGoalBlockRecovery(src)
	if !recovery.Occurred {
		p.EndFieldPosition = p.StartFieldPosition
		p.PossessionChange = false
		return p
	}

	returner := pick(defense, player.LB)
	tackler := pick(offense, player.TE)
	escort := skillcheck.BlockingSuccess(src, returner.Ratings.Speed, tackler.Ratings.Tackling)
	returnYards := 5
	if escort.Occurred {
		returnYards += 20
	}

	p.PossessionChange = true
	spotTowardKickingGoal := p.StartFieldPosition - returnYards
	if spotTowardKickingGoal <= 0 {
		p.Possession = p.Possession.Opponent()
		p.IsTouchdown = true
		p.EndFieldPosition = 0
		p.Kick.Return = &play.ReturnSegment{Yards: p.StartFieldPosition, Returner: returner}
		return p
	}
	p.EndFieldPosition = clampFieldPosition(spotTowardKickingGoal)
	p.Kick.Return = &play.ReturnSegment{Yards: returnYards, Returner: returner}
	return p
}

// missDirection implements spec §4.6's cumulative-threshold miss-spot
// roll: 0.4 wide right, 0.8 wide left, else short.
func missDirection(src rng.Source) string {
	roll := src.NextDouble()
	switch {
	case roll < 0.4:
		return "wide right"
	case roll < 0.8:
		return "wide left"
	default:
		return "short"
	}
}

// PuntPlay is the punt mechanic (spec §4.6). Fixed RNG-consumption
// order: snap, block check, then (if unblocked; distance and hang time
// are computed from the punter's rating without a draw, and a touchback
// ends the play with no further draw) out-of-bounds, fair catch, downed,
// muffed catch, and the return's blocking roll.
func PuntPlay(src rng.Source, g *gamestate.Game) *play.Play {
	offense, defense := offenseAndDefense(g)
	punter := pick(offense, player.P)
	snapper := pick(offense, player.LS)

	p := play.New(play.TypePunt, g.Possession, g.Down, g.YardsToGo, g.FieldPosition)
	p.ElapsedTime = snapToWhistlePunt
	p.PossessionChange = true
	p.Kick = &play.KickDetail{Punter: punter}

	snapResult := skillcheck.BadSnap(src, snapper.Ratings.Blocking)
	p.GoodSnap = !snapResult.Occurred

	rusher := pick(defense, player.OLB)
	blockDiff := punter.Ratings.Kicking - rusher.Ratings.Rushing
	block := skillcheck.PuntBlock(src, punter.Ratings.Kicking, blockDiff, !p.GoodSnap)
	if block.Occurred {
		p.Kick.Blocked = true
		p.EndFieldPosition = p.StartFieldPosition
		p.PossessionChange = false
		return p
	}

	distance := 35 + (punter.Ratings.Kicking-50)/3
	landingSpot := clampFieldPosition(p.StartFieldPosition + distance)
	p.Kick.Distance = distance
	p.Kick.HangTime = 4.0 + float64(punter.Ratings.Kicking)/100

	if landingSpot >= 100 {
		p.Kick.Touchback = true
		p.EndFieldPosition = 80
		return p
	}

	oob := skillcheck.PuntOutOfBounds(src, 100-landingSpot)
	if oob.Occurred {
		p.Kick.OutOfBounds = true
		p.EndFieldPosition = landingSpot
		return p
	}

	fcProbability := decision.FairCatchProbability(decision.FairCatchContext{
		HangTime:      p.Kick.HangTime,
		FieldPosition: 100 - landingSpot,
		IsKickoff:     false,
	})
	fc := skillcheck.FairCatchOccurred(src, fcProbability)
	if fc.Occurred {
		p.Kick.FairCatch = true
		p.EndFieldPosition = landingSpot
		return p
	}

	downed := skillcheck.PuntDowned(src, 100-landingSpot)
	if downed.Occurred {
		p.Kick.Downed = true
		p.EndFieldPosition = landingSpot
		return p
	}

	returner := pick(defense, player.CB)
	muff := skillcheck.MuffedCatch(src, returner.Ratings.Catching, p.Kick.HangTime)
	if muff.Occurred {
		p.EndFieldPosition = landingSpot
		recordFumble(p, returner, punter, p.Possession, false)
		p.PossessionChange = false
		return p
	}

	gunner := pick(offense, player.WR)
	blocking := skillcheck.BlockingSuccess(src, gunner.Ratings.Blocking, returner.Ratings.Agility)
	returnYards := 8
	if blocking.Occurred {
		returnYards += 6
	}
	p.Kick.Return = &play.ReturnSegment{Yards: returnYards, Returner: returner}
	p.EndFieldPosition = clampFieldPosition(landingSpot - returnYards)
	return p
}

// KickoffPlay is the kickoff mechanic (spec §4.6). The kicking team is
// g.Possession; possession transfers to the receiving team unless this
// is a successful onside attempt. Like every other mechanic,
// EndFieldPosition is recorded in the kicking team's own frame (spec
// §4.6 "all mechanics clamp their computed field-position endpoints to
// [0, 100]" against the possessing side's orientation) — the
// play-result processor's generic possession-change branch flips it
// into the new possessor's frame, so a deep kick must end up *high* in
// this frame, not already converted.
func KickoffPlay(src rng.Source, g *gamestate.Game, onside bool) *play.Play {
	kicking, receiving := offenseAndDefense(g)
	kicker := pick(kicking, player.K)

	p := play.New(play.TypeKickoff, g.Possession, play.DownNone, 0, g.FieldPosition)
	p.ElapsedTime = snapToWhistleKickoff
	p.Kick = &play.KickDetail{Kicker: kicker, Onside: onside}
	p.GoodSnap = true
	p.PossessionChange = true

	if onside {
		recoverChance := 0.10 + float64(kicker.Ratings.Kicking-50)/500
		p.EndFieldPosition = clampFieldPosition(p.StartFieldPosition + 10)
		if roll := src.NextDouble(); roll < recoverChance {
			p.PossessionChange = false
		}
		return p
	}

	distance := 60 + (kicker.Ratings.Kicking-50)/2
	landingSpot := clampFieldPosition(p.StartFieldPosition + distance)
	p.Kick.Distance = distance
	p.Kick.HangTime = 4.2 + float64(kicker.Ratings.Kicking)/150

	if landingSpot >= 100 {
		p.Kick.Touchback = true
		p.EndFieldPosition = 75 // receiving team spots it at their own 25
		return p
	}

	returner := pick(receiving, player.WR)

	fcProbability := decision.FairCatchProbability(decision.FairCatchContext{
		HangTime:      p.Kick.HangTime,
		FieldPosition: 100 - landingSpot,
		IsKickoff:     true,
	})
	fc := skillcheck.FairCatchOccurred(src, fcProbability)
	if fc.Occurred {
		p.Kick.FairCatch = true
		p.EndFieldPosition = landingSpot
		return p
	}

	muff := skillcheck.MuffedCatch(src, returner.Ratings.Catching, p.Kick.HangTime)
	if muff.Occurred {
		p.EndFieldPosition = landingSpot
		gunner := pick(kicking, player.OLB)
		recordFumble(p, returner, gunner, p.Possession, false)
		p.PossessionChange = false
		return p
	}

	oob := skillcheck.PuntOutOfBounds(src, 100-landingSpot)
	if oob.Occurred {
		p.Kick.OutOfBounds = true
		p.EndFieldPosition = landingSpot
		return p
	}

	gunner := pick(kicking, player.OLB)
	blocking := skillcheck.BlockingSuccess(src, returner.Ratings.Speed, gunner.Ratings.Tackling)
	returnYards := 22
	if blocking.Occurred {
		returnYards += 8
	}
	p.Kick.Return = &play.ReturnSegment{Yards: returnYards, Returner: returner}
	spotTowardKickingGoal := landingSpot - returnYards
	if spotTowardKickingGoal <= 0 {
		p.Possession = p.Possession.Opponent()
		p.IsTouchdown = true
		p.EndFieldPosition = 0
		return p
	}
	p.EndFieldPosition = clampFieldPosition(spotTowardKickingGoal)
	return p
}
