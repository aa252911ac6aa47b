package mechanics

import (
	"github.com/charleschow/gridiron-sim/internal/distributions"
	"github.com/charleschow/gridiron-sim/internal/gamestate"
	"github.com/charleschow/gridiron-sim/internal/modifier"
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/player"
	"github.com/charleschow/gridiron-sim/internal/rng"
	"github.com/charleschow/gridiron-sim/internal/skillcheck"
)

const (
	snapToWhistlePassIncomplete = 5.0
	snapToWhistlePassComplete   = 6.5
	snapToWhistleSack           = 4.5
)

// targetForDepth picks a receiver position by how far downfield the
// route is expected to go: screens and short routes favor the backfield
// and slot, medium/deep favor the wideouts.
func targetForDepth(offense *player.Team, pt distributions.PassType) *player.Player {
	switch pt {
	case distributions.PassScreen:
		if p := pick(offense, player.RB); p != placeholder {
			return p
		}
	case distributions.PassShort:
		if p := pick(offense, player.TE); p != placeholder {
			return p
		}
	}
	return pick(offense, player.WR)
}

// PassPlay is the pass mechanic (spec §4.6). Fixed RNG-consumption
// order: bad snap, QB pressure, pass protection (sack check), then
// either sack yards (+ fumble check) or pass completion, interception,
// and (on a completion) yards after catch. A spike skips every check
// but the snap and ends the play dead at the line.
func PassPlay(src rng.Source, g *gamestate.Game, pt distributions.PassType, spike bool) *play.Play {
	offense, defense := offenseAndDefense(g)
	passer := pick(offense, player.QB)
	target := targetForDepth(offense, pt)

	p := play.New(play.TypePass, g.Possession, g.Down, g.YardsToGo, g.FieldPosition)
	p.Pass = &play.PassDetail{IsSpike: spike, PassType: int(pt), Passer: passer, Target: target}

	snapper := pick(offense, player.C)
	snapResult := skillcheck.BadSnap(src, snapper.Ratings.Blocking)
	p.GoodSnap = !snapResult.Occurred

	if spike {
		p.Pass.Completion = play.Incomplete
		p.ElapsedTime = 3.0
		p.ClockStopped = true
		return p
	}

	rush := defensiveFrontPressure(defense)
	protection := offensiveLineBlocking(offense)

	pressure := skillcheck.QBPressure(src, rush, protection)
	protect := skillcheck.PassProtection(src, protection, rush)

	if !protect.Occurred {
		sackYards := distributions.SackYards(src)
		p.Pass.Sacked = true
		p.ElapsedTime = snapToWhistleSack
		p.YardsGained = sackYards
		p.EndFieldPosition = clampFieldPosition(p.StartFieldPosition + sackYards)

		rusher := pick(defense, player.DE)
		fumble := skillcheck.FumbleOccurred(src, skillcheck.FumbleContextSack, passer.Ratings.Awareness, rush, 1)
		if fumble.Occurred {
			rec := skillcheck.FumbleRecovery(src, passer.Ratings.Awareness-rusher.Ratings.Awareness)
			recoveringSide := p.Possession
			recoverer := passer
			if !rec.OriginalSideRecovers {
				recoveringSide = p.Possession.Opponent()
				recoverer = rusher
				p.PossessionChange = true
			}
			recordFumble(p, passer, recoverer, recoveringSide, rec.OutOfBounds)
		}
		if p.EndFieldPosition <= 0 {
			p.EndFieldPosition = 0
			p.IsSafety = true
		}
		return p
	}

	defender := pick(defense, player.CB)
	completion := skillcheck.PassCompletion(src, passer.Ratings.Passing, defender.Ratings.Coverage, pressure.Occurred)

	if !completion.Occurred {
		p.ElapsedTime = snapToWhistlePassIncomplete
		p.ClockStopped = true

		intDiff := defender.Ratings.Coverage - passer.Ratings.Awareness
		interception := skillcheck.InterceptionOccurred(src, intDiff, pressure.Occurred)
		if interception.Occurred {
			p.Pass.Completion = play.Intercepted
			p.Pass.Intercepts = defender
			p.PossessionChange = true
			p.EndFieldPosition = p.StartFieldPosition
		} else {
			p.Pass.Completion = play.Incomplete
			p.EndFieldPosition = p.StartFieldPosition
		}
		return p
	}

	p.ElapsedTime = snapToWhistlePassComplete
	p.Pass.Completion = play.Complete

	skillMod := modifier.FromDifferential(target.Ratings.Catching - defender.Ratings.Coverage)
	airYards := distributions.PassYards(src, pt, skillMod)
	p.Pass.AirYards = airYards

	yac := skillcheck.YardsAfterCatch(src, target.Ratings.Catching, target.Ratings.Speed)
	yacYards := 0
	if yac.Occurred {
		yacYards = 5
		if yac.BigPlay {
			yacYards = yac.BonusYards
		}
	}
	p.Pass.YAC = yacYards

	total := airYards + yacYards
	p.YardsGained = total
	p.EndFieldPosition = clampFieldPosition(p.StartFieldPosition + total)
	if p.EndFieldPosition >= 100 {
		p.IsTouchdown = true
	}

	fumble := skillcheck.FumbleOccurred(src, skillcheck.FumbleContextOther, target.Ratings.Awareness, defender.Ratings.Tackling, 1)
	if fumble.Occurred {
		rec := skillcheck.FumbleRecovery(src, target.Ratings.Awareness-defender.Ratings.Awareness)
		recoveringSide := p.Possession
		recoverer := target
		if !rec.OriginalSideRecovers {
			recoveringSide = p.Possession.Opponent()
			recoverer = defender
			p.PossessionChange = true
		}
		recordFumble(p, target, recoverer, recoveringSide, rec.OutOfBounds)
	}
	return p
}
