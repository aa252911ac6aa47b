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

// RunPlay is the run mechanic (spec §4.6). Fixed RNG-consumption order:
// bad snap, blocking success, run yards (Normal/LogNormal draws), big
// run, tackle break, fumble occurrence, fumble recovery, elapsed-time
// draw. A kneel skips every check but the snap.
func RunPlay(src rng.Source, g *gamestate.Game, kneel bool) *play.Play {
	offense, defense := offenseAndDefense(g)
	carrier := pick(offense, player.RB)
	p := play.New(play.TypeRun, g.Possession, g.Down, g.YardsToGo, g.FieldPosition)
	p.Run = &play.RunDetail{IsKneel: kneel, Carrier: carrier}

	snapper := pick(offense, player.C)
	snapResult := skillcheck.BadSnap(src, snapper.Ratings.Blocking)
	p.GoodSnap = !snapResult.Occurred

	if kneel {
		p.YardsGained = -1
		p.ElapsedTime = 40
		p.ClockStopped = false
		if p.StartFieldPosition <= 1 {
			p.IsSafety = true
			p.EndFieldPosition = 0
		} else {
			p.EndFieldPosition = clampFieldPosition(p.StartFieldPosition - 1)
		}
		return p
	}

	blockRating := offensiveLineBlocking(offense)
	defenseRating := runDefenseRating(defense)
	blocking := skillcheck.BlockingSuccess(src, blockRating, defenseRating)

	skillMod := modifier.FromDifferential(carrier.Ratings.Rushing - defenseRating)
	if blocking.Occurred {
		skillMod += 0.10
	} else {
		skillMod -= 0.10
	}

	yards := distributions.RunYards(src, skillMod)

	tacklerCount := 1
	big := skillcheck.BigRun(src, carrier.Ratings.Speed)
	if big.Occurred {
		p.Run.Breakaway = true
		yards += 10
		tacklerCount = 0
	} else {
		tackler := pick(defense, player.LB)
		brk := skillcheck.TackleBreak(src, carrier.Ratings.Agility, tackler.Ratings.Tackling)
		if brk.Occurred {
			p.Run.BrokeTackle = true
			yards += 4
		} else {
			tacklerCount = 2
		}
	}

	fumble := skillcheck.FumbleOccurred(src, skillcheck.FumbleContextOther, carrier.Ratings.Awareness, defenseRating, tacklerCount)
	if fumble.Occurred {
		rec := skillcheck.FumbleRecovery(src, carrier.Ratings.Awareness-awarenessRating(pick(defense, player.LB)))
		recoveringSide := p.Possession
		recoverer := carrier
		if !rec.OriginalSideRecovers {
			recoveringSide = p.Possession.Opponent()
			recoverer = pick(defense, player.LB)
			p.PossessionChange = true
		}
		recordFumble(p, carrier, recoverer, recoveringSide, rec.OutOfBounds)
	}

	p.YardsGained = yards
	p.EndFieldPosition = clampFieldPosition(p.StartFieldPosition + yards)
	if p.EndFieldPosition >= 100 {
		p.IsTouchdown = true
	}
	if p.EndFieldPosition <= 0 {
		p.EndFieldPosition = 0
		p.IsSafety = true
	}

	if p.Run.Breakaway {
		p.ElapsedTime = distributions.Normal(src, 5, 4)
	} else {
		p.ElapsedTime = distributions.Normal(src, 5, 3)
	}
	if p.ElapsedTime < 0 {
		p.ElapsedTime = 0
	}
	return p
}
