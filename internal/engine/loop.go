package engine

import (
	"github.com/charleschow/gridiron-sim/internal/decision"
	"github.com/charleschow/gridiron-sim/internal/gamestate"
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/resolve"
	"github.com/charleschow/gridiron-sim/internal/rng"
)

// gameLoop carries the cross-play state the progression loop (spec
// §4.9) needs beyond what gamestate.Game itself tracks: which side
// received the opening kickoff (so the second half's kickoff goes the
// other way) and whether this half has already been granted its one
// untimed down for a defensive penalty at the buzzer.
type gameLoop struct {
	g              *gamestate.Game
	src            rng.Source
	rs             rulesetBundle
	openingReceiver play.Possession
	halfExtended   bool
}

// run drives Game from the opening coin toss through the final whistle.
func run(g *gamestate.Game, src rng.Source, rs rulesetBundle, maxPlays int) {
	l := &gameLoop{g: g, src: src, rs: rs}

	l.openingReceiver = coinToss(src)
	runKickoff(src, g, l.openingReceiver.Opponent())

	for i := 0; i < maxPlays; i++ {
		if g.Down == play.DownNone {
			// Defensive belt-and-suspenders: every transition below sets
			// Down before returning control here, but an internal bug
			// leaving it unset must not spin forever running kickoffs
			// against themselves.
			fail(g, "game loop reached a scrimmage iteration with Down unset")
		}

		p, out := runScrimmageDown(src, g)
		fieldGoalMade := p.Type == play.TypeFieldGoal && p.Kick != nil && p.Kick.Good

		if l.handleOvertimeDrive(p, out, fieldGoalMade) {
			return
		}

		switch {
		case out.TouchdownScored:
			runConversion(src, g, out.ScoringSide)
			kp, kout := runKickoff(src, g, out.ScoringSide)
			if kout.TouchdownScored && l.handleOvertimeDrive(kp, kout, false) {
				return
			}
		case out.SafetyScored:
			kp, kout := runFreeKickAfterSafety(src, g, out.ScoringSide.Opponent())
			if kout.TouchdownScored && l.handleOvertimeDrive(kp, kout, false) {
				return
			}
		case fieldGoalMade:
			kp, kout := runKickoff(src, g, p.Possession)
			if kout.TouchdownScored && l.handleOvertimeDrive(kp, kout, false) {
				return
			}
		}

		if l.postPlay(p) {
			return
		}
	}

	fail(g, "play count exceeded the configured maximum without the game concluding")
}

// handleOvertimeDrive runs the overtime possession state machine (spec
// §4.8) the instant a drive ends during overtime — scored or not — and
// ends the game right here when the ruleset says the score is decisive,
// skipping any conversion/kickoff that would otherwise follow. A
// non-scoring drive's end (punt, turnover on downs, interception, lost
// fumble, missed field goal) still gets folded into the ruleset's
// possession bookkeeping so the next drive's first/second/sudden-death
// accounting stays correct, even though it can never itself end the
// game.
func (l *gameLoop) handleOvertimeDrive(p *play.Play, out resolve.Outcome, fieldGoalMade bool) bool {
	g := l.g
	if g.Overtime == nil || !g.Overtime.IsInOvertime || !out.PossessionEnded {
		return false
	}

	scoringSide := out.ScoringSide
	if fieldGoalMade {
		scoringSide = p.Possession
	}

	if !l.rs.Overtime.ShouldGameEnd(g, scoringSide, out.TouchdownScored, fieldGoalMade, out.SafetyScored) {
		return false
	}

	if g.CurrentHalf != nil {
		g.CurrentHalf.Type = gamestate.HalfGameOver
	}
	return true
}

// coinToss decides which side receives the opening kickoff: a single
// unweighted RNG draw, consumed before anything else (spec §4.9
// "Pre-game: coin toss").
func coinToss(src rng.Source) play.Possession {
	if src.NextInt(2) == 0 {
		return play.PossessionHome
	}
	return play.PossessionAway
}

// postPlay runs the clock/quarter/half/timeout bookkeeping after a
// settled play (spec §4.9 "Post-play"). Returns true once the game has
// concluded.
func (l *gameLoop) postPlay(p *play.Play) bool {
	g := l.g
	q := g.CurrentQuarter
	q.Elapse(p.ElapsedTime)

	if l.rs.TwoMinuteWarning.Applies(q) {
		q.TwoMinuteWarningCalled = true
	}

	l.maybeCallTimeout()

	if !q.Expired() {
		return false
	}

	if g.Overtime != nil && g.Overtime.IsInOvertime {
		return l.expireOvertimeQuarter()
	}
	return l.expireRegulationQuarter(p)
}

// expireRegulationQuarter handles a regulation quarter's clock running
// out: advancing to the half's second quarter, transitioning to the
// second half, or ending regulation into overtime or a final score
// (spec §4.9).
func (l *gameLoop) expireRegulationQuarter(p *play.Play) bool {
	g := l.g
	isSecondQuarterOfHalf := g.CurrentQuarter == g.CurrentHalf.Quarters[1]

	if !isSecondQuarterOfHalf {
		g.CurrentQuarter = g.CurrentHalf.Quarters[1]
		return false
	}

	if l.grantEndOfHalfExtension(p) {
		return false
	}

	p.QuarterExpired = true
	p.HalfExpired = true
	l.halfExtended = false

	wasFirstHalf := g.CurrentHalf.Type == gamestate.HalfFirst
	l.rs.EndOfHalf.Expire(g)

	if wasFirstHalf {
		g.CurrentHalf = g.Halves[1]
		g.CurrentQuarter = g.Halves[1].Quarters[0]
		runKickoff(l.src, g, l.openingReceiver)
		return false
	}

	if g.HomeScore != g.AwayScore {
		return true
	}
	l.startOvertime()
	return false
}

// grantEndOfHalfExtension implements the "defensive penalty at the
// buzzer" carve-out (spec §4.9/§4.7): a half may not end on an accepted
// defensive penalty, so the offense gets one untimed down instead. Only
// one extension is granted per half, regardless of further penalties on
// the replayed down, to guarantee the half eventually ends.
func (l *gameLoop) grantEndOfHalfExtension(p *play.Play) bool {
	if l.halfExtended {
		return false
	}
	if !hasAcceptedDefensivePenalty(p) {
		return false
	}
	l.halfExtended = true
	l.g.CurrentQuarter.TimeRemaining = 0
	p.QuarterExpired = false
	p.HalfExpired = false
	return true
}

func hasAcceptedDefensivePenalty(p *play.Play) bool {
	for _, pen := range p.Penalties {
		if pen.Accepted != nil && *pen.Accepted && pen.CalledOn != p.Possession {
			return true
		}
	}
	return false
}

// startOvertime hands off to the configured Overtime ruleset (spec
// §4.9 "Overtime setup"), with a fresh coin toss for the extra period.
func (l *gameLoop) startOvertime() {
	winner := coinToss(l.src)
	l.rs.Overtime.Start(l.g, winner)
}

// expireOvertimeQuarter handles an overtime period's clock running out:
// either the ruleset rolls a fresh period (playoff sudden death) or the
// game is over, as a tie if the ruleset allows one.
func (l *gameLoop) expireOvertimeQuarter() bool {
	g := l.g
	if l.rs.Overtime.Continues(g) {
		return false
	}
	if g.HomeScore == g.AwayScore && !l.rs.Overtime.AllowsTies() {
		l.rs.Overtime.NextPeriod(g)
		return false
	}
	if g.CurrentHalf != nil {
		g.CurrentHalf.Type = gamestate.HalfGameOver
	}
	return true
}

// maybeCallTimeout lets either side stop the clock between downs (spec
// §4.5 TimeoutDecisionEngine, spec §4.9 "Post-play: timeout decision").
// Bookkeeping only: this engine doesn't model the clock's actual
// stop/restart delay, only the timeout pool being spent.
func (l *gameLoop) maybeCallTimeout() {
	g := l.g
	offense := g.Possession
	defense := offense.Opponent()

	for _, side := range []play.Possession{offense, defense} {
		if g.TimeoutsFor(side) == 0 {
			continue
		}
		ctx := timeoutContext(g, side, false, 0, side == defense)
		if decision.DecideTimeout(l.src, ctx) == decision.TimeoutNone {
			continue
		}
		spendTimeout(g, side)
		return
	}
}

func spendTimeout(g *gamestate.Game, side play.Possession) {
	if g.Overtime != nil && g.Overtime.IsInOvertime {
		if side == play.PossessionHome {
			g.Overtime.HomeTimeoutsRemaining--
		} else {
			g.Overtime.AwayTimeoutsRemaining--
		}
		return
	}
	if side == play.PossessionHome {
		g.HomeTimeouts--
	} else {
		g.AwayTimeouts--
	}
}
