package decision

import (
	"testing"

	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/rng"
)

func TestShouldKneelWhenLeadingLateFourthQuarter(t *testing.T) {
	c := PlayCallContext{Quarter: 4, Down: play.First, Leading: true, TimeRemainingSec: 100}
	if !ShouldKneel(c) {
		t.Fatalf("expected kneel: 4 downs * 40 = 160 >= 100")
	}
}

func TestShouldNotKneelWhenTrailing(t *testing.T) {
	c := PlayCallContext{Quarter: 4, Down: play.First, Leading: false, TimeRemainingSec: 100}
	if ShouldKneel(c) {
		t.Fatalf("should not kneel while trailing")
	}
}

func TestShouldSpikeConditions(t *testing.T) {
	c := PlayCallContext{
		Quarter: 4, Trailing: true, TimeRemainingSec: 60,
		TimeoutsRemaining: 0, ClockRunning: true, Down: play.Second,
	}
	if !ShouldSpike(c) {
		t.Fatalf("expected spike under these conditions")
	}

	c.Down = play.Fourth
	if ShouldSpike(c) {
		t.Fatalf("should not spike on fourth down")
	}
}

func TestDecidePlayCallKneelTakesPrecedence(t *testing.T) {
	src := rng.NewFluent(nil, nil) // no draw should be consumed
	c := PlayCallContext{Quarter: 4, Down: play.First, Leading: true, TimeRemainingSec: 10}
	if got := DecidePlayCall(src, c); got != CallKneel {
		t.Fatalf("expected CallKneel, got %v", got)
	}
}

func TestOnsideKickNoRNGWhenNotTrailing(t *testing.T) {
	src := rng.NewFluent(nil, nil)
	c := OnsideKickContext{ScoreDiff: 0}
	if got := DecideOnsideKick(src, c); got != NormalKickoff {
		t.Fatalf("expected NormalKickoff, got %v", got)
	}
}

func TestOnsideKickTrailingBySevenDistribution(t *testing.T) {
	count := 0
	const trials = 1000
	for seed := 0; seed < trials; seed++ {
		src := rng.New(uint32(seed))
		c := OnsideKickContext{ScoreDiff: -7, Quarter: 4, TimeRemainingSec: 300}
		if DecideOnsideKick(src, c) == OnsideKick {
			count++
		}
	}
	if count < 20 || count > 80 {
		t.Fatalf("onside kick count %d outside [20, 80] over %d trials", count, trials)
	}
}

func TestFourthAndOneAtMidfieldGoForItMajority(t *testing.T) {
	count := 0
	const trials = 1000
	for seed := 0; seed < trials; seed++ {
		src := rng.New(uint32(seed))
		c := FourthDownContext{FieldPosition: 50, YardsToGo: 1, ScoreDiff: 0, TimeRemainingSec: 1800}
		if DecideFourthDown(src, c, 55) == GoForIt {
			count++
		}
	}
	if count < 500 {
		t.Fatalf("expected GoForIt count >= 500, got %d", count)
	}
}

func TestForcedGoForItLateTrailingBigly(t *testing.T) {
	c := FourthDownContext{TimeRemainingSec: 100, ScoreDiff: -10}
	if !IsForcedGoForIt(c) {
		t.Fatalf("expected forced go-for-it")
	}
}

func TestPuntForbiddenInsideOpponent35(t *testing.T) {
	src := rng.New(1)
	c := FourthDownContext{FieldPosition: 70, YardsToGo: 8, ScoreDiff: 0, TimeRemainingSec: 1800}
	got := DecideFourthDown(src, c, 30) // kicker out of range
	if got == Punt {
		t.Fatalf("punt should be forbidden inside the opponent 35")
	}
}

func TestDecidePenaltyAlwaysAcceptsAutomaticFirstDown(t *testing.T) {
	c := PenaltyDecisionContext{
		Penalty:           play.Penalty{Name: play.PenaltyDefensiveHolding, CalledOn: play.PossessionAway},
		OffensePossession: play.PossessionHome,
		PlayScored:        true, // would normally decline
	}
	if !DecidePenalty(c) {
		t.Fatalf("automatic-first-down penalties must always be accepted")
	}
}

func TestDecidePenaltyDefensiveDeclinedOnBigScore(t *testing.T) {
	c := PenaltyDecisionContext{
		Penalty:           play.Penalty{Name: play.PenaltyOffside, CalledOn: play.PossessionAway, Yards: 5},
		OffensePossession: play.PossessionHome,
		PlayScored:        true,
	}
	if DecidePenalty(c) {
		t.Fatalf("expected decline when the play already scored")
	}
}

func TestDecidePenaltyOffensiveAcceptedWhenFavorsOffense(t *testing.T) {
	c := PenaltyDecisionContext{
		Penalty:             play.Penalty{Name: play.PenaltyIllegalBlock, CalledOn: play.PossessionHome, Yards: 10},
		OffensePossession:   play.PossessionHome,
		PlayYardsGained:     20,
		PlayGainedFirstDown: true,
	}
	if !DecidePenalty(c) {
		t.Fatalf("expected accept when the underlying play favored the offense")
	}
}

func TestFairCatchProbabilityBounds(t *testing.T) {
	p := FairCatchProbability(FairCatchContext{HangTime: 5.0, FieldPosition: 5, IsKickoff: true})
	if p > 1 || p < 0 {
		t.Fatalf("probability %v out of [0,1]", p)
	}
	if p < 0.25+0.15+0.20+0.05-1e-9 {
		t.Fatalf("expected all bonuses to stack, got %v", p)
	}
}
