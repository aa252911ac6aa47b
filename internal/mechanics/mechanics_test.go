package mechanics

import (
	"testing"

	"github.com/charleschow/gridiron-sim/internal/distributions"
	"github.com/charleschow/gridiron-sim/internal/gamestate"
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/player"
	"github.com/charleschow/gridiron-sim/internal/rng"
)

func roster(positions ...player.Position) *player.Team {
	t := &player.Team{City: "Test", Name: "Team"}
	for _, pos := range positions {
		t.Roster = append(t.Roster, player.New("Test", string(pos), pos, player.Ratings{
			Speed: 70, Strength: 70, Agility: 70, Awareness: 70, Catching: 70,
			Passing: 70, Rushing: 70, Blocking: 70, Tackling: 70, Coverage: 70, Kicking: 70,
		}))
	}
	return t
}

func fullRoster() *player.Team {
	return roster(player.QB, player.RB, player.FB, player.WR, player.WR, player.TE,
		player.C, player.G, player.G, player.T, player.T,
		player.DT, player.DE, player.DE, player.LB, player.OLB, player.CB, player.CB,
		player.S, player.FS, player.K, player.P, player.LS)
}

func newTestGame() *gamestate.Game {
	return &gamestate.Game{
		Home:          fullRoster(),
		Away:          fullRoster(),
		Possession:    play.PossessionHome,
		Down:          play.First,
		YardsToGo:     10,
		FieldPosition: 50,
		Logger:        gamestate.DiscardLogger,
	}
}

func TestRunPlayDeterministic(t *testing.T) {
	g := newTestGame()
	src1 := rng.New(42)
	src2 := rng.New(42)

	p1 := RunPlay(src1, g, false)
	p2 := RunPlay(src2, g, false)

	if p1.YardsGained != p2.YardsGained {
		t.Fatalf("same seed produced different yardage: %d vs %d", p1.YardsGained, p2.YardsGained)
	}
}

func TestRunPlayKneelLosesYardAndKeepsPossession(t *testing.T) {
	g := newTestGame()
	src := rng.New(7)
	p := RunPlay(src, g, true)

	if p.YardsGained != -1 {
		t.Fatalf("expected kneel to lose exactly 1 yard, got %d", p.YardsGained)
	}
	if p.PossessionChange {
		t.Fatalf("kneel must never change possession")
	}
}

func TestRunPlayEndFieldPositionClamped(t *testing.T) {
	g := newTestGame()
	g.FieldPosition = 98
	for seed := uint32(0); seed < 50; seed++ {
		src := rng.New(seed)
		p := RunPlay(src, g, false)
		if p.EndFieldPosition < 0 || p.EndFieldPosition > 100 {
			t.Fatalf("seed %d: end field position %d out of [0,100]", seed, p.EndFieldPosition)
		}
	}
}

func TestPassPlaySpikeNeverConsumesBeyondSnap(t *testing.T) {
	g := newTestGame()
	src := rng.NewFluent([]float64{0.99}, nil) // only the snap roll is allowed
	p := PassPlay(src, g, distributions.PassShort, true)

	if p.Pass.Completion != play.Incomplete {
		t.Fatalf("a spike must record as incomplete")
	}
	if p.ClockStopped != true {
		t.Fatalf("a spike must stop the clock")
	}
}

func TestPassPlayCompletionIsExplicitNotInferred(t *testing.T) {
	g := newTestGame()
	for seed := uint32(0); seed < 30; seed++ {
		src := rng.New(seed)
		p := PassPlay(src, g, distributions.PassScreen, false)
		if p.IsComplete() && p.Pass.Completion != play.Complete {
			t.Fatalf("IsComplete() must agree with the explicit Completion state")
		}
		if p.Pass.Completion == play.Complete && p.YardsGained < 1 {
			t.Fatalf("a recorded completion must carry at least 1 air yard, got %d", p.YardsGained)
		}
	}
}

func TestFieldGoalPlayBlockedNeverScores(t *testing.T) {
	g := newTestGame()
	// good snap, guaranteed block, offense recovers its own blocked kick
	src := rng.NewFluent([]float64{0.99, 0.0, 0.99}, nil)
	p := FieldGoalPlay(src, g, 30)

	if !p.Kick.Blocked {
		t.Fatalf("expected a blocked kick with a forced low block roll")
	}
	if p.Kick.Good {
		t.Fatalf("a blocked kick can never be good")
	}
}

func TestFieldGoalPlayBlockedDefensiveRecoveryCanReturnForTouchdown(t *testing.T) {
	g := newTestGame()
	g.FieldPosition = 20 // attempt from deep in the offense's own territory
	g.Possession = play.PossessionHome
	// good snap, guaranteed block, guaranteed defensive recovery, guaranteed
	// escort success -> a 25-yard return from the 20 crosses the goal line
	src := rng.NewFluent([]float64{0.99, 0.0, 0.0, 0.0}, nil)
	p := FieldGoalPlay(src, g, 37)

	if !p.Kick.Blocked {
		t.Fatalf("expected a blocked kick")
	}
	if !p.IsTouchdown {
		t.Fatalf("a long enough return off a blocked-kick recovery must score")
	}
	if p.Possession != play.PossessionAway {
		t.Fatalf("the touchdown must be credited to the recovering defense, got %v", p.Possession)
	}
}

func TestPuntPlayAlwaysChangesPossessionUnlessBlocked(t *testing.T) {
	g := newTestGame()
	for seed := uint32(0); seed < 30; seed++ {
		src := rng.New(seed)
		p := PuntPlay(src, g)
		if !p.Kick.Blocked && !p.PossessionChange {
			t.Fatalf("seed %d: an unblocked punt must change possession", seed)
		}
	}
}

func TestKickoffOnsideNoRecoveryKeepsReceivingTeamPossession(t *testing.T) {
	g := newTestGame()
	src := rng.NewFluent([]float64{0.99}, nil) // guaranteed failed recovery
	p := KickoffPlay(src, g, true)

	if !p.PossessionChange {
		t.Fatalf("a failed onside attempt must still change possession to the receiving team")
	}
}

func TestKickoffTouchbackSpotsAtTwentyFive(t *testing.T) {
	g := newTestGame()
	// EndFieldPosition is recorded in the kicking team's own frame (like
	// every other mechanic); the play-result processor flips it into the
	// receiving team's frame, where a touchback belongs at the 25 (= 75
	// here, pre-flip).
	for seed := uint32(0); seed < 50; seed++ {
		src := rng.New(seed)
		p := KickoffPlay(src, g, false)
		if p.Kick.Touchback && p.EndFieldPosition != 75 {
			t.Fatalf("touchback must spot the kicking team's frame at 75 (receiving team's 25), got %d", p.EndFieldPosition)
		}
	}
}
