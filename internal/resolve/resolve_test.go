package resolve

import (
	"testing"

	"github.com/charleschow/gridiron-sim/internal/gamestate"
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/player"
)

func newGame() *gamestate.Game {
	home := &player.Team{City: "Home", Name: "Team", Roster: []*player.Player{
		player.New("Home", "QB", player.QB, player.Ratings{}),
	}}
	away := &player.Team{City: "Away", Name: "Team", Roster: []*player.Player{
		player.New("Away", "QB", player.QB, player.Ratings{}),
	}}
	return &gamestate.Game{
		Home: home, Away: away,
		Possession: play.PossessionHome,
		Down:       play.First, YardsToGo: 10, FieldPosition: 50,
		Logger: gamestate.DiscardLogger,
	}
}

func TestApplyRunGainsFirstDown(t *testing.T) {
	g := newGame()
	p := play.New(play.TypeRun, play.PossessionHome, play.First, 10, 50)
	p.YardsGained = 12
	p.EndFieldPosition = 62

	out := Apply(g, p)

	if !out.FirstDownGained {
		t.Fatalf("expected first down")
	}
	if g.Down != play.First || g.YardsToGo != 10 {
		t.Fatalf("expected reset to first-and-10, got down=%v togo=%d", g.Down, g.YardsToGo)
	}
	if g.FieldPosition != 62 {
		t.Fatalf("expected field position 62, got %d", g.FieldPosition)
	}
}

func TestApplyTurnoverOnDownsFlipsFieldPosition(t *testing.T) {
	g := newGame()
	g.Down = play.Fourth
	p := play.New(play.TypeRun, play.PossessionHome, play.Fourth, 5, 50)
	p.YardsGained = 2
	p.EndFieldPosition = 52

	out := Apply(g, p)

	if !out.TurnoverOnDowns {
		t.Fatalf("expected turnover on downs")
	}
	if g.Possession != play.PossessionAway {
		t.Fatalf("possession should flip to away")
	}
	if g.FieldPosition != 48 {
		t.Fatalf("expected flipped field position 48, got %d", g.FieldPosition)
	}
}

func TestApplyTouchdownAwardsSixAndEndsPossession(t *testing.T) {
	g := newGame()
	p := play.New(play.TypeRun, play.PossessionHome, play.First, 10, 90)
	p.YardsGained = 15
	p.EndFieldPosition = 100
	p.IsTouchdown = true

	out := Apply(g, p)

	if !out.TouchdownScored || out.ScoringSide != play.PossessionHome {
		t.Fatalf("expected a home touchdown")
	}
	if g.HomeScore != 6 {
		t.Fatalf("expected 6 points, got %d", g.HomeScore)
	}
	if !out.PossessionEnded {
		t.Fatalf("a touchdown must end the drive")
	}
}

func TestApplySafetyAwardsTwoToDefense(t *testing.T) {
	g := newGame()
	p := play.New(play.TypeRun, play.PossessionHome, play.First, 10, 2)
	p.YardsGained = -3
	p.EndFieldPosition = 0
	p.IsSafety = true

	out := Apply(g, p)

	if !out.SafetyScored || out.ScoringSide != play.PossessionAway {
		t.Fatalf("a safety credits the defense")
	}
	if g.AwayScore != 2 {
		t.Fatalf("expected 2 points, got %d", g.AwayScore)
	}
	if g.Possession != play.PossessionAway {
		t.Fatalf("possession must go to the scoring side (it receives the ensuing free kick)")
	}
}

func TestApplyAutomaticFirstDownPenaltyOverridesPlayResult(t *testing.T) {
	g := newGame()
	p := play.New(play.TypePass, play.PossessionHome, play.Third, 8, 40)
	p.YardsGained = 2
	p.EndFieldPosition = 42
	p.Penalties = []play.Penalty{{
		Name: play.PenaltyDefensiveHolding, Yards: 5, CalledOn: play.PossessionAway,
	}}

	out := Apply(g, p)

	if !out.FirstDownGained {
		t.Fatalf("an accepted automatic-first-down penalty must grant a first down regardless of the play's own result")
	}
}

func TestApplyDefensivePenaltySpotFoulAcrossGoalLineIsTouchdown(t *testing.T) {
	g := newGame()
	p := play.New(play.TypePass, play.PossessionHome, play.First, 10, 97)
	p.YardsGained = 2
	p.EndFieldPosition = 99
	p.Penalties = []play.Penalty{{
		Name: play.PenaltyPassInterferenceDef, Yards: 15, CalledOn: play.PossessionAway,
	}}

	out := Apply(g, p)

	if !out.TouchdownScored {
		t.Fatalf("a defensive-PI spot foul landing past the goal line must be credited as a touchdown")
	}
	if g.HomeScore != 6 {
		t.Fatalf("expected 6 points, got %d", g.HomeScore)
	}
}

func TestApplyOffensivePenaltyBehindOwnGoalLineIsSafety(t *testing.T) {
	g := newGame()
	p := play.New(play.TypeRun, play.PossessionHome, play.First, 10, 3)
	p.YardsGained = 1
	p.EndFieldPosition = 4
	p.Penalties = []play.Penalty{{
		Name: play.PenaltyOffensiveHolding, Yards: 10, CalledOn: play.PossessionHome,
	}}

	out := Apply(g, p)

	if !out.SafetyScored {
		t.Fatalf("offensive holding enforced from the 3 must push the spot behind the goal line into a safety")
	}
	if g.AwayScore != 2 {
		t.Fatalf("expected 2 points, got %d", g.AwayScore)
	}
}

func TestApplyFieldGoalMissFlipsPossessionAtSpot(t *testing.T) {
	g := newGame()
	p := play.New(play.TypeFieldGoal, play.PossessionHome, play.Fourth, 3, 70)
	p.Kick = &play.KickDetail{Good: false}
	p.EndFieldPosition = 70

	out := Apply(g, p)

	if !out.PossessionEnded {
		t.Fatalf("a field goal attempt always ends the drive")
	}
	if g.Possession != play.PossessionAway {
		t.Fatalf("a miss turns the ball over")
	}
	if g.FieldPosition != 30 {
		t.Fatalf("expected the defense to take over at the 30 (100-70), got %d", g.FieldPosition)
	}
}
