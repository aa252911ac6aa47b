package engine

import (
	"testing"

	"github.com/charleschow/gridiron-sim/internal/config"
	"github.com/charleschow/gridiron-sim/internal/gamestate"
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/player"
	"github.com/charleschow/gridiron-sim/internal/resolve"
	"github.com/charleschow/gridiron-sim/internal/ruleset"
)

func testRoster(city, name string) *player.Team {
	t := &player.Team{City: city, Name: name}
	positions := []player.Position{
		player.QB, player.RB, player.RB, player.FB, player.WR, player.WR, player.WR, player.TE,
		player.C, player.G, player.G, player.T, player.T,
		player.DT, player.DT, player.DE, player.DE, player.LB, player.LB, player.OLB,
		player.CB, player.CB, player.S, player.FS, player.K, player.P, player.LS,
	}
	for _, pos := range positions {
		t.Roster = append(t.Roster, player.New("Test", string(pos), pos, player.Ratings{
			Speed: 65, Strength: 65, Agility: 65, Awareness: 65, Catching: 65,
			Passing: 65, Rushing: 65, Blocking: 65, Tackling: 65, Coverage: 65, Kicking: 65,
		}))
	}
	return t
}

func TestSimulateGameDeterministic(t *testing.T) {
	home, away := testRoster("Home", "Hawks"), testRoster("Away", "Owls")
	opts := config.Options{RandomSeed: 1234, MaxPlays: 500}

	r1, err := SimulateGame(home, away, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r2, err := SimulateGame(testRoster("Home", "Hawks"), testRoster("Away", "Owls"), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r1.HomeScore != r2.HomeScore || r1.AwayScore != r2.AwayScore {
		t.Fatalf("same seed produced different scores: %d-%d vs %d-%d", r1.HomeScore, r1.AwayScore, r2.HomeScore, r2.AwayScore)
	}
	if len(r1.Plays) != len(r2.Plays) {
		t.Fatalf("same seed produced different play counts: %d vs %d", len(r1.Plays), len(r2.Plays))
	}
}

func TestSimulateGameProducesAFinishedGame(t *testing.T) {
	home, away := testRoster("Home", "Hawks"), testRoster("Away", "Owls")
	r, err := SimulateGame(home, away, config.Options{RandomSeed: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Plays) == 0 {
		t.Fatalf("expected at least one play")
	}
	if !r.IsTie && r.Winner == nil {
		t.Fatalf("a non-tie result must name a winner")
	}
}

func TestSimulateGameRejectsEmptyRoster(t *testing.T) {
	home := &player.Team{City: "Home", Name: "Hawks"}
	away := testRoster("Away", "Owls")

	_, err := SimulateGame(home, away, config.Options{RandomSeed: 1})
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("expected *ConfigError for an empty roster, got %v (%T)", err, err)
	}
}

func TestSimulateGameRejectsUnknownRuleset(t *testing.T) {
	home, away := testRoster("Home", "Hawks"), testRoster("Away", "Owls")
	_, err := SimulateGame(home, away, config.Options{RandomSeed: 1, OvertimeRules: "XFL"})
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("expected *ConfigError for an unknown ruleset identifier, got %v (%T)", err, err)
	}
}

func TestSimulateGameGeneratesASeedWhenAbsent(t *testing.T) {
	home, away := testRoster("Home", "Hawks"), testRoster("Away", "Owls")
	r, err := SimulateGame(home, away, config.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.RandomSeed == 0 {
		t.Fatalf("expected a generated non-zero seed")
	}
}

func TestHandleOvertimeDriveEndsGameOnDecisiveTouchdown(t *testing.T) {
	g := &gamestate.Game{CurrentHalf: &gamestate.Half{Type: gamestate.HalfSecond}}
	ruleset.NFLOvertime{}.Start(g, play.PossessionHome)
	g.HomeScore = 6 // first-possession touchdown already on the board

	l := &gameLoop{g: g, rs: rulesetBundle{Overtime: ruleset.NFLOvertime{}}}
	out := resolve.Outcome{TouchdownScored: true, ScoringSide: play.PossessionHome, PossessionEnded: true}
	p := &play.Play{Possession: play.PossessionHome}

	if !l.handleOvertimeDrive(p, out, false) {
		t.Fatalf("expected a first-possession overtime touchdown to end the game")
	}
	if g.CurrentHalf.Type != gamestate.HalfGameOver {
		t.Fatalf("expected CurrentHalf to be marked GameOver")
	}
}

func TestHandleOvertimeDriveContinuesOnFirstPossessionFieldGoal(t *testing.T) {
	g := &gamestate.Game{CurrentHalf: &gamestate.Half{Type: gamestate.HalfSecond}}
	ruleset.NFLOvertime{}.Start(g, play.PossessionHome)
	g.HomeScore = 3

	l := &gameLoop{g: g, rs: rulesetBundle{Overtime: ruleset.NFLOvertime{}}}
	out := resolve.Outcome{PossessionEnded: true}
	p := &play.Play{Possession: play.PossessionHome, Type: play.TypeFieldGoal, Kick: &play.KickDetail{Good: true}}

	if l.handleOvertimeDrive(p, out, true) {
		t.Fatalf("a first-possession field goal must not end the game")
	}
	if g.CurrentHalf.Type == gamestate.HalfGameOver {
		t.Fatalf("game must not be marked over after a first-possession field goal")
	}
	if g.Overtime.CurrentPossessionTeam != play.PossessionAway {
		t.Fatalf("expected the matching possession to pass to the other team")
	}
}

func TestHandleOvertimeDriveIsANoOpOutsideOvertime(t *testing.T) {
	g := &gamestate.Game{CurrentHalf: &gamestate.Half{Type: gamestate.HalfSecond}}
	l := &gameLoop{g: g, rs: rulesetBundle{Overtime: ruleset.NFLOvertime{}}}
	out := resolve.Outcome{TouchdownScored: true, ScoringSide: play.PossessionHome, PossessionEnded: true}
	p := &play.Play{Possession: play.PossessionHome}

	if l.handleOvertimeDrive(p, out, false) {
		t.Fatalf("outside overtime, handleOvertimeDrive must be a no-op")
	}
}

func TestSimulateGameHonorsMaxPlaysAsAnInvariantViolation(t *testing.T) {
	home, away := testRoster("Home", "Hawks"), testRoster("Away", "Owls")
	_, err := SimulateGame(home, away, config.Options{RandomSeed: 9, MaxPlays: 1})
	if err == nil {
		t.Fatalf("expected an error when the play budget can't reach a finished game")
	}
	if _, ok := err.(InvariantViolation); !ok {
		t.Fatalf("expected an InvariantViolation, got %v (%T)", err, err)
	}
}
