package ruleset

import (
	"testing"

	"github.com/charleschow/gridiron-sim/internal/gamestate"
	"github.com/charleschow/gridiron-sim/internal/play"
)

func TestLookupKnownRulesets(t *testing.T) {
	if _, ok := Lookup("nfl"); !ok {
		t.Fatalf("expected nfl ruleset to be registered")
	}
	if _, ok := Lookup("ncaa"); !ok {
		t.Fatalf("expected ncaa ruleset to be registered")
	}
	if _, ok := Lookup("xfl"); ok {
		t.Fatalf("unregistered ruleset should not be found")
	}
}

func TestNFLTwoMinuteWarningFiresOnceAt120Seconds(t *testing.T) {
	w := NFLTwoMinuteWarning{}
	q := gamestate.NewQuarter(gamestate.QuarterSecond, gamestate.RegulationSeconds)
	q.TimeRemaining = 121
	if w.Applies(q) {
		t.Fatalf("should not fire above 120 seconds")
	}
	q.TimeRemaining = 120
	if !w.Applies(q) {
		t.Fatalf("should fire at exactly 120 seconds")
	}
	q.TwoMinuteWarningCalled = true
	if w.Applies(q) {
		t.Fatalf("should not fire twice in the same half")
	}
}

func TestNCAATwoMinuteWarningNeverFires(t *testing.T) {
	w := NCAATwoMinuteWarning{}
	q := gamestate.NewQuarter(gamestate.QuarterSecond, gamestate.RegulationSeconds)
	q.TimeRemaining = 1
	if w.Applies(q) {
		t.Fatalf("NCAA rules have no two-minute warning")
	}
}

func TestNCAAOvertimeIsReservedButPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected NCAAOvertime.Start to panic")
		}
	}()
	NCAAOvertime{}.Start(&gamestate.Game{}, play.PossessionHome)
}

func TestNFLOvertimeStartSetsUpFirstAndTen(t *testing.T) {
	g := &gamestate.Game{}
	NFLOvertime{}.Start(g, play.PossessionAway)

	if g.Possession != play.PossessionAway {
		t.Fatalf("the coin-toss winner should have the ball")
	}
	if g.Down != play.First || g.YardsToGo != 10 || g.FieldPosition != 25 {
		t.Fatalf("expected first-and-10 from the 25, got down=%v togo=%d pos=%d", g.Down, g.YardsToGo, g.FieldPosition)
	}
	if !g.Overtime.IsInOvertime {
		t.Fatalf("expected IsInOvertime to be set")
	}
}

func TestNFLOvertimeContinuesWhileTied(t *testing.T) {
	g := &gamestate.Game{HomeScore: 10, AwayScore: 10}
	NFLOvertime{}.Start(g, play.PossessionHome)
	if !(NFLOvertime{}).Continues(g) {
		t.Fatalf("expected overtime to continue while tied with time remaining")
	}
}

func TestNFLOvertimeEndsWhenScoresDiverge(t *testing.T) {
	g := &gamestate.Game{HomeScore: 13, AwayScore: 10}
	NFLOvertime{}.Start(g, play.PossessionHome)
	if (NFLOvertime{}).Continues(g) {
		t.Fatalf("expected overtime to end once the score is no longer tied")
	}
}

func TestLookupNFLPlayoffRuleset(t *testing.T) {
	s, ok := Lookup("nfl_playoff")
	if !ok {
		t.Fatalf("expected nfl_playoff ruleset to be registered")
	}
	if s.Overtime.AllowsTies() {
		t.Fatalf("playoff overtime must not allow ties")
	}
}

func TestNFLPlayoffOvertimeUsesA15MinutePeriod(t *testing.T) {
	g := &gamestate.Game{}
	NFLPlayoffOvertime{}.Start(g, play.PossessionHome)
	if g.CurrentQuarter.MaxDuration != PlayoffOvertimeSeconds || g.CurrentQuarter.TimeRemaining != PlayoffOvertimeSeconds {
		t.Fatalf("expected a %ds period, got max=%d remaining=%v", PlayoffOvertimeSeconds, g.CurrentQuarter.MaxDuration, g.CurrentQuarter.TimeRemaining)
	}
}

func TestNFLPlayoffOvertimeNextPeriodEntersSuddenDeath(t *testing.T) {
	g := &gamestate.Game{HomeScore: 10, AwayScore: 10}
	NFLPlayoffOvertime{}.Start(g, play.PossessionHome)
	g.CurrentQuarter.TimeRemaining = 0

	NFLPlayoffOvertime{}.NextPeriod(g)

	if !g.Overtime.IsSuddenDeath {
		t.Fatalf("expected the second playoff overtime period to be sudden death")
	}
	if g.Overtime.CurrentPeriod != 2 {
		t.Fatalf("expected CurrentPeriod to advance to 2, got %d", g.Overtime.CurrentPeriod)
	}
	if g.Possession != play.PossessionAway {
		t.Fatalf("expected possession to flip to the team that didn't start period one")
	}
	if !(NFLPlayoffOvertime{}).Continues(g) {
		t.Fatalf("expected sudden death to continue while tied with time remaining")
	}
}

func TestNFLOvertimeFirstPossessionTouchdownWinsOutright(t *testing.T) {
	g := &gamestate.Game{}
	NFLOvertime{}.Start(g, play.PossessionHome)
	g.HomeScore = 6

	if !(NFLOvertime{}).ShouldGameEnd(g, play.PossessionHome, true, false, false) {
		t.Fatalf("a first-possession touchdown must win the game outright")
	}
	if !g.Overtime.FirstPossessionComplete {
		t.Fatalf("expected FirstPossessionComplete to be set")
	}
	if g.Overtime.FirstTeamPeriodScore != 6 {
		t.Fatalf("expected FirstTeamPeriodScore=6, got %d", g.Overtime.FirstTeamPeriodScore)
	}
}

func TestNFLOvertimeFirstPossessionFieldGoalAllowsMatchingPossession(t *testing.T) {
	g := &gamestate.Game{}
	NFLOvertime{}.Start(g, play.PossessionHome)
	g.HomeScore = 3

	if (NFLOvertime{}).ShouldGameEnd(g, play.PossessionHome, false, true, false) {
		t.Fatalf("a first-possession field goal must not end the game")
	}
	if !g.Overtime.FirstPossessionComplete {
		t.Fatalf("expected FirstPossessionComplete to be set")
	}
	if g.Overtime.CurrentPossessionTeam != play.PossessionAway {
		t.Fatalf("expected possession to pass to the other team for its matching try")
	}
}

// TestNFLOvertimeMatchingFieldGoalsEnterSuddenDeathThenNextFGEndsGame is
// spec §4.8's worked scenario: two matching field goals on each team's
// first possession transition the period into sudden death, where the
// next field goal by either team ends it.
func TestNFLOvertimeMatchingFieldGoalsEnterSuddenDeathThenNextFGEndsGame(t *testing.T) {
	g := &gamestate.Game{}
	NFLOvertime{}.Start(g, play.PossessionHome)

	g.HomeScore = 3
	if (NFLOvertime{}).ShouldGameEnd(g, play.PossessionHome, false, true, false) {
		t.Fatalf("the first team's field goal must not end the game")
	}

	g.AwayScore = 3
	if (NFLOvertime{}).ShouldGameEnd(g, play.PossessionAway, false, true, false) {
		t.Fatalf("the second team's matching field goal must not end the game yet")
	}
	if !g.Overtime.IsSuddenDeath {
		t.Fatalf("matching field goals must transition the period into sudden death")
	}
	if g.Overtime.SecondTeamPeriodScore != 3 {
		t.Fatalf("expected SecondTeamPeriodScore=3, got %d", g.Overtime.SecondTeamPeriodScore)
	}

	g.HomeScore += 3
	if !(NFLOvertime{}).ShouldGameEnd(g, play.PossessionHome, false, true, false) {
		t.Fatalf("any field goal in sudden death must end the game")
	}
}

func TestNFLOvertimeDefensiveScoreAlwaysEndsTheGame(t *testing.T) {
	g := &gamestate.Game{}
	NFLOvertime{}.Start(g, play.PossessionHome)
	g.AwayScore = 2

	if !(NFLOvertime{}).ShouldGameEnd(g, play.PossessionAway, false, false, true) {
		t.Fatalf("a safety against the first-possession team must end the game outright")
	}
}

func TestNFLOvertimeNonScoringFirstPossessionPassesTheBallWithoutEndingGame(t *testing.T) {
	g := &gamestate.Game{}
	NFLOvertime{}.Start(g, play.PossessionHome)

	if (NFLOvertime{}).ShouldGameEnd(g, play.PossessionNone, false, false, false) {
		t.Fatalf("a non-scoring first possession must not end the game")
	}
	if !g.Overtime.FirstPossessionComplete {
		t.Fatalf("expected FirstPossessionComplete to be set even without a score")
	}
	if g.Overtime.CurrentPossessionTeam != play.PossessionAway {
		t.Fatalf("expected possession to pass to the other team")
	}
}

func TestNFLPlayoffOvertimeSuddenDeathEndsOnAnyScore(t *testing.T) {
	g := &gamestate.Game{HomeScore: 10, AwayScore: 10}
	NFLPlayoffOvertime{}.Start(g, play.PossessionHome)
	g.CurrentQuarter.TimeRemaining = 0
	NFLPlayoffOvertime{}.NextPeriod(g)

	g.AwayScore += 3
	if (NFLPlayoffOvertime{}).Continues(g) {
		t.Fatalf("expected sudden death to end the instant the score diverges")
	}
}
