// Command simulate is a thin example harness over internal/engine: it
// loads two rosters from JSON files, runs one game, and prints a box
// score. It is explicitly not the out-of-scope statistical validator —
// no batch mode, no distribution analysis, just one game.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/charleschow/gridiron-sim/internal/config"
	"github.com/charleschow/gridiron-sim/internal/engine"
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/player"
	"github.com/charleschow/gridiron-sim/internal/telemetry"
)

func main() {
	homePath := flag.String("home", "", "path to the home team's JSON roster")
	awayPath := flag.String("away", "", "path to the away team's JSON roster")
	flag.Parse()

	telemetry.Init(telemetry.ParseLogLevel(os.Getenv("LOG_LEVEL")))

	if *homePath == "" || *awayPath == "" {
		telemetry.Errorf("usage: simulate -home <roster.json> -away <roster.json>")
		os.Exit(2)
	}

	home, err := loadRoster(*homePath)
	if err != nil {
		telemetry.Errorf("load home roster: %v", err)
		os.Exit(1)
	}
	away, err := loadRoster(*awayPath)
	if err != nil {
		telemetry.Errorf("load away roster: %v", err)
		os.Exit(1)
	}

	opts := config.LoadOptions()
	opts.Logger = telemetry.NewGameLogger()

	result, err := engine.SimulateGame(home, away, opts)
	if err != nil {
		telemetry.Errorf("simulate game: %v", err)
		os.Exit(1)
	}

	printBoxScore(result)
}

// rosterFile is the on-disk JSON shape a roster loads from: a flat list
// of players, not a nested team object, since the team's city/name are
// supplied as the file's own top-level fields.
type rosterFile struct {
	City   string          `json:"city"`
	Name   string          `json:"name"`
	Roster []rosterPlayer  `json:"roster"`
}

type rosterPlayer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Ratings   struct {
		Speed     int `json:"speed"`
		Strength  int `json:"strength"`
		Agility   int `json:"agility"`
		Awareness int `json:"awareness"`
		Catching  int `json:"catching"`
		Passing   int `json:"passing"`
		Rushing   int `json:"rushing"`
		Blocking  int `json:"blocking"`
		Tackling  int `json:"tackling"`
		Coverage  int `json:"coverage"`
		Kicking   int `json:"kicking"`
	} `json:"ratings"`
}

func loadRoster(path string) (*player.Team, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var rf rosterFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	team := &player.Team{City: rf.City, Name: rf.Name}
	for _, rp := range rf.Roster {
		ratings := player.Ratings{
			Speed: rp.Ratings.Speed, Strength: rp.Ratings.Strength, Agility: rp.Ratings.Agility,
			Awareness: rp.Ratings.Awareness, Catching: rp.Ratings.Catching, Passing: rp.Ratings.Passing,
			Rushing: rp.Ratings.Rushing, Blocking: rp.Ratings.Blocking, Tackling: rp.Ratings.Tackling,
			Coverage: rp.Ratings.Coverage, Kicking: rp.Ratings.Kicking,
		}
		team.Roster = append(team.Roster, player.New(rp.FirstName, rp.LastName, player.Position(rp.Position), ratings))
	}
	return team, nil
}

func printBoxScore(r *engine.GameResult) {
	fmt.Printf("%s %d - %d %s\n", r.Home.FullName(), r.HomeScore, r.AwayScore, r.Away.FullName())
	if r.IsTie {
		fmt.Println("Final: tie")
	} else {
		fmt.Printf("Final: %s wins\n", teamName(r))
	}
	fmt.Printf("Plays: %d | Seed: %d\n", len(r.Plays), r.RandomSeed)

	printLeaders(r.Home)
	printLeaders(r.Away)
}

func teamName(r *engine.GameResult) string {
	if r.Winner == nil {
		return ""
	}
	if *r.Winner == play.PossessionHome {
		return r.Home.FullName()
	}
	return r.Away.FullName()
}

func printLeaders(t *player.Team) {
	fmt.Printf("-- %s --\n", t.FullName())
	for _, p := range t.Roster {
		s := p.Stats
		if s.PassAttempts == 0 && s.RushAttempts == 0 && s.Receptions == 0 {
			continue
		}
		fmt.Printf("  %-20s %s  pass %d/%d %dyd %dTD | rush %d/%dyd %dTD | rec %d/%dyd %dTD\n",
			p.Name(), p.Position,
			s.PassCompletions, s.PassAttempts, s.PassYards, s.PassTouchdowns,
			s.RushAttempts, s.RushYards, s.RushTouchdowns,
			s.Receptions, s.ReceivingYards, s.ReceivingTDs)
	}
}
