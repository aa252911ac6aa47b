// Package player holds the roster data model: Player identity and
// attribute ratings, Team rosters, and the per-player statistics bag
// (spec §3).
package player

import "github.com/charleschow/gridiron-sim/internal/stats"

// Position is a closed enumeration of roster position codes (spec §3).
type Position string

const (
	QB  Position = "QB"
	RB  Position = "RB"
	FB  Position = "FB"
	WR  Position = "WR"
	TE  Position = "TE"
	C   Position = "C"
	G   Position = "G"
	T   Position = "T"
	DT  Position = "DT"
	DE  Position = "DE"
	LB  Position = "LB"
	OLB Position = "OLB"
	CB  Position = "CB"
	S   Position = "S"
	FS  Position = "FS"
	K   Position = "K"
	P   Position = "P"
	LS  Position = "LS"
)

// Ratings holds a player's 0-100 attribute ratings (spec §3). Values
// outside [0, 100] are accepted: SimulateGame's entry validation (spec
// §7) checks only for an empty roster and a QB, and ratings are not
// range-checked anywhere.
type Ratings struct {
	Speed     int
	Strength  int
	Agility   int
	Awareness int
	Catching  int
	Passing   int
	Rushing   int
	Blocking  int
	Tackling  int
	Coverage  int
	Kicking   int
}

// Player is a single roster entry. Created from roster input, never
// destroyed during a game; its Stats are the only mutable state, and are
// mutated exclusively by internal/stats (spec §3 "Lifetime").
type Player struct {
	FirstName string
	LastName  string
	Position  Position
	Ratings   Ratings
	Stats     stats.PlayerStats
}

// Name returns "First Last" for logging and box-score display.
func (p *Player) Name() string {
	if p == nil {
		return ""
	}
	return p.FirstName + " " + p.LastName
}

// New constructs a Player with zeroed statistics.
func New(firstName, lastName string, pos Position, ratings Ratings) *Player {
	return &Player{
		FirstName: firstName,
		LastName:  lastName,
		Position:  pos,
		Ratings:   ratings,
	}
}
