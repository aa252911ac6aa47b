package player

import "fmt"

// Team is a city, name, and ordered roster of players. Immutable during
// a game except for player-stat side effects (spec §3).
type Team struct {
	City   string
	Name   string
	Roster []*Player
}

// FullName returns "City Name" for display.
func (t *Team) FullName() string {
	if t == nil {
		return ""
	}
	return t.City + " " + t.Name
}

// ErrEmptyRoster and ErrMissingQB are the two roster-validation failures
// spec §7 calls out by name ("empty roster, missing required position
// (e.g. no QB)").
var (
	ErrEmptyRoster = fmt.Errorf("player: roster is empty")
	ErrMissingQB   = fmt.Errorf("player: roster has no QB")
)

// Validate enforces the roster preconditions spec §7 requires
// simulate_game to check at entry, before a game is started.
func (t *Team) Validate() error {
	if t == nil || len(t.Roster) == 0 {
		return ErrEmptyRoster
	}
	for _, p := range t.Roster {
		if p.Position == QB {
			return nil
		}
	}
	return ErrMissingQB
}

// Find returns the first roster player at the given position, or nil if
// none exists. Used by mechanics/decision engines to select personnel
// (e.g. the starting QB, the kicker, the punter).
func (t *Team) Find(pos Position) *Player {
	for _, p := range t.Roster {
		if p.Position == pos {
			return p
		}
	}
	return nil
}

// FindAll returns every roster player at the given position, in roster
// order.
func (t *Team) FindAll(pos Position) []*Player {
	var out []*Player
	for _, p := range t.Roster {
		if p.Position == pos {
			out = append(out, p)
		}
	}
	return out
}

// BestAt returns the roster player at pos with the highest value of
// rate, or nil if no player at that position exists. Used to pick e.g.
// the best available blocker when a specific one hasn't been assigned.
func (t *Team) BestAt(pos Position, rate func(*Player) int) *Player {
	var best *Player
	bestVal := -1
	for _, p := range t.Roster {
		if p.Position != pos {
			continue
		}
		if v := rate(p); v > bestVal {
			best = p
			bestVal = v
		}
	}
	return best
}
