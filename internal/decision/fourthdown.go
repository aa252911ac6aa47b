package decision

import "github.com/charleschow/gridiron-sim/internal/rng"

// FourthDownCall is the decision FourthDownDecisionEngine returns.
type FourthDownCall int

const (
	GoForIt FourthDownCall = iota
	AttemptFieldGoal
	Punt
)

// baseGoForItProbability implements the yards-to-go tier table (spec
// §4.5): 1:0.65, 2:0.35, 3:0.20, 4-5:0.08, 6-10:0.03, else 0.01.
func baseGoForItProbability(yardsToGo int) float64 {
	switch {
	case yardsToGo <= 1:
		return 0.65
	case yardsToGo == 2:
		return 0.35
	case yardsToGo == 3:
		return 0.20
	case yardsToGo <= 5:
		return 0.08
	case yardsToGo <= 10:
		return 0.03
	default:
		return 0.01
	}
}

// GoForItProbability computes the full modified probability (spec §4.5):
// base by yards-to-go, then red zone +0.15, opponent territory +0.08,
// deep own territory -0.15, trailing big (>8) +0.20 or small (1-8) +0.10,
// leading big (>8) -0.15, late-game trailing +0.15 or leading -0.10,
// chip-shot FG available -0.25 (an attempt of 30 yards or less, i.e. at
// the opponent's 13 or closer, within the kicker's range), clamped to
// [0, 1].
func GoForItProbability(c FourthDownContext, kickerRangeYards int) float64 {
	p := baseGoForItProbability(c.YardsToGo)

	if c.IsRedZone() {
		p += 0.15
	}
	if c.IsOpponentTerritory() {
		p += 0.08
	}
	if c.IsDeepOwnTerritory() {
		p -= 0.15
	}

	if c.IsTrailing() {
		if c.ScoreDiff < -8 {
			p += 0.20
		} else {
			p += 0.10
		}
	} else if c.IsLeading() {
		if c.ScoreDiff > 8 {
			p -= 0.15
		}
	}

	if c.IsLateGame() {
		if c.IsTrailing() {
			p += 0.15
		} else if c.IsLeading() {
			p -= 0.10
		}
	}

	if chipShotFieldGoalAvailable(c, kickerRangeYards) {
		p -= 0.25
	}

	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}

// chipShotFieldGoalAvailable reports a near-certain (<=30 yard) field
// goal attempt distance.
func chipShotFieldGoalAvailable(c FourthDownContext, kickerRangeYards int) bool {
	attemptDistance := fieldGoalAttemptDistance(c.FieldPosition)
	return attemptDistance <= 30 && attemptDistance <= kickerRangeYards
}

// fieldGoalAttemptDistance converts field position into the kick
// distance (spot plus the 17 yards behind the line of scrimmage to the
// goalposts, spec §4.5).
func fieldGoalAttemptDistance(fieldPosition int) int {
	return (100 - fieldPosition) + 17
}

// IsForcedGoForIt reports the two hard overrides (spec §4.5): time <= 120
// and trailing by more than a score (>7), or time <= 30 and trailing at
// all.
func IsForcedGoForIt(c FourthDownContext) bool {
	if c.TimeRemainingSec <= 120 && c.ScoreDiff < -7 {
		return true
	}
	if c.TimeRemainingSec <= 30 && c.IsTrailing() {
		return true
	}
	return false
}

// DecideFourthDown is FourthDownDecisionEngine. kickerRangeYards is the
// kicker's maximum attempt distance (spec §4.5 caps this family's range
// check at 60 yards, derived from field position + 17 elsewhere).
func DecideFourthDown(src rng.Source, c FourthDownContext, kickerRangeYards int) FourthDownCall {
	if IsForcedGoForIt(c) {
		return GoForIt
	}

	p := GoForItProbability(c, kickerRangeYards)
	if src.NextDouble() < p {
		return GoForIt
	}

	// Punt is forbidden inside the opponent 35 (yards-to-goal <= 35).
	forbidPunt := c.YardsToGoal() <= 35

	attemptDistance := fieldGoalAttemptDistance(c.FieldPosition)
	inFieldGoalRange := attemptDistance <= 60 && attemptDistance <= kickerRangeYards

	if inFieldGoalRange {
		return AttemptFieldGoal
	}
	if forbidPunt {
		return GoForIt
	}
	return Punt
}
