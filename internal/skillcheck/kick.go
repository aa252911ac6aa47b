package skillcheck

import (
	"github.com/charleschow/gridiron-sim/internal/modifier"
	"github.com/charleschow/gridiron-sim/internal/rng"
)

// FairCatchOccurred: whether a returner elects a fair catch. The
// probability formula lives in internal/decision (FairCatchDecisionEngine,
// spec §4.5) since it's a situational policy decision, not a pure
// physical skill check; this function exists only to roll the already-
// computed probability so mechanics and decisions share one RNG-
// consuming primitive.
func FairCatchOccurred(src rng.Source, probability float64) Result {
	roll := src.NextDouble()
	return Result{Occurred: roll < probability}
}

// PuntOutOfBounds: base 0.12, +0.08 inside the opponent 10, +0.05 inside
// the opponent 15 (the two bonuses are mutually exclusive tiers: the
// tighter one wins).
func PuntOutOfBounds(src rng.Source, landingSpotFromOpponentGoal int) Result {
	p := 0.12
	switch {
	case landingSpotFromOpponentGoal <= 10:
		p += 0.08
	case landingSpotFromOpponentGoal <= 15:
		p += 0.05
	}

	roll := src.NextDouble()
	return Result{Occurred: roll < p}
}

// fieldGoalBaseByDistance implements the distance-tier base table (spec
// §4.4): <=30: 0.015, <=45: 0.025, <=55: 0.040, else 0.065.
func fieldGoalBaseByDistance(distance int) float64 {
	switch {
	case distance <= 30:
		return 0.015
	case distance <= 45:
		return 0.025
	case distance <= 55:
		return 0.040
	default:
		return 0.065
	}
}

// FieldGoalBlock: base by distance tier, x10 on bad snap, times
// (1 - kicker/300), plus modifier(rusher - blocker/2), clamp [0.005, 0.25].
func FieldGoalBlock(src rng.Source, distance, kickerSkill, rusherRating, blockerRating int, badSnap bool) Result {
	p := fieldGoalBaseByDistance(distance)
	if badSnap {
		p *= 10
	}
	p *= 1 - float64(kickerSkill)/300
	p += modifier.FromDifferential(rusherRating - blockerRating/2)
	p = clamp(p, 0.005, 0.25)

	roll := src.NextDouble()
	return Result{Occurred: roll < p}
}

// PuntBlock: base {good snap 0.01, bad snap 0.20}, scaled by punter
// skill, + (skillDiff/10)*0.005, clamp [0.002, 0.30].
func PuntBlock(src rng.Source, punterSkill, blockerSkillDiff int, badSnap bool) Result {
	p := 0.01
	if badSnap {
		p = 0.20
	}
	p *= 1 - float64(punterSkill)/200
	p += float64(blockerSkillDiff) / 10 * 0.005
	p = clamp(p, 0.002, 0.30)

	roll := src.NextDouble()
	return Result{Occurred: roll < p}
}

// FieldGoalMakeProbability implements spec §4.6's piecewise distance-tier
// decay: <=30 flat 0.98, then a distinct linear decay per decade out to
// 60+, plus the kicker's own rating over 200, clamped [0.05, 0.99]. Each
// tier's decay is anchored at its own lower bound, not the previous
// tier's output, so there's a real step down at 30 (a cliff between
// "automatic" and merely "likely") rather than a smooth curve.
func FieldGoalMakeProbability(distance, kickerSkill int) float64 {
	d := float64(distance)
	var p float64
	switch {
	case distance <= 30:
		p = 0.98
	case distance <= 40:
		p = 0.90 - 0.010*(d-30)
	case distance <= 50:
		p = 0.80 - 0.015*(d-40)
	case distance <= 60:
		p = 0.65 - 0.025*(d-50)
	default:
		p = 0.40 - 0.030*(d-60)
	}
	p += float64(kickerSkill) / 200
	return clamp(p, 0.05, 0.99)
}

// FieldGoalMade rolls FieldGoalMakeProbability.
func FieldGoalMade(src rng.Source, distance, kickerSkill int) Result {
	p := FieldGoalMakeProbability(distance, kickerSkill)
	roll := src.NextDouble()
	return Result{Occurred: roll < p}
}

// FieldGoalBlockRecovery rolls which side recovers a blocked kick (spec
// §4.6 "if blocked roll defense recovery at 0.50"): true means the
// defense recovers (and may return it), false means the offense falls
// on its own blocked kick.
func FieldGoalBlockRecovery(src rng.Source) Result {
	roll := src.NextDouble()
	return Result{Occurred: roll < 0.50}
}

// PuntDowned: probability a punt coverage team downs the ball before it
// reaches the end zone, rising the closer the landing spot is to the
// receiving team's goal line (spec §4.6 "Downed... probability rises
// inside opponent-5/10/15").
func PuntDowned(src rng.Source, landingSpotFromOpponentGoal int) Result {
	p := 0.10
	switch {
	case landingSpotFromOpponentGoal <= 5:
		p = 0.55
	case landingSpotFromOpponentGoal <= 10:
		p = 0.35
	case landingSpotFromOpponentGoal <= 15:
		p = 0.20
	}

	roll := src.NextDouble()
	return Result{Occurred: roll < p}
}
