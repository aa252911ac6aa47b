package skillcheck

import (
	"github.com/charleschow/gridiron-sim/internal/modifier"
	"github.com/charleschow/gridiron-sim/internal/rng"
)

// FumbleContext selects which base rate FumbleOccurred starts from (spec
// §4.4: "base depends on play context").
type FumbleContext int

const (
	FumbleContextSack FumbleContext = iota
	FumbleContextReturn
	FumbleContextOther
)

func fumbleBase(ctx FumbleContext) float64 {
	switch ctx {
	case FumbleContextSack:
		return 0.12
	case FumbleContextReturn:
		return 0.025
	default:
		return 0.015
	}
}

// FumbleOccurred: base by context, multiplied by (1 - modifier(awareness))
// and (1 + modifier(defenderPressure)), then by 1.30 for 3+ tacklers or
// 1.15 for 2, clamp [0.003, 0.25].
func FumbleOccurred(src rng.Source, ctx FumbleContext, carrierAwareness, defenderPressure, tacklerCount int) Result {
	p := fumbleBase(ctx)
	p *= 1 - modifier.FromBaseline(carrierAwareness)
	p *= 1 + modifier.FromDifferential(defenderPressure)

	switch {
	case tacklerCount >= 3:
		p *= 1.30
	case tacklerCount == 2:
		p *= 1.15
	}

	p = clamp(p, 0.003, 0.25)

	roll := src.NextDouble()
	return Result{Occurred: roll < p}
}

// BounceDirection is the direction a loose ball travels after a fumble.
type BounceDirection int

const (
	BounceBackward BounceDirection = iota
	BounceForward
	BounceSideways
)

func bounceBaseRecovery(dir BounceDirection) float64 {
	switch dir {
	case BounceBackward:
		return 0.50
	case BounceForward:
		return 0.70
	default:
		return 0.60
	}
}

// FumbleRecoveryResult reports which side recovered a loose ball.
type FumbleRecoveryResult struct {
	OutOfBounds      bool
	Bounce           BounceDirection
	OriginalSideRecovers bool // true if the fumbling side recovers its own fumble
}

// FumbleRecovery rolls out-of-bounds first (0.12); failing that, rolls a
// bounce direction, then rolls recovery with a direction-dependent base
// (backward 0.50 / forward 0.70 / sideways 0.60), +/-0.15 for awareness
// differential, clamp [0.30, 0.80]. The losing side of that roll is a
// possession change (FumblePossessionChange, spec §4.4) — reported here
// as OriginalSideRecovers=false.
func FumbleRecovery(src rng.Source, awarenessDiff int) FumbleRecoveryResult {
	if src.NextDouble() < 0.12 {
		return FumbleRecoveryResult{OutOfBounds: true, OriginalSideRecovers: true}
	}

	dir := BounceDirection(src.NextInt(3))
	p := bounceBaseRecovery(dir) + modifier.FromDifferential(awarenessDiff)
	p = clamp(p, 0.30, 0.80)

	roll := src.NextDouble()
	return FumbleRecoveryResult{Bounce: dir, OriginalSideRecovers: roll < p}
}
