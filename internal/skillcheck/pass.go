package skillcheck

import (
	"github.com/charleschow/gridiron-sim/internal/modifier"
	"github.com/charleschow/gridiron-sim/internal/rng"
)

// Result is the boolean outcome of a skill check, with an optional
// margin (probability minus roll, scaled) some checks report for
// downstream tie-breaking (spec §4.4: "Margin = (prob - roll) * 100").
type Result struct {
	Occurred bool
	Margin   float64
}

// PassCompletion: base 0.60, -0.20 under pressure, +/-(off-def)/250,
// clamp [0.25, 0.85].
func PassCompletion(src rng.Source, offense, defense int, underPressure bool) Result {
	p := 0.60
	if underPressure {
		p -= 0.20
	}
	p += float64(offense-defense) / 250
	p = clamp(p, 0.25, 0.85)

	roll := src.NextDouble()
	return Result{Occurred: roll < p, Margin: (p - roll) * 100}
}

// InterceptionOccurred: base 0.035, +0.02 under pressure, +modifier(diff)*0.5,
// clamp [0.01, 0.15]. Only rolled when the completion check already
// failed (caller's responsibility, per the documented consumption
// order).
func InterceptionOccurred(src rng.Source, diff int, underPressure bool) Result {
	p := 0.035
	if underPressure {
		p += 0.02
	}
	p += modifier.FromDifferential(diff) * 0.5
	p = clamp(p, 0.01, 0.15)

	roll := src.NextDouble()
	return Result{Occurred: roll < p}
}

// QBPressure: base 0.30, +/-(rush-prot)/250, clamp [0.10, 0.60].
func QBPressure(src rng.Source, rush, protection int) Result {
	p := 0.30 + float64(rush-protection)/250
	p = clamp(p, 0.10, 0.60)

	roll := src.NextDouble()
	return Result{Occurred: roll < p}
}

// PassProtection: base 0.75, +/-(prot-rush)/200, clamp [0.40, 0.95].
// Failure means a sack. Margin = (prob - roll) * 100.
func PassProtection(src rng.Source, protection, rush int) Result {
	p := 0.75 + float64(protection-rush)/200
	p = clamp(p, 0.40, 0.95)

	roll := src.NextDouble()
	return Result{Occurred: roll < p, Margin: (p - roll) * 100}
}

// YACOpportunity: base 0.35, +(skill-70)/400, clamp [0.15, 0.55]; a
// separate big-play roll at 0.05 fires only when speed >= 85, yielding a
// bonus in [10, 30].
type YACResult struct {
	Occurred    bool
	BigPlay     bool
	BonusYards  int
}

// YardsAfterCatch rolls YAC opportunity and, conditionally, a big-play
// bonus. BonusYards is drawn uniformly from [10, 30] only when BigPlay is
// true.
func YardsAfterCatch(src rng.Source, receiverSkill, receiverSpeed int) YACResult {
	p := 0.35 + float64(receiverSkill-70)/400
	p = clamp(p, 0.15, 0.55)

	roll := src.NextDouble()
	res := YACResult{Occurred: roll < p}
	if !res.Occurred {
		return res
	}

	if receiverSpeed >= 85 {
		bigRoll := src.NextDouble()
		if bigRoll < 0.05 {
			res.BigPlay = true
			res.BonusYards = 10 + src.NextInt(21)
		}
	}
	return res
}
