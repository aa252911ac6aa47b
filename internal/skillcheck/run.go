package skillcheck

import (
	"github.com/charleschow/gridiron-sim/internal/modifier"
	"github.com/charleschow/gridiron-sim/internal/rng"
)

// BigRun: base 0.08, +modifier(speed-70), clamp [0.03, 0.15].
func BigRun(src rng.Source, carrierSpeed int) Result {
	p := 0.08 + modifier.FromDifferential(carrierSpeed-70)
	p = clamp(p, 0.03, 0.15)

	roll := src.NextDouble()
	return Result{Occurred: roll < p}
}

// TackleBreak: base 0.25, +/-(carrier-tackler)/250, clamp [0.05, 0.50].
func TackleBreak(src rng.Source, carrierRating, tacklerRating int) Result {
	p := 0.25 + float64(carrierRating-tacklerRating)/250
	p = clamp(p, 0.05, 0.50)

	roll := src.NextDouble()
	return Result{Occurred: roll < p}
}

// BlockingSuccess: base 0.50, +/-(block-defense)/200 run through the
// log-modifier curve, clamp [0.20, 0.80].
func BlockingSuccess(src rng.Source, blockRating, defenseRating int) Result {
	p := 0.50 + modifier.FromDifferential(blockRating-defenseRating)
	p = clamp(p, 0.20, 0.80)

	roll := src.NextDouble()
	return Result{Occurred: roll < p}
}
