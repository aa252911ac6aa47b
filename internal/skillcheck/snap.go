package skillcheck

import "github.com/charleschow/gridiron-sim/internal/rng"

// BadSnap: base 0.05, minus snapper.Blocking/100 * 0.04. Disallowed on
// kickoffs (the caller simply never invokes this for a kickoff mechanic).
func BadSnap(src rng.Source, snapperBlocking int) Result {
	p := 0.05 - float64(snapperBlocking)/100*0.04
	if p < 0 {
		p = 0
	}

	roll := src.NextDouble()
	return Result{Occurred: roll < p}
}

// MuffedCatch: base 0.05, minus catching/100*0.04, +0.02 if hang time >
// 4.5s, +0.01 if > 4.0s.
func MuffedCatch(src rng.Source, catching int, hangTime float64) Result {
	p := 0.05 - float64(catching)/100*0.04
	switch {
	case hangTime > 4.5:
		p += 0.02
	case hangTime > 4.0:
		p += 0.01
	}
	if p < 0 {
		p = 0
	}

	roll := src.NextDouble()
	return Result{Occurred: roll < p}
}
