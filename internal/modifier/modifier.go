// Package modifier implements the logarithmic attribute-skill curve used
// throughout the engine to turn a rating or a rating differential into a
// bounded +/- multiplier.
package modifier

import "math"

// Baseline is the default rating baseline (spec §4.2).
const Baseline = 50

// coefficient is the 0.15 scale factor from the spec formula.
const coefficient = 0.15

// FromRating returns sign(R-B) * log(1 + |R-B|/10) * 0.15 for rating R
// against baseline B.
func FromRating(rating, baseline int) float64 {
	return FromDifferential(rating - baseline)
}

// FromBaseline is FromRating against the default baseline of 50.
func FromBaseline(rating int) float64 {
	return FromRating(rating, Baseline)
}

// FromDifferential returns sign(D) * log(1 + |D|/10) * 0.15 for a
// differential D supplied directly (e.g. carrier rating minus tackler
// rating). Clamped to +/-1000 before evaluation so pathological inputs
// can never overflow the log.
func FromDifferential(diff int) float64 {
	if diff > 1000 {
		diff = 1000
	} else if diff < -1000 {
		diff = -1000
	}

	if diff == 0 {
		return 0
	}

	sign := 1.0
	d := float64(diff)
	if d < 0 {
		sign = -1.0
		d = -d
	}

	return sign * math.Log(1+d/10) * coefficient
}
