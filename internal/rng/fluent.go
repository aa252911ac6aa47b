package rng

// FluentRNG is the scripted test double named in spec §4.1: it replays a
// fixed sequence of doubles (and, for NextInt, a fixed sequence of ints)
// so a test can pin exactly which branch a skill check or decision engine
// takes without reverse-engineering a seed. Exported (not test-only)
// because it is part of the documented test-harness contract, used across
// internal/mechanics, internal/decision, and internal/skillcheck tests.
type FluentRNG struct {
	doubles []float64
	ints    []int
	di, ii  int
}

// NewFluent builds a FluentRNG that replays doubles in order for every
// NextDouble call and ints in order for every NextInt call.
func NewFluent(doubles []float64, ints []int) *FluentRNG {
	return &FluentRNG{doubles: doubles, ints: ints}
}

// NextDouble returns the next scripted double. Panics on exhaustion — a
// test that under-scripts its RNG consumption has a bug worth surfacing
// immediately rather than silently wrapping or returning zero.
func (f *FluentRNG) NextDouble() float64 {
	if f.di >= len(f.doubles) {
		panic("rng: FluentRNG exhausted its scripted doubles")
	}
	v := f.doubles[f.di]
	f.di++
	return v
}

// NextInt returns the next scripted int, ignoring upperExclusive (the
// caller is expected to have scripted a value already in range).
func (f *FluentRNG) NextInt(upperExclusive int) int {
	if f.ii >= len(f.ints) {
		panic("rng: FluentRNG exhausted its scripted ints")
	}
	v := f.ints[f.ii]
	f.ii++
	return v
}

// Remaining reports how many scripted doubles/ints were never consumed —
// used by tests asserting the documented RNG-consumption order for a
// mechanic or decision engine (e.g. OnsideKickDecisionEngine must consume
// zero draws when the trailing precondition fails).
func (f *FluentRNG) Remaining() (doubles, ints int) {
	return len(f.doubles) - f.di, len(f.ints) - f.ii
}
