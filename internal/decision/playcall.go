package decision

import (
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/rng"
)

// PlayCall is the decision PlayCallDecisionEngine returns.
type PlayCall int

const (
	CallRun PlayCall = iota
	CallPass
	CallKneel
	CallSpike
)

// TwoPointRunProbability is the default governing the run/pass split on
// two-point conversion attempts (spec §9 "probability-constants table...
// lives here"); config.ProbabilityConstants.Apply may overwrite it.
var TwoPointRunProbability = 0.50

// ShouldKneel reports spec §4.5's kneel-down condition: quarter=4,
// leading, any down, and downs_remaining * 40 >= time_remaining_seconds.
func ShouldKneel(c PlayCallContext) bool {
	if c.Quarter != 4 || !c.Leading {
		return false
	}
	if c.Down == play.DownNone {
		return false
	}
	return float64(c.DownsRemaining()*40) >= c.TimeRemainingSec
}

// ShouldSpike reports spec §4.5's spike condition: quarter=4, trailing,
// time_remaining <= 120, no timeouts, clock running, down in
// {First, Second, Third}.
func ShouldSpike(c PlayCallContext) bool {
	if c.Quarter != 4 || !c.Trailing {
		return false
	}
	if c.TimeRemainingSec > 120 {
		return false
	}
	if c.TimeoutsRemaining != 0 {
		return false
	}
	if !c.ClockRunning {
		return false
	}
	return c.Down == play.First || c.Down == play.Second || c.Down == play.Third
}

// DecidePlayCall chooses Run/Pass/Kneel/Spike. Kneel and Spike are
// checked first (in that order, matching the spec's listed precedence);
// otherwise it's a 50/50 Run vs Pass roll, consuming exactly one RNG
// draw when neither special case applies.
func DecidePlayCall(src rng.Source, c PlayCallContext) PlayCall {
	if ShouldKneel(c) {
		return CallKneel
	}
	if ShouldSpike(c) {
		return CallSpike
	}

	prob := 0.50
	if c.IsTwoPointAttempt {
		prob = TwoPointRunProbability
	}

	if src.NextDouble() < prob {
		return CallRun
	}
	return CallPass
}

// Conversion is the choice DecideConversion returns after a touchdown.
type Conversion int

const (
	ExtraPoint Conversion = iota
	TwoPointConversion
)

// TwoPointConversionProbability is the chance a team goes for two rather
// than kicking the extra point, absent any other signal to the contrary.
var TwoPointConversionProbability = 0.10

// DecideConversion returns TwoPointConversion with probability 0.10,
// else ExtraPoint.
func DecideConversion(src rng.Source) Conversion {
	if src.NextDouble() < TwoPointConversionProbability {
		return TwoPointConversion
	}
	return ExtraPoint
}
