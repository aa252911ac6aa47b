package decision

import "github.com/charleschow/gridiron-sim/internal/rng"

// KickoffCall is the decision OnsideKickDecisionEngine returns.
type KickoffCall int

const (
	NormalKickoff KickoffCall = iota
	OnsideKick
)

// OnsideKickProbability is the chance of an onside attempt once the
// trailing precondition is met.
var OnsideKickProbability = 0.05

// DecideOnsideKick returns NormalKickoff unless trailing by >= 7, in
// which case it rolls OnsideKick at 5%. Must not consume the RNG when
// the trailing precondition fails (spec §8 testable property, invariant
// 6) — the early return below guarantees that.
func DecideOnsideKick(src rng.Source, c OnsideKickContext) KickoffCall {
	if !c.IsTrailingByOneScore() {
		return NormalKickoff
	}
	if src.NextDouble() < OnsideKickProbability {
		return OnsideKick
	}
	return NormalKickoff
}
