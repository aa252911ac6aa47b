package decision

import "github.com/charleschow/gridiron-sim/internal/play"

// DecidePenalty is PenaltyDecisionEngine (spec §4.5). Always accepts the
// fixed automatic-first-down enumeration. Otherwise compares the
// accept/decline yardage-and-down outcome: on a defensive penalty,
// accept if the penalty yardage is at least the play's yardage or the
// play didn't gain a first down; decline if the play already scored. On
// an offensive penalty the defense decides: accept if the play's result
// favored the offense; decline if declining yields a turnover on downs.
//
// Deterministic given the context alone — no RNG is consumed, since
// spec §4.5 describes this engine as comparing concrete universes, not
// rolling a probability.
func DecidePenalty(c PenaltyDecisionContext) bool {
	if play.AutomaticFirstDownPenalties[c.Penalty.Name] {
		return true
	}

	if c.Penalty.CalledOn == c.OffensePossession {
		return c.decideOffensivePenalty()
	}
	return c.decideDefensivePenalty()
}

func (c PenaltyDecisionContext) decideDefensivePenalty() bool {
	if c.PlayScored {
		return false
	}
	if c.Penalty.Yards >= c.PlayYardsGained || !c.PlayGainedFirstDown {
		return true
	}
	return false
}

func (c PenaltyDecisionContext) decideOffensivePenalty() bool {
	favoredOffense := c.PlayYardsGained > 0 || c.PlayScored || c.PlayGainedFirstDown
	if favoredOffense {
		return true
	}
	if c.DeclineYieldsTurnoverOnDowns {
		return false
	}
	return true
}
