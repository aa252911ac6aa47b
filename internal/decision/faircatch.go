package decision

// FairCatchProbability computes FairCatchDecisionEngine's probability
// (spec §4.5): base 0.25, +0.15 at hang > 4.5, +0.10 at > 4.0, +0.20
// inside own 10, +0.10 inside own 20, +0.05 on kickoffs.
func FairCatchProbability(c FairCatchContext) float64 {
	p := 0.25

	switch {
	case c.HangTime > 4.5:
		p += 0.15
	case c.HangTime > 4.0:
		p += 0.10
	}

	switch {
	case c.FieldPosition <= 10:
		p += 0.20
	case c.FieldPosition <= 20:
		p += 0.10
	}

	if c.IsKickoff {
		p += 0.05
	}

	if p > 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}
	return p
}
