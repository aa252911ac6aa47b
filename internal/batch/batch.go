// Package batch is the concurrent multi-game runner (SPEC_FULL §5), not
// itself named in spec.md: a thin wrapper for a caller driving many
// SimulateGame calls at once, grounded on the teacher's
// internal/core/ticker/resolver.go (singleflight-coalesced resolution)
// and internal/adapters/kalshi_http/client.go (rate-limited outbound
// calls).
package batch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/charleschow/gridiron-sim/internal/config"
	"github.com/charleschow/gridiron-sim/internal/engine"
	"github.com/charleschow/gridiron-sim/internal/play"
	"github.com/charleschow/gridiron-sim/internal/player"
	"github.com/charleschow/gridiron-sim/internal/telemetry"
)

// Runner drives many SimulateGame calls concurrently, coalescing
// identical concurrent requests and optionally pacing how fast new
// games are launched.
//
// Coalescing is keyed on (seed, ruleset selection, roster identity): two
// callers asking for the exact same matchup/seed/options share one
// simulation's result rather than both paying to compute it, the same
// shape as the teacher's ticker resolver collapsing duplicate concurrent
// lookups for the same symbol.
type Runner struct {
	group   singleflight.Group
	limiter *rate.Limiter
}

// New constructs a Runner. A nil limiter means unpaced: every Run call
// launches its simulation immediately once its singleflight turn comes
// up.
func New(limiter *rate.Limiter) *Runner {
	return &Runner{limiter: limiter}
}

// Run simulates one game, coalescing with any other in-flight Run call
// for the identical (home, away, opts) key. If a Limiter was configured,
// the call blocks until the limiter admits it (or ctx is cancelled)
// before the first caller for a given key actually launches the
// simulation; callers that join an in-flight key via coalescing never
// wait on the limiter themselves.
func (r *Runner) Run(ctx context.Context, home, away *player.Team, opts config.Options) (*engine.GameResult, error) {
	key := cacheKey(home, away, opts)

	telemetry.Metrics.ActiveGames.Inc()
	defer telemetry.Metrics.ActiveGames.Dec()

	v, err, _ := r.group.Do(key, func() (any, error) {
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("batch: rate limiter: %w", err)
			}
		}
		start := time.Now()
		result, err := engine.SimulateGame(home, away, opts)
		telemetry.Metrics.GameDuration.Record(time.Since(start))
		if err != nil {
			return nil, err
		}
		recordResultMetrics(result)
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*engine.GameResult), nil
}

// recordResultMetrics folds one finished game's counts into the package
// metrics registry (SPEC_FULL §2.1), giving a long-running batch caller
// something to sample besides the per-call return value.
func recordResultMetrics(result *engine.GameResult) {
	telemetry.Metrics.GamesSimulated.Inc()
	telemetry.Metrics.PlaysSimulated.Add(int64(len(result.Plays)))
	for _, p := range result.Plays {
		if p.IsTouchdown {
			telemetry.Metrics.Touchdowns.Inc()
		}
		if p.PossessionChange && (p.Type == play.TypeRun || p.Type == play.TypePass) {
			telemetry.Metrics.Turnovers.Inc()
		}
		if len(p.Fumbles) > 0 {
			telemetry.Metrics.Fumbles.Add(int64(len(p.Fumbles)))
		}
		if p.Type == play.TypeFieldGoal && p.Kick != nil {
			if p.Kick.Good {
				telemetry.Metrics.FieldGoalsMade.Inc()
			} else {
				telemetry.Metrics.FieldGoalsMissed.Inc()
			}
		}
	}
}

// Request is one matchup for RunMany to simulate: the two rosters and
// the Options passed to SimulateGame. A failed request's slot in
// RunMany's result slice is left nil.
type Request struct {
	Home, Away *player.Team
	Options    config.Options
}

// RunMany fans Requests out across goroutines (bounded only by the
// Runner's own singleflight coalescing and optional rate limiter, not by
// an additional worker pool — SPEC_FULL §5 describes this as a thin
// wrapper, not a scheduler). The returned slice has one entry per
// request, in the same order; a request that errored leaves its slot
// nil, and only the first error received is returned.
func (r *Runner) RunMany(ctx context.Context, requests []Request) ([]*engine.GameResult, error) {
	results := make([]*engine.GameResult, len(requests))
	errs := make([]error, len(requests))

	done := make(chan int, len(requests))
	for i, req := range requests {
		i, req := i, req
		go func() {
			res, err := r.Run(ctx, req.Home, req.Away, req.Options)
			results[i] = res
			errs[i] = err
			done <- i
		}()
	}

	var firstErr error
	for range requests {
		i := <-done
		if errs[i] != nil && firstErr == nil {
			firstErr = fmt.Errorf("batch: request %d: %w", i, errs[i])
		}
	}
	return results, firstErr
}

// cacheKey fingerprints a simulation request for singleflight coalescing:
// the seed and ruleset selection plus a cheap positional roster identity
// (city/name/position, not full attribute ratings — two distinct rosters
// that happen to share every name and position would incorrectly
// coalesce, a documented tradeoff for a batch convenience wrapper, not
// the correctness-critical engine itself).
func cacheKey(home, away *player.Team, opts config.Options) string {
	return fmt.Sprintf("%d|%s|%s|%s|%s|%s|%d",
		opts.RandomSeed, opts.OvertimeRules, opts.TwoMinuteWarningRules, opts.EndOfHalfRules,
		rosterFingerprint(home), rosterFingerprint(away), opts.MaxPlays)
}

func rosterFingerprint(t *player.Team) string {
	if t == nil {
		return ""
	}
	s := t.City + "/" + t.Name
	for _, p := range t.Roster {
		s += "," + string(p.Position) + ":" + p.FirstName + " " + p.LastName
	}
	return s
}
