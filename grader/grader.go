/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package grader

import (
	"context"
	"strconv"
	"sync"
	"time"

	"chainguard.dev/codequal/grader/fingerprint"
	"chainguard.dev/codequal/grader/sampler"
	"chainguard.dev/codequal/judge"
	"chainguard.dev/codequal/judge/score"
	"chainguard.dev/codequal/metrics"
	"github.com/chainguard-dev/clog"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Grader dispatches code-quality grading requests to a judge, shielding it
// behind a fingerprint-keyed LRU cache and a sampling gate.
//
// A single mutex guards the cache, the sampler's RNG, and the stats; the
// judge call itself always runs outside it, so one slow grading never blocks
// other callers from hitting the cache or being sampled out. Multiple Graders
// are independent: each owns its cache, sampler, and stats.
type Grader struct {
	judge        judge.Interface
	defaultScore float64

	mu      sync.Mutex
	cache   *lru.Cache[uint64, float64]
	sampler *sampler.Sampler
	stats   Stats

	// flights is nil unless WithCoalescing was given; concurrent first-time
	// requests for the same fingerprint then share one judge call.
	flights *singleflight.Group

	metrics *metrics.Grading
}

// New creates a Grader around the given judge. Invalid options surface here,
// never at grading time.
func New(j judge.Interface, opts ...Option) (*Grader, error) {
	g, err := newGrader(j, opts...)
	if err != nil {
		return nil, err
	}

	g.metrics = metrics.NewGrading("chainguard.ai.codequal")
	return g, nil
}

// Grade scores a code snippet in [0.0, 1.0]. question optionally supplies
// the problem statement the code was written against; pass "" for none.
//
// Grade never fails: a request skipped by sampling or a judge failure yields
// the configured default score. Failures and skips are not cached, so a
// later request for the same code still gets a real chance at a score.
func (g *Grader) Grade(ctx context.Context, code, question string) float64 {
	g.metrics.RecordRequest(ctx)
	fp := fingerprint.Hash(code)

	g.mu.Lock()
	g.stats.TotalRequests++

	if cached, ok := g.cache.Get(fp); ok {
		g.stats.CacheHits++
		g.mu.Unlock()
		g.metrics.RecordCacheHit(ctx)
		return cached
	}

	if !g.sampler.Sample() {
		g.stats.SampledOut++
		g.mu.Unlock()
		g.metrics.RecordSampledOut(ctx)
		return g.defaultScore
	}
	g.mu.Unlock()

	// The judge is slow; everything from here on runs outside the lock.
	graded, err := g.invoke(ctx, fp, code, question)
	if err != nil {
		clog.FromContext(ctx).Warnf("grading failed: %v", err)
		return g.defaultScore
	}

	g.mu.Lock()
	g.cache.Add(fp, graded)
	g.mu.Unlock()
	return graded
}

// invoke calls the judge, clamping the result into range. With coalescing
// enabled, concurrent callers for the same fingerprint share a single call
// and the judge-call counter reflects executed calls only.
func (g *Grader) invoke(ctx context.Context, fp uint64, code, question string) (float64, error) {
	call := func() (float64, error) {
		g.mu.Lock()
		g.stats.JudgeCalls++
		g.mu.Unlock()

		start := time.Now()
		graded, err := g.judge.Grade(ctx, code, question)
		g.metrics.RecordJudgeCall(ctx, time.Since(start), err)
		if err != nil {
			return 0, err
		}
		return score.Clamp(graded), nil
	}

	if g.flights == nil {
		return call()
	}

	v, err, _ := g.flights.Do(strconv.FormatUint(fp, 16), func() (any, error) {
		return call()
	})
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}

// Stats returns a consistent snapshot of the running counters.
func (g *Grader) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stats
}

// LogStats logs the current statistics summary.
func (g *Grader) LogStats(ctx context.Context) {
	clog.FromContext(ctx).Infof("%s", g.Stats())
}
