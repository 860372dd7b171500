/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package grader

import "fmt"

// Stats holds the Grader's process-lifetime counters. Counters only grow;
// the derived rates are computed on read, never stored.
type Stats struct {
	// TotalRequests counts every Grade call.
	TotalRequests int64

	// CacheHits counts requests served from the score cache.
	CacheHits int64

	// SampledOut counts uncached requests skipped by the sampling gate.
	SampledOut int64

	// JudgeCalls counts judge invocations.
	JudgeCalls int64
}

// CacheHitRate returns the fraction of requests served from cache.
func (s Stats) CacheHitRate() float64 {
	if s.TotalRequests == 0 {
		return 0.0
	}
	return float64(s.CacheHits) / float64(s.TotalRequests)
}

// JudgeCallRate returns the fraction of requests that reached the judge.
func (s Stats) JudgeCallRate() float64 {
	if s.TotalRequests == 0 {
		return 0.0
	}
	return float64(s.JudgeCalls) / float64(s.TotalRequests)
}

// String returns a one-line summary suitable for logging.
func (s Stats) String() string {
	return fmt.Sprintf("grader stats: %d requests, %d judge calls (%.1f%%), %d cache hits (%.1f%%), %d sampled out",
		s.TotalRequests, s.JudgeCalls, s.JudgeCallRate()*100,
		s.CacheHits, s.CacheHitRate()*100, s.SampledOut)
}
