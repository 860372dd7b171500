/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package sampler provides the probabilistic gate that decides whether an
// uncached grading request is worth an expensive judge call.
package sampler

import (
	"fmt"
	"math/rand/v2"
)

// Sampler draws one uniform value per decision and samples in with the
// configured probability.
//
// Sampler is not internally synchronized. The grader guards it with the same
// lock that protects its cache and stats.
type Sampler struct {
	rate float64
	rng  *rand.Rand
}

// New creates a Sampler seeded from process entropy.
func New(rate float64) (*Sampler, error) {
	return NewSeeded(rate, int64(rand.Uint64()))
}

// NewSeeded creates a deterministic Sampler: the same seed and call sequence
// reproduce the same decisions across runs.
func NewSeeded(rate float64, seed int64) (*Sampler, error) {
	if rate < 0.0 || rate > 1.0 {
		return nil, fmt.Errorf("sample rate must be between 0.0 and 1.0, got %f", rate)
	}
	return &Sampler{
		rate: rate,
		rng:  rand.New(rand.NewPCG(uint64(seed), 0)),
	}, nil
}

// Sample reports whether this request should be graded. A rate of 1.0 never
// skips and 0.0 always skips: Float64 is in [0, 1), so the comparison is
// exact at both boundaries while still consuming one draw per call.
func (s *Sampler) Sample() bool {
	return s.rng.Float64() < s.rate
}

// Rate returns the configured sampling probability.
func (s *Sampler) Rate() float64 {
	return s.rate
}
