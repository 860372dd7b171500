/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package grader

import (
	"errors"
	"fmt"

	"chainguard.dev/codequal/grader/sampler"
	"chainguard.dev/codequal/judge"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

const (
	defaultSampleRate    = 1.0
	defaultCacheCapacity = 10000
	defaultDefaultScore  = 0.0
)

// Option is a functional option for configuring the Grader
type Option func(*settings) error

// settings collects construction parameters before the Grader is assembled
type settings struct {
	sampleRate    float64
	cacheCapacity int
	defaultScore  float64
	seed          *int64
	coalesce      bool
}

// WithSampleRate sets the probability that an uncached request is actually
// graded. 1.0 grades everything; 0.0 grades nothing.
func WithSampleRate(rate float64) Option {
	return func(s *settings) error {
		if rate < 0.0 || rate > 1.0 {
			return fmt.Errorf("sample rate must be between 0.0 and 1.0, got %f", rate)
		}
		s.sampleRate = rate
		return nil
	}
}

// WithCacheCapacity sets the maximum number of cached scores.
func WithCacheCapacity(capacity int) Option {
	return func(s *settings) error {
		if capacity <= 0 {
			return fmt.Errorf("cache capacity must be positive, got %d", capacity)
		}
		s.cacheCapacity = capacity
		return nil
	}
}

// WithDefaultScore sets the score returned when a request is sampled out or
// the judge fails. It must stay within the grading range so Grade keeps its
// [0, 1] guarantee on the degrade path.
func WithDefaultScore(v float64) Option {
	return func(s *settings) error {
		if v < 0.0 || v > 1.0 {
			return fmt.Errorf("default score must be between 0.0 and 1.0, got %f", v)
		}
		s.defaultScore = v
		return nil
	}
}

// WithSeed makes sampling decisions reproducible across runs given the same
// request sequence. Without it the sampler seeds from process entropy.
func WithSeed(seed int64) Option {
	return func(s *settings) error {
		s.seed = &seed
		return nil
	}
}

// WithCoalescing deduplicates concurrent judge calls for the same
// fingerprint: one call executes and the rest wait for its result. Off by
// default - concurrent first-time requests each invoke the judge, and the
// last result cached wins.
func WithCoalescing() Option {
	return func(s *settings) error {
		s.coalesce = true
		return nil
	}
}

// newGrader validates options and assembles the shared state.
func newGrader(j judge.Interface, opts ...Option) (*Grader, error) {
	if j == nil {
		return nil, errors.New("judge cannot be nil")
	}

	s := &settings{
		sampleRate:    defaultSampleRate,
		cacheCapacity: defaultCacheCapacity,
		defaultScore:  defaultDefaultScore,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	cache, err := lru.New[uint64, float64](s.cacheCapacity)
	if err != nil {
		return nil, fmt.Errorf("creating score cache: %w", err)
	}

	var smp *sampler.Sampler
	if s.seed != nil {
		smp, err = sampler.NewSeeded(s.sampleRate, *s.seed)
	} else {
		smp, err = sampler.New(s.sampleRate)
	}
	if err != nil {
		return nil, fmt.Errorf("creating sampler: %w", err)
	}

	g := &Grader{
		judge:        j,
		defaultScore: s.defaultScore,
		cache:        cache,
		sampler:      smp,
	}
	if s.coalesce {
		g.flights = &singleflight.Group{}
	}
	return g, nil
}
