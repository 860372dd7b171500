/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main grades source files for quality using a configured judge.
//
// Usage: gradecode FILE [FILE...]
//
// Configuration is environment-driven; see the config struct. With
// SAMPLE_RATE below 1.0 only a fraction of distinct snippets reach the
// judge, the rest score DEFAULT_SCORE.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chainguard.dev/codequal/grader"
	"chainguard.dev/codequal/judge"
	"chainguard.dev/codequal/judge/claudeapi"
	"chainguard.dev/codequal/judge/claudecli"
	"chainguard.dev/codequal/judge/geminicli"
	"chainguard.dev/codequal/judge/openaiapi"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
)

type config struct {
	// Judge selects the backend: claude-cli, gemini-cli, claude-api, openai-api.
	Judge string `env:"JUDGE,default=claude-cli"`
	Model string `env:"MODEL"`

	SampleRate    float64 `env:"SAMPLE_RATE,default=1.0"`
	CacheCapacity int     `env:"CACHE_CAPACITY,default=10000"`
	DefaultScore  float64 `env:"DEFAULT_SCORE,default=0.0"`
	Seed          *int64  `env:"SEED"`
	Coalesce      bool    `env:"COALESCE,default=false"`

	// Question optionally supplies the problem statement the graded code
	// was written against.
	Question string `env:"QUESTION"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	if len(os.Args) < 2 {
		clog.FatalContextf(ctx, "usage: %s FILE [FILE...]", os.Args[0])
	}

	j, err := newJudge(cfg)
	if err != nil {
		clog.FatalContextf(ctx, "creating judge: %v", err)
	}

	opts := []grader.Option{
		grader.WithSampleRate(cfg.SampleRate),
		grader.WithCacheCapacity(cfg.CacheCapacity),
		grader.WithDefaultScore(cfg.DefaultScore),
	}
	if cfg.Seed != nil {
		opts = append(opts, grader.WithSeed(*cfg.Seed))
	}
	if cfg.Coalesce {
		opts = append(opts, grader.WithCoalescing())
	}

	g, err := grader.New(j, opts...)
	if err != nil {
		clog.FatalContextf(ctx, "creating grader: %v", err)
	}

	for _, path := range os.Args[1:] {
		code, err := os.ReadFile(path)
		if err != nil {
			clog.FatalContextf(ctx, "reading %s: %v", path, err)
		}
		fmt.Printf("%s: %.3f\n", path, g.Grade(ctx, string(code), cfg.Question))
	}

	g.LogStats(ctx)
}

// newJudge constructs the configured judge backend.
func newJudge(cfg config) (judge.Interface, error) {
	switch cfg.Judge {
	case "claude-cli":
		var opts []claudecli.Option
		if cfg.Model != "" {
			opts = append(opts, claudecli.WithModel(cfg.Model))
		}
		return claudecli.New(opts...)
	case "gemini-cli":
		var opts []geminicli.Option
		if cfg.Model != "" {
			opts = append(opts, geminicli.WithModel(cfg.Model))
		}
		return geminicli.New(opts...)
	case "claude-api":
		var opts []claudeapi.Option
		if cfg.Model != "" {
			opts = append(opts, claudeapi.WithModel(cfg.Model))
		}
		return claudeapi.New(opts...)
	case "openai-api":
		var opts []openaiapi.Option
		if cfg.Model != "" {
			opts = append(opts, openaiapi.WithModel(cfg.Model))
		}
		return openaiapi.New(opts...)
	default:
		return nil, fmt.Errorf("unknown judge %q", cfg.Judge)
	}
}
