/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package claudecli implements a code-quality judge over the Claude Code CLI.
package claudecli

import (
	"context"
	"fmt"

	"chainguard.dev/codequal/judge"
	"chainguard.dev/codequal/judge/cliexecutor"
	"chainguard.dev/codequal/judge/score"
)

const defaultBinary = "claude"

// Runner abstracts the one-shot CLI invocation. *cliexecutor.Executor
// satisfies it; tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// cli implements judge.Interface using the Claude Code CLI
type cli struct {
	binary string
	model  string
	runner Runner
}

// Option is a functional option for configuring the judge
type Option func(*cli) error

// WithBinary overrides the CLI binary name or path.
func WithBinary(binary string) Option {
	return func(c *cli) error {
		if binary == "" {
			return fmt.Errorf("binary cannot be empty")
		}
		c.binary = binary
		return nil
	}
}

// WithModel passes --model to the CLI instead of its configured default.
func WithModel(model string) Option {
	return func(c *cli) error {
		c.model = model
		return nil
	}
}

// WithRunner replaces the process-spawning executor entirely.
func WithRunner(r Runner) Option {
	return func(c *cli) error {
		if r == nil {
			return fmt.Errorf("runner cannot be nil")
		}
		c.runner = r
		return nil
	}
}

// New creates a Claude CLI judge.
func New(opts ...Option) (judge.Interface, error) {
	c := &cli{binary: defaultBinary}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if c.runner == nil {
		exec, err := cliexecutor.New(c.binary)
		if err != nil {
			return nil, err
		}
		c.runner = exec
	}
	return c, nil
}

// Grade implements judge.Interface.
// The CLI is invoked in single-shot print mode (-p) with text output so the
// whole response arrives on stdout.
func (c *cli) Grade(ctx context.Context, code, question string) (float64, error) {
	prompt, err := judge.BuildGradingPrompt(code, question)
	if err != nil {
		return 0, fmt.Errorf("building grading prompt: %w", err)
	}

	args := []string{"-p", prompt, "--output-format", "text"}
	if c.model != "" {
		args = append(args, "--model", c.model)
	}

	raw, err := c.runner.Run(ctx, args...)
	if err != nil {
		return 0, err
	}

	v, err := score.Parse(raw)
	if err != nil {
		return 0, err
	}
	return score.Clamp(v), nil
}
