/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package claudeapi implements a code-quality judge over the Anthropic API.
package claudeapi

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/codequal/judge"
	"chainguard.dev/codequal/judge/score"
	"github.com/anthropics/anthropic-sdk-go"
)

const (
	defaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 1024
)

// api implements judge.Interface using the Anthropic messages API
type api struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
}

// Option is a functional option for configuring the judge
type Option func(*api) error

// WithClient replaces the default client, which authenticates from the
// environment (ANTHROPIC_API_KEY).
func WithClient(client anthropic.Client) Option {
	return func(a *api) error {
		a.client = client
		return nil
	}
}

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(a *api) error {
		if model == "" {
			return errors.New("model cannot be empty")
		}
		a.model = model
		return nil
	}
}

// WithMaxTokens sets the response token budget. The expected response is a
// single small JSON object, so the default is deliberately low.
func WithMaxTokens(tokens int64) Option {
	return func(a *api) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		a.maxTokens = tokens
		return nil
	}
}

// New creates an Anthropic API judge.
func New(opts ...Option) (judge.Interface, error) {
	a := &api{
		client:      anthropic.NewClient(),
		model:       defaultModel,
		maxTokens:   defaultMaxTokens,
		temperature: 0.1, // low temperature for stable scoring
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return a, nil
}

// Grade implements judge.Interface.
func (a *api) Grade(ctx context.Context, code, question string) (float64, error) {
	prompt, err := judge.BuildGradingPrompt(code, question)
	if err != nil {
		return 0, fmt.Errorf("building grading prompt: %w", err)
	}

	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   a.maxTokens,
		Temperature: anthropic.Float(a.temperature),
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(prompt),
			},
		}},
	})
	if err != nil {
		return 0, fmt.Errorf("calling Anthropic API: %w", err)
	}

	var text string
	for _, content := range message.Content {
		if content.Type == "text" {
			text = content.Text
		}
	}
	if text == "" {
		return 0, errors.New("no text content in judge response")
	}

	v, err := score.Parse(text)
	if err != nil {
		return 0, err
	}
	return score.Clamp(v), nil
}
