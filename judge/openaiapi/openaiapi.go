/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package openaiapi implements a code-quality judge over the OpenAI API.
package openaiapi

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/codequal/judge"
	"chainguard.dev/codequal/judge/score"
	"github.com/openai/openai-go"
)

const defaultModel = openai.ChatModelGPT4o

// api implements judge.Interface using the OpenAI chat completions API
type api struct {
	client      openai.Client
	model       openai.ChatModel
	temperature float64
}

// Option is a functional option for configuring the judge
type Option func(*api) error

// WithClient replaces the default client, which authenticates from the
// environment (OPENAI_API_KEY).
func WithClient(client openai.Client) Option {
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
		a.model = openai.ChatModel(model)
		return nil
	}
}

// New creates an OpenAI API judge.
func New(opts ...Option) (judge.Interface, error) {
	a := &api{
		client:      openai.NewClient(),
		model:       defaultModel,
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

	completion, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: a.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(a.temperature),
	})
	if err != nil {
		return 0, fmt.Errorf("calling OpenAI API: %w", err)
	}
	if len(completion.Choices) == 0 {
		return 0, errors.New("no choices in judge response")
	}

	v, err := score.Parse(completion.Choices[0].Message.Content)
	if err != nil {
		return 0, err
	}
	return score.Clamp(v), nil
}
