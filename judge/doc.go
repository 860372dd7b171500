/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package judge defines the code-quality judge capability and the grading
prompt shared by its implementations.

A judge scores a snippet in [0.0, 1.0] against four equally weighted
criteria (readability, modularity, robustness, maintainability), optionally
weighing correctness against a supplied problem statement. Concrete judges
live in subpackages:

  - claudecli and geminicli shell out to the Claude Code and Gemini CLIs
  - claudeapi and openaiapi call the Anthropic and OpenAI APIs directly

All of them build the same prompt via BuildGradingPrompt and parse the
response through judge/score, so the grader treats them uniformly through
Interface.
*/
package judge
