/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package score_test

import (
	"errors"
	"strings"
	"testing"

	"chainguard.dev/codequal/judge/score"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{{
		name: "clean JSON object",
		raw:  `{"score": 0.73}`,
		want: 0.73,
	}, {
		name: "JSON embedded in prose",
		raw:  `Sure! Here you go: {"score": 0.73} Thanks.`,
		want: 0.73,
	}, {
		name: "score quoted as string",
		raw:  `{"score": "0.9"}`,
		want: 0.9,
	}, {
		name: "bare token in noise",
		raw:  `the model replied with "score": 1.7 and some commentary`,
		want: 1.7,
	}, {
		name: "markdown fenced object",
		raw:  "```json\n{\"score\": 0.4}\n```",
		want: 0.4,
	}, {
		name: "extra keys",
		raw:  `{"score": 0.55, "reasoning": "fine"}`,
		want: 0.55,
	}, {
		name: "integer score",
		raw:  `{"score": 1}`,
		want: 1.0,
	}, {
		name: "leading whitespace",
		raw:  "\n\n  {\"score\": 0.2}\n",
		want: 0.2,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := score.Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseFailure(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{{
		name: "no score anywhere",
		raw:  "I cannot grade this code.",
	}, {
		name: "empty output",
		raw:  "",
	}, {
		name: "score key without number",
		raw:  `{"score": "excellent"}`,
	}, {
		name: "unrelated JSON",
		raw:  `{"grade": 0.5}`,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := score.Parse(tt.raw)
			if err == nil {
				t.Fatalf("Parse(%q): got nil error, wanted ParseError", tt.raw)
			}
			var parseErr *score.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse(%q): got %T, wanted *score.ParseError", tt.raw, err)
			}
			if parseErr.Raw != tt.raw {
				t.Errorf("ParseError.Raw = %q, want %q", parseErr.Raw, tt.raw)
			}
		})
	}
}

// The strict strategy must win when the whole output is valid JSON, even if
// looser patterns would also match inside it.
func TestParseStrictFirst(t *testing.T) {
	raw := `{"score": 0.25, "note": "earlier draft scored \"score\": 0.99"}`
	got, err := score.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if want := 0.25; got != want {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := score.Parse("garbage")
	if err == nil {
		t.Fatal("wanted error")
	}
	if !strings.Contains(err.Error(), "garbage") {
		t.Errorf("error %q does not carry raw output", err.Error())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0.0},
		{0.0, 0.0},
		{0.5, 0.5},
		{1.0, 1.0},
		{1.7, 1.0},
	}

	for _, tt := range tests {
		if got := score.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
