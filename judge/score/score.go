/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package score parses numeric quality scores out of judge output.
//
// Judges are instructed to respond with exactly one {"score": <float>} object
// but are unreliable about it, so parsing cascades from strict to lenient:
//
//  1. the whole output as a single JSON object with a "score" field
//  2. the first {..."score"...} substring, parsed as JSON
//  3. a bare numeric literal after a "score": token
//
// The order is load-bearing: the later strategies are looser and could
// misparse output that the earlier ones read exactly right.
package score

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	objectPattern = regexp.MustCompile(`\{[^{}]*"score"[^{}]*\}`)
	tokenPattern  = regexp.MustCompile(`"score"\s*:\s*(-?[0-9]+(?:\.[0-9]+)?)`)
)

// ParseError indicates that no fallback strategy could coerce the judge's
// output into a score. It carries the raw output for diagnostics.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse score from judge output: %q", e.Raw)
}

// Parse extracts a score from raw judge output using the fallback chain.
// The returned value is not clamped; see Clamp.
func Parse(raw string) (float64, error) {
	if v, ok := fromJSON(raw); ok {
		return v, nil
	}

	if m := objectPattern.FindString(raw); m != "" {
		if v, ok := fromJSON(m); ok {
			return v, nil
		}
	}

	if m := tokenPattern.FindStringSubmatch(raw); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, nil
		}
	}

	return 0, &ParseError{Raw: raw}
}

// Clamp bounds a score to [0.0, 1.0]. Judges occasionally ignore the
// requested range; out-of-range values are clamped by policy, not rejected.
func Clamp(v float64) float64 {
	switch {
	case v < 0.0:
		return 0.0
	case v > 1.0:
		return 1.0
	default:
		return v
	}
}

// fromJSON parses s as a JSON object and coerces its "score" field.
// Judges sometimes quote the number, so string values are accepted too.
func fromJSON(s string) (float64, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &obj); err != nil {
		return 0, false
	}
	v, ok := obj["score"]
	if !ok {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
