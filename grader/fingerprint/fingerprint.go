/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package fingerprint collapses source-code snippets into canonical hashes so
// near-identical submissions (differing only in comments or whitespace) share
// a cache entry.
//
// Normalization is a regex heuristic, not a tokenizer: it can over-strip a
// comment marker inside a string literal and under-strip pathological nesting.
// That is acceptable for an advisory dedup signal and is not corrected.
package fingerprint

import (
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var (
	lineComments = regexp.MustCompile(`(?m)(#|//).*$`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	tripleDouble = regexp.MustCompile(`(?s)""".*?"""`)
	tripleSingle = regexp.MustCompile(`(?s)'''.*?'''`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Normalize strips line comments, replaces multi-line comment/string spans
// with a sentinel, and collapses whitespace runs to single spaces.
func Normalize(code string) string {
	code = lineComments.ReplaceAllString(code, "")
	code = blockComment.ReplaceAllString(code, "/**/")
	code = tripleDouble.ReplaceAllString(code, `""""""`)
	code = tripleSingle.ReplaceAllString(code, "''''''")
	code = whitespace.ReplaceAllString(code, " ")
	return strings.TrimSpace(code)
}

// Hash returns the fingerprint of a snippet: an xxhash of its normalized
// text. Deterministic and total, including for the empty string.
func Hash(code string) uint64 {
	return xxhash.Sum64String(Normalize(code))
}
