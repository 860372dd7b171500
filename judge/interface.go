/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import "context"

// Interface defines the contract for judge implementations: score a code
// snippet on a continuous 0.0-1.0 scale, or fail.
//
// question is an optional problem statement giving the judge context to weigh
// solution correctness; implementations may ignore it, and callers may pass
// the empty string. Implementations are synchronous and may be slow - the
// grader keeps these calls off its critical section.
type Interface interface {
	// Grade scores the code in [0.0, 1.0].
	Grade(ctx context.Context, code, question string) (float64, error)
}
