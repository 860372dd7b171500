/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package grader shields a high-volume caller from an expensive, flaky
code-quality judge.

Judge calls mean a process spawn or API round-trip plus model latency, and a
training loop asks for scores far faster than a judge can produce them. The
Grader cuts the call volume two ways before a request ever reaches the judge:

  - Caching: snippets are fingerprinted on normalized text, so submissions
    differing only in comments or whitespace share one cached score. The
    cache is bounded with LRU eviction.
  - Sampling: uncached requests pass a probabilistic gate; requests sampled
    out return a configured default score instead of invoking the judge, and
    are deliberately not cached so a later sampled-in request can still earn
    a real score.

Grade never returns an error. Judge failures are logged at warning level and
degrade to the default score, because one flaky judge call must not abort a
training batch. Configuration mistakes, by contrast, fail loudly in New.

	j, err := claudecli.New()
	if err != nil { ... }
	g, err := grader.New(j,
		grader.WithSampleRate(0.2),
		grader.WithSeed(42),
	)
	if err != nil { ... }

	score := g.Grade(ctx, code, "")
	g.LogStats(ctx)
*/
package grader
