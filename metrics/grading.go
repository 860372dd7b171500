/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package metrics provides OpenTelemetry metrics for grading traffic.
package metrics

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Grading provides counters for grading requests and their dispositions plus
// a latency histogram for judge calls, with graceful degradation if metric
// creation fails.
type Grading struct {
	meter        metric.Meter
	requests     metric.Int64Counter
	cacheHits    metric.Int64Counter
	sampledOut   metric.Int64Counter
	judgeCalls   metric.Int64Counter
	judgeLatency metric.Float64Histogram
}

// NewGrading creates a Grading metrics instance with the specified meter
// name. If any instrument fails to initialize, a warning is logged and a
// no-op instrument takes its place rather than failing entirely.
//
// The meterName should be unified across graders (e.g. "chainguard.ai.codequal"),
// with the judge name serving as a dimension on judge-call metrics.
func NewGrading(meterName string) *Grading {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	requests, err := meter.Int64Counter("grading.requests",
		metric.WithDescription("The number of grading requests received"),
		metric.WithUnit("{requests}"))
	if err != nil {
		slog.Warn("Failed to create requests counter, metrics will be disabled", "error", err, "meter", meterName)
		requests = noop.Int64Counter{}
	}

	cacheHits, err := meter.Int64Counter("grading.cache.hits",
		metric.WithDescription("The number of grading requests served from cache"),
		metric.WithUnit("{requests}"))
	if err != nil {
		slog.Warn("Failed to create cache hits counter, metrics will be disabled", "error", err, "meter", meterName)
		cacheHits = noop.Int64Counter{}
	}

	sampledOut, err := meter.Int64Counter("grading.sampled.out",
		metric.WithDescription("The number of grading requests skipped by sampling"),
		metric.WithUnit("{requests}"))
	if err != nil {
		slog.Warn("Failed to create sampled out counter, metrics will be disabled", "error", err, "meter", meterName)
		sampledOut = noop.Int64Counter{}
	}

	judgeCalls, err := meter.Int64Counter("grading.judge.calls",
		metric.WithDescription("The number of judge invocations"),
		metric.WithUnit("{calls}"))
	if err != nil {
		slog.Warn("Failed to create judge calls counter, metrics will be disabled", "error", err, "meter", meterName)
		judgeCalls = noop.Int64Counter{}
	}

	judgeLatency, err := meter.Float64Histogram("grading.judge.duration",
		metric.WithDescription("The duration of judge invocations"),
		metric.WithUnit("s"))
	if err != nil {
		slog.Warn("Failed to create judge latency histogram, metrics will be disabled", "error", err, "meter", meterName)
		judgeLatency = noop.Float64Histogram{}
	}

	return &Grading{
		meter:        meter,
		requests:     requests,
		cacheHits:    cacheHits,
		sampledOut:   sampledOut,
		judgeCalls:   judgeCalls,
		judgeLatency: judgeLatency,
	}
}

// RecordRequest records one incoming grading request.
func (m *Grading) RecordRequest(ctx context.Context) {
	m.requests.Add(ctx, 1)
}

// RecordCacheHit records a request served from cache.
func (m *Grading) RecordCacheHit(ctx context.Context) {
	m.cacheHits.Add(ctx, 1)
}

// RecordSampledOut records a request skipped by the sampling gate.
func (m *Grading) RecordSampledOut(ctx context.Context) {
	m.sampledOut.Add(ctx, 1)
}

// RecordJudgeCall records a judge invocation with its duration and outcome.
func (m *Grading) RecordJudgeCall(ctx context.Context, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.judgeCalls.Add(ctx, 1, attrs)
	m.judgeLatency.Record(ctx, d.Seconds(), attrs)
}
