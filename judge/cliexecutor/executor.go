/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package cliexecutor runs judge CLIs as one-shot, non-interactive processes
// and captures their output.
package cliexecutor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/chainguard-dev/clog"
)

// ProcessError indicates the judge process exited non-zero. It carries the
// exit code and captured output for diagnostics.
type ProcessError struct {
	Binary   string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s exited with code %d\nstdout:\n%s\nstderr:\n%s",
		e.Binary, e.ExitCode, e.Stdout, e.Stderr)
}

// Executor invokes a single binary per call and returns its stdout.
type Executor struct {
	binary string
}

// New creates an Executor for the given binary. The binary is resolved via
// PATH at invocation time, like any exec.Command lookup.
func New(binary string) (*Executor, error) {
	if binary == "" {
		return nil, errors.New("binary cannot be empty")
	}
	return &Executor{binary: binary}, nil
}

// Run executes the binary with the given arguments and returns its trimmed
// stdout. The process inherits no stdin; cancellation of ctx kills it. No
// timeout is imposed here - callers that need bounded latency wrap ctx with
// their own deadline.
func (e *Executor) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, e.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	clog.FromContext(ctx).Debugf("invoking %s with %d args", e.binary, len(args))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ProcessError{
				Binary:   e.binary,
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}
		}
		return "", fmt.Errorf("running %s: %w", e.binary, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
