// Package exec wraps subprocess invocation behind a small runner interface so
// that callers shelling out to local tooling can be unit-tested with fakes.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a local command and reports its captured output and exit
// code. A non-nil error means the command could not be run at all; a command
// that ran and exited non-zero is reported through Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// Result captures the observable output of one command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// NewRunner returns a Runner backed by the local OS.
func NewRunner() Runner {
	return &osRunner{}
}

type osRunner struct{}

func (r *osRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("failed to run %s: %w", name, err)
	}

	return result, nil
}
