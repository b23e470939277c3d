// Package toolrunner invokes external analysis tools as subprocesses. A tool
// that is absent from PATH or exceeds its timeout is reported in the
// Invocation record, never as an error: callers degrade gracefully.
package toolrunner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// Spec describes how to invoke one external tool.
type Spec struct {
	Name    string // validator name, for traceability
	Bin     string
	Args    []string // leading arguments; the file path is appended last
	Timeout time.Duration
}

// Invocation captures everything the pipeline consumes from a tool run.
type Invocation struct {
	Tool     string
	ExitCode int
	Stdout   string
	Stderr   string
	Missing  bool
	TimedOut bool
}

// Output returns the combined stdout and stderr text.
func (inv Invocation) Output() string {
	if inv.Stdout == "" {
		return inv.Stderr
	}
	if inv.Stderr == "" {
		return inv.Stdout
	}
	return inv.Stdout + "\n" + inv.Stderr
}

// Failed reports whether the tool ran and exited non-zero.
func (inv Invocation) Failed() bool {
	return !inv.Missing && !inv.TimedOut && inv.ExitCode != 0
}

// Runner executes tool specs against file paths.
type Runner struct{}

func New() *Runner {
	return &Runner{}
}

// Run invokes the tool against filePath, capping execution at the spec's
// timeout. No retries: analysis tools are assumed idempotent, and a failed
// invocation is reported once.
func (r *Runner) Run(ctx context.Context, spec Spec, filePath string) Invocation {
	inv := Invocation{Tool: spec.Name}

	binPath, err := exec.LookPath(spec.Bin)
	if err != nil {
		inv.Missing = true
		return inv
	}

	timeout := spec.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append(append([]string{}, spec.Args...), filePath)
	cmd := exec.CommandContext(ctx, binPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	inv.Stdout = stdout.String()
	inv.Stderr = stderr.String()

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			inv.TimedOut = true
			return inv
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			inv.ExitCode = exitErr.ExitCode()
			return inv
		}
		// Start failures without an exit code surface as a generic failure.
		inv.ExitCode = 1
	}

	return inv
}
