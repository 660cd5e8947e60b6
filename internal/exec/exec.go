// Package exec provides abstractions for executing external commands.
package exec

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/cockroachdb/errors"
)

// DefaultTimeout bounds external command execution in diagnostics.
const DefaultTimeout = 5 * time.Second

// CommandResult contains the result of a command execution.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner executes external commands with timeout and output capture.
type CommandRunner interface {
	// Run executes a command and returns the result.
	Run(ctx context.Context, name string, args ...string) (*CommandResult, error)

	// IsAvailable checks if a tool is available in PATH.
	IsAvailable(tool string) bool
}

// commandRunner implements CommandRunner.
type commandRunner struct {
	defaultTimeout time.Duration
}

// NewCommandRunner creates a new CommandRunner with the given default timeout.
//
//nolint:ireturn // constructor returns the package interface
func NewCommandRunner(defaultTimeout time.Duration) CommandRunner {
	if defaultTimeout <= 0 {
		defaultTimeout = DefaultTimeout
	}

	return &commandRunner{
		defaultTimeout: defaultTimeout,
	}
}

// Run executes a command and returns the result.
func (r *commandRunner) Run(ctx context.Context, name string, args ...string) (*CommandResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.defaultTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError

	switch {
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		return result, err
	case err != nil:
		return result, errors.Wrapf(err, "executing %s", name)
	}

	return result, nil
}

// IsAvailable checks if a tool is available in PATH.
func (*commandRunner) IsAvailable(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}
