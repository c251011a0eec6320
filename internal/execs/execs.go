// Package execs runs external commands and translates their outcomes into
// exit codes and typed errors, so every call site that shells out shares one
// abstraction.
package execs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrNotFound indicates the requested executable is not on PATH.
var ErrNotFound = errors.New("executable not found")

// Run executes the named program with inherited stdio and waits for it.
// It returns the subprocess exit code. The error is non-nil only when the
// process could not be started at all; a non-zero exit is reported through
// the code, not the error, so callers can mirror it.
func Run(ctx context.Context, dir, name string, args ...string) (int, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return 1, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("running %s: %w", name, err)
	}

	return 0, nil
}

// LookPath reports whether the named executable is available, returning its
// resolved path.
func LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return path, nil
}
