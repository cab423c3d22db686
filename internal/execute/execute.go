// Package execute spawns the detected runner and mirrors the invocation
// into the user's shell history.
package execute

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/unvalley/rt/internal/detect"
)

// ToolMissingError reports a runner executable absent from PATH.
type ToolMissingError struct {
	Tool string
}

func (e *ToolMissingError) Error() string {
	return fmt.Sprintf("required tool not found in PATH: %s", e.Tool)
}

// SpawnError wraps a failure to start or wait on the runner process.
type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn command: %v", e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Argv returns the full command line for running task with the given
// runner: the executable followed by runner-specific prefixes, the task
// name, and passthrough arguments.
func Argv(runner detect.Runner, task string, passthrough []string) []string {
	argv := []string{detect.Command(runner)}
	switch runner {
	case detect.CargoMake:
		argv = append(argv, "make")
	case detect.Mise:
		argv = append(argv, "run")
	}
	argv = append(argv, task)
	return append(argv, passthrough...)
}

// EnsureTool verifies the runner executable is on PATH.
func EnsureTool(tool string) error {
	if _, err := exec.LookPath(tool); err != nil {
		return &ToolMissingError{Tool: tool}
	}
	return nil
}

// Run executes the task with inherited stdio in the current directory and
// returns the child's exit code. When shellHistory is true the invocation
// is also appended to the user's shell history file, best effort.
func Run(runner detect.Runner, task string, passthrough []string, shellHistory bool) (int, error) {
	argv := Argv(runner, task, passthrough)
	if err := EnsureTool(argv[0]); err != nil {
		return 0, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return 0, fmt.Errorf("get working directory: %w", err)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = cwd
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	appendShellHistory(argv, shellHistory)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return normalizeExitCode(exitErr.ExitCode()), nil
		}
		return 0, &SpawnError{Err: err}
	}
	return 0, nil
}

// normalizeExitCode maps a signal-killed child, which reports no exit
// code, to 2 so callers always see a meaningful code.
func normalizeExitCode(code int) int {
	if code < 0 {
		return 2
	}
	return code
}
