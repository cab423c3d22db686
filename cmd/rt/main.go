package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/unvalley/rt/internal/cli"
	"github.com/unvalley/rt/internal/detect"
	"github.com/unvalley/rt/internal/execute"
)

func main() {
	err := cli.NewRootCmd().Execute()
	if err == nil {
		return
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		// the task itself failed; its output already explained why
		os.Exit(exitErr.Code)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(classify(err))
}

func classify(err error) int {
	var noRunner *detect.NoRunnerError
	var toolMissing *execute.ToolMissingError
	if errors.As(err, &noRunner) || errors.As(err, &toolMissing) {
		return 3
	}

	var spawn *execute.SpawnError
	if errors.As(err, &spawn) {
		return 2
	}
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return 2
	}

	return 1
}
