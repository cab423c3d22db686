package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/unvalley/rt/internal/config"
	"github.com/unvalley/rt/internal/detect"
	"github.com/unvalley/rt/internal/execute"
	"github.com/unvalley/rt/internal/history"
	"github.com/unvalley/rt/internal/justfile"
	"github.com/unvalley/rt/internal/parser"
	"github.com/unvalley/rt/internal/picker"
)

// ExitError carries a child process's nonzero exit code to main.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("task exited with code %d", e.Code)
}

// runTask is the default command flow: detect the runner, settle on a task
// (picking interactively when none was named), prompt for required
// arguments, execute, and record the run.
func runTask(task string, passthrough []string) error {
	settings, err := config.LoadSettings(configFile)
	if err != nil {
		return err
	}

	det, err := resolveDetection(settings)
	if err != nil {
		return err
	}

	if task == "" {
		task, err = chooseTask(det, settings)
		if err != nil {
			return err
		}
		if task == "" {
			// canceled at the prompt
			return nil
		}
	}

	if det.Runner == detect.Just && len(passthrough) == 0 {
		required, err := justfile.RequiredArgs(det.RunnerFile, task)
		if err != nil {
			return err
		}
		if len(required) > 0 {
			passthrough, err = promptArgs(os.Stderr, os.Stdin, required)
			if err != nil {
				return err
			}
		}
	}

	fmt.Fprintln(os.Stderr, execute.Preview(det.Runner, task, passthrough))

	start := time.Now()
	code, err := execute.Run(det.Runner, task, passthrough, !settings.NoShellHistory)
	if err != nil {
		return err
	}

	if !settings.NoHistory {
		cwd, _ := os.Getwd()
		argv := execute.Argv(det.Runner, task, passthrough)
		recordErr := history.Append(history.RecordInput{
			Program:          argv[0],
			Args:             argv[1:],
			WorkingDirectory: cwd,
			ExitCode:         code,
			Duration:         time.Since(start),
			Runner:           det.Runner.String(),
			Target:           task,
			SourceFile:       det.RunnerFile,
		})
		if recordErr != nil {
			return fmt.Errorf("task finished (exit %d) but recording it failed: %w", code, recordErr)
		}
	}

	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

func resolveDetection(settings *config.Settings) (*detect.Detection, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	det, err := detect.Detect(cwd)
	if settings.Runner != "" {
		forced, ferr := settings.ForcedRunner()
		if ferr != nil {
			return nil, ferr
		}
		runnerFile := ""
		if det != nil && det.Runner == forced {
			runnerFile = det.RunnerFile
		}
		return &detect.Detection{Runner: forced, RunnerFile: runnerFile}, nil
	}
	return det, err
}

func chooseTask(det *detect.Detection, settings *config.Settings) (string, error) {
	catalog, err := loadCatalog(det)
	if err != nil {
		return "", err
	}
	if len(catalog) == 0 {
		return "", &NoTasksError{Tool: detect.Command(det.Runner)}
	}

	if settings.Plain {
		printCatalog(os.Stdout, catalog)
		return "", nil
	}

	reload := func() ([]parser.TaskEntry, error) { return loadCatalog(det) }
	return picker.Run(catalog, reload, det.RunnerFile)
}

func printCatalog(w io.Writer, catalog []parser.TaskEntry) {
	nameWidth := 0
	for _, entry := range catalog {
		if n := len(entry.Name); n > nameWidth {
			nameWidth = n
		}
	}
	for _, entry := range catalog {
		if entry.Description != "" {
			fmt.Fprintf(w, "%-*s  -  %s\n", nameWidth, entry.Name, entry.Description)
		} else {
			fmt.Fprintln(w, entry.Name)
		}
	}
}

// promptArgs asks for a value per required argument, in declaration order.
func promptArgs(w io.Writer, r io.Reader, names []string) ([]string, error) {
	reader := bufio.NewReader(r)
	values := make([]string, 0, len(names))
	for _, name := range names {
		fmt.Fprintf(w, "%s: ", name)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("read argument %s: %w", name, err)
		}
		values = append(values, strings.TrimRight(line, "\r\n"))
	}
	return values, nil
}
