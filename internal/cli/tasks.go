package cli

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/unvalley/rt/internal/detect"
	"github.com/unvalley/rt/internal/execute"
	"github.com/unvalley/rt/internal/justfile"
	"github.com/unvalley/rt/internal/parser"
)

// NoTasksError reports a runner that listed zero tasks.
type NoTasksError struct {
	Tool string
}

func (e *NoTasksError) Error() string {
	return fmt.Sprintf("%s reported no tasks", e.Tool)
}

// ListFailedError reports that every listing command variant failed.
type ListFailedError struct {
	Tool   string
	Status int
}

func (e *ListFailedError) Error() string {
	return fmt.Sprintf("%s failed to list tasks (exit %d)", e.Tool, e.Status)
}

var dialects = map[detect.Runner]parser.Dialect{
	detect.Just:      parser.DialectJust,
	detect.Task:      parser.DialectTask,
	detect.Mise:      parser.DialectMise,
	detect.Mask:      parser.DialectMask,
	detect.CargoMake: parser.DialectCargoMake,
	detect.Make:      parser.DialectMake,
}

// loadCatalog builds the task catalog for a detection. Justfiles are read
// directly, imports and all, without spawning just; every other runner is
// asked to list its own tasks and its stdout is parsed.
func loadCatalog(det *detect.Detection) ([]parser.TaskEntry, error) {
	if det.Runner == detect.Just {
		return justfile.Resolve(det.RunnerFile)
	}
	return listViaRunner(det.Runner)
}

func listViaRunner(runner detect.Runner) ([]parser.TaskEntry, error) {
	tool := detect.Command(runner)
	if err := execute.EnsureTool(tool); err != nil {
		return nil, err
	}

	lastStatus := 2
	for _, argv := range detect.ListArgvVariants(runner) {
		cmd := exec.Command(tool, argv...)
		out, err := cmd.Output()
		if err != nil && cmd.ProcessState == nil {
			return nil, &execute.SpawnError{Err: err}
		}
		status := cmd.ProcessState.ExitCode()

		if status == 0 {
			return parser.Parse(dialects[runner], string(out)), nil
		}
		// make -q exits nonzero when targets are out of date; the dump is
		// still usable
		if runner == detect.Make && strings.TrimSpace(string(out)) != "" {
			return parser.Parse(dialects[runner], string(out)), nil
		}

		slog.Debug("list variant failed", "tool", tool, "argv", argv, "status", status)
		lastStatus = status
	}

	return nil, &ListFailedError{Tool: tool, Status: lastStatus}
}
