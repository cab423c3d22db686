package detect

import (
	"fmt"
	"os"
	"path/filepath"
)

// Runner identifies the task tool governing a project directory.
type Runner int

const (
	Just Runner = iota
	Task
	Mise
	Mask
	CargoMake
	Make
)

func (r Runner) String() string {
	switch r {
	case Just:
		return "just"
	case Task:
		return "task"
	case Mise:
		return "mise"
	case Mask:
		return "mask"
	case CargoMake:
		return "cargo-make"
	case Make:
		return "make"
	default:
		return "unknown"
	}
}

// Detection is the result of probing a directory for a runner file.
type Detection struct {
	Runner     Runner
	RunnerFile string
}

// NoRunnerError is returned when no known runner file exists in a directory.
type NoRunnerError struct {
	Dir string
}

func (e *NoRunnerError) Error() string {
	return fmt.Sprintf("no runner found in %s", e.Dir)
}

type candidate struct {
	name   string
	runner Runner
}

// Probe order doubles as precedence: a justfile wins over a Makefile
// sitting in the same directory.
var candidates = []candidate{
	{"Justfile", Just},
	{"justfile", Just},
	{"Taskfile.yml", Task},
	{"taskfile.yml", Task},
	{"Taskfile.yaml", Task},
	{"taskfile.yaml", Task},
	{"Taskfile.dist.yml", Task},
	{"taskfile.dist.yml", Task},
	{"Taskfile.dist.yaml", Task},
	{"taskfile.dist.yaml", Task},
	{"mise.toml", Mise},
	{".mise.toml", Mise},
	{"maskfile.md", Mask},
	{"Makefile.toml", CargoMake},
	{"Makefile", Make},
}

// Detect probes dir for a runner file and returns the first match.
func Detect(dir string) (*Detection, error) {
	for _, c := range candidates {
		path := filepath.Join(dir, c.name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return &Detection{Runner: c.runner, RunnerFile: path}, nil
	}
	return nil, &NoRunnerError{Dir: dir}
}

// Command returns the executable name for the given runner.
func Command(r Runner) string {
	switch r {
	case Just:
		return "just"
	case Task:
		return "task"
	case Mise:
		return "mise"
	case Mask:
		return "mask"
	case CargoMake:
		return "cargo"
	case Make:
		return "make"
	default:
		return ""
	}
}

// ListArgvVariants returns the argument sets to try, in order, when asking
// a runner to list its tasks. The first variant that exits zero wins.
func ListArgvVariants(r Runner) [][]string {
	switch r {
	case Just:
		return [][]string{{"--list", "--unsorted"}}
	case Task:
		return [][]string{{"--list-all"}}
	case Mise:
		return [][]string{{"tasks", "ls", "--json"}}
	case Mask:
		return [][]string{{"--introspect"}}
	case CargoMake:
		return [][]string{
			{"make", "--list-all-steps"},
			{"make", "--list-all"},
			{"make", "--list"},
		}
	case Make:
		// -q keeps make from actually building anything while -p dumps
		// its database; the -rR variant suppresses builtin rules.
		return [][]string{{"-rR", "-qp"}, {"-qp"}}
	default:
		return nil
	}
}
