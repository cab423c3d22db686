package execute

import (
	"strings"

	"github.com/unvalley/rt/internal/detect"
)

// Preview renders the command that would run, quoted for display before
// the user confirms or edits arguments.
func Preview(runner detect.Runner, task string, passthrough []string) string {
	argv := Argv(runner, task, passthrough)
	parts := make([]string, 0, len(argv))
	for _, arg := range argv {
		parts = append(parts, quotePreviewArg(arg))
	}
	return strings.Join(parts, " ")
}

func quotePreviewArg(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsAny(arg, " \t\n'\"\\$`!&|;<>") {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}
