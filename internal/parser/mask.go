package parser

import (
	"encoding/json"
	"strings"
)

type maskfile struct {
	Commands []maskCommand `json:"commands"`
}

type maskCommand struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Script      json.RawMessage `json:"script"`
	Subcommands []maskCommand   `json:"subcommands"`
}

// parseMask handles `mask --introspect` output: a JSON tree of commands.
// Nested subcommands flatten to space-joined names ("gen types"); commands
// without a script are grouping nodes and are not tasks themselves.
func parseMask(raw string) []TaskEntry {
	var mf maskfile
	if err := json.Unmarshal([]byte(raw), &mf); err != nil {
		return nil
	}

	var items []TaskEntry
	for _, cmd := range mf.Commands {
		collectMaskTasks(&items, cmd, "")
	}
	return items
}

func collectMaskTasks(items *[]TaskEntry, cmd maskCommand, prefix string) {
	name := cmd.Name
	if prefix != "" {
		name = prefix + " " + cmd.Name
	}

	if len(cmd.Script) > 0 && string(cmd.Script) != "null" {
		*items = append(*items, TaskEntry{
			Name:        name,
			Description: strings.TrimSpace(cmd.Description),
		})
	}

	for _, sub := range cmd.Subcommands {
		collectMaskTasks(items, sub, name)
	}
}
