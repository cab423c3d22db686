package parser

import "strings"

// parseTask handles `task --list-all` output: a `task:` banner followed by
// `* name: description` bullet lines.
func parseTask(raw string) []TaskEntry {
	var items []TaskEntry
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimLeft(line, " \t")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "task:") || strings.HasPrefix(line, "Available") {
			continue
		}

		line = strings.TrimPrefix(line, "* ")
		line = strings.TrimPrefix(line, "- ")

		name := strings.TrimSpace(line)
		desc := ""
		if i := strings.Index(line, ":"); i >= 0 {
			name = strings.TrimSpace(line[:i])
			desc = strings.TrimSpace(line[i+1:])
		}
		if name == "" {
			continue
		}

		items = append(items, TaskEntry{Name: name, Description: desc})
	}
	return items
}
