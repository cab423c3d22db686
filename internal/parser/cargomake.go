package parser

import (
	"strings"
	"unicode"
)

// parseCargoMake handles `cargo make --list-all-steps` output: section
// headers ending in a colon, then `name    description` columns.
func parseCargoMake(raw string) []TaskEntry {
	var items []TaskEntry
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, ":") || strings.HasPrefix(line, "Available") || strings.HasPrefix(line, "Tasks") {
			continue
		}

		name := line
		desc := ""
		if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
			name = line[:i]
			desc = strings.TrimSpace(line[i:])
		}
		if name == "" {
			continue
		}

		items = append(items, TaskEntry{Name: name, Description: desc})
	}
	return items
}
