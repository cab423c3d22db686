package parser

import "strings"

// parseJust handles `just --list --unsorted` output: an "Available recipes:"
// banner followed by indented `name args  # description` lines.
func parseJust(raw string) []TaskEntry {
	var items []TaskEntry
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "Available") || strings.HasPrefix(line, "Recipes") {
			continue
		}

		left := line
		desc := ""
		if i := strings.Index(line, "#"); i >= 0 {
			left = strings.TrimSpace(line[:i])
			desc = strings.TrimSpace(line[i+1:])
		}

		fields := strings.Fields(left)
		if len(fields) == 0 {
			continue
		}

		items = append(items, TaskEntry{Name: fields[0], Description: desc})
	}
	return items
}
