package parser

import "strings"

// parseMake handles the database dump from `make -qp`. When the dump carries
// a "# Files" section marker only that segment (up to "# Finished") is
// scanned; without the marker the whole input is treated as makefile text.
// .PHONY declarations register task names even when no rule for them appears.
// Pattern, variable, and special targets are excluded. A target's description
// comes from an inline `#` comment after the colon, falling back to the
// comment line immediately above it.
func parseMake(raw string) []TaskEntry {
	lines := strings.Split(raw, "\n")

	inFiles := true
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "# Files") {
			inFiles = false
			break
		}
	}

	order := []string{}
	descs := map[string]*string{}
	record := func(name string, desc string) {
		if _, seen := descs[name]; !seen {
			order = append(order, name)
			descs[name] = nil
		}
		if desc != "" {
			d := desc
			descs[name] = &d
		}
	}

	var pending string

	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			pending = ""
			continue
		}

		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "# Files") {
			inFiles = true
			pending = ""
			continue
		}
		if strings.HasPrefix(trimmed, "# Finished") {
			break
		}
		if rest, ok := strings.CutPrefix(trimmed, ".PHONY:"); ok {
			for _, name := range strings.Fields(rest) {
				record(name, "")
			}
			pending = ""
			continue
		}
		if !inFiles {
			pending = ""
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			pending = makeCommentText(trimmed)
			continue
		}
		// recipe lines are indented
		if strings.HasPrefix(line, "\t") || strings.HasPrefix(line, " ") {
			pending = ""
			continue
		}

		target, rest, found := strings.Cut(trimmed, ":")
		if !found {
			continue
		}

		name := strings.TrimSpace(target)
		if !isMakeTargetName(name) {
			pending = ""
			continue
		}

		inline := ""
		if _, comment, ok := strings.Cut(rest, "#"); ok {
			inline = strings.TrimSpace(comment)
		}

		desc := inline
		if desc == "" {
			desc = pending
		}
		pending = ""

		record(name, desc)
	}

	items := make([]TaskEntry, 0, len(order))
	for _, name := range order {
		entry := TaskEntry{Name: name}
		if d := descs[name]; d != nil {
			entry.Description = *d
		}
		items = append(items, entry)
	}
	return items
}

func isMakeTargetName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}
	if strings.ContainsAny(name, "%$=") {
		return false
	}
	switch name {
	case "Makefile", "makefile", "GNUmakefile":
		return false
	}
	return true
}

// makeCommentText extracts a usable description from a dump comment line,
// rejecting make's own bookkeeping comments.
func makeCommentText(line string) string {
	comment := strings.TrimSpace(strings.TrimLeft(line, "#"))
	if comment == "" {
		return ""
	}
	if strings.HasPrefix(comment, "Files") ||
		strings.HasPrefix(comment, "Finished") ||
		strings.HasPrefix(comment, "Not a target") ||
		strings.HasSuffix(comment, ":") {
		return ""
	}
	return comment
}
