package justfile

import (
	"fmt"
	"os"
	"strings"
)

// RequiredArgs scans the justfile at path for the recipe named task and
// returns its required parameter names in declaration order. A recipe with
// only defaulted or variadic parameters yields an empty slice. A missing
// recipe also yields an empty slice; only I/O failures are errors.
func RequiredArgs(path, task string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read justfile: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if required, ok := requiredFromHeader(line, task); ok {
			return required, nil
		}
	}

	return nil, nil
}

// requiredFromHeader extracts required parameter names from one recipe
// header line. It returns ok=false when the line is not the header of task:
// indented body lines, comments, variable assignments, and headers for
// other recipes all fall through so the caller can keep scanning.
func requiredFromHeader(line, task string) ([]string, bool) {
	if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
		return nil, false
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false
	}

	colon := findTopLevelRune(trimmed, ':')
	if colon < 0 {
		return nil, false
	}
	// `name := value` is a variable assignment, not a recipe
	if strings.HasPrefix(trimmed[colon:], ":=") {
		return nil, false
	}

	left := strings.TrimSpace(trimmed[:colon])
	if left == "" {
		return nil, false
	}

	fields := splitTopLevelFields(left)
	if len(fields) == 0 {
		return nil, false
	}

	name := strings.TrimPrefix(fields[0], "@")
	if name != task {
		return nil, false
	}

	required := []string{}
	for _, raw := range fields[1:] {
		token := strings.TrimSuffix(raw, ",")
		if token == "" || strings.HasPrefix(token, "*") || hasTopLevelRune(token, '=') {
			continue
		}

		clean := strings.TrimLeft(token, "$+*")
		if !isIdentifier(clean) {
			continue
		}

		required = append(required, clean)
	}

	return required, true
}
