package justfile

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/unvalley/rt/internal/parser"
)

// MissingImportError reports a non-optional import whose target file does
// not exist.
type MissingImportError struct {
	Path string
}

func (e *MissingImportError) Error() string {
	return fmt.Sprintf("missing import: %s", e.Path)
}

type importSpec struct {
	path     string
	optional bool
}

type resolvedTask struct {
	entry parser.TaskEntry
	depth int
	order int
}

// resolver holds the state of one Resolve call. The stack tracks the
// current descent path so import cycles terminate instead of recursing.
type resolver struct {
	stack []string
	tasks []resolvedTask
	order int
}

// Resolve builds a task catalog from the justfile at rootPath and its
// transitive imports, without invoking just. Imports are visited in
// declaration order before the importing file's own recipes, so a recipe in
// the root file (or any shallower file) overrides a same-named recipe from
// a deeper import; at equal depth the later declaration wins. It fails only
// when a non-optional import target is missing or a visited file is
// unreadable.
func Resolve(rootPath string) ([]parser.TaskEntry, error) {
	r := &resolver{}
	if err := r.visit(rootPath, 0); err != nil {
		return nil, err
	}
	return r.catalog(), nil
}

func (r *resolver) visit(path string, depth int) error {
	canon := canonicalPath(path)
	if slices.Contains(r.stack, canon) {
		// already on the descent path: an import cycle, not an error
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	r.stack = append(r.stack, canon)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	imports, recipes := parseSource(string(data))

	for _, imp := range imports {
		target, err := resolveImportPath(imp.path, filepath.Dir(path))
		if err != nil {
			if imp.optional {
				continue
			}
			return err
		}
		if info, err := os.Stat(target); err != nil || info.IsDir() {
			if imp.optional {
				continue
			}
			return &MissingImportError{Path: imp.path}
		}
		if err := r.visit(target, depth+1); err != nil {
			return err
		}
	}

	for _, entry := range recipes {
		r.tasks = append(r.tasks, resolvedTask{entry: entry, depth: depth, order: r.order})
		r.order++
	}

	return nil
}

// catalog deduplicates by name (smallest depth wins, ties go to the later
// insertion) and emits survivors in insertion order.
func (r *resolver) catalog() []parser.TaskEntry {
	best := map[string]int{}
	for i, t := range r.tasks {
		cur, seen := best[t.entry.Name]
		if !seen || t.depth <= r.tasks[cur].depth {
			best[t.entry.Name] = i
		}
	}

	survivors := make([]int, 0, len(best))
	for _, i := range best {
		survivors = append(survivors, i)
	}
	slices.Sort(survivors)

	items := make([]parser.TaskEntry, 0, len(survivors))
	for _, i := range survivors {
		items = append(items, r.tasks[i].entry)
	}
	return items
}

// parseSource extracts import declarations and recipe headers from one
// justfile's text. Recipe descriptions come from a trailing `#` comment
// after the colon, or else from the comment line directly above the header.
func parseSource(src string) ([]importSpec, []parser.TaskEntry) {
	var imports []importSpec
	var recipes []parser.TaskEntry
	var comment string
	haveComment := false

	for _, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			haveComment = false
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			haveComment = false
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			comment = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			haveComment = comment != ""
			continue
		}

		if spec, ok := parseImportLine(trimmed); ok {
			imports = append(imports, spec)
			haveComment = false
			continue
		}

		colon := findTopLevelRune(trimmed, ':')
		if colon < 0 || strings.HasPrefix(trimmed[colon:], ":=") {
			haveComment = false
			continue
		}

		left := strings.TrimSpace(trimmed[:colon])
		fields := splitTopLevelFields(left)
		if len(fields) == 0 {
			haveComment = false
			continue
		}

		name := strings.TrimPrefix(fields[0], "@")
		if name == "" {
			haveComment = false
			continue
		}

		desc := ""
		rest := trimmed[colon+1:]
		if i := findTopLevelRune(rest, '#'); i >= 0 {
			desc = strings.TrimSpace(rest[i+1:])
		}
		if desc == "" && haveComment {
			desc = comment
		}
		haveComment = false

		recipes = append(recipes, parser.TaskEntry{Name: name, Description: desc})
	}

	return imports, recipes
}

// parseImportLine recognizes `import 'path'` and `import? "path"`.
func parseImportLine(trimmed string) (importSpec, bool) {
	rest, ok := strings.CutPrefix(trimmed, "import")
	if !ok {
		return importSpec{}, false
	}

	optional := false
	if strings.HasPrefix(rest, "?") {
		optional = true
		rest = rest[1:]
	}

	// the keyword must be followed by whitespace, not be a prefix of a
	// recipe name like `import-data:`
	if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return importSpec{}, false
	}

	rest = strings.TrimSpace(rest)
	if len(rest) < 2 {
		return importSpec{}, false
	}
	quote := rest[0]
	if quote != '\'' && quote != '"' {
		return importSpec{}, false
	}
	end := strings.IndexByte(rest[1:], quote)
	if end < 0 {
		return importSpec{}, false
	}

	path := rest[1 : 1+end]
	if path == "" {
		return importSpec{}, false
	}

	return importSpec{path: path, optional: optional}, true
}

// resolveImportPath expands `~/` against the user's home directory and
// resolves other relative paths against the importing file's directory.
func resolveImportPath(path, baseDir string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %s: %w", path, err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Join(baseDir, path), nil
}

func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
