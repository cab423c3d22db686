package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unvalley/rt/internal/parser"
)

func TestScore_EmptyInputPreservesCatalogOrder(t *testing.T) {
	first, ok := Score("", "zeta", 0, 3)
	if !ok {
		t.Fatal("empty input must match everything")
	}
	second, ok := Score("", "alpha", 1, 3)
	if !ok {
		t.Fatal("empty input must match everything")
	}
	if first <= second {
		t.Errorf("expected earlier entry to rank higher: %d vs %d", first, second)
	}
}

func TestScore_ExactBeatsPrefixDespitePosition(t *testing.T) {
	exact, ok := Score("format", "format", 1, 2)
	if !ok {
		t.Fatal("expected exact match")
	}
	prefix, ok := Score("format", "format-rust", 0, 2)
	if !ok {
		t.Fatal("expected prefix match")
	}
	if exact <= prefix {
		t.Errorf("exact match must outrank prefix match: %d vs %d", exact, prefix)
	}
}

func TestScore_PrefixBeatsSubstring(t *testing.T) {
	prefix, _ := Score("test", "test-unit", 5, 10)
	substring, _ := Score("test", "run-tests", 0, 10)
	if prefix <= substring {
		t.Errorf("prefix must outrank substring: %d vs %d", prefix, substring)
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	if _, ok := Score("BUILD", "build", 0, 1); !ok {
		t.Error("expected case-insensitive match")
	}
	if _, ok := Score("build", "BUILD-all", 0, 1); !ok {
		t.Error("expected case-insensitive prefix match")
	}
}

func TestScore_NoMatchExcluded(t *testing.T) {
	if _, ok := Score("deploy", "build", 0, 1); ok {
		t.Error("expected exclusion for non-matching input")
	}
}

func TestScore_PositionBreaksTiesWithinTier(t *testing.T) {
	early, _ := Score("build", "build-linux", 0, 5)
	late, _ := Score("build", "build-macos", 4, 5)
	if early <= late {
		t.Errorf("earlier position must win inside one tier: %d vs %d", early, late)
	}
}

func TestScore_TiersNeverCollideOnHugeCatalogs(t *testing.T) {
	total := 1 << 20
	exact, _ := Score("x", "x", total-1, total)
	prefix, _ := Score("x", "xy", 0, total)
	if exact <= prefix {
		t.Errorf("tier constant too small: %d vs %d", exact, prefix)
	}
}

func catalog(names ...string) []parser.TaskEntry {
	entries := make([]parser.TaskEntry, 0, len(names))
	for _, n := range names {
		entries = append(entries, parser.TaskEntry{Name: n})
	}
	return entries
}

func typeRunes(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestModel_FilterAndSelect(t *testing.T) {
	m := NewModel(catalog("format-rust", "format", "build"), nil, "")
	m = typeRunes(t, m, "format")

	if len(m.filtered) != 2 {
		t.Fatalf("expected 2 filtered entries, got %d", len(m.filtered))
	}
	if m.filtered[0].entry.Name != "format" {
		t.Errorf("expected exact match first, got %q", m.filtered[0].entry.Name)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.Choice() != "format" {
		t.Errorf("expected choice format, got %q", m.Choice())
	}
}

func TestModel_EscapeCancels(t *testing.T) {
	m := NewModel(catalog("build"), nil, "")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.Choice() != "" {
		t.Errorf("expected empty choice after cancel, got %q", m.Choice())
	}
}

func TestModel_CatalogReloadRefilters(t *testing.T) {
	m := NewModel(catalog("build"), nil, "")
	next, _ := m.Update(catalogMsg{entries: catalog("build", "deploy")})
	m = next.(Model)
	if len(m.filtered) != 2 {
		t.Errorf("expected refreshed catalog, got %d entries", len(m.filtered))
	}
}

func TestViewWindow_KeepsCursorVisible(t *testing.T) {
	start, end := viewWindow(9, 20, 5)
	if start != 5 || end != 10 {
		t.Errorf("expected window [5,10), got [%d,%d)", start, end)
	}
	start, end = viewWindow(0, 3, 5)
	if start != 0 || end != 3 {
		t.Errorf("expected window [0,3), got [%d,%d)", start, end)
	}
}
