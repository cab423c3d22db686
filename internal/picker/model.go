package picker

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/unvalley/rt/internal/parser"
)

// ReloadFunc re-resolves the task catalog, typically after the runner file
// changed on disk.
type ReloadFunc func() ([]parser.TaskEntry, error)

type scoredEntry struct {
	entry parser.TaskEntry
	rank  int64
}

type catalogMsg struct {
	entries []parser.TaskEntry
}

type watchMsg struct{}

// Model is the bubbletea model for the task picker.
type Model struct {
	entries  []parser.TaskEntry
	filtered []scoredEntry
	query    string
	cursor   int
	width    int
	height   int

	reload    ReloadFunc
	watcher   *fsnotify.Watcher
	watchFile string

	choice   string
	canceled bool
}

// NewModel creates a picker over the given catalog. When watchPath and
// reload are set, changes to that file re-resolve the catalog live.
func NewModel(entries []parser.TaskEntry, reload ReloadFunc, watchPath string) Model {
	m := Model{
		entries: entries,
		reload:  reload,
	}

	if watchPath != "" && reload != nil {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			slog.Debug("catalog watch unavailable", "error", err)
		} else if err := watcher.Add(filepath.Dir(watchPath)); err != nil {
			slog.Debug("catalog watch unavailable", "path", watchPath, "error", err)
			watcher.Close()
		} else {
			m.watcher = watcher
			m.watchFile = filepath.Base(watchPath)
		}
	}

	m.refilter()
	return m
}

// Choice returns the selected task name, or "" when the picker was
// canceled or nothing matched.
func (m Model) Choice() string {
	if m.canceled {
		return ""
	}
	return m.choice
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// waitForChange blocks on the next write to the watched runner file.
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-m.watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != m.watchFile {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					return watchMsg{}
				}
			case _, ok := <-m.watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

func (m Model) reloadCatalog() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.reload()
		if err != nil {
			slog.Debug("catalog reload failed", "error", err)
			return watchMsg{} // keep watching, keep the old catalog
		}
		return catalogMsg{entries: entries}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			m.closeWatcher()
			return m, tea.Quit
		case "enter":
			if m.cursor < len(m.filtered) {
				m.choice = m.filtered[m.cursor].entry.Name
			}
			m.closeWatcher()
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		case "backspace":
			if m.query != "" {
				runes := []rune(m.query)
				m.query = string(runes[:len(runes)-1])
				m.refilter()
			}
		default:
			if msg.Type == tea.KeyRunes {
				m.query += string(msg.Runes)
				m.refilter()
			}
		}

	case watchMsg:
		return m, m.reloadCatalog()

	case catalogMsg:
		m.entries = msg.entries
		m.refilter()
		return m, m.waitForChange()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m *Model) refilter() {
	total := len(m.entries)
	m.filtered = m.filtered[:0]
	for pos, entry := range m.entries {
		rank, ok := Score(m.query, entry.Name, pos, total)
		if !ok {
			continue
		}
		m.filtered = append(m.filtered, scoredEntry{entry: entry, rank: rank})
	}
	sort.SliceStable(m.filtered, func(i, j int) bool {
		return m.filtered[i].rank > m.filtered[j].rank
	})
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

func (m *Model) closeWatcher() {
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(promptStyle.Render("Select task"))
	b.WriteString(" ")
	b.WriteString(countStyle.Render(fmt.Sprintf("(%d/%d)", len(m.filtered), len(m.entries))))
	b.WriteString("\n")
	b.WriteString(cursorStyle.Render("> "))
	b.WriteString(m.query)
	b.WriteString("\n\n")

	nameWidth := 0
	for _, s := range m.filtered {
		if n := len(s.entry.Name); n > nameWidth {
			nameWidth = n
		}
	}

	visible := m.visibleRows()
	start, end := viewWindow(m.cursor, len(m.filtered), visible)
	for i := start; i < end; i++ {
		entry := m.filtered[i].entry
		line := fmt.Sprintf("%-*s", nameWidth, entry.Name)
		if i == m.cursor {
			line = selectedStyle.Render(line)
			b.WriteString(cursorStyle.Render("❯ "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(line)
		if entry.Description != "" {
			b.WriteString(descStyle.Render("  -  " + entry.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · enter run · esc cancel"))
	return b.String()
}

func (m Model) visibleRows() int {
	// header, query, blank, blank, help
	rows := m.height - 5
	if m.height == 0 || rows > len(m.filtered) {
		rows = len(m.filtered)
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// viewWindow keeps the cursor inside the visible slice of rows.
func viewWindow(cursor, count, rows int) (int, int) {
	if count == 0 {
		return 0, 0
	}
	start := 0
	if cursor >= rows {
		start = cursor - rows + 1
	}
	end := start + rows
	if end > count {
		end = count
	}
	return start, end
}

// Run shows the picker and returns the chosen task name. An empty name with
// a nil error means the user canceled.
func Run(entries []parser.TaskEntry, reload ReloadFunc, watchPath string) (string, error) {
	model := NewModel(entries, reload, watchPath)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}
	picked, ok := final.(Model)
	if !ok {
		return "", nil
	}
	return picked.Choice(), nil
}
