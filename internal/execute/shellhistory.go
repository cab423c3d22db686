package execute

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type historyFormat int

const (
	formatPlain historyFormat = iota
	formatZshExtended
)

// appendShellHistory writes the command line into $HISTFILE so the run
// shows up in the user's shell history. Failures are ignored: shell
// history is a convenience, never worth failing the run over.
func appendShellHistory(argv []string, enabled bool) {
	if !enabled {
		return
	}

	histfile := os.Getenv("HISTFILE")
	if histfile == "" {
		return
	}

	line := shellCommandLine(argv)
	if strings.TrimSpace(line) == "" {
		return
	}

	format := detectHistoryFormat(os.Getenv("SHELL"), histfile)
	entry := formatHistoryEntry(format, line, time.Now().Unix())

	f, err := os.OpenFile(histfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(entry)
}

// shellCommandLine renders argv as a shell-safe single line. Newlines are
// flattened first so one invocation stays one history entry.
func shellCommandLine(argv []string) string {
	parts := make([]string, 0, len(argv))
	for _, arg := range argv {
		arg = strings.ReplaceAll(arg, "\n", " ")
		arg = strings.ReplaceAll(arg, "\r", " ")
		parts = append(parts, escapeHistoryArg(arg))
	}
	return strings.Join(parts, " ")
}

func escapeHistoryArg(arg string) string {
	if arg == "" {
		return "''"
	}
	safe := true
	for _, ch := range arg {
		isAlnum := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
		if !isAlnum && !strings.ContainsRune("@%_+=:,./-", ch) {
			safe = false
			break
		}
	}
	if safe {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'"'"'`) + "'"
}

// detectHistoryFormat returns zsh's extended format only when the shell is
// zsh and the history file already uses extended entries.
func detectHistoryFormat(shell, histfile string) historyFormat {
	if filepath.Base(shell) != "zsh" {
		return formatPlain
	}
	if isZshExtendedHistory(histfile) {
		return formatZshExtended
	}
	return formatPlain
}

// isZshExtendedHistory sniffs the first non-empty line for the
// `: <timestamp>:<elapsed>;cmd` shape.
func isZshExtendedHistory(histfile string) bool {
	f, err := os.Open(histfile)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 0; i < 20 && scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		return strings.HasPrefix(line, ": ") && strings.Contains(line, ";")
	}
	return false
}

func formatHistoryEntry(format historyFormat, commandLine string, unixTime int64) string {
	if format == formatZshExtended {
		return fmt.Sprintf(": %d:0;%s\n", unixTime, commandLine)
	}
	return commandLine + "\n"
}
