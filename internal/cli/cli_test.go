package cli

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/unvalley/rt/internal/history"
	"github.com/unvalley/rt/internal/parser"
)

func TestSplitTaskArgs(t *testing.T) {
	cases := []struct {
		args     []string
		wantTask string
		wantRest []string
	}{
		{nil, "", nil},
		{[]string{"build"}, "build", []string{}},
		{[]string{"build", "--", "--flag"}, "build", []string{"--flag"}},
		{[]string{"build", "--flag"}, "build", []string{"--flag"}},
	}
	for _, c := range cases {
		task, rest := splitTaskArgs(c.args)
		if task != c.wantTask {
			t.Errorf("splitTaskArgs(%v) task = %q, want %q", c.args, task, c.wantTask)
		}
		if len(rest) != len(c.wantRest) {
			t.Errorf("splitTaskArgs(%v) rest = %v, want %v", c.args, rest, c.wantRest)
			continue
		}
		for i := range rest {
			if rest[i] != c.wantRest[i] {
				t.Errorf("splitTaskArgs(%v) rest = %v, want %v", c.args, rest, c.wantRest)
			}
		}
	}
}

func TestPromptArgs_ReadsInOrder(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("prod\neu-west\n")

	values, err := promptArgs(&out, in, []string{"ENV", "REGION"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"prod", "eu-west"}; !reflect.DeepEqual(values, want) {
		t.Errorf("expected %v, got %v", want, values)
	}
	if !strings.Contains(out.String(), "ENV: ") || !strings.Contains(out.String(), "REGION: ") {
		t.Errorf("prompts missing from output: %q", out.String())
	}
}

func TestPromptArgs_MissingInputFails(t *testing.T) {
	var out bytes.Buffer
	if _, err := promptArgs(&out, strings.NewReader("only-one\n"), []string{"A", "B"}); err == nil {
		t.Fatal("expected error when input ends early")
	}
}

func TestPrintCatalog_AlignsDescriptions(t *testing.T) {
	var out bytes.Buffer
	printCatalog(&out, []parser.TaskEntry{
		{Name: "build", Description: "compile it"},
		{Name: "x"},
	})
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", lines)
	}
	if !strings.HasPrefix(lines[0], "build  -  compile it") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "x" {
		t.Errorf("expected bare name for entry without description, got %q", lines[1])
	}
}

func TestPrintHistory_FormatsRecords(t *testing.T) {
	var out bytes.Buffer
	printHistory(&out, []history.Record{
		{Timestamp: "2026-02-21T12:00:00Z", Program: "just", Args: []string{"build"}, WorkingDirectory: "/repo", ExitCode: 0},
		{Timestamp: "not-a-time", Program: "make", Args: []string{"install"}, ExitCode: 2},
	})

	got := out.String()
	if !strings.Contains(got, "2026-02-21 12:00:00") {
		t.Errorf("expected formatted timestamp, got %q", got)
	}
	if !strings.Contains(got, "just build") || !strings.Contains(got, "(/repo)") {
		t.Errorf("expected command line with cwd, got %q", got)
	}
	if !strings.Contains(got, "not-a-time") || !strings.Contains(got, "exit 2") {
		t.Errorf("expected raw timestamp and exit status, got %q", got)
	}
}
