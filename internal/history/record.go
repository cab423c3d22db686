// Package history is the append-only execution ledger. Every completed run
// becomes one JSON line in a history file; lines are self-describing, so
// newer fields never break older readers and corrupt lines cost at most
// themselves.
package history

import (
	"os"
	"os/user"
	"time"

	"github.com/google/uuid"
)

const schemaVersion = 2

// Record is one ledger entry. It is immutable once written.
type Record struct {
	SchemaVersion    int      `json:"version"`
	ID               string   `json:"id,omitempty"`
	Timestamp        string   `json:"timestamp"`
	Program          string   `json:"program"`
	Args             []string `json:"args"`
	WorkingDirectory string   `json:"working_directory"`
	ExitCode         int      `json:"exit_code"`
	DurationMillis   int64    `json:"duration_ms,omitempty"`

	// provenance, all optional
	Runner     string `json:"runner,omitempty"`
	Target     string `json:"target,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
	Host       string `json:"host,omitempty"`
	User       string `json:"user,omitempty"`
}

// RecordInput carries the facts of one completed execution.
type RecordInput struct {
	Program          string
	Args             []string
	WorkingDirectory string
	ExitCode         int
	Duration         time.Duration
	Runner           string
	Target           string
	SourceFile       string
}

// NewRecord stamps an input with schema version, id, timestamp, and
// host/user provenance.
func NewRecord(input RecordInput) Record {
	rec := Record{
		SchemaVersion:    schemaVersion,
		ID:               uuid.NewString(),
		Timestamp:        time.Now().Format(time.RFC3339),
		Program:          input.Program,
		Args:             input.Args,
		WorkingDirectory: input.WorkingDirectory,
		ExitCode:         input.ExitCode,
		DurationMillis:   input.Duration.Milliseconds(),
		Runner:           input.Runner,
		Target:           input.Target,
		SourceFile:       input.SourceFile,
	}
	if host, err := os.Hostname(); err == nil {
		rec.Host = host
	}
	if u, err := user.Current(); err == nil {
		rec.User = u.Username
	}
	return rec
}
