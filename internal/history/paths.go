package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const fileName = "history.jsonl"

// Candidates returns history file locations in preference order. Appends
// take the first location that accepts the write; reads merge all of them.
func Candidates(xdgStateHome, home string) []string {
	var paths []string
	if xdgStateHome != "" {
		paths = append(paths, filepath.Join(xdgStateHome, "rt", fileName))
	}
	if home != "" {
		paths = append(paths,
			filepath.Join(home, ".local", "state", "rt", fileName),
			filepath.Join(home, ".rt", fileName),
		)
	}
	if len(paths) == 0 {
		paths = append(paths, filepath.Join(".rt", fileName))
	}
	return paths
}

func defaultCandidates() []string {
	return Candidates(os.Getenv("XDG_STATE_HOME"), os.Getenv("HOME"))
}

// Append records one execution in the first default location that accepts
// it. A failure on one candidate (lock held, unwritable directory) moves on
// to the next; only when every candidate refuses does the error surface.
func Append(input RecordInput) error {
	return appendTo(defaultCandidates(), NewRecord(input))
}

func appendTo(paths []string, rec Record) error {
	var errs []error
	for _, path := range paths {
		if err := NewStore(path).Append(rec); err != nil {
			errs = append(errs, err)
			continue
		}
		return nil
	}
	if len(errs) == 0 {
		return errors.New("no history location available")
	}
	return fmt.Errorf("append history: %w", errors.Join(errs...))
}

// ReadMerged reads every default location and returns all records sorted by
// timestamp ascending.
func ReadMerged() ([]Record, error) {
	return readMergedFrom(defaultCandidates())
}

func readMergedFrom(paths []string) ([]Record, error) {
	var all []Record
	var lastErr error

	for _, path := range paths {
		records, err := NewStore(path).ReadAll()
		if err != nil {
			lastErr = err
			continue
		}
		all = append(all, records...)
	}

	if len(all) == 0 && lastErr != nil {
		return nil, lastErr
	}

	sortRecords(all)
	return all, nil
}

// sortRecords orders by parsed timestamp ascending. Records whose timestamp
// does not parse sort after those that do, lexically among themselves.
func sortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, iOK := parseTimestamp(records[i].Timestamp)
		tj, jOK := parseTimestamp(records[j].Timestamp)
		switch {
		case iOK && jOK:
			return ti.Before(tj)
		case iOK:
			return true
		case jOK:
			return false
		default:
			return records[i].Timestamp < records[j].Timestamp
		}
	})
}

func parseTimestamp(value string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
