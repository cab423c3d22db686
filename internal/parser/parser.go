// Package parser turns the heterogeneous task-listing output of external
// runners into a uniform task catalog. Every dialect parser is total:
// unrecognized lines are dropped, malformed JSON yields an empty catalog,
// and no input ever produces an error.
package parser

import "fmt"

// TaskEntry is one runnable task discovered in a listing.
type TaskEntry struct {
	Name        string
	Description string
}

func (t TaskEntry) String() string {
	if t.Description != "" {
		return fmt.Sprintf("%s  -  %s", t.Name, t.Description)
	}
	return t.Name
}

// Dialect identifies which listing format a raw text is in.
type Dialect int

const (
	DialectJust Dialect = iota
	DialectTask
	DialectMise
	DialectMask
	DialectCargoMake
	DialectMake
)

// Parse dispatches raw listing output to the parser for the given dialect.
// The returned catalog preserves the order tasks appear in the input.
func Parse(d Dialect, raw string) []TaskEntry {
	switch d {
	case DialectJust:
		return parseJust(raw)
	case DialectTask:
		return parseTask(raw)
	case DialectMise:
		return parseMise(raw)
	case DialectMask:
		return parseMask(raw)
	case DialectCargoMake:
		return parseCargoMake(raw)
	case DialectMake:
		return parseMake(raw)
	default:
		return nil
	}
}
