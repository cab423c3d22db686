package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Store appends to and reads from one history file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Append writes one record as a single JSON line. It holds an exclusive
// advisory lock for the duration of the write so concurrent rt processes
// never interleave lines. The lock is non-blocking: a held lock is an
// error, letting the caller fall through to another candidate path.
func (s *Store) Append(rec Record) error {
	if parent := filepath.Dir(s.path); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		return fmt.Errorf("lock history: %w", err)
	}
	defer unix.Flock(int(f.Fd()), unix.LOCK_UN)

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	line = append(line, '\n')

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return f.Sync()
}

// ReadAll returns every decodable record in the file, in file order.
// It takes no lock: appends are line-atomic enough that a concurrent
// writer costs at most one torn trailing line, which is dropped like any
// other undecodable line. A missing file is an empty ledger.
func (s *Store) ReadAll() ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("read history: %w", err)
	}
	return records, nil
}
