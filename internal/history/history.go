// Package history keeps the last verdict records in a bounded JSON file.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ppiankov/verdict/internal/model"
)

// DefaultCapacity is the number of records kept when none is configured
const DefaultCapacity = 100

// Log is a ring buffer of records persisted as one JSON array.
// Every append reads the whole file and rewrites it atomically.
type Log struct {
	path     string
	capacity int
	mu       sync.Mutex
}

// Open returns the history log stored at path. The file is created lazily.
func Open(path string, capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{path: path, capacity: capacity}
}

// Path returns the file backing the log
func (l *Log) Path() string {
	return l.path
}

// Append adds a record, dropping the oldest ones beyond capacity.
// A corrupt file is moved aside to <path>.corrupt and replaced.
func (l *Log) Append(rec model.VerdictRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.read()
	if err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &syntaxErr) && !errors.As(err, &typeErr) {
			return err
		}
		if err := os.Rename(l.path, l.path+".corrupt"); err != nil {
			return fmt.Errorf("move corrupt history: %w", err)
		}
		records = nil
	}

	records = append(records, rec)
	if len(records) > l.capacity {
		records = records[len(records)-l.capacity:]
	}
	return l.write(records)
}

// Load returns every stored record, oldest first. A missing file is empty.
func (l *Log) Load() ([]model.VerdictRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

// Recent returns up to n of the newest records, newest first
func (l *Log) Recent(n int) ([]model.VerdictRecord, error) {
	records, err := l.Load()
	if err != nil {
		return nil, err
	}
	if n <= 0 || n > len(records) {
		n = len(records)
	}
	out := make([]model.VerdictRecord, 0, n)
	for i := len(records) - 1; i >= len(records)-n; i-- {
		out = append(out, records[i])
	}
	return out, nil
}

// Clear removes every record
func (l *Log) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (l *Log) read() ([]model.VerdictRecord, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return []model.VerdictRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if len(data) == 0 {
		return []model.VerdictRecord{}, nil
	}

	var records []model.VerdictRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	if records == nil {
		records = []model.VerdictRecord{}
	}
	return records, nil
}

// write replaces the file through a temp file and rename
func (l *Log) write(records []model.VerdictRecord) error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close history: %w", err)
	}
	if err := os.Rename(tmpName, l.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}
