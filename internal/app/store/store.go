// Package store persists the collection as a single JSON array file,
// rewritten in full on every append.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio/v2"

	"lokgeet/internal/app/errs"
	"lokgeet/internal/app/model"
)

// EntryStore is the append-only collection of entries. Append and
// ExportAll hold a process-local mutex, so one process has a single
// writer; the file itself is not locked across processes.
type EntryStore struct {
	path string
	mu   sync.Mutex
}

// NewJSONStore creates an EntryStore backed by the JSON file at path.
// The file is created on the first append, not here.
func NewJSONStore(path string) *EntryStore {
	return &EntryStore{path: path}
}

// LoadAll returns every entry in insertion order. A store that has never
// been written yields the empty collection, not an error. A file that
// exists but does not parse as the expected structure is reported as
// corrupt, never silently replaced.
func (s *EntryStore) LoadAll() ([]model.Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []model.Entry{}, nil
	}
	if err != nil {
		return nil, errs.Wrapf(err, "read collection file %s", s.path)
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errs.Wrapf(errs.ErrCorruptStore, "%s: %v", s.path, err)
	}
	return entries, nil
}

// Append reads the full collection, appends entry and rewrites the file.
// Last writer wins across processes; within this process the mutex keeps
// appends sequential.
func (s *EntryStore) Append(entry model.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.LoadAll()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return s.write(s.path, entries)
}

// ExportAll writes the full collection to destinationPath in the same
// shape as the backing file and returns the number of entries written.
func (s *EntryStore) ExportAll(destinationPath string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.LoadAll()
	if err != nil {
		return 0, err
	}
	if err := s.write(destinationPath, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (s *EntryStore) write(path string, entries []model.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errs.Wrap(err, "encode collection")
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.Wrapf(err, "create directory %s", dir)
		}
	}
	// Write-temp-then-rename: an interrupted rewrite must never leave the
	// collection truncated, the previous generation stays intact until
	// the new one is complete.
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return errs.Wrapf(err, "write collection file %s", path)
	}
	return nil
}
