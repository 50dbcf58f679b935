// Package store provides the persistence backend and the in-memory task
// collection. The backend serializes the whole collection to a single JSON
// file on every save; there is no journal and no partial write.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// TaskRecord is the flat representation of a task at the persistence
// boundary. Unknown keys in the backing file are ignored on load.
type TaskRecord struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// FileStore reads and writes the full task collection to a single JSON file.
//
// Load failures (missing file, unreadable file, malformed JSON) are treated
// as "no data yet": the condition is logged and an empty slice is returned.
// Save failures are real errors and are always propagated, because after a
// failed save the in-memory and on-disk states may disagree.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore creates a FileStore backed by the file at path.
// It returns an error if path is empty.
func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: storage file path cannot be empty", ErrSaveFailed)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &FileStore{
		path:   path,
		logger: logger.With(slog.String("component", "file_store")),
	}, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the full record list from the backing file.
// A missing, unreadable, or corrupt file yields an empty slice; the
// suppressed condition is logged at warn so corruption is not silent.
func (s *FileStore) Load(ctx context.Context) []TaskRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.WarnContext(ctx, "task file unreadable, treating as empty",
				slog.String("path", s.path),
				slog.String("error", err.Error()))
		}
		return []TaskRecord{}
	}

	var records []TaskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.WarnContext(ctx, "task file corrupt, treating as empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return []TaskRecord{}
	}

	if records == nil {
		records = []TaskRecord{}
	}
	return records
}

// Save serializes records and replaces the backing file. The document is
// written to a temp file in the same directory and renamed over the target,
// so readers never observe a partially written file.
func (s *FileStore) Save(ctx context.Context, records []TaskRecord) error {
	if records == nil {
		records = []TaskRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return NewStoreError("task", "save", "failed to marshal records",
			fmt.Errorf("%w: %w", ErrSaveFailed, err))
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return NewStoreError("task", "save", "failed to create temp file",
			fmt.Errorf("%w: %w", ErrSaveFailed, err))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return NewStoreError("task", "save", "failed to write temp file",
			fmt.Errorf("%w: %w", ErrSaveFailed, err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return NewStoreError("task", "save", "failed to close temp file",
			fmt.Errorf("%w: %w", ErrSaveFailed, err))
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return NewStoreError("task", "save", "failed to replace task file",
			fmt.Errorf("%w: %w", ErrSaveFailed, err))
	}

	s.logger.DebugContext(ctx, "task file saved",
		slog.String("path", s.path),
		slog.Int("record_count", len(records)))
	return nil
}
