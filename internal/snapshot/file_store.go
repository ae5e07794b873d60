package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"streetkart/internal/repository"
)

// fileStore implements Store on a single JSON file. Writes go through a
// temp file and rename so a crash never leaves a half-written snapshot.
type fileStore struct {
	path   string
	logger zerolog.Logger
}

// NewFileStore creates a file-backed snapshot store.
func NewFileStore(path string, logger zerolog.Logger) Store {
	return &fileStore{
		path:   path,
		logger: logger.With().Str("snapshot", "file").Logger(),
	}
}

// Save persists a snapshot, replacing the previous one.
func (s *fileStore) Save(_ context.Context, snap *repository.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	s.logger.Debug().
		Str("path", s.path).
		Int("bytes", len(data)).
		Msg("snapshot saved")
	return nil
}

// Load returns the most recent snapshot, or nil when none exists.
func (s *fileStore) Load(_ context.Context) (*repository.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug().Str("path", s.path).Msg("no snapshot on disk")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap repository.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	s.logger.Debug().Str("path", s.path).Msg("snapshot loaded")
	return &snap, nil
}

// Close releases resources held by the store.
func (s *fileStore) Close() error {
	return nil
}
