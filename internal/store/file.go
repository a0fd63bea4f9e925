package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rohan411hegde/mma-ev-tool/internal/models"
)

// FileStore persists snapshots as JSON files in a data directory,
// one file per key.
type FileStore struct {
	dir    string
	logger *logrus.Logger
}

// NewFileStore creates a file-backed store rooted at dir
func NewFileStore(dir string, logger *logrus.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// Load reads and parses the snapshot file for key
func (s *FileStore) Load(ctx context.Context, key string) ([]models.PlacedBet, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}

	var bets []models.PlacedBet
	if err := json.Unmarshal(data, &bets); err != nil {
		// A corrupt snapshot is treated as absent, never as fatal
		s.logger.WithError(err).WithField("key", key).Warn("Snapshot failed to parse, treating as absent")
		return nil, models.ErrSnapshotNotFound
	}

	return bets, nil
}

// Save writes the snapshot atomically via a temp file rename
func (s *FileStore) Save(ctx context.Context, key string, bets []models.PlacedBet) error {
	data, err := json.MarshalIndent(bets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(s.path(key))+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot %s: %w", key, err)
	}

	return nil
}

// path maps a key to its file, flattening path separators
func (s *FileStore) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}
