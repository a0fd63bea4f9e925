package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/rohan411hegde/mma-ev-tool/internal/database"
	"github.com/rohan411hegde/mma-ev-tool/internal/models"
)

// PostgresStore persists snapshots in a key-value table, the whole
// ledger serialized as one JSONB document per key.
type PostgresStore struct {
	db     *database.DB
	logger *logrus.Logger
}

// NewPostgresStore creates a postgres-backed store and ensures the
// snapshot table exists.
func NewPostgresStore(ctx context.Context, db *database.DB, logger *logrus.Logger) (*PostgresStore, error) {
	query := `
		CREATE TABLE IF NOT EXISTS ledger_snapshots (
			key        TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.GetPool().Exec(ctx, query); err != nil {
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}

	return &PostgresStore{db: db, logger: logger}, nil
}

// Load retrieves the snapshot document for key
func (s *PostgresStore) Load(ctx context.Context, key string) ([]models.PlacedBet, error) {
	query := `SELECT data FROM ledger_snapshots WHERE key = $1`

	var data []byte
	err := s.db.GetPool().QueryRow(ctx, query, key).Scan(&data)
	if err == pgx.ErrNoRows {
		return nil, models.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}

	var bets []models.PlacedBet
	if err := json.Unmarshal(data, &bets); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Snapshot failed to parse, treating as absent")
		return nil, models.ErrSnapshotNotFound
	}

	return bets, nil
}

// Save upserts the snapshot document for key
func (s *PostgresStore) Save(ctx context.Context, key string, bets []models.PlacedBet) error {
	data, err := json.Marshal(bets)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot %s: %w", key, err)
	}

	query := `
		INSERT INTO ledger_snapshots (key, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`
	if _, err := s.db.GetPool().Exec(ctx, query, key, data); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}

	return nil
}
