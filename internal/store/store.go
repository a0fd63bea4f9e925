// Package store provides durable snapshot storage for the bet ledger.
// A snapshot is the full ordered sequence of placed bets, keyed by an
// opaque string so any key-value backend can satisfy the contract.
package store

import (
	"context"

	"github.com/rohan411hegde/mma-ev-tool/internal/models"
)

// Store persists ledger snapshots keyed by an opaque string
type Store interface {
	// Load retrieves the snapshot for key. A missing or unparseable
	// snapshot returns models.ErrSnapshotNotFound, never a fatal error.
	Load(ctx context.Context, key string) ([]models.PlacedBet, error)

	// Save replaces the snapshot for key with the given sequence.
	Save(ctx context.Context, key string, bets []models.PlacedBet) error
}
