package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohan411hegde/mma-ev-tool/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestFileStoreRoundTrip(t *testing.T) {
	st, err := NewFileStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	settled := 38.30
	settledAt := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	bets := []models.PlacedBet{
		{
			ID:           "bet-1",
			Fighter:      "Nassourdine Imavov",
			Opponent:     "Caio Borralho",
			Book:         "DraftKings",
			Odds:         -135,
			BetAmount:    22,
			Status:       models.BetStatusWon,
			ResultAmount: &settled,
			SettledDate:  &settledAt,
		},
		{ID: "bet-2", Fighter: "Jon Jones", Odds: 150, BetAmount: 10, Status: models.BetStatusPending},
	}

	require.NoError(t, st.Save(context.Background(), "mma-bets", bets))

	loaded, err := st.Load(context.Background(), "mma-bets")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "bet-1", loaded[0].ID, "insertion order preserved")
	require.NotNil(t, loaded[0].ResultAmount)
	assert.Equal(t, 38.30, *loaded[0].ResultAmount)
	assert.Nil(t, loaded[1].ResultAmount)
}

func TestFileStoreLoadMissingKey(t *testing.T) {
	st, err := NewFileStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	_, err = st.Load(context.Background(), "nothing-here")
	assert.ErrorIs(t, err, models.ErrSnapshotNotFound)
}

func TestFileStoreCorruptSnapshotTreatedAsAbsent(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir, testLogger())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "mma-bets.json"), []byte("{not json"), 0o644))

	_, err = st.Load(context.Background(), "mma-bets")
	assert.ErrorIs(t, err, models.ErrSnapshotNotFound)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	st, err := NewFileStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	require.NoError(t, st.Save(context.Background(), "k", []models.PlacedBet{{ID: "a"}}))
	require.NoError(t, st.Save(context.Background(), "k", []models.PlacedBet{{ID: "b"}}))

	loaded, err := st.Load(context.Background(), "k")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "b", loaded[0].ID)
}

func TestFileStoreKeyFlattening(t *testing.T) {
	st, err := NewFileStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	require.NoError(t, st.Save(context.Background(), "a/b", []models.PlacedBet{{ID: "x"}}))

	loaded, err := st.Load(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "x", loaded[0].ID)
}
