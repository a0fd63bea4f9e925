package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rohan411hegde/mma-ev-tool/internal/models"
)

// MockStore is a mock implementation of store.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context, key string) ([]models.PlacedBet, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlacedBet), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, key string, bets []models.PlacedBet) error {
	args := m.Called(ctx, key, bets)
	return args.Error(0)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newTestLedger(t *testing.T, st *MockStore) *Ledger {
	t.Helper()

	if st == nil {
		st = &MockStore{}
		st.On("Load", mock.Anything, mock.Anything).Return(nil, models.ErrSnapshotNotFound)
		st.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	}

	counter := 0
	return New(context.Background(), st, "test", testLogger(),
		WithSeed(nil),
		WithClock(func() time.Time { return time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC) }),
		WithIDGenerator(func() string {
			counter++
			return fmt.Sprintf("bet-%d", counter)
		}),
	)
}

func TestNewLoadsPriorSnapshot(t *testing.T) {
	prior := []models.PlacedBet{{ID: "existing", Fighter: "Jon Jones", Status: models.BetStatusPending}}

	st := &MockStore{}
	st.On("Load", mock.Anything, "test").Return(prior, nil)

	l := New(context.Background(), st, "test", testLogger())
	require.Equal(t, 1, l.Len())

	bet, ok := l.Get("existing")
	require.True(t, ok)
	assert.Equal(t, "Jon Jones", bet.Fighter)
	st.AssertExpectations(t)
}

func TestNewFallsBackToSeedWhenAbsent(t *testing.T) {
	st := &MockStore{}
	st.On("Load", mock.Anything, "test").Return(nil, models.ErrSnapshotNotFound)

	l := New(context.Background(), st, "test", testLogger())
	require.Equal(t, 1, l.Len(), "seed contains one illustrative bet")
	assert.Equal(t, models.BetStatusPending, l.Bets()[0].Status)
}

func TestNewFallsBackToSeedOnLoadError(t *testing.T) {
	st := &MockStore{}
	st.On("Load", mock.Anything, "test").Return(nil, errors.New("connection refused"))

	l := New(context.Background(), st, "test", testLogger())
	assert.Equal(t, 1, l.Len())
}

func TestAddAssignsIDAndPending(t *testing.T) {
	l := newTestLedger(t, nil)

	id := l.Add(context.Background(), models.BetDraft{
		Fighter:   "Jon Jones",
		Opponent:  "Tom Aspinall",
		Book:      "DraftKings",
		Odds:      -150,
		BetAmount: 25,
	})

	require.NotEmpty(t, id)
	bet, ok := l.Get(id)
	require.True(t, ok)
	assert.Equal(t, models.BetStatusPending, bet.Status)
	assert.False(t, bet.PlacedDate.IsZero())
	assert.Nil(t, bet.ResultAmount)
	assert.Nil(t, bet.SettledDate)
}

func TestAddThenDeleteRoundTrip(t *testing.T) {
	l := newTestLedger(t, nil)
	before := l.Bets()

	id := l.Add(context.Background(), models.BetDraft{Fighter: "Jon Jones", Odds: 150, BetAmount: 10})
	require.Equal(t, len(before)+1, l.Len())

	l.Delete(context.Background(), id)
	assert.Equal(t, before, l.Bets())
}

func TestUpdateEmptyPatchIsNoOp(t *testing.T) {
	l := newTestLedger(t, nil)
	id := l.Add(context.Background(), models.BetDraft{Fighter: "Jon Jones", Odds: -135, BetAmount: 22})
	before := l.Bets()

	l.Update(context.Background(), id, models.BetPatch{})
	assert.Equal(t, before, l.Bets())
}

func TestUpdateMergesOnlyGivenFields(t *testing.T) {
	l := newTestLedger(t, nil)
	id := l.Add(context.Background(), models.BetDraft{Fighter: "Jon Jones", Book: "DraftKings", Odds: -135, BetAmount: 22})

	stake := 30.0
	l.Update(context.Background(), id, models.BetPatch{BetAmount: &stake})

	bet, _ := l.Get(id)
	assert.Equal(t, 30.0, bet.BetAmount)
	assert.Equal(t, "Jon Jones", bet.Fighter)
	assert.Equal(t, "DraftKings", bet.Book)
	assert.Equal(t, -135, bet.Odds)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	l := newTestLedger(t, nil)
	before := l.Bets()

	stake := 50.0
	l.Update(context.Background(), "missing", models.BetPatch{BetAmount: &stake})
	assert.Equal(t, before, l.Bets())
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	l := newTestLedger(t, nil)
	id := l.Add(context.Background(), models.BetDraft{Fighter: "Jon Jones", Odds: 150, BetAmount: 10})
	before := l.Bets()

	l.Delete(context.Background(), "missing")
	assert.Equal(t, before, l.Bets())

	_, ok := l.Get(id)
	assert.True(t, ok)
}

func TestSettleWonComputesReturn(t *testing.T) {
	l := newTestLedger(t, nil)
	id := l.Add(context.Background(), models.BetDraft{Fighter: "Nassourdine Imavov", Odds: -135, BetAmount: 22})

	require.NoError(t, l.Settle(context.Background(), id, true, nil))

	bet, _ := l.Get(id)
	assert.Equal(t, models.BetStatusWon, bet.Status)
	require.NotNil(t, bet.ResultAmount)
	assert.InDelta(t, 38.30, *bet.ResultAmount, 0.01)
	require.NotNil(t, bet.SettledDate)
}

func TestSettleLostZeroesReturn(t *testing.T) {
	l := newTestLedger(t, nil)
	id := l.Add(context.Background(), models.BetDraft{Fighter: "Jon Jones", Odds: 150, BetAmount: 10})

	require.NoError(t, l.Settle(context.Background(), id, false, nil))

	bet, _ := l.Get(id)
	assert.Equal(t, models.BetStatusLost, bet.Status)
	require.NotNil(t, bet.ResultAmount)
	assert.Equal(t, 0.0, *bet.ResultAmount)
}

func TestSettleExplicitResultUsedVerbatim(t *testing.T) {
	l := newTestLedger(t, nil)
	id := l.Add(context.Background(), models.BetDraft{Fighter: "Jon Jones", Odds: -135, BetAmount: 22})

	explicit := 40.0
	require.NoError(t, l.Settle(context.Background(), id, true, &explicit))

	bet, _ := l.Get(id)
	assert.Equal(t, 40.0, *bet.ResultAmount)
}

func TestSettleUnknownIDIsNoOp(t *testing.T) {
	l := newTestLedger(t, nil)
	before := l.Bets()

	require.NoError(t, l.Settle(context.Background(), "missing", true, nil))
	assert.Equal(t, before, l.Bets())
}

func TestResettleOverwritesPriorResult(t *testing.T) {
	l := newTestLedger(t, nil)
	id := l.Add(context.Background(), models.BetDraft{Fighter: "Jon Jones", Odds: 100, BetAmount: 10})

	require.NoError(t, l.Settle(context.Background(), id, true, nil))
	require.NoError(t, l.Settle(context.Background(), id, false, nil))

	bet, _ := l.Get(id)
	assert.Equal(t, models.BetStatusLost, bet.Status)
	assert.Equal(t, 0.0, *bet.ResultAmount)
}

func TestSettleZeroOddsWinAppliesNothing(t *testing.T) {
	l := newTestLedger(t, nil)
	id := l.Add(context.Background(), models.BetDraft{Fighter: "Jon Jones", Odds: 0, BetAmount: 10})

	err := l.Settle(context.Background(), id, true, nil)
	require.ErrorIs(t, err, models.ErrInvalidOdds)

	bet, _ := l.Get(id)
	assert.Equal(t, models.BetStatusPending, bet.Status)
	assert.Nil(t, bet.ResultAmount)
}

func TestSaveFailureKeepsInMemoryMutation(t *testing.T) {
	st := &MockStore{}
	st.On("Load", mock.Anything, "test").Return(nil, models.ErrSnapshotNotFound)
	st.On("Save", mock.Anything, "test", mock.Anything).Return(errors.New("disk full"))

	l := New(context.Background(), st, "test", testLogger(), WithSeed(nil))
	id := l.Add(context.Background(), models.BetDraft{Fighter: "Jon Jones", Odds: 150, BetAmount: 10})

	_, ok := l.Get(id)
	assert.True(t, ok, "mutation stays applied when persistence fails")
	st.AssertExpectations(t)
}

func TestMutationsPersistFullSnapshot(t *testing.T) {
	st := &MockStore{}
	st.On("Load", mock.Anything, "test").Return([]models.PlacedBet{}, nil)
	st.On("Save", mock.Anything, "test", mock.Anything).Return(nil)

	l := New(context.Background(), st, "test", testLogger())
	l.Add(context.Background(), models.BetDraft{Fighter: "Jon Jones", Odds: 150, BetAmount: 10})

	st.AssertNumberOfCalls(t, "Save", 1)
}
