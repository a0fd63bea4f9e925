// Package ledger owns the collection of placed bets and their
// settlement lifecycle.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rohan411hegde/mma-ev-tool/internal/metrics"
	"github.com/rohan411hegde/mma-ev-tool/internal/models"
	"github.com/rohan411hegde/mma-ev-tool/internal/odds"
	"github.com/rohan411hegde/mma-ev-tool/internal/store"
)

// DefaultSnapshotKey is the storage key used when none is configured
const DefaultSnapshotKey = "mma-bets"

// Ledger holds the ordered sequence of placed bets, insertion order
// preserved. Mutations apply in memory first and are then persisted;
// a failed save is logged, not surfaced, so the UI stays responsive.
type Ledger struct {
	bets   []models.PlacedBet
	store  store.Store
	key    string
	logger *logrus.Logger
	now    func() time.Time
	newID  func() string
}

// Option configures a Ledger
type Option func(*Ledger)

// WithClock overrides the time source, used in tests
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDGenerator overrides the bet id generator, used in tests
func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

// WithSeed replaces the default seed used when no prior snapshot exists
func WithSeed(seed []models.PlacedBet) Option {
	return func(l *Ledger) { l.bets = seed }
}

// New constructs a ledger, loading a prior snapshot from the store.
// When the snapshot is absent or fails to parse the ledger starts from
// the seed instead; loading never fails hard.
func New(ctx context.Context, st store.Store, key string, logger *logrus.Logger, opts ...Option) *Ledger {
	if key == "" {
		key = DefaultSnapshotKey
	}

	l := &Ledger{
		bets:   SeedBets(),
		store:  st,
		key:    key,
		logger: logger,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}

	for _, opt := range opts {
		opt(l)
	}

	if st != nil {
		loaded, err := st.Load(ctx, key)
		switch {
		case err == nil:
			l.bets = loaded
		case err == models.ErrSnapshotNotFound:
			logger.WithField("key", key).Info("No prior snapshot, starting from seed data")
		default:
			logger.WithError(err).WithField("key", key).Warn("Snapshot load failed, starting from seed data")
		}
	}

	return l
}

// Add appends a new pending bet built from the draft and returns its id
func (l *Ledger) Add(ctx context.Context, draft models.BetDraft) string {
	bet := models.PlacedBet{
		ID:               l.newID(),
		Fighter:          draft.Fighter,
		Opponent:         draft.Opponent,
		Book:             draft.Book,
		Odds:             draft.Odds,
		BetAmount:        draft.BetAmount,
		UnitSize:         draft.UnitSize,
		EVPercentage:     draft.EVPercentage,
		ConfidenceScore:  draft.ConfidenceScore,
		KellyRecommended: draft.KellyRecommended,
		PlacedDate:       l.now(),
		FightDate:        draft.FightDate,
		Status:           models.BetStatusPending,
		Notes:            draft.Notes,
	}

	l.bets = append(l.bets, bet)
	metrics.RecordBetPlaced()
	l.persist(ctx)

	l.logger.WithFields(logrus.Fields{
		"bet_id":  bet.ID,
		"fighter": bet.Fighter,
		"book":    bet.Book,
		"odds":    bet.Odds,
		"stake":   bet.BetAmount,
	}).Info("Bet added to ledger")

	return bet.ID
}

// Update merges the patch into the bet matching id, leaving nil fields
// untouched. Unknown ids are a no-op, safe for retries.
func (l *Ledger) Update(ctx context.Context, id string, patch models.BetPatch) {
	idx := l.indexOf(id)
	if idx < 0 {
		return
	}

	bet := &l.bets[idx]
	if patch.Fighter != nil {
		bet.Fighter = *patch.Fighter
	}
	if patch.Opponent != nil {
		bet.Opponent = *patch.Opponent
	}
	if patch.Book != nil {
		bet.Book = *patch.Book
	}
	if patch.Odds != nil {
		bet.Odds = *patch.Odds
	}
	if patch.BetAmount != nil {
		bet.BetAmount = *patch.BetAmount
	}
	if patch.UnitSize != nil {
		bet.UnitSize = *patch.UnitSize
	}
	if patch.EVPercentage != nil {
		bet.EVPercentage = *patch.EVPercentage
	}
	if patch.ConfidenceScore != nil {
		bet.ConfidenceScore = *patch.ConfidenceScore
	}
	if patch.KellyRecommended != nil {
		bet.KellyRecommended = *patch.KellyRecommended
	}
	if patch.FightDate != nil {
		bet.FightDate = *patch.FightDate
	}
	if patch.Status != nil {
		bet.Status = *patch.Status
	}
	if patch.ResultAmount != nil {
		bet.ResultAmount = patch.ResultAmount
	}
	if patch.SettledDate != nil {
		bet.SettledDate = patch.SettledDate
	}
	if patch.Notes != nil {
		bet.Notes = *patch.Notes
	}

	l.persist(ctx)
}

// Delete removes the bet matching id. Unknown ids are a no-op.
func (l *Ledger) Delete(ctx context.Context, id string) {
	idx := l.indexOf(id)
	if idx < 0 {
		return
	}

	l.bets = append(l.bets[:idx], l.bets[idx+1:]...)
	metrics.RecordBetDeleted()
	l.persist(ctx)

	l.logger.WithField("bet_id", id).Info("Bet removed from ledger")
}

// Settle resolves the bet matching id to won or lost. With no explicit
// result the returned amount is stake plus profit on a win and 0 on a
// loss. Re-settling an already-settled bet overwrites the prior result.
// Unknown ids are a no-op. The only error is invalid odds on an implicit
// win settlement, in which case nothing is applied.
func (l *Ledger) Settle(ctx context.Context, id string, won bool, resultAmount *float64) error {
	idx := l.indexOf(id)
	if idx < 0 {
		return nil
	}

	bet := &l.bets[idx]

	var amount float64
	switch {
	case resultAmount != nil:
		amount = *resultAmount
	case won:
		total, err := odds.Return(bet.BetAmount, bet.Odds)
		if err != nil {
			return err
		}
		amount = total
	default:
		amount = 0
	}

	outcome := models.BetStatusLost
	if won {
		outcome = models.BetStatusWon
	}

	settledAt := l.now()
	bet.Status = outcome
	bet.ResultAmount = &amount
	bet.SettledDate = &settledAt

	metrics.RecordBetSettled(string(outcome))
	l.persist(ctx)

	l.logger.WithFields(logrus.Fields{
		"bet_id":        id,
		"outcome":       outcome,
		"result_amount": amount,
	}).Info("Bet settled")

	return nil
}

// Get returns a copy of the bet matching id
func (l *Ledger) Get(id string) (models.PlacedBet, bool) {
	idx := l.indexOf(id)
	if idx < 0 {
		return models.PlacedBet{}, false
	}
	return l.bets[idx], true
}

// Bets returns a copy of the current sequence in insertion order
func (l *Ledger) Bets() []models.PlacedBet {
	out := make([]models.PlacedBet, len(l.bets))
	copy(out, l.bets)
	return out
}

// Len returns the number of bets in the ledger
func (l *Ledger) Len() int {
	return len(l.bets)
}

func (l *Ledger) indexOf(id string) int {
	for i := range l.bets {
		if l.bets[i].ID == id {
			return i
		}
	}
	return -1
}

// persist hands the full sequence to the store. The in-memory mutation
// is already applied and is not rolled back on failure.
func (l *Ledger) persist(ctx context.Context) {
	if l.store == nil {
		return
	}
	if err := l.store.Save(ctx, l.key, l.bets); err != nil {
		metrics.RecordSnapshotSaveFailure()
		l.logger.WithError(err).WithField("key", l.key).Error("Failed to persist ledger snapshot")
	}
}

// SeedBets returns the illustrative starter bet used when no prior
// snapshot exists, so a fresh install never shows an empty screen.
func SeedBets() []models.PlacedBet {
	placed, _ := time.Parse(time.RFC3339, "2025-08-01T12:00:00Z")
	fight, _ := time.Parse(time.RFC3339, "2025-08-09T22:00:00Z")

	return []models.PlacedBet{
		{
			ID:               "seed-1",
			Fighter:          "Nassourdine Imavov",
			Opponent:         "Caio Borralho",
			Book:             "DraftKings",
			Odds:             -135,
			BetAmount:        22,
			UnitSize:         2.2,
			EVPercentage:     2.1,
			ConfidenceScore:  74,
			KellyRecommended: 2.2,
			PlacedDate:       placed,
			FightDate:        fight,
			Status:           models.BetStatusPending,
			Notes:            "Starter bet - edit or delete",
		},
	}
}
