package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohan411hegde/mma-ev-tool/internal/models"
)

func settled(status models.BetStatus, stake, returned float64) models.PlacedBet {
	return models.PlacedBet{Status: status, BetAmount: stake, ResultAmount: &returned}
}

func TestComputeStatsEmptyLedger(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.TotalBets)
	assert.Equal(t, 0.0, stats.WinRate)
	assert.Equal(t, 0.0, stats.NetProfit)
	assert.Equal(t, 0.0, stats.ROI)
}

func TestComputeStatsSingleWonBet(t *testing.T) {
	// $22 at -135, won with no explicit result: returned ~38.30
	stats := ComputeStats([]models.PlacedBet{settled(models.BetStatusWon, 22, 38.2963)})

	assert.Equal(t, 1, stats.TotalBets)
	assert.Equal(t, 1, stats.WonBets)
	assert.Equal(t, 1, stats.SettledBets)
	assert.InDelta(t, 16.30, stats.NetProfit, 0.01)
	assert.InDelta(t, 74.1, stats.ROI, 0.05)
	assert.Equal(t, 100.0, stats.WinRate)
}

func TestComputeStatsMixedLedger(t *testing.T) {
	bets := []models.PlacedBet{
		settled(models.BetStatusWon, 10, 25),
		settled(models.BetStatusLost, 20, 0),
		{Status: models.BetStatusPending, BetAmount: 15},
	}

	stats := ComputeStats(bets)
	assert.Equal(t, 3, stats.TotalBets)
	assert.Equal(t, 1, stats.WonBets)
	assert.Equal(t, 1, stats.LostBets)
	assert.Equal(t, 1, stats.PendingBets)
	assert.Equal(t, 2, stats.SettledBets)
	assert.Equal(t, 30.0, stats.TotalWagered, "pending stake excluded")
	assert.Equal(t, 25.0, stats.TotalReturned)
	assert.Equal(t, -5.0, stats.NetProfit)
	assert.Equal(t, 50.0, stats.WinRate)
	assert.InDelta(t, -16.67, stats.ROI, 0.01)
}

func TestComputeStatsMissingResultCountsAsZero(t *testing.T) {
	bets := []models.PlacedBet{
		{Status: models.BetStatusWon, BetAmount: 10}, // settled but no result recorded
	}

	stats := ComputeStats(bets)
	assert.Equal(t, 10.0, stats.TotalWagered)
	assert.Equal(t, 0.0, stats.TotalReturned)
	assert.Equal(t, -10.0, stats.NetProfit)
}

func TestDisplayRounding(t *testing.T) {
	stats := Stats{
		TotalWagered: 22,
		NetProfit:    16.296296,
		WinRate:      74.0740740,
		ROI:          74.0740740,
	}

	display := stats.Display()
	require.Equal(t, 16.30, display.NetProfit)
	assert.Equal(t, 74.1, display.WinRate)
	assert.Equal(t, 74.1, display.ROI)
}
