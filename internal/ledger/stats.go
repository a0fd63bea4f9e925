package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/rohan411hegde/mma-ev-tool/internal/models"
)

// Stats represents ledger-wide performance metrics. Values are the
// unrounded source of truth; use Display for presentation rounding.
type Stats struct {
	TotalBets     int     `json:"total_bets"`
	WonBets       int     `json:"won_bets"`
	LostBets      int     `json:"lost_bets"`
	PendingBets   int     `json:"pending_bets"`
	SettledBets   int     `json:"settled_bets"`
	TotalWagered  float64 `json:"total_wagered"`
	TotalReturned float64 `json:"total_returned"`
	NetProfit     float64 `json:"net_profit"`
	WinRate       float64 `json:"win_rate"`
	ROI           float64 `json:"roi"`
}

// DisplayStats carries stats rounded for presentation: percentages to
// one decimal place, currency to two.
type DisplayStats struct {
	TotalBets     int     `json:"total_bets"`
	WonBets       int     `json:"won_bets"`
	LostBets      int     `json:"lost_bets"`
	PendingBets   int     `json:"pending_bets"`
	SettledBets   int     `json:"settled_bets"`
	TotalWagered  float64 `json:"total_wagered"`
	TotalReturned float64 `json:"total_returned"`
	NetProfit     float64 `json:"net_profit"`
	WinRate       float64 `json:"win_rate"`
	ROI           float64 `json:"roi"`
}

// ComputeStats derives metrics from the given ledger snapshot. Always
// recomputed from scratch, never cached.
func ComputeStats(bets []models.PlacedBet) Stats {
	stats := Stats{TotalBets: len(bets)}

	for i := range bets {
		bet := &bets[i]
		switch bet.Status {
		case models.BetStatusWon:
			stats.WonBets++
		case models.BetStatusLost:
			stats.LostBets++
		default:
			stats.PendingBets++
		}

		if bet.IsSettled() {
			stats.SettledBets++
			stats.TotalWagered += bet.BetAmount
			stats.TotalReturned += bet.Returned()
		}
	}

	stats.NetProfit = stats.TotalReturned - stats.TotalWagered
	if stats.SettledBets > 0 {
		stats.WinRate = 100 * float64(stats.WonBets) / float64(stats.SettledBets)
	}
	if stats.TotalWagered != 0 {
		stats.ROI = 100 * stats.NetProfit / stats.TotalWagered
	}

	return stats
}

// Display returns the stats rounded for presentation
func (s Stats) Display() DisplayStats {
	return DisplayStats{
		TotalBets:     s.TotalBets,
		WonBets:       s.WonBets,
		LostBets:      s.LostBets,
		PendingBets:   s.PendingBets,
		SettledBets:   s.SettledBets,
		TotalWagered:  roundCurrency(s.TotalWagered),
		TotalReturned: roundCurrency(s.TotalReturned),
		NetProfit:     roundCurrency(s.NetProfit),
		WinRate:       roundPercent(s.WinRate),
		ROI:           roundPercent(s.ROI),
	}
}

func roundCurrency(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func roundPercent(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return f
}
