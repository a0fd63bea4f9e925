// Package odds provides American-odds payout math and display
// classification for EV signals.
package odds

import (
	"math"

	"github.com/rohan411hegde/mma-ev-tool/internal/models"
)

// Profit returns the gross profit (excluding stake) of a winning bet at
// the given American odds. Zero odds is not a representable market price
// and returns models.ErrInvalidOdds.
func Profit(stake float64, americanOdds int) (float64, error) {
	if americanOdds == 0 {
		return 0, models.ErrInvalidOdds
	}
	if americanOdds > 0 {
		return stake * float64(americanOdds) / 100, nil
	}
	return stake * 100 / math.Abs(float64(americanOdds)), nil
}

// Return is the total amount returned on a win: stake plus gross profit.
func Return(stake float64, americanOdds int) (float64, error) {
	profit, err := Profit(stake, americanOdds)
	if err != nil {
		return 0, err
	}
	return stake + profit, nil
}
