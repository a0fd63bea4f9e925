package odds

import (
	"math"
	"testing"

	"github.com/rohan411hegde/mma-ev-tool/internal/models"
)

func TestProfitFavorite(t *testing.T) {
	profit, err := Profit(100, -150)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(profit-66.67) > 0.005 {
		t.Fatalf("expected profit ~66.67, got %.4f", profit)
	}
}

func TestProfitUnderdog(t *testing.T) {
	profit, err := Profit(100, 150)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if profit != 150 {
		t.Fatalf("expected profit 150, got %.4f", profit)
	}
}

func TestProfitZeroOdds(t *testing.T) {
	_, err := Profit(100, 0)
	if err != models.ErrInvalidOdds {
		t.Fatalf("expected ErrInvalidOdds, got %v", err)
	}
}

func TestProfitNeverNegative(t *testing.T) {
	stakes := []float64{0, 1, 22, 100, 1000}
	oddsValues := []int{-10000, -135, -110, -100, 100, 110, 150, 10000}

	for _, stake := range stakes {
		for _, o := range oddsValues {
			profit, err := Profit(stake, o)
			if err != nil {
				t.Fatalf("unexpected error at stake=%f odds=%d: %v", stake, o, err)
			}
			if profit < 0 {
				t.Fatalf("negative profit %.4f at stake=%f odds=%d", profit, stake, o)
			}
		}
	}
}

func TestReturnIncludesStake(t *testing.T) {
	total, err := Return(22, -135)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(total-38.296) > 0.01 {
		t.Fatalf("expected return ~38.30, got %.4f", total)
	}
}
