package models

import "time"

// BetStatus represents the settlement status of a placed bet
type BetStatus string

const (
	BetStatusPending BetStatus = "pending"
	BetStatusWon     BetStatus = "won"
	BetStatusLost    BetStatus = "lost"
)

// PlacedBet represents a tracked wager in the ledger
type PlacedBet struct {
	ID               string     `json:"id" validate:"required"`
	Fighter          string     `json:"fighter" validate:"required"`
	Opponent         string     `json:"opponent"`
	Book             string     `json:"book"`
	Odds             int        `json:"odds"` // American odds at placement
	BetAmount        float64    `json:"bet_amount" validate:"gte=0"`
	UnitSize         float64    `json:"unit_size"`
	EVPercentage     float64    `json:"ev_percentage"`
	ConfidenceScore  float64    `json:"confidence_score"`
	KellyRecommended float64    `json:"kelly_recommended"`
	PlacedDate       time.Time  `json:"placed_date"`
	FightDate        time.Time  `json:"fight_date"`
	Status           BetStatus  `json:"status" validate:"required,oneof=pending won lost"`
	ResultAmount     *float64   `json:"result_amount,omitempty"` // stake + profit, 0 if lost
	SettledDate      *time.Time `json:"settled_date,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

// IsSettled reports whether the bet has been resolved to won or lost
func (b *PlacedBet) IsSettled() bool {
	return b.Status == BetStatusWon || b.Status == BetStatusLost
}

// Returned is the amount a settled bet paid back, 0 when unset
func (b *PlacedBet) Returned() float64 {
	if b.ResultAmount == nil {
		return 0
	}
	return *b.ResultAmount
}

// BetDraft carries every PlacedBet field the caller supplies at creation.
// ID, PlacedDate and Status are assigned by the ledger.
type BetDraft struct {
	Fighter          string    `json:"fighter"`
	Opponent         string    `json:"opponent"`
	Book             string    `json:"book"`
	Odds             int       `json:"odds"`
	BetAmount        float64   `json:"bet_amount"`
	UnitSize         float64   `json:"unit_size"`
	EVPercentage     float64   `json:"ev_percentage"`
	ConfidenceScore  float64   `json:"confidence_score"`
	KellyRecommended float64   `json:"kelly_recommended"`
	FightDate        time.Time `json:"fight_date"`
	Notes            string    `json:"notes,omitempty"`
}

// BetPatch is a partial update for a placed bet. Nil fields are left
// untouched; Status may overwrite a settlement for manual corrections.
type BetPatch struct {
	Fighter          *string    `json:"fighter,omitempty"`
	Opponent         *string    `json:"opponent,omitempty"`
	Book             *string    `json:"book,omitempty"`
	Odds             *int       `json:"odds,omitempty"`
	BetAmount        *float64   `json:"bet_amount,omitempty"`
	UnitSize         *float64   `json:"unit_size,omitempty"`
	EVPercentage     *float64   `json:"ev_percentage,omitempty"`
	ConfidenceScore  *float64   `json:"confidence_score,omitempty"`
	KellyRecommended *float64   `json:"kelly_recommended,omitempty"`
	FightDate        *time.Time `json:"fight_date,omitempty"`
	Status           *BetStatus `json:"status,omitempty"`
	ResultAmount     *float64   `json:"result_amount,omitempty"`
	SettledDate      *time.Time `json:"settled_date,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
}
