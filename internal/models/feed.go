package models

// FighterOdds holds one sportsbook's American odds for a fight
type FighterOdds struct {
	Book         string `json:"book"`
	Fighter1Odds int    `json:"fighter1_odds"`
	Fighter2Odds int    `json:"fighter2_odds"`
}

// Fight represents a scheduled bout with per-book odds from the feed
type Fight struct {
	Fighter1    string        `json:"fighter1"`
	Fighter2    string        `json:"fighter2"`
	EventName   string        `json:"event_name"`
	EventDate   string        `json:"event_date"`
	WeightClass string        `json:"weight_class"`
	Odds        []FighterOdds `json:"odds"`
	ScrapedAt   string        `json:"scraped_at"`
}

// EVOpportunity is a pre-computed betting-value signal from the feed.
// EV and Kelly figures are calculated upstream and consumed as given.
type EVOpportunity struct {
	Fighter            string  `json:"fighter"`
	Book               string  `json:"book"`
	EVPercentage       float64 `json:"ev_percentage"`
	ConfidenceScore    float64 `json:"confidence_score"`
	SharpConsensusProb float64 `json:"sharp_consensus_prob"`
	SquareProb         float64 `json:"square_prob"`
	Recommendation     string  `json:"recommendation"`
	FightInfo          string  `json:"fight_info"`
	KellySize          float64 `json:"kelly_size,omitempty"`
	KellyDollars       float64 `json:"kelly_dollars,omitempty"`
	KellyUnits         float64 `json:"kelly_units,omitempty"`
	KellyCategory      string  `json:"kelly_category,omitempty"`
}

// FightsResponse is the feed envelope for the fight schedule endpoint
type FightsResponse struct {
	Success bool    `json:"success"`
	Fights  []Fight `json:"fights"`
}

// OpportunitiesResponse is the feed envelope for the EV signal endpoint
type OpportunitiesResponse struct {
	Success       bool            `json:"success"`
	Opportunities []EVOpportunity `json:"opportunities"`
}
