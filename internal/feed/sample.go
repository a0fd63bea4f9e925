package feed

import "github.com/rohan411hegde/mma-ev-tool/internal/models"

// SampleFights returns the built-in fight schedule served when the feed
// is unreachable, so the caller never sees an empty or error state.
func SampleFights() []models.Fight {
	return []models.Fight{
		{
			Fighter1:    "Nassourdine Imavov",
			Fighter2:    "Caio Borralho",
			EventName:   "UFC Fight Night: Imavov vs Borralho",
			EventDate:   "2025-09-06",
			WeightClass: "Middleweight",
			Odds: []models.FighterOdds{
				{Book: "Pinnacle", Fighter1Odds: -125, Fighter2Odds: 105},
				{Book: "BetOnline", Fighter1Odds: -130, Fighter2Odds: 110},
				{Book: "DraftKings", Fighter1Odds: -110, Fighter2Odds: -110},
				{Book: "FanDuel", Fighter1Odds: -115, Fighter2Odds: -105},
			},
			ScrapedAt: "2025-08-20T09:00:00Z",
		},
		{
			Fighter1:    "Jon Jones",
			Fighter2:    "Tom Aspinall",
			EventName:   "UFC 320",
			EventDate:   "2025-10-04",
			WeightClass: "Heavyweight",
			Odds: []models.FighterOdds{
				{Book: "Pinnacle", Fighter1Odds: 135, Fighter2Odds: -155},
				{Book: "Circa Sports", Fighter1Odds: 140, Fighter2Odds: -160},
				{Book: "DraftKings", Fighter1Odds: 155, Fighter2Odds: -175},
				{Book: "Bet365", Fighter1Odds: 150, Fighter2Odds: -170},
			},
			ScrapedAt: "2025-08-20T09:00:00Z",
		},
	}
}

// SampleOpportunities returns the built-in EV signals matching the
// sample fights.
func SampleOpportunities() []models.EVOpportunity {
	return []models.EVOpportunity{
		{
			Fighter:            "Tom Aspinall",
			Book:               "DraftKings",
			EVPercentage:       2.8,
			ConfidenceScore:    82,
			SharpConsensusProb: 61.2,
			SquareProb:         58.4,
			Recommendation:     "STRONG BET",
			FightInfo:          "Jon Jones vs Tom Aspinall",
			KellySize:          2.4,
			KellyDollars:       24,
			KellyUnits:         2.4,
			KellyCategory:      "MEDIUM",
		},
		{
			Fighter:            "Nassourdine Imavov",
			Book:               "DraftKings",
			EVPercentage:       1.7,
			ConfidenceScore:    65,
			SharpConsensusProb: 55.1,
			SquareProb:         53.4,
			Recommendation:     "GOOD BET",
			FightInfo:          "Nassourdine Imavov vs Caio Borralho",
			KellySize:          1.1,
			KellyDollars:       11,
			KellyUnits:         1.1,
			KellyCategory:      "SMALL",
		},
	}
}
