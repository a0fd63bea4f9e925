package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/rohan411hegde/mma-ev-tool/internal/models"
)

// Estimated odds assigned to a translated opportunity. The feed carries
// no literal odds quote, so the draft uses a consensus-probability
// heuristic: favorites get -150, underdogs +150. An approximation, not
// a market quote; replace the odds before relying on settlement math.
const (
	estimatedFavoriteOdds = -150
	estimatedUnderdogOdds = 150
)

// Defaults applied when the opportunity carries no Kelly sizing
const (
	defaultBetAmount = 10.0
	defaultUnitSize  = 1.0
	defaultKellySize = 1.0
)

// ToDraft converts an EV opportunity into a draft bet ready for
// Ledger.Add.
func ToDraft(opp models.EVOpportunity, now time.Time) models.BetDraft {
	draft := models.BetDraft{
		Fighter:          opp.Fighter,
		Opponent:         opponentFromFightInfo(opp.FightInfo, opp.Fighter),
		Book:             opp.Book,
		Odds:             estimateOdds(opp.SharpConsensusProb),
		BetAmount:        defaultBetAmount,
		UnitSize:         defaultUnitSize,
		EVPercentage:     opp.EVPercentage,
		ConfidenceScore:  opp.ConfidenceScore,
		KellyRecommended: defaultKellySize,
		FightDate:        now.Add(7 * 24 * time.Hour),
		Notes:            fmt.Sprintf("Auto-tracked from EV signal: %s", opp.Recommendation),
	}

	if opp.KellyDollars != 0 {
		draft.BetAmount = opp.KellyDollars
	}
	if opp.KellyUnits != 0 {
		draft.UnitSize = opp.KellyUnits
	}
	if opp.KellySize != 0 {
		draft.KellyRecommended = opp.KellySize
	}

	return draft
}

// opponentFromFightInfo extracts the other fighter from a display
// string like "Jon Jones vs Tom Aspinall".
func opponentFromFightInfo(fightInfo, fighter string) string {
	for _, name := range strings.Split(fightInfo, " vs ") {
		name = strings.TrimSpace(name)
		if name != "" && name != fighter {
			return name
		}
	}
	return "Unknown"
}

// estimateOdds guesses a market price from the sharp consensus
// probability. Isolated here so a real quote source can replace it
// without touching ledger logic.
func estimateOdds(sharpConsensusProb float64) int {
	if sharpConsensusProb > 50 {
		return estimatedFavoriteOdds
	}
	return estimatedUnderdogOdds
}
