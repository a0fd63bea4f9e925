package odds

// EVTier is the display tier of an EV edge
type EVTier string

const (
	EVTierStrong   EVTier = "strong"
	EVTierGood     EVTier = "good"
	EVTierDecent   EVTier = "decent"
	EVTierMarginal EVTier = "marginal"
)

// ConfidenceBand is the display band of a confidence score
type ConfidenceBand string

const (
	ConfidenceHigh    ConfidenceBand = "high"
	ConfidenceMedium  ConfidenceBand = "medium"
	ConfidenceLow     ConfidenceBand = "low"
	ConfidenceVeryLow ConfidenceBand = "very low"
)

// ClassifyEV maps an EV edge percentage to its display tier.
// Lower bounds are inclusive: exactly 2.5 is strong.
func ClassifyEV(evPercentage float64) EVTier {
	switch {
	case evPercentage >= 2.5:
		return EVTierStrong
	case evPercentage >= 1.5:
		return EVTierGood
	case evPercentage >= 1.0:
		return EVTierDecent
	default:
		return EVTierMarginal
	}
}

// ClassifyConfidence maps a 0-100 confidence score to its display band.
// Presentation only; no ledger decision depends on it.
func ClassifyConfidence(score float64) ConfidenceBand {
	switch {
	case score >= 80:
		return ConfidenceHigh
	case score >= 60:
		return ConfidenceMedium
	case score >= 40:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}
