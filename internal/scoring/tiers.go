package scoring

import "resto-cost-lab/internal/domain"

// TierForGap maps a price-gap percentage to a severity tier for the
// consumption-ranking badges. This is a distinct rule set from the
// recommendation ladder — plain thresholds, no staleness or volatility
// input — and the two must not be merged.
//
// Returns nil when the gap is unknown.
func TierForGap(gapPercent *float64) *domain.GapTier {
	if gapPercent == nil {
		return nil
	}

	var tier domain.GapTier
	switch gap := *gapPercent; {
	case gap < 0:
		tier = domain.TierSaving
	case gap < 2:
		tier = domain.TierFair
	case gap < 10:
		tier = domain.TierElevated
	default:
		tier = domain.TierCritical
	}
	return &tier
}
