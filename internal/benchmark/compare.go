package benchmark

import "resto-cost-lab/internal/domain"

// Compare computes the gap between a user's observed average and the
// market benchmark. Unknown inputs propagate as nil output fields; the
// function never fails on missing data because a single gap widget must
// not take down a dashboard render.
func Compare(userAvg, userQty, marketAvg, marketMin, marketMax *float64) domain.ComparisonResult {
	result := domain.ComparisonResult{
		MarketMin: copyFloat(marketMin),
		MarketMax: copyFloat(marketMax),
	}

	if userAvg == nil || marketAvg == nil {
		return result
	}

	gap := *userAvg - *marketAvg
	result.GapAbsolute = &gap

	if *marketAvg != 0 {
		pct := gap / *marketAvg * 100
		result.GapPercent = &pct
	}

	// PotentialSaving means "money recoverable", never "money already
	// saved": a user buying at or below market recovers nothing, so the
	// field clamps to 0 rather than going negative. The sign of the gap
	// itself is surfaced through GapAbsolute.
	if userQty != nil {
		saving := 0.0
		if gap > 0 {
			saving = gap * *userQty
		}
		result.PotentialSaving = &saving
	}

	return result
}

// VolatilityIndex is the normalized spread (max-min)/avg of a market
// price range. Nil when any input is unknown or the average is zero.
// Only the recommendation scorer consumes this; the UI renders the raw
// (min, max) pair instead.
func VolatilityIndex(marketMin, marketMax, marketAvg *float64) *float64 {
	if marketMin == nil || marketMax == nil || marketAvg == nil || *marketAvg == 0 {
		return nil
	}
	idx := (*marketMax - *marketMin) / *marketAvg
	return &idx
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
