package domain

// ComparisonResult is the outcome of comparing a user-side statistic
// against a market benchmark. Nil fields mean "not computable from the
// inputs", never an error condition.
type ComparisonResult struct {
	// GapAbsolute = userAvg - marketAvg. Nil when either side is unknown.
	GapAbsolute *float64

	// GapPercent = GapAbsolute / marketAvg * 100. Nil when the gap is
	// unknown or marketAvg is zero.
	GapPercent *float64

	// PotentialSaving is money recoverable by buying at market average:
	// gap * quantity when the gap is positive, 0 when the user already
	// buys at or below market, nil when the quantity is unknown.
	PotentialSaving *float64

	// MarketMin and MarketMax carry the raw observed market range so the
	// rendering layer can show a band rather than a single number.
	MarketMin *float64
	MarketMax *float64
}
