package domain

// MarketPricePoint is one benchmark observation for a product on the
// market feed. Corresponds to the market_prices table in ClickHouse.
type MarketPricePoint struct {
	ProductID string
	Date      string   // raw feed date
	Price     *float64 // HT, per catalog unit
	Source    string   // benchmark provider identifier
}

// MarketStat is the pre-reduced market side of a benchmark comparison.
// Any field may be nil when the feed had no usable observations.
type MarketStat struct {
	Avg *float64
	Min *float64
	Max *float64
}
