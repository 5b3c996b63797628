package reporting

import (
	"time"

	"resto-cost-lab/internal/analytics"
)

// Report is the full dashboard snapshot rendered by cmd/report.
type Report struct {
	GeneratedAt time.Time
	From        time.Time
	To          time.Time
	Interval    string

	SupplierSpend analytics.SupplierSpendView
	Consumption   analytics.ProductConsumptionView
	Market        analytics.MarketComparisonView
	MarginTrends  []analytics.RecipeMarginTrend
}
