package analytics

import (
	"resto-cost-lab/internal/benchmark"
	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/grouping"
	"resto-cost-lab/internal/scoring"
	"resto-cost-lab/internal/series"
)

// MarketStatsByProduct reduces the raw benchmark feed into one MarketStat
// per product for the requested range. Points with bad dates or missing
// prices are dropped at the series boundary.
func MarketStatsByProduct(points []domain.MarketPricePoint, p Params) map[string]domain.MarketStat {
	byProduct := make(map[string][]series.RawSample)
	for _, pt := range points {
		byProduct[pt.ProductID] = append(byProduct[pt.ProductID], series.RawSample{
			Date:  pt.Date,
			Value: pt.Price,
		})
	}

	out := make(map[string]domain.MarketStat, len(byProduct))
	for productID, samples := range byProduct {
		s := series.Build(samples).Window(p.From, p.To)
		summary := series.Summarize(s)
		if summary.Count == 0 {
			continue
		}
		out[productID] = domain.MarketStat{
			Avg: domain.Float(summary.Avg),
			Min: domain.Float(summary.Min),
			Max: domain.Float(summary.Max),
		}
	}
	return out
}

// MarketProductRow is one row of the market comparison page: the user's
// observed buying stats against the benchmark, plus the recommendation
// badge from the scoring ladder.
type MarketProductRow struct {
	ProductID     string
	Name          string
	UserAvgPrice  *float64
	UserQty       *float64
	Comparison    domain.ComparisonResult
	Volatility    *float64
	DaysSinceLast *int
	InterestPct   *float64
	Label         *domain.RecommendationLabel
}

// MarketComparisonView is the market page payload, sorted by product
// name with French collation.
type MarketComparisonView struct {
	Products []MarketProductRow
}

type marketUserAcc struct {
	qty       float64
	priceSum  float64
	priceN    int
	lastSeen  *int64 // unix seconds of latest parseable line date
	invoiceID map[string]struct{}
}

// BuildMarketComparison derives, per product, the user-side statistics
// from invoice lines in range, compares them against the benchmark feed,
// and classifies the result. Staleness is measured against the injected
// p.Now; interest is the share of invoices in range that include the
// product, as a percentage.
func BuildMarketComparison(
	lines []domain.InvoiceLine,
	products []domain.Product,
	points []domain.MarketPricePoint,
	p Params,
) MarketComparisonView {
	filter := grouping.InDateRange(p.From, p.To)

	byProduct := grouping.Aggregate(lines,
		func(l domain.InvoiceLine) string { return l.ProductID },
		filter,
		func(acc marketUserAcc, l domain.InvoiceLine) marketUserAcc {
			if acc.invoiceID == nil {
				acc.invoiceID = make(map[string]struct{})
			}
			if l.Quantity != nil {
				acc.qty += *l.Quantity
			}
			if unit := l.UnitPriceHT(); unit != nil {
				acc.priceSum += *unit
				acc.priceN++
			}
			if t, ok := series.ParseDate(l.Date); ok {
				unix := t.Unix()
				if acc.lastSeen == nil || unix > *acc.lastSeen {
					acc.lastSeen = &unix
				}
			}
			acc.invoiceID[l.InvoiceID] = struct{}{}
			return acc
		},
	)

	totalInvoices := countInvoices(lines, filter)
	market := MarketStatsByProduct(points, p)

	names := make(map[string]string, len(products))
	for _, pr := range products {
		names[pr.ProductID] = pr.Name
	}

	rows := make([]MarketProductRow, 0, len(byProduct))
	for _, g := range grouping.SortedGroups(byProduct) {
		acc := g.Value
		row := MarketProductRow{
			ProductID: g.Key,
			Name:      names[g.Key],
		}

		if acc.priceN > 0 {
			row.UserAvgPrice = domain.Float(acc.priceSum / float64(acc.priceN))
		}
		if acc.qty > 0 {
			row.UserQty = domain.Float(acc.qty)
		}
		if acc.lastSeen != nil {
			days := int(p.Now.Unix()-*acc.lastSeen) / 86400
			row.DaysSinceLast = &days
		}
		if totalInvoices > 0 {
			row.InterestPct = domain.Float(float64(len(acc.invoiceID)) / float64(totalInvoices) * 100)
		}

		stat := market[g.Key]
		row.Comparison = benchmark.Compare(row.UserAvgPrice, row.UserQty, stat.Avg, stat.Min, stat.Max)
		row.Volatility = benchmark.VolatilityIndex(stat.Min, stat.Max, stat.Avg)

		row.Label = scoring.Score(scoring.Input{
			GapPercent:               row.Comparison.GapPercent,
			VolatilityIndex:          row.Volatility,
			DaysSinceLastObservation: row.DaysSinceLast,
			InterestPercent:          row.InterestPct,
		})

		rows = append(rows, row)
	}
	grouping.SortByLabel(rows, func(r MarketProductRow) string { return r.Name })

	return MarketComparisonView{Products: rows}
}

func countInvoices(lines []domain.InvoiceLine, filter grouping.LineFilter) int {
	seen := make(map[string]struct{})
	for _, l := range lines {
		if !filter(l) {
			continue
		}
		seen[l.InvoiceID] = struct{}{}
	}
	return len(seen)
}
