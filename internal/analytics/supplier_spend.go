package analytics

import (
	"resto-cost-lab/internal/bucketing"
	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/grouping"
	"resto-cost-lab/internal/series"
)

// SupplierSpend is one row of the supplier spend ranking.
type SupplierSpend struct {
	SupplierID string
	Name       string
	Total      float64 // HT
	LineCount  int
	SharePct   float64 // share of total spend in range
}

// SupplierSpendView is the supplier page payload: ranking plus the
// spend-per-interval trend for the whole range.
type SupplierSpendView struct {
	TotalSpend float64
	Suppliers  []SupplierSpend
	Trend      []domain.AggregateBucket
	Change     series.Change
}

type spendAcc struct {
	total float64
	count int
}

// BuildSupplierSpend aggregates invoice lines into per-supplier spend for
// the requested range. Lines outside the range, with unparseable dates,
// or without a computable HT amount are excluded before grouping, so a
// supplier with no usable lines is simply absent. extra narrows the rows
// further (label search, supplier allow-list); pass nil for none.
func BuildSupplierSpend(
	lines []domain.InvoiceLine,
	suppliers []domain.Supplier,
	p Params,
	extra grouping.LineFilter,
) SupplierSpendView {
	filter := grouping.All(
		grouping.InDateRange(p.From, p.To),
		hasAmountHT,
		orTrue(extra),
	)

	bySupplier := grouping.Aggregate(lines,
		func(l domain.InvoiceLine) string { return l.SupplierID },
		filter,
		func(acc spendAcc, l domain.InvoiceLine) spendAcc {
			acc.total += *l.AmountHT()
			acc.count++
			return acc
		},
	)

	names := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		names[s.SupplierID] = s.Name
	}

	// Summing in fixed key order keeps the float total bit-identical
	// across runs over unchanged data.
	groups := grouping.SortedGroups(bySupplier)
	total := 0.0
	for _, g := range groups {
		total += g.Value.total
	}

	rows := make([]SupplierSpend, 0, len(bySupplier))
	for _, g := range groups {
		row := SupplierSpend{
			SupplierID: g.Key,
			Name:       names[g.Key],
			Total:      g.Value.total,
			LineCount:  g.Value.count,
		}
		if total != 0 {
			row.SharePct = g.Value.total / total * 100
		}
		rows = append(rows, row)
	}
	grouping.SortByValueDesc(rows, func(r SupplierSpend) float64 { return r.Total })

	trend := spendTrend(lines, filter, p)

	return SupplierSpendView{
		TotalSpend: total,
		Suppliers:  rows,
		Trend:      trend,
		Change:     series.Delta(trendSeries(trend)),
	}
}

// spendTrend buckets the filtered lines' HT amounts into the requested
// interval, summing per bucket.
func spendTrend(lines []domain.InvoiceLine, filter grouping.LineFilter, p Params) []domain.AggregateBucket {
	samples := make([]series.RawSample, 0, len(lines))
	for _, l := range lines {
		if !filter(l) {
			continue
		}
		samples = append(samples, series.RawSample{Date: l.Date, Value: l.AmountHT()})
	}
	return bucketing.Reduce(series.Build(samples), p.Interval, bucketing.Sum)
}

func trendSeries(buckets []domain.AggregateBucket) domain.Series {
	s := make(domain.Series, len(buckets))
	for i, b := range buckets {
		s[i] = domain.DatedValue{Timestamp: b.BucketStart, Value: b.Value}
	}
	return s
}

func hasAmountHT(l domain.InvoiceLine) bool {
	return l.AmountHT() != nil
}

func orTrue(f grouping.LineFilter) grouping.LineFilter {
	if f != nil {
		return f
	}
	return func(domain.InvoiceLine) bool { return true }
}
