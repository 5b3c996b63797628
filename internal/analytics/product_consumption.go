package analytics

import (
	"resto-cost-lab/internal/benchmark"
	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/grouping"
	"resto-cost-lab/internal/scoring"
)

// ProductConsumption is one row of the consumption ranking: what was
// bought, for how much, and how the paid price sits against the market.
type ProductConsumption struct {
	ProductID    string
	Name         string
	TotalQty     float64
	TotalSpend   float64 // HT
	AvgUnitPrice *float64
	GapPercent   *float64
	Saving       *float64
	Tier         *domain.GapTier
}

// ProductConsumptionView is the product page payload, sorted by spend
// descending.
type ProductConsumptionView struct {
	Products []ProductConsumption
}

type consumptionAcc struct {
	qty      float64
	spend    float64
	priceSum float64
	priceN   int
}

// BuildProductConsumption ranks products by spend in range and attaches
// the price-gap tier badge per product. market carries the pre-reduced
// benchmark side per product id; products missing from it simply get no
// gap or badge.
func BuildProductConsumption(
	lines []domain.InvoiceLine,
	products []domain.Product,
	market map[string]domain.MarketStat,
	p Params,
) ProductConsumptionView {
	filter := grouping.All(
		grouping.InDateRange(p.From, p.To),
		hasAmountHT,
	)

	byProduct := grouping.Aggregate(lines,
		func(l domain.InvoiceLine) string { return l.ProductID },
		filter,
		func(acc consumptionAcc, l domain.InvoiceLine) consumptionAcc {
			acc.spend += *l.AmountHT()
			if l.Quantity != nil {
				acc.qty += *l.Quantity
			}
			if unit := l.UnitPriceHT(); unit != nil {
				acc.priceSum += *unit
				acc.priceN++
			}
			return acc
		},
	)

	names := make(map[string]string, len(products))
	for _, pr := range products {
		names[pr.ProductID] = pr.Name
	}

	rows := make([]ProductConsumption, 0, len(byProduct))
	for _, g := range grouping.SortedGroups(byProduct) {
		row := ProductConsumption{
			ProductID:  g.Key,
			Name:       names[g.Key],
			TotalQty:   g.Value.qty,
			TotalSpend: g.Value.spend,
		}
		if g.Value.priceN > 0 {
			avg := g.Value.priceSum / float64(g.Value.priceN)
			row.AvgUnitPrice = &avg
		}

		stat := market[g.Key]
		qty := row.TotalQty
		cmp := benchmark.Compare(row.AvgUnitPrice, &qty, stat.Avg, stat.Min, stat.Max)
		row.GapPercent = cmp.GapPercent
		row.Saving = cmp.PotentialSaving
		row.Tier = scoring.TierForGap(cmp.GapPercent)

		rows = append(rows, row)
	}
	grouping.SortByValueDesc(rows, func(r ProductConsumption) float64 { return r.TotalSpend })

	return ProductConsumptionView{Products: rows}
}
