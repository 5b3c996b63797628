package analytics

import (
	"resto-cost-lab/internal/bucketing"
	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/grouping"
	"resto-cost-lab/internal/series"
)

// RecipeMarginTrend is the margin page payload for one recipe: the
// bucketed margin curve with gaps carried forward, its first-to-last
// movement, and the range summary.
type RecipeMarginTrend struct {
	RecipeID string
	Name     string
	Buckets  []domain.AggregateBucket
	Filled   []series.CarriedBucket
	Change   series.Change
	Summary  domain.StatSummary
}

// BuildRecipeMarginTrend builds one margin trend per recipe with at least
// one usable snapshot in range. Margin values are percent scale as
// delivered by the feed. Carry-forward follows the "last observed margin
// persists" rule: a week without a snapshot shows the previous week's
// margin, and weeks before the first snapshot stay empty.
func BuildRecipeMarginTrend(
	snapshots []domain.RecipeMarginSnapshot,
	recipes []domain.Recipe,
	p Params,
) []RecipeMarginTrend {
	bySeries := make(map[string][]series.RawSample)
	for _, snap := range snapshots {
		bySeries[snap.RecipeID] = append(bySeries[snap.RecipeID], series.RawSample{
			Date:  snap.Date,
			Value: snap.MarginPct,
		})
	}

	names := make(map[string]string, len(recipes))
	for _, r := range recipes {
		names[r.RecipeID] = r.Name
	}

	starts := bucketing.BucketRange(p.From, p.To, p.Interval)

	var out []RecipeMarginTrend
	for _, g := range grouping.SortedGroups(bySeries) {
		s := series.Build(g.Value).Window(p.From, p.To)
		if len(s) == 0 {
			continue
		}

		out = append(out, RecipeMarginTrend{
			RecipeID: g.Key,
			Name:     names[g.Key],
			Buckets:  bucketing.Reduce(s, p.Interval, bucketing.Mean),
			Filled:   series.CarryForward(s, starts, p.Interval),
			Change:   series.Delta(s),
			Summary:  series.Summarize(s),
		})
	}
	grouping.SortByLabel(out, func(t RecipeMarginTrend) string { return t.Name })

	return out
}
