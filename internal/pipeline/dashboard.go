package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"resto-cost-lab/internal/analytics"
	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/reporting"
	"resto-cost-lab/internal/storage"
)

// Dashboard orchestrates one full report generation: fetch the records,
// run every analytics view, render and write the output files. All
// computation happens in the analytics packages; this type only wires.
type Dashboard struct {
	lineStore     storage.InvoiceLineStore
	priceStore    storage.MarketPriceStore
	snapshotStore storage.MarginSnapshotStore
	supplierStore storage.SupplierStore
	productStore  storage.ProductStore
	recipeStore   storage.RecipeStore

	outputDir string
	from      time.Time
	to        time.Time
	interval  domain.IntervalKey
	clock     func() time.Time
}

// NewDashboard creates a dashboard over the given stores.
func NewDashboard(
	lines storage.InvoiceLineStore,
	prices storage.MarketPriceStore,
	snapshots storage.MarginSnapshotStore,
	suppliers storage.SupplierStore,
	products storage.ProductStore,
	recipes storage.RecipeStore,
	outputDir string,
) *Dashboard {
	return &Dashboard{
		lineStore:     lines,
		priceStore:    prices,
		snapshotStore: snapshots,
		supplierStore: suppliers,
		productStore:  products,
		recipeStore:   recipes,
		outputDir:     outputDir,
		interval:      domain.IntervalWeek,
		clock:         time.Now,
	}
}

// WithRange sets the visible date range and bucketing interval.
func (d *Dashboard) WithRange(from, to time.Time, interval domain.IntervalKey) *Dashboard {
	d.from = from
	d.to = to
	d.interval = interval
	return d
}

// WithClock injects the reference clock. Tests and reproducible runs
// pass a fixed instant.
func (d *Dashboard) WithClock(clock func() time.Time) *Dashboard {
	d.clock = clock
	return d
}

// BuildReport fetches all records and computes every view.
func (d *Dashboard) BuildReport(ctx context.Context) (*reporting.Report, error) {
	lines, err := d.lineStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load invoice lines: %w", err)
	}
	prices, err := d.priceStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load market prices: %w", err)
	}
	snapshots, err := d.snapshotStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load margin snapshots: %w", err)
	}
	suppliers, err := d.supplierStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load suppliers: %w", err)
	}
	products, err := d.productStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	recipes, err := d.recipeStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	now := d.clock()
	from, to := d.from, d.to
	if from.IsZero() && to.IsZero() {
		// Default window: the 90 days leading up to the clock.
		to = now
		from = now.AddDate(0, 0, -90)
	}

	params := analytics.Params{From: from, To: to, Interval: d.interval, Now: now}

	lineVals := deref(lines)
	priceVals := deref(prices)

	report := &reporting.Report{
		GeneratedAt: now,
		From:        from,
		To:          to,
		Interval:    string(d.interval),

		SupplierSpend: analytics.BuildSupplierSpend(lineVals, deref(suppliers), params, nil),
		Consumption: analytics.BuildProductConsumption(
			lineVals, deref(products),
			analytics.MarketStatsByProduct(priceVals, params), params),
		Market:       analytics.BuildMarketComparison(lineVals, deref(products), priceVals, params),
		MarginTrends: analytics.BuildRecipeMarginTrend(deref(snapshots), deref(recipes), params),
	}
	return report, nil
}

// Run builds the report and writes the markdown and CSV outputs.
func (d *Dashboard) Run(ctx context.Context) error {
	report, err := d.BuildReport(ctx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(d.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files := map[string]string{
		"report.md":       reporting.RenderMarkdown(report),
		"consumption.csv": reporting.RenderConsumptionCSV(report.Consumption),
		"suppliers.csv":   reporting.RenderSupplierCSV(report.SupplierSpend),
	}
	for name, content := range files {
		path := filepath.Join(d.outputDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

func deref[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}
