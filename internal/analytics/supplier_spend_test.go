package analytics

import (
	"math"
	"testing"
	"time"

	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/grouping"
)

func fl(v float64) *float64 { return &v }

func q1Params() Params {
	return Params{
		From:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Interval: domain.IntervalMonth,
		Now:      time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s: expected %f, got %f", name, want, got)
	}
}

func approxPtr(t *testing.T, name string, got *float64, want float64) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s: expected %f, got nil", name, want)
	}
	approx(t, name, *got, want)
}

var spendSuppliers = []domain.Supplier{
	{SupplierID: "sup_a", Name: "Metro"},
	{SupplierID: "sup_b", Name: "Pomona"},
}

func spendLines() []domain.InvoiceLine {
	return []domain.InvoiceLine{
		{LineID: "l1", InvoiceID: "inv_1", SupplierID: "sup_a", Date: "2024-01-02", Amount: fl(100)},
		{LineID: "l2", InvoiceID: "inv_2", SupplierID: "sup_a", Date: "10/02/2024", Amount: fl(50)},
		// TTC at 10% VAT normalizes to 100 HT.
		{LineID: "l3", InvoiceID: "inv_3", SupplierID: "sup_b", Date: "2024-01-15", Amount: fl(110), Basis: domain.BasisTTC, VATRate: fl(10)},
		// TTC with unknown VAT: no computable HT amount, excluded.
		{LineID: "l4", InvoiceID: "inv_4", SupplierID: "sup_b", Date: "2024-01-20", Amount: fl(50), Basis: domain.BasisTTC},
		// Malformed date, excluded.
		{LineID: "l5", InvoiceID: "inv_5", SupplierID: "sup_a", Date: "", Amount: fl(77)},
		// Out of range, excluded.
		{LineID: "l6", InvoiceID: "inv_6", SupplierID: "sup_a", Date: "2023-12-01", Amount: fl(999)},
		// No amount at all, excluded.
		{LineID: "l7", InvoiceID: "inv_7", SupplierID: "sup_c", Date: "2024-02-05"},
	}
}

func TestBuildSupplierSpend_RankingAndShares(t *testing.T) {
	view := BuildSupplierSpend(spendLines(), spendSuppliers, q1Params(), nil)

	approx(t, "total spend", view.TotalSpend, 250)

	if len(view.Suppliers) != 2 {
		t.Fatalf("expected 2 ranked suppliers, got %d", len(view.Suppliers))
	}

	top := view.Suppliers[0]
	if top.SupplierID != "sup_a" || top.Name != "Metro" {
		t.Fatalf("expected sup_a (Metro) ranked first, got %s (%s)", top.SupplierID, top.Name)
	}
	approx(t, "sup_a total", top.Total, 150)
	if top.LineCount != 2 {
		t.Errorf("sup_a: expected 2 counted lines, got %d", top.LineCount)
	}
	approx(t, "sup_a share", top.SharePct, 60)

	second := view.Suppliers[1]
	approx(t, "sup_b total (TTC normalized)", second.Total, 100)
	approx(t, "sup_b share", second.SharePct, 40)
}

func TestBuildSupplierSpend_MonthlyTrendAndChange(t *testing.T) {
	view := BuildSupplierSpend(spendLines(), spendSuppliers, q1Params(), nil)

	if len(view.Trend) != 2 {
		t.Fatalf("expected 2 monthly buckets, got %d", len(view.Trend))
	}
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	if !view.Trend[0].BucketStart.Equal(jan) || !view.Trend[1].BucketStart.Equal(feb) {
		t.Fatalf("unexpected bucket starts: %v", view.Trend)
	}
	approx(t, "january spend", view.Trend[0].Value, 200)
	approx(t, "february spend", view.Trend[1].Value, 50)

	approxPtr(t, "change absolute", view.Change.Absolute, -150)
	approxPtr(t, "change relative", view.Change.Relative, -0.75)
}

func TestBuildSupplierSpend_ExtraFilterNarrows(t *testing.T) {
	view := BuildSupplierSpend(spendLines(), spendSuppliers, q1Params(), grouping.SupplierIn("sup_b"))

	if len(view.Suppliers) != 1 || view.Suppliers[0].SupplierID != "sup_b" {
		t.Fatalf("expected only sup_b, got %+v", view.Suppliers)
	}
	approx(t, "filtered total", view.TotalSpend, 100)
	approx(t, "filtered share", view.Suppliers[0].SharePct, 100)
}

func TestBuildSupplierSpend_NoUsableLines(t *testing.T) {
	lines := []domain.InvoiceLine{
		{LineID: "l1", SupplierID: "sup_a", Date: "bad-date", Amount: fl(10)},
	}

	view := BuildSupplierSpend(lines, spendSuppliers, q1Params(), nil)

	if view.TotalSpend != 0 || len(view.Suppliers) != 0 {
		t.Errorf("expected empty view, got %+v", view)
	}
	if view.Change.Absolute != nil {
		t.Error("expected nil change on empty trend")
	}
}
