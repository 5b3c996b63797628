package grouping

import (
	"strings"
	"time"

	"resto-cost-lab/internal/domain"
	"resto-cost-lab/internal/series"
)

// LineFilter is an inclusion predicate over invoice lines.
type LineFilter func(domain.InvoiceLine) bool

// All combines filters; a row must pass every one. All() keeps everything.
func All(filters ...LineFilter) LineFilter {
	return func(line domain.InvoiceLine) bool {
		for _, f := range filters {
			if !f(line) {
				return false
			}
		}
		return true
	}
}

// LabelContains keeps lines whose label contains the query,
// case-insensitively. An empty query keeps everything.
func LabelContains(query string) LineFilter {
	q := strings.ToLower(query)
	return func(line domain.InvoiceLine) bool {
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(line.Label), q)
	}
}

// InDateRange keeps lines dated within [from, to] inclusive. Lines with
// an unparseable date are excluded: a row that cannot be placed in time
// cannot be claimed by any period.
func InDateRange(from, to time.Time) LineFilter {
	return func(line domain.InvoiceLine) bool {
		t, ok := series.ParseDate(line.Date)
		if !ok {
			return false
		}
		return !t.Before(from) && !t.After(to)
	}
}

// SupplierIn keeps lines from the listed suppliers only.
func SupplierIn(supplierIDs ...string) LineFilter {
	allowed := make(map[string]struct{}, len(supplierIDs))
	for _, id := range supplierIDs {
		allowed[id] = struct{}{}
	}
	return func(line domain.InvoiceLine) bool {
		_, ok := allowed[line.SupplierID]
		return ok
	}
}

// ProductIn keeps lines for the listed products only.
func ProductIn(productIDs ...string) LineFilter {
	allowed := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		allowed[id] = struct{}{}
	}
	return func(line domain.InvoiceLine) bool {
		_, ok := allowed[line.ProductID]
		return ok
	}
}
