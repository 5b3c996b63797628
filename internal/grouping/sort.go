package grouping

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByLabel sorts items alphabetically by display label using French
// collation, so accented labels ("Épicerie") land where an operator
// expects them rather than after "z". The sort is stable.
func SortByLabel[T any](items []T, labelOf func(T) string) {
	c := collate.New(language.French)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(labelOf(items[i]), labelOf(items[j])) < 0
	})
}

// SortByValueDesc sorts items by a numeric value, highest first.
// The sort is stable: equal totals keep their prior order, which keeps
// UI rendering deterministic across re-renders with unchanged data.
func SortByValueDesc[T any](items []T, valueOf func(T) float64) {
	sort.SliceStable(items, func(i, j int) bool {
		return valueOf(items[i]) > valueOf(items[j])
	})
}
