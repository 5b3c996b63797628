package grouping

import (
	"cmp"
	"sort"
)

// Aggregate groups rows by keyOf and folds each group with reduce,
// starting from the zero accumulator. Filtering happens strictly before
// grouping: a group whose rows are all filtered out is absent from the
// result, not present with an empty accumulator. Callers that need every
// catalog entry regardless of activity seed the map from the catalog and
// merge. A nil filter keeps every row.
func Aggregate[R any, K comparable, A any](
	rows []R,
	keyOf func(R) K,
	filter func(R) bool,
	reduce func(acc A, row R) A,
) map[K]A {
	out := make(map[K]A)
	for _, row := range rows {
		if filter != nil && !filter(row) {
			continue
		}
		key := keyOf(row)
		out[key] = reduce(out[key], row)
	}
	return out
}

// Group is one aggregated entry once map output is flattened for display.
type Group[K comparable, A any] struct {
	Key   K
	Value A
}

// SortedGroups flattens an aggregation map into a slice ordered by key
// ascending. The fixed key order makes later stable re-sorts (by total,
// by label) deterministic under re-renders with unchanged data.
func SortedGroups[K cmp.Ordered, A any](m map[K]A) []Group[K, A] {
	out := make([]Group[K, A], 0, len(m))
	for k, v := range m {
		out = append(out, Group[K, A]{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
