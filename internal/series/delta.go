package series

import "resto-cost-lab/internal/domain"

// Change is the first-to-last movement over a window. Both fields are nil
// when the window has fewer than two points; Relative alone is nil when
// the first value is zero (never a division by zero, never an epsilon).
type Change struct {
	Absolute *float64
	Relative *float64
}

// Delta computes the change between the first and last point of s.
// Callers pre-filter to the window they care about (a zoom range, a
// bucketed view) before calling; Delta itself never slices.
func Delta(s domain.Series) Change {
	if len(s) < 2 {
		return Change{}
	}

	first, _ := s.First()
	last, _ := s.Last()

	abs := last.Value - first.Value
	change := Change{Absolute: &abs}

	if first.Value != 0 {
		rel := abs / first.Value
		change.Relative = &rel
	}
	return change
}
