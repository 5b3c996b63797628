package series

import (
	"testing"

	"resto-cost-lab/internal/domain"
)

func TestDelta_FirstToLast(t *testing.T) {
	s := domain.Series{
		{Timestamp: day(2024, 1, 1), Value: 10},
		{Timestamp: day(2024, 2, 1), Value: 11},
		{Timestamp: day(2024, 3, 1), Value: 12.5},
	}

	got := Delta(s)

	if got.Absolute == nil || *got.Absolute != 2.5 {
		t.Errorf("expected absolute 2.5, got %v", got.Absolute)
	}
	if got.Relative == nil || *got.Relative != 0.25 {
		t.Errorf("expected relative 0.25, got %v", got.Relative)
	}
}

func TestDelta_FewerThanTwoPoints(t *testing.T) {
	for _, s := range []domain.Series{nil, {{Timestamp: day(2024, 1, 1), Value: 5}}} {
		got := Delta(s)
		if got.Absolute != nil || got.Relative != nil {
			t.Errorf("expected nil/nil for %d points, got %+v", len(s), got)
		}
	}
}

func TestDelta_ZeroFirstValueGuard(t *testing.T) {
	// first == 0: absolute still computed, relative must be nil rather
	// than Inf or NaN.
	s := domain.Series{
		{Timestamp: day(2024, 1, 1), Value: 0},
		{Timestamp: day(2024, 2, 1), Value: 4},
	}

	got := Delta(s)

	if got.Absolute == nil || *got.Absolute != 4 {
		t.Errorf("expected absolute 4, got %v", got.Absolute)
	}
	if got.Relative != nil {
		t.Errorf("expected nil relative on zero first value, got %v", *got.Relative)
	}
}

func TestDelta_NegativeMove(t *testing.T) {
	s := domain.Series{
		{Timestamp: day(2024, 1, 1), Value: 8},
		{Timestamp: day(2024, 2, 1), Value: 6},
	}

	got := Delta(s)

	if got.Absolute == nil || *got.Absolute != -2 {
		t.Errorf("expected absolute -2, got %v", got.Absolute)
	}
	if got.Relative == nil || *got.Relative != -0.25 {
		t.Errorf("expected relative -0.25, got %v", got.Relative)
	}
}
