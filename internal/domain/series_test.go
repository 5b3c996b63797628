package domain

import (
	"testing"
	"time"
)

func obs(day int, v float64) DatedValue {
	return DatedValue{
		Timestamp: time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
		Value:     v,
	}
}

func TestSeriesFirstLast(t *testing.T) {
	s := Series{obs(1, 10), obs(5, 12), obs(9, 8)}

	first, ok := s.First()
	if !ok || first.Value != 10 {
		t.Errorf("First = (%v, %v), want (10, true)", first.Value, ok)
	}
	last, ok := s.Last()
	if !ok || last.Value != 8 {
		t.Errorf("Last = (%v, %v), want (8, true)", last.Value, ok)
	}

	var empty Series
	if _, ok := empty.First(); ok {
		t.Error("First on empty series reported ok")
	}
	if _, ok := empty.Last(); ok {
		t.Error("Last on empty series reported ok")
	}
}

func TestSeriesWindowInclusive(t *testing.T) {
	s := Series{obs(1, 10), obs(5, 12), obs(9, 8)}

	got := s.Window(
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
	)
	if len(got) != 2 || got[0].Value != 12 || got[1].Value != 8 {
		t.Errorf("Window kept %d points %v, want the two bounds", len(got), got)
	}
	if len(s) != 3 {
		t.Errorf("Window mutated the receiver, len = %d", len(s))
	}
}
