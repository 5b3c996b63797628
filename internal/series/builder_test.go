package series

import (
	"math"
	"testing"
	"time"

	"resto-cost-lab/internal/domain"
)

func TestBuild_SortsAscendingRegardlessOfInputOrder(t *testing.T) {
	samples := []RawSample{
		{Date: "2024-03-01", Value: domain.Float(3)},
		{Date: "2024-01-01", Value: domain.Float(1)},
		{Date: "2024-02-01", Value: domain.Float(2)},
	}

	s := Build(samples)

	if len(s) != 3 {
		t.Fatalf("expected 3 points, got %d", len(s))
	}
	for i := 1; i < len(s); i++ {
		if s[i].Timestamp.Before(s[i-1].Timestamp) {
			t.Errorf("series not ascending at index %d", i)
		}
	}
	if s[0].Value != 1 || s[2].Value != 3 {
		t.Errorf("unexpected order: %v", s)
	}
}

func TestBuild_AcceptsBothDateFormats(t *testing.T) {
	samples := []RawSample{
		{Date: "15/01/2024", Value: domain.Float(1)}, // localized invoice date
		{Date: "2024-01-20", Value: domain.Float(2)},
		{Date: "2024-01-25T09:30:00", Value: domain.Float(3)},
	}

	s := Build(samples)

	if len(s) != 3 {
		t.Fatalf("expected 3 points, got %d", len(s))
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !s[0].Timestamp.Equal(want) {
		t.Errorf("expected DD/MM/YYYY parsed as 2024-01-15, got %v", s[0].Timestamp)
	}
}

func TestBuild_DropsMalformedRecords(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	samples := []RawSample{
		{Date: "2024-01-01", Value: domain.Float(1)},
		{Date: "", Value: domain.Float(2)},           // no date
		{Date: "01-13-2024", Value: domain.Float(3)}, // unparseable
		{Date: "2024-01-02", Value: nil},             // no value
		{Date: "2024-01-03", Value: &nan},            // NaN
		{Date: "2024-01-04", Value: &inf},            // Inf
	}

	s := Build(samples)

	if len(s) != 1 {
		t.Fatalf("expected 1 surviving point, got %d", len(s))
	}
	if s[0].Value != 1 {
		t.Errorf("wrong survivor: %v", s[0])
	}
}

func TestBuild_ParsedInstantTakesPrecedence(t *testing.T) {
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	samples := []RawSample{
		{At: &at, Date: "2024-01-01", Value: domain.Float(1)},
	}

	s := Build(samples)

	if len(s) != 1 || !s[0].Timestamp.Equal(at) {
		t.Errorf("expected instant to win over date string, got %v", s)
	}
}

func TestBuild_StableTies(t *testing.T) {
	// Same-timestamp records keep their original relative order; no
	// deduplication happens here.
	samples := []RawSample{
		{Date: "2024-01-01", Value: domain.Float(1)},
		{Date: "2024-01-01", Value: domain.Float(2)},
		{Date: "2024-01-01", Value: domain.Float(3)},
	}

	s := Build(samples)

	if len(s) != 3 {
		t.Fatalf("expected 3 points, got %d", len(s))
	}
	if s[0].Value != 1 || s[1].Value != 2 || s[2].Value != 3 {
		t.Errorf("tie order not preserved: %v", s)
	}
}

func TestParseDate_RejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-date", "32/01/2024", "2024/01/01"} {
		if _, ok := ParseDate(raw); ok {
			t.Errorf("expected %q to be rejected", raw)
		}
	}
}
