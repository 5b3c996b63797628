package series

import (
	"math"
	"sort"
	"time"

	"resto-cost-lab/internal/domain"
)

// RawSample is one record as it arrives from an upstream feed: the date
// may be an already-parsed instant or a raw string, and the value may be
// missing. Build decides per-sample whether the record is usable.
type RawSample struct {
	At    *time.Time // parsed instant; takes precedence over Date
	Date  string     // ISO YYYY-MM-DD[THH:mm:ss] or DD/MM/YYYY
	Value *float64
}

// Date layouts accepted from upstream feeds. Some invoice feeds emit
// localized DD/MM/YYYY dates, so both families must parse.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// ParseDate parses a feed date string. ok is false when no accepted
// layout matches; callers drop the record rather than failing.
func ParseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Build converts raw samples into a Series. Records with a missing or
// unparseable date, a missing value, or a non-finite value are dropped.
// The result is sorted ascending with a stable sort, so same-timestamp
// records keep their original relative order. No deduplication happens
// here; callers that need one value per instant bucket first.
func Build(samples []RawSample) domain.Series {
	out := make(domain.Series, 0, len(samples))
	for _, s := range samples {
		if s.Value == nil || math.IsNaN(*s.Value) || math.IsInf(*s.Value, 0) {
			continue
		}

		var ts time.Time
		switch {
		case s.At != nil:
			ts = *s.At
		default:
			parsed, ok := ParseDate(s.Date)
			if !ok {
				continue
			}
			ts = parsed
		}

		out = append(out, domain.DatedValue{Timestamp: ts, Value: *s.Value})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
