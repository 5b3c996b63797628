package domain

import "time"

// IntervalKey selects the bucket width for temporal aggregation.
type IntervalKey string

const (
	IntervalDay   IntervalKey = "day"
	IntervalWeek  IntervalKey = "week"
	IntervalMonth IntervalKey = "month"
)

// DatedValue is a single observation of a metric at an instant.
// Value is always finite; producers drop non-finite samples at the boundary.
type DatedValue struct {
	Timestamp time.Time
	Value     float64
}

// Series is an ordered sequence of observations, non-decreasing by
// timestamp (ties keep insertion order). A Series is built once and never
// mutated; consumers that need a filtered or bucketed view build a new one.
type Series []DatedValue

// First returns the earliest observation. ok is false for an empty series.
func (s Series) First() (v DatedValue, ok bool) {
	if len(s) == 0 {
		return DatedValue{}, false
	}
	return s[0], true
}

// Last returns the latest observation. ok is false for an empty series.
func (s Series) Last() (v DatedValue, ok bool) {
	if len(s) == 0 {
		return DatedValue{}, false
	}
	return s[len(s)-1], true
}

// Window returns a new Series restricted to observations within
// [from, to] inclusive. The receiver is left untouched.
func (s Series) Window(from, to time.Time) Series {
	var out Series
	for _, dv := range s {
		if dv.Timestamp.Before(from) || dv.Timestamp.After(to) {
			continue
		}
		out = append(out, dv)
	}
	return out
}

// AggregateBucket is one reduced value per interval.
type AggregateBucket struct {
	BucketStart time.Time
	Value       float64
}

// StatSummary describes a collection of observed values.
// Last is nil when the collection is empty.
type StatSummary struct {
	Min   float64
	Max   float64
	Avg   float64
	Last  *float64
	Count int
}
