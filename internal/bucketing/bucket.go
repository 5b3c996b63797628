package bucketing

import (
	"time"

	"resto-cost-lab/internal/domain"
)

// BucketStart normalizes t to the start of its containing interval.
// Day truncates to midnight, week rolls back to the most recent Monday
// (ISO week start, so a Sunday rolls back 6 days), month truncates to the
// 1st at midnight. Idempotent: BucketStart(BucketStart(t)) == BucketStart(t).
func BucketStart(t time.Time, interval domain.IntervalKey) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	switch interval {
	case domain.IntervalWeek:
		offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
		return day.AddDate(0, 0, -offset)
	case domain.IntervalMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default:
		return day
	}
}

// Bucket pairs a bucket start with the raw values that fell into it.
type Bucket struct {
	Start  time.Time
	Values []float64
}

// GroupByBucket groups an ascending series into interval buckets in a
// single pass. Output buckets are ascending; empty intervals are absent.
func GroupByBucket(s domain.Series, interval domain.IntervalKey) []Bucket {
	var out []Bucket
	for _, dv := range s {
		start := BucketStart(dv.Timestamp, interval)
		if n := len(out); n > 0 && out[n-1].Start.Equal(start) {
			out[n-1].Values = append(out[n-1].Values, dv.Value)
			continue
		}
		out = append(out, Bucket{Start: start, Values: []float64{dv.Value}})
	}
	return out
}

// Reducer folds the values of one bucket into a single value.
// Reducers are never called with an empty slice.
type Reducer func(values []float64) float64

// Mean averages the bucket's values.
func Mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Sum totals the bucket's values.
func Sum(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum
}

// LastValue keeps the last value by insertion order. Combined with the
// series builder's stable sort this gives last-wins per bucket.
func LastValue(values []float64) float64 {
	return values[len(values)-1]
}

// Reduce buckets the series and applies reduce to each bucket,
// yielding one AggregateBucket per non-empty interval, ascending.
func Reduce(s domain.Series, interval domain.IntervalKey, reduce Reducer) []domain.AggregateBucket {
	buckets := GroupByBucket(s, interval)
	out := make([]domain.AggregateBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, domain.AggregateBucket{
			BucketStart: b.Start,
			Value:       reduce(b.Values),
		})
	}
	return out
}

// BucketRange enumerates every bucket start between from and to inclusive,
// ascending. from and to are normalized first, so any instant inside the
// first and last interval may be passed.
func BucketRange(from, to time.Time, interval domain.IntervalKey) []time.Time {
	start := BucketStart(from, interval)
	end := BucketStart(to, interval)

	var out []time.Time
	for cur := start; !cur.After(end); cur = nextBucket(cur, interval) {
		out = append(out, cur)
	}
	return out
}

func nextBucket(start time.Time, interval domain.IntervalKey) time.Time {
	switch interval {
	case domain.IntervalWeek:
		return start.AddDate(0, 0, 7)
	case domain.IntervalMonth:
		return start.AddDate(0, 1, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}
