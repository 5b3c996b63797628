package series

import (
	"time"

	"resto-cost-lab/internal/bucketing"
	"resto-cost-lab/internal/domain"
)

// CarriedBucket is one requested bucket after gap filling. Value is nil
// when no observation exists at or before the bucket.
type CarriedBucket struct {
	Start time.Time
	Value *float64
}

// CarryForward fills the requested bucket starts from an ascending series.
// A bucket that contains observations takes the last of them; a bucket
// with none takes the most recent prior observation, carried flat. Buckets
// before the first observation stay nil: the last observed price persists,
// but nothing is ever invented before the first observation.
//
// starts must be ascending bucket starts for the given interval, typically
// from bucketing.BucketRange.
func CarryForward(s domain.Series, starts []time.Time, interval domain.IntervalKey) []CarriedBucket {
	out := make([]CarriedBucket, 0, len(starts))

	i := 0
	var last *float64
	for _, start := range starts {
		for i < len(s) && !bucketing.BucketStart(s[i].Timestamp, interval).After(start) {
			v := s[i].Value
			last = &v
			i++
		}

		if last == nil {
			out = append(out, CarriedBucket{Start: start})
			continue
		}
		v := *last
		out = append(out, CarriedBucket{Start: start, Value: &v})
	}
	return out
}
