package analytics

import (
	"time"

	"resto-cost-lab/internal/domain"
)

// Params scopes one computation request: the visible date range, the
// bucketing interval, and the reference instant used for staleness.
// Now is always injected by the caller; nothing in this package reads
// the system clock, which is what keeps view output reproducible.
type Params struct {
	From     time.Time
	To       time.Time
	Interval domain.IntervalKey
	Now      time.Time
}
