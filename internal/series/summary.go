package series

import "resto-cost-lab/internal/domain"

// Summarize computes min/max/avg/last/count over a series.
// An empty series yields a zero summary with a nil Last.
func Summarize(s domain.Series) domain.StatSummary {
	values := make([]float64, len(s))
	for i, dv := range s {
		values[i] = dv.Value
	}
	return SummarizeValues(values)
}

// SummarizeValues computes min/max/avg/last/count over raw values in
// insertion order.
func SummarizeValues(values []float64) domain.StatSummary {
	if len(values) == 0 {
		return domain.StatSummary{}
	}

	min, max, sum := values[0], values[0], 0.0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}

	last := values[len(values)-1]
	return domain.StatSummary{
		Min:   min,
		Max:   max,
		Avg:   sum / float64(len(values)),
		Last:  &last,
		Count: len(values),
	}
}
