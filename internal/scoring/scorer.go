package scoring

import "resto-cost-lab/internal/domain"

// Input bundles the already-derived metrics the recommendation ladder
// reads. The scorer never re-derives metrics from raw records; keeping it
// downstream of the computation layer is what makes the ladder testable
// in isolation. Any field may be nil when the signal is unknown.
type Input struct {
	GapPercent               *float64
	VolatilityIndex          *float64
	DaysSinceLastObservation *int
	InterestPercent          *float64
}

// known reports whether at least one metric carries a value.
func (in Input) known() bool {
	return in.GapPercent != nil ||
		in.VolatilityIndex != nil ||
		in.DaysSinceLastObservation != nil ||
		in.InterestPercent != nil
}

// Score runs the recommendation ladder top to bottom, first match wins.
// The order encodes business priority: data staleness and price
// instability override demand signals, so a product that is both stale
// and cheap reports staleness. A nil metric simply fails its rule and
// evaluation moves on. Returns nil when no metric is known at all.
func Score(in Input) *domain.RecommendationLabel {
	if !in.known() {
		return nil
	}

	switch {
	case in.DaysSinceLastObservation != nil && *in.DaysSinceLastObservation > 45:
		return label(domain.LabelStaleData)
	case in.VolatilityIndex != nil && *in.VolatilityIndex > 0.25:
		return label(domain.LabelUnstable)
	case in.GapPercent != nil && *in.GapPercent <= -5:
		return label(domain.LabelGoodPrice)
	case in.GapPercent != nil && *in.GapPercent >= 5:
		return label(domain.LabelWatch)
	case in.InterestPercent != nil && *in.InterestPercent >= 70:
		return label(domain.LabelHighDemand)
	case in.InterestPercent != nil && *in.InterestPercent <= 30:
		return label(domain.LabelLowInterest)
	default:
		return label(domain.LabelAverage)
	}
}

func label(l domain.RecommendationLabel) *domain.RecommendationLabel {
	return &l
}
