package domain

// RecommendationLabel is a closed-vocabulary badge emitted by the scoring
// ladder. The vocabulary is fixed; the rendering layer displays it as-is.
type RecommendationLabel string

const (
	LabelStaleData   RecommendationLabel = "Données anciennes"
	LabelUnstable    RecommendationLabel = "Prix instable"
	LabelGoodPrice   RecommendationLabel = "Bon prix"
	LabelWatch       RecommendationLabel = "À surveiller"
	LabelHighDemand  RecommendationLabel = "Très demandé"
	LabelLowInterest RecommendationLabel = "Intérêt faible"
	LabelAverage     RecommendationLabel = "Dans la moyenne"
)

// GapTier is the price-gap severity used for consumption-ranking badges.
// It is a separate, simpler rule set than the recommendation ladder.
type GapTier int

const (
	TierSaving   GapTier = 0 // paying below market
	TierFair     GapTier = 1 // gap under 2%
	TierElevated GapTier = 2 // gap 2% to 10%
	TierCritical GapTier = 3 // gap 10% or more
)

// String returns the badge text shown for the tier.
func (t GapTier) String() string {
	switch t {
	case TierSaving:
		return "Économie"
	case TierFair:
		return "Correct"
	case TierElevated:
		return "Élevé"
	case TierCritical:
		return "Critique"
	default:
		return "Inconnu"
	}
}
