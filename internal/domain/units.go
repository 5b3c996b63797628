package domain

// PriceBasis states whether an amount is tax-exclusive or tax-inclusive.
// The basis travels with the record instead of being guessed downstream.
type PriceBasis string

const (
	BasisHT  PriceBasis = "HT"  // hors taxes
	BasisTTC PriceBasis = "TTC" // toutes taxes comprises
)

// RatioToPercent converts a ratio (0.25) to percent scale (25).
// The unit is always explicit at the call site; nothing in the engine
// infers percent-vs-ratio from a value's magnitude.
func RatioToPercent(r float64) float64 { return r * 100 }

// PercentToRatio converts a percent (25) to ratio scale (0.25).
func PercentToRatio(p float64) float64 { return p / 100 }

// Float returns a pointer to v. Convenience for optional numeric fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v. Convenience for optional integer fields.
func Int(v int) *int { return &v }
