package domain

// Recipe is a catalog entry for a menu item whose margin is tracked.
type Recipe struct {
	RecipeID string
	Name     string
}

// RecipeMarginSnapshot is one margin observation for a recipe.
// Corresponds to the margin_snapshots table.
type RecipeMarginSnapshot struct {
	RecipeID     string
	Date         string   // raw feed date
	MarginPct    *float64 // percent scale, e.g. 68.5
	FoodCost     *float64 // HT
	SellPriceTTC *float64
}
