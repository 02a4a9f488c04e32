package types

// CategoryFigures pairs the generator's estimate with the ledger's actual
// spend for one category.
type CategoryFigures struct {
	Estimated float64 `json:"estimated"`
	Actual    float64 `json:"actual"`
}

// BudgetReport is the reconciliation of an itinerary's estimated budget
// against the trip's expense ledger. Categories with neither an estimate nor
// actual spend are omitted from ByCategory rather than reported as zeros.
type BudgetReport struct {
	ByCategory     map[Category]CategoryFigures `json:"byCategory"`
	TotalEstimated float64                      `json:"totalEstimated"`
	TotalActual    float64                      `json:"totalActual"`
	OverBudget     bool                         `json:"overBudget"`
}

// BudgetSummary is the trip-level budget view: the reconciliation report plus
// the budget the user set when creating the trip. OverTripBudget compares the
// ledger against that user budget, independently of the generator's estimate.
type BudgetSummary struct {
	TripBudget     float64      `json:"tripBudget"`
	Report         BudgetReport `json:"report"`
	OverTripBudget bool         `json:"overTripBudget"`
}
