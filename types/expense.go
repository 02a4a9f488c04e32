package types

import "time"

// Category is an expense category. The set is closed; anything outside it
// produced by extraction or manual entry folds into CategoryOther.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryAccommodation Category = "accommodation"
	CategoryActivities    Category = "activities"
	CategoryShopping      Category = "shopping"
	CategoryOther         Category = "other"
)

// AllCategories lists the closed category set in display order.
var AllCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryAccommodation,
	CategoryActivities,
	CategoryShopping,
	CategoryOther,
}

// IsValid reports whether the category is within the closed set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryAccommodation,
		CategoryActivities, CategoryShopping, CategoryOther:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

// NormalizeCategory coerces an arbitrary category value into the closed set,
// falling back to CategoryOther. Partial success is preferred over failing
// an extraction for this field.
func NormalizeCategory(s string) Category {
	c := Category(s)
	if c.IsValid() {
		return c
	}
	return CategoryOther
}

// Expense is a single ledger entry. Expenses belong to exactly one trip and
// are never mutated after creation, only deleted.
type Expense struct {
	ID        string    `json:"id"`
	TripID    string    `json:"tripId"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExtractedExpense is the candidate record produced by expense extraction.
// It pre-fills a form for human confirmation and is never committed directly.
type ExtractedExpense struct {
	Name     string   `json:"name"`
	Amount   float64  `json:"amount"`
	Category Category `json:"category"`
}

// CreateExpenseParams is the input for appending one expense to the ledger.
type CreateExpenseParams struct {
	TripID   string   `json:"tripId"`
	Name     string   `json:"name"`
	Amount   float64  `json:"amount"`
	Category Category `json:"category"`
}
