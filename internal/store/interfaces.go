// Package store defines the persistence contracts for trips, itinerary
// documents, and the expense ledger. Documents are read and written whole;
// the core never performs partial-field updates.
package store

import (
	"context"
	"errors"

	"github.com/WanderPlan/wanderplan-backend/types"
)

// ErrNotFound is returned when the requested record does not exist. For
// itineraries it also covers "not generated yet" (a NULL document column).
var ErrNotFound = errors.New("record not found")

// TripStore handles trip and itinerary document operations.
type TripStore interface {
	GetTrip(ctx context.Context, id string) (*types.Trip, error)
	// SaveItinerary overwrites the trip's stored itinerary document
	// wholesale. There is no partial merge.
	SaveItinerary(ctx context.Context, tripID string, doc *types.ItineraryDocument) error
	GetItinerary(ctx context.Context, tripID string) (*types.ItineraryDocument, error)
}

// ExpenseStore handles the expense ledger. Entries are appended and deleted
// one at a time, never updated.
type ExpenseStore interface {
	CreateExpense(ctx context.Context, params types.CreateExpenseParams) (*types.Expense, error)
	// ListExpenses returns the trip's full ledger in reverse-chronological
	// order.
	ListExpenses(ctx context.Context, tripID string) ([]types.Expense, error)
	DeleteExpense(ctx context.Context, id string, tripID string) error
}
