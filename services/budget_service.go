package services

import (
	"context"
	"errors"

	apperrors "github.com/WanderPlan/wanderplan-backend/errors"
	"github.com/WanderPlan/wanderplan-backend/internal/store"
	"github.com/WanderPlan/wanderplan-backend/types"
)

// Reconcile merges an itinerary's estimated budget with the trip's expense
// ledger into one per-category report.
//
// The total estimate is computed from the category sum, not from the
// generator's own total_estimated_cost field, so a model that violates its
// sum rule cannot skew the over-budget signal. Ledger entries whose category
// falls outside the known set are folded into the fallback category, and a
// category appears in the report only when it carries an estimate or actual
// spend.
func Reconcile(breakdown types.BudgetBreakdown, ledger []types.Expense) types.BudgetReport {
	estimated := breakdown.Estimated()

	actuals := make(map[types.Category]float64, len(types.AllCategories))
	totalActual := 0.0
	for _, e := range ledger {
		cat := e.Category
		if !cat.IsValid() {
			cat = types.CategoryOther
		}
		actuals[cat] += e.Amount
		totalActual += e.Amount
	}

	byCategory := make(map[types.Category]types.CategoryFigures)
	totalEstimated := 0.0
	for _, cat := range types.AllCategories {
		est := estimated[cat]
		act := actuals[cat]
		totalEstimated += est
		if est == 0 && act == 0 {
			continue
		}
		byCategory[cat] = types.CategoryFigures{Estimated: est, Actual: act}
	}

	return types.BudgetReport{
		ByCategory:     byCategory,
		TotalEstimated: totalEstimated,
		TotalActual:    totalActual,
		OverBudget:     totalEstimated > 0 && totalActual > totalEstimated,
	}
}

// BudgetService assembles the trip-level budget summary from the stored
// itinerary and the expense ledger.
type BudgetService struct {
	tripStore    store.TripStore
	expenseStore store.ExpenseStore
}

func NewBudgetService(tripStore store.TripStore, expenseStore store.ExpenseStore) *BudgetService {
	return &BudgetService{tripStore: tripStore, expenseStore: expenseStore}
}

// GetSummary reconciles the trip's generated budget against its ledger. A
// trip without a generated itinerary still gets a summary; the estimate side
// is simply zero, so only the user's own trip budget can be exceeded.
func (s *BudgetService) GetSummary(ctx context.Context, tripID string) (*types.BudgetSummary, error) {
	trip, err := s.tripStore.GetTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Trip", tripID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	var breakdown types.BudgetBreakdown
	doc, err := s.tripStore.GetItinerary(ctx, tripID)
	switch {
	case err == nil:
		breakdown = doc.BudgetAnalysis
	case errors.Is(err, store.ErrNotFound):
		// no itinerary yet, estimates stay zero
	default:
		return nil, apperrors.NewDatabaseError(err)
	}

	ledger, err := s.expenseStore.ListExpenses(ctx, tripID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	report := Reconcile(breakdown, ledger)
	return &types.BudgetSummary{
		TripBudget:     trip.Budget,
		Report:         report,
		OverTripBudget: trip.Budget > 0 && report.TotalActual > trip.Budget,
	}, nil
}
