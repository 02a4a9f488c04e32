package handlers

import (
	"context"

	"github.com/WanderPlan/wanderplan-backend/logger"
	"github.com/WanderPlan/wanderplan-backend/middleware"
	"github.com/WanderPlan/wanderplan-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.IsTest = true
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the error handler so tests exercise the real
// error-to-status mapping.
func newTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

type MockItineraryService struct {
	mock.Mock
}

func (m *MockItineraryService) Synthesize(ctx context.Context, tripID string) (*types.ItineraryDocument, error) {
	args := m.Called(ctx, tripID)
	if doc, ok := args.Get(0).(*types.ItineraryDocument); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItineraryService) GetItinerary(ctx context.Context, tripID string) (*types.ItineraryDocument, error) {
	args := m.Called(ctx, tripID)
	if doc, ok := args.Get(0).(*types.ItineraryDocument); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) Extract(ctx context.Context, text string) (*types.ExtractedExpense, error) {
	args := m.Called(ctx, text)
	if extracted, ok := args.Get(0).(*types.ExtractedExpense); ok {
		return extracted, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseService) AddExpense(ctx context.Context, params types.CreateExpenseParams) (*types.Expense, error) {
	args := m.Called(ctx, params)
	if expense, ok := args.Get(0).(*types.Expense); ok {
		return expense, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseService) ListExpenses(ctx context.Context, tripID string) ([]types.Expense, error) {
	args := m.Called(ctx, tripID)
	if expenses, ok := args.Get(0).([]types.Expense); ok {
		return expenses, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, id string, tripID string) error {
	args := m.Called(ctx, id, tripID)
	return args.Error(0)
}

type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) GetSummary(ctx context.Context, tripID string) (*types.BudgetSummary, error) {
	args := m.Called(ctx, tripID)
	if summary, ok := args.Get(0).(*types.BudgetSummary); ok {
		return summary, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTripInfoService struct {
	mock.Mock
}

func (m *MockTripInfoService) Extract(ctx context.Context, text string) (*types.ExtractedTripInfo, error) {
	args := m.Called(ctx, text)
	if info, ok := args.Get(0).(*types.ExtractedTripInfo); ok {
		return info, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMarkerService struct {
	mock.Mock
}

func (m *MockMarkerService) GetDayMarkers(ctx context.Context, tripID string, day int) ([]types.Marker, error) {
	args := m.Called(ctx, tripID, day)
	if markers, ok := args.Get(0).([]types.Marker); ok {
		return markers, args.Error(1)
	}
	return nil, args.Error(1)
}
