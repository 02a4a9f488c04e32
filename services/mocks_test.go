package services

import (
	"context"

	"github.com/WanderPlan/wanderplan-backend/pkg/llm"
	"github.com/WanderPlan/wanderplan-backend/types"
	"github.com/stretchr/testify/mock"
)

// Mock generation client
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// Mock trip store
type MockTripStore struct {
	mock.Mock
}

func (m *MockTripStore) GetTrip(ctx context.Context, tripID string) (*types.Trip, error) {
	args := m.Called(ctx, tripID)
	if trip, ok := args.Get(0).(*types.Trip); ok {
		return trip, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTripStore) SaveItinerary(ctx context.Context, tripID string, doc *types.ItineraryDocument) error {
	args := m.Called(ctx, tripID, doc)
	return args.Error(0)
}

func (m *MockTripStore) GetItinerary(ctx context.Context, tripID string) (*types.ItineraryDocument, error) {
	args := m.Called(ctx, tripID)
	if doc, ok := args.Get(0).(*types.ItineraryDocument); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

// Mock expense store
type MockExpenseStore struct {
	mock.Mock
}

func (m *MockExpenseStore) CreateExpense(ctx context.Context, params types.CreateExpenseParams) (*types.Expense, error) {
	args := m.Called(ctx, params)
	if expense, ok := args.Get(0).(*types.Expense); ok {
		return expense, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseStore) ListExpenses(ctx context.Context, tripID string) ([]types.Expense, error) {
	args := m.Called(ctx, tripID)
	if expenses, ok := args.Get(0).([]types.Expense); ok {
		return expenses, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExpenseStore) DeleteExpense(ctx context.Context, id string, tripID string) error {
	args := m.Called(ctx, id, tripID)
	return args.Error(0)
}

// Mock geocode resolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, place string) (types.Coordinate, error) {
	args := m.Called(ctx, place)
	if coord, ok := args.Get(0).(types.Coordinate); ok {
		return coord, args.Error(1)
	}
	return types.Coordinate{}, args.Error(1)
}
