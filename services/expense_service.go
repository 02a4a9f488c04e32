package services

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/WanderPlan/wanderplan-backend/errors"
	"github.com/WanderPlan/wanderplan-backend/internal/schema"
	"github.com/WanderPlan/wanderplan-backend/internal/store"
	"github.com/WanderPlan/wanderplan-backend/logger"
	"github.com/WanderPlan/wanderplan-backend/pkg/llm"
	"github.com/WanderPlan/wanderplan-backend/types"
)

// extractionTemperature keeps field extraction deterministic; creativity is
// unwanted when pulling structured fields out of free text.
const extractionTemperature = 0.1

// ExpenseService manages the per-trip expense ledger and the natural-language
// expense extraction that pre-fills entries for human confirmation.
type ExpenseService struct {
	llmClient    llm.ClientInterface
	expenseStore store.ExpenseStore
	model        string
}

func NewExpenseService(llmClient llm.ClientInterface, expenseStore store.ExpenseStore, model string) *ExpenseService {
	return &ExpenseService{
		llmClient:    llmClient,
		expenseStore: expenseStore,
		model:        model,
	}
}

// Extract parses a free-text expense description into a candidate record.
// The result is never committed to the ledger here; the caller presents it
// for confirmation and commits via AddExpense.
func (s *ExpenseService) Extract(ctx context.Context, text string) (*types.ExtractedExpense, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.EmptyInput("text")
	}

	raw, err := s.llmClient.Complete(ctx, llm.CompletionRequest{
		Model:        s.model,
		SystemPrompt: expenseSystemPrompt,
		UserPrompt:   text,
		Temperature:  extractionTemperature,
	})
	if err != nil {
		return nil, apperrors.GenerationFailed(err)
	}

	extracted, err := schema.DecodeExpense(raw)
	if err != nil {
		logger.GetLogger().Errorw("Expense extraction produced unusable output", "error", err)
		return nil, apperrors.MalformedResponse(err.Error())
	}
	return extracted, nil
}

// AddExpense appends one confirmed entry to the trip's ledger. Categories
// outside the closed set are folded into the fallback rather than rejected.
func (s *ExpenseService) AddExpense(ctx context.Context, params types.CreateExpenseParams) (*types.Expense, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, apperrors.ValidationFailed("expense name is required", "")
	}
	if params.Amount <= 0 {
		return nil, apperrors.ValidationFailed("expense amount must be positive", "")
	}
	params.Category = types.NormalizeCategory(string(params.Category))

	expense, err := s.expenseStore.CreateExpense(ctx, params)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return expense, nil
}

// ListExpenses returns the trip's ledger, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, tripID string) ([]types.Expense, error) {
	expenses, err := s.expenseStore.ListExpenses(ctx, tripID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return expenses, nil
}

// DeleteExpense removes one entry, scoped to the trip so an ID from another
// trip's ledger cannot be deleted.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id string, tripID string) error {
	err := s.expenseStore.DeleteExpense(ctx, id, tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFound("Expense", id)
		}
		return apperrors.NewDatabaseError(err)
	}
	return nil
}
