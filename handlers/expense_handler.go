package handlers

import (
	"context"
	"net/http"

	apperrors "github.com/WanderPlan/wanderplan-backend/errors"
	"github.com/WanderPlan/wanderplan-backend/services"
	"github.com/WanderPlan/wanderplan-backend/types"
	"github.com/gin-gonic/gin"
)

// ExpenseServiceInterface defines the methods used by ExpenseHandler,
// allowing the handler to be tested with mocks.
type ExpenseServiceInterface interface {
	Extract(ctx context.Context, text string) (*types.ExtractedExpense, error)
	AddExpense(ctx context.Context, params types.CreateExpenseParams) (*types.Expense, error)
	ListExpenses(ctx context.Context, tripID string) ([]types.Expense, error)
	DeleteExpense(ctx context.Context, id string, tripID string) error
}

// Ensure the concrete service satisfies the interface at compile time.
var _ ExpenseServiceInterface = (*services.ExpenseService)(nil)

type ExpenseHandler struct {
	expenseService ExpenseServiceInterface
}

func NewExpenseHandler(expenseService ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ParseExpenseRequest is the body for natural-language expense extraction.
type ParseExpenseRequest struct {
	Text string `json:"text"`
}

// ParseExpenseHandler extracts a candidate expense from free text. The result
// pre-fills the entry form; nothing is written to the ledger here.
// POST /v1/expenses/parse
func (h *ExpenseHandler) ParseExpenseHandler(c *gin.Context) {
	var req ParseExpenseRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	extracted, err := h.expenseService.Extract(c.Request.Context(), req.Text)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, extracted)
}

// AddExpenseHandler appends a confirmed expense to the trip's ledger.
// POST /v1/trips/:id/expenses
func (h *ExpenseHandler) AddExpenseHandler(c *gin.Context) {
	tripID, ok := tripIDOrError(c)
	if !ok {
		return
	}

	var req types.CreateExpenseParams
	if !bindJSONOrError(c, &req) {
		return
	}
	req.TripID = tripID

	expense, err := h.expenseService.AddExpense(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// ListExpensesHandler returns the trip's ledger, newest first.
// GET /v1/trips/:id/expenses
func (h *ExpenseHandler) ListExpensesHandler(c *gin.Context) {
	tripID, ok := tripIDOrError(c)
	if !ok {
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), tripID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": expenses})
}

// DeleteExpenseHandler removes one entry from the trip's ledger.
// DELETE /v1/trips/:id/expenses/:expenseId
func (h *ExpenseHandler) DeleteExpenseHandler(c *gin.Context) {
	tripID, ok := tripIDOrError(c)
	if !ok {
		return
	}

	expenseID := c.Param("expenseId")
	if expenseID == "" || !isValidUUID(expenseID) {
		_ = c.Error(apperrors.ValidationFailed("valid expense ID is required", ""))
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID, tripID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
