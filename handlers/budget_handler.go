package handlers

import (
	"context"
	"net/http"

	"github.com/WanderPlan/wanderplan-backend/services"
	"github.com/WanderPlan/wanderplan-backend/types"
	"github.com/gin-gonic/gin"
)

// BudgetServiceInterface defines the methods used by BudgetHandler.
type BudgetServiceInterface interface {
	GetSummary(ctx context.Context, tripID string) (*types.BudgetSummary, error)
}

var _ BudgetServiceInterface = (*services.BudgetService)(nil)

type BudgetHandler struct {
	budgetService BudgetServiceInterface
}

func NewBudgetHandler(budgetService BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// GetBudgetHandler reconciles the trip's estimated budget against its ledger.
// GET /v1/trips/:id/budget
func (h *BudgetHandler) GetBudgetHandler(c *gin.Context) {
	tripID, ok := tripIDOrError(c)
	if !ok {
		return
	}

	summary, err := h.budgetService.GetSummary(c.Request.Context(), tripID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
