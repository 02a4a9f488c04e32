package handlers

import (
	"context"
	"net/http"

	"github.com/WanderPlan/wanderplan-backend/services"
	"github.com/WanderPlan/wanderplan-backend/types"
	"github.com/gin-gonic/gin"
)

// TripInfoServiceInterface defines the methods used by TripInfoHandler.
type TripInfoServiceInterface interface {
	Extract(ctx context.Context, text string) (*types.ExtractedTripInfo, error)
}

var _ TripInfoServiceInterface = (*services.TripInfoService)(nil)

type TripInfoHandler struct {
	tripInfoService TripInfoServiceInterface
}

func NewTripInfoHandler(tripInfoService TripInfoServiceInterface) *TripInfoHandler {
	return &TripInfoHandler{tripInfoService: tripInfoService}
}

// ParseTripInfoRequest is the body for natural-language trip parsing.
type ParseTripInfoRequest struct {
	Text string `json:"text"`
}

// ParseTripInfoHandler extracts trip parameters from a free-text description
// to pre-fill the trip creation form. Unextractable fields come back null.
// POST /v1/trips/parse
func (h *TripInfoHandler) ParseTripInfoHandler(c *gin.Context) {
	var req ParseTripInfoRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	info, err := h.tripInfoService.Extract(c.Request.Context(), req.Text)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, info)
}
