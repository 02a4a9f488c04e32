package handlers

import (
	"context"
	"net/http"
	"strconv"

	apperrors "github.com/WanderPlan/wanderplan-backend/errors"
	"github.com/WanderPlan/wanderplan-backend/services"
	"github.com/WanderPlan/wanderplan-backend/types"
	"github.com/gin-gonic/gin"
)

// MarkerServiceInterface defines the methods used by MarkerHandler.
type MarkerServiceInterface interface {
	GetDayMarkers(ctx context.Context, tripID string, day int) ([]types.Marker, error)
}

var _ MarkerServiceInterface = (*services.MarkerService)(nil)

type MarkerHandler struct {
	markerService MarkerServiceInterface
}

func NewMarkerHandler(markerService MarkerServiceInterface) *MarkerHandler {
	return &MarkerHandler{markerService: markerService}
}

// GetDayMarkersHandler geocodes one itinerary day's activities into markers.
// GET /v1/trips/:id/itinerary/days/:day/markers
func (h *MarkerHandler) GetDayMarkersHandler(c *gin.Context) {
	tripID, ok := tripIDOrError(c)
	if !ok {
		return
	}

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		_ = c.Error(apperrors.ValidationFailed("day must be a positive number", ""))
		return
	}

	markers, err := h.markerService.GetDayMarkers(c.Request.Context(), tripID, day)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": markers})
}
