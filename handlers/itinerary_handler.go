package handlers

import (
	"context"
	"net/http"

	"github.com/WanderPlan/wanderplan-backend/services"
	"github.com/WanderPlan/wanderplan-backend/types"
	"github.com/gin-gonic/gin"
)

// ItineraryServiceInterface defines the methods used by ItineraryHandler,
// allowing the handler to be tested with mocks.
type ItineraryServiceInterface interface {
	Synthesize(ctx context.Context, tripID string) (*types.ItineraryDocument, error)
	GetItinerary(ctx context.Context, tripID string) (*types.ItineraryDocument, error)
}

// Ensure the concrete service satisfies the interface at compile time.
var _ ItineraryServiceInterface = (*services.ItineraryService)(nil)

type ItineraryHandler struct {
	itineraryService ItineraryServiceInterface
}

func NewItineraryHandler(itineraryService ItineraryServiceInterface) *ItineraryHandler {
	return &ItineraryHandler{itineraryService: itineraryService}
}

// GenerateItineraryHandler synthesizes a fresh itinerary for the trip,
// replacing any previously generated one.
// POST /v1/trips/:id/itinerary
func (h *ItineraryHandler) GenerateItineraryHandler(c *gin.Context) {
	tripID, ok := tripIDOrError(c)
	if !ok {
		return
	}

	doc, err := h.itineraryService.Synthesize(c.Request.Context(), tripID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// GetItineraryHandler returns the trip's stored itinerary.
// GET /v1/trips/:id/itinerary
func (h *ItineraryHandler) GetItineraryHandler(c *gin.Context) {
	tripID, ok := tripIDOrError(c)
	if !ok {
		return
	}

	doc, err := h.itineraryService.GetItinerary(c.Request.Context(), tripID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
