package services

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/WanderPlan/wanderplan-backend/errors"
	"github.com/WanderPlan/wanderplan-backend/internal/schema"
	"github.com/WanderPlan/wanderplan-backend/internal/store"
	"github.com/WanderPlan/wanderplan-backend/logger"
	"github.com/WanderPlan/wanderplan-backend/pkg/llm"
	"github.com/WanderPlan/wanderplan-backend/types"
)

// ItineraryService turns a trip's stored parameters into a complete
// structured itinerary document via a single model call, and persists the
// result wholesale on the trip row.
type ItineraryService struct {
	llmClient llm.ClientInterface
	tripStore store.TripStore
	model     string
}

func NewItineraryService(llmClient llm.ClientInterface, tripStore store.TripStore, model string) *ItineraryService {
	return &ItineraryService{
		llmClient: llmClient,
		tripStore: tripStore,
		model:     model,
	}
}

// Synthesize generates a fresh itinerary for the trip and overwrites any
// previously stored document. The three failure modes are kept distinct:
// transport or upstream failures surface as GenerationFailed, undecodable
// responses as MalformedResponse, and decodable responses missing the daily
// plan as StructuralMismatch.
func (s *ItineraryService) Synthesize(ctx context.Context, tripID string) (*types.ItineraryDocument, error) {
	log := logger.GetLogger()

	trip, err := s.tripStore.GetTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Trip", tripID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	params := trip.Parameters()
	if err := params.Validate(); err != nil {
		return nil, apperrors.ValidationFailed("invalid trip parameters", err.Error())
	}

	raw, err := s.llmClient.Complete(ctx, llm.CompletionRequest{
		Model:        s.model,
		SystemPrompt: itinerarySystemPrompt,
		UserPrompt:   buildItineraryUserPrompt(params),
	})
	if err != nil {
		return nil, apperrors.GenerationFailed(err)
	}

	doc, err := schema.DecodeItinerary(raw)
	if err != nil {
		log.Errorw("Itinerary response could not be decoded",
			"tripId", tripID,
			"error", err)
		return nil, apperrors.MalformedResponse(err.Error())
	}

	if len(doc.DailyPlan) == 0 {
		log.Errorw("Itinerary response decoded but has no daily plan", "tripId", tripID)
		return nil, apperrors.StructuralMismatch("generated itinerary contains no daily plan")
	}
	if len(doc.DailyPlan) != params.Days() {
		// Tolerated: the document is kept as generated, day numbering and
		// dates were already normalized during decoding.
		log.Warnw("Generated day count differs from trip duration",
			"tripId", tripID,
			"generated", len(doc.DailyPlan),
			"expected", params.Days())
	}

	if err := s.tripStore.SaveItinerary(ctx, tripID, doc); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Trip", tripID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	log.Infow("Itinerary synthesized",
		"tripId", tripID,
		"days", len(doc.DailyPlan),
		"accommodationOptions", len(doc.AccommodationOptions))
	return doc, nil
}

// GetItinerary returns the stored document for the trip, or NotFound when no
// plan has been generated yet.
func (s *ItineraryService) GetItinerary(ctx context.Context, tripID string) (*types.ItineraryDocument, error) {
	doc, err := s.tripStore.GetItinerary(ctx, tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Itinerary for trip", tripID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return doc, nil
}

func buildItineraryUserPrompt(params types.TripParameters) string {
	prompt := fmt.Sprintf(
		"Destination: %s\nDates: %s to %s (%d days)\nTotal budget: %.0f",
		params.Destination,
		params.StartDate.Format("2006-01-02"),
		params.EndDate.Format("2006-01-02"),
		params.Days(),
		params.Budget,
	)
	if params.Preferences != "" {
		prompt += "\nPreferences and special requirements: " + params.Preferences
	}
	return prompt
}
