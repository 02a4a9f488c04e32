package services

import (
	"context"
	"errors"

	apperrors "github.com/WanderPlan/wanderplan-backend/errors"
	"github.com/WanderPlan/wanderplan-backend/internal/store"
	"github.com/WanderPlan/wanderplan-backend/pkg/geocode"
	"github.com/WanderPlan/wanderplan-backend/types"
)

// MarkerService serves the ephemeral marker set for one itinerary day over
// HTTP, for clients that cannot reach the geocoding provider directly. The
// set is recomputed on every request and never persisted.
type MarkerService struct {
	geocoder  geocode.Resolver
	tripStore store.TripStore
}

func NewMarkerService(geocoder geocode.Resolver, tripStore store.TripStore) *MarkerService {
	return &MarkerService{geocoder: geocoder, tripStore: tripStore}
}

// GetDayMarkers geocodes the activities of the given 1-based day of the
// trip's stored itinerary. Individual lookup failures drop their marker
// silently; a day whose activities all fail yields an empty set.
func (s *MarkerService) GetDayMarkers(ctx context.Context, tripID string, day int) ([]types.Marker, error) {
	if day < 1 {
		return nil, apperrors.ValidationFailed("day must be a positive number", "")
	}

	trip, err := s.tripStore.GetTrip(ctx, tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Trip", tripID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	doc, err := s.tripStore.GetItinerary(ctx, tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Itinerary for trip", tripID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	var activities []types.Activity
	found := false
	for _, plan := range doc.DailyPlan {
		if plan.Day == day {
			activities = plan.Activities
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.NotFound("Day plan", day)
	}

	return resolveMarkers(ctx, s.geocoder, trip.Destination, activities), nil
}
