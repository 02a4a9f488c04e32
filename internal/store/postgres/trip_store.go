package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/WanderPlan/wanderplan-backend/internal/store"
	"github.com/WanderPlan/wanderplan-backend/types"
	"github.com/jackc/pgx/v5"
)

// TripStore implements store.TripStore using PostgreSQL. The itinerary
// document is a jsonb column on the trips row, written whole.
type TripStore struct {
	db Querier
}

var _ store.TripStore = (*TripStore)(nil)

// NewTripStore creates a new TripStore instance.
func NewTripStore(db Querier) *TripStore {
	return &TripStore{db: db}
}

// GetTrip retrieves a trip by its ID.
func (s *TripStore) GetTrip(ctx context.Context, id string) (*types.Trip, error) {
	query := `
		SELECT id, destination, start_date, end_date, budget, COALESCE(preferences_text, ''), created_at, updated_at
		FROM trips
		WHERE id = $1`

	trip := &types.Trip{}
	err := s.db.QueryRow(ctx, query, id).Scan(
		&trip.ID,
		&trip.Destination,
		&trip.StartDate,
		&trip.EndDate,
		&trip.Budget,
		&trip.Preferences,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// SaveItinerary replaces the trip's stored itinerary document.
func (s *TripStore) SaveItinerary(ctx context.Context, tripID string, doc *types.ItineraryDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal itinerary: %w", err)
	}

	query := `
		UPDATE trips
		SET generated_itinerary = $1, updated_at = NOW()
		WHERE id = $2`

	tag, err := s.db.Exec(ctx, query, payload, tripID)
	if err != nil {
		return fmt.Errorf("failed to save itinerary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// GetItinerary retrieves the trip's stored itinerary document. A trip whose
// document column is NULL has no generated plan yet; that is reported as
// store.ErrNotFound, not as an empty document.
func (s *TripStore) GetItinerary(ctx context.Context, tripID string) (*types.ItineraryDocument, error) {
	query := `
		SELECT generated_itinerary
		FROM trips
		WHERE id = $1`

	var payload []byte
	err := s.db.QueryRow(ctx, query, tripID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get itinerary: %w", err)
	}
	if len(payload) == 0 {
		return nil, store.ErrNotFound
	}

	var doc types.ItineraryDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored itinerary: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}
