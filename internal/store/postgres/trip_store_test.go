package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/WanderPlan/wanderplan-backend/internal/store"
	"github.com/WanderPlan/wanderplan-backend/logger"
	"github.com/WanderPlan/wanderplan-backend/types"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

const testTripID = "9b6710c3-5df0-4fd1-9d1c-44fbdf9f4aee"

func newTripStoreMock(t *testing.T) (*TripStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewTripStore(mock), mock
}

func TestTripStoreGetTrip(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s, mock := newTripStoreMock(t)
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, destination, start_date, end_date, budget, COALESCE(preferences_text, ''), created_at, updated_at")).
			WithArgs(testTripID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "destination", "start_date", "end_date", "budget", "coalesce", "created_at", "updated_at"}).
				AddRow(testTripID, "Kyoto",
					time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
					2000.0, "temples", now, now))

		trip, err := s.GetTrip(context.Background(), testTripID)
		require.NoError(t, err)
		assert.Equal(t, "Kyoto", trip.Destination)
		assert.Equal(t, 2000.0, trip.Budget)
		assert.Equal(t, "temples", trip.Preferences)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to ErrNotFound", func(t *testing.T) {
		s, mock := newTripStoreMock(t)

		mock.ExpectQuery("SELECT id, destination").
			WithArgs(testTripID).
			WillReturnError(pgx.ErrNoRows)

		_, err := s.GetTrip(context.Background(), testTripID)
		assert.True(t, errors.Is(err, store.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTripStoreSaveItinerary(t *testing.T) {
	doc := &types.ItineraryDocument{TripSummary: "Two days in Kyoto"}
	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	t.Run("updates the document column", func(t *testing.T) {
		s, mock := newTripStoreMock(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
			WithArgs(payload, testTripID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, s.SaveItinerary(context.Background(), testTripID, doc))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown trip maps to ErrNotFound", func(t *testing.T) {
		s, mock := newTripStoreMock(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
			WithArgs(payload, testTripID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := s.SaveItinerary(context.Background(), testTripID, doc)
		assert.True(t, errors.Is(err, store.ErrNotFound))
	})
}

func TestTripStoreGetItinerary(t *testing.T) {
	t.Run("stored document decoded and normalized", func(t *testing.T) {
		s, mock := newTripStoreMock(t)

		payload := []byte(`{"trip_summary": "saved", "daily_plan": [{"activities": []}]}`)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT generated_itinerary")).
			WithArgs(testTripID).
			WillReturnRows(pgxmock.NewRows([]string{"generated_itinerary"}).AddRow(payload))

		doc, err := s.GetItinerary(context.Background(), testTripID)
		require.NoError(t, err)
		assert.Equal(t, "saved", doc.TripSummary)
		require.Len(t, doc.DailyPlan, 1)
		assert.Equal(t, 1, doc.DailyPlan[0].Day)
		assert.Equal(t, types.DateUnknown, doc.DailyPlan[0].Date)
	})

	t.Run("NULL column maps to ErrNotFound", func(t *testing.T) {
		s, mock := newTripStoreMock(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT generated_itinerary")).
			WithArgs(testTripID).
			WillReturnRows(pgxmock.NewRows([]string{"generated_itinerary"}).AddRow([]byte(nil)))

		_, err := s.GetItinerary(context.Background(), testTripID)
		assert.True(t, errors.Is(err, store.ErrNotFound))
	})
}
