package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/WanderPlan/wanderplan-backend/errors"
	"github.com/WanderPlan/wanderplan-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTripID = "9b6710c3-5df0-4fd1-9d1c-44fbdf9f4aee"

func TestGenerateItineraryHandler(t *testing.T) {
	t.Run("returns generated document", func(t *testing.T) {
		mockSvc := new(MockItineraryService)
		r := newTestRouter()
		r.POST("/v1/trips/:id/itinerary", NewItineraryHandler(mockSvc).GenerateItineraryHandler)

		mockSvc.On("Synthesize", mock.Anything, testTripID).Return(&types.ItineraryDocument{
			TripSummary: "Two days in Kyoto",
			DailyPlan:   []types.DayPlan{{Day: 1, Date: "2026-04-01"}},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/trips/"+testTripID+"/itinerary", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var doc types.ItineraryDocument
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "Two days in Kyoto", doc.TripSummary)
	})

	t.Run("invalid trip ID rejected", func(t *testing.T) {
		r := newTestRouter()
		r.POST("/v1/trips/:id/itinerary", NewItineraryHandler(new(MockItineraryService)).GenerateItineraryHandler)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/trips/not-a-uuid/itinerary", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error taxonomy maps to statuses", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{"generation failure", apperrors.GenerationFailed(assert.AnError), http.StatusBadGateway},
			{"malformed response", apperrors.MalformedResponse("no json"), http.StatusUnprocessableEntity},
			{"structural mismatch", apperrors.StructuralMismatch("no daily plan"), http.StatusUnprocessableEntity},
			{"unknown trip", apperrors.NotFound("Trip", testTripID), http.StatusNotFound},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockSvc := new(MockItineraryService)
				r := newTestRouter()
				r.POST("/v1/trips/:id/itinerary", NewItineraryHandler(mockSvc).GenerateItineraryHandler)

				mockSvc.On("Synthesize", mock.Anything, testTripID).Return(nil, tt.err)

				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodPost, "/v1/trips/"+testTripID+"/itinerary", nil)
				r.ServeHTTP(w, req)

				assert.Equal(t, tt.wantStatus, w.Code)
			})
		}
	})
}

func TestGetItineraryHandler(t *testing.T) {
	t.Run("nothing generated yet maps to 404", func(t *testing.T) {
		mockSvc := new(MockItineraryService)
		r := newTestRouter()
		r.GET("/v1/trips/:id/itinerary", NewItineraryHandler(mockSvc).GetItineraryHandler)

		mockSvc.On("GetItinerary", mock.Anything, testTripID).
			Return(nil, apperrors.NotFound("Itinerary for trip", testTripID))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/trips/"+testTripID+"/itinerary", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
