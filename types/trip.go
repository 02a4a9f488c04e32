package types

import (
	"fmt"
	"time"
)

// Trip is a stored trip row. The generated itinerary lives alongside it as a
// whole jsonb document and is overwritten wholesale on regeneration.
type Trip struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Budget      float64   `json:"budget"`
	Preferences string    `json:"preferences,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TripParameters is the immutable input to itinerary synthesis.
type TripParameters struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
	Preferences string
}

// Validate checks the basic parameter invariants.
func (p TripParameters) Validate() error {
	if p.Destination == "" {
		return fmt.Errorf("destination is required")
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("end date %s precedes start date %s",
			p.EndDate.Format("2006-01-02"), p.StartDate.Format("2006-01-02"))
	}
	if p.Budget < 0 {
		return fmt.Errorf("budget must be non-negative")
	}
	return nil
}

// Days returns the number of calendar days in the trip date range, inclusive.
func (p TripParameters) Days() int {
	start := p.StartDate.Truncate(24 * time.Hour)
	end := p.EndDate.Truncate(24 * time.Hour)
	return int(end.Sub(start).Hours()/24) + 1
}

// Parameters extracts the synthesis input from a stored trip.
func (t *Trip) Parameters() TripParameters {
	return TripParameters{
		Destination: t.Destination,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Budget:      t.Budget,
		Preferences: t.Preferences,
	}
}

// ExtractedTripInfo is the result of parsing a free-text trip description.
// Nil fields mean the information could not be confidently extracted.
type ExtractedTripInfo struct {
	Destination *string  `json:"destination"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Budget      *float64 `json:"budget"`
	Preferences *string  `json:"preferences"`
}
