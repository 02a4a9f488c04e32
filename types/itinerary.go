package types

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// DateUnknown is the explicit sentinel for a day plan whose date could not
// be determined from the generation response.
const DateUnknown = "unknown"

// Transport modes the generator is allowed to produce.
const (
	TransportWalk  = "walk"
	TransportMetro = "metro"
	TransportBus   = "bus"
	TransportTaxi  = "taxi"
	TransportDrive = "drive"
	TransportFerry = "ferry"
	TransportOther = "other"
)

// Booking necessity values the generator is allowed to produce.
const (
	BookingNotRequired = "not_required"
	BookingRecommended = "recommended"
	BookingRequired    = "required"
)

// Cost is a display-grade cost figure. Generation output is unreliable, so
// unmarshalling tolerates numbers, numeric strings, and null, coercing
// anything else to zero instead of failing the whole document.
type Cost float64

func (c *Cost) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*c = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*c = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*c = 0
			return nil
		}
		*c = Cost(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		*c = 0
		return nil
	}
	*c = Cost(f)
	return nil
}

// TransportDetail describes how to reach an activity from the previous one.
type TransportDetail struct {
	Mode          string `json:"mode"`
	Description   string `json:"description"`
	Duration      string `json:"duration"`
	EstimatedCost Cost   `json:"estimated_cost"`
}

// BookingInfo carries ticketing and reservation guidance for an activity.
type BookingInfo struct {
	Necessity  string `json:"necessity"`
	TicketInfo string `json:"ticket_info"`
	Details    string `json:"details"`
}

// Activity is a single scheduled item within a day plan. LocationName is the
// geocoding key used to place the activity on the map.
type Activity struct {
	Time              string          `json:"time"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	LocationName      string          `json:"location_name"`
	TransportDetail   TransportDetail `json:"transport_detail"`
	BookingAndTickets BookingInfo     `json:"booking_and_tickets"`
	EstimatedCost     Cost            `json:"estimated_cost"`
}

// MealSuggestion is a restaurant (or fallback) recommendation for one meal.
type MealSuggestion struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Recommendation string `json:"recommendation"`
	AvgCost        Cost   `json:"avg_cost"`
}

// Meals groups the day's meal suggestions; absent meals are nil.
type Meals struct {
	Breakfast *MealSuggestion `json:"breakfast,omitempty"`
	Lunch     *MealSuggestion `json:"lunch,omitempty"`
	Dinner    *MealSuggestion `json:"dinner,omitempty"`
}

// DayPlan is one calendar day of the itinerary.
type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
	Meals      Meals      `json:"meals"`
}

// AccommodationOption is one of the recommended places to stay.
type AccommodationOption struct {
	Name            string `json:"recommendation_name"`
	Address         string `json:"address"`
	PriceRange      string `json:"price_range_per_night"`
	BookingChannels string `json:"booking_channels"`
	Reason          string `json:"reason"`
}

// CategoryBreakdown is the generator's estimated spend over the fixed
// budget category set.
type CategoryBreakdown struct {
	Accommodation Cost `json:"accommodation"`
	Transport     Cost `json:"transport"`
	Food          Cost `json:"food"`
	Activities    Cost `json:"activities"`
}

// BudgetBreakdown is the itinerary's estimated budget section. The generator
// is told that TotalEstimatedCost must equal the breakdown sum, but that
// invariant is not trusted downstream; consumers compute their own total
// from the category sum.
type BudgetBreakdown struct {
	TotalEstimatedCost Cost              `json:"total_estimated_cost"`
	Breakdown          CategoryBreakdown `json:"breakdown"`
}

// Estimated returns the per-category estimates keyed by expense category.
func (b BudgetBreakdown) Estimated() map[Category]float64 {
	return map[Category]float64{
		CategoryAccommodation: float64(b.Breakdown.Accommodation),
		CategoryTransport:     float64(b.Breakdown.Transport),
		CategoryFood:          float64(b.Breakdown.Food),
		CategoryActivities:    float64(b.Breakdown.Activities),
	}
}

// ItineraryDocument is the canonical structured output of trip synthesis.
// It is stored once per trip and overwritten wholesale on regeneration.
type ItineraryDocument struct {
	TripSummary           string                `json:"trip_summary"`
	LocalTransportSummary string                `json:"local_transport_summary"`
	AccommodationOptions  []AccommodationOption `json:"accommodation_options"`
	DailyPlan             []DayPlan             `json:"daily_plan"`
	BudgetAnalysis        BudgetBreakdown       `json:"budget_analysis"`
}

// Normalize patches up degraded generation output in place: day numbers
// default to their 1-based position and missing dates become the explicit
// unknown sentinel. Consumers never see a zero day or an empty date.
func (d *ItineraryDocument) Normalize() {
	for i := range d.DailyPlan {
		if d.DailyPlan[i].Day <= 0 {
			d.DailyPlan[i].Day = i + 1
		}
		if d.DailyPlan[i].Date == "" {
			d.DailyPlan[i].Date = DateUnknown
		}
	}
}
