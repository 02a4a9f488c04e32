// Package schema validates and repairs structured-generation output.
//
// Generation responses are untrusted free text expected to contain a single
// JSON object, possibly wrapped in prose or code fences. Extraction takes
// the substring between the first opening brace and the last closing brace;
// validation then checks the required keys for the target shape, coercing
// what can be coerced and failing only when the result would be meaningless.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/WanderPlan/wanderplan-backend/types"
)

// ErrMalformed means no parseable JSON object could be extracted from the
// response, or the extracted object fails required-key validation.
var ErrMalformed = errors.New("schema: malformed generation response")

// ExtractObject locates the JSON object embedded in raw text. It returns the
// substring from the first '{' through the last '}' inclusive, without
// parsing it.
func ExtractObject(raw string) ([]byte, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON object delimiters found", ErrMalformed)
	}
	return []byte(raw[start : end+1]), nil
}

// DecodeExpense extracts and validates an expense record from raw
// generation output. A missing or non-positive amount, or a missing name,
// makes the record useless and fails the whole operation; an off-list
// category is coerced to the fallback instead.
func DecodeExpense(raw string) (*types.ExtractedExpense, error) {
	obj, err := ExtractObject(raw)
	if err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := json.Unmarshal(obj, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	name, ok := fields["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: missing or empty name", ErrMalformed)
	}

	amount, ok := fields["amount"].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: missing or non-numeric amount", ErrMalformed)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %v", ErrMalformed, amount)
	}

	category := ""
	if c, ok := fields["category"].(string); ok {
		category = c
	}

	return &types.ExtractedExpense{
		Name:     strings.TrimSpace(name),
		Amount:   amount,
		Category: types.NormalizeCategory(category),
	}, nil
}

// DecodeItinerary extracts and parses a full itinerary document. Structural
// checks beyond parseability (a non-empty daily plan) belong to the caller,
// which must distinguish that failure mode from a malformed response.
func DecodeItinerary(raw string) (*types.ItineraryDocument, error) {
	obj, err := ExtractObject(raw)
	if err != nil {
		return nil, err
	}

	var doc types.ItineraryDocument
	if err := json.Unmarshal(obj, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	doc.Normalize()
	return &doc, nil
}

// DecodeTripInfo extracts and validates trip parameters parsed from free
// text. Every field is optional; unusable values degrade to nil rather than
// failing extraction.
func DecodeTripInfo(raw string) (*types.ExtractedTripInfo, error) {
	obj, err := ExtractObject(raw)
	if err != nil {
		return nil, err
	}

	var info types.ExtractedTripInfo
	if err := json.Unmarshal(obj, &info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	info.StartDate = validDate(info.StartDate)
	info.EndDate = validDate(info.EndDate)
	if info.Budget != nil && *info.Budget < 0 {
		info.Budget = nil
	}
	if info.Destination != nil && strings.TrimSpace(*info.Destination) == "" {
		info.Destination = nil
	}

	return &info, nil
}

func validDate(s *string) *string {
	if s == nil {
		return nil
	}
	if _, err := time.Parse("2006-01-02", *s); err != nil {
		return nil
	}
	return s
}
