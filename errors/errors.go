// Package errors defines the structured application error type and the
// error taxonomy of the itinerary pipeline.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	// GenerationFailedError means the structured-generation service was
	// unreachable or returned an upstream error. Retryable by the user.
	GenerationFailedError ErrorType = "GENERATION_FAILED"
	// MalformedResponseError means no parseable JSON object could be
	// extracted from the generation response.
	MalformedResponseError ErrorType = "MALFORMED_RESPONSE"
	// StructuralMismatchError means the response parsed but lacks the
	// structure that makes it usable (e.g. an empty daily plan). Kept
	// distinct from MalformedResponseError so callers can tell
	// "generated output unusable" apart from "nothing generated yet".
	StructuralMismatchError ErrorType = "STRUCTURAL_MISMATCH"
	// EmptyInputError is returned before any external call when the
	// input text is blank.
	EmptyInputError ErrorType = "EMPTY_INPUT"

	ValidationError ErrorType = "VALIDATION_ERROR"
	NotFoundError   ErrorType = "NOT_FOUND"
	DatabaseError   ErrorType = "DATABASE_ERROR"
	ServerError     ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error.
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status associated with the error.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// New creates a new AppError.
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context.
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// IsType reports whether err is an *AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// GenerationFailed wraps an upstream generation-service failure.
func GenerationFailed(err error) *AppError {
	return Wrap(err, GenerationFailedError, "Generation service request failed")
}

// MalformedResponse reports a generation response with no usable JSON object.
func MalformedResponse(detail string) *AppError {
	return New(MalformedResponseError, "Generation response is not valid JSON", detail)
}

// StructuralMismatch reports a parsed response that is missing the structure
// required to be usable.
func StructuralMismatch(detail string) *AppError {
	return New(StructuralMismatchError, "Generated output is unusable", detail)
}

// EmptyInput rejects blank input before any external call.
func EmptyInput(field string) *AppError {
	return New(EmptyInputError, "Input text is empty", fmt.Sprintf("field: %s", field))
}

func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		Detail:     fmt.Sprintf("ID: %v", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func ValidationFailed(message string, details string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     details,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewDatabaseError(err error) *AppError {
	return &AppError{
		Type:       DatabaseError,
		Message:    "Database operation failed",
		Detail:     "Please try again later",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError, EmptyInputError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case GenerationFailedError:
		return http.StatusBadGateway
	case MalformedResponseError, StructuralMismatchError:
		return http.StatusUnprocessableEntity
	case DatabaseError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
