package handlers

import (
	apperrors "github.com/WanderPlan/wanderplan-backend/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// isValidUUID validates route parameters that must be UUIDs.
func isValidUUID(s string) bool {
	return uuid.Validate(s) == nil
}

// bindJSONOrError binds the request body and sets a validation error on the
// context on failure. Returns false when binding failed.
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid request body", err.Error()))
		return false
	}
	return true
}

// tripIDOrError extracts and validates the :id route parameter.
func tripIDOrError(c *gin.Context) (string, bool) {
	tripID := c.Param("id")
	if tripID == "" || !isValidUUID(tripID) {
		_ = c.Error(apperrors.ValidationFailed("valid trip ID is required", ""))
		return "", false
	}
	return tripID, true
}
