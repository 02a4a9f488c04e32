package middleware

import (
	"strconv"

	"github.com/WanderPlan/wanderplan-backend/errors"
	"github.com/WanderPlan/wanderplan-backend/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors set on the gin context into JSON responses.
// Handlers attach errors with c.Error and return; this middleware picks the
// last one and maps it through the application error taxonomy.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*errors.AppError); ok {
			statusCode := appError.GetHTTPStatus()

			log.Errorw("Request failed",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"status", statusCode,
				"error_type", string(appError.Type),
				"error_message", appError.Message,
				"error_detail", appError.Detail)

			response := gin.H{
				"type":    string(appError.Type),
				"message": appError.Message,
				"code":    strconv.Itoa(statusCode),
			}
			// Details are safe to expose for input-shaped failures; upstream
			// generation internals stay out of responses unless debugging.
			if appError.Detail != "" && (gin.IsDebugging() ||
				appError.Type == errors.ValidationError ||
				appError.Type == errors.EmptyInputError ||
				appError.Type == errors.NotFoundError) {
				response["details"] = appError.Detail
			}

			c.JSON(statusCode, response)
			return
		}

		if c.Errors.Last().Type == gin.ErrorTypeBind {
			log.Errorw("Request binding failed",
				"path", c.Request.URL.Path,
				"error", err)
			c.JSON(400, gin.H{
				"type":    string(errors.ValidationError),
				"message": "Failed to bind request",
				"code":    "400",
			})
			return
		}

		log.Errorw("Unexpected server error",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err)

		response := gin.H{
			"type":    string(errors.ServerError),
			"message": "Internal Server Error",
			"code":    "500",
		}
		if gin.IsDebugging() {
			response["details"] = err.Error()
		}
		c.JSON(500, response)
	}
}
