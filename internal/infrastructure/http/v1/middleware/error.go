package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grainpay/internal/core/apperror"
	"grainpay/internal/infrastructure/http/v1/dto"
	"grainpay/pkg/logger"
)

// ErrorHandler middleware renders the last registered error as dto.ErrorResponse.
// Internal causes are logged, never sent to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.HTTPStatus >= http.StatusInternalServerError {
				logger.Error(c.Request.Context(), "request failed",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			} else {
				logger.Debug(c.Request.Context(), "request rejected",
					"code", appErr.Code,
					"message", appErr.Message,
					"cause", appErr.Err,
				)
			}

			c.JSON(appErr.HTTPStatus, dto.NewErrorResponse(appErr.HTTPStatus, appErr.Message, appErr.Errors))
			return
		}

		// Unknown error - log and return generic message
		logger.Error(c.Request.Context(), "unhandled error", "error", err)
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, apperror.NewInternal(err).Message, nil))
	}
}
