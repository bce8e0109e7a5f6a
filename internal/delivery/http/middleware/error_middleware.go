package middleware

import (
	"errors"
	"net/http"

	"grow-therapy-backend/internal/delivery/http/response"
	"grow-therapy-backend/pkg/apperror"
	"grow-therapy-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors appended to the gin context into the JSON
// envelope. Internal detail is exposed in the error field only outside
// production; the full error is always logged server-side.
func ErrorHandler(isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			var detail interface{}
			if appErr.Err != nil {
				logger.Log.Error("Request failed", "status", appErr.Code, "error", appErr.Err)
				if !isProduction {
					detail = appErr.Err.Error()
				}
			}
			response.Error(c, appErr.Code, appErr.Message, detail)
			return
		}

		logger.Log.Error("Unhandled error", "error", err)
		var detail interface{}
		if !isProduction {
			detail = err.Error()
		}
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", detail)
	}
}
