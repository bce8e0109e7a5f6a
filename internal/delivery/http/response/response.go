package response

import (
	"github.com/gin-gonic/gin"

	"grow-therapy-backend/pkg/validation"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool                    `json:"success"`
	Message   string                  `json:"message"`
	Data      interface{}             `json:"data,omitempty"`
	Errors    []validation.FieldError `json:"errors,omitempty"`
	Error     interface{}             `json:"error,omitempty"`
	RequestID string                  `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response. err carries internal detail and must only
// be populated outside production.
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}

// ValidationFailed sends a 400 with one entry per violated field so the
// client can show every problem at once.
func ValidationFailed(c *gin.Context, code int, message string, fieldErrors []validation.FieldError) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Errors:    fieldErrors,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)
	return idStr
}
