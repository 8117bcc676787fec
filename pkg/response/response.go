package response

import (
	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every JSON endpoint returns.
type APIResponse[T any] struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      T           `json:"data"`
	Errors    interface{} `json:"errors,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success writes a success envelope with the given status.
func Success[T any](c *gin.Context, status int, data T, message string) {
	c.JSON(status, APIResponse[T]{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: c.GetString("request_id"),
	})
}

// Error writes a failure envelope. errs carries per-field validation details
// when present.
func Error(c *gin.Context, status int, message string, errs interface{}) {
	c.JSON(status, errorResponse{
		Success:   false,
		Message:   message,
		Errors:    errs,
		RequestID: c.GetString("request_id"),
	})
}

// errorResponse omits the data field entirely on failures.
type errorResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Errors    interface{} `json:"errors,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// AbortError writes a failure envelope and aborts the handler chain; for middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Success:   false,
		Message:   message,
		RequestID: c.GetString("request_id"),
	})
}
