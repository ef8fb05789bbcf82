package response

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the request id middleware writes.
const RequestIDKey = "RequestID"

// Response is the envelope used by owner, auth and contact endpoints.
// Public read endpoints answer with bare JSON instead.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{Success: true, Message: message, Data: data, RequestID: requestID(c)})
}

// Error writes a failed envelope. details is optional and shown to the client.
func Error(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, Response{Message: message, Error: details, RequestID: requestID(c)})
}
