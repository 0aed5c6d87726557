package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID tags every request with an ID, honoring one supplied by a proxy,
// and echoes it back in the response headers. Error and log output carry the
// same ID so a client report can be matched to server logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)

		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	rid, _ := c.Value(requestIDKey).(string)
	return rid
}
