package middleware

import (
	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"fleet_admin/internal/requestid"
)

// RequestID reuses an incoming X-Request-ID or mints one, echoes it on the
// response and stores it in the request context for outbound calls.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" {
			id = requestid.New()
		}

		c.Header(requestid.Header, id)
		c.Set("request_id", id)
		c.Request = c.Request.WithContext(requestid.NewContext(c.Request.Context(), id))
		c.Next()
	}
}

// Log returns a logger carrying the request id of c, if any.
func Log(c *gin.Context) *logrus.Entry {
	return logrus.WithField("request_id", c.GetString("request_id"))
}
