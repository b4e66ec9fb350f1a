package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request and recovers from panics so an
// unexpected fault in an aggregator or exporter surfaces as a structured
// internal-fault response instead of a dropped connection.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequest(c, start, logrus.ErrorLevel, err.Error(), debug.Stack())

				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "Internal Server Error",
						"details": err.Error(),
					},
				})
				c.Abort()
				return
			}

			level := logrus.InfoLevel
			if c.Writer.Status() >= http.StatusInternalServerError {
				level = logrus.ErrorLevel
			}
			logRequest(c, start, level, c.Errors.String(), nil)
		}()

		c.Next()
	}
}

func logRequest(c *gin.Context, start time.Time, level logrus.Level, errMsg string, stack []byte) {
	entry := logrus.WithFields(logrus.Fields{
		"status":    c.Writer.Status(),
		"method":    c.Request.Method,
		"path":      c.Request.URL.Path,
		"query":     c.Request.URL.RawQuery,
		"client_ip": c.ClientIP(),
		"user_id":   c.GetInt64("user_id"),
		"tenant_id": c.GetInt64("tenant_id"),
		"latency":   time.Since(start).String(),
	})
	if requestID := c.GetHeader("X-Request-ID"); requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}
	if errMsg != "" {
		entry = entry.WithField("error", errMsg)
	}
	if stack != nil {
		entry = entry.WithField("stack", string(stack))
	}
	entry.Log(level, "request")
}
