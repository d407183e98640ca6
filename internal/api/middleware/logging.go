package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// SlogRequestLogger logs one line per request. When the service runs behind
// a reverse proxy the forwarded scheme is included.
func SlogRequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		proto := c.GetHeader("X-Forwarded-Proto")

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if logger != nil {
			attrs := []any{
				"method", method,
				"path", path,
				"status", status,
				"latency_ms", latency.Milliseconds(),
				"client_ip", c.ClientIP(),
			}
			if proto != "" {
				attrs = append(attrs, "proto", proto)
			}
			logger.Info("http request", attrs...)
		}
	}
}
