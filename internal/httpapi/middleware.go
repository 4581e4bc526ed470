package httpapi

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	slowRequest = 200 * time.Millisecond
)

// RequestID берёт X-Request-ID клиента или выдаёт новый.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency,
			"request_id", c.GetString(requestIDKey),
		}
		switch {
		case len(c.Errors) > 0:
			logger.Error("request", append(attrs, "err", c.Errors.String())...)
		case latency > slowRequest:
			logger.Warn("slow request", attrs...)
		default:
			logger.Info("request", attrs...)
		}
	}
}
