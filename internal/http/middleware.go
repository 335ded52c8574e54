package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ondrasimku/upload-proxy-go/internal/http/handler"
	"github.com/ondrasimku/upload-proxy-go/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

// RequestID reuses an incoming X-Request-ID or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(handler.RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			handler.RequestIDKey, c.GetString(handler.RequestIDKey),
		)
	}
}

// Recovery turns a panic into the same JSON error shape the handlers use.
func Recovery(logger *slog.Logger, messages handler.Messages) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("Panic while handling request",
			"panic", recovered,
			handler.RequestIDKey, c.GetString(handler.RequestIDKey),
		)
		metrics.ObserveOutcome(metrics.OutcomeInternal)
		c.AbortWithStatusJSON(http.StatusInternalServerError, handler.ErrorResponse{
			Error: messages.Internal,
		})
	})
}
