package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MasoodZaf/pakistani-tax-advisor-sub003/logger"
)

// RequestLoggingMiddleware logs one structured line per completed
// request. Request and response bodies are never logged: they carry
// taxpayer income and wealth figures. The return_id query parameter is
// included so a request can be matched to a tax return without
// exposing amounts.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		if logger.Log == nil {
			return
		}

		fields := []zap.Field{
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
		}
		if returnID := c.Query("return_id"); returnID != "" {
			fields = append(fields, zap.String("return_id", returnID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		logger.Log.Info("Request completed", fields...)
	}
}
