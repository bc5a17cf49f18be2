package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aquaflow/hydration-engine/internal/observability/metrics"
)

// RequestLogging logs every request with method, path, status and latency.
func RequestLogging(logger *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		logger.InfoContext(ctx.Request.Context(), "http request",
			slog.String("method", ctx.Request.Method),
			slog.String("path", ctx.FullPath()),
			slog.Int("status", ctx.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// RequestMetrics records per-request counters and latency histograms.
func RequestMetrics(httpMetrics *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpMetrics.RecordRequest(ctx.Request.Context(), ctx.Request.Method, path, ctx.Writer.Status(), time.Since(start))
	}
}

// PanicRecovery converts panics into 500 responses instead of killing the process.
func PanicRecovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		logger.ErrorContext(ctx.Request.Context(), "panic recovered",
			slog.Any("panic", recovered),
			slog.String("method", ctx.Request.Method),
			slog.String("path", ctx.Request.URL.Path),
		)
		ctx.AbortWithStatusJSON(500, gin.H{"error": "internal server error"})
	})
}
