package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"airscore-backend/internal/shared/telemetry"
)

// Context keys handlers set so the request log can carry domain identifiers.
const (
	OccupationKey = "occupation"
	PathwayKey    = "pathway"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       route,
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if v := c.GetString(OccupationKey); v != "" {
			fields["occupation"] = v
		}
		if v := c.GetString(PathwayKey); v != "" {
			fields["pathway"] = v
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		telemetry.Info("request.complete", fields)
	}
}
