// Package server assembles the gin engine shared by the HTTP binaries.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"airscore-backend/internal/shared/config"
	"airscore-backend/internal/shared/metrics"
	"airscore-backend/internal/shared/server/middleware"
	"airscore-backend/internal/shared/server/respond"
)

// RouteRegistrar attaches a feature's routes to the versioned API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries everything NewRouter wires.
type RouterDeps struct {
	Config      config.Config
	ServiceName string
	Routes      []RouteRegistrar
	// Ready reports backing-store health for /health; nil means always ready.
	Ready func(ctx context.Context) error
	// RateLimitGroup classifies requests; nil disables limiting.
	RateLimitGroup func(*gin.Context) string
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if !deps.Config.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	serviceName := deps.ServiceName
	if serviceName == "" {
		serviceName = "airscore-api"
	}

	r := gin.New()
	r.Use(
		otelgin.Middleware(serviceName),
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: deps.RateLimitGroup,
			Rules: map[string]middleware.RateLimitRule{
				middleware.ScoringGroup: {Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst},
			},
		}),
	)
	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", healthHandler(deps.Ready, deps.Config.ServiceVersion))
	for _, reg := range deps.Routes {
		reg.RegisterRoutes(api)
	}
	return r
}

func healthHandler(ready func(context.Context) error, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ready != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ready(ctx); err != nil {
				respond.Error(c, http.StatusServiceUnavailable, "unavailable", "dependency check failed", gin.H{"reason": err.Error()})
				return
			}
		}
		respond.OK(c, gin.H{"ok": true, "version": version})
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
