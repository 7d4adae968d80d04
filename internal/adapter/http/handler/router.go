package handler

import (
	"time"

	"storefront-events/internal/adapter/http/middleware"
	redisStore "storefront-events/internal/adapter/storage/redis"
	"storefront-events/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Dispatcher        ports.Dispatcher
	Verifier          ports.SignatureVerifier
	StatsSvc          ports.StatsService
	ProcessingTimeout time.Duration
	RateLimitStore    *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimitRule     middleware.RateLimitRule
	HealthCheckers    []ports.HealthChecker
	Logger            zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Deep health check, pings PostgreSQL and Redis
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limiter on the ingest route only, noop when no store is wired.
	rl := func(c *gin.Context) { c.Next() }
	if deps.RateLimitStore != nil {
		rl = middleware.RateLimiter(deps.RateLimitStore, "webhook", deps.RateLimitRule, deps.Logger)
	}

	webhookHandler := NewWebhookHandler(deps.Dispatcher, deps.Verifier, deps.ProcessingTimeout, deps.Logger)
	r.POST("/webhook", rl, webhookHandler.Receive)
	r.GET("/webhook", webhookHandler.Introspect)

	statsHandler := NewStatsHandler(deps.StatsSvc)
	r.GET("/stats", statsHandler.GetStats)

	return r
}
