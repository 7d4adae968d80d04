package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-events/config"
	httpHandler "storefront-events/internal/adapter/http/handler"
	"storefront-events/internal/adapter/http/middleware"
	"storefront-events/internal/adapter/notify"
	pgStorage "storefront-events/internal/adapter/storage/postgres"
	redisStorage "storefront-events/internal/adapter/storage/redis"
	"storefront-events/internal/core/ports"
	"storefront-events/internal/service"
	"storefront-events/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Storefront Events")

	if cfg.Webhook.SigningSecret == "" {
		log.Fatal().Msg("Webhook signing secret is not configured")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	ledger := pgStorage.NewEventLedgerRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	subRepo := pgStorage.NewSubscriptionRepo(pool)
	fraudRepo := pgStorage.NewFraudRepo(pool)
	grantRepo := pgStorage.NewAccessGrantRepo(pool)
	credRepo := pgStorage.NewCredentialRepo(pool)

	// Initialize Redis stores
	dedupeStore := redisStorage.NewDedupeStore(rdb)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	verifier := service.NewWebhookSignatureService(cfg.Webhook.SigningSecret, cfg.Webhook.Tolerance)
	decoder := service.NewJSONEventDecoder()
	hashSvc := service.NewArgon2HashService()
	licenseSvc := service.NewJWTLicenseService(cfg.License.Secret, cfg.License.Issuer)

	// Outbound adapters
	httpClient := &http.Client{Timeout: cfg.Notify.Timeout}
	mailer := notify.NewMailer(cfg.Notify.MailerURL, httpClient, log)
	alerter := notify.NewOpsAlerter(cfg.Notify.AlertURL, httpClient, log)

	// Initialize business services
	fulfillmentSvc := service.NewFulfillmentService(grantRepo, credRepo, hashSvc, licenseSvc, mailer, log)
	txSvc := service.NewTransactionService(txRepo, fraudRepo, fulfillmentSvc, encSvc, log)
	subSvc := service.NewSubscriptionService(
		subRepo,
		fulfillmentSvc,
		encSvc,
		cfg.Fulfillment.EnterpriseThresholdCents,
		cfg.Fulfillment.DefaultPlanTier,
		cfg.Fulfillment.DefaultSeatLimit,
		log,
	)
	fraudSvc := service.NewFraudService(fraudRepo, txRepo, txSvc, fulfillmentSvc, encSvc, log)
	dispatcher := service.NewEventDispatcher(
		verifier,
		decoder,
		encSvc,
		dedupeStore,
		ledger,
		txSvc,
		subSvc,
		fraudSvc,
		alerter,
		cfg.Webhook.DedupeTTL,
		log,
	)
	statsSvc := service.NewPipelineStatsService(ledger, txRepo, subRepo, grantRepo, log)

	// Initialize rate limit store
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.RateLimit.Enabled {
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Dispatcher:        dispatcher,
		Verifier:          verifier,
		StatsSvc:          statsSvc,
		ProcessingTimeout: cfg.Webhook.ProcessingTimeout,
		RateLimitStore:    rateLimitStore,
		RateLimitRule: middleware.RateLimitRule{
			Limit:  cfg.RateLimit.Limit,
			Window: cfg.RateLimit.Window,
		},
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
