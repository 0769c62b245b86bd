package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/fieldops/cashflow/internal/adapter/http"
	"github.com/fieldops/cashflow/internal/adapter/http/handler"
	"github.com/fieldops/cashflow/internal/adapter/http/middleware"
	postgresRepo "github.com/fieldops/cashflow/internal/adapter/repository/postgres"
	redisRepo "github.com/fieldops/cashflow/internal/adapter/repository/redis"
	"github.com/fieldops/cashflow/internal/infrastructure/config"
	"github.com/fieldops/cashflow/internal/infrastructure/logger"
	"github.com/fieldops/cashflow/internal/infrastructure/metrics"
	"github.com/fieldops/cashflow/internal/infrastructure/postgres"
	"github.com/fieldops/cashflow/internal/infrastructure/redis"
	"github.com/fieldops/cashflow/internal/usecase"
)

// ratePerSecond converts the per-minute limit from configuration into
// the refill rate the limiter expects.
func ratePerSecond(perMinute int) float64 {
	if perMinute <= 0 {
		return 1
	}
	return float64(perMinute) / 60.0
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "cashflow"})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(log, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis. The report cache is best-effort, so a missing
	// REDIS_URL only disables caching.
	var reportCache usecase.Cache
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, report caching disabled")
		redisClient = nil
	} else {
		defer redisClient.Close()
		reportCache = redisRepo.NewReportCache(redisClient)
		log.Info().Msg("connected to redis")
	}

	m := metrics.New()

	// Initialize repositories
	retrier := postgresRepo.NewRetrier(log)
	accountRepo := postgresRepo.NewAccountRepository(pool, retrier)
	entryRepo := postgresRepo.NewEntryRepository(pool, retrier)
	ruleRepo := postgresRepo.NewRecurringRuleRepository(pool, retrier)
	idGen := postgresRepo.NewULIDGenerator()
	clock := usecase.SystemClock{}

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(accountRepo, idGen, m)
	entryUC := usecase.NewEntryUseCase(entryRepo, accountRepo, idGen, clock, m)
	ruleUC := usecase.NewRecurringRuleUseCase(ruleRepo, idGen, m)
	reportUC := usecase.NewReportUseCase(accountRepo, entryRepo, ruleRepo, reportCache, clock, m)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	entryHandler := handler.NewEntryHandler(entryUC)
	ruleHandler := handler.NewRuleHandler(ruleUC)
	reportHandler := handler.NewReportHandler(reportUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ReportHandler:  reportHandler,
		AccountHandler: accountHandler,
		EntryHandler:   entryHandler,
		RuleHandler:    ruleHandler,
		HealthHandler:  healthHandler,
		Logger:         log,
		Logging:        middleware.NewLoggingMiddleware(log),
		Metrics:        middleware.NewMetricsMiddleware(m),
		RateLimiter:    middleware.NewRateLimiter(ratePerSecond(cfg.RateLimitPerMinute), cfg.RateLimitPerMinute).WithHitCounter(m.RateLimitHits),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
