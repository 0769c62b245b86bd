package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/fieldops/cashflow/internal/adapter/http/handler"
	"github.com/fieldops/cashflow/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ReportHandler  *handler.ReportHandler
	AccountHandler *handler.AccountHandler
	EntryHandler   *handler.EntryHandler
	RuleHandler    *handler.RuleHandler
	HealthHandler  *handler.HealthHandler

	Logger zerolog.Logger

	// Optional middleware
	Logging     *middleware.LoggingMiddleware
	Metrics     *middleware.MetricsMiddleware
	RateLimiter *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Wrap)
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}
	r.Use(middleware.Recovery(cfg.Logger))

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Reports
		r.Route("/reports", func(r chi.Router) {
			r.Get("/reconciliation", cfg.ReportHandler.Reconciliation)
			r.Get("/cashflow", cfg.ReportHandler.CashFlow)
			r.Get("/projection", cfg.ReportHandler.Projection)
		})

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
		})

		// Ledger entries
		r.Route("/entries", func(r chi.Router) {
			r.Post("/", cfg.EntryHandler.Create)
			r.Get("/", cfg.EntryHandler.List)
			r.Post("/{id}/settle", cfg.EntryHandler.Settle)
			r.Post("/{id}/cancel", cfg.EntryHandler.Cancel)
		})

		// Recurring rules
		r.Route("/rules", func(r chi.Router) {
			r.Post("/", cfg.RuleHandler.Create)
			r.Get("/", cfg.RuleHandler.List)
			r.Get("/{id}", cfg.RuleHandler.Get)
			r.Delete("/{id}", cfg.RuleHandler.Deactivate)
		})
	})

	return r
}
