package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldops/cashflow/internal/adapter/http/handler"
	"github.com/fieldops/cashflow/internal/adapter/http/middleware"
	"github.com/fieldops/cashflow/internal/domain"
	"github.com/fieldops/cashflow/internal/engine"
	"github.com/fieldops/cashflow/internal/usecase"
)

type reportServiceStub struct{}

func (s *reportServiceStub) ComputeReconciliation(_ context.Context, _ usecase.ReconciliationInput) (*engine.ReconciliationReport, error) {
	return &engine.ReconciliationReport{}, nil
}

func (s *reportServiceStub) ComputeCashFlow(_ context.Context, _ usecase.CashFlowInput) (*engine.CashFlowReport, error) {
	return &engine.CashFlowReport{}, nil
}

func (s *reportServiceStub) ComputeProjection(_ context.Context, _ usecase.ProjectionInput) (*engine.ProjectionReport, error) {
	return &engine.ProjectionReport{}, nil
}

type accountServiceStub struct{}

func (s *accountServiceStub) CreateAccount(_ context.Context, _ usecase.CreateAccountInput) (*domain.Account, error) {
	return &domain.Account{}, nil
}

func (s *accountServiceStub) GetAccount(_ context.Context, _ string) (*domain.Account, error) {
	return &domain.Account{}, nil
}

func (s *accountServiceStub) ListAccounts(_ context.Context, _ usecase.ListAccountsInput) ([]*domain.Account, error) {
	return nil, nil
}

type entryServiceStub struct{}

func (s *entryServiceStub) CreateEntry(_ context.Context, _ usecase.CreateEntryInput) (*domain.Entry, error) {
	return &domain.Entry{}, nil
}

func (s *entryServiceStub) SettleEntry(_ context.Context, _ string, _ domain.Date) (*domain.Entry, error) {
	return &domain.Entry{}, nil
}

func (s *entryServiceStub) CancelEntry(_ context.Context, _ string) (*domain.Entry, error) {
	return &domain.Entry{}, nil
}

func (s *entryServiceStub) ListEntries(_ context.Context, _ usecase.ListEntriesInput) ([]*domain.Entry, error) {
	return nil, nil
}

type ruleServiceStub struct{}

func (s *ruleServiceStub) CreateRule(_ context.Context, _ usecase.CreateRuleInput) (*domain.RecurringRule, error) {
	return &domain.RecurringRule{}, nil
}

func (s *ruleServiceStub) GetRule(_ context.Context, _ string) (*domain.RecurringRule, error) {
	return &domain.RecurringRule{}, nil
}

func (s *ruleServiceStub) ListRules(_ context.Context, _ usecase.ListRulesInput) ([]*domain.RecurringRule, error) {
	return nil, nil
}

func (s *ruleServiceStub) DeactivateRule(_ context.Context, _ string) error {
	return nil
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		ReportHandler:  handler.NewReportHandler(&reportServiceStub{}),
		AccountHandler: handler.NewAccountHandler(&accountServiceStub{}),
		EntryHandler:   handler.NewEntryHandler(&entryServiceStub{}),
		RuleHandler:    handler.NewRuleHandler(&ruleServiceStub{}),
		HealthHandler:  handler.NewHealthHandler(nil, nil),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = middleware.NewRateLimiter(1, 1)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "1.2.3.4:1234"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRouter, ok := router.(chi.Router)
	require.True(t, ok)

	var routes []string
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, fmt.Sprintf("%s %s", method, route))
		return nil
	})
	require.NoError(t, err)

	expected := []string{
		"GET /health",
		"GET /ready",
		"GET /api/v1/reports/reconciliation",
		"GET /api/v1/reports/cashflow",
		"GET /api/v1/reports/projection",
		"POST /api/v1/accounts/",
		"GET /api/v1/accounts/{id}",
		"POST /api/v1/entries/",
		"POST /api/v1/entries/{id}/settle",
		"POST /api/v1/entries/{id}/cancel",
		"POST /api/v1/rules/",
		"DELETE /api/v1/rules/{id}",
	}
	for _, route := range expected {
		assert.Contains(t, routes, route)
	}
}
