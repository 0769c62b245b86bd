package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fieldops/cashflow/internal/domain"
	"github.com/fieldops/cashflow/internal/engine"
	"github.com/fieldops/cashflow/internal/infrastructure/metrics"
)

// ReportUseCase computes the three financial reports. The heavy lifting is
// the pure engine; this layer validates input, assembles the snapshot from
// the repositories and keeps a short-lived result cache keyed by the
// computation parameters.
type ReportUseCase struct {
	accountRepo AccountRepository
	entryRepo   EntryRepository
	ruleRepo    RecurringRuleRepository
	cache       Cache
	clock       Clock
	metrics     *metrics.Metrics
}

// NewReportUseCase creates a new ReportUseCase. cache and metrics may be
// nil; both are best-effort.
func NewReportUseCase(
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	ruleRepo RecurringRuleRepository,
	cache Cache,
	clock Clock,
	m *metrics.Metrics,
) *ReportUseCase {
	return &ReportUseCase{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		ruleRepo:    ruleRepo,
		cache:       cache,
		clock:       clock,
		metrics:     m,
	}
}

// ReconciliationInput selects the period and accounts of a reconciliation.
type ReconciliationInput struct {
	From       domain.Date
	To         domain.Date
	AccountIDs []string
}

// CashFlowInput selects the window and accounts of a cash-flow table.
type CashFlowInput struct {
	From       domain.Date
	To         domain.Date
	AccountIDs []string
}

// ProjectionInput selects the horizon and accounts of a projection.
type ProjectionInput struct {
	HorizonMonths int
	AccountIDs    []string
}

// ComputeReconciliation builds the per-account audit view for the period.
func (uc *ReportUseCase) ComputeReconciliation(ctx context.Context, input ReconciliationInput) (*engine.ReconciliationReport, error) {
	if err := domain.ValidatePeriod(input.From, input.To); err != nil {
		return nil, err
	}

	key := cacheKey("reconciliation", input.AccountIDs, input.From.String(), input.To.String())
	var cached engine.ReconciliationReport
	if uc.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	start := time.Now()
	snapshot, err := uc.buildSnapshot(ctx, input.AccountIDs, false)
	if err != nil {
		return nil, err
	}

	report := engine.ComputeReconciliation(snapshot, engine.ReconciliationParams{
		AccountIDs: input.AccountIDs,
		From:       input.From,
		To:         input.To,
	})

	uc.observe(ctx, "reconciliation", start, key, report)
	return report, nil
}

// ComputeCashFlow builds the reconciled daily cash-flow table.
func (uc *ReportUseCase) ComputeCashFlow(ctx context.Context, input CashFlowInput) (*engine.CashFlowReport, error) {
	if err := domain.ValidatePeriod(input.From, input.To); err != nil {
		return nil, err
	}

	key := cacheKey("cashflow", input.AccountIDs, input.From.String(), input.To.String())
	var cached engine.CashFlowReport
	if uc.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	start := time.Now()
	snapshot, err := uc.buildSnapshot(ctx, input.AccountIDs, false)
	if err != nil {
		return nil, err
	}

	report := engine.ComputeCashFlow(snapshot, engine.CashFlowParams{
		AccountIDs: input.AccountIDs,
		From:       input.From,
		To:         input.To,
	})

	uc.observe(ctx, "cashflow", start, key, report)
	return report, nil
}

// ComputeProjection builds the forward projection. The cache key includes
// today, so a result cached yesterday can never bleed across the boundary.
func (uc *ReportUseCase) ComputeProjection(ctx context.Context, input ProjectionInput) (*engine.ProjectionReport, error) {
	if input.HorizonMonths == 0 {
		input.HorizonMonths = DefaultHorizonMonths
	}
	if err := domain.ValidateHorizon(input.HorizonMonths); err != nil {
		return nil, err
	}

	today := uc.clock.Today()
	key := cacheKey("projection", input.AccountIDs, today.String(), strconv.Itoa(input.HorizonMonths))
	var cached engine.ProjectionReport
	if uc.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	start := time.Now()
	snapshot, err := uc.buildSnapshot(ctx, input.AccountIDs, true)
	if err != nil {
		return nil, err
	}

	report := engine.ComputeProjection(snapshot, engine.ProjectionParams{
		AccountIDs:    input.AccountIDs,
		Today:         today,
		HorizonMonths: input.HorizonMonths,
	})

	uc.observe(ctx, "projection", start, key, report)
	return report, nil
}

// buildSnapshot fetches accounts, the entries assigned to the selection
// and, when withRules is set, the active recurring rules.
func (uc *ReportUseCase) buildSnapshot(ctx context.Context, accountIDs []string, withRules bool) (*engine.Snapshot, error) {
	accounts, err := uc.accountRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	probe := engine.NewSnapshot(accounts, nil, nil)
	selected := probe.SelectAccounts(accountIDs)
	if len(selected) == 0 {
		return nil, domain.ErrNoAccounts
	}

	ids := make([]string, len(selected))
	for i, a := range selected {
		ids[i] = a.ID
	}

	entries, err := uc.entryRepo.ListForAccounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	var rules []*domain.RecurringRule
	if withRules {
		rules, err = uc.ruleRepo.ListActive(ctx)
		if err != nil {
			return nil, err
		}
	}

	return engine.NewSnapshot(accounts, entries, rules), nil
}

// fromCache tries to load a cached report. Any cache failure counts as a
// miss; the report is simply recomputed.
func (uc *ReportUseCase) fromCache(ctx context.Context, key string, out any) bool {
	if uc.cache == nil {
		return false
	}

	raw, err := uc.cache.Get(ctx, key)
	if err != nil || len(raw) == 0 {
		if uc.metrics != nil {
			uc.metrics.ReportCacheMisses.Inc()
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}

	if uc.metrics != nil {
		uc.metrics.ReportCacheHits.Inc()
	}
	return true
}

// observe records computation metrics and stores the result, best effort.
func (uc *ReportUseCase) observe(ctx context.Context, report string, start time.Time, key string, result any) {
	if uc.metrics != nil {
		uc.metrics.ReportsComputed.WithLabelValues(report).Inc()
		uc.metrics.ReportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
	}

	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	_ = uc.cache.Set(ctx, key, raw, ReportCacheTTL)
}

// cacheKey builds a deterministic key from the report name, the sorted
// account filter and the remaining parameters.
func cacheKey(report string, accountIDs []string, params ...string) string {
	ids := make([]string, len(accountIDs))
	copy(ids, accountIDs)
	sort.Strings(ids)

	parts := make([]string, 0, len(params)+2)
	parts = append(parts, "report:"+report, strings.Join(ids, ","))
	parts = append(parts, params...)

	return strings.Join(parts, ":")
}
