package engine

import (
	"github.com/shopspring/decimal"

	"github.com/fieldops/cashflow/internal/domain"
)

// CashFlowParams selects the window of a reconciled cash-flow computation.
// An empty AccountIDs slice means all active accounts.
type CashFlowParams struct {
	AccountIDs []string
	From       domain.Date
	To         domain.Date
}

// ProjectionParams selects the horizon of a forward projection. Today is
// the reference day that separates realized history from projected future.
type ProjectionParams struct {
	AccountIDs    []string
	Today         domain.Date
	HorizonMonths int
}

// ReconciliationParams selects the period of a reconciliation audit.
type ReconciliationParams struct {
	AccountIDs []string
	From       domain.Date
	To         domain.Date
}

// CashFlowReport is the daily cash-flow table plus its period summary.
type CashFlowReport struct {
	From    domain.Date     `json:"from"`
	To      domain.Date     `json:"to"`
	Opening decimal.Decimal `json:"opening"`
	Days    []DailyBalance  `json:"days"`
	Summary CashFlowSummary `json:"summary"`

	// SkippedEntries surfaces how many snapshot entries were excluded
	// for missing dates, for diagnostics.
	SkippedEntries int `json:"skipped_entries"`
}

// ProjectionReport is the forward projection plus its summary.
type ProjectionReport struct {
	From           domain.Date        `json:"from"`
	To             domain.Date        `json:"to"`
	Today          domain.Date        `json:"today"`
	Opening        decimal.Decimal    `json:"opening"`
	Days           []ProjectedBalance `json:"days"`
	Summary        ProjectionSummary  `json:"summary"`
	SkippedEntries int                `json:"skipped_entries"`
}

// ComputeCashFlow runs the reconciled daily walk over [From, To]. An empty
// account selection yields an empty report rather than an error.
func ComputeCashFlow(s *Snapshot, p CashFlowParams) *CashFlowReport {
	report := &CashFlowReport{
		From:           p.From,
		To:             p.To,
		Opening:        decimal.Zero,
		SkippedEntries: s.SkippedEntries,
	}

	accounts := s.SelectAccounts(p.AccountIDs)
	opening, ok := OpeningBalance(accounts, s.EntriesFor(accounts), p.From)
	if !ok {
		report.Summary = Summarize(nil)
		return report
	}

	entries := s.EntriesFor(accounts)
	report.Opening = opening
	report.Days = WalkDays(entries, opening, p.From, p.To)
	report.Summary = Summarize(report.Days)

	return report
}

// ComputeProjection runs the forecast walk from the first day of the
// current month through the last day of the month HorizonMonths ahead.
// Recurring rules are expanded for the future part of the window only.
func ComputeProjection(s *Snapshot, p ProjectionParams) *ProjectionReport {
	// Anchor the horizon on the month, not the day: adding months to a
	// late day of month would normalize past the intended end month.
	from := p.Today.FirstOfMonth()
	to := from.AddMonths(p.HorizonMonths).LastOfMonth()

	report := &ProjectionReport{
		From:           from,
		To:             to,
		Today:          p.Today,
		Opening:        decimal.Zero,
		SkippedEntries: s.SkippedEntries,
	}

	accounts := s.SelectAccounts(p.AccountIDs)
	entries := s.EntriesFor(accounts)
	opening, ok := OpeningBalance(accounts, entries, from)
	if !ok {
		report.Summary = SummarizeForecast(nil)
		return report
	}

	projected := ProjectRecurring(s.ActiveRules(), entries, p.Today, to)

	report.Opening = opening
	report.Days = WalkForecast(entries, projected, opening, p.Today, from, to)
	report.Summary = SummarizeForecast(report.Days)

	return report
}

// ComputeReconciliation builds the per-account audit view for [From, To].
func ComputeReconciliation(s *Snapshot, p ReconciliationParams) *ReconciliationReport {
	accounts := s.SelectAccounts(p.AccountIDs)
	return Reconcile(accounts, s.EntriesFor(accounts), p.From, p.To)
}
