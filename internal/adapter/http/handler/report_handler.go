package handler

import (
	"context"
	"net/http"

	"github.com/fieldops/cashflow/internal/engine"
	"github.com/fieldops/cashflow/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	ComputeReconciliation(ctx context.Context, input usecase.ReconciliationInput) (*engine.ReconciliationReport, error)
	ComputeCashFlow(ctx context.Context, input usecase.CashFlowInput) (*engine.CashFlowReport, error)
	ComputeProjection(ctx context.Context, input usecase.ProjectionInput) (*engine.ProjectionReport, error)
}

// ReportHandler handles report computation requests. Engine report types
// carry their own JSON shape, so responses skip the dto layer.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Reconciliation computes the per-account reconciliation for a period.
func (h *ReportHandler) Reconciliation(w http.ResponseWriter, r *http.Request) {
	from, err := parseDateQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}
	to, err := parseDateQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}

	report, err := h.reportUC.ComputeReconciliation(r.Context(), usecase.ReconciliationInput{
		From:       from,
		To:         to,
		AccountIDs: parseAccountsQuery(r),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute reconciliation", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// CashFlow computes the reconciled daily cash-flow table for a period.
func (h *ReportHandler) CashFlow(w http.ResponseWriter, r *http.Request) {
	from, err := parseDateQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}
	to, err := parseDateQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}

	report, err := h.reportUC.ComputeCashFlow(r.Context(), usecase.CashFlowInput{
		From:       from,
		To:         to,
		AccountIDs: parseAccountsQuery(r),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute cash flow", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Projection computes the forward-looking balance projection.
func (h *ReportHandler) Projection(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUC.ComputeProjection(r.Context(), usecase.ProjectionInput{
		HorizonMonths: parseIntQuery(r, "months", 0),
		AccountIDs:    parseAccountsQuery(r),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute projection", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}
