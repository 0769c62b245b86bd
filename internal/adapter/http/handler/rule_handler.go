package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fieldops/cashflow/internal/adapter/http/dto"
	"github.com/fieldops/cashflow/internal/domain"
	"github.com/fieldops/cashflow/internal/usecase"
)

// RuleService defines the behavior needed by RuleHandler.
type RuleService interface {
	CreateRule(ctx context.Context, input usecase.CreateRuleInput) (*domain.RecurringRule, error)
	GetRule(ctx context.Context, id string) (*domain.RecurringRule, error)
	ListRules(ctx context.Context, input usecase.ListRulesInput) ([]*domain.RecurringRule, error)
	DeactivateRule(ctx context.Context, id string) error
}

// RuleHandler handles recurring rule HTTP requests.
type RuleHandler struct {
	ruleUC RuleService
}

// NewRuleHandler creates a new RuleHandler.
func NewRuleHandler(ruleUC RuleService) *RuleHandler {
	return &RuleHandler{ruleUC: ruleUC}
}

// Create creates a recurring rule.
func (h *RuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rule, err := h.ruleUC.CreateRule(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create rule", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RuleFromDomain(rule))
}

// Get retrieves a recurring rule by ID.
func (h *RuleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing rule ID", "")
		return
	}

	rule, err := h.ruleUC.GetRule(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get rule", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RuleFromDomain(rule))
}

// List lists recurring rules.
func (h *RuleHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 0)
	offset := parseIntQuery(r, "offset", 0)

	rules, err := h.ruleUC.ListRules(r.Context(), usecase.ListRulesInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list rules", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListRulesResponse{
		Rules: dto.RulesFromDomain(rules),
		Total: int64(len(rules)),
	})
}

// Deactivate stops a rule from producing projections.
func (h *RuleHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing rule ID", "")
		return
	}

	if err := h.ruleUC.DeactivateRule(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to deactivate rule", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}
