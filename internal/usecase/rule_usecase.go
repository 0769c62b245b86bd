package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldops/cashflow/internal/domain"
	"github.com/fieldops/cashflow/internal/infrastructure/metrics"
)

// RecurringRuleUseCase manages recurring cash-flow rules.
type RecurringRuleUseCase struct {
	ruleRepo RecurringRuleRepository
	idGen    IDGenerator
	metrics  *metrics.Metrics
}

// NewRecurringRuleUseCase creates a new RecurringRuleUseCase. m may be nil.
func NewRecurringRuleUseCase(ruleRepo RecurringRuleRepository, idGen IDGenerator, m *metrics.Metrics) *RecurringRuleUseCase {
	return &RecurringRuleUseCase{
		ruleRepo: ruleRepo,
		idGen:    idGen,
		metrics:  m,
	}
}

// CreateRuleInput represents input for creating a recurring rule.
type CreateRuleInput struct {
	Description string
	Amount      decimal.Decimal
	Direction   domain.Direction
	DayOfMonth  int
	StartDate   domain.Date
	EndDate     domain.Date
}

// CreateRule registers a recurring rule. EndDate may be zero for an
// open-ended rule.
func (uc *RecurringRuleUseCase) CreateRule(ctx context.Context, input CreateRuleInput) (*domain.RecurringRule, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := domain.ValidateDirection(input.Direction); err != nil {
		return nil, err
	}
	if err := domain.ValidateDayOfMonth(input.DayOfMonth); err != nil {
		return nil, err
	}
	if input.StartDate.IsZero() {
		return nil, domain.ErrInvalidDate
	}
	if !input.EndDate.IsZero() && input.EndDate.Before(input.StartDate) {
		return nil, domain.ErrInvalidPeriod
	}

	now := time.Now().UTC()
	rule := &domain.RecurringRule{
		ID:          uc.idGen.Generate(),
		Description: input.Description,
		Amount:      input.Amount,
		Direction:   input.Direction,
		DayOfMonth:  input.DayOfMonth,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RulesCreated.Inc()
	}

	return rule, nil
}

// GetRule retrieves a recurring rule by ID.
func (uc *RecurringRuleUseCase) GetRule(ctx context.Context, id string) (*domain.RecurringRule, error) {
	return uc.ruleRepo.GetByID(ctx, id)
}

// ListRulesInput represents input for listing recurring rules.
type ListRulesInput struct {
	Limit  int
	Offset int
}

// ListRules lists recurring rules with pagination.
func (uc *RecurringRuleUseCase) ListRules(ctx context.Context, input ListRulesInput) ([]*domain.RecurringRule, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.ruleRepo.List(ctx, limit, offset)
}

// DeactivateRule stops a rule from producing further projections.
func (uc *RecurringRuleUseCase) DeactivateRule(ctx context.Context, id string) error {
	if _, err := uc.ruleRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.ruleRepo.SetActive(ctx, id, false, time.Now().UTC())
}
