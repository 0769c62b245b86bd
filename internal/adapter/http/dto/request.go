package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fieldops/cashflow/internal/domain"
	"github.com/fieldops/cashflow/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name               string          `json:"name"`
	BankLabel          string          `json:"bank_label"`
	OpeningBalance     decimal.Decimal `json:"opening_balance"`
	OpeningBalanceDate domain.Date     `json:"opening_balance_date"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:               r.Name,
		BankLabel:          r.BankLabel,
		OpeningBalance:     r.OpeningBalance,
		OpeningBalanceDate: r.OpeningBalanceDate,
	}
}

// CreateEntryRequest represents a request to record a manual ledger entry.
type CreateEntryRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction"`
	DueDate     domain.Date     `json:"due_date"`
	AccountID   string          `json:"account_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateEntryRequest) ToUseCaseInput() usecase.CreateEntryInput {
	return usecase.CreateEntryInput{
		Description: r.Description,
		Amount:      r.Amount,
		Direction:   domain.Direction(r.Direction),
		DueDate:     r.DueDate,
		AccountID:   r.AccountID,
	}
}

// SettleEntryRequest represents a request to settle an open entry. PaidAt
// is optional; omitted means today.
type SettleEntryRequest struct {
	PaidAt domain.Date `json:"paid_at"`
}

// CreateRuleRequest represents a request to create a recurring rule.
type CreateRuleRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction"`
	DayOfMonth  int             `json:"day_of_month"`
	StartDate   domain.Date     `json:"start_date"`
	EndDate     domain.Date     `json:"end_date"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateRuleRequest) ToUseCaseInput() usecase.CreateRuleInput {
	return usecase.CreateRuleInput{
		Description: r.Description,
		Amount:      r.Amount,
		Direction:   domain.Direction(r.Direction),
		DayOfMonth:  r.DayOfMonth,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}
