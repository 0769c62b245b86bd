package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldops/cashflow/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	BankLabel          string          `json:"bank_label,omitempty"`
	OpeningBalance     decimal.Decimal `json:"opening_balance"`
	OpeningBalanceDate domain.Date     `json:"opening_balance_date"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:                 a.ID,
		Name:               a.Name,
		BankLabel:          a.BankLabel,
		OpeningBalance:     a.OpeningBalance,
		OpeningBalanceDate: a.OpeningBalanceDate,
		IsActive:           a.IsActive,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction"`
	Status      string          `json:"status"`
	DueDate     domain.Date     `json:"due_date"`
	PaidAt      domain.Date     `json:"paid_at"`
	AccountID   string          `json:"account_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// EntryFromDomain converts domain entry to response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Direction:   string(e.Direction),
		Status:      string(e.Status),
		DueDate:     e.DueDate,
		PaidAt:      e.PaidAt,
		AccountID:   e.AccountID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// ListEntriesResponse wraps a page of entries.
type ListEntriesResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Total   int64            `json:"total"`
}

// RuleResponse represents a recurring rule in API responses.
type RuleResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction"`
	DayOfMonth  int             `json:"day_of_month"`
	StartDate   domain.Date     `json:"start_date"`
	EndDate     domain.Date     `json:"end_date"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// RuleFromDomain converts domain rule to response.
func RuleFromDomain(r *domain.RecurringRule) *RuleResponse {
	return &RuleResponse{
		ID:          r.ID,
		Description: r.Description,
		Amount:      r.Amount,
		Direction:   string(r.Direction),
		DayOfMonth:  r.DayOfMonth,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// RulesFromDomain converts domain rules to responses.
func RulesFromDomain(rules []*domain.RecurringRule) []*RuleResponse {
	result := make([]*RuleResponse, len(rules))
	for i, r := range rules {
		result[i] = RuleFromDomain(r)
	}
	return result
}

// ListRulesResponse wraps a page of rules.
type ListRulesResponse struct {
	Rules []*RuleResponse `json:"rules"`
	Total int64           `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
