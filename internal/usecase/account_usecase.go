package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldops/cashflow/internal/domain"
	"github.com/fieldops/cashflow/internal/infrastructure/metrics"
)

// AccountUseCase handles financial account management.
type AccountUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase. m may be nil.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator, m *metrics.Metrics) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
		metrics:     m,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name               string
	BankLabel          string
	OpeningBalance     decimal.Decimal
	OpeningBalanceDate domain.Date
}

// CreateAccount creates a new active account. The opening balance may be
// negative (an overdrawn account is a valid starting point).
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}
	if input.OpeningBalanceDate.IsZero() {
		return nil, domain.ErrInvalidDate
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:                 uc.idGen.Generate(),
		Name:               input.Name,
		BankLabel:          input.BankLabel,
		OpeningBalance:     input.OpeningBalance,
		OpeningBalanceDate: input.OpeningBalanceDate,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.accountRepo.List(ctx, limit, offset)
}
