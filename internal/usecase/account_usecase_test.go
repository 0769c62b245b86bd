package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/fieldops/cashflow/internal/domain"
	"github.com/fieldops/cashflow/internal/usecase"
	"github.com/fieldops/cashflow/internal/usecase/mocks"
)

func TestAccountUseCase_CreateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)

	idGen.EXPECT().Generate().Return("acc-1")
	accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewAccountUseCase(accountRepo, idGen, nil)

	account, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Name:               "Operating",
		BankLabel:          "First National",
		OpeningBalance:     decimal.RequireFromString("2500.00"),
		OpeningBalanceDate: domain.NewDate(2024, time.January, 1),
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.ID != "acc-1" {
		t.Errorf("expected generated id, got %q", account.ID)
	}
	if !account.IsActive {
		t.Error("new accounts must start active")
	}
}

func TestAccountUseCase_CreateAccountNegativeOpening(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)

	idGen.EXPECT().Generate().Return("acc-2")
	accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewAccountUseCase(accountRepo, idGen, nil)

	// An overdrawn account is a valid starting point.
	account, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Name:               "Overdraft",
		OpeningBalance:     decimal.RequireFromString("-300.00"),
		OpeningBalanceDate: domain.NewDate(2024, time.January, 1),
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !account.OpeningBalance.IsNegative() {
		t.Errorf("expected negative opening balance, got %s", account.OpeningBalance)
	}
}

func TestAccountUseCase_CreateAccountValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)

	uc := usecase.NewAccountUseCase(accountRepo, idGen, nil)

	tests := []struct {
		name  string
		input usecase.CreateAccountInput
	}{
		{
			name: "empty name",
			input: usecase.CreateAccountInput{
				OpeningBalanceDate: domain.NewDate(2024, time.January, 1),
			},
		},
		{
			name: "name too long",
			input: usecase.CreateAccountInput{
				Name:               strings.Repeat("x", 256),
				OpeningBalanceDate: domain.NewDate(2024, time.January, 1),
			},
		},
		{
			name: "missing opening balance date",
			input: usecase.CreateAccountInput{
				Name: "Operating",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.CreateAccount(context.Background(), tt.input); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestAccountUseCase_GetAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)

	accountRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, domain.ErrAccountNotFound)

	uc := usecase.NewAccountUseCase(accountRepo, idGen, nil)

	_, err := uc.GetAccount(context.Background(), "missing")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountUseCase_ListAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)

	// Oversized limits are clamped.
	accountRepo.EXPECT().List(gomock.Any(), 1000, 10).Return([]*domain.Account{{ID: "acc-1"}}, nil)

	uc := usecase.NewAccountUseCase(accountRepo, idGen, nil)

	accounts, err := uc.ListAccounts(context.Background(), usecase.ListAccountsInput{Limit: 5000, Offset: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 1 {
		t.Errorf("expected 1 account, got %d", len(accounts))
	}
}
