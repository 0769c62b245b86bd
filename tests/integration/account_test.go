package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldops/cashflow/internal/domain"
	"github.com/fieldops/cashflow/tests/testutil"
)

func TestAccountRepository_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer db.Cleanup()

	ctx := context.Background()
	db.TruncateAll(ctx)

	created := db.CreateTestAccount(ctx, "Main Checking", decimal.NewFromFloat(1500.50), domain.NewDate(2024, time.January, 1))

	got, err := db.Accounts.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	if got.Name != "Main Checking" {
		t.Errorf("expected name Main Checking, got %s", got.Name)
	}
	if !got.OpeningBalance.Equal(decimal.NewFromFloat(1500.50)) {
		t.Errorf("expected opening balance 1500.50, got %s", got.OpeningBalance)
	}
	if !got.OpeningBalanceDate.Equal(domain.NewDate(2024, time.January, 1)) {
		t.Errorf("unexpected opening balance date: %v", got.OpeningBalanceDate)
	}
	if !got.IsActive {
		t.Error("expected account to be active")
	}
}

func TestAccountRepository_GetByIDNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer db.Cleanup()

	ctx := context.Background()
	db.TruncateAll(ctx)

	_, err := db.Accounts.GetByID(ctx, testutil.GenerateID())
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepository_ListActive(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer db.Cleanup()

	ctx := context.Background()
	db.TruncateAll(ctx)

	active := db.CreateTestAccount(ctx, "Active", decimal.Zero, domain.NewDate(2024, time.January, 1))

	inactive := db.CreateTestAccount(ctx, "Inactive", decimal.Zero, domain.NewDate(2024, time.January, 1))
	_, err := db.Pool.Exec(ctx, `UPDATE accounts SET is_active = FALSE WHERE id = $1`, inactive.ID)
	if err != nil {
		t.Fatalf("failed to deactivate account: %v", err)
	}

	accounts, err := db.Accounts.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}

	if len(accounts) != 1 {
		t.Fatalf("expected 1 active account, got %d", len(accounts))
	}
	if accounts[0].ID != active.ID {
		t.Errorf("expected account %s, got %s", active.ID, accounts[0].ID)
	}
}

func TestEntryRepository_UpdateStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer db.Cleanup()

	ctx := context.Background()
	db.TruncateAll(ctx)

	account := db.CreateTestAccount(ctx, "Ops", decimal.Zero, domain.NewDate(2024, time.January, 1))
	entry := db.CreateTestEntry(ctx, account.ID, decimal.NewFromInt(200), domain.DirectionPay, domain.StatusOpen, domain.NewDate(2024, time.February, 10), domain.Date{})

	paidAt := domain.NewDate(2024, time.February, 12)
	if err := db.Entries.UpdateStatus(ctx, entry.ID, domain.StatusPaid, paidAt, time.Now().UTC()); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	got, err := db.Entries.GetByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != domain.StatusPaid {
		t.Errorf("expected status PAID, got %s", got.Status)
	}
	if !got.PaidAt.Equal(paidAt) {
		t.Errorf("unexpected paid_at: %v", got.PaidAt)
	}
}

func TestEntryRepository_ListForAccountsExcludesCanceled(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer db.Cleanup()

	ctx := context.Background()
	db.TruncateAll(ctx)

	account := db.CreateTestAccount(ctx, "Ops", decimal.Zero, domain.NewDate(2024, time.January, 1))
	kept := db.CreateTestEntry(ctx, account.ID, decimal.NewFromInt(100), domain.DirectionReceive, domain.StatusOpen, domain.NewDate(2024, time.March, 5), domain.Date{})
	db.CreateTestEntry(ctx, account.ID, decimal.NewFromInt(50), domain.DirectionPay, domain.StatusCanceled, domain.NewDate(2024, time.March, 6), domain.Date{})

	entries, err := db.Entries.ListForAccounts(ctx, []string{account.ID})
	if err != nil {
		t.Fatalf("ListForAccounts failed: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID != kept.ID {
		t.Errorf("expected entry %s, got %s", kept.ID, entries[0].ID)
	}
}
