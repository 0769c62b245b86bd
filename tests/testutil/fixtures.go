package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	postgresRepo "github.com/fieldops/cashflow/internal/adapter/repository/postgres"
	"github.com/fieldops/cashflow/internal/domain"
	"github.com/fieldops/cashflow/internal/infrastructure/postgres"
)

// TestDB provides isolated test database connections.
type TestDB struct {
	Pool     *pgxpool.Pool
	Accounts *postgresRepo.AccountRepository
	Entries  *postgresRepo.EntryRepository
	Rules    *postgresRepo.RecurringRuleRepository
	t        *testing.T
}

// NewTestDB connects to the database named by DATABASE_URL and runs the
// migrations. Tests that call it are skipped when DATABASE_URL is unset.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	migrationsPath := "migrations"
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		migrationsPath = "../../migrations"
	}

	log := zerolog.Nop()
	if err := postgres.RunMigrations(log, dbURL, migrationsPath); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{DatabaseURL: dbURL})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	retrier := postgresRepo.NewRetrier(log)

	return &TestDB{
		Pool:     pool,
		Accounts: postgresRepo.NewAccountRepository(pool, retrier),
		Entries:  postgresRepo.NewEntryRepository(pool, retrier),
		Rules:    postgresRepo.NewRecurringRuleRepository(pool, retrier),
		t:        t,
	}
}

// Cleanup closes the database connection.
func (db *TestDB) Cleanup() {
	db.Pool.Close()
}

// TruncateAll removes all data from tables.
func (db *TestDB) TruncateAll(ctx context.Context) {
	db.t.Helper()

	_, err := db.Pool.Exec(ctx, `
		TRUNCATE TABLE entries CASCADE;
		TRUNCATE TABLE recurring_rules CASCADE;
		TRUNCATE TABLE accounts CASCADE;
	`)
	if err != nil {
		db.t.Fatalf("failed to truncate tables: %v", err)
	}
}

// CreateTestAccount inserts an account with the given opening balance.
func (db *TestDB) CreateTestAccount(ctx context.Context, name string, opening decimal.Decimal, openingDate domain.Date) *domain.Account {
	db.t.Helper()

	now := time.Now().UTC()
	account := &domain.Account{
		ID:                 GenerateID(),
		Name:               name,
		OpeningBalance:     opening,
		OpeningBalanceDate: openingDate,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := db.Accounts.Create(ctx, account); err != nil {
		db.t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestEntry inserts a ledger entry attached to the given account.
func (db *TestDB) CreateTestEntry(ctx context.Context, accountID string, amount decimal.Decimal, direction domain.Direction, status domain.Status, dueDate, paidAt domain.Date) *domain.Entry {
	db.t.Helper()

	now := time.Now().UTC()
	entry := &domain.Entry{
		ID:          GenerateID(),
		Description: "test entry",
		Amount:      amount,
		Direction:   direction,
		Status:      status,
		DueDate:     dueDate,
		PaidAt:      paidAt,
		AccountID:   accountID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := db.Entries.Create(ctx, entry); err != nil {
		db.t.Fatalf("failed to create test entry: %v", err)
	}
	return entry
}

// CreateTestRule inserts an active recurring rule.
func (db *TestDB) CreateTestRule(ctx context.Context, amount decimal.Decimal, direction domain.Direction, dayOfMonth int, startDate domain.Date) *domain.RecurringRule {
	db.t.Helper()

	now := time.Now().UTC()
	rule := &domain.RecurringRule{
		ID:          GenerateID(),
		Description: "test rule",
		Amount:      amount,
		Direction:   direction,
		DayOfMonth:  dayOfMonth,
		StartDate:   startDate,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := db.Rules.Create(ctx, rule); err != nil {
		db.t.Fatalf("failed to create test rule: %v", err)
	}
	return rule
}

// GenerateID generates a new ULID.
func GenerateID() string {
	return ulid.Make().String()
}
