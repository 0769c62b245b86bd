package usecase

import (
	"context"
	"time"

	"github.com/fieldops/cashflow/internal/domain"
)

// AccountRepository defines data access for financial accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	ListActive(ctx context.Context) ([]*domain.Account, error)
}

// EntryRepository defines data access for ledger entries.
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.Entry) error
	GetByID(ctx context.Context, id string) (*domain.Entry, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status, paidAt domain.Date, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.Entry, error)
	// ListForAccounts returns all non-canceled entries assigned to the
	// given accounts, regardless of date. The engine needs the full
	// history to compute window opening balances.
	ListForAccounts(ctx context.Context, accountIDs []string) ([]*domain.Entry, error)
}

// RecurringRuleRepository defines data access for recurring rules.
type RecurringRuleRepository interface {
	Create(ctx context.Context, rule *domain.RecurringRule) error
	GetByID(ctx context.Context, id string) (*domain.RecurringRule, error)
	List(ctx context.Context, limit, offset int) ([]*domain.RecurringRule, error)
	ListActive(ctx context.Context) ([]*domain.RecurringRule, error)
	SetActive(ctx context.Context, id string, active bool, updatedAt time.Time) error
}

// Cache defines caching operations for computed reports.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock supplies the reference day that separates realized history from
// projected future. Injected so tests control the boundary.
type Clock interface {
	Today() domain.Date
}
