package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldops/cashflow/internal/domain"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool, retrier *Retrier) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		retrier: retrier,
	}
}

const createEntrySQL = `
INSERT INTO entries (id, description, amount, direction, status, due_date, paid_at, account_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// Create creates a new ledger entry.
func (r *EntryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, createEntrySQL,
			entry.ID,
			entry.Description,
			decimalToNumeric(entry.Amount),
			string(entry.Direction),
			string(entry.Status),
			dateToPgDate(entry.DueDate),
			dateToPgDate(entry.PaidAt),
			textOrNull(entry.AccountID),
			timeToPgTimestamptz(entry.CreatedAt),
			timeToPgTimestamptz(entry.UpdatedAt),
		)
		return err
	})
}

const entryColumns = `id, description, amount, direction, status, due_date, paid_at, account_id, created_at, updated_at`

// GetByID retrieves an entry by ID.
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = $1`, id)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return entry, nil
}

const updateEntryStatusSQL = `
UPDATE entries SET status = $2, paid_at = $3, updated_at = $4 WHERE id = $1`

// UpdateStatus transitions an entry to a new status.
func (r *EntryRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, paidAt domain.Date, updatedAt time.Time) error {
	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, updateEntryStatusSQL,
			id,
			string(status),
			dateToPgDate(paidAt),
			timeToPgTimestamptz(updatedAt),
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrEntryNotFound
		}
		return nil
	})
}

// List lists entries with pagination, newest first.
func (r *EntryRepository) List(ctx context.Context, limit, offset int) ([]*domain.Entry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+entryColumns+` FROM entries ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`,
		int32(limit), int32(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListForAccounts returns all non-canceled entries assigned to the given
// accounts.
func (r *EntryRepository) ListForAccounts(ctx context.Context, accountIDs []string) ([]*domain.Entry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+entryColumns+` FROM entries
		 WHERE account_id = ANY($1) AND status <> $2
		 ORDER BY created_at, id`,
		accountIDs, string(domain.StatusCanceled),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var (
		e         domain.Entry
		amount    pgtype.Numeric
		direction string
		status    string
		dueDate   pgtype.Date
		paidAt    pgtype.Date
		accountID pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&e.ID, &e.Description, &amount, &direction, &status, &dueDate, &paidAt, &accountID, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	e.Amount = numericToDecimal(amount)
	e.Direction = domain.Direction(direction)
	e.Status = domain.Status(status)
	e.DueDate = pgDateToDate(dueDate)
	e.PaidAt = pgDateToDate(paidAt)
	e.AccountID = accountID.String
	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time

	return &e, nil
}

func scanEntries(rows pgx.Rows) ([]*domain.Entry, error) {
	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func textOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
