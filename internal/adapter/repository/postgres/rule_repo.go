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

// RecurringRuleRepository implements usecase.RecurringRuleRepository.
type RecurringRuleRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewRecurringRuleRepository creates a new RecurringRuleRepository.
func NewRecurringRuleRepository(pool *pgxpool.Pool, retrier *Retrier) *RecurringRuleRepository {
	return &RecurringRuleRepository{
		pool:    pool,
		retrier: retrier,
	}
}

const createRuleSQL = `
INSERT INTO recurring_rules (id, description, amount, direction, day_of_month, start_date, end_date, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// Create creates a new recurring rule.
func (r *RecurringRuleRepository) Create(ctx context.Context, rule *domain.RecurringRule) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, createRuleSQL,
			rule.ID,
			rule.Description,
			decimalToNumeric(rule.Amount),
			string(rule.Direction),
			int32(rule.DayOfMonth),
			dateToPgDate(rule.StartDate),
			dateToPgDate(rule.EndDate),
			rule.IsActive,
			timeToPgTimestamptz(rule.CreatedAt),
			timeToPgTimestamptz(rule.UpdatedAt),
		)
		return err
	})
}

const ruleColumns = `id, description, amount, direction, day_of_month, start_date, end_date, is_active, created_at, updated_at`

// GetByID retrieves a recurring rule by ID.
func (r *RecurringRuleRepository) GetByID(ctx context.Context, id string) (*domain.RecurringRule, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+ruleColumns+` FROM recurring_rules WHERE id = $1`, id)

	rule, err := scanRule(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRuleNotFound
		}

		return nil, err
	}

	return rule, nil
}

// List lists recurring rules with pagination.
func (r *RecurringRuleRepository) List(ctx context.Context, limit, offset int) ([]*domain.RecurringRule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ruleColumns+` FROM recurring_rules ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		int32(limit), int32(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRules(rows)
}

// ListActive lists all active recurring rules.
func (r *RecurringRuleRepository) ListActive(ctx context.Context) ([]*domain.RecurringRule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ruleColumns+` FROM recurring_rules WHERE is_active ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRules(rows)
}

const setRuleActiveSQL = `
UPDATE recurring_rules SET is_active = $2, updated_at = $3 WHERE id = $1`

// SetActive toggles whether a rule produces projections.
func (r *RecurringRuleRepository) SetActive(ctx context.Context, id string, active bool, updatedAt time.Time) error {
	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, setRuleActiveSQL, id, active, timeToPgTimestamptz(updatedAt))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrRuleNotFound
		}
		return nil
	})
}

func scanRule(row pgx.Row) (*domain.RecurringRule, error) {
	var (
		rr         domain.RecurringRule
		amount     pgtype.Numeric
		direction  string
		dayOfMonth int32
		startDate  pgtype.Date
		endDate    pgtype.Date
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)

	err := row.Scan(&rr.ID, &rr.Description, &amount, &direction, &dayOfMonth, &startDate, &endDate, &rr.IsActive, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	rr.Amount = numericToDecimal(amount)
	rr.Direction = domain.Direction(direction)
	rr.DayOfMonth = int(dayOfMonth)
	rr.StartDate = pgDateToDate(startDate)
	rr.EndDate = pgDateToDate(endDate)
	rr.CreatedAt = createdAt.Time
	rr.UpdatedAt = updatedAt.Time

	return &rr, nil
}

func scanRules(rows pgx.Rows) ([]*domain.RecurringRule, error) {
	rules := make([]*domain.RecurringRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}
