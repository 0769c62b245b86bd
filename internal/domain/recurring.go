package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringRule describes a charge that repeats monthly on an anchored day.
// It is a rule, not a transaction: the engine derives transient projected
// occurrences from it, and a separate materializer (out of scope here) is
// the only thing that may turn an occurrence into a real ledger entry.
type RecurringRule struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Direction   Direction
	DayOfMonth  int
	StartDate   Date
	EndDate     Date
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DueDateIn returns the rule's occurrence date in the given month,
// clamping the day-of-month anchor to the month length.
func (r *RecurringRule) DueDateIn(year int, month time.Month) Date {
	return ClampedDate(year, month, r.DayOfMonth)
}

// AppliesTo reports whether the rule is in force at any point of the given
// month: it has started by the month's end and, if it has an end date, has
// not ended before the month's start.
func (r *RecurringRule) AppliesTo(year int, month time.Month) bool {
	monthStart := NewDate(year, month, 1)
	monthEnd := monthStart.LastOfMonth()

	if r.StartDate.After(monthEnd) {
		return false
	}
	if !r.EndDate.IsZero() && r.EndDate.Before(monthStart) {
		return false
	}
	return true
}
