package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxAccountNameLength = 255
	MinAccountNameLength = 1
	MinDayOfMonth        = 1
	MaxDayOfMonth        = 31
	MaxHorizonMonths     = 60
)

// ValidatePeriod checks that a report period is well formed.
func ValidatePeriod(from, to Date) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: period bounds are required", ErrInvalidDate)
	}
	if to.Before(from) {
		return ErrInvalidPeriod
	}
	return nil
}

// ValidateHorizon checks a projection horizon in months.
func ValidateHorizon(months int) error {
	if months < 1 {
		return ErrInvalidHorizon
	}
	if months > MaxHorizonMonths {
		return fmt.Errorf("%w: maximum horizon is %d months", ErrInvalidHorizon, MaxHorizonMonths)
	}
	return nil
}

// ValidateAmount checks a ledger entry or rule amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateDirection checks a movement direction.
func ValidateDirection(direction Direction) error {
	if !direction.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidDirection, direction)
	}
	return nil
}

// ValidateAccountName validates an account display name.
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinAccountNameLength {
		return fmt.Errorf("account name cannot be empty")
	}
	if len(name) > MaxAccountNameLength {
		return fmt.Errorf("account name exceeds %d characters", MaxAccountNameLength)
	}
	return nil
}

// ValidateDayOfMonth checks a recurring rule anchor day.
func ValidateDayOfMonth(day int) error {
	if day < MinDayOfMonth || day > MaxDayOfMonth {
		return fmt.Errorf("%w: day of month must be between %d and %d, got %d", ErrInvalidDate, MinDayOfMonth, MaxDayOfMonth, day)
	}
	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
