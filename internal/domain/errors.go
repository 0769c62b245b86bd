package domain

import "errors"

var (
	// Input errors
	ErrInvalidPeriod  = errors.New("end date must not be before start date")
	ErrInvalidHorizon = errors.New("projection horizon must be at least one month")
	ErrInvalidDate    = errors.New("invalid date")

	// Data availability
	ErrNoAccounts = errors.New("no active accounts in selection")

	// Lookup errors
	ErrAccountNotFound = errors.New("account not found")
	ErrEntryNotFound   = errors.New("ledger entry not found")
	ErrRuleNotFound    = errors.New("recurring rule not found")

	// Entry lifecycle errors
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidDirection = errors.New("direction must be RECEIVE or PAY")
	ErrEntryNotOpen     = errors.New("entry is not open")
)
