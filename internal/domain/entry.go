package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells whether money moves in or out.
type Direction string

const (
	DirectionReceive Direction = "RECEIVE"
	DirectionPay     Direction = "PAY"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionReceive || d == DirectionPay
}

// Status is the settlement state of a ledger entry.
type Status string

const (
	StatusOpen     Status = "OPEN"
	StatusPaid     Status = "PAID"
	StatusPartial  Status = "PARTIAL"
	StatusCanceled Status = "CANCELED"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusPaid, StatusPartial, StatusCanceled:
		return true
	}
	return false
}

// Entry is a single payable or receivable. Amount is always non-negative;
// Direction carries the sign. PaidAt is set only once the entry is paid.
// An empty AccountID means the entry is not assigned to any account and is
// excluded from account-scoped views.
type Entry struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Direction   Direction
	Status      Status
	DueDate     Date
	PaidAt      Date
	AccountID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Signed returns the amount with the direction applied: positive for
// RECEIVE, negative for PAY.
func (e *Entry) Signed() decimal.Decimal {
	if e.Direction == DirectionPay {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Realized reports whether the entry is settled and dated: status PAID
// with a PaidAt day. Canceled, open and partial entries never count as
// realized movement.
func (e *Entry) Realized() bool {
	return e.Status == StatusPaid && !e.PaidAt.IsZero()
}

// Expected reports whether the entry is due but not yet settled: status
// OPEN with a DueDate.
func (e *Entry) Expected() bool {
	return e.Status == StatusOpen && !e.DueDate.IsZero()
}
