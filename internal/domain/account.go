package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a financial account (a bank or cash account) that
// ledger entries settle against. The engine only reads accounts; balance
// math for an account is undefined before OpeningBalanceDate.
type Account struct {
	ID                 string
	Name               string
	BankLabel          string
	OpeningBalance     decimal.Decimal
	OpeningBalanceDate Date
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
