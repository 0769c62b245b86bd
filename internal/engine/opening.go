package engine

import (
	"github.com/shopspring/decimal"

	"github.com/fieldops/cashflow/internal/domain"
)

// OpeningBalance computes the aggregate balance entering windowStart for
// the given account selection: the sum of configured opening balances plus
// all realized movement between the earliest opening-balance date and the
// instant before windowStart. Entries must already be restricted to the
// selected accounts.
//
// The second return value is false when the selection is empty; that is a
// "no data" signal, not an error.
func OpeningBalance(accounts []*domain.Account, entries []*domain.Entry, windowStart domain.Date) (decimal.Decimal, bool) {
	if len(accounts) == 0 {
		return decimal.Zero, false
	}

	base := decimal.Zero
	earliest := accounts[0].OpeningBalanceDate
	for _, a := range accounts {
		base = base.Add(a.OpeningBalance)
		if a.OpeningBalanceDate.Before(earliest) {
			earliest = a.OpeningBalanceDate
		}
	}

	for _, e := range entries {
		if !e.Realized() {
			continue
		}
		if e.PaidAt.Before(earliest) || !e.PaidAt.Before(windowStart) {
			continue
		}
		base = base.Add(e.Signed())
	}

	return base, true
}
