package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fieldops/cashflow/internal/domain"
)

// AccountReconciliation is the per-account audit view: realized totals
// within the period against the account's configured opening balance, with
// the matched entries exposed for manual checking against a bank statement.
type AccountReconciliation struct {
	AccountID         string          `json:"account_id"`
	AccountName       string          `json:"account_name"`
	BankLabel         string          `json:"bank_label"`
	OpeningBalance    decimal.Decimal `json:"opening_balance"`
	TotalReceived     decimal.Decimal `json:"total_received"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	CalculatedBalance decimal.Decimal `json:"calculated_balance"`
	Entries           []*domain.Entry `json:"entries"`
}

// ReconciliationTotals is the cross-account roll-up of a reconciliation.
type ReconciliationTotals struct {
	OpeningBalance    decimal.Decimal `json:"opening_balance"`
	TotalReceived     decimal.Decimal `json:"total_received"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	CalculatedBalance decimal.Decimal `json:"calculated_balance"`
	EntryCount        int             `json:"entry_count"`
}

// ReconciliationReport is the full reconciliation output for a period.
type ReconciliationReport struct {
	From     domain.Date             `json:"from"`
	To       domain.Date             `json:"to"`
	Accounts []AccountReconciliation `json:"accounts"`
	Totals   ReconciliationTotals    `json:"totals"`
}

// Reconcile builds the per-account audit view for the period. For every
// account: calculatedBalance = openingBalance + totalReceived - totalPaid
// over paid entries settled inside [from, to].
func Reconcile(accounts []*domain.Account, entries []*domain.Entry, from, to domain.Date) *ReconciliationReport {
	report := &ReconciliationReport{
		From:     from,
		To:       to,
		Accounts: make([]AccountReconciliation, 0, len(accounts)),
		Totals: ReconciliationTotals{
			OpeningBalance:    decimal.Zero,
			TotalReceived:     decimal.Zero,
			TotalPaid:         decimal.Zero,
			CalculatedBalance: decimal.Zero,
		},
	}

	for _, account := range accounts {
		rec := AccountReconciliation{
			AccountID:      account.ID,
			AccountName:    account.Name,
			BankLabel:      account.BankLabel,
			OpeningBalance: account.OpeningBalance,
			TotalReceived:  decimal.Zero,
			TotalPaid:      decimal.Zero,
			Entries:        make([]*domain.Entry, 0),
		}

		for _, e := range entries {
			if e.AccountID != account.ID || !e.Realized() {
				continue
			}
			if e.PaidAt.Before(from) || e.PaidAt.After(to) {
				continue
			}

			if e.Direction == domain.DirectionReceive {
				rec.TotalReceived = rec.TotalReceived.Add(e.Amount)
			} else {
				rec.TotalPaid = rec.TotalPaid.Add(e.Amount)
			}
			rec.Entries = append(rec.Entries, e)
		}

		sort.Slice(rec.Entries, func(i, j int) bool {
			return rec.Entries[i].PaidAt.Before(rec.Entries[j].PaidAt)
		})

		rec.CalculatedBalance = rec.OpeningBalance.Add(rec.TotalReceived).Sub(rec.TotalPaid)

		report.Accounts = append(report.Accounts, rec)
		report.Totals.OpeningBalance = report.Totals.OpeningBalance.Add(rec.OpeningBalance)
		report.Totals.TotalReceived = report.Totals.TotalReceived.Add(rec.TotalReceived)
		report.Totals.TotalPaid = report.Totals.TotalPaid.Add(rec.TotalPaid)
		report.Totals.CalculatedBalance = report.Totals.CalculatedBalance.Add(rec.CalculatedBalance)
		report.Totals.EntryCount += len(rec.Entries)
	}

	return report
}
