package engine

import (
	"github.com/shopspring/decimal"

	"github.com/fieldops/cashflow/internal/domain"
)

// dedupEpsilon absorbs rounding when matching a projected occurrence
// against a manually materialized ledger entry.
var dedupEpsilon = decimal.New(1, -2) // 0.01

// ProjectedFlow is the synthetic income/expense derived from recurring
// rules for a single future day.
type ProjectedFlow struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// ProjectRecurring expands active recurring rules into per-day synthetic
// flows for every month from today's month through horizonEnd.
//
// Occurrences on or before today are never produced: past and present use
// real ledger data only. An occurrence is also dropped when a real entry
// with the same due date, direction and amount (within 0.01) already
// exists, which means the rule has been materialized manually.
func ProjectRecurring(rules []*domain.RecurringRule, entries []*domain.Entry, today, horizonEnd domain.Date) map[domain.Date]ProjectedFlow {
	flows := make(map[domain.Date]ProjectedFlow)
	if today.After(horizonEnd) {
		return flows
	}

	byDue := make(map[domain.Date][]*domain.Entry, len(entries))
	for _, e := range entries {
		if !e.DueDate.IsZero() {
			byDue[e.DueDate] = append(byDue[e.DueDate], e)
		}
	}

	for cursor := today.FirstOfMonth(); !cursor.After(horizonEnd); cursor = cursor.AddMonths(1) {
		year, month := cursor.Year(), cursor.Month()

		for _, rule := range rules {
			if !rule.IsActive || !rule.AppliesTo(year, month) {
				continue
			}

			due := rule.DueDateIn(year, month)
			if !due.After(today) || due.After(horizonEnd) {
				continue
			}
			if materialized(byDue[due], rule) {
				continue
			}

			flow := flows[due]
			if rule.Direction == domain.DirectionReceive {
				flow.Income = flow.Income.Add(rule.Amount)
			} else {
				flow.Expense = flow.Expense.Add(rule.Amount)
			}
			flows[due] = flow
		}
	}

	return flows
}

// materialized reports whether one of the entries due on the rule's
// occurrence date already represents the rule.
func materialized(dueEntries []*domain.Entry, rule *domain.RecurringRule) bool {
	for _, e := range dueEntries {
		if e.Direction != rule.Direction {
			continue
		}
		if e.Amount.Sub(rule.Amount).Abs().LessThanOrEqual(dedupEpsilon) {
			return true
		}
	}
	return false
}
