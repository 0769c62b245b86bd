package engine

import (
	"github.com/shopspring/decimal"

	"github.com/fieldops/cashflow/internal/domain"
)

// DailyBalance is one reconciled day of the cash-flow table. Expected
// figures come from open entries by due date, realized figures from paid
// entries by settlement date. Only realized closings carry forward.
type DailyBalance struct {
	Date            domain.Date     `json:"date"`
	Opening         decimal.Decimal `json:"opening"`
	ExpectedIncome  decimal.Decimal `json:"expected_income"`
	ExpectedExpense decimal.Decimal `json:"expected_expense"`
	RealizedIncome  decimal.Decimal `json:"realized_income"`
	RealizedExpense decimal.Decimal `json:"realized_expense"`
	ExpectedClosing decimal.Decimal `json:"expected_closing"`
	RealizedClosing decimal.Decimal `json:"realized_closing"`
}

// ProjectedBalance is one day of the forward projection. Days on or before
// the reference day carry realized movement only; later days mix open-entry
// dues with synthetic recurring flows and are marked IsProjected.
type ProjectedBalance struct {
	Date               domain.Date     `json:"date"`
	Opening            decimal.Decimal `json:"opening"`
	Income             decimal.Decimal `json:"income"`
	Expense            decimal.Decimal `json:"expense"`
	Closing            decimal.Decimal `json:"closing"`
	IsProjected        bool            `json:"is_projected"`
	HasNegativeBalance bool            `json:"has_negative_balance"`
}

// dayMovements accumulates the four per-day sums of the reconciled walk.
type dayMovements struct {
	expectedIncome  decimal.Decimal
	expectedExpense decimal.Decimal
	realizedIncome  decimal.Decimal
	realizedExpense decimal.Decimal
}

// groupByDay buckets entries into per-day movement sums. Expected movement
// is keyed by due date, realized movement by settlement date; a paid entry
// contributes to its settlement day regardless of when it was due.
func groupByDay(entries []*domain.Entry) map[domain.Date]*dayMovements {
	days := make(map[domain.Date]*dayMovements)

	at := func(d domain.Date) *dayMovements {
		m, ok := days[d]
		if !ok {
			m = &dayMovements{
				expectedIncome:  decimal.Zero,
				expectedExpense: decimal.Zero,
				realizedIncome:  decimal.Zero,
				realizedExpense: decimal.Zero,
			}
			days[d] = m
		}
		return m
	}

	for _, e := range entries {
		switch {
		case e.Expected():
			m := at(e.DueDate)
			if e.Direction == domain.DirectionReceive {
				m.expectedIncome = m.expectedIncome.Add(e.Amount)
			} else {
				m.expectedExpense = m.expectedExpense.Add(e.Amount)
			}
		case e.Realized():
			m := at(e.PaidAt)
			if e.Direction == domain.DirectionReceive {
				m.realizedIncome = m.realizedIncome.Add(e.Amount)
			} else {
				m.realizedExpense = m.realizedExpense.Add(e.Amount)
			}
		}
	}

	return days
}

// WalkDays iterates the window day by day in reconciled mode, carrying the
// realized closing balance forward as the next day's opening. Expected
// figures never affect the carried balance.
func WalkDays(entries []*domain.Entry, opening decimal.Decimal, from, to domain.Date) []DailyBalance {
	if from.IsZero() || to.Before(from) {
		return nil
	}

	movements := groupByDay(entries)
	days := make([]DailyBalance, 0, 32)

	balance := opening
	for d := from; !d.After(to); d = d.AddDays(1) {
		day := DailyBalance{
			Date:            d,
			Opening:         balance,
			ExpectedIncome:  decimal.Zero,
			ExpectedExpense: decimal.Zero,
			RealizedIncome:  decimal.Zero,
			RealizedExpense: decimal.Zero,
		}
		if m, ok := movements[d]; ok {
			day.ExpectedIncome = m.expectedIncome
			day.ExpectedExpense = m.expectedExpense
			day.RealizedIncome = m.realizedIncome
			day.RealizedExpense = m.realizedExpense
		}

		day.ExpectedClosing = balance.Add(day.ExpectedIncome).Sub(day.ExpectedExpense)
		day.RealizedClosing = balance.Add(day.RealizedIncome).Sub(day.RealizedExpense)

		balance = day.RealizedClosing
		days = append(days, day)
	}

	return days
}

// WalkForecast iterates the window in forecast mode. Days on or before
// today use realized-only figures, so the series is continuous with the
// reconciled table at the boundary. Later days combine open-entry dues
// with the projected recurring flows, and every closing carries forward.
func WalkForecast(entries []*domain.Entry, projected map[domain.Date]ProjectedFlow, opening decimal.Decimal, today, from, to domain.Date) []ProjectedBalance {
	if from.IsZero() || to.Before(from) {
		return nil
	}

	movements := groupByDay(entries)
	days := make([]ProjectedBalance, 0, 32)

	balance := opening
	for d := from; !d.After(to); d = d.AddDays(1) {
		income, expense := decimal.Zero, decimal.Zero
		future := d.After(today)

		if m, ok := movements[d]; ok {
			if future {
				income = m.expectedIncome
				expense = m.expectedExpense
			} else {
				income = m.realizedIncome
				expense = m.realizedExpense
			}
		}
		if future {
			if flow, ok := projected[d]; ok {
				income = income.Add(flow.Income)
				expense = expense.Add(flow.Expense)
			}
		}

		closing := balance.Add(income).Sub(expense)
		days = append(days, ProjectedBalance{
			Date:               d,
			Opening:            balance,
			Income:             income,
			Expense:            expense,
			Closing:            closing,
			IsProjected:        future,
			HasNegativeBalance: closing.IsNegative(),
		})
		balance = closing
	}

	return days
}
