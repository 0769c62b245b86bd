package engine

import (
	"github.com/shopspring/decimal"

	"github.com/fieldops/cashflow/internal/domain"
)

// CashFlowSummary rolls up a reconciled day series into period totals.
type CashFlowSummary struct {
	InitialBalance       decimal.Decimal `json:"initial_balance"`
	ExpectedIncome       decimal.Decimal `json:"expected_income"`
	ExpectedExpense      decimal.Decimal `json:"expected_expense"`
	RealizedIncome       decimal.Decimal `json:"realized_income"`
	RealizedExpense      decimal.Decimal `json:"realized_expense"`
	FinalExpectedBalance decimal.Decimal `json:"final_expected_balance"`
	FinalRealizedBalance decimal.Decimal `json:"final_realized_balance"`
}

// ProjectionSummary rolls up a forecast series. FirstNegativeDate is the
// earliest day whose projected closing goes negative, zero when the whole
// horizon stays non-negative.
type ProjectionSummary struct {
	InitialBalance    decimal.Decimal `json:"initial_balance"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpense      decimal.Decimal `json:"total_expense"`
	FinalBalance      decimal.Decimal `json:"final_balance"`
	LowestBalance     decimal.Decimal `json:"lowest_balance"`
	FirstNegativeDate domain.Date     `json:"first_negative_date"`
}

// Summarize computes the period totals of a reconciled day series. An
// empty series yields all-zero totals.
func Summarize(days []DailyBalance) CashFlowSummary {
	s := CashFlowSummary{
		InitialBalance:       decimal.Zero,
		ExpectedIncome:       decimal.Zero,
		ExpectedExpense:      decimal.Zero,
		RealizedIncome:       decimal.Zero,
		RealizedExpense:      decimal.Zero,
		FinalExpectedBalance: decimal.Zero,
		FinalRealizedBalance: decimal.Zero,
	}
	if len(days) == 0 {
		return s
	}

	s.InitialBalance = days[0].Opening
	for _, d := range days {
		s.ExpectedIncome = s.ExpectedIncome.Add(d.ExpectedIncome)
		s.ExpectedExpense = s.ExpectedExpense.Add(d.ExpectedExpense)
		s.RealizedIncome = s.RealizedIncome.Add(d.RealizedIncome)
		s.RealizedExpense = s.RealizedExpense.Add(d.RealizedExpense)
	}

	last := days[len(days)-1]
	s.FinalExpectedBalance = last.ExpectedClosing
	s.FinalRealizedBalance = last.RealizedClosing

	return s
}

// SummarizeForecast computes horizon totals, the first insolvent day and
// the minimum balance of a forecast series.
func SummarizeForecast(days []ProjectedBalance) ProjectionSummary {
	s := ProjectionSummary{
		InitialBalance: decimal.Zero,
		TotalIncome:    decimal.Zero,
		TotalExpense:   decimal.Zero,
		FinalBalance:   decimal.Zero,
		LowestBalance:  decimal.Zero,
	}
	if len(days) == 0 {
		return s
	}

	s.InitialBalance = days[0].Opening
	s.LowestBalance = days[0].Closing
	for _, d := range days {
		s.TotalIncome = s.TotalIncome.Add(d.Income)
		s.TotalExpense = s.TotalExpense.Add(d.Expense)
		if d.Closing.LessThan(s.LowestBalance) {
			s.LowestBalance = d.Closing
		}
		if d.HasNegativeBalance && s.FirstNegativeDate.IsZero() {
			s.FirstNegativeDate = d.Date
		}
	}
	s.FinalBalance = days[len(days)-1].Closing

	return s
}
