package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldops/cashflow/internal/domain"
	"github.com/fieldops/cashflow/internal/usecase"
	"github.com/fieldops/cashflow/tests/testutil"
)

type fixedClock struct {
	today domain.Date
}

func (c fixedClock) Today() domain.Date { return c.today }

func newReportUseCase(db *testutil.TestDB, today domain.Date) *usecase.ReportUseCase {
	return usecase.NewReportUseCase(db.Accounts, db.Entries, db.Rules, nil, fixedClock{today: today}, nil)
}

func TestComputeCashFlow_EndToEnd(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer db.Cleanup()

	ctx := context.Background()
	db.TruncateAll(ctx)

	account := db.CreateTestAccount(ctx, "Main", decimal.NewFromInt(1000), domain.NewDate(2024, time.January, 1))

	// Settled payment inside the window.
	db.CreateTestEntry(ctx, account.ID, decimal.NewFromInt(200), domain.DirectionPay, domain.StatusPaid,
		domain.NewDate(2024, time.January, 5), domain.NewDate(2024, time.January, 5))

	// Open receivable inside the window affects expected balance only.
	db.CreateTestEntry(ctx, account.ID, decimal.NewFromInt(300), domain.DirectionReceive, domain.StatusOpen,
		domain.NewDate(2024, time.January, 8), domain.Date{})

	uc := newReportUseCase(db, domain.NewDate(2024, time.January, 15))

	report, err := uc.ComputeCashFlow(ctx, usecase.CashFlowInput{
		From: domain.NewDate(2024, time.January, 1),
		To:   domain.NewDate(2024, time.January, 10),
	})
	if err != nil {
		t.Fatalf("ComputeCashFlow failed: %v", err)
	}

	if len(report.Days) != 10 {
		t.Fatalf("expected 10 days, got %d", len(report.Days))
	}

	last := report.Days[len(report.Days)-1]
	if !last.RealizedClosing.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected realized closing 800, got %s", last.RealizedClosing)
	}

	// Jan 8 carries the open receivable on top of the realized balance.
	jan8 := report.Days[7]
	if !jan8.ExpectedClosing.Equal(decimal.NewFromInt(1100)) {
		t.Errorf("expected expected closing 1100 on Jan 8, got %s", jan8.ExpectedClosing)
	}
}

func TestComputeProjection_EndToEnd(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer db.Cleanup()

	ctx := context.Background()
	db.TruncateAll(ctx)

	db.CreateTestAccount(ctx, "Main", decimal.NewFromInt(500), domain.NewDate(2024, time.January, 1))
	db.CreateTestRule(ctx, decimal.NewFromInt(1000), domain.DirectionReceive, 20, domain.NewDate(2024, time.January, 1))

	uc := newReportUseCase(db, domain.NewDate(2024, time.March, 15))

	report, err := uc.ComputeProjection(ctx, usecase.ProjectionInput{HorizonMonths: 2})
	if err != nil {
		t.Fatalf("ComputeProjection failed: %v", err)
	}

	if !report.From.Equal(domain.NewDate(2024, time.March, 1)) {
		t.Errorf("unexpected projection start: %v", report.From)
	}
	if !report.To.Equal(domain.NewDate(2024, time.May, 31)) {
		t.Errorf("unexpected projection end: %v", report.To)
	}

	// Rule occurrences after today: Mar 20, Apr 20, May 20.
	if !report.Summary.TotalIncome.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("expected total income 3000, got %s", report.Summary.TotalIncome)
	}
}

func TestComputeReconciliation_EndToEnd(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer db.Cleanup()

	ctx := context.Background()
	db.TruncateAll(ctx)

	account := db.CreateTestAccount(ctx, "Main", decimal.NewFromInt(1000), domain.NewDate(2024, time.January, 1))

	db.CreateTestEntry(ctx, account.ID, decimal.NewFromFloat(150.25), domain.DirectionReceive, domain.StatusPaid,
		domain.NewDate(2024, time.February, 3), domain.NewDate(2024, time.February, 3))
	db.CreateTestEntry(ctx, account.ID, decimal.NewFromFloat(40.25), domain.DirectionPay, domain.StatusPaid,
		domain.NewDate(2024, time.February, 7), domain.NewDate(2024, time.February, 7))

	uc := newReportUseCase(db, domain.NewDate(2024, time.February, 28))

	report, err := uc.ComputeReconciliation(ctx, usecase.ReconciliationInput{
		From: domain.NewDate(2024, time.February, 1),
		To:   domain.NewDate(2024, time.February, 28),
	})
	if err != nil {
		t.Fatalf("ComputeReconciliation failed: %v", err)
	}

	if !report.Totals.CalculatedBalance.Equal(decimal.NewFromFloat(1110.00)) {
		t.Errorf("expected calculated balance 1110.00, got %s", report.Totals.CalculatedBalance)
	}
	if report.Totals.EntryCount != 2 {
		t.Errorf("expected 2 entries, got %d", report.Totals.EntryCount)
	}
}
