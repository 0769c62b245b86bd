package domain_test

import (
	"testing"
	"time"

	"github.com/fieldops/cashflow/internal/domain"
)

func TestRecurringRuleDueDateIn(t *testing.T) {
	t.Parallel()

	rule := &domain.RecurringRule{DayOfMonth: 31}

	if got := rule.DueDateIn(2024, time.April).String(); got != "2024-04-30" {
		t.Fatalf("expected 2024-04-30, got %s", got)
	}
	if got := rule.DueDateIn(2024, time.February).String(); got != "2024-02-29" {
		t.Fatalf("expected 2024-02-29, got %s", got)
	}
	if got := rule.DueDateIn(2023, time.February).String(); got != "2023-02-28" {
		t.Fatalf("expected 2023-02-28, got %s", got)
	}

	tenth := &domain.RecurringRule{DayOfMonth: 10}
	if got := tenth.DueDateIn(2024, time.July).String(); got != "2024-07-10" {
		t.Fatalf("expected 2024-07-10, got %s", got)
	}
}

func TestRecurringRuleAppliesTo(t *testing.T) {
	t.Parallel()

	rule := &domain.RecurringRule{
		StartDate: domain.NewDate(2024, time.March, 15),
		EndDate:   domain.NewDate(2024, time.June, 10),
	}

	if rule.AppliesTo(2024, time.February) {
		t.Fatal("rule must not apply before its start month")
	}
	if !rule.AppliesTo(2024, time.March) {
		t.Fatal("rule should apply to its start month even when starting mid-month")
	}
	if !rule.AppliesTo(2024, time.June) {
		t.Fatal("rule should apply to its end month even when ending mid-month")
	}
	if rule.AppliesTo(2024, time.July) {
		t.Fatal("rule must not apply after its end month")
	}

	openEnded := &domain.RecurringRule{StartDate: domain.NewDate(2024, time.January, 1)}
	if !openEnded.AppliesTo(2030, time.December) {
		t.Fatal("open-ended rule should apply indefinitely")
	}
}
