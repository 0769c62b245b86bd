package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fieldops/cashflow/internal/domain"
)

func TestDateOfCollapsesTimestamps(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC-3", -3*60*60)
	late := time.Date(2024, time.March, 15, 23, 45, 0, 0, loc)

	d := domain.DateOf(late)
	if d.String() != "2024-03-15" {
		t.Fatalf("expected 2024-03-15, got %s", d)
	}

	// Same wall-clock day in another zone collapses to the same Date.
	other := domain.DateOf(time.Date(2024, time.March, 15, 0, 1, 0, 0, time.UTC))
	if !d.Equal(other) {
		t.Fatalf("expected %s to equal %s", d, other)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := domain.ParseDate("2024-04-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.April || d.Day() != 30 {
		t.Fatalf("unexpected date: %s", d)
	}

	if _, err := domain.ParseDate("30/04/2024"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestDateArithmetic(t *testing.T) {
	t.Parallel()

	d := domain.NewDate(2024, time.January, 31)

	if got := d.AddDays(1).String(); got != "2024-02-01" {
		t.Fatalf("expected 2024-02-01, got %s", got)
	}

	if got := d.FirstOfMonth().String(); got != "2024-01-01" {
		t.Fatalf("expected 2024-01-01, got %s", got)
	}

	if got := domain.NewDate(2024, time.February, 10).LastOfMonth().String(); got != "2024-02-29" {
		t.Fatalf("expected leap-year 2024-02-29, got %s", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.April, 30},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2100, time.February, 28},
	}

	for _, tc := range cases {
		if got := domain.DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestClampedDate(t *testing.T) {
	t.Parallel()

	if got := domain.ClampedDate(2024, time.April, 31).String(); got != "2024-04-30" {
		t.Fatalf("expected anchor 31 to clamp to 2024-04-30, got %s", got)
	}
	if got := domain.ClampedDate(2024, time.February, 31).String(); got != "2024-02-29" {
		t.Fatalf("expected anchor 31 to clamp to 2024-02-29, got %s", got)
	}
	if got := domain.ClampedDate(2023, time.February, 31).String(); got != "2023-02-28" {
		t.Fatalf("expected anchor 31 to clamp to 2023-02-28, got %s", got)
	}
	if got := domain.ClampedDate(2024, time.June, 15).String(); got != "2024-06-15" {
		t.Fatalf("expected anchor 15 unchanged, got %s", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	t.Parallel()

	type payload struct {
		Due domain.Date `json:"due"`
	}

	raw, err := json.Marshal(payload{Due: domain.NewDate(2024, time.December, 5)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"due":"2024-12-05"}` {
		t.Fatalf("unexpected JSON: %s", raw)
	}

	var decoded payload
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Due.String() != "2024-12-05" {
		t.Fatalf("round trip changed date: %s", decoded.Due)
	}

	var zero payload
	if err := json.Unmarshal([]byte(`{"due":null}`), &zero); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !zero.Due.IsZero() {
		t.Fatalf("expected zero date for null, got %s", zero.Due)
	}
}
