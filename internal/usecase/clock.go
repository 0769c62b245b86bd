package usecase

import (
	"time"

	"github.com/fieldops/cashflow/internal/domain"
)

// SystemClock implements Clock using the local wall clock.
type SystemClock struct{}

// Today returns the current civil day.
func (SystemClock) Today() domain.Date {
	return domain.DateOf(time.Now())
}
