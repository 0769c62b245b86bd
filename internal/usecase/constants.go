package usecase

import "time"

const (
	// ReportCacheTTL is how long a computed report stays cached. Reports
	// are cheap to recompute, so the TTL only has to cover bursts of
	// identical dashboard queries.
	ReportCacheTTL = 5 * time.Minute

	// DefaultHorizonMonths is used when a projection request does not
	// specify a horizon.
	DefaultHorizonMonths = 6
)
