package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Report metrics
	ReportsComputed   *prometheus.CounterVec
	ReportDuration    *prometheus.HistogramVec
	ReportCacheHits   prometheus.Counter
	ReportCacheMisses prometheus.Counter

	// Ledger metrics
	AccountsCreated prometheus.Counter
	EntriesCreated  *prometheus.CounterVec
	EntriesSettled  prometheus.Counter
	EntriesCanceled prometheus.Counter
	RulesCreated    prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Report metrics
		ReportsComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_reports_computed_total",
				Help: "Total number of reports computed by type",
			},
			[]string{"report"},
		),
		ReportDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashflow_report_duration_seconds",
				Help:    "Duration of report computation by type",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report"},
		),
		ReportCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_report_cache_hits_total",
			Help: "Total number of report cache hits",
		}),
		ReportCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_report_cache_misses_total",
			Help: "Total number of report cache misses",
		}),

		// Ledger metrics
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		EntriesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_entries_created_total",
				Help: "Total number of ledger entries created by direction",
			},
			[]string{"direction"},
		),
		EntriesSettled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_entries_settled_total",
			Help: "Total number of ledger entries settled",
		}),
		EntriesCanceled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_entries_canceled_total",
			Help: "Total number of ledger entries canceled",
		}),
		RulesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_rules_created_total",
			Help: "Total number of recurring rules created",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashflow_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashflow_rate_limit_hits_total",
			Help: "Total rate limit hits",
		}),
	}
}
