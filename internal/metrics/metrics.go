// Package metrics declares the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "l10n_http_requests_total",
		Help: "Total HTTP requests processed, labeled by status code",
	}, []string{"method", "endpoint", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "l10n_http_request_duration_seconds",
		Help:    "Latency distribution of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "endpoint"})

	// Remote signing and cancellation attempts, by lane, action (sign|cancel) and result (ok|failed).
	EDIAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "l10n_edi_attempts_total",
		Help: "Fiscal document remote attempts",
	}, []string{"lane", "action", "result"})

	SATStatusUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "l10n_sat_status_updates_total",
		Help: "Fiscal documents whose SAT state changed, by new state",
	}, []string{"sat_state"})

	SATSyncFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "l10n_sat_sync_failures_total",
		Help: "SAT status queries that failed",
	})

	PaymentValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "l10n_payment_validation_failures_total",
		Help: "Payments blocked by a bank account constraint",
	}, []string{"constraint"})
)

// Result label values.
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

// Result maps an error to a result label.
func Result(err error) string {
	if err != nil {
		return ResultFailed
	}
	return ResultOK
}
