package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	janitorReclaimTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "poolledger",
		Subsystem: "lease_janitor",
		Name:      "reclaim_runs_total",
		Help:      "Count of lease reclaim runs.",
	}, []string{"status"})
	janitorReclaimedLeases = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "poolledger",
		Subsystem: "lease_janitor",
		Name:      "reclaimed_leases_total",
		Help:      "Count of expired leases returned to the claimable pool.",
	})
	janitorReclaimDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "poolledger",
		Subsystem: "lease_janitor",
		Name:      "reclaim_duration_seconds",
		Help:      "Duration of lease reclaim runs.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"status"})
)

// LeaseJanitor tracks metrics for the lease janitor.
type LeaseJanitor struct{}

// NewLeaseJanitor creates a LeaseJanitor metrics collector.
func NewLeaseJanitor() *LeaseJanitor {
	return &LeaseJanitor{}
}

// ObserveReclaim records the outcome of one reclaim run.
func (m LeaseJanitor) ObserveReclaim(err error, reclaimed int64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	janitorReclaimTotal.WithLabelValues(status).Inc()
	janitorReclaimDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil && reclaimed > 0 {
		janitorReclaimedLeases.Add(float64(reclaimed))
	}
}
