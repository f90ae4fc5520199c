package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "poolledger",
		Subsystem: "rpc_handler",
		Name:      "requests_total",
		Help:      "Count of settlement RPC requests by response code.",
	}, []string{"operation", "code"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "poolledger",
		Subsystem: "rpc_handler",
		Name:      "request_duration_seconds",
		Help:      "Duration of settlement RPC requests.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "code"})
	rpcAuthFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "poolledger",
		Subsystem: "rpc_handler",
		Name:      "auth_failures_total",
		Help:      "Count of rejected envelopes by failure kind.",
	}, []string{"operation", "kind"})
)

// RPCHandler tracks metrics for the settlement RPC surface.
type RPCHandler struct{}

// NewRPCHandler creates an RPCHandler metrics collector.
func NewRPCHandler() *RPCHandler {
	return &RPCHandler{}
}

// ObserveRequest records duration and response code of an RPC request.
func (m RPCHandler) ObserveRequest(operation string, code int, started time.Time) {
	c := strconv.Itoa(code)
	rpcRequestsTotal.WithLabelValues(operation, c).Inc()
	rpcRequestDuration.WithLabelValues(operation, c).Observe(time.Since(started).Seconds())
}

// ObserveAuthFailure counts a rejected envelope. kind distinguishes signature,
// expiry and malformed rejections even though callers see one response shape.
func (m RPCHandler) ObserveAuthFailure(operation, kind string) {
	rpcAuthFailuresTotal.WithLabelValues(operation, kind).Inc()
}
