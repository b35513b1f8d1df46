package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "oracle_sdk"

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	// RPCRequests counts JSON-RPC requests by method and outcome.
	RPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rpc_requests_total",
		Help:      "JSON-RPC requests sent, by method and status.",
	}, []string{"method", "status"})

	// RPCLatency observes JSON-RPC round trips.
	RPCLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rpc_request_duration_seconds",
		Help:      "JSON-RPC round trip latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	// APIRequests counts backend API requests by endpoint and outcome.
	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Backend API requests sent, by endpoint and status.",
	}, []string{"endpoint", "status"})

	// ContractCalls counts contract reads, writes and log queries.
	ContractCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contract_calls_total",
		Help:      "Contract interactions, by contract, kind and status.",
	}, []string{"contract", "kind", "status"})

	// ProxyCacheLookups counts proxy resolution cache lookups.
	ProxyCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proxy_cache_lookups_total",
		Help:      "Proxy resolution cache lookups, by result.",
	}, []string{"result"})

	// GeneratedFiles counts files written by the generator.
	GeneratedFiles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generated_files_total",
		Help:      "Source files written by the generator, by kind.",
	}, []string{"kind"})
)

// Status maps an error to a status label value.
func Status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}
