package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks traffic between this client and the remote data service.
type Metrics struct {
	remoteRequests *prometheus.CounterVec
	remoteDuration *prometheus.HistogramVec
	cacheHits      *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		remoteRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gigmarket_remote_requests_total",
			Help: "Requests issued to the remote data service.",
		}, []string{"table", "method", "outcome"}),
		remoteDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gigmarket_remote_request_seconds",
			Help:    "Remote request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"table", "method"}),
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gigmarket_query_cache_total",
			Help: "Query cache lookups by result.",
		}, []string{"family", "result"}),
	}
}

func (m *Metrics) ObserveRemote(table, method, outcome string, dur time.Duration) {
	if m == nil {
		return
	}
	m.remoteRequests.WithLabelValues(table, method, outcome).Inc()
	m.remoteDuration.WithLabelValues(table, method).Observe(dur.Seconds())
}

func (m *Metrics) ObserveCache(family, result string) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(family, result).Inc()
}
