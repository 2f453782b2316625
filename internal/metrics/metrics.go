package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	DBPings        *prometheus.CounterVec
	DBPingFailures *prometheus.CounterVec
	DBPingLatency  prometheus.Histogram
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DBPings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_ping_total",
			Help: "Total number of database connectivity probes by result.",
		}, []string{"result"}),

		DBPingFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_ping_failures_total",
			Help: "Failed database connectivity probes by error kind.",
		}, []string{"kind"}),

		DBPingLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "db_ping_duration_seconds",
			Help:    "Time spent connecting, querying and closing during a probe.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		m.DBPings,
		m.DBPingFailures,
		m.DBPingLatency,
	)

	return m
}

// ProbeHooks returns the callbacks expected by db.Hooks.
// Keeps the prometheus calls here so the db package never imports prometheus.
func (m *Metrics) ProbeHooks() (
	onOK func(time.Duration),
	onFailed func(string, time.Duration),
) {
	onOK = func(latency time.Duration) {
		m.DBPings.WithLabelValues("ok").Inc()
		m.DBPingLatency.Observe(latency.Seconds())
	}
	onFailed = func(kind string, latency time.Duration) {
		m.DBPings.WithLabelValues("error").Inc()
		m.DBPingFailures.WithLabelValues(kind).Inc()
		m.DBPingLatency.Observe(latency.Seconds())
	}
	return
}
