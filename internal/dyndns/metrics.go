package dyndns

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	statusCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "driftdns_update_status_total",
		Help: "Update requests handled, partitioned by dyndns2 status token.",
	}, []string{"status"})

	providerOpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "driftdns_provider_op_duration_seconds",
		Help:    "Latency of DNS provider round-trips.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})

	lastChangeTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "driftdns_record_last_change_timestamp_seconds",
		Help: "Unix time of the most recent applied record change.",
	})
)

func countStatus(st Status) {
	statusCount.WithLabelValues(st.String()).Inc()
}

func observeProviderOp(op string, d time.Duration) {
	providerOpDuration.WithLabelValues(op).Observe(d.Seconds())
}

func setLastChange(unix int64) {
	lastChangeTimestamp.Set(float64(unix))
}
