// Package metrics exposes Prometheus instruments for the upload path.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RequestsTotal.
const (
	OutcomeOK              = "ok"
	OutcomeMissingFile     = "missing_file"
	OutcomeUnsupportedType = "unsupported_type"
	OutcomeTooLarge        = "too_large"
	OutcomeUpstreamStatus  = "upstream_status"
	OutcomeUpstreamInvalid = "upstream_invalid"
	OutcomeInternal        = "internal"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upload_proxy_requests_total",
			Help: "Upload requests by outcome",
		},
		[]string{"outcome"},
	)

	UpstreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "upload_proxy_upstream_duration_seconds",
			Help:    "Latency of the outbound upload call",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	UploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "upload_proxy_upload_bytes",
			Help:    "Size of payloads forwarded upstream",
			Buckets: prometheus.ExponentialBuckets(64<<10, 4, 8),
		},
	)
)

func ObserveOutcome(outcome string) {
	RequestsTotal.WithLabelValues(outcome).Inc()
}

func ObserveUpstream(start time.Time, size int) {
	UpstreamDuration.Observe(time.Since(start).Seconds())
	UploadBytes.Observe(float64(size))
}
