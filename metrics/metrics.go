package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	captionRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "caption_requests_total",
			Help: "Number of caption requests by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	providerDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "caption_provider_duration_seconds",
			Help:    "Time spent waiting for the caption provider",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)
)

func init() {
	prometheus.MustRegister(captionRequests, providerDuration)
}

// RecordCaption counts one relayed request and observes how long the provider took.
func RecordCaption(provider, outcome string, d time.Duration) {
	captionRequests.WithLabelValues(provider, outcome).Inc()
	providerDuration.WithLabelValues(provider).Observe(d.Seconds())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
