package tmdb

import (
	"time"

	"github.com/cinepeek/web-ui/models"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	endpointDetails = "details"
	endpointVideos  = "videos"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_requests_total",
			Help: "Total number of tmdb api requests.",
		},
		[]string{"endpoint", "kind", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tmdb_request_duration_seconds",
			Help:    "Duration of tmdb api requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "kind"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
	)
}

func observe(endpoint string, kind models.ContentKind, status string, d time.Duration) {
	RequestsTotal.WithLabelValues(endpoint, kind.String(), status).Inc()
	RequestDuration.WithLabelValues(endpoint, kind.String()).Observe(d.Seconds())
}
