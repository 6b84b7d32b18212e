package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	DrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsTotal,
			Help: HelpTextDrawsTotal,
		},
		[]string{LabelTier},
	)

	CooldownRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCooldownRejections,
			Help: HelpTextCooldownRejections,
		},
	)

	CollectionCapSkips = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCollectionCapSkips,
			Help: HelpTextCollectionCapSkips,
		},
		[]string{LabelTier},
	)

	TriviaCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTriviaCacheHits,
			Help: HelpTextTriviaCacheHits,
		},
	)

	TriviaCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTriviaCacheMisses,
			Help: HelpTextTriviaCacheMisses,
		},
	)
)
