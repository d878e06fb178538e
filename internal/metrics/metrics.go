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

// Codec Metrics
var (
	ItemSerializations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemSerializations,
			Help: HelpTextItemSerializations,
		},
	)

	ItemDeserializations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemDeserializations,
			Help: HelpTextItemDeserializations,
		},
		[]string{LabelOutcome},
	)

	MetaHandlerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMetaHandlerFailures,
			Help: HelpTextMetaHandlerFailures,
		},
		[]string{LabelVariant},
	)
)

// Snapshot Metrics
var (
	SnapshotsSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsSaved,
			Help: HelpTextSnapshotsSaved,
		},
	)

	SnapshotsLoaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsLoaded,
			Help: HelpTextSnapshotsLoaded,
		},
	)
)
