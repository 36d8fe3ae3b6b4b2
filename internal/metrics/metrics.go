// Package metrics declares the Prometheus collectors of the service.
// Collectors register with the default registry on import.
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
	DevelopersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDevelopersCreated,
			Help: HelpTextDevelopersCreated,
		},
	)

	BookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBookingsCreated,
			Help: HelpTextBookingsCreated,
		},
	)

	BookingsCountCorrections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBookingsCountCorrections,
			Help: HelpTextBookingsCountCorrections,
		},
	)

	BookingsCountReconcileRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBookingsCountReconcileRun,
			Help: HelpTextBookingsCountReconcileRun,
		},
		[]string{LabelResult},
	)
)
