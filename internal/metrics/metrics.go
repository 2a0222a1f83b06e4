package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Spin Metrics
var (
	SpinsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameSpinsTotal,
			Help:      HelpTextSpinsTotal,
		},
	)

	WinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameWinsTotal,
			Help:      HelpTextWinsTotal,
		},
		[]string{LabelCategory},
	)

	GuardrailTriggers = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameGuardrailTotal,
			Help:      HelpTextGuardrailTotal,
		},
	)

	ForcedDeadSpins = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameForcedDeadTotal,
			Help:      HelpTextForcedDeadTotal,
		},
	)

	FallbackDraws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameFallbackTotal,
			Help:      HelpTextFallbackTotal,
		},
		[]string{LabelKind},
	)

	DrawAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameDrawAttempts,
			Help:      HelpTextDrawAttempts,
			Buckets:   DrawAttemptBuckets,
		},
	)

	IgnitionReleases = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameIgnitionReleases,
			Help:      HelpTextIgnitionReleases,
		},
	)
)

// Run Metrics
var (
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRunsTotal,
			Help:      HelpTextRunsTotal,
		},
		[]string{LabelScenario, LabelVerdict},
	)

	RunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameRunDuration,
			Help:      HelpTextRunDuration,
			Buckets:   RunDurationBuckets,
		},
		[]string{LabelScenario},
	)

	PlayersAtCap = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameAccumulatorAtCap,
			Help:      HelpTextAccumulatorAtCap,
		},
		[]string{LabelScenario},
	)

	SweepRunsScheduled = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameSweepRunsTotal,
			Help:      HelpTextSweepRunsTotal,
		},
	)

	SweepRunsCompleted = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameSweepRunsDone,
			Help:      HelpTextSweepRunsDone,
		},
	)
)
