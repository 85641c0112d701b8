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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	RoundsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoundsResolved,
			Help: HelpTextRoundsResolved,
		},
		[]string{LabelOutcome},
	)

	RoundDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRoundDuration,
			Help:    HelpTextRoundDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)

	StakesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStakesRejected,
			Help: HelpTextStakesRejected,
		},
		[]string{LabelReason},
	)

	ItemsGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsGranted,
			Help: HelpTextItemsGranted,
		},
		[]string{LabelItem, LabelSource},
	)

	SessionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsStarted,
			Help: HelpTextSessionsStarted,
		},
		[]string{LabelCategory},
	)

	SessionsFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsFinished,
			Help: HelpTextSessionsFinished,
		},
		[]string{LabelCategory},
	)

	FinalScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameFinalScore,
			Help:    HelpTextFinalScore,
			Buckets: ScoreBuckets,
		},
	)
)

// CacheStatsFunc reports hits, misses and current size of a cache
type CacheStatsFunc func() (hits, misses int64, size int)

// RegisterCatalogCache exposes a cache's counters as gauges read on scrape
func RegisterCatalogCache(reg prometheus.Registerer, stats CacheStatsFunc) error {
	collectors := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: MetricNameCatalogCacheHits,
			Help: HelpTextCatalogCacheHits,
		}, func() float64 {
			hits, _, _ := stats()
			return float64(hits)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: MetricNameCatalogCacheMiss,
			Help: HelpTextCatalogCacheMiss,
		}, func() float64 {
			_, misses, _ := stats()
			return float64(misses)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: MetricNameCatalogCacheItems,
			Help: HelpTextCatalogCacheItems,
		}, func() float64 {
			_, _, size := stats()
			return float64(size)
		}),
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
