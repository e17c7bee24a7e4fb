package metrics

import "github.com/prometheus/client_golang/prometheus"

// Answer pipeline metrics.
var (
	AnswersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_total",
			Help:      "Answered queries by action and fallback flag",
		},
		[]string{"action", "fallback"},
	)

	MatchScore = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_score",
			Help:      "Best-match similarity score per classified intent",
			Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
		},
		[]string{"intent"},
	)

	LookupRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summary_lookup_requests_total",
			Help:      "Encyclopedia summary lookups by outcome",
		},
		[]string{"status"}, // "success" / "not_found" / "error"
	)

	LookupRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "summary_lookup_duration_seconds",
			Help:      "Encyclopedia summary lookup duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	LookupCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summary_cache_total",
			Help:      "Summary cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var answerMetricsRegistered bool

// RegisterAnswerMetrics registers the answer pipeline metrics. Must be called once from main.
func RegisterAnswerMetrics() {
	if answerMetricsRegistered {
		return
	}
	prometheus.MustRegister(AnswersTotal)
	prometheus.MustRegister(MatchScore)
	prometheus.MustRegister(LookupRequestsTotal)
	prometheus.MustRegister(LookupRequestDuration)
	prometheus.MustRegister(LookupCacheTotal)
	answerMetricsRegistered = true
}
