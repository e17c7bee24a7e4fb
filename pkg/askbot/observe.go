package askbot

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Answer outcomes reported by the client metrics.
const (
	outcomeAnswered = "answered"
	outcomeFallback = "fallback"
	outcomeError    = "error"
)

// actionNone labels a query that failed before an intent was assigned.
const actionNone = "none"

// clientMetrics counts answers by intent and outcome, and health checks by status.
type clientMetrics struct {
	answers *prometheus.CounterVec
	latency *prometheus.HistogramVec
	checks  *prometheus.CounterVec
}

func newClientMetrics(reg prometheus.Registerer) (*clientMetrics, error) {
	m := &clientMetrics{
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "askbot",
			Subsystem: "client",
			Name:      "answers_total",
			Help:      "Answered queries by action and outcome (answered, fallback, error).",
		}, []string{"action", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "askbot",
			Subsystem: "client",
			Name:      "answer_duration_seconds",
			Help:      "Time to answer a query, by action.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"action"}),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "askbot",
			Subsystem: "client",
			Name:      "health_checks_total",
			Help:      "Health checks by aggregated status.",
		}, []string{"status"}),
	}
	if err := registerOrReuse(reg, &m.answers); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.latency); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.checks); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers a collector or swaps in the one already registered, so several
// clients can share a registry.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("askbot: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("askbot: register metric: %w", err)
	}
	return nil
}

// observer reports answered queries and health checks. A nil observer is a no-op.
type observer struct {
	logger  *slog.Logger
	metrics *clientMetrics
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	var m *clientMetrics
	if reg != nil {
		var err error
		m, err = newClientMetrics(reg)
		if err != nil {
			return nil, err
		}
	}
	return &observer{logger: logger, metrics: m}, nil
}

// answered records one Ask call. ans is ignored when err is set.
func (o *observer) answered(query string, ans Answer, start time.Time, err error) {
	if o == nil {
		return
	}
	latency := time.Since(start)

	action, outcome := string(ans.Action), outcomeAnswered
	switch {
	case err != nil:
		action, outcome = actionNone, outcomeError
	case ans.IsFallback:
		outcome = outcomeFallback
	}

	if o.metrics != nil {
		o.metrics.answers.WithLabelValues(action, outcome).Inc()
		o.metrics.latency.WithLabelValues(action).Observe(latency.Seconds())
	}

	if o.logger == nil {
		return
	}
	if err != nil {
		o.logger.Warn("answer failed", "query", query, "latency", latency, "error", err)
		return
	}
	o.logger.Debug("query answered",
		"query", ans.Query,
		"action", action,
		"rating", ans.Rating,
		"fallback", ans.IsFallback,
		"similar_question", ans.SimilarQuestion,
		"latency", latency,
	)
}

// checkedHealth records one Health call. Unhealthy reports are logged with their checks.
func (o *observer) checkedHealth(h HealthStatus) {
	if o == nil {
		return
	}
	if o.metrics != nil {
		o.metrics.checks.WithLabelValues(h.Status).Inc()
	}
	if o.logger != nil && h.Status != "ok" {
		o.logger.Warn("bot unhealthy", "status", h.Status, "checks", h.Checks)
	}
}
