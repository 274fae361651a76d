package classifier

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/JaimeStill/taxonomist/internal/taxonomy"
	"github.com/JaimeStill/taxonomist/pkg/provider"
)

// Metrics records classification outcomes. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	attempts *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	duration prometheus.Histogram
}

// NewMetrics creates the classifier collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taxonomist",
			Name:      "classifications_total",
			Help:      "Classification requests by outcome.",
		}, []string{"outcome"}),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taxonomist",
			Name:      "task_attempts_total",
			Help:      "Provider attempts per dimension by outcome.",
		}, []string{"dimension", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "taxonomist",
			Name:      "provider_latency_seconds",
			Help:      "Completion provider latency per dimension.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 8),
		}, []string{"dimension"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "taxonomist",
			Name:      "classification_duration_seconds",
			Help:      "End-to-end classification duration.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 8),
		}),
	}

	reg.MustRegister(m.requests, m.attempts, m.latency, m.duration)
	return m
}

func (m *Metrics) observeAttempt(d taxonomy.Dimension, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.latency.WithLabelValues(string(d)).Observe(elapsed.Seconds())
	m.attempts.WithLabelValues(string(d), attemptOutcome(err)).Inc()
}

func (m *Metrics) observeRequest(elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	switch {
	case errors.Is(err, ErrInvalidInput):
		outcome = "rejected"
	case err != nil:
		outcome = "failed"
	}
	m.requests.WithLabelValues(outcome).Inc()
	if outcome != "rejected" {
		m.duration.Observe(elapsed.Seconds())
	}
}

func attemptOutcome(err error) string {
	if err == nil {
		return "ok"
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind.String()
	}
	if kind, ok := provider.KindOf(err); ok {
		return kind.String()
	}
	return "error"
}
