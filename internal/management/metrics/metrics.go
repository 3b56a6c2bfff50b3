package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the management request module.
type Metrics struct {
	SubmissionsTotal    *prometheus.CounterVec
	DecisionsTotal      *prometheus.CounterVec
	ExecutionDuration   prometheus.Histogram
	ExecutionFailures   prometheus.Counter
	IntegrityViolations prometheus.Counter
}

// New creates a Metrics instance with all management metrics registered.
func New() *Metrics {
	return &Metrics{
		SubmissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "centreg_management_submissions_total",
			Help: "Accepted management request submissions by kind and origin",
		}, []string{"kind", "origin"}),
		DecisionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "centreg_management_decisions_total",
			Help: "Terminal processing decisions by outcome",
		}, []string{"outcome"}),
		ExecutionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "centreg_management_execution_duration_seconds",
			Help:    "Duration of approved request execution",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		ExecutionFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "centreg_management_execution_failures_total",
			Help: "Handler failures leaving a processing in executing state",
		}),
		IntegrityViolations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "centreg_management_integrity_violations_total",
			Help: "Detected violations of the single-open-processing invariant",
		}),
	}
}

// ObserveSubmission records an accepted submission.
func (m *Metrics) ObserveSubmission(kind, origin string) {
	m.SubmissionsTotal.WithLabelValues(kind, origin).Inc()
}

// ObserveDecision records a terminal decision outcome.
func (m *Metrics) ObserveDecision(outcome string) {
	m.DecisionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveExecution records the duration of a handler run. Call with
// time.Now() taken when execution started.
func (m *Metrics) ObserveExecution(start time.Time) {
	m.ExecutionDuration.Observe(time.Since(start).Seconds())
}
