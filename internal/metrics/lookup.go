package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/ghlookup/internal/github"
	"github.com/agbru/ghlookup/internal/orchestration"
)

// Namespace prefixes every metric exported by ghlookup.
const Namespace = "ghlookup"

// LookupRecorder exports orchestrator lifecycle events as Prometheus
// metrics. It implements orchestration.Recorder.
type LookupRecorder struct {
	registry *prometheus.Registry

	started  prometheus.Counter
	inFlight prometheus.Gauge
	finished *prometheus.CounterVec
	duration *prometheus.HistogramVec
	aborted  *prometheus.CounterVec
	stale    prometheus.Counter
	rejected *prometheus.CounterVec
}

var _ orchestration.Recorder = (*LookupRecorder)(nil)

// NewLookupRecorder creates a recorder backed by its own registry, which
// also carries the Go runtime and process collectors.
func NewLookupRecorder() *LookupRecorder {
	r := &LookupRecorder{
		registry: prometheus.NewRegistry(),
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "lookup",
			Name:      "started_total",
			Help:      "Lookups that reached the network stage.",
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "lookup",
			Name:      "in_flight",
			Help:      "Lookups currently awaiting a response.",
		}),
		finished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "lookup",
			Name:      "finished_total",
			Help:      "Lookups settled by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "lookup",
			Name:      "duration_seconds",
			Help:      "Time from submission to settled result.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		aborted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "lookup",
			Name:      "aborted_total",
			Help:      "In-flight lookups cancelled before settling.",
		}, []string{"reason"}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "lookup",
			Name:      "stale_results_total",
			Help:      "Results discarded because a newer lookup superseded them.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "validation",
			Name:      "rejected_total",
			Help:      "Submissions rejected before reaching the network.",
		}, []string{"reason"}),
	}
	r.registry.MustRegister(
		r.started, r.inFlight, r.finished, r.duration, r.aborted, r.stale, r.rejected,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Registry returns the registry holding all ghlookup metrics.
func (r *LookupRecorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *LookupRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// LookupStarted implements orchestration.Recorder.
func (r *LookupRecorder) LookupStarted() {
	r.started.Inc()
	r.inFlight.Inc()
}

// LookupFinished implements orchestration.Recorder.
func (r *LookupRecorder) LookupFinished(outcome github.Outcome, elapsed time.Duration) {
	r.inFlight.Dec()
	r.finished.WithLabelValues(string(outcome)).Inc()
	r.duration.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
}

// LookupAborted implements orchestration.Recorder.
func (r *LookupRecorder) LookupAborted(reason orchestration.AbortReason) {
	r.inFlight.Dec()
	r.aborted.WithLabelValues(string(reason)).Inc()
}

// StaleResultDiscarded implements orchestration.Recorder.
func (r *LookupRecorder) StaleResultDiscarded() { r.stale.Inc() }

// ValidationRejected implements orchestration.Recorder.
func (r *LookupRecorder) ValidationRejected(reason string) {
	r.rejected.WithLabelValues(reason).Inc()
}
