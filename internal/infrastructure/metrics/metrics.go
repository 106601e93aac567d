// Package metrics exposes prometheus counters for the outcome of every
// mutation step, including the orphans the mutation protocol tolerates.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "memes"

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type Metrics struct {
	Registry *prometheus.Registry

	// Mutations counts create/update/delete calls by operation and outcome.
	Mutations *prometheus.CounterVec

	// BlobOperations counts blob store calls by operation and outcome.
	BlobOperations *prometheus.CounterVec

	// Orphans counts blob objects left without a referencing row, by reason.
	Orphans *prometheus.CounterVec

	// SideEffectFailures counts event publishes and ledger writes that failed.
	SideEffectFailures *prometheus.CounterVec

	// MutationLatency records end to end latency per operation.
	MutationLatency *prometheus.HistogramVec
}

// New builds the counters on a fresh registry that also carries the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Total number of meme mutations by operation and outcome",
		}, []string{"operation", "outcome"}),
		BlobOperations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blob_operations_total",
			Help:      "Total number of blob store calls by operation and outcome",
		}, []string{"operation", "outcome"}),
		Orphans: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orphans_total",
			Help:      "Total number of orphaned blob objects by reason",
		}, []string{"reason"}),
		SideEffectFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "side_effect_failures_total",
			Help:      "Total number of failed event publishes and ledger writes",
		}, []string{"kind"}),
		MutationLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mutation_latency_seconds",
			Help:      "Meme mutation latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// The helpers below accept a nil receiver so callers without metrics do not
// need a guard.

func (m *Metrics) Mutation(operation string, err error) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(operation, outcome(err)).Inc()
}

func (m *Metrics) Blob(operation string, err error) {
	if m == nil {
		return
	}
	m.BlobOperations.WithLabelValues(operation, outcome(err)).Inc()
}

func (m *Metrics) Orphan(reason string) {
	if m == nil {
		return
	}
	m.Orphans.WithLabelValues(reason).Inc()
}

func (m *Metrics) SideEffectFailed(kind string) {
	if m == nil {
		return
	}
	m.SideEffectFailures.WithLabelValues(kind).Inc()
}

// Track returns a function that records the latency of operation when called.
func (m *Metrics) Track(operation string) func() {
	if m == nil {
		return func() {}
	}

	timer := prometheus.NewTimer(m.MutationLatency.WithLabelValues(operation))

	return func() { timer.ObserveDuration() }
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}

	return OutcomeSuccess
}
