// Package metrics records batch outcomes as Prometheus metrics and exports
// them in the node_exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"pr2codon/core/batch"
	"pr2codon/internal/output"
)

const namespace = "pr2codon"

// Recorder implements batch.Observer over a private registry.
type Recorder struct {
	reg       *prometheus.Registry
	records   *prometheus.CounterVec
	failures  *prometheus.CounterVec
	positions *prometheus.CounterVec
	duration  prometheus.Histogram
}

var _ batch.Observer = (*Recorder)(nil)

// New registers all collectors on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Records processed, by outcome.",
		}, []string{"outcome"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Terminal batch errors, by kind.",
		}, []string{"kind"}),
		positions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "positions_total",
			Help:      "Amino-acid positions reconciled, by resolution path.",
		}, []string{"path"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall time of one reconciliation batch.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	r.reg.MustRegister(r.records, r.failures, r.positions, r.duration)
	return r
}

// Registry exposes the underlying registry (tests, custom gatherers).
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Reconciled counts one successful record and its position breakdown.
func (r *Recorder) Reconciled(e batch.Entry) {
	r.records.WithLabelValues("reconciled").Inc()
	st := e.Stats
	r.positions.WithLabelValues("exact").Add(float64(st.Exact))
	r.positions.WithLabelValues("rescued").Add(float64(st.Rescued))
	r.positions.WithLabelValues("bypassed").Add(float64(st.Bypassed))
	r.positions.WithLabelValues("gap").Add(float64(st.Gaps))
	r.positions.WithLabelValues("placeholder").Add(float64(st.Placeholders))
}

// Failed counts the record that stopped the batch.
func (r *Recorder) Failed(err *batch.RecordError) {
	r.records.WithLabelValues("failed").Inc()
	r.failures.WithLabelValues(output.ErrorKind(err)).Inc()
}

// FailedBatch counts a batch-level error that is not tied to a record
// (unknown table, cancellation).
func (r *Recorder) FailedBatch(err error) {
	r.failures.WithLabelValues(output.ErrorKind(err)).Inc()
}

// ObserveDuration records the wall time since start.
func (r *Recorder) ObserveDuration(start time.Time) {
	r.duration.Observe(time.Since(start).Seconds())
}

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
