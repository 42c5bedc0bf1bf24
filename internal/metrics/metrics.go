// Package metrics records store operation counts and latencies with
// Prometheus collectors.
package metrics

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gedstore"

// Result labels
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Recorder counts store operations. A nil Recorder records nothing.
type Recorder struct {
	gatherer   prometheus.Gatherer
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewRecorder creates a recorder registered with a fresh registry
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r, err := NewRecorderWith(reg, reg)
	if err != nil {
		// a fresh registry cannot hold conflicting collectors
		panic(err)
	}
	return r
}

// NewRecorderWith creates a recorder registered with reg. The gatherer is
// used by Summary and may be nil.
func NewRecorderWith(reg prometheus.Registerer, gatherer prometheus.Gatherer) (*Recorder, error) {
	r := &Recorder{
		gatherer: gatherer,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Store operations by operation and result.",
		}, []string{"op", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Store operation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"op"}),
	}

	if err := reg.Register(r.operations); err != nil {
		existing, err := reuse(err)
		if err != nil {
			return nil, err
		}
		r.operations = existing.(*prometheus.CounterVec)
	}
	if err := reg.Register(r.duration); err != nil {
		existing, err := reuse(err)
		if err != nil {
			return nil, err
		}
		r.duration = existing.(*prometheus.HistogramVec)
	}
	return r, nil
}

// reuse returns the collector already registered under the same descriptor
func reuse(err error) (prometheus.Collector, error) {
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return already.ExistingCollector, nil
	}
	return nil, fmt.Errorf("register collector: %w", err)
}

// Observe records one operation that started at start and finished with err
func (r *Recorder) Observe(op string, start time.Time, err error) {
	if r == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	r.operations.WithLabelValues(op, result).Inc()
	r.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Summary renders the operation counters as "op result count" lines
func (r *Recorder) Summary() ([]string, error) {
	if r == nil || r.gatherer == nil {
		return nil, nil
	}
	families, err := r.gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		if !strings.HasSuffix(mf.GetName(), "operations_total") {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			lines = append(lines, fmt.Sprintf("%s %s %.0f", labels["op"], labels["result"], m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	return lines, nil
}
