package batch

import (
	"errors"

	"github.com/npillmayer/fuzzy"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects Prometheus metrics about fuzzy operations.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	levels     prometheus.Histogram
}

// NewMetrics creates the metrics of a runner and registers them with reg.
// reg may be nil, leaving metrics unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fuzzy",
			Name:      "operations_total",
			Help:      "Number of fuzzy operations by operator and outcome (ok, error, nesting_repair).",
		}, []string{"op", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fuzzy",
			Name:      "operation_duration_seconds",
			Help:      "Duration of fuzzy operations.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"op"}),
		levels: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fuzzy",
			Name:      "result_levels",
			Help:      "Number of level-cuts of operation results.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.operations, m.duration, m.levels} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(res Result) {
	if m == nil {
		return
	}
	op := res.Op.String()
	if res.Err != nil {
		outcome := "error"
		if errors.Is(res.Err, fuzzy.ErrNestingRepair) {
			outcome = "nesting_repair"
		}
		m.operations.WithLabelValues(op, outcome).Inc()
		return
	}
	m.operations.WithLabelValues(op, "ok").Inc()
	m.duration.WithLabelValues(op).Observe(res.Elapsed.Seconds())
	m.levels.Observe(float64(len(res.Set.Levels())))
}
