package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Pipeline holds counters for the normalization/hashing pipeline.
type Pipeline struct {
	BatchesTotal    prometheus.Counter
	BatchesRejected prometheus.Counter
	RowsProcessed   prometheus.Counter
	RowsSkipped     prometheus.Counter
	BatchDuration   prometheus.Histogram
}

// NewPipeline builds the pipeline collectors and registers them on reg
// when it is non-nil.
func NewPipeline(reg prometheus.Registerer) *Pipeline {
	p := &Pipeline{
		BatchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contacthash_batches_total",
			Help: "Batch invocations that returned a result.",
		}),
		BatchesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contacthash_batches_rejected_total",
			Help: "Batch invocations rejected for exceeding the row limit.",
		}),
		RowsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contacthash_rows_processed_total",
			Help: "Rows that produced a normalized value and hashes.",
		}),
		RowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contacthash_rows_skipped_total",
			Help: "Rows dropped because no usable normalized value was produced.",
		}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "contacthash_batch_duration_seconds",
			Help:    "Wall time of one batch invocation.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	if reg != nil {
		registerCollector(reg, p.BatchesTotal)
		registerCollector(reg, p.BatchesRejected)
		registerCollector(reg, p.RowsProcessed)
		registerCollector(reg, p.RowsSkipped)
		registerCollector(reg, p.BatchDuration)
	}
	return p
}

func registerCollector(reg prometheus.Registerer, c prometheus.Collector) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			// Already registered is fine.
			return
		}
	}
}
