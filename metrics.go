package uuidudf

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    invokeCounter   *prometheus.CounterVec
//	    invokeHistogram *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordInvoke(function string, rows int, d time.Duration, err error) {
//	    p.invokeCounter.WithLabelValues(function).Inc()
//	    p.invokeHistogram.WithLabelValues(function).Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordReturnField is called after each return field deduction.
	RecordReturnField(function string, err error)

	// RecordInvoke is called after each invocation.
	// rows is the batch length (1 for scalars), err is nil if successful.
	RecordInvoke(function string, rows int, duration time.Duration, err error)

	// RecordBatchEval is called after each multi-batch evaluation.
	// failed is 1 if the evaluation was aborted, 0 otherwise.
	RecordBatchEval(function string, batches, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordReturnField(string, error)                 {}
func (NoopMetricsCollector) RecordInvoke(string, int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordBatchEval(string, int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ReturnFieldCount  atomic.Int64
	ReturnFieldErrors atomic.Int64
	InvokeCount       atomic.Int64
	InvokeErrors      atomic.Int64
	InvokeRows        atomic.Int64
	InvokeTotalNanos  atomic.Int64
	BatchEvalCount    atomic.Int64
	BatchEvalBatches  atomic.Int64
	BatchEvalFailed   atomic.Int64
}

// RecordReturnField implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReturnField(_ string, err error) {
	b.ReturnFieldCount.Add(1)
	if err != nil {
		b.ReturnFieldErrors.Add(1)
	}
}

// RecordInvoke implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInvoke(_ string, rows int, duration time.Duration, err error) {
	b.InvokeCount.Add(1)
	b.InvokeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InvokeErrors.Add(1)
		return
	}
	b.InvokeRows.Add(int64(rows))
}

// RecordBatchEval implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchEval(_ string, batches, failed int, _ time.Duration) {
	b.BatchEvalCount.Add(1)
	b.BatchEvalBatches.Add(int64(batches))
	b.BatchEvalFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ReturnFieldCount:  b.ReturnFieldCount.Load(),
		ReturnFieldErrors: b.ReturnFieldErrors.Load(),
		InvokeCount:       b.InvokeCount.Load(),
		InvokeErrors:      b.InvokeErrors.Load(),
		InvokeRows:        b.InvokeRows.Load(),
		InvokeAvgNanos:    b.getAvgInvokeNanos(),
		BatchEvalCount:    b.BatchEvalCount.Load(),
		BatchEvalBatches:  b.BatchEvalBatches.Load(),
		BatchEvalFailed:   b.BatchEvalFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgInvokeNanos() int64 {
	count := b.InvokeCount.Load()
	if count == 0 {
		return 0
	}
	return b.InvokeTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ReturnFieldCount  int64
	ReturnFieldErrors int64
	InvokeCount       int64
	InvokeErrors      int64
	InvokeRows        int64
	InvokeAvgNanos    int64
	BatchEvalCount    int64
	BatchEvalBatches  int64
	BatchEvalFailed   int64
}
