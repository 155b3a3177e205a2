package uuidudf

import (
	"runtime"

	"github.com/apache/arrow-go/v18/arrow/memory"
)

type options struct {
	mem              memory.Allocator
	logger           *Logger
	metricsCollector MetricsCollector
	concurrency      int
}

func defaultOptions() options {
	return options{
		mem:              memory.DefaultAllocator,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		concurrency:      runtime.GOMAXPROCS(0),
	}
}

// Option configures an Executor.
type Option func(*options)

// WithAllocator configures the allocator used for result buffers.
//
// If nil is passed, memory.DefaultAllocator is used.
func WithAllocator(mem memory.Allocator) Option {
	return func(o *options) {
		if mem == nil {
			mem = memory.DefaultAllocator
		}
		o.mem = mem
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example:
//
//	exec := uuidudf.NewExecutor(
//	    uuidudf.WithLogger(uuidudf.NewTextLogger(slog.LevelDebug)),
//	)
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring invocations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &uuidudf.BasicMetricsCollector{}
//	exec := uuidudf.NewExecutor(uuidudf.WithMetricsCollector(metrics))
//	// ... evaluate batches ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithConcurrency limits how many batches EvalBatches processes at once.
//
// Values <= 0 fall back to GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.concurrency = n
	}
}
