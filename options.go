package natset

import "log/slog"

type options struct {
	transform        func(int) int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Builder or Collect.
type Option func(*options)

// WithTransform applies fn to every item before it is inserted.
// The transformed value must be non-negative.
//
// If nil is passed, items are inserted unchanged.
func WithTransform(fn func(int) int) Option {
	return func(o *options) {
		o.transform = fn
	}
}

// WithMetricsCollector configures a metrics collector for Builder operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &natset.BasicMetricsCollector{}
//	s, _ := natset.Collect(seq, natset.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Items: %d, Duplicates: %d\n", stats.BuildItems, stats.Duplicates)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for Builder operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := natset.NewJSONLogger(slog.LevelDebug)
//	b := natset.NewBuilder(natset.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
