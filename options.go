package fermigo

import "log/slog"

// DefaultDetTolerance is the threshold below which a Slater determinant
// magnitude is treated as zero and the configuration rejected as degenerate.
const DefaultDetTolerance = 1e-6

type options struct {
	selectedStates   []int
	detTolerance     float64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Configuration construction.
type Option func(*options)

// WithSelectedStates configures which eigenstate columns of the Hamiltonian
// form the Slater matrix. The list length must equal the particle count.
//
// If not set, the first particleCount eigenstates are used.
func WithSelectedStates(states []int) Option {
	return func(o *options) {
		o.selectedStates = states
	}
}

// WithDetTolerance overrides the singularity tolerance applied to the Slater
// determinant at construction and refresh. It is applied both as an absolute
// floor and relative to the scale of the largest LU pivot.
func WithDetTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.detTolerance = tol
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
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
		detTolerance:     DefaultDetTolerance,
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
