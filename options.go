package trajmap

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

// Option configures a container.
type Option func(*options)

// WithLogger sets the logger used for trajectory lifecycle events and
// contract violations.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified after each mutation.
//
// If nil is passed, metrics are disabled.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

func newOptions(optFns []Option) options {
	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// fail logs and raises a contract violation. It never returns.
func (o *options) fail(op, subject string, err error) {
	v := &ContractViolation{Op: op, Subject: subject, Err: err}
	o.logger.LogViolation(v)
	panic(v)
}
