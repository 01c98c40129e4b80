package par

type options struct {
	minLen int
	maxLen int
	joiner Joiner
	logger *Logger
}

// Option configures a bridge.
type Option func(*options)

// WithMinLen sets the minimum number of items a leaf producer receives.
// Producers shorter than 2*n are not split further. Values below 1 are
// treated as 1.
func WithMinLen(n int) Option {
	return func(o *options) {
		o.minLen = n
	}
}

// WithMaxLen asks the splitter to divide the input until leaves hold about
// n items, even when that creates more leaves than workers. 0 disables the
// bound.
func WithMaxLen(n int) Option {
	return func(o *options) {
		o.maxLen = n
	}
}

// WithJoiner sets the fork-join primitive branches are run with.
//
// If nil is passed, DefaultPool is used.
func WithJoiner(j Joiner) Option {
	return func(o *options) {
		o.joiner = j
	}
}

// WithLogger configures the logger.
// Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(optFns []Option) options {
	o := options{minLen: 1}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.minLen < 1 {
		o.minLen = 1
	}
	if o.maxLen < 0 {
		o.maxLen = 0
	}
	if o.joiner == nil {
		o.joiner = DefaultPool()
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
