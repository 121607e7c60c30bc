package lang

import "github.com/lacycat/langcat/log"

// Option configures parsing, decoding and file lookup behavior.
type Option func(*options)

type options struct {
	logger      log.Logger // zero value discards
	nestedLists bool
	dir         string
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithNestedLists selects the list splitter. By default list elements are
// separated at every comma. When enabled, commas inside nested brackets or
// double-quoted strings do not separate elements.
func WithNestedLists(nested bool) Option {
	return func(o *options) {
		o.nestedLists = nested
	}
}

// WithDir sets the directory in which [LoadValue] resolves file names.
// The empty string means the working directory.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

func makeOptions(opts ...Option) options {
	var o options

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
