package kbavl

import (
	"github.com/spf13/afero"
)

const (
	defaultMaxLineBytes = 1 << 20 // 1MB
	minLineBytes        = 1 << 12 // 4KB
)

type options struct {
	// How the index key is taken from a record. The default is KeyFirstField.
	keyStrategy KeyStrategy

	// Reject lines that are not exactly term, statement and score. The
	// default is true. When false every non-empty line is inserted.
	strictRecords bool

	// The longest line the loader accepts, longer lines fail the load.
	// The default value is 1MB.
	maxLineBytes int

	// The file system to read from. The default file system is implemented by os package.
	fs FileSystem

	logger Logger
}

func defaultOptions() *options {
	return &options{
		keyStrategy:   KeyFirstField,
		strictRecords: true,
		maxLineBytes:  defaultMaxLineBytes,
		fs:            afero.NewOsFs(),
		logger:        defaultLogger,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt.apply(o)
		}
	}
	return o
}

type Option interface {
	apply(*options)
}

type funcOption struct {
	fn func(*options)
}

func (funcOpt funcOption) apply(o *options) {
	funcOpt.fn(o)
}

func newFuncOption(fn func(*options)) *funcOption {
	return &funcOption{
		fn: fn,
	}
}

// WithKeyStrategy set how the index key is extracted from a record.
func WithKeyStrategy(ks KeyStrategy) Option {
	return newFuncOption(func(o *options) {
		o.keyStrategy = ks
	})
}

// WithStrictRecords set whether lines without exactly three fields are rejected.
func WithStrictRecords(strict bool) Option {
	return newFuncOption(func(o *options) {
		o.strictRecords = strict
	})
}

// WithMaxLineBytes set the longest accepted line, values below 4KB are raised to 4KB.
func WithMaxLineBytes(n int) Option {
	return newFuncOption(func(o *options) {
		o.maxLineBytes = max(n, minLineBytes)
	})
}

// WithFileSystem set the file system to access.
func WithFileSystem(fs FileSystem) Option {
	return newFuncOption(func(o *options) {
		o.fs = fs
	})
}

// WithLogger set the logger, nil disables logging.
func WithLogger(logger Logger) Option {
	return newFuncOption(func(o *options) {
		if logger == nil {
			logger = NopLogger()
		}
		o.logger = logger
	})
}
