package dct

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Config holds transform settings.
type Config struct {
	// Workers bounds the goroutines used per pass.
	Workers int
	// Cache, when set, supplies bases instead of recomputing them per call.
	Cache *BasisCache
	// Scalar disables the vectorized accumulation kernel.
	Scalar bool
	Logger logrus.FieldLogger
}

// Option mutates a Config.
type Option func(*Config)

var discardLogger = func() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// DefaultConfig uses one worker per available CPU, no cache and no logging.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  discardLogger,
	}
}

// WithWorkers sets the number of goroutines used per pass.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithCache shares a basis cache across transforms.
func WithCache(c *BasisCache) Option {
	return func(cfg *Config) {
		cfg.Cache = c
	}
}

// WithScalar forces the plain Go accumulation loop.
func WithScalar() Option {
	return func(cfg *Config) {
		cfg.Scalar = true
	}
}

// WithLogger routes debug output to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
