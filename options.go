package chainmap

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	DefaultLoadFactor      = 0.75
	DefaultInitialCapacity = 16
)

type config struct {
	loadFactor      float64
	initialCapacity int
	sizeHint        int
	hashFunc        HashFunc
	logger          *zap.Logger

	errs error
}

type Option func(c *config)

// Fraction of the capacity that triggers growth. Must be in (0, 1].
func WithLoadFactor(f float64) Option {
	return func(c *config) {
		if !(f > 0 && f <= 1) {
			c.errs = multierr.Append(c.errs, errors.Wrapf(ErrInvalidLoadFactor, "load factor %v", f))
			return
		}
		c.loadFactor = f
	}
}

// Starting number of buckets. Clear also shrinks the table back to it.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		if n <= 0 {
			c.errs = multierr.Append(c.errs, errors.Wrapf(ErrInvalidCapacity, "initial capacity %d", n))
			return
		}
		c.initialCapacity = n
		c.sizeHint = 0
	}
}

// Sizes the table so that n entries fit without a resize.
// Overrides WithInitialCapacity when given after it.
func WithSizeHint(n int) Option {
	return func(c *config) {
		if n < 0 {
			c.errs = multierr.Append(c.errs, errors.Wrapf(ErrInvalidCapacity, "size hint %d", n))
			return
		}
		c.sizeHint = n
	}
}

// Override default hash function.
func WithHashFunc(f HashFunc) Option {
	return func(c *config) {
		if f == nil {
			c.errs = multierr.Append(c.errs, ErrInvalidHashFunc)
			return
		}
		c.hashFunc = f
	}
}

// Logger receives debug events about resizes and clears.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}

func newConfig(opts ...Option) (config, error) {
	c := config{
		loadFactor:      DefaultLoadFactor,
		initialCapacity: DefaultInitialCapacity,
		hashFunc:        PolynomialHash,
		logger:          zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&c)
	}

	if c.errs != nil {
		return config{}, c.errs
	}

	// Resolved last, the load factor may come after the hint.
	if c.sizeHint > 0 {
		c.initialCapacity = CapacityForSize(c.sizeHint, c.loadFactor)
	}

	return c, nil
}
