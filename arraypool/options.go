package arraypool

import (
	"fmt"
	"math/bits"

	"go.uber.org/zap"

	"github.com/arloliu/spanx/errs"
	"github.com/arloliu/spanx/internal/options"
)

const (
	// DefaultMinArrayLength is the smallest size class of a pool.
	DefaultMinArrayLength = 16

	// DefaultMaxArrayLength is the largest size class of a pool. Larger rentals
	// are allocated directly and dropped on return.
	DefaultMaxArrayLength = 1 << 20
)

// Config holds the settings of a BucketPool.
type Config struct {
	minLength     int
	maxLength     int
	clearOnReturn bool
	logger        *zap.Logger
}

// Option configures a BucketPool.
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{
		minLength:     DefaultMinArrayLength,
		maxLength:     DefaultMaxArrayLength,
		clearOnReturn: true,
		logger:        zap.NewNop(),
	}
}

func (c *Config) validate() error {
	if c.minLength > c.maxLength {
		return fmt.Errorf("%w: min array length %d exceeds max %d",
			errs.ErrInvalidArgument, c.minLength, c.maxLength)
	}

	return nil
}

func checkPowerOfTwo(name string, n int) error {
	if n <= 0 || bits.OnesCount(uint(n)) != 1 {
		return fmt.Errorf("%w: %s must be a positive power of two, got %d", errs.ErrInvalidArgument, name, n)
	}

	return nil
}

// WithMinArrayLength sets the smallest size class. n must be a power of two.
func WithMinArrayLength(n int) Option {
	return options.New(func(c *Config) error {
		if err := checkPowerOfTwo("min array length", n); err != nil {
			return err
		}
		c.minLength = n

		return nil
	})
}

// WithMaxArrayLength sets the largest size class. n must be a power of two.
func WithMaxArrayLength(n int) Option {
	return options.New(func(c *Config) error {
		if err := checkPowerOfTwo("max array length", n); err != nil {
			return err
		}
		c.maxLength = n

		return nil
	})
}

// WithClearOnReturn controls whether returned slices are zeroed before they
// re-enter the pool. It defaults to true so that pooled slices never keep
// references to dead objects alive.
func WithClearOnReturn(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.clearOnReturn = enabled
	})
}

// WithLogger sets the logger used for debug events. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}
