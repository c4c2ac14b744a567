package bufwriter

import (
	"fmt"

	"github.com/arloliu/spanx/arraypool"
	"github.com/arloliu/spanx/endian"
	"github.com/arloliu/spanx/errs"
	"github.com/arloliu/spanx/internal/options"
)

// ByteConfig holds the settings of a ByteWriter.
type ByteConfig struct {
	writerOpts []Option[byte]
	engine     endian.EndianEngine
}

// ByteOption configures a ByteWriter.
type ByteOption = options.Option[*ByteConfig]

func defaultByteConfig() *ByteConfig {
	return &ByteConfig{engine: endian.GetLittleEndianEngine()}
}

// WithEndian sets the byte order of the fixed-width integer writers. The
// default is little-endian.
func WithEndian(engine endian.EndianEngine) ByteOption {
	return options.New(func(c *ByteConfig) error {
		if engine == nil {
			return fmt.Errorf("%w: nil endian engine", errs.ErrInvalidArgument)
		}
		c.engine = engine

		return nil
	})
}

// WithBytePool makes the writer rent from pool instead of the shared byte pool.
func WithBytePool(pool arraypool.Pool[byte]) ByteOption {
	return options.NoError(func(c *ByteConfig) {
		c.writerOpts = append(c.writerOpts, WithPool(pool))
	})
}

// WithByteCapacity rents an initial buffer of at least n bytes.
func WithByteCapacity(n int) ByteOption {
	return options.NoError(func(c *ByteConfig) {
		c.writerOpts = append(c.writerOpts, WithCapacity[byte](n))
	})
}
