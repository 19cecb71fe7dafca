package itertools

import (
	"sync/atomic"

	"github.com/kbukum/iterkit/validation"
)

// DefaultTeeBlockSize is the number of values buffered per tee block.
const DefaultTeeBlockSize = 128

// maxTeeBlockSize bounds a single block allocation.
const maxTeeBlockSize = 1 << 20

// Config holds package-wide defaults.
type Config struct {
	// TeeBlockSize is the capacity of each tee buffer block.
	TeeBlockSize int `mapstructure:"tee_block_size" validate:"min=1,max=1048576"`
}

// ApplyDefaults sets sensible defaults for zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.TeeBlockSize == 0 {
		c.TeeBlockSize = DefaultTeeBlockSize
	}
}

// Validate checks configuration bounds.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c)
}

var teeBlockSize atomic.Int64

func init() {
	teeBlockSize.Store(DefaultTeeBlockSize)
}

// Configure installs cfg as the package defaults. Tees created earlier
// keep their block size.
func Configure(cfg Config) error {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	teeBlockSize.Store(int64(cfg.TeeBlockSize))
	return nil
}

// TeeOption configures a tee.
type TeeOption func(*teeOptions)

type teeOptions struct {
	blockSize int
}

// WithBlockSize overrides the block capacity for one tee.
// Values below 1 are ignored.
func WithBlockSize(n int) TeeOption {
	return func(o *teeOptions) {
		if n >= 1 && n <= maxTeeBlockSize {
			o.blockSize = n
		}
	}
}

func applyTeeOptions(opts []TeeOption) teeOptions {
	o := teeOptions{blockSize: int(teeBlockSize.Load())}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
