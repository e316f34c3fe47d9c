package forge

import (
	"fmt"

	"github.com/coregx/regforge/syntax"
)

// Config controls how a Program generates strings.
type Config struct {
	// MaxUnbounded bounds '*', '+' and '{n,}'. '*' repeats [0, MaxUnbounded)
	// times, '+' [1, MaxUnbounded) and '{n,}' [n, n+MaxUnbounded).
	// Default: 32
	MaxUnbounded int

	// MaxLength rejects patterns whose longest possible output exceeds this
	// many characters, e.g. ((a{1000}){1000}){1000}.
	// Default: 1 << 20
	MaxLength int
}

// DefaultConfig returns the configuration used by Compile.
func DefaultConfig() Config {
	return Config{
		MaxUnbounded: syntax.UnboundedRepeat,
		MaxLength:    1 << 20,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxUnbounded < 1 {
		return fmt.Errorf("%w: MaxUnbounded must be >= 1", ErrInvalidConfig)
	}
	if c.MaxLength < 1 {
		return fmt.Errorf("%w: MaxLength must be >= 1", ErrInvalidConfig)
	}
	return nil
}

// WithMaxUnbounded returns a new config with the specified unbounded limit
func (c Config) WithMaxUnbounded(n int) Config {
	c.MaxUnbounded = n
	return c
}

// WithMaxLength returns a new config with the specified length limit
func (c Config) WithMaxLength(n int) Config {
	c.MaxLength = n
	return c
}
