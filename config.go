package regforge

import (
	"fmt"

	"github.com/coregx/regforge/forge"
	"github.com/coregx/regforge/syntax"
)

// DefaultCacheCapacity is the capacity of the cache behind the
// package-level Generate.
const DefaultCacheCapacity = 64

// Config controls compilation and generation.
type Config struct {
	// MaxUnbounded bounds '*', '+' and '{n,}': each repeats fewer than
	// MaxUnbounded extra times.
	// Default: 32
	MaxUnbounded int

	// MaxLength rejects patterns that can produce more characters than this.
	// Default: 1 << 20
	MaxLength int

	// Exclude lists words that generated strings must not contain.
	// Default: none
	Exclude []string

	// MaxAttempts is how many candidates TryGenerate draws before giving up
	// when every one contains an excluded word.
	// Default: 16
	MaxAttempts int
}

// DefaultConfig returns the default configuration.
//
// Example:
//
//	config := regforge.DefaultConfig()
//	config.MaxUnbounded = 8 // shorter output for '*' and '+'
//	gen, err := regforge.CompileWithConfig(`[a-z]+`, config)
func DefaultConfig() Config {
	fc := forge.DefaultConfig()
	return Config{
		MaxUnbounded: fc.MaxUnbounded,
		MaxLength:    fc.MaxLength,
		MaxAttempts:  16,
	}
}

// Validate checks if the configuration is valid.
// Returns a *ConfigError wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.MaxUnbounded < 1 {
		return &ConfigError{Field: "MaxUnbounded", Err: fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidConfig, c.MaxUnbounded)}
	}
	if c.MaxUnbounded > syntax.MaxRepeat {
		return &ConfigError{Field: "MaxUnbounded", Err: fmt.Errorf("%w: must be <= %d, got %d", ErrInvalidConfig, syntax.MaxRepeat, c.MaxUnbounded)}
	}
	if c.MaxLength < 1 {
		return &ConfigError{Field: "MaxLength", Err: fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidConfig, c.MaxLength)}
	}
	if c.MaxAttempts < 1 {
		return &ConfigError{Field: "MaxAttempts", Err: fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidConfig, c.MaxAttempts)}
	}
	for i, w := range c.Exclude {
		if w == "" {
			return &ConfigError{Field: "Exclude", Err: fmt.Errorf("%w: empty word at index %d", ErrInvalidConfig, i)}
		}
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

// WithExclude returns a new config that also excludes the given words
func (c Config) WithExclude(words ...string) Config {
	c.Exclude = append(append([]string(nil), c.Exclude...), words...)
	return c
}

// WithMaxAttempts returns a new config with the specified attempt limit
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

func (c *Config) forgeConfig() forge.Config {
	return forge.DefaultConfig().
		WithMaxUnbounded(c.MaxUnbounded).
		WithMaxLength(c.MaxLength)
}
