package regforge

import (
	"errors"
	"fmt"

	"github.com/coregx/regforge/forge"
)

var (
	// ErrInvalidConfig indicates invalid configuration was provided.
	// It is the same value as forge.ErrInvalidConfig.
	ErrInvalidConfig = forge.ErrInvalidConfig

	// ErrExhausted indicates TryGenerate drew Config.MaxAttempts candidates
	// and every one contained an excluded word.
	ErrExhausted = errors.New("every candidate contained an excluded word")
)

// CompileError reports a pattern that could not be compiled.
// Err is a *syntax.Error for malformed patterns or a *forge.CompileError
// for patterns that cannot be generated.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// ConfigError names the Config field that failed validation.
type ConfigError struct {
	Field string
	Err   error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ExhaustedError is returned by TryGenerate when no candidate passed the
// deny-list.
type ExhaustedError struct {
	Pattern  string
	Attempts int

	// Last is the final rejected candidate.
	Last string
}

// Error implements the error interface
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%v: `%s` after %d attempts", ErrExhausted, e.Pattern, e.Attempts)
}

// Unwrap returns ErrExhausted
func (e *ExhaustedError) Unwrap() error {
	return ErrExhausted
}
