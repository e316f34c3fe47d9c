package forge

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyClass indicates a negated class that excludes every printable
	// character, so nothing can be generated for it.
	ErrEmptyClass = errors.New("character class matches no printable character")

	// ErrTooLong indicates the pattern can produce output longer than
	// Config.MaxLength.
	ErrTooLong = errors.New("pattern output exceeds maximum length")

	// ErrInvalidConfig indicates invalid configuration was provided
	ErrInvalidConfig = errors.New("invalid configuration")
)

// CompileError wraps a failure to turn a syntax tree into a Program.
type CompileError struct {
	// Expr is the offending sub-pattern.
	Expr string
	Err  error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("%v: `%s`", e.Err, e.Expr)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}
