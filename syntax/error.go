// Package syntax parses generator patterns into an abstract syntax tree.
//
// The parser is a character-at-a-time state machine. Every rune of the
// pattern is handed to the current state, which mutates the tree being built
// and returns the state that handles the next rune. The tree is stored in an
// arena and addressed by NodeID, so rewriting a parent slot (as happens when
// a '|' turns a sequence into an alternation) is a single index update.
package syntax

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is matched by every *Error via errors.Is.
var ErrInvalidPattern = errors.New("invalid pattern")

// ErrorCode describes a failure to parse a pattern.
type ErrorCode string

const (
	ErrEmptyClass            ErrorCode = "empty character class"
	ErrInvalidCharRange      ErrorCode = "invalid character class range"
	ErrInvalidEscape         ErrorCode = "invalid escape sequence"
	ErrInvalidRepeatSize     ErrorCode = "invalid repeat count"
	ErrInvalidUTF8           ErrorCode = "invalid UTF-8"
	ErrMissingBracket        ErrorCode = "missing closing ]"
	ErrMissingParen          ErrorCode = "missing closing )"
	ErrMissingRepeatArgument ErrorCode = "missing argument to repetition operator"
	ErrMissingRepeatClose    ErrorCode = "missing closing }"
	ErrNestedRepeat          ErrorCode = "invalid nested repetition operator"
	ErrTrailingBackslash     ErrorCode = "trailing backslash at end of expression"
	ErrUnexpectedParen       ErrorCode = "unexpected )"
)

func (e ErrorCode) String() string {
	return string(e)
}

// Error describes a pattern that failed to parse and the construct that
// caused the failure.
type Error struct {
	Code    ErrorCode
	Expr    string // offending part of the pattern
	Offset  int    // byte offset of Expr in Pattern
	Pattern string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("error parsing pattern: %s: `%s`", e.Code, e.Expr)
}

// Unwrap returns ErrInvalidPattern
func (e *Error) Unwrap() error {
	return ErrInvalidPattern
}

// Is implements error comparison for errors.Is.
// Two *Error values are equal when their codes are.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
