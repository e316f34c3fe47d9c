// Package conv provides overflow-checked integer helpers for the pattern parser.
//
// Repetition counts are accumulated one decimal digit at a time while the
// parser walks the pattern. These helpers report overflow instead of silently
// wrapping so that the parser can turn a runaway count into a parse error.
package conv

import "math"

// AppendDigit returns n*10 + d.
// The second result is false if the value would exceed limit or if d is not
// a decimal digit value (0-9).
func AppendDigit(n, d, limit int) (int, bool) {
	if d < 0 || d > 9 || n < 0 {
		return n, false
	}
	if n > (math.MaxInt-d)/10 {
		return n, false
	}
	v := n*10 + d
	if v > limit {
		return n, false
	}
	return v, true
}

// DigitValue returns the numeric value of an ASCII decimal digit, or -1.
//
//go:inline
func DigitValue(r rune) int {
	if r < '0' || r > '9' {
		return -1
	}
	return int(r - '0')
}

// IntToRune converts an int to a rune.
// Panics if n is outside the valid Unicode code point range.
//
//go:inline
func IntToRune(n int) rune {
	if n < 0 || n > math.MaxInt32 || n > 0x10FFFF {
		panic("integer overflow: int value out of rune range")
	}
	return rune(n)
}
