//go:build !linux

package random

// Seed returns a seed from the runtime's entropy source.
func Seed() uint64 {
	return fallbackSeed()
}
