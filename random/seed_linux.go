//go:build linux

package random

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// Seed returns a seed read from the kernel entropy pool via getrandom(2).
// Falls back to the portable source if the syscall fails.
func Seed() uint64 {
	var buf [8]byte
	n, err := unix.Getrandom(buf[:], 0)
	if err != nil || n != len(buf) {
		return fallbackSeed()
	}
	return binary.LittleEndian.Uint64(buf[:])
}
