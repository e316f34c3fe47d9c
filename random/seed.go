package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// fallbackSeed is the portable seed source used where getrandom(2) is not
// available.
func fallbackSeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(buf[:])
}
