package probemap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to a hash; the table reduces it modulo capacity to
// pick the home slot.
type HashFunc func(key uint64) uint64

// MakeDefaultHashFunc returns the identity hash, so a key's home slot is
// key % capacity. Fine for roughly uniform keys; keys clustered by a
// multiple of the capacity all land on the same slot.
func MakeDefaultHashFunc() HashFunc {
	return func(key uint64) uint64 {
		return key
	}
}

// MakeXXHashFunc returns an xxhash64-based hash for key patterns the
// modulo placement handles badly. Placement is no longer key % capacity.
func MakeXXHashFunc() HashFunc {
	return func(key uint64) uint64 {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], key)

		return xxhash.Sum64(b[:])
	}
}
