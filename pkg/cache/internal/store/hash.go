package store

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// HashUint64 is a shard function for integer keys.
func HashUint64[K ~uint64](key K) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))

	return uint32(xxhash.Sum64(buf[:]))
}

// HashPair is a shard function for two-part integer keys.
func HashPair(first, second uint64) uint32 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], first)
	binary.LittleEndian.PutUint64(buf[8:], second)

	return uint32(xxhash.Sum64(buf[:]))
}
