package probemap

import "github.com/cespare/xxhash/v2"

// HashFunc maps a key to an unbounded hash value.
// The table reduces it modulo its current capacity on every lookup.
type HashFunc func(key string) uint64

// Number of leading code points HornerHash looks at.
const hornerPrefix = 8

const hornerBase = 31

// HornerHash accumulates h = 31*h + c over the first 8 code points of key.
// Keys sharing an 8 character prefix always collide. The empty key hashes to 0.
//
// With code points capped at 0x10FFFF the accumulator stays below 2^55,
// so the value is exact and identical on every platform.
func HornerHash(key string) uint64 {
	var (
		h uint64
		n int
	)

	for _, r := range key {
		if n == hornerPrefix {
			break
		}

		h = hornerBase*h + uint64(r)
		n++
	}

	return h
}

// XXHash hashes the whole key with xxHash64. Unlike HornerHash it does not
// truncate, so long keys with a common prefix spread over the table.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}
