package primemap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to an unsigned integer. Both table variants reduce
// the result modulo their capacity, so the distribution affects only the
// performance, never the correctness.
type HashFunc func(string) uint64

// MakeDefaultHashFunc returns a maphash based function with a fresh random seed.
func MakeDefaultHashFunc() HashFunc {
	seed := maphash.MakeSeed()

	return func(k string) uint64 {
		return maphash.String(seed, k)
	}
}

// HashSum adds up the byte values of the key.
func HashSum(k string) uint64 {
	var h uint64
	for i := 0; i < len(k); i++ {
		h += uint64(k[i])
	}

	return h
}

// HashWeighted adds up the byte values of the key, each one weighted
// by its 1-based position.
func HashWeighted(k string) uint64 {
	var h uint64
	for i := 0; i < len(k); i++ {
		h += uint64(i+1) * uint64(k[i])
	}

	return h
}

// HashXX is the xxhash64 digest of the key.
func HashXX(k string) uint64 {
	return xxhash.Sum64String(k)
}
