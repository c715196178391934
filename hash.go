package chainmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to a hash code. The table reduces it modulo the
// current capacity on every use, the result is never cached.
type HashFunc func(key string) uint64

const polynomialPrime = 31

// PolynomialHash is the default hash function.
// It accumulates h = 31*h + b over the bytes of the key in uint32
// arithmetic, wrapping around on overflow. The width is fixed so the
// bucket distribution is the same on every platform.
func PolynomialHash(key string) uint64 {
	var h uint32
	for i := 0; i < len(key); i++ {
		h = polynomialPrime*h + uint32(key[i])
	}

	return uint64(h)
}

// XXHash hashes the key with xxHash64.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// MakeMapHashFunc returns a hash function backed by hash/maphash with a
// fresh random seed. Bucket placement differs between processes.
func MakeMapHashFunc() HashFunc {
	seed := maphash.MakeSeed()

	return func(key string) uint64 {
		return maphash.String(seed, key)
	}
}

func bucketIndex(hash uint64, capacity int) int {
	return int(hash % uint64(capacity))
}
