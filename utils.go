package chainmap

import (
	"math"
	"math/bits"
)

// Returns the next power of 2 for the given value `v`.
func NextPowerOf2(v uint32) uint32 {
	if v <= 1 {
		return 1
	}

	return uint32(1) << min(bits.Len32(v-1), 31)
}

// Returns the smallest power of 2 capacity that holds `size` entries
// at the given load factor without triggering a resize.
func CapacityForSize(size int, loadFactor float64) int {
	// A resize fires once size reaches capacity*loadFactor,
	// so the table must stay strictly above `size`.
	need := int(math.Floor(float64(size)/loadFactor)) + 1

	return int(NextPowerOf2(uint32(min(need, math.MaxInt32))))
}
