package probemap

import (
	"math"
	"unsafe"
)

// Returns the capacity that follows c in the growth sequence, 2c+1.
// Panics with ErrCapacityOverflow if the result doesn't fit into int.
func NextCapacity(c int) int {
	if c > (math.MaxInt-1)/2 {
		panic(ErrCapacityOverflow)
	}

	return 2*c + 1
}

// Estimates capacity (number of slots) from the given memory size in bytes.
func CapacityFromSize[V any](size uintptr) int {
	sizeOfSlot := unsafe.Sizeof(slot[V]{})

	return int(size / sizeOfSlot)
}
