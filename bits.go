package optblock

import (
	"math/bits"
)

// maskWord is the set of unsigned integers usable as an occupancy mask, one
// bit per slot.
type maskWord interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// popcount returns the number of set bits, i.e. the number of occupied slots.
func popcount[M maskWord](m M) int {
	return bits.OnesCount64(uint64(m))
}

// lowestSet returns the index of the least significant set bit.
// Reports false if no bit is set.
func lowestSet[M maskWord](m M) (int, bool) {
	if m == 0 {
		return 0, false
	}
	return bits.TrailingZeros64(uint64(m)), true
}

// highestSet returns the index of the most significant set bit.
// Reports false if no bit is set.
func highestSet[M maskWord](m M) (int, bool) {
	if m == 0 {
		return 0, false
	}
	return bits.Len64(uint64(m)) - 1, true
}

// lowestClear returns the index of the least significant clear bit among the
// low n bits. Reports false if all n bits are set.
//
// Widening to uint64 fills everything above the mask width with zeros, so
// after complementing, a trailing-zeros scan lands at or past n exactly when
// the word is full.
func lowestClear[M maskWord](m M, n int) (int, bool) {
	idx := bits.TrailingZeros64(^uint64(m))
	if idx >= n {
		return 0, false
	}
	return idx, true
}

// highestClear returns the index of the most significant clear bit among the
// low n bits. Reports false if all n bits are set.
func highestClear[M maskWord](m M, n int) (int, bool) {
	inv := ^uint64(m) & (^uint64(0) >> (64 - n))
	if inv == 0 {
		return 0, false
	}
	return bits.Len64(inv) - 1, true
}
