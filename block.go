// Package optblock provides fixed-capacity blocks of optional values indexed
// by a small integer, with occupancy of all slots tracked in a single
// mask word instead of a per-slot "present" flag.
//
// A Block8[T] maps indices 0..7 to at most 8 values of T, a Block16[T] maps
// 0..15, and so on up to Block128[T]. All variants are plain value types:
// the zero value is an empty block ready for use, no operation allocates,
// and none of them are safe for concurrent use without external locking.
package optblock

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
)

// ErrIndexRange is reported by the CollectN constructors when a pair carries
// an index outside the block's capacity.
var ErrIndexRange = errors.New("optblock: index out of range")

func checkIndex(index, capacity int) {
	if index < 0 || index >= capacity {
		panic(fmt.Sprintf("optblock: index %d out of range for capacity %d", index, capacity))
	}
}

// block is the generic engine shared by every variant: a view over the
// variant's slot array and its mask word. The mask is the single source of
// truth for slot validity; every checked access routes through it.
//
// A slot whose mask bit is clear holds unspecified contents (the zero value,
// or leftovers from a previous occupant) and is never returned by the
// checked accessors. Mutators that vacate a slot zero it so the collector
// can reclaim whatever the value referenced.
type block[T any, M maskWord] struct {
	slots []T
	mask  *M
}

func (b block[T, M]) vacant(index int) bool {
	checkIndex(index, len(b.slots))
	return *b.mask&(M(1)<<index) == 0
}

func (b block[T, M]) get(index int) (T, bool) {
	checkIndex(index, len(b.slots))
	if *b.mask&(M(1)<<index) == 0 {
		var zero T
		return zero, false
	}
	return b.slots[index], true
}

func (b block[T, M]) ptr(index int) (*T, bool) {
	checkIndex(index, len(b.slots))
	if *b.mask&(M(1)<<index) == 0 {
		return nil, false
	}
	return &b.slots[index], true
}

func (b block[T, M]) uncheckedPtr(index int) *T {
	checkIndex(index, len(b.slots))
	return &b.slots[index]
}

func (b block[T, M]) insert(index int, val T) (T, bool) {
	checkIndex(index, len(b.slots))
	bit := M(1) << index

	var prev T
	replaced := *b.mask&bit != 0
	if replaced {
		prev = b.slots[index]
	}

	b.slots[index] = val
	*b.mask |= bit

	return prev, replaced
}

func (b block[T, M]) remove(index int) (T, bool) {
	checkIndex(index, len(b.slots))
	bit := M(1) << index

	var zero T
	if *b.mask&bit == 0 {
		return zero, false
	}

	val := b.slots[index]
	b.slots[index] = zero
	*b.mask &^= bit

	return val, true
}

func (b block[T, M]) getOrInsertWith(index int, fill func() T) *T {
	checkIndex(index, len(b.slots))
	bit := M(1) << index

	if *b.mask&bit == 0 {
		b.slots[index] = fill()
		*b.mask |= bit
	}

	return &b.slots[index]
}

func (b block[T, M]) getOrInsert(index int, val T) *T {
	checkIndex(index, len(b.slots))
	bit := M(1) << index

	if *b.mask&bit == 0 {
		b.slots[index] = val
		*b.mask |= bit
	}

	return &b.slots[index]
}

func (b block[T, M]) firstOccupiedPtr() (*T, bool) {
	idx, ok := lowestSet(*b.mask)
	if !ok {
		return nil, false
	}
	return &b.slots[idx], true
}

func (b block[T, M]) lastOccupiedPtr() (*T, bool) {
	idx, ok := highestSet(*b.mask)
	if !ok {
		return nil, false
	}
	return &b.slots[idx], true
}

func (b block[T, M]) firstOccupied() (T, bool) {
	if p, ok := b.firstOccupiedPtr(); ok {
		return *p, true
	}
	var zero T
	return zero, false
}

func (b block[T, M]) lastOccupied() (T, bool) {
	if p, ok := b.lastOccupiedPtr(); ok {
		return *p, true
	}
	var zero T
	return zero, false
}

func (b block[T, M]) insertFirstVacant(val T) (int, bool) {
	idx, ok := lowestClear(*b.mask, len(b.slots))
	if !ok {
		return 0, false
	}
	b.slots[idx] = val
	*b.mask |= M(1) << idx
	return idx, true
}

func (b block[T, M]) insertLastVacant(val T) (int, bool) {
	idx, ok := highestClear(*b.mask, len(b.slots))
	if !ok {
		return 0, false
	}
	b.slots[idx] = val
	*b.mask |= M(1) << idx
	return idx, true
}

// all walks the occupied slots in ascending index order by clearing the
// lowest set bit of a mask snapshot on each step.
func (b block[T, M]) all() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for m := *b.mask; m != 0; m &= m - 1 {
			idx := bits.TrailingZeros64(uint64(m))
			if !yield(idx, b.slots[idx]) {
				return
			}
		}
	}
}

func (b block[T, M]) ptrs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for m := *b.mask; m != 0; m &= m - 1 {
			idx := bits.TrailingZeros64(uint64(m))
			if !yield(idx, &b.slots[idx]) {
				return
			}
		}
	}
}

// drain vacates each slot before yielding its value, so an abandoned
// traversal leaves exactly the unyielded slots occupied.
func (b block[T, M]) drain() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var zero T
		for *b.mask != 0 {
			idx := bits.TrailingZeros64(uint64(*b.mask))
			val := b.slots[idx]
			b.slots[idx] = zero
			*b.mask &^= M(1) << idx
			if !yield(idx, val) {
				return
			}
		}
	}
}

// collect inserts every pair of the sequence, later pairs overwriting
// earlier ones at the same index.
func (b block[T, M]) collect(seq iter.Seq2[int, T]) error {
	for idx, val := range seq {
		if idx < 0 || idx >= len(b.slots) {
			return fmt.Errorf("%w: index %d, capacity %d", ErrIndexRange, idx, len(b.slots))
		}
		b.insert(idx, val)
	}
	return nil
}

// cloneInto copies the mask and the occupied slots only. Vacant slots in the
// destination are left alone, so a clone of a freshly zeroed destination
// carries no stale values.
func (b block[T, M]) cloneInto(dst block[T, M]) {
	*dst.mask = *b.mask
	for m := *b.mask; m != 0; m &= m - 1 {
		idx := bits.TrailingZeros64(uint64(m))
		dst.slots[idx] = b.slots[idx]
	}
}

func (b block[T, M]) reset() {
	var zero T
	for m := *b.mask; m != 0; m &= m - 1 {
		b.slots[bits.TrailingZeros64(uint64(m))] = zero
	}
	*b.mask = 0
}
