package optblock

import (
	"fmt"
	"iter"
)

// Block128 is a fixed block of optional slots masked by a pair of uint64
// words, which may thus hold at most 128 values. Every operation routes to
// one 64-slot half, so the semantics match Block8..Block64 exactly; only
// the extremal queries have to consult both words.
type Block128[T any] struct {
	slots [128]T
	lo    uint64
	hi    uint64
}

// Of128 returns a fully populated block holding vals.
func Of128[T any](vals [128]T) Block128[T] {
	return Block128[T]{slots: vals, lo: ^uint64(0), hi: ^uint64(0)}
}

// Collect128 builds a block from (index, value) pairs, later pairs
// overwriting earlier ones at the same index. An index outside [0, 128)
// fails the construction with ErrIndexRange.
func Collect128[T any](seq iter.Seq2[int, T]) (Block128[T], error) {
	var b Block128[T]
	for idx, val := range seq {
		if idx < 0 || idx >= len(b.slots) {
			return Block128[T]{}, fmt.Errorf("%w: index %d, capacity %d", ErrIndexRange, idx, len(b.slots))
		}
		b.Insert(idx, val)
	}
	return b, nil
}

// half picks the engine view covering index. Callers bounds-check against
// the full capacity first; the returned index is relative to the half.
func (b *Block128[T]) half(index int) (block[T, uint64], int) {
	if index < 64 {
		return block[T, uint64]{b.slots[:64], &b.lo}, index
	}
	return block[T, uint64]{b.slots[64:], &b.hi}, index - 64
}

func (b *Block128[T]) lower() block[T, uint64] { return block[T, uint64]{b.slots[:64], &b.lo} }
func (b *Block128[T]) upper() block[T, uint64] { return block[T, uint64]{b.slots[64:], &b.hi} }

// Cap returns the fixed slot capacity.
func (b *Block128[T]) Cap() int { return len(b.slots) }

// Len returns the number of occupied slots.
func (b *Block128[T]) Len() int { return popcount(b.lo) + popcount(b.hi) }

// IsEmpty reports whether no slot is occupied.
func (b *Block128[T]) IsEmpty() bool { return b.lo|b.hi == 0 }

// IsVacant reports whether the slot at index holds no value.
func (b *Block128[T]) IsVacant(index int) bool {
	checkIndex(index, len(b.slots))
	h, i := b.half(index)
	return h.vacant(i)
}

// Get returns a copy of the value at index, if the slot is occupied.
func (b *Block128[T]) Get(index int) (T, bool) {
	checkIndex(index, len(b.slots))
	h, i := b.half(index)
	return h.get(i)
}

// Ptr returns a pointer to the value at index, if the slot is occupied.
func (b *Block128[T]) Ptr(index int) (*T, bool) {
	checkIndex(index, len(b.slots))
	h, i := b.half(index)
	return h.ptr(i)
}

// UncheckedPtr returns a pointer into the slot storage at index, bypassing
// the occupancy check; see Block8.UncheckedPtr for the contract.
func (b *Block128[T]) UncheckedPtr(index int) *T {
	checkIndex(index, len(b.slots))
	return &b.slots[index]
}

// Insert places val at index, returning the displaced value if the slot was
// occupied.
func (b *Block128[T]) Insert(index int, val T) (prev T, replaced bool) {
	checkIndex(index, len(b.slots))
	h, i := b.half(index)
	return h.insert(i, val)
}

// Remove vacates the slot at index and returns the extracted value.
func (b *Block128[T]) Remove(index int) (T, bool) {
	checkIndex(index, len(b.slots))
	h, i := b.half(index)
	return h.remove(i)
}

// GetOrInsertWith returns a pointer to the value at index, inserting
// fill()'s result first if the slot was vacant.
func (b *Block128[T]) GetOrInsertWith(index int, fill func() T) *T {
	checkIndex(index, len(b.slots))
	h, i := b.half(index)
	return h.getOrInsertWith(i, fill)
}

// GetOrInsert returns a pointer to the value at index, inserting val first
// if the slot was vacant.
func (b *Block128[T]) GetOrInsert(index int, val T) *T {
	checkIndex(index, len(b.slots))
	h, i := b.half(index)
	return h.getOrInsert(i, val)
}

// GetOrZero returns a pointer to the value at index, inserting the zero
// value first if the slot was vacant.
func (b *Block128[T]) GetOrZero(index int) *T {
	var zero T
	return b.GetOrInsert(index, zero)
}

// LowestOccupied returns the smallest occupied index.
func (b *Block128[T]) LowestOccupied() (int, bool) {
	if idx, ok := lowestSet(b.lo); ok {
		return idx, true
	}
	if idx, ok := lowestSet(b.hi); ok {
		return idx + 64, true
	}
	return 0, false
}

// HighestOccupied returns the largest occupied index.
func (b *Block128[T]) HighestOccupied() (int, bool) {
	if idx, ok := highestSet(b.hi); ok {
		return idx + 64, true
	}
	return highestSet(b.lo)
}

// LowestVacant returns the smallest vacant index.
func (b *Block128[T]) LowestVacant() (int, bool) {
	if idx, ok := lowestClear(b.lo, 64); ok {
		return idx, true
	}
	if idx, ok := lowestClear(b.hi, 64); ok {
		return idx + 64, true
	}
	return 0, false
}

// HighestVacant returns the largest vacant index.
func (b *Block128[T]) HighestVacant() (int, bool) {
	if idx, ok := highestClear(b.hi, 64); ok {
		return idx + 64, true
	}
	return highestClear(b.lo, 64)
}

// FirstOccupied returns a copy of the value at the smallest occupied index.
func (b *Block128[T]) FirstOccupied() (T, bool) {
	if p, ok := b.FirstOccupiedPtr(); ok {
		return *p, true
	}
	var zero T
	return zero, false
}

// FirstOccupiedPtr is FirstOccupied returning a pointer.
func (b *Block128[T]) FirstOccupiedPtr() (*T, bool) {
	idx, ok := b.LowestOccupied()
	if !ok {
		return nil, false
	}
	return &b.slots[idx], true
}

// LastOccupied returns a copy of the value at the largest occupied index.
func (b *Block128[T]) LastOccupied() (T, bool) {
	if p, ok := b.LastOccupiedPtr(); ok {
		return *p, true
	}
	var zero T
	return zero, false
}

// LastOccupiedPtr is LastOccupied returning a pointer.
func (b *Block128[T]) LastOccupiedPtr() (*T, bool) {
	idx, ok := b.HighestOccupied()
	if !ok {
		return nil, false
	}
	return &b.slots[idx], true
}

// InsertFirstVacant places val at the smallest vacant index; a full block
// reports false without mutation.
func (b *Block128[T]) InsertFirstVacant(val T) (int, bool) {
	if idx, ok := b.lower().insertFirstVacant(val); ok {
		return idx, true
	}
	if idx, ok := b.upper().insertFirstVacant(val); ok {
		return idx + 64, true
	}
	return 0, false
}

// InsertLastVacant places val at the largest vacant index; a full block
// reports false without mutation.
func (b *Block128[T]) InsertLastVacant(val T) (int, bool) {
	if idx, ok := b.upper().insertLastVacant(val); ok {
		return idx + 64, true
	}
	return b.lower().insertLastVacant(val)
}

// All returns a fresh traversal over the occupied (index, value) pairs in
// ascending index order.
func (b *Block128[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for idx, val := range b.lower().all() {
			if !yield(idx, val) {
				return
			}
		}
		for idx, val := range b.upper().all() {
			if !yield(idx+64, val) {
				return
			}
		}
	}
}

// Ptrs is All yielding pointers for in-place mutation.
func (b *Block128[T]) Ptrs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for idx, p := range b.lower().ptrs() {
			if !yield(idx, p) {
				return
			}
		}
		for idx, p := range b.upper().ptrs() {
			if !yield(idx+64, p) {
				return
			}
		}
	}
}

// Drain returns a consuming traversal that vacates each slot as it is
// yielded.
func (b *Block128[T]) Drain() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for idx, val := range b.lower().drain() {
			if !yield(idx, val) {
				return
			}
		}
		for idx, val := range b.upper().drain() {
			if !yield(idx+64, val) {
				return
			}
		}
	}
}

// Clone returns a copy holding only the occupied slots.
func (b *Block128[T]) Clone() Block128[T] {
	var dst Block128[T]
	b.lower().cloneInto(dst.lower())
	b.upper().cloneInto(dst.upper())
	return dst
}

// Reset vacates every slot, zeroing the previously occupied ones.
func (b *Block128[T]) Reset() {
	b.lower().reset()
	b.upper().reset()
}
