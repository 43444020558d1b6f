package optblock

import "iter"

// Block8 is a fixed block of optional slots masked by a uint8, which may
// thus hold at most 8 values.
//
// The zero value is an empty block ready for use, so a Block8 literal is
// usable as a package-level initializer. The block owns its values outright:
// assigning or passing a Block8 copies them all. It is not safe for
// concurrent use without external locking.
type Block8[T any] struct {
	slots [8]T
	mask  uint8
}

// Of8 returns a fully populated block holding vals.
func Of8[T any](vals [8]T) Block8[T] {
	return Block8[T]{slots: vals, mask: ^uint8(0)}
}

// Collect8 builds a block from a sequence of (index, value) pairs. Each pair
// is inserted with Insert semantics, so a later pair at the same index
// overwrites the earlier one. Any index outside [0, 8) fails the whole
// construction with ErrIndexRange.
func Collect8[T any](seq iter.Seq2[int, T]) (Block8[T], error) {
	var b Block8[T]
	if err := b.view().collect(seq); err != nil {
		return Block8[T]{}, err
	}
	return b, nil
}

func (b *Block8[T]) view() block[T, uint8] {
	return block[T, uint8]{b.slots[:], &b.mask}
}

// Cap returns the fixed slot capacity.
func (b *Block8[T]) Cap() int { return len(b.slots) }

// Len returns the number of occupied slots.
func (b *Block8[T]) Len() int { return popcount(b.mask) }

// IsEmpty reports whether no slot is occupied.
func (b *Block8[T]) IsEmpty() bool { return b.mask == 0 }

// IsVacant reports whether the slot at index holds no value.
// Panics if index is out of range.
func (b *Block8[T]) IsVacant(index int) bool { return b.view().vacant(index) }

// Get returns a copy of the value at index, or the zero value and false if
// the slot is vacant. Panics if index is out of range.
func (b *Block8[T]) Get(index int) (T, bool) { return b.view().get(index) }

// Ptr returns a pointer to the value at index for in-place mutation, or nil
// and false if the slot is vacant. Panics if index is out of range.
func (b *Block8[T]) Ptr(index int) (*T, bool) { return b.view().ptr(index) }

// UncheckedPtr returns a pointer straight into the slot storage at index,
// bypassing the occupancy check. On a vacant slot the pointee is unspecified
// (the zero value or leftovers from a previous occupant), and writing
// through the pointer does not mark the slot occupied. This is an escape
// hatch for call sites that have already proven occupancy; everything else
// should use Ptr. Panics if index is out of range.
func (b *Block8[T]) UncheckedPtr(index int) *T { return b.view().uncheckedPtr(index) }

// Insert places val at index. If the slot was occupied, the displaced value
// is returned with replaced == true; otherwise the slot transitions to
// occupied and the zero value is returned with replaced == false.
// Panics if index is out of range.
func (b *Block8[T]) Insert(index int, val T) (prev T, replaced bool) {
	return b.view().insert(index, val)
}

// Remove vacates the slot at index and returns the extracted value. A
// vacant slot yields the zero value and false without mutation.
// Panics if index is out of range.
func (b *Block8[T]) Remove(index int) (T, bool) { return b.view().remove(index) }

// GetOrInsertWith returns a pointer to the value at index, first inserting
// fill()'s result if the slot was vacant. fill is only invoked on a vacant
// slot. Panics if index is out of range.
func (b *Block8[T]) GetOrInsertWith(index int, fill func() T) *T {
	return b.view().getOrInsertWith(index, fill)
}

// GetOrInsert returns a pointer to the value at index, first inserting val
// if the slot was vacant. Panics if index is out of range.
func (b *Block8[T]) GetOrInsert(index int, val T) *T { return b.view().getOrInsert(index, val) }

// GetOrZero returns a pointer to the value at index, first inserting the
// zero value if the slot was vacant. Panics if index is out of range.
func (b *Block8[T]) GetOrZero(index int) *T {
	var zero T
	return b.view().getOrInsert(index, zero)
}

// LowestOccupied returns the smallest occupied index, or false if the block
// is empty.
func (b *Block8[T]) LowestOccupied() (int, bool) { return lowestSet(b.mask) }

// HighestOccupied returns the largest occupied index, or false if the block
// is empty.
func (b *Block8[T]) HighestOccupied() (int, bool) { return highestSet(b.mask) }

// LowestVacant returns the smallest vacant index, or false if the block is
// full.
func (b *Block8[T]) LowestVacant() (int, bool) { return lowestClear(b.mask, len(b.slots)) }

// HighestVacant returns the largest vacant index, or false if the block is
// full.
func (b *Block8[T]) HighestVacant() (int, bool) { return highestClear(b.mask, len(b.slots)) }

// FirstOccupied returns a copy of the value at the smallest occupied index,
// or false if the block is empty.
func (b *Block8[T]) FirstOccupied() (T, bool) { return b.view().firstOccupied() }

// FirstOccupiedPtr is FirstOccupied returning a pointer for in-place
// mutation.
func (b *Block8[T]) FirstOccupiedPtr() (*T, bool) { return b.view().firstOccupiedPtr() }

// LastOccupied returns a copy of the value at the largest occupied index,
// or false if the block is empty.
func (b *Block8[T]) LastOccupied() (T, bool) { return b.view().lastOccupied() }

// LastOccupiedPtr is LastOccupied returning a pointer for in-place mutation.
func (b *Block8[T]) LastOccupiedPtr() (*T, bool) { return b.view().lastOccupiedPtr() }

// InsertFirstVacant places val at the smallest vacant index and returns it.
// A full block reports false without mutation; that is an expected outcome,
// not a fault.
func (b *Block8[T]) InsertFirstVacant(val T) (int, bool) { return b.view().insertFirstVacant(val) }

// InsertLastVacant places val at the largest vacant index and returns it.
// A full block reports false without mutation.
func (b *Block8[T]) InsertLastVacant(val T) (int, bool) { return b.view().insertLastVacant(val) }

// All returns a fresh traversal over the occupied (index, value) pairs in
// ascending index order. The block must not be structurally mutated while
// the traversal is live.
func (b *Block8[T]) All() iter.Seq2[int, T] { return b.view().all() }

// Ptrs is All yielding pointers for in-place mutation.
func (b *Block8[T]) Ptrs() iter.Seq2[int, *T] { return b.view().ptrs() }

// Drain returns a consuming traversal: each occupied slot is vacated as its
// (index, value) pair is yielded, in ascending index order. Abandoning the
// traversal midway leaves exactly the unyielded slots occupied.
func (b *Block8[T]) Drain() iter.Seq2[int, T] { return b.view().drain() }

// Clone returns a copy of the block. Only the occupied slots are copied;
// vacant slots in the clone hold the zero value regardless of what the
// source's vacant storage held.
func (b *Block8[T]) Clone() Block8[T] {
	var dst Block8[T]
	b.view().cloneInto(dst.view())
	return dst
}

// Reset vacates every slot, zeroing the previously occupied ones.
func (b *Block8[T]) Reset() { b.view().reset() }
