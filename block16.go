package optblock

import "iter"

// Block16 is a fixed block of optional slots masked by a uint16, which may
// thus hold at most 16 values. See Block8 for the shared semantics: the zero
// value is an empty block, nothing allocates, and there is no internal
// locking.
type Block16[T any] struct {
	slots [16]T
	mask  uint16
}

// Of16 returns a fully populated block holding vals.
func Of16[T any](vals [16]T) Block16[T] {
	return Block16[T]{slots: vals, mask: ^uint16(0)}
}

// Collect16 builds a block from (index, value) pairs, later pairs
// overwriting earlier ones at the same index. An index outside [0, 16)
// fails the construction with ErrIndexRange.
func Collect16[T any](seq iter.Seq2[int, T]) (Block16[T], error) {
	var b Block16[T]
	if err := b.view().collect(seq); err != nil {
		return Block16[T]{}, err
	}
	return b, nil
}

func (b *Block16[T]) view() block[T, uint16] {
	return block[T, uint16]{b.slots[:], &b.mask}
}

// Cap returns the fixed slot capacity.
func (b *Block16[T]) Cap() int { return len(b.slots) }

// Len returns the number of occupied slots.
func (b *Block16[T]) Len() int { return popcount(b.mask) }

// IsEmpty reports whether no slot is occupied.
func (b *Block16[T]) IsEmpty() bool { return b.mask == 0 }

// IsVacant reports whether the slot at index holds no value.
func (b *Block16[T]) IsVacant(index int) bool { return b.view().vacant(index) }

// Get returns a copy of the value at index, if the slot is occupied.
func (b *Block16[T]) Get(index int) (T, bool) { return b.view().get(index) }

// Ptr returns a pointer to the value at index, if the slot is occupied.
func (b *Block16[T]) Ptr(index int) (*T, bool) { return b.view().ptr(index) }

// UncheckedPtr returns a pointer into the slot storage at index, bypassing
// the occupancy check; see Block8.UncheckedPtr for the contract.
func (b *Block16[T]) UncheckedPtr(index int) *T { return b.view().uncheckedPtr(index) }

// Insert places val at index, returning the displaced value if the slot was
// occupied.
func (b *Block16[T]) Insert(index int, val T) (prev T, replaced bool) {
	return b.view().insert(index, val)
}

// Remove vacates the slot at index and returns the extracted value.
func (b *Block16[T]) Remove(index int) (T, bool) { return b.view().remove(index) }

// GetOrInsertWith returns a pointer to the value at index, inserting
// fill()'s result first if the slot was vacant.
func (b *Block16[T]) GetOrInsertWith(index int, fill func() T) *T {
	return b.view().getOrInsertWith(index, fill)
}

// GetOrInsert returns a pointer to the value at index, inserting val first
// if the slot was vacant.
func (b *Block16[T]) GetOrInsert(index int, val T) *T { return b.view().getOrInsert(index, val) }

// GetOrZero returns a pointer to the value at index, inserting the zero
// value first if the slot was vacant.
func (b *Block16[T]) GetOrZero(index int) *T {
	var zero T
	return b.view().getOrInsert(index, zero)
}

// LowestOccupied returns the smallest occupied index.
func (b *Block16[T]) LowestOccupied() (int, bool) { return lowestSet(b.mask) }

// HighestOccupied returns the largest occupied index.
func (b *Block16[T]) HighestOccupied() (int, bool) { return highestSet(b.mask) }

// LowestVacant returns the smallest vacant index.
func (b *Block16[T]) LowestVacant() (int, bool) { return lowestClear(b.mask, len(b.slots)) }

// HighestVacant returns the largest vacant index.
func (b *Block16[T]) HighestVacant() (int, bool) { return highestClear(b.mask, len(b.slots)) }

// FirstOccupied returns a copy of the value at the smallest occupied index.
func (b *Block16[T]) FirstOccupied() (T, bool) { return b.view().firstOccupied() }

// FirstOccupiedPtr is FirstOccupied returning a pointer.
func (b *Block16[T]) FirstOccupiedPtr() (*T, bool) { return b.view().firstOccupiedPtr() }

// LastOccupied returns a copy of the value at the largest occupied index.
func (b *Block16[T]) LastOccupied() (T, bool) { return b.view().lastOccupied() }

// LastOccupiedPtr is LastOccupied returning a pointer.
func (b *Block16[T]) LastOccupiedPtr() (*T, bool) { return b.view().lastOccupiedPtr() }

// InsertFirstVacant places val at the smallest vacant index; a full block
// reports false without mutation.
func (b *Block16[T]) InsertFirstVacant(val T) (int, bool) { return b.view().insertFirstVacant(val) }

// InsertLastVacant places val at the largest vacant index; a full block
// reports false without mutation.
func (b *Block16[T]) InsertLastVacant(val T) (int, bool) { return b.view().insertLastVacant(val) }

// All returns a fresh traversal over the occupied (index, value) pairs in
// ascending index order.
func (b *Block16[T]) All() iter.Seq2[int, T] { return b.view().all() }

// Ptrs is All yielding pointers for in-place mutation.
func (b *Block16[T]) Ptrs() iter.Seq2[int, *T] { return b.view().ptrs() }

// Drain returns a consuming traversal that vacates each slot as it is
// yielded.
func (b *Block16[T]) Drain() iter.Seq2[int, T] { return b.view().drain() }

// Clone returns a copy holding only the occupied slots.
func (b *Block16[T]) Clone() Block16[T] {
	var dst Block16[T]
	b.view().cloneInto(dst.view())
	return dst
}

// Reset vacates every slot, zeroing the previously occupied ones.
func (b *Block16[T]) Reset() { b.view().reset() }
