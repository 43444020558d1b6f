package optblock

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair[T any] struct {
	idx int
	val T
}

func pairSeq[T any](pairs []pair[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for _, p := range pairs {
			if !yield(p.idx, p.val) {
				return
			}
		}
	}
}

func collectPairs[T any](seq iter.Seq2[int, T]) []pair[T] {
	var out []pair[T]
	for idx, val := range seq {
		out = append(out, pair[T]{idx, val})
	}
	return out
}

func TestBlock8_All_AscendingAndComplete(t *testing.T) {
	var b Block8[int]
	b.Insert(6, 60)
	b.Insert(1, 10)
	b.Insert(4, 40)

	got := collectPairs(b.All())
	require.Equal(t, []pair[int]{{1, 10}, {4, 40}, {6, 60}}, got)

	// Traversal does not consume anything.
	require.Equal(t, 3, b.Len())

	// Each call yields a fresh, independent traversal.
	require.Equal(t, got, collectPairs(b.All()))
}

func TestBlock8_All_EarlyBreak(t *testing.T) {
	b := Of8([8]int{0, 1, 2, 3, 4, 5, 6, 7})

	var seen int
	for range b.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	require.Equal(t, 3, seen)
	require.Equal(t, 8, b.Len())
}

func TestBlock8_Ptrs_MutatesOccupiedOnly(t *testing.T) {
	var b Block8[int]
	b.Insert(1, 10)
	b.Insert(3, 30)
	b.Insert(5, 50)

	for _, p := range b.Ptrs() {
		*p *= 2
	}

	for i := range b.Cap() {
		v, ok := b.Get(i)
		switch i {
		case 1, 3, 5:
			require.True(t, ok)
			assert.Equal(t, i*10*2, v)
		default:
			assert.False(t, ok)
		}
	}
}

func TestBlock8_Drain_Complete(t *testing.T) {
	var b Block8[int]
	b.Insert(2, 20)
	b.Insert(0, 0)
	b.Insert(7, 70)

	got := collectPairs(b.Drain())
	require.Equal(t, []pair[int]{{0, 0}, {2, 20}, {7, 70}}, got)

	require.True(t, b.IsEmpty())
	for i := range b.Cap() {
		require.True(t, b.IsVacant(i))
	}
}

func TestBlock8_Drain_PartialConsumption(t *testing.T) {
	var b Block8[*int]
	ptrs := [3]*int{new(int), new(int), new(int)}
	b.Insert(1, ptrs[0])
	b.Insert(4, ptrs[1])
	b.Insert(6, ptrs[2])

	for idx, val := range b.Drain() {
		require.Equal(t, 1, idx)
		require.Same(t, ptrs[0], val)
		break
	}

	// The yielded slot is vacated and zeroed; the rest stay intact.
	require.Equal(t, 2, b.Len())
	require.True(t, b.IsVacant(1))
	assert.Nil(t, *b.UncheckedPtr(1))

	v, ok := b.Get(4)
	require.True(t, ok)
	require.Same(t, ptrs[1], v)
	v, ok = b.Get(6)
	require.True(t, ok)
	require.Same(t, ptrs[2], v)
}

func TestBlock128_All_AscendingAcrossHalves(t *testing.T) {
	var b Block128[int]
	b.Insert(100, 1)
	b.Insert(63, 2)
	b.Insert(64, 3)
	b.Insert(0, 4)

	got := collectPairs(b.All())
	require.Equal(t, []pair[int]{{0, 4}, {63, 2}, {64, 3}, {100, 1}}, got)
}

func TestBlock128_Drain_AcrossHalves(t *testing.T) {
	var b Block128[int]
	b.Insert(63, 1)
	b.Insert(64, 2)

	got := collectPairs(b.Drain())
	require.Equal(t, []pair[int]{{63, 1}, {64, 2}}, got)
	require.True(t, b.IsEmpty())
}

func Test_Collect8(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		b, err := Collect8(pairSeq([]pair[int]{{0, 10}, {1, 8}, {2, 1}}))
		require.NoError(t, err)

		v, ok := b.Get(0)
		require.True(t, ok)
		assert.Equal(t, 10, v)
		v, ok = b.Get(1)
		require.True(t, ok)
		assert.Equal(t, 8, v)
		v, ok = b.Get(2)
		require.True(t, ok)
		assert.Equal(t, 1, v)

		_, ok = b.Get(3)
		assert.False(t, ok)
	})

	t.Run("duplicate index, last write wins", func(t *testing.T) {
		b, err := Collect8(pairSeq([]pair[string]{{5, "first"}, {5, "second"}}))
		require.NoError(t, err)

		require.Equal(t, 1, b.Len())
		v, ok := b.Get(5)
		require.True(t, ok)
		assert.Equal(t, "second", v)
	})

	t.Run("out of range index fails construction", func(t *testing.T) {
		_, err := Collect8(pairSeq([]pair[int]{{0, 1}, {8, 2}}))
		require.ErrorIs(t, err, ErrIndexRange)

		_, err = Collect8(pairSeq([]pair[int]{{-1, 1}}))
		require.ErrorIs(t, err, ErrIndexRange)
	})
}

func Test_Collect128(t *testing.T) {
	b, err := Collect128(pairSeq([]pair[int]{{63, 1}, {64, 2}, {127, 3}}))
	require.NoError(t, err)
	require.Equal(t, 3, b.Len())

	v, ok := b.Get(127)
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, err = Collect128(pairSeq([]pair[int]{{128, 0}}))
	require.ErrorIs(t, err, ErrIndexRange)
}

func Test_CollectRoundTrip(t *testing.T) {
	var src Block16[int]
	src.Insert(2, 4)
	src.Insert(9, 81)
	src.Insert(15, 225)

	dst, err := Collect16(src.All())
	require.NoError(t, err)

	require.Equal(t, collectPairs(src.All()), collectPairs(dst.All()))
}
