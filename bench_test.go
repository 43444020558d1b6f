package optblock

import (
	"testing"

	"github.com/zeebo/pcg"
)

func randIndices(n, capacity int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = int(pcg.Uint64() % uint64(capacity))
	}
	return out
}

func BenchmarkInsert(b *testing.B) {
	b.Run("variant=Block8", func(b *testing.B) {
		var blk Block8[uint64]
		idx := randIndices(1024, blk.Cap())

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			blk.Insert(idx[i%len(idx)], uint64(i))
		}
	})

	b.Run("variant=Block64", func(b *testing.B) {
		var blk Block64[uint64]
		idx := randIndices(1024, blk.Cap())

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			blk.Insert(idx[i%len(idx)], uint64(i))
		}
	})

	b.Run("variant=Block128", func(b *testing.B) {
		var blk Block128[uint64]
		idx := randIndices(1024, blk.Cap())

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			blk.Insert(idx[i%len(idx)], uint64(i))
		}
	})
}

func BenchmarkGet(b *testing.B) {
	b.Run("variant=Block64/occupancy=half", func(b *testing.B) {
		var blk Block64[uint64]
		for i := 0; i < blk.Cap(); i += 2 {
			blk.Insert(i, pcg.Uint64())
		}
		idx := randIndices(1024, blk.Cap())

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = blk.Get(idx[i%len(idx)])
		}
	})

	b.Run("variant=Block128/occupancy=full", func(b *testing.B) {
		var vals [128]uint64
		for i := range vals {
			vals[i] = pcg.Uint64()
		}
		blk := Of128(vals)
		idx := randIndices(1024, blk.Cap())

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = blk.Get(idx[i%len(idx)])
		}
	})
}

func BenchmarkInsertFirstVacant(b *testing.B) {
	b.Run("variant=Block64", func(b *testing.B) {
		var blk Block64[uint64]

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, ok := blk.InsertFirstVacant(uint64(i)); !ok {
				blk.Reset()
			}
		}
	})
}

func BenchmarkDrain(b *testing.B) {
	b.Run("variant=Block64", func(b *testing.B) {
		var vals [64]uint64
		for i := range vals {
			vals[i] = pcg.Uint64()
		}

		var sink uint64
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			blk := Of64(vals)
			for _, v := range blk.Drain() {
				sink += v
			}
		}
		_ = sink
	})

	b.Run("variant=Block128", func(b *testing.B) {
		var vals [128]uint64
		for i := range vals {
			vals[i] = pcg.Uint64()
		}

		var sink uint64
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			blk := Of128(vals)
			for _, v := range blk.Drain() {
				sink += v
			}
		}
		_ = sink
	})
}

func BenchmarkIterAll(b *testing.B) {
	b.Run("variant=Block64/occupancy=sparse", func(b *testing.B) {
		var blk Block64[uint64]
		for _, i := range []int{3, 17, 40, 63} {
			blk.Insert(i, pcg.Uint64())
		}

		var sink uint64
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for _, v := range blk.All() {
				sink += v
			}
		}
		_ = sink
	})
}
