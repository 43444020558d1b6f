package optblock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskScans(t *testing.T) {
	tests := []struct {
		name string
		mask uint8

		lowestSet    int
		hasSet       bool
		highestSet   int
		lowestClear  int
		hasClear     bool
		highestClear int
	}{
		{
			name:         "empty",
			mask:         0x00,
			hasSet:       false,
			lowestClear:  0,
			hasClear:     true,
			highestClear: 7,
		},
		{
			name:       "full",
			mask:       0xFF,
			lowestSet:  0,
			hasSet:     true,
			highestSet: 7,
			hasClear:   false,
		},
		{
			name:         "single low bit",
			mask:         0x01,
			lowestSet:    0,
			hasSet:       true,
			highestSet:   0,
			lowestClear:  1,
			hasClear:     true,
			highestClear: 7,
		},
		{
			name:         "single high bit",
			mask:         0x80,
			lowestSet:    7,
			hasSet:       true,
			highestSet:   7,
			lowestClear:  0,
			hasClear:     true,
			highestClear: 6,
		},
		{
			name:         "sparse 1,3,5",
			mask:         0b0010_1010,
			lowestSet:    1,
			hasSet:       true,
			highestSet:   5,
			lowestClear:  0,
			hasClear:     true,
			highestClear: 7,
		},
		{
			name:         "all but lowest",
			mask:         0xFE,
			lowestSet:    1,
			hasSet:       true,
			highestSet:   7,
			lowestClear:  0,
			hasClear:     true,
			highestClear: 0,
		},
		{
			name:         "all but highest",
			mask:         0x7F,
			lowestSet:    0,
			hasSet:       true,
			highestSet:   6,
			lowestClear:  7,
			hasClear:     true,
			highestClear: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := lowestSet(tt.mask)
			require.Equal(t, tt.hasSet, ok)
			if ok {
				require.Equal(t, tt.lowestSet, idx)
			}

			idx, ok = highestSet(tt.mask)
			require.Equal(t, tt.hasSet, ok)
			if ok {
				require.Equal(t, tt.highestSet, idx)
			}

			idx, ok = lowestClear(tt.mask, 8)
			require.Equal(t, tt.hasClear, ok)
			if ok {
				require.Equal(t, tt.lowestClear, idx)
			}

			idx, ok = highestClear(tt.mask, 8)
			require.Equal(t, tt.hasClear, ok)
			if ok {
				require.Equal(t, tt.highestClear, idx)
			}
		})
	}
}

func TestMaskScans_FullWidthWords(t *testing.T) {
	// The clear-bit scans must not wander past the mask width once the
	// word is widened to 64 bits.
	_, ok := lowestClear(^uint64(0), 64)
	require.False(t, ok)

	_, ok = highestClear(^uint64(0), 64)
	require.False(t, ok)

	idx, ok := lowestClear(^uint64(0)>>1, 64)
	require.True(t, ok)
	require.Equal(t, 63, idx)

	idx, ok = highestClear(uint64(1), 64)
	require.True(t, ok)
	require.Equal(t, 63, idx)
}

func TestPopcount(t *testing.T) {
	require.Equal(t, 0, popcount(uint8(0)))
	require.Equal(t, 8, popcount(uint8(0xFF)))
	require.Equal(t, 3, popcount(uint16(0b0010_1010)))
	require.Equal(t, 64, popcount(^uint64(0)))
}
