package bitpack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mlt/errs"
)

// maskTo clamps values to the given bit width.
func maskTo(values []int32, width int) []int32 {
	out := make([]int32, len(values))
	mask := uint32(1)<<width - 1
	if width == 32 {
		mask = ^uint32(0)
	}
	for i, v := range values {
		out[i] = int32(uint32(v) & mask)
	}

	return out
}

func TestUnpack32_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for width := 0; width <= 32; width++ {
		values := make([]int32, 32)
		for i := range values {
			values[i] = int32(rng.Uint32())
		}
		expected := maskTo(values, width)

		packed := make([]int32, 32)
		require.NoError(t, Pack32(expected, 0, packed, 0, width))

		out := make([]int32, 32)
		require.NoError(t, Unpack32(packed, 0, out, 0, width))
		require.Equal(t, expected, out, "width %d", width)
	}
}

func TestUnpack32_MatchesGeneric(t *testing.T) {
	// The unrolled routines are a transparent optimization of the generic
	// path; every fast-path width must agree with it bit for bit.
	rng := rand.New(rand.NewSource(7))

	for _, width := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 16} {
		packed := make([]int32, width)
		for i := range packed {
			packed[i] = int32(rng.Uint32())
		}

		fast := make([]int32, 32)
		generic := make([]int32, 32)
		require.NoError(t, Unpack32(packed, 0, fast, 0, width))
		unpackGeneric32(packed, 0, generic, 0, width)
		require.Equal(t, generic, fast, "width %d", width)
	}
}

func TestUnpack32_ConsumesExactWordCount(t *testing.T) {
	// A w-bit unpack over 32 values consumes exactly w input words: packing
	// into a buffer of exactly w words must not overflow, and unpacking
	// from it must not read past the end.
	for width := 1; width <= 32; width++ {
		values := make([]int32, 32)
		for i := range values {
			values[i] = int32(i)
		}
		expected := maskTo(values, width)

		packed := make([]int32, width) // exact size
		require.NoError(t, Pack32(expected, 0, packed, 0, width))

		out := make([]int32, 32)
		require.NoError(t, Unpack32(packed, 0, out, 0, width))
		require.Equal(t, expected, out, "width %d", width)
	}
}

func TestUnpack256_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for _, width := range []int{0, 1, 3, 7, 12, 16, 21, 32} {
		values := make([]int32, 256)
		for i := range values {
			values[i] = int32(rng.Uint32())
		}
		expected := maskTo(values, width)

		packed := make([]int32, 8*width)
		for j := 0; j < 256; j += 32 {
			require.NoError(t, Pack32(expected, j, packed, j/32*width, width))
		}

		out := make([]int32, 256)
		require.NoError(t, Unpack256(packed, 0, out, 0, width))
		require.Equal(t, expected, out, "width %d", width)
	}
}

func TestUnpackExact(t *testing.T) {
	t.Run("PartialCount", func(t *testing.T) {
		values := []int32{5, 0, 7, 3, 1}
		packed := make([]int32, (len(values)*3+31)/32)
		require.NoError(t, PackExact(values, 0, packed, 0, len(values), 3))

		out := make([]int32, len(values))
		require.NoError(t, UnpackExact(packed, 0, out, 0, len(values), 3))
		require.Equal(t, values, out)
	})

	t.Run("WordCrossing", func(t *testing.T) {
		values := make([]int32, 13)
		for i := range values {
			values[i] = int32(i * 100)
		}
		packed := make([]int32, (len(values)*11+31)/32)
		require.NoError(t, PackExact(values, 0, packed, 0, len(values), 11))

		out := make([]int32, len(values))
		require.NoError(t, UnpackExact(packed, 0, out, 0, len(values), 11))
		require.Equal(t, values, out)
	})

	t.Run("WidthZero", func(t *testing.T) {
		out := []int32{9, 9, 9}
		require.NoError(t, UnpackExact(nil, 0, out, 0, 3, 0))
		require.Equal(t, []int32{0, 0, 0}, out)
	})
}

func TestInvalidWidths(t *testing.T) {
	out := make([]int32, 32)

	err := Unpack32(nil, 0, out, 0, 33)
	require.ErrorIs(t, err, errs.ErrInvalidBitWidth)

	err = Pack32(out, 0, out, 0, -1)
	require.ErrorIs(t, err, errs.ErrInvalidBitWidth)

	err = UnpackExact(nil, 0, out, 0, 4, 40)
	require.ErrorIs(t, err, errs.ErrInvalidBitWidth)
}
