package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mlt/errs"
)

func appendVarint(buf []byte, v uint32) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}

	return append(buf, byte(v))
}

func TestCursor_Offsets(t *testing.T) {
	c := New([]byte{1, 2, 3, 4})

	require.Equal(t, 0, c.Offset())
	require.Equal(t, 4, c.Remaining())

	require.NoError(t, c.Advance(3))
	require.Equal(t, 3, c.Offset())
	require.Equal(t, 1, c.Remaining())

	require.NoError(t, c.SetOffset(4))
	require.Equal(t, 0, c.Remaining())

	t.Run("PastEnd", func(t *testing.T) {
		err := c.Advance(1)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrBufferUnderrun)
		// A failed move leaves the cursor in place.
		require.Equal(t, 4, c.Offset())
	})

	t.Run("Negative", func(t *testing.T) {
		require.Error(t, c.SetOffset(-1))
	})
}

func TestCursor_ReadVarint(t *testing.T) {
	t.Run("SingleByte", func(t *testing.T) {
		c := New([]byte{0x7f})
		v, err := c.ReadVarintUint32()
		require.NoError(t, err)
		require.Equal(t, uint32(127), v)
		require.Equal(t, 1, c.Offset())
	})

	t.Run("MultiByte", func(t *testing.T) {
		var buf []byte
		buf = appendVarint(buf, 300)
		buf = appendVarint(buf, 1)

		c := New(buf)
		v, err := c.ReadVarintUint32()
		require.NoError(t, err)
		require.Equal(t, uint32(300), v)
		require.Equal(t, 2, c.Offset())

		v, err = c.ReadVarintUint32()
		require.NoError(t, err)
		require.Equal(t, uint32(1), v)
	})

	t.Run("MaxUint32", func(t *testing.T) {
		buf := appendVarint(nil, 0xffffffff)
		c := New(buf)
		v, err := c.ReadVarintUint32()
		require.NoError(t, err)
		require.Equal(t, uint32(0xffffffff), v)
		require.Equal(t, 5, c.Offset())
	})

	t.Run("Truncated", func(t *testing.T) {
		c := New([]byte{0x80, 0x80})
		_, err := c.ReadVarintUint32()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrMalformedStream)
	})

	t.Run("Uint64", func(t *testing.T) {
		buf := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01} // 1<<63
		c := New(buf)
		v, err := c.ReadVarintUint64()
		require.NoError(t, err)
		require.Equal(t, uint64(1)<<63, v)
	})
}

func TestCursor_ReadInt32BE(t *testing.T) {
	c := New([]byte{0x00, 0x00, 0x01, 0x00, 0xff, 0xff, 0xff, 0xff})

	v, err := c.ReadInt32BE()
	require.NoError(t, err)
	require.Equal(t, int32(256), v)

	v, err = c.ReadInt32BE()
	require.NoError(t, err)
	require.Equal(t, int32(-1), v)

	_, err = c.ReadInt32BE()
	require.ErrorIs(t, err, errs.ErrBufferUnderrun)
}

func TestZigZag(t *testing.T) {
	cases := []int32{0, -1, 1, -2, 2, 1<<31 - 1, -1 << 31}
	for _, n := range cases {
		require.Equal(t, n, ZigZagDecode32(ZigZagEncode32(n)), "value %d", n)
	}

	// Small magnitudes of either sign stay small.
	require.Equal(t, uint32(1), ZigZagEncode32(-1))
	require.Equal(t, uint32(2), ZigZagEncode32(1))

	cases64 := []int64{0, -1, 1, 1<<63 - 1, -1 << 63}
	for _, n := range cases64 {
		require.Equal(t, n, ZigZagDecode64(ZigZagEncode64(n)), "value %d", n)
	}
}

func TestDecodeDeltaInPlace(t *testing.T) {
	// Deltas 0, +10, +10, +20 as zig-zag values.
	values := []int32{
		int32(ZigZagEncode32(0)),
		int32(ZigZagEncode32(10)),
		int32(ZigZagEncode32(10)),
		int32(ZigZagEncode32(20)),
	}
	DecodeDeltaInPlace(values)
	require.Equal(t, []int32{0, 10, 20, 40}, values)
}

func TestDecodeComponentwiseDeltaVec2(t *testing.T) {
	t.Run("InterleavedAxes", func(t *testing.T) {
		// (4,8), then deltas (+1,-2), (-3,+4).
		values := []int32{
			int32(ZigZagEncode32(4)), int32(ZigZagEncode32(8)),
			int32(ZigZagEncode32(1)), int32(ZigZagEncode32(-2)),
			int32(ZigZagEncode32(-3)), int32(ZigZagEncode32(4)),
		}
		require.NoError(t, DecodeComponentwiseDeltaVec2(values))
		require.Equal(t, []int32{4, 8, 5, 6, 2, 10}, values)
	})

	t.Run("OddLength", func(t *testing.T) {
		err := DecodeComponentwiseDeltaVec2([]int32{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrMalformedStream)
	})
}

func TestDecodeVarints(t *testing.T) {
	var buf []byte
	for _, v := range []uint32{3, 0, 300, 70000} {
		buf = appendVarint(buf, v)
	}

	c := New(buf)
	values, err := DecodeVarints(c, 4)
	require.NoError(t, err)
	require.Equal(t, []uint32{3, 0, 300, 70000}, values)
	require.Equal(t, len(buf), c.Offset())
}
