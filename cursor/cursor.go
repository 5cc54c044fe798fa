// Package cursor provides a movable byte offset over an immutable tile buffer,
// plus the primitive integer readers every stream decoder is built on:
// unsigned varints, zig-zag signed varints, and big-endian int32 words.
//
// Every decoder in this module advances a shared Cursor by exactly the number
// of bytes it consumed; concatenated streams rely on that contract.
package cursor

import (
	"fmt"

	"github.com/arloliu/mlt/endian"
	"github.com/arloliu/mlt/errs"
)

var bigEndian = endian.GetBigEndianEngine()

// Cursor is a mutable byte offset over an immutable byte slice.
//
// The zero value is not usable; create cursors with New. A Cursor never
// owns its buffer and never mutates it.
//
// Cursor is not safe for concurrent use.
type Cursor struct {
	data   []byte
	offset int
}

// New creates a cursor positioned at offset 0 of data.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// NewAt creates a cursor positioned at the given offset of data.
func NewAt(data []byte, offset int) *Cursor {
	return &Cursor{data: data, offset: offset}
}

// Data returns the underlying byte slice.
func (c *Cursor) Data() []byte {
	return c.data
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() int {
	return c.offset
}

// SetOffset moves the cursor to the absolute offset.
//
// Returns an error if the offset lies outside [0, len(data)].
func (c *Cursor) SetOffset(offset int) error {
	if offset < 0 || offset > len(c.data) {
		return fmt.Errorf("%w: offset %d outside buffer of %d bytes", errs.ErrBufferUnderrun, offset, len(c.data))
	}
	c.offset = offset

	return nil
}

// Advance moves the cursor forward by n bytes.
//
// Returns an error if the move would run past the end of the buffer.
func (c *Cursor) Advance(n int) error {
	return c.SetOffset(c.offset + n)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.offset
}

// ReadUint8 reads a single byte and advances the cursor.
func (c *Cursor) ReadUint8() (uint8, error) {
	if c.offset >= len(c.data) {
		return 0, fmt.Errorf("%w: reading byte at offset %d", errs.ErrBufferUnderrun, c.offset)
	}
	b := c.data[c.offset]
	c.offset++

	return b, nil
}

// ReadVarintUint32 reads one unsigned LEB128 varint as a uint32 and advances
// the cursor by the number of bytes consumed.
//
// Varints use 7 value bits per byte with the continuation bit in the MSB.
// A varint longer than 5 bytes, or one truncated by the end of the buffer,
// is malformed.
func (c *Cursor) ReadVarintUint32() (uint32, error) {
	var value uint32
	var shift uint

	for i := 0; i < 5; i++ {
		if c.offset >= len(c.data) {
			return 0, fmt.Errorf("%w: truncated varint at offset %d", errs.ErrMalformedStream, c.offset)
		}
		b := c.data[c.offset]
		c.offset++

		value |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return value, nil
		}
		shift += 7
	}

	return 0, fmt.Errorf("%w: varint exceeds 5 bytes at offset %d", errs.ErrMalformedStream, c.offset)
}

// ReadVarintUint64 reads one unsigned LEB128 varint as a uint64 and advances
// the cursor by the number of bytes consumed.
func (c *Cursor) ReadVarintUint64() (uint64, error) {
	var value uint64
	var shift uint

	for i := 0; i < 10; i++ {
		if c.offset >= len(c.data) {
			return 0, fmt.Errorf("%w: truncated varint at offset %d", errs.ErrMalformedStream, c.offset)
		}
		b := c.data[c.offset]
		c.offset++

		value |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return value, nil
		}
		shift += 7
	}

	return 0, fmt.Errorf("%w: varint exceeds 10 bytes at offset %d", errs.ErrMalformedStream, c.offset)
}

// ReadZigZagVarint32 reads one zig-zag encoded signed varint as an int32.
func (c *Cursor) ReadZigZagVarint32() (int32, error) {
	raw, err := c.ReadVarintUint32()
	if err != nil {
		return 0, err
	}

	return ZigZagDecode32(raw), nil
}

// ReadZigZagVarint64 reads one zig-zag encoded signed varint as an int64.
func (c *Cursor) ReadZigZagVarint64() (int64, error) {
	raw, err := c.ReadVarintUint64()
	if err != nil {
		return 0, err
	}

	return ZigZagDecode64(raw), nil
}

// ReadInt32BE reads one big-endian int32 word and advances the cursor by four bytes.
func (c *Cursor) ReadInt32BE() (int32, error) {
	if c.offset+4 > len(c.data) {
		return 0, fmt.Errorf("%w: reading int32 at offset %d", errs.ErrBufferUnderrun, c.offset)
	}
	v := int32(bigEndian.Uint32(c.data[c.offset:])) //nolint:gosec
	c.offset += 4

	return v, nil
}

// ZigZagEncode32 maps a signed int32 onto an unsigned uint32 so small
// magnitudes of either sign stay small: (n<<1) XOR (n>>31).
func ZigZagEncode32(n int32) uint32 {
	return uint32((n << 1) ^ (n >> 31)) //nolint:gosec
}

// ZigZagDecode32 inverts ZigZagEncode32.
func ZigZagDecode32(n uint32) int32 {
	return int32(n>>1) ^ -int32(n&1) //nolint:gosec
}

// ZigZagEncode64 maps a signed int64 onto an unsigned uint64.
func ZigZagEncode64(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63)) //nolint:gosec
}

// ZigZagDecode64 inverts ZigZagEncode64.
func ZigZagDecode64(n uint64) int64 {
	return int64(n>>1) ^ -int64(n&1) //nolint:gosec
}

// DecodeVarints reads count consecutive unsigned varints into a fresh slice.
//
// The cursor ends positioned after the last varint.
func DecodeVarints(c *Cursor, count int) ([]uint32, error) {
	values := make([]uint32, count)
	for i := range values {
		v, err := c.ReadVarintUint32()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return values, nil
}

// ZigZagDecodeSlice applies zig-zag decoding in place, reinterpreting each
// element as an unsigned value.
func ZigZagDecodeSlice(values []int32) {
	for i, v := range values {
		values[i] = ZigZagDecode32(uint32(v)) //nolint:gosec
	}
}

// DecodeDeltaInPlace turns a slice of zig-zag encoded deltas into absolute
// values by prefix summation.
func DecodeDeltaInPlace(values []int32) {
	var acc int32
	for i, v := range values {
		acc += ZigZagDecode32(uint32(v)) //nolint:gosec
		values[i] = acc
	}
}

// DecodeComponentwiseDeltaVec2 turns interleaved x,y zig-zag deltas into
// absolute coordinates, prefix-summing the even and odd positions
// independently. The slice length must be even.
func DecodeComponentwiseDeltaVec2(values []int32) error {
	if len(values)%2 != 0 {
		return fmt.Errorf("%w: vec2 stream holds %d values", errs.ErrMalformedStream, len(values))
	}

	var x, y int32
	for i := 0; i < len(values); i += 2 {
		x += ZigZagDecode32(uint32(values[i]))   //nolint:gosec
		y += ZigZagDecode32(uint32(values[i+1])) //nolint:gosec
		values[i] = x
		values[i+1] = y
	}

	return nil
}
