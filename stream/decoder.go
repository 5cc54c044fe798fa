package stream

import (
	"fmt"

	"github.com/arloliu/mlt/cursor"
	"github.com/arloliu/mlt/errs"
	"github.com/arloliu/mlt/fastpfor"
	"github.com/arloliu/mlt/format"
)

// DecodeIntStream decodes one integer stream: the physical layer selected by
// the metadata, then the logical cascade (RLE expansion, delta or
// componentwise-delta reconstruction, zig-zag for signed streams).
//
// Morton streams are returned as raw Z-order codes; the geometry layer
// applies the inverse interleave using the metadata's Morton settings.
//
// Post-condition: the cursor sits exactly metadata.ByteLength past the
// payload start. A physical layer that consumes a different byte count is
// malformed.
func DecodeIntStream(c *cursor.Cursor, meta *Metadata, signed bool) ([]int32, error) {
	values, err := decodePhysical(c, meta)
	if err != nil {
		return nil, err
	}

	switch meta.Technique1 {
	case format.TechniqueRle:
		values, err = expandRuns(values, meta)
		if err != nil {
			return nil, err
		}
		if signed {
			cursor.ZigZagDecodeSlice(values)
		}
	case format.TechniqueDelta:
		if meta.Technique2 == format.TechniqueRle {
			values, err = expandRuns(values, meta)
			if err != nil {
				return nil, err
			}
		}
		cursor.DecodeDeltaInPlace(values)
	case format.TechniqueComponentwiseDelta:
		if err := cursor.DecodeComponentwiseDeltaVec2(values); err != nil {
			return nil, err
		}
	case format.TechniqueMorton:
		// Z-order codes stay packed until vertex reconstruction.
	case format.TechniqueNone:
		if signed {
			cursor.ZigZagDecodeSlice(values)
		}
	default:
		return nil, fmt.Errorf("%w: logical technique %s", errs.ErrUnsupportedTechnique, meta.Technique1)
	}

	return values, nil
}

// DecodeConstIntStream decodes a stream backing a constant column and
// returns the single scalar that every element repeats.
func DecodeConstIntStream(c *cursor.Cursor, meta *Metadata, signed bool) (int32, error) {
	values, err := DecodeIntStream(c, meta, signed)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: const stream with no values", errs.ErrMalformedStream)
	}

	return values[0], nil
}

// DecodeLengthStreamToOffsetBuffer decodes a LENGTH stream of numValues
// lengths and returns the prefix-sum offset buffer of numValues+1 entries
// with out[0] = 0.
func DecodeLengthStreamToOffsetBuffer(c *cursor.Cursor, meta *Metadata) ([]int32, error) {
	lengths, err := DecodeIntStream(c, meta, false)
	if err != nil {
		return nil, err
	}

	offsets := make([]int32, len(lengths)+1)
	for i, length := range lengths {
		offsets[i+1] = offsets[i] + length
	}

	return offsets, nil
}

// DecodeBooleanStream decodes a PRESENT stream into a bool per element.
func DecodeBooleanStream(c *cursor.Cursor, meta *Metadata) ([]bool, error) {
	values, err := DecodeIntStream(c, meta, false)
	if err != nil {
		return nil, err
	}

	bits := make([]bool, len(values))
	for i, v := range values {
		bits[i] = v != 0
	}

	return bits, nil
}

// decodePhysical decodes meta.NumValues integers with the physical
// technique and pins the cursor to payloadStart+ByteLength.
func decodePhysical(c *cursor.Cursor, meta *Metadata) ([]int32, error) {
	start := c.Offset()
	if meta.ByteLength < 0 || start+meta.ByteLength > len(c.Data()) {
		return nil, fmt.Errorf("%w: stream of %d bytes at offset %d", errs.ErrBufferUnderrun, meta.ByteLength, start)
	}

	var values []int32

	switch meta.PhysicalTechnique {
	case format.PhysicalVarint:
		values = make([]int32, meta.NumValues)
		for i := range values {
			v, err := c.ReadVarintUint32()
			if err != nil {
				return nil, err
			}
			values[i] = int32(v) //nolint:gosec
		}
		if c.Offset() != start+meta.ByteLength {
			return nil, fmt.Errorf("%w: varint stream consumed %d bytes, metadata declares %d",
				errs.ErrMalformedStream, c.Offset()-start, meta.ByteLength)
		}
	case format.PhysicalFastPfor:
		var err error
		values, err = fastpfor.Decode(c.Data()[start:start+meta.ByteLength], meta.NumValues)
		if err != nil {
			return nil, err
		}
		if err := c.SetOffset(start + meta.ByteLength); err != nil {
			return nil, err
		}
	case format.PhysicalNone:
		if meta.ByteLength != meta.NumValues*4 {
			return nil, fmt.Errorf("%w: raw stream of %d values declares %d bytes",
				errs.ErrMalformedStream, meta.NumValues, meta.ByteLength)
		}
		values = make([]int32, meta.NumValues)
		for i := range values {
			v, err := c.ReadInt32BE()
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
	default:
		return nil, fmt.Errorf("%w: physical technique %s", errs.ErrUnsupportedTechnique, meta.PhysicalTechnique)
	}

	return values, nil
}

// expandRuns expands an RLE stream of runs followed by run values into
// meta.DecompressedCount() elements.
func expandRuns(values []int32, meta *Metadata) ([]int32, error) {
	if meta.Rle == nil {
		return nil, fmt.Errorf("%w: RLE technique without run metadata", errs.ErrMalformedStream)
	}

	// The physical stream is runs lengths followed by runs values.
	runs := meta.Rle.Runs
	if runs < 0 || len(values) != 2*runs {
		return nil, fmt.Errorf("%w: %d runs in a stream of %d values", errs.ErrMalformedStream, runs, len(values))
	}

	out := make([]int32, 0, meta.Rle.NumRleValues)
	for i := 0; i < runs; i++ {
		runLength := int(values[i])
		if runLength < 0 || len(out)+runLength > meta.Rle.NumRleValues {
			return nil, fmt.Errorf("%w: run of %d values overflows %d declared elements",
				errs.ErrMalformedStream, runLength, meta.Rle.NumRleValues)
		}
		value := values[runs+i]
		for j := 0; j < runLength; j++ {
			out = append(out, value)
		}
	}

	if len(out) != meta.Rle.NumRleValues {
		return nil, fmt.Errorf("%w: runs expand to %d values, metadata declares %d",
			errs.ErrMalformedStream, len(out), meta.Rle.NumRleValues)
	}

	return out, nil
}
