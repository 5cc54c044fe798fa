// Package stream decodes the typed integer streams an MLT column is built
// from.
//
// Every stream is prefixed by a small metadata record describing its physical
// layout (varint, FastPFOR, raw words), the logical transforms layered on top
// (RLE, delta, componentwise delta, Morton), and the exact byte length of the
// payload. Decoders consume the payload and leave the cursor exactly
// byteLength past the payload start; concatenated streams depend on that.
package stream

import (
	"fmt"

	"github.com/arloliu/mlt/cursor"
	"github.com/arloliu/mlt/errs"
	"github.com/arloliu/mlt/format"
)

// Logical stream type discriminants carried in the high nibble of the first
// metadata byte. A non-zero discriminant announces one refinement byte after
// the stream type byte.
const (
	logicalNone       = 0x0
	logicalDictionary = 0x1
	logicalLength     = 0x2
	logicalOffset     = 0x3
)

// RleMetadata carries the run structure of an RLE-encoded stream.
type RleMetadata struct {
	// Runs is the number of runs in the physical stream.
	Runs int
	// NumRleValues is the element count after run expansion.
	NumRleValues int
}

// MortonMetadata carries the Z-order packing parameters of a Morton stream.
type MortonMetadata struct {
	// NumBits is the total bit count of the interleaved code.
	NumBits int
	// CoordinateShift is subtracted from each decoded axis value.
	CoordinateShift int
}

// Metadata describes one integer stream. It is decoded immediately before
// the stream payload and is immutable afterwards.
type Metadata struct {
	PhysicalType format.PhysicalStreamType

	// Refinements of the physical type; only the one matching PhysicalType
	// is meaningful.
	Dictionary format.DictionaryType
	Length     format.LengthType
	Offset     format.OffsetType

	Technique1        format.LogicalTechnique
	Technique2        format.LogicalTechnique
	PhysicalTechnique format.PhysicalTechnique

	// NumValues is the element count of the physical stream.
	NumValues int
	// ByteLength is the exact payload size in bytes.
	ByteLength int

	Rle    *RleMetadata
	Morton *MortonMetadata
}

// DecompressedCount returns the element count after the logical cascade:
// the run-expanded count for RLE streams, NumValues otherwise.
func (m *Metadata) DecompressedCount() int {
	if m.Rle != nil {
		return m.Rle.NumRleValues
	}

	return m.NumValues
}

func (m *Metadata) hasRle() bool {
	return m.Technique1 == format.TechniqueRle || m.Technique2 == format.TechniqueRle
}

// DecodeMetadata reads one stream metadata record and advances the cursor
// past it, leaving it at the first payload byte.
func DecodeMetadata(c *cursor.Cursor) (*Metadata, error) {
	streamType, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}

	m := &Metadata{
		PhysicalType: format.PhysicalStreamType(streamType & 0x0f),
	}

	switch streamType >> 4 {
	case logicalNone:
	case logicalDictionary:
		b, err := c.ReadUint8()
		if err != nil {
			return nil, err
		}
		m.Dictionary = format.DictionaryType(b)
	case logicalLength:
		b, err := c.ReadUint8()
		if err != nil {
			return nil, err
		}
		m.Length = format.LengthType(b)
	case logicalOffset:
		b, err := c.ReadUint8()
		if err != nil {
			return nil, err
		}
		m.Offset = format.OffsetType(b)
	default:
		return nil, fmt.Errorf("%w: logical stream discriminant %d", errs.ErrMalformedStream, streamType>>4)
	}

	techniques, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	m.Technique1 = format.LogicalTechnique(techniques >> 5)
	m.Technique2 = format.LogicalTechnique((techniques >> 2) & 0x7)
	m.PhysicalTechnique = format.PhysicalTechnique(techniques & 0x3)

	numValues, err := c.ReadVarintUint32()
	if err != nil {
		return nil, err
	}
	byteLength, err := c.ReadVarintUint32()
	if err != nil {
		return nil, err
	}
	m.NumValues = int(numValues)
	m.ByteLength = int(byteLength)

	if m.hasRle() {
		runs, err := c.ReadVarintUint32()
		if err != nil {
			return nil, err
		}
		rleValues, err := c.ReadVarintUint32()
		if err != nil {
			return nil, err
		}
		m.Rle = &RleMetadata{Runs: int(runs), NumRleValues: int(rleValues)}
	}

	if m.Technique1 == format.TechniqueMorton {
		numBits, err := c.ReadVarintUint32()
		if err != nil {
			return nil, err
		}
		shift, err := c.ReadVarintUint32()
		if err != nil {
			return nil, err
		}
		m.Morton = &MortonMetadata{NumBits: int(numBits), CoordinateShift: int(shift)}
	}

	return m, nil
}

// AppendTo appends the wire representation of m to buf and returns the
// extended slice. It is the exact inverse of DecodeMetadata and exists for
// tests and tile tooling.
func (m *Metadata) AppendTo(buf []byte) []byte {
	discriminant := byte(logicalNone)
	var refinement byte
	hasRefinement := true

	switch m.PhysicalType {
	case format.StreamData:
		discriminant = logicalDictionary
		refinement = byte(m.Dictionary)
	case format.StreamLength:
		discriminant = logicalLength
		refinement = byte(m.Length)
	case format.StreamOffset:
		discriminant = logicalOffset
		refinement = byte(m.Offset)
	default:
		hasRefinement = false
	}

	buf = append(buf, byte(m.PhysicalType)&0x0f|discriminant<<4)
	if hasRefinement {
		buf = append(buf, refinement)
	}

	buf = append(buf, byte(m.Technique1)<<5|byte(m.Technique2)<<2|byte(m.PhysicalTechnique))
	buf = appendVarint(buf, uint32(m.NumValues))  //nolint:gosec
	buf = appendVarint(buf, uint32(m.ByteLength)) //nolint:gosec

	if m.hasRle() {
		rle := m.Rle
		if rle == nil {
			rle = &RleMetadata{}
		}
		buf = appendVarint(buf, uint32(rle.Runs))         //nolint:gosec
		buf = appendVarint(buf, uint32(rle.NumRleValues)) //nolint:gosec
	}

	if m.Technique1 == format.TechniqueMorton {
		morton := m.Morton
		if morton == nil {
			morton = &MortonMetadata{}
		}
		buf = appendVarint(buf, uint32(morton.NumBits))         //nolint:gosec
		buf = appendVarint(buf, uint32(morton.CoordinateShift)) //nolint:gosec
	}

	return buf
}

func appendVarint(buf []byte, v uint32) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}

	return append(buf, byte(v))
}
