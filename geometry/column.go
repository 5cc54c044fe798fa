package geometry

import (
	"fmt"

	"github.com/arloliu/mlt/cursor"
	"github.com/arloliu/mlt/errs"
	"github.com/arloliu/mlt/format"
	"github.com/arloliu/mlt/stream"
)

// IsConstTypeStream reports whether a geometry-type stream collapses to a
// single scalar: one RLE run covering every feature.
func IsConstTypeStream(meta *stream.Metadata) bool {
	return meta.Rle != nil && meta.Rle.Runs == 1
}

// DecodeColumn decodes a whole geometry column: the geometry-type stream
// followed by numStreams-1 topology and vertex streams, dispatched on each
// stream's metadata. The cursor must sit at the column's first stream and
// ends just past its last payload byte.
func DecodeColumn(c *cursor.Cursor, numStreams, numFeatures int) (*FlatVector, error) {
	if numStreams < 1 {
		return nil, fmt.Errorf("%w: geometry column with %d streams", errs.ErrMalformedStream, numStreams)
	}

	typeMeta, err := stream.DecodeMetadata(c)
	if err != nil {
		return nil, err
	}

	constType := IsConstTypeStream(typeMeta)
	var types []int32
	var singleType int32
	if constType {
		singleType, err = stream.DecodeConstIntStream(c, typeMeta, false)
		if err != nil {
			return nil, err
		}
	} else {
		types, err = stream.DecodeIntStream(c, typeMeta, false)
		if err != nil {
			return nil, err
		}
		if len(types) != numFeatures {
			return nil, fmt.Errorf("%w: %d geometry types for %d features", errs.ErrMalformedStream, len(types), numFeatures)
		}
	}

	var topology Topology
	vertices := VertexBuffer{Type: format.VertexVec2}

	for s := 1; s < numStreams; s++ {
		meta, err := stream.DecodeMetadata(c)
		if err != nil {
			return nil, err
		}

		switch meta.PhysicalType {
		case format.StreamLength:
			offsets, err := stream.DecodeLengthStreamToOffsetBuffer(c, meta)
			if err != nil {
				return nil, err
			}
			switch meta.Length {
			case format.LengthGeometries:
				topology.GeometryOffsets = offsets
			case format.LengthParts:
				topology.PartOffsets = offsets
			case format.LengthRings:
				topology.RingOffsets = offsets
			default:
				return nil, fmt.Errorf("%w: length stream kind %s in geometry column", errs.ErrMalformedStream, meta.Length)
			}
		case format.StreamOffset:
			if meta.Offset != format.OffsetVertex {
				return nil, fmt.Errorf("%w: offset stream kind %s in geometry column", errs.ErrMalformedStream, meta.Offset)
			}
			vertices.Offsets, err = stream.DecodeIntStream(c, meta, false)
			if err != nil {
				return nil, err
			}
		case format.StreamData:
			switch meta.Dictionary {
			case format.DictionaryVertex:
				vertices.Type = format.VertexVec2
				vertices.Data, err = stream.DecodeIntStream(c, meta, true)
				if err != nil {
					return nil, err
				}
			case format.DictionaryMorton:
				if meta.Morton == nil {
					return nil, fmt.Errorf("%w: morton vertex stream", errs.ErrMissingMortonSettings)
				}
				vertices.Type = format.VertexMorton
				vertices.Morton = &MortonSettings{
					NumBits:         meta.Morton.NumBits,
					CoordinateShift: meta.Morton.CoordinateShift,
				}
				vertices.Data, err = stream.DecodeIntStream(c, meta, false)
				if err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("%w: data stream kind %s in geometry column", errs.ErrMalformedStream, meta.Dictionary)
			}
		default:
			return nil, fmt.Errorf("%w: stream type %s in geometry column", errs.ErrMalformedStream, meta.PhysicalType)
		}
	}

	if constType {
		gt, ok := geometryTypeOf(singleType)
		if !ok {
			return nil, fmt.Errorf("%w: geometry type %d", errs.ErrUnsupportedGeometry, singleType)
		}

		return NewConstFlatVector(gt, numFeatures, topology, vertices)
	}

	return NewFlatVector(types, topology, vertices)
}

// DecodeTypeColumn decodes only the geometry-type stream of a column,
// returning either the constant type (isConst true) or the per-feature types.
// The cursor ends just past the type stream's payload.
func DecodeTypeColumn(c *cursor.Cursor, numFeatures int) (constType format.GeometryType, types []int32, isConst bool, err error) {
	meta, err := stream.DecodeMetadata(c)
	if err != nil {
		return 0, nil, false, err
	}

	if IsConstTypeStream(meta) {
		raw, err := stream.DecodeConstIntStream(c, meta, false)
		if err != nil {
			return 0, nil, false, err
		}
		gt, ok := geometryTypeOf(raw)
		if !ok {
			return 0, nil, false, fmt.Errorf("%w: geometry type %d", errs.ErrUnsupportedGeometry, raw)
		}

		return gt, nil, true, nil
	}

	types, err = stream.DecodeIntStream(c, meta, false)
	if err != nil {
		return 0, nil, false, err
	}
	if len(types) != numFeatures {
		return 0, nil, false, fmt.Errorf("%w: %d geometry types for %d features", errs.ErrMalformedStream, len(types), numFeatures)
	}

	return 0, types, false, nil
}
