// Package tile exposes decoded MLT columns as renderer-facing feature
// tables and virtual layers.
//
// A feature table owns a geometry source (a decoded geometry vector or a
// deferred geometry column), an optional id column, and property columns.
// Geometry work is deferred twice: the deferred column delays all vertex
// decoding until coordinates are demanded, and the lazy resolver on top
// switches between per-feature decoding and one bulk materialization based
// on the observed access pattern.
package tile

import (
	"fmt"

	"github.com/arloliu/mlt/compress"
	"github.com/arloliu/mlt/cursor"
	"github.com/arloliu/mlt/errs"
	"github.com/arloliu/mlt/format"
	"github.com/arloliu/mlt/geometry"
)

// DeferredGeometryColumn holds the raw bytes of an undecoded geometry
// column so consumers can answer geometry-type queries without paying the
// vertex decode cost.
//
// A DeferredGeometryColumn is not safe for concurrent use; its caches
// mutate on first access.
type DeferredGeometryColumn struct {
	data        []byte
	startOffset int
	numStreams  int
	numFeatures int
	scale       float64

	typesDecoded bool
	isConstType  bool
	constType    format.GeometryType
	types        []int32

	vector geometry.Vector
}

// NewDeferredGeometryColumn wraps the geometry column starting at
// startOffset in data, spanning numStreams integer streams for numFeatures
// features.
func NewDeferredGeometryColumn(data []byte, startOffset, numStreams, numFeatures int) *DeferredGeometryColumn {
	return &DeferredGeometryColumn{
		data:        data,
		startOffset: startOffset,
		numStreams:  numStreams,
		numFeatures: numFeatures,
		scale:       1,
	}
}

// NumFeatures returns the feature count, known without any decoding.
func (d *DeferredGeometryColumn) NumFeatures() int {
	return d.numFeatures
}

// Scale returns the optional coordinate scale factor renderers apply when
// the layer extent differs from the render target. Defaults to 1.
func (d *DeferredGeometryColumn) Scale() float64 {
	return d.scale
}

// GeometryType returns the geometry kind of feature i.
//
// The first call decodes only the geometry-type stream and caches the
// result (a scalar for constant columns, an array otherwise); it never
// touches the topology or vertex streams. Subsequent calls are O(1).
func (d *DeferredGeometryColumn) GeometryType(i int) (format.GeometryType, error) {
	if i < 0 || i >= d.numFeatures {
		return 0, fmt.Errorf("%w: index %d of %d features", errs.ErrOutOfRange, i, d.numFeatures)
	}

	if !d.typesDecoded {
		// After a full decode the raw bytes are gone; answer from the
		// decoded vector instead.
		if d.vector != nil {
			return d.vector.GeometryType(i)
		}

		c := cursor.NewAt(d.data, d.startOffset)
		constType, types, isConst, err := geometry.DecodeTypeColumn(c, d.numFeatures)
		if err != nil {
			return 0, err
		}
		d.constType = constType
		d.types = types
		d.isConstType = isConst
		d.typesDecoded = true
	}

	if d.isConstType {
		return d.constType, nil
	}

	return format.GeometryType(d.types[i]), nil //nolint:gosec
}

// Vector fully decodes the geometry column on first call and caches it.
//
// After the vector is handed out the column drops its reference to the raw
// tile bytes so the underlying buffer can be freed.
func (d *DeferredGeometryColumn) Vector() (geometry.Vector, error) {
	if d.vector != nil {
		return d.vector, nil
	}

	c := cursor.NewAt(d.data, d.startOffset)
	vector, err := geometry.DecodeColumn(c, d.numStreams, d.numFeatures)
	if err != nil {
		return nil, err
	}

	d.vector = vector
	d.data = nil

	return d.vector, nil
}

// DecompressTile strips the outer tile compression, returning the raw tile
// buffer the columnar decoder consumes.
func DecompressTile(data []byte, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compression)
	}

	return codec.Decompress(data)
}
