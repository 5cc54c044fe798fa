package geometry

import (
	"fmt"

	"github.com/arloliu/mlt/errs"
	"github.com/arloliu/mlt/format"
)

// Vector is a decoded geometry column in one of its in-memory
// representations.
//
// Two representations exist: the CPU-oriented FlatVector that keeps the raw
// topology and vertex buffers, and the GPU-oriented GPUVector whose
// tessellated layout interleaves features. SingleDecodable is the capability
// flag consumers branch on: a representation that cannot decode one feature
// in isolation forces bulk materialization.
type Vector interface {
	// NumGeometries returns the feature count.
	NumGeometries() int

	// GeometryType returns the geometry kind of the feature at index i.
	GeometryType(i int) (format.GeometryType, error)

	// SingleDecodable reports whether one feature's coordinates can be
	// decoded without decoding the rest of the column.
	SingleDecodable() bool

	// Geometries decodes every feature's coordinates in feature order.
	Geometries() ([]Coordinates, error)
}

// Topology holds the optional offset arrays of a geometry column. A nil
// slice means the level is absent. Present arrays have one more entry than
// the units they partition and are monotonically non-decreasing.
type Topology struct {
	// GeometryOffsets partitions the next present level into per-feature
	// (multi-)geometries.
	GeometryOffsets []int32
	// PartOffsets partitions rings (polygon vectors) or vertices (line
	// vectors) per part.
	PartOffsets []int32
	// RingOffsets partitions vertices per ring.
	RingOffsets []int32
}

// VertexBuffer holds the vertex storage of a geometry column.
type VertexBuffer struct {
	// Type selects the Data layout: interleaved x,y pairs or Z-order codes.
	Type format.VertexBufferType
	// Data is the flat vertex storage.
	Data []int32
	// Offsets optionally indirects vertex lookups so duplicate vertices
	// share storage. Values are vertex indices into Data.
	Offsets []int32
	// Morton must be set when Type is VertexMorton.
	Morton *MortonSettings
}

// numSlots returns the number of addressable vertex slots.
func (vb *VertexBuffer) numSlots() int {
	if len(vb.Offsets) > 0 {
		return len(vb.Offsets)
	}
	if vb.Type == format.VertexMorton {
		return len(vb.Data)
	}

	return len(vb.Data) / 2
}

// vertexAt resolves the vertex slot at index slot, applying the dictionary
// indirection and Morton unpacking as configured.
func (vb *VertexBuffer) vertexAt(slot int) Point {
	idx := slot
	if len(vb.Offsets) > 0 {
		idx = int(vb.Offsets[slot])
	}

	if vb.Type == format.VertexMorton {
		return DecodeMortonCode(vb.Data[idx], *vb.Morton)
	}

	return Point{X: vb.Data[idx*2], Y: vb.Data[idx*2+1]}
}

// FlatVector is the CPU representation of a geometry column: per-feature
// geometry types (or one constant type), the topology offsets, and the
// vertex buffer. It supports single-feature decoding.
//
// A FlatVector is immutable after construction.
type FlatVector struct {
	numGeometries int

	singleType bool
	constType  format.GeometryType
	types      []int32

	topology Topology
	vertices VertexBuffer

	containsPolygon bool
}

var _ Vector = (*FlatVector)(nil)

// NewFlatVector creates a mixed-type flat vector with one geometry type per
// feature.
func NewFlatVector(types []int32, topology Topology, vertices VertexBuffer) (*FlatVector, error) {
	v := &FlatVector{
		numGeometries: len(types),
		types:         types,
		topology:      topology,
		vertices:      vertices,
	}

	for _, t := range types {
		gt, ok := geometryTypeOf(t)
		if !ok {
			return nil, fmt.Errorf("%w: geometry type %d", errs.ErrUnsupportedGeometry, t)
		}
		if gt.IsPolygon() {
			v.containsPolygon = true
		}
	}

	if err := v.validateVertexConfig(); err != nil {
		return nil, err
	}

	return v, nil
}

// NewConstFlatVector creates a single-type flat vector whose features all
// share one geometry kind.
func NewConstFlatVector(geometryType format.GeometryType, numGeometries int, topology Topology, vertices VertexBuffer) (*FlatVector, error) {
	if _, ok := geometryTypeOf(int32(geometryType)); !ok {
		return nil, fmt.Errorf("%w: geometry type %d", errs.ErrUnsupportedGeometry, geometryType)
	}

	v := &FlatVector{
		numGeometries:   numGeometries,
		singleType:      true,
		constType:       geometryType,
		topology:        topology,
		vertices:        vertices,
		containsPolygon: geometryType.IsPolygon(),
	}

	if err := v.validateVertexConfig(); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *FlatVector) validateVertexConfig() error {
	if v.vertices.Type == format.VertexMorton && v.vertices.Morton == nil {
		return fmt.Errorf("%w: vertex buffer is Morton encoded", errs.ErrMissingMortonSettings)
	}

	return nil
}

// NumGeometries returns the feature count.
func (v *FlatVector) NumGeometries() int {
	return v.numGeometries
}

// IsSingleType reports whether every feature shares one geometry kind.
func (v *FlatVector) IsSingleType() bool {
	return v.singleType
}

// ContainsPolygon reports whether any feature is a polygon or multipolygon,
// which decides whether PartOffsets partitions rings or vertices.
func (v *FlatVector) ContainsPolygon() bool {
	return v.containsPolygon
}

// GeometryType returns the geometry kind of the feature at index i.
func (v *FlatVector) GeometryType(i int) (format.GeometryType, error) {
	if i < 0 || i >= v.numGeometries {
		return 0, fmt.Errorf("%w: index %d of %d geometries", errs.ErrOutOfRange, i, v.numGeometries)
	}
	if v.singleType {
		return v.constType, nil
	}

	gt, ok := geometryTypeOf(v.types[i])
	if !ok {
		return 0, fmt.Errorf("%w: geometry type %d at index %d", errs.ErrUnsupportedGeometry, v.types[i], i)
	}

	return gt, nil
}

// SingleDecodable reports true: a flat vector can decode any feature in
// isolation from its offset arrays.
func (v *FlatVector) SingleDecodable() bool {
	return true
}

// GPUVector is a render-optimized geometry representation whose tessellated
// buffers interleave features; it can only materialize all coordinates at
// once.
type GPUVector struct {
	types       []int32
	coordinates []Coordinates
}

var _ Vector = (*GPUVector)(nil)

// NewGPUVector wraps pre-tessellated per-feature coordinates with their
// geometry types. len(types) and len(coordinates) must match.
func NewGPUVector(types []int32, coordinates []Coordinates) (*GPUVector, error) {
	if len(types) != len(coordinates) {
		return nil, fmt.Errorf("%w: %d types for %d coordinate sets", errs.ErrUnsupportedGeometry, len(types), len(coordinates))
	}

	for _, t := range types {
		if _, ok := geometryTypeOf(t); !ok {
			return nil, fmt.Errorf("%w: geometry type %d", errs.ErrUnsupportedGeometry, t)
		}
	}

	return &GPUVector{types: types, coordinates: coordinates}, nil
}

// NumGeometries returns the feature count.
func (v *GPUVector) NumGeometries() int {
	return len(v.types)
}

// GeometryType returns the geometry kind of the feature at index i.
func (v *GPUVector) GeometryType(i int) (format.GeometryType, error) {
	if i < 0 || i >= len(v.types) {
		return 0, fmt.Errorf("%w: index %d of %d geometries", errs.ErrOutOfRange, i, len(v.types))
	}

	gt, _ := geometryTypeOf(v.types[i])

	return gt, nil
}

// SingleDecodable reports false: the tessellated layout cannot decode one
// feature in isolation.
func (v *GPUVector) SingleDecodable() bool {
	return false
}

// Geometries returns every feature's coordinates.
func (v *GPUVector) Geometries() ([]Coordinates, error) {
	return v.coordinates, nil
}
