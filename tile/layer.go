package tile

import (
	"fmt"
	"iter"

	"github.com/arloliu/mlt/errs"
	"github.com/arloliu/mlt/format"
	"github.com/arloliu/mlt/geometry"
)

// Layer is the virtual layer view of a feature table, shaped like common
// vector-tile layer consumers expect: a length, indexed feature access, and
// an iteration protocol.
//
// Feature objects are created on demand and hold their index, a
// back-reference to the table, their id, geometry type and properties, and
// their coordinates once read.
type Layer struct {
	table *FeatureTable
}

// Name returns the layer name.
func (l *Layer) Name() string {
	return l.table.name
}

// Extent returns the tile-space extent.
func (l *Layer) Extent() int {
	return l.table.extent
}

// Length returns the feature count.
func (l *Layer) Length() int {
	return l.table.NumFeatures()
}

// Feature constructs the feature at index i.
//
// The feature's id, geometry type, and properties are materialized
// immediately; coordinates stay lazy until first read. Indices outside
// [0, Length()) fail with an out-of-range error.
func (l *Layer) Feature(i int) (*Feature, error) {
	if i < 0 || i >= l.Length() {
		return nil, fmt.Errorf("%w: feature %d of %d", errs.ErrOutOfRange, i, l.Length())
	}

	geomType, err := l.table.GeometryType(i)
	if err != nil {
		return nil, err
	}

	f := &Feature{
		table:    l.table,
		index:    i,
		geomType: geomType,
	}
	f.id, f.hasID = l.table.ids.Value(i)

	if len(l.table.properties) > 0 {
		f.properties = make(map[string]any, len(l.table.properties))
		for _, col := range l.table.properties {
			if v, ok := col.Value(i); ok {
				f.properties[col.Name()] = v
			}
		}
	}

	return f, nil
}

// All returns an iterator over (index, feature) in feature order.
//
// The iterator advances its own index and owns no shared state on the
// layer, so multiple iterations are independent.
func (l *Layer) All() iter.Seq2[int, *Feature] {
	return func(yield func(int, *Feature) bool) {
		for i := 0; i < l.Length(); i++ {
			f, err := l.Feature(i)
			if err != nil {
				return
			}
			if !yield(i, f) {
				return
			}
		}
	}
}

// Feature is one feature of a virtual layer. It is an ephemeral value: an
// index, a shared read-only pointer to its table, the feature's
// materialized id, geometry type and properties, and its cached coordinates.
type Feature struct {
	table *FeatureTable
	index int

	id    uint64
	hasID bool

	geomType format.GeometryType

	properties map[string]any

	coords       geometry.Coordinates
	coordsLoaded bool
}

// Index returns the feature's index within its layer.
func (f *Feature) Index() int {
	return f.index
}

// ID returns the feature id and whether one is present.
func (f *Feature) ID() (uint64, bool) {
	return f.id, f.hasID
}

// GeometryType returns the feature's geometry kind. It never triggers
// vertex decoding.
func (f *Feature) GeometryType() format.GeometryType {
	return f.geomType
}

// Coordinates resolves the feature's coordinates through the table's lazy
// resolver on first read and caches them on the feature instance.
func (f *Feature) Coordinates() (geometry.Coordinates, error) {
	if f.coordsLoaded {
		return f.coords, nil
	}

	coords, err := f.table.coordinates(f.index)
	if err != nil {
		return nil, err
	}
	f.coords = coords
	f.coordsLoaded = true

	return coords, nil
}

// Properties returns the feature's materialized properties; absent values
// are omitted. The returned map is owned by the feature.
func (f *Feature) Properties() map[string]any {
	return f.properties
}
