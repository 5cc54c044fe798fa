package tile

import (
	"fmt"

	"github.com/arloliu/mlt/errs"
	"github.com/arloliu/mlt/format"
	"github.com/arloliu/mlt/geometry"
	"github.com/arloliu/mlt/internal/hash"
	ioptions "github.com/arloliu/mlt/internal/options"
)

// DefaultExtent is the tile-space extent assumed when the tile metadata
// does not override it.
const DefaultExtent = 4096

// FeatureTable combines a geometry source, an optional id column, and
// property columns into one per-layer table.
//
// Exactly one geometry source must be supplied: an already-decoded geometry
// vector, or a deferred geometry column whose vertex decode is postponed
// until coordinates are demanded.
//
// A FeatureTable is not safe for concurrent use; the resolver and deferred
// caches mutate on access. Tables built from independent tile buffers are
// independent.
type FeatureTable struct {
	name   string
	extent int

	vector   geometry.Vector
	deferred *DeferredGeometryColumn

	ids        *IDColumn
	properties []PropertyColumn
	propsByID  map[uint64]int

	resolver *lazyResolver
}

// FeatureTableOption configures a FeatureTable.
type FeatureTableOption = ioptions.Option[*FeatureTable]

// WithName sets the layer name the table was decoded from.
func WithName(name string) FeatureTableOption {
	return ioptions.NoError(func(t *FeatureTable) {
		t.name = name
	})
}

// WithExtent overrides the tile-space extent (default 4096).
func WithExtent(extent int) FeatureTableOption {
	return ioptions.New(func(t *FeatureTable) error {
		if extent <= 0 {
			return fmt.Errorf("extent must be positive, got %d", extent)
		}
		t.extent = extent

		return nil
	})
}

// WithIDColumn attaches the per-feature id column.
func WithIDColumn(ids *IDColumn) FeatureTableOption {
	return ioptions.NoError(func(t *FeatureTable) {
		t.ids = ids
	})
}

// WithPropertyColumns attaches decoded property columns in order.
func WithPropertyColumns(columns ...PropertyColumn) FeatureTableOption {
	return ioptions.NoError(func(t *FeatureTable) {
		t.properties = append(t.properties, columns...)
	})
}

// NewFeatureTable creates a feature table over an already-decoded geometry
// vector.
func NewFeatureTable(vector geometry.Vector, opts ...FeatureTableOption) (*FeatureTable, error) {
	if vector == nil {
		return nil, fmt.Errorf("%w", errs.ErrMissingGeometry)
	}

	return newFeatureTable(vector, nil, opts...)
}

// NewDeferredFeatureTable creates a feature table over a deferred geometry
// column; vertex decoding happens on first coordinate access.
func NewDeferredFeatureTable(deferred *DeferredGeometryColumn, opts ...FeatureTableOption) (*FeatureTable, error) {
	if deferred == nil {
		return nil, fmt.Errorf("%w", errs.ErrMissingGeometry)
	}

	return newFeatureTable(nil, deferred, opts...)
}

func newFeatureTable(vector geometry.Vector, deferred *DeferredGeometryColumn, opts ...FeatureTableOption) (*FeatureTable, error) {
	t := &FeatureTable{
		extent:   DefaultExtent,
		vector:   vector,
		deferred: deferred,
	}
	if err := ioptions.Apply(t, opts...); err != nil {
		return nil, err
	}

	t.propsByID = make(map[uint64]int, len(t.properties))
	for i, col := range t.properties {
		t.propsByID[hash.ID(col.Name())] = i
	}

	t.resolver = newLazyResolver(vector, deferred)

	return t, nil
}

// Name returns the layer name.
func (t *FeatureTable) Name() string {
	return t.name
}

// Extent returns the tile-space extent.
func (t *FeatureTable) Extent() int {
	return t.extent
}

// NumFeatures returns the feature count of the geometry source.
func (t *FeatureTable) NumFeatures() int {
	if t.deferred != nil {
		return t.deferred.NumFeatures()
	}

	return t.vector.NumGeometries()
}

// GeometryType returns the geometry kind of feature i without triggering
// vertex decoding.
func (t *FeatureTable) GeometryType(i int) (format.GeometryType, error) {
	if t.deferred != nil {
		return t.deferred.GeometryType(i)
	}

	return t.vector.GeometryType(i)
}

// IDColumn returns the id column, or nil when features carry no ids.
func (t *FeatureTable) IDColumn() *IDColumn {
	return t.ids
}

// PropertyColumn returns the property column with the given name.
func (t *FeatureTable) PropertyColumn(name string) (PropertyColumn, bool) {
	return t.PropertyColumnByID(hash.ID(name))
}

// PropertyColumnByID returns the property column with the given hashed
// name, typically precomputed with ColumnID.
func (t *FeatureTable) PropertyColumnByID(id uint64) (PropertyColumn, bool) {
	i, ok := t.propsByID[id]
	if !ok {
		return nil, false
	}

	return t.properties[i], true
}

// GetLayer returns the virtual layer view of the table.
func (t *FeatureTable) GetLayer() *Layer {
	return &Layer{table: t}
}

// coordinates resolves feature coordinates through the lazy resolver.
func (t *FeatureTable) coordinates(i int) (geometry.Coordinates, error) {
	coords, err := t.resolver.coordinates(i)
	if err != nil {
		return nil, err
	}

	// Once the resolver has pulled the vector out of the deferred column,
	// drop the table's reference so the raw byte range can be freed.
	if t.deferred != nil && t.resolver.vector != nil {
		t.vector = t.resolver.vector
		t.deferred = nil
	}

	return coords, nil
}
