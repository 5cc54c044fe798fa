package tile

import (
	"math"

	"github.com/arloliu/mlt/internal/hash"
)

// ColumnID converts a layer or property column name to its 64-bit hash
// identifier, letting hot lookup paths avoid string comparisons.
//
// The hash is deterministic across tiles, so IDs can be precomputed for
// frequently queried columns:
//
//	classID := tile.ColumnID("class")
//	col, ok := table.PropertyColumnByID(classID)
func ColumnID(name string) uint64 {
	return hash.ID(name)
}

// PropertyColumn is the read interface the feature table needs from a
// decoded property column. Wire decoding of property columns happens
// outside this module; any decoded column that can answer per-feature
// values plugs in here.
type PropertyColumn interface {
	// Name returns the column name as written by the tile encoder.
	Name() string

	// Value returns the value at feature index i and whether it is
	// present. Absent values are omitted from feature properties.
	Value(i int) (any, bool)
}

// scalarColumn is the shared shape of the typed in-memory property columns:
// a flat value slice plus an optional presence mask.
type scalarColumn[T any] struct {
	name    string
	values  []T
	present []bool
}

func (c *scalarColumn[T]) Name() string {
	return c.name
}

func (c *scalarColumn[T]) Value(i int) (any, bool) {
	if i < 0 || i >= len(c.values) {
		return nil, false
	}
	if c.present != nil && !c.present[i] {
		return nil, false
	}

	return c.values[i], true
}

// NewInt32Column creates an int32 property column. A nil present mask means
// every value is present.
func NewInt32Column(name string, values []int32, present []bool) PropertyColumn {
	return &scalarColumn[int32]{name: name, values: values, present: present}
}

// NewInt64Column creates an int64 property column.
func NewInt64Column(name string, values []int64, present []bool) PropertyColumn {
	return &scalarColumn[int64]{name: name, values: values, present: present}
}

// NewFloat64Column creates a float64 property column.
func NewFloat64Column(name string, values []float64, present []bool) PropertyColumn {
	return &scalarColumn[float64]{name: name, values: values, present: present}
}

// NewBoolColumn creates a bool property column.
func NewBoolColumn(name string, values []bool, present []bool) PropertyColumn {
	return &scalarColumn[bool]{name: name, values: values, present: present}
}

// NewStringColumn creates a string property column.
func NewStringColumn(name string, values []string, present []bool) PropertyColumn {
	return &scalarColumn[string]{name: name, values: values, present: present}
}

// constColumn repeats one value for every feature.
type constColumn struct {
	name  string
	value any
	count int
}

func (c *constColumn) Name() string {
	return c.name
}

func (c *constColumn) Value(i int) (any, bool) {
	if i < 0 || i >= c.count {
		return nil, false
	}

	return c.value, true
}

// NewConstColumn creates a property column whose count features all share
// one value.
func NewConstColumn(name string, value any, count int) PropertyColumn {
	return &constColumn{name: name, value: value, count: count}
}

// IDColumn holds per-feature identifiers. Ids may use the full u64 range;
// Is32BitSafe reports whether every present id fits 32 bits, mirroring
// consumers that widen ids into floating-point feature numbers.
type IDColumn struct {
	values  []uint64
	present []bool
}

// NewIDColumn creates an id column. A nil present mask means every feature
// has an id.
func NewIDColumn(values []uint64, present []bool) *IDColumn {
	return &IDColumn{values: values, present: present}
}

// Value returns the id at feature index i and whether it is present.
func (c *IDColumn) Value(i int) (uint64, bool) {
	if c == nil || i < 0 || i >= len(c.values) {
		return 0, false
	}
	if c.present != nil && !c.present[i] {
		return 0, false
	}

	return c.values[i], true
}

// Is32BitSafe reports whether every present id fits in 32 bits.
func (c *IDColumn) Is32BitSafe() bool {
	if c == nil {
		return true
	}
	for i, v := range c.values {
		if c.present != nil && !c.present[i] {
			continue
		}
		if v > math.MaxUint32 {
			return false
		}
	}

	return true
}
