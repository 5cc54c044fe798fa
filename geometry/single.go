package geometry

import (
	"fmt"

	"github.com/arloliu/mlt/errs"
	"github.com/arloliu/mlt/format"
)

// ConvertSingleGeometry decodes exactly one feature's coordinates without
// decoding the rest of the column.
//
// For every valid index the result is structurally equal to Geometries()[i].
// When the offset arrays required for the targeted kind are absent (for
// example a multipoint feature in a vector without geometry offsets), the
// extractor falls back to the bulk conversion and indexes its result.
func (v *FlatVector) ConvertSingleGeometry(i int) (Coordinates, error) {
	if i < 0 || i >= v.numGeometries {
		return nil, fmt.Errorf("%w: index %d of %d geometries", errs.ErrOutOfRange, i, v.numGeometries)
	}

	geomType, err := v.GeometryType(i)
	if err != nil {
		return nil, err
	}

	topo := &v.topology

	// The feature's unit range at the level below GeometryOffsets. Without
	// geometry offsets each feature owns exactly one top-level unit.
	topStart, topEnd := i, i+1
	if topo.GeometryOffsets != nil {
		if i+1 >= len(topo.GeometryOffsets) {
			return nil, fmt.Errorf("%w: geometry offset entry %d of %d", errs.ErrMalformedStream, i, len(topo.GeometryOffsets))
		}
		topStart = int(topo.GeometryOffsets[i])
		topEnd = int(topo.GeometryOffsets[i+1])
	}

	switch geomType {
	case format.GeometryPoint, format.GeometryMultiPoint:
		if geomType == format.GeometryMultiPoint && topo.GeometryOffsets == nil {
			return v.bulkIndex(i)
		}

		return v.singlePoints(topStart, topEnd)
	case format.GeometryLineString:
		if topo.PartOffsets == nil {
			return v.bulkIndex(i)
		}

		start, err := v.topToVertex(topStart)
		if err != nil {
			return nil, err
		}
		end, err := v.topToVertex(topEnd)
		if err != nil {
			return nil, err
		}

		line, err := v.readSlots(start, end, false)
		if err != nil {
			return nil, err
		}

		return Coordinates{line}, nil
	case format.GeometryMultiLineString:
		if topo.GeometryOffsets == nil || topo.PartOffsets == nil {
			return v.bulkIndex(i)
		}

		return v.singleLineStrings(topStart, topEnd)
	case format.GeometryPolygon, format.GeometryMultiPolygon:
		if topo.PartOffsets == nil || topo.RingOffsets == nil {
			return v.bulkIndex(i)
		}
		if geomType == format.GeometryMultiPolygon && topo.GeometryOffsets == nil {
			return v.bulkIndex(i)
		}

		return v.singlePolygons(topStart, topEnd)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedGeometry, geomType)
	}
}

// bulkIndex is the documented fallback: decode everything, index the result.
func (v *FlatVector) bulkIndex(i int) (Coordinates, error) {
	all, err := v.Geometries()
	if err != nil {
		return nil, err
	}

	return all[i], nil
}

// topToVertex maps an index at the level below GeometryOffsets down to a
// vertex slot through whichever lower levels exist.
func (v *FlatVector) topToVertex(idx int) (int, error) {
	topo := &v.topology

	if topo.PartOffsets != nil {
		if idx >= len(topo.PartOffsets) {
			return 0, fmt.Errorf("%w: part offset entry %d of %d", errs.ErrMalformedStream, idx, len(topo.PartOffsets))
		}
		idx = int(topo.PartOffsets[idx])
	}

	return v.partToVertex(idx)
}

// partToVertex maps an index at the level below PartOffsets down to a
// vertex slot.
func (v *FlatVector) partToVertex(idx int) (int, error) {
	topo := &v.topology

	if topo.RingOffsets != nil {
		if idx >= len(topo.RingOffsets) {
			return 0, fmt.Errorf("%w: ring offset entry %d of %d", errs.ErrMalformedStream, idx, len(topo.RingOffsets))
		}
		idx = int(topo.RingOffsets[idx])
	}

	return idx, nil
}

// readSlots reads the vertex slots [start, end), optionally closing the
// resulting ring.
func (v *FlatVector) readSlots(start, end int, closeRing bool) (Ring, error) {
	if start < 0 || end < start || end > v.vertices.numSlots() {
		return nil, fmt.Errorf("%w: vertex slots %d..%d of %d", errs.ErrMalformedStream, start, end, v.vertices.numSlots())
	}

	n := end - start
	ring := make(Ring, n, n+1)
	for k := range ring {
		ring[k] = v.vertices.vertexAt(start + k)
	}
	if closeRing && n > 0 {
		ring = append(ring, ring[0])
	}

	return ring, nil
}

// singlePoints emits one singleton ring per point in the top-level range.
func (v *FlatVector) singlePoints(topStart, topEnd int) (Coordinates, error) {
	start, err := v.topToVertex(topStart)
	if err != nil {
		return nil, err
	}
	end, err := v.topToVertex(topEnd)
	if err != nil {
		return nil, err
	}

	slots, err := v.readSlots(start, end, false)
	if err != nil {
		return nil, err
	}

	coords := make(Coordinates, len(slots))
	for j, p := range slots {
		coords[j] = Ring{p}
	}

	return coords, nil
}

// singleLineStrings emits one unclosed ring per part in the top-level range.
func (v *FlatVector) singleLineStrings(topStart, topEnd int) (Coordinates, error) {
	topo := &v.topology

	coords := make(Coordinates, 0, topEnd-topStart)
	for j := topStart; j < topEnd; j++ {
		if j+1 >= len(topo.PartOffsets) {
			return nil, fmt.Errorf("%w: part offset entry %d of %d", errs.ErrMalformedStream, j, len(topo.PartOffsets))
		}

		start, err := v.partToVertex(int(topo.PartOffsets[j]))
		if err != nil {
			return nil, err
		}
		end, err := v.partToVertex(int(topo.PartOffsets[j+1]))
		if err != nil {
			return nil, err
		}

		line, err := v.readSlots(start, end, false)
		if err != nil {
			return nil, err
		}
		coords = append(coords, line)
	}

	return coords, nil
}

// singlePolygons emits the closed rings of every polygon in the top-level
// range, flat-concatenated in polygon order to match the bulk layout.
func (v *FlatVector) singlePolygons(topStart, topEnd int) (Coordinates, error) {
	topo := &v.topology

	var coords Coordinates
	for q := topStart; q < topEnd; q++ {
		if q+1 >= len(topo.PartOffsets) {
			return nil, fmt.Errorf("%w: part offset entry %d of %d", errs.ErrMalformedStream, q, len(topo.PartOffsets))
		}

		ringStart := int(topo.PartOffsets[q])
		ringEnd := int(topo.PartOffsets[q+1])
		for k := ringStart; k < ringEnd; k++ {
			if k+1 >= len(topo.RingOffsets) {
				return nil, fmt.Errorf("%w: ring offset entry %d of %d", errs.ErrMalformedStream, k, len(topo.RingOffsets))
			}

			ring, err := v.readSlots(int(topo.RingOffsets[k]), int(topo.RingOffsets[k+1]), true)
			if err != nil {
				return nil, err
			}
			coords = append(coords, ring)
		}
	}

	return coords, nil
}
