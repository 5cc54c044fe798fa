package geometry

import (
	"fmt"

	"github.com/arloliu/mlt/errs"
	"github.com/arloliu/mlt/format"
)

// bulkCursor tracks the five decode positions of the single conversion pass:
// one per offset level, plus the direct and dictionary vertex cursors.
type bulkCursor struct {
	geom int
	part int
	ring int

	vertexBufferOffset  int
	vertexOffsetsOffset int

	vb *VertexBuffer
}

// nextVertex reads the next vertex slot in feature order.
func (c *bulkCursor) nextVertex() (Point, error) {
	var slot int
	if len(c.vb.Offsets) > 0 {
		slot = c.vertexOffsetsOffset
		c.vertexOffsetsOffset++
	} else {
		slot = c.vertexBufferOffset
		c.vertexBufferOffset++
	}

	if slot >= c.vb.numSlots() {
		return Point{}, fmt.Errorf("%w: vertex slot %d of %d", errs.ErrMalformedStream, slot, c.vb.numSlots())
	}

	return c.vb.vertexAt(slot), nil
}

// span returns offsets[idx+1]-offsets[idx] with bounds checking.
func span(offsets []int32, idx int) (int, error) {
	if idx+1 >= len(offsets) {
		return 0, fmt.Errorf("%w: offset entry %d of %d", errs.ErrMalformedStream, idx, len(offsets))
	}

	return int(offsets[idx+1] - offsets[idx]), nil
}

// Geometries converts the whole column in one pass over the topology,
// dispatching on each feature's geometry kind and advancing every offset
// cursor exactly once per unit it covers.
func (v *FlatVector) Geometries() ([]Coordinates, error) {
	out := make([]Coordinates, v.numGeometries)
	cur := &bulkCursor{vb: &v.vertices}

	for i := range out {
		geomType, err := v.GeometryType(i)
		if err != nil {
			return nil, err
		}

		coords, err := v.convertNext(cur, geomType)
		if err != nil {
			return nil, fmt.Errorf("converting geometry %d: %w", i, err)
		}
		out[i] = coords
	}

	return out, nil
}

// convertNext decodes the next feature of the given kind at the cursor.
func (v *FlatVector) convertNext(cur *bulkCursor, geomType format.GeometryType) (Coordinates, error) {
	topo := &v.topology

	// Units this feature covers at the level below GeometryOffsets.
	topUnits := 1
	if topo.GeometryOffsets != nil {
		n, err := span(topo.GeometryOffsets, cur.geom)
		if err != nil {
			return nil, err
		}
		cur.geom++
		topUnits = n
	}

	switch geomType {
	case format.GeometryPoint, format.GeometryMultiPoint:
		return v.convertPoints(cur, topUnits)
	case format.GeometryLineString, format.GeometryMultiLineString:
		return v.convertLineStrings(cur, topUnits)
	case format.GeometryPolygon, format.GeometryMultiPolygon:
		return v.convertPolygons(cur, topUnits)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedGeometry, geomType)
	}
}

// convertPoints emits numPoints singleton rings, consuming one unit per
// point at every present topology level.
func (v *FlatVector) convertPoints(cur *bulkCursor, numPoints int) (Coordinates, error) {
	topo := &v.topology

	// In vectors that carry lower levels for other kinds, each point owns a
	// trivial one-unit entry there.
	if topo.PartOffsets != nil {
		units, err := spanRange(topo.PartOffsets, cur.part, numPoints)
		if err != nil {
			return nil, err
		}
		cur.part += numPoints

		if topo.RingOffsets != nil {
			if _, err := spanRange(topo.RingOffsets, cur.ring, units); err != nil {
				return nil, err
			}
			cur.ring += units
		}
	}

	coords := make(Coordinates, numPoints)
	for j := range coords {
		p, err := cur.nextVertex()
		if err != nil {
			return nil, err
		}
		coords[j] = Ring{p}
	}

	return coords, nil
}

// convertLineStrings emits numLines unclosed rings.
func (v *FlatVector) convertLineStrings(cur *bulkCursor, numLines int) (Coordinates, error) {
	topo := &v.topology
	if topo.PartOffsets == nil {
		return nil, fmt.Errorf("%w: line geometry without part offsets", errs.ErrMalformedStream)
	}

	coords := make(Coordinates, numLines)
	for j := range coords {
		units, err := span(topo.PartOffsets, cur.part)
		if err != nil {
			return nil, err
		}
		cur.part++

		numVertices := units
		if topo.RingOffsets != nil {
			// Polygon-bearing vectors interpose the ring level; a line part
			// spans rings which in turn span vertices.
			numVertices, err = spanRange(topo.RingOffsets, cur.ring, units)
			if err != nil {
				return nil, err
			}
			cur.ring += units
		}

		line := make(Ring, numVertices)
		for k := range line {
			if line[k], err = cur.nextVertex(); err != nil {
				return nil, err
			}
		}
		coords[j] = line
	}

	return coords, nil
}

// convertPolygons emits the closed rings of numPolygons polygons as a flat
// ring list: the polygon's shell, then its holes, in polygon order.
func (v *FlatVector) convertPolygons(cur *bulkCursor, numPolygons int) (Coordinates, error) {
	topo := &v.topology
	if topo.PartOffsets == nil || topo.RingOffsets == nil {
		return nil, fmt.Errorf("%w: polygon geometry without part and ring offsets", errs.ErrMalformedStream)
	}

	var coords Coordinates
	for j := 0; j < numPolygons; j++ {
		numRings, err := span(topo.PartOffsets, cur.part)
		if err != nil {
			return nil, err
		}
		cur.part++

		for k := 0; k < numRings; k++ {
			numVertices, err := span(topo.RingOffsets, cur.ring)
			if err != nil {
				return nil, err
			}
			cur.ring++

			ring, err := readLinearRing(cur, numVertices)
			if err != nil {
				return nil, err
			}
			coords = append(coords, ring)
		}
	}

	return coords, nil
}

// readLinearRing reads numVertices vertices and closes the ring by
// appending its first point.
func readLinearRing(cur *bulkCursor, numVertices int) (Ring, error) {
	ring := make(Ring, numVertices, numVertices+1)
	for k := range ring {
		var err error
		if ring[k], err = cur.nextVertex(); err != nil {
			return nil, err
		}
	}
	if numVertices > 0 {
		ring = append(ring, ring[0])
	}

	return ring, nil
}

// spanRange returns offsets[idx+count]-offsets[idx] with bounds checking.
func spanRange(offsets []int32, idx, count int) (int, error) {
	if idx+count >= len(offsets) {
		return 0, fmt.Errorf("%w: offset entries %d..%d of %d", errs.ErrMalformedStream, idx, idx+count, len(offsets))
	}

	return int(offsets[idx+count] - offsets[idx]), nil
}
