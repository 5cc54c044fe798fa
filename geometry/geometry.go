// Package geometry reconstructs per-feature coordinates from the flat
// topology and vertex buffers of an MLT geometry column.
//
// A geometry column stores up to three monotonically non-decreasing offset
// arrays (geometry, part, ring) partitioning a flat vertex buffer into
// per-feature substructures, plus the vertex buffer itself: interleaved x,y
// pairs, or Z-order codes, optionally indirected through a dictionary of
// vertex offsets. The package offers a bulk conversion over all features and
// a single-feature extractor guaranteed to agree with it.
package geometry

import "github.com/arloliu/mlt/format"

// Point is a 2-D tile-space coordinate.
type Point struct {
	X int32
	Y int32
}

// Ring is an ordered point sequence. Polygon rings are closed: the first and
// last point are equal.
type Ring []Point

// Coordinates is the per-feature coordinate layout:
//
//	Point:           [[p]]
//	MultiPoint:      [[p1],[p2],...]
//	LineString:      [[p1,...,pn]]
//	MultiLineString: [[...],[...]]
//	Polygon:         [shell, hole1, ...]
//	MultiPolygon:    all polygon rings concatenated in feature order
type Coordinates []Ring

// MortonSettings describes how x,y pairs were interleaved into Z-order codes.
type MortonSettings struct {
	// NumBits is the total bit count of the interleaved code.
	NumBits int
	// CoordinateShift is subtracted from each decoded axis value.
	CoordinateShift int
}

// DecodeMortonCode unpacks one Z-order code into a coordinate pair using the
// supplied settings.
func DecodeMortonCode(code int32, settings MortonSettings) Point {
	u := uint32(code) //nolint:gosec

	var x, y uint32
	for i := 0; 2*i < settings.NumBits; i++ {
		x |= (u >> (2 * i) & 1) << i
		if 2*i+1 < settings.NumBits {
			y |= (u >> (2*i + 1) & 1) << i
		}
	}

	shift := int32(settings.CoordinateShift) //nolint:gosec

	return Point{
		X: int32(x) - shift, //nolint:gosec
		Y: int32(y) - shift, //nolint:gosec
	}
}

// EncodeMortonCode interleaves a coordinate pair into one Z-order code. It is
// the inverse of DecodeMortonCode and exists for round-trip tests and tile
// tooling; both axis values plus the shift must fit the code's bit budget.
func EncodeMortonCode(p Point, settings MortonSettings) int32 {
	shift := int32(settings.CoordinateShift) //nolint:gosec
	x := uint32(p.X + shift)                 //nolint:gosec
	y := uint32(p.Y + shift)                 //nolint:gosec

	var u uint32
	for i := 0; 2*i < settings.NumBits; i++ {
		u |= (x >> i & 1) << (2 * i)
		if 2*i+1 < settings.NumBits {
			u |= (y >> i & 1) << (2*i + 1)
		}
	}

	return int32(u) //nolint:gosec
}

// geometryTypeOf validates a raw type stream value.
func geometryTypeOf(v int32) (format.GeometryType, bool) {
	if v < 0 || v > int32(format.GeometryMultiPolygon) {
		return 0, false
	}

	return format.GeometryType(v), true //nolint:gosec
}
