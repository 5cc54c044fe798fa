package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mlt/errs"
	"github.com/arloliu/mlt/format"
)

// requireSingleMatchesBulk asserts the single-geometry guarantee: for every
// valid index, single(v, i) equals bulk(v)[i].
func requireSingleMatchesBulk(t *testing.T, v *FlatVector) {
	t.Helper()

	bulk, err := v.Geometries()
	require.NoError(t, err)

	for i := 0; i < v.NumGeometries(); i++ {
		single, err := v.ConvertSingleGeometry(i)
		require.NoError(t, err, "index %d", i)
		require.Equal(t, bulk[i], single, "index %d", i)
	}
}

func TestSingle_MatchesBulk(t *testing.T) {
	t.Run("Points", func(t *testing.T) {
		v, err := NewConstFlatVector(format.GeometryPoint, 4, Topology{}, vec2(
			1, 2, 3, 4, 5, 6, 7, 8,
		))
		require.NoError(t, err)
		requireSingleMatchesBulk(t, v)
	})

	t.Run("MultiPoints", func(t *testing.T) {
		v, err := NewConstFlatVector(format.GeometryMultiPoint, 2, Topology{
			GeometryOffsets: []int32{0, 2, 5},
		}, vec2(1, 1, 2, 2, 3, 3, 4, 4, 5, 5))
		require.NoError(t, err)
		requireSingleMatchesBulk(t, v)
	})

	t.Run("LineStrings", func(t *testing.T) {
		v, err := NewConstFlatVector(format.GeometryLineString, 2, Topology{
			PartOffsets: []int32{0, 3, 5},
		}, vec2(0, 0, 10, 0, 10, 10, 20, 20, 30, 30))
		require.NoError(t, err)
		requireSingleMatchesBulk(t, v)
	})

	t.Run("MultiLineStrings", func(t *testing.T) {
		v, err := NewConstFlatVector(format.GeometryMultiLineString, 2, Topology{
			GeometryOffsets: []int32{0, 2, 3},
			PartOffsets:     []int32{0, 2, 4, 7},
		}, vec2(0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6))
		require.NoError(t, err)
		requireSingleMatchesBulk(t, v)
	})

	t.Run("Polygons", func(t *testing.T) {
		v, err := NewConstFlatVector(format.GeometryPolygon, 2, Topology{
			PartOffsets: []int32{0, 2, 3},
			RingOffsets: []int32{0, 4, 8, 11},
		}, vec2(
			0, 0, 100, 0, 100, 100, 0, 100,
			25, 25, 75, 25, 75, 75, 25, 75,
			200, 200, 210, 200, 200, 210,
		))
		require.NoError(t, err)
		requireSingleMatchesBulk(t, v)
	})

	t.Run("MultiPolygons", func(t *testing.T) {
		v, err := NewConstFlatVector(format.GeometryMultiPolygon, 2, Topology{
			GeometryOffsets: []int32{0, 2, 3},
			PartOffsets:     []int32{0, 1, 2, 4},
			RingOffsets:     []int32{0, 3, 6, 10, 13},
		}, vec2(
			0, 0, 10, 0, 0, 10,
			20, 20, 30, 20, 20, 30,
			50, 50, 90, 50, 90, 90, 50, 90,
			60, 60, 80, 60, 60, 80,
		))
		require.NoError(t, err)
		requireSingleMatchesBulk(t, v)
	})

	t.Run("MixedPolygonMultiPolygon", func(t *testing.T) {
		requireSingleMatchesBulk(t, mixedPolygonVector(t))
	})

	t.Run("DictionaryVertices", func(t *testing.T) {
		v, err := NewConstFlatVector(format.GeometryLineString, 2, Topology{
			PartOffsets: []int32{0, 2, 4},
		}, VertexBuffer{
			Type:    format.VertexVec2,
			Data:    []int32{0, 0, 5, 5, 9, 9},
			Offsets: []int32{0, 1, 1, 2},
		})
		require.NoError(t, err)
		requireSingleMatchesBulk(t, v)
	})

	t.Run("MortonVertices", func(t *testing.T) {
		settings := MortonSettings{NumBits: 20, CoordinateShift: 2}
		points := []Point{{3, 5}, {7, 2}, {0, 6}, {11, 11}}
		codes := make([]int32, len(points))
		for i, p := range points {
			codes[i] = EncodeMortonCode(p, settings)
		}

		v, err := NewConstFlatVector(format.GeometryMultiPoint, 2, Topology{
			GeometryOffsets: []int32{0, 3, 4},
		}, VertexBuffer{
			Type:   format.VertexMorton,
			Data:   codes,
			Morton: &settings,
		})
		require.NoError(t, err)
		requireSingleMatchesBulk(t, v)
	})
}

func TestSingle_MixedPolygonScenario(t *testing.T) {
	v := mixedPolygonVector(t)

	coords, err := v.ConvertSingleGeometry(1)
	require.NoError(t, err)
	require.Equal(t, Coordinates{
		{{100, 0}, {110, 0}, {110, 10}, {100, 10}, {100, 0}},
		{{200, 0}, {210, 0}, {210, 10}, {200, 10}, {200, 0}},
	}, coords)
}

func TestSingle_OutOfRange(t *testing.T) {
	v := mixedPolygonVector(t)

	_, err := v.ConvertSingleGeometry(-1)
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	_, err = v.ConvertSingleGeometry(v.NumGeometries())
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestSingle_FallbackToBulk(t *testing.T) {
	// A multipoint vector without geometry offsets cannot shortcut; the
	// extractor must fall back to bulk conversion and still agree with it.
	v, err := NewFlatVector(
		[]int32{int32(format.GeometryMultiPoint), int32(format.GeometryMultiPoint)},
		Topology{},
		vec2(1, 1, 2, 2),
	)
	require.NoError(t, err)
	requireSingleMatchesBulk(t, v)
}
