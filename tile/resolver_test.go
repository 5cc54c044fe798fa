package tile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mlt/format"
	"github.com/arloliu/mlt/geometry"
)

// countingVector wraps a FlatVector and counts bulk and single conversions.
type countingVector struct {
	*geometry.FlatVector

	bulkCalls   int
	singleCalls int
}

func (v *countingVector) Geometries() ([]geometry.Coordinates, error) {
	v.bulkCalls++

	return v.FlatVector.Geometries()
}

func (v *countingVector) ConvertSingleGeometry(i int) (geometry.Coordinates, error) {
	v.singleCalls++

	return v.FlatVector.ConvertSingleGeometry(i)
}

// newCountingPointVector builds a numFeatures-feature point vector with counters.
func newCountingPointVector(t *testing.T, numFeatures int) *countingVector {
	t.Helper()

	vertices := make([]int32, 0, numFeatures*2)
	for i := 0; i < numFeatures; i++ {
		vertices = append(vertices, int32(i), int32(i*2))
	}

	flat, err := geometry.NewConstFlatVector(format.GeometryPoint, numFeatures, geometry.Topology{}, geometry.VertexBuffer{
		Type: format.VertexVec2,
		Data: vertices,
	})
	require.NoError(t, err)

	return &countingVector{FlatVector: flat}
}

func TestResolver_SequentialScanMaterializesOnce(t *testing.T) {
	v := newCountingPointVector(t, 100)
	r := newLazyResolver(v, nil)

	// Sequential access to indices 0..35: one bulk conversion, and single
	// conversions stop once the streak threshold is reached.
	for i := 0; i <= 35; i++ {
		coords, err := r.coordinates(i)
		require.NoError(t, err)
		require.Equal(t, geometry.Coordinates{{{X: int32(i), Y: int32(i * 2)}}}, coords)
	}

	require.Equal(t, 1, v.bulkCalls, "bulk conversion must run exactly once")

	// After materialization no further single conversions happen.
	singleBefore := v.singleCalls
	for i := 36; i < 100; i++ {
		_, err := r.coordinates(i)
		require.NoError(t, err)
	}
	require.Equal(t, singleBefore, v.singleCalls)
	require.Equal(t, 1, v.bulkCalls)
}

func TestResolver_SparseAccessDecodesSingly(t *testing.T) {
	v := newCountingPointVector(t, 100)
	r := newLazyResolver(v, nil)

	for _, i := range []int{0, 50, 99} {
		coords, err := r.coordinates(i)
		require.NoError(t, err)
		require.Equal(t, geometry.Coordinates{{{X: int32(i), Y: int32(i * 2)}}}, coords)
	}

	require.Equal(t, 3, v.singleCalls)
	require.Zero(t, v.bulkCalls)
}

func TestResolver_NonSequentialJumpResetsStreak(t *testing.T) {
	v := newCountingPointVector(t, 100)
	r := newLazyResolver(v, nil)

	// 20 sequential accesses, a backwards jump, then 20 more: neither run
	// reaches the threshold of 32, so no bulk conversion happens.
	for i := 0; i < 20; i++ {
		_, err := r.coordinates(i)
		require.NoError(t, err)
	}
	_, err := r.coordinates(5)
	require.NoError(t, err)
	for i := 6; i < 26; i++ {
		_, err := r.coordinates(i)
		require.NoError(t, err)
	}

	require.Zero(t, v.bulkCalls)
	require.Equal(t, 41, v.singleCalls)
}

func TestResolver_StrideTwoCountsAsSequential(t *testing.T) {
	v := newCountingPointVector(t, 100)
	r := newLazyResolver(v, nil)

	// Delta 2 is still near-sequential; 33 accesses push the streak to 32.
	for i := 0; i < 66; i += 2 {
		_, err := r.coordinates(i)
		require.NoError(t, err)
	}

	require.Equal(t, 1, v.bulkCalls)
}

func TestResolver_AbsoluteThresholdMaterializes(t *testing.T) {
	v := newCountingPointVector(t, 4)
	r := newLazyResolver(v, nil)

	// Alternating between two far-apart indices never builds a streak; the
	// absolute access count eventually forces one materialization.
	for n := 0; n < absoluteAccessThreshold+10; n++ {
		i := (n % 2) * 3
		_, err := r.coordinates(i)
		require.NoError(t, err)
	}

	require.Equal(t, 1, v.bulkCalls)
}

func TestResolver_GPUVectorAlwaysMaterializes(t *testing.T) {
	coords := []geometry.Coordinates{
		{{{X: 1, Y: 1}}},
		{{{X: 2, Y: 2}}},
	}
	gpu, err := geometry.NewGPUVector([]int32{0, 0}, coords)
	require.NoError(t, err)

	r := newLazyResolver(gpu, nil)

	got, err := r.coordinates(1)
	require.NoError(t, err)
	require.Equal(t, coords[1], got)
	require.NotNil(t, r.materialized, "non-single-decodable vectors materialize on first access")
}

func TestResolver_CacheReturnsSameObject(t *testing.T) {
	v := newCountingPointVector(t, 100)
	r := newLazyResolver(v, nil)

	for i := 0; i <= 40; i++ {
		_, err := r.coordinates(i)
		require.NoError(t, err)
	}
	require.Equal(t, 1, v.bulkCalls)

	first, err := r.coordinates(7)
	require.NoError(t, err)
	second, err := r.coordinates(7)
	require.NoError(t, err)
	require.Same(t, &first[0][0], &second[0][0], "materialized reads must share one allocation")
}
