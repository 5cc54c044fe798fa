package tile

import (
	"fmt"

	"github.com/arloliu/mlt/errs"
	"github.com/arloliu/mlt/geometry"
)

// Access-pattern thresholds of the lazy coordinates resolver.
const (
	// maxIndexDeltaForSequential is the largest forward index step still
	// counted as a near-sequential access.
	maxIndexDeltaForSequential = 2

	// nearSequentialThreshold is the near-sequential streak length that
	// triggers bulk materialization.
	nearSequentialThreshold = 32

	// absoluteAccessThreshold is the total access count that triggers bulk
	// materialization regardless of pattern.
	absoluteAccessThreshold = 512
)

// singleConverter is the capability a geometry representation needs for
// per-feature decoding.
type singleConverter interface {
	ConvertSingleGeometry(i int) (geometry.Coordinates, error)
}

// lazyResolver mediates coordinate access for one feature table.
//
// Per-feature decoding is cheap for sparse filters; once the caller clearly
// scans, one bulk conversion is asymptotically faster and reuses a single
// allocation. The resolver watches the access pattern and flips to the
// materialized form when a near-sequential streak reaches
// nearSequentialThreshold or the total access count reaches
// absoluteAccessThreshold.
//
// Not safe for concurrent use; all state is private bookkeeping of its
// feature table.
type lazyResolver struct {
	deferred *DeferredGeometryColumn
	vector   geometry.Vector

	materialized []geometry.Coordinates

	lastIndex           int
	nearSequentialCount int
	totalAccessCount    int
}

func newLazyResolver(vector geometry.Vector, deferred *DeferredGeometryColumn) *lazyResolver {
	return &lazyResolver{
		deferred:  deferred,
		vector:    vector,
		lastIndex: -1,
	}
}

// coordinates returns the coordinates of feature i, deciding between the
// cached bulk materialization, a fresh bulk conversion, and a single-feature
// decode.
func (r *lazyResolver) coordinates(i int) (geometry.Coordinates, error) {
	if r.materialized != nil {
		return r.materialized[i], nil
	}

	r.observe(i)

	if err := r.resolveVector(); err != nil {
		return nil, err
	}

	single, ok := r.vector.(singleConverter)
	if !ok || !r.vector.SingleDecodable() {
		// Representation cannot decode one geometry in isolation.
		return r.materializeAll(i)
	}

	if r.nearSequentialCount >= nearSequentialThreshold || r.totalAccessCount >= absoluteAccessThreshold {
		return r.materializeAll(i)
	}

	return single.ConvertSingleGeometry(i)
}

// observe updates the access-pattern heuristic for index i.
func (r *lazyResolver) observe(i int) {
	r.totalAccessCount++

	if r.lastIndex >= 0 {
		delta := i - r.lastIndex
		if delta > 0 && delta <= maxIndexDeltaForSequential {
			r.nearSequentialCount++
		} else {
			r.nearSequentialCount = 0
		}
	}

	r.lastIndex = i
}

// resolveVector lazily resolves the underlying geometry vector; the first
// access is what triggers the deferred column's full decode.
func (r *lazyResolver) resolveVector() error {
	if r.vector != nil {
		return nil
	}
	if r.deferred == nil {
		return fmt.Errorf("%w", errs.ErrMissingGeometry)
	}

	vector, err := r.deferred.Vector()
	if err != nil {
		return err
	}
	r.vector = vector
	r.deferred = nil

	return nil
}

// materializeAll runs the bulk conversion exactly once and serves every
// later access from the cache.
func (r *lazyResolver) materializeAll(i int) (geometry.Coordinates, error) {
	all, err := r.vector.Geometries()
	if err != nil {
		return nil, err
	}
	r.materialized = all

	return all[i], nil
}
