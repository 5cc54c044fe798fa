// Package mlt decodes the MapLibre Tile (MLT) columnar container into an
// in-memory representation suitable for rendering and feature iteration.
//
// MLT stores a layer as typed, compressed integer streams: a geometry
// column (geometry types, topology offsets, vertex buffer), an optional id
// column, and property columns. This module implements the decode pipeline
// and the lazy geometry facade on top of it:
//
//   - FastPFOR integer codec with bit-width fast paths (fastpfor, bitpack)
//   - stream-metadata-driven integer stream decoding: varint, RLE, delta,
//     zig-zag, Morton, constant, dictionary (stream, cursor)
//   - geometry reconstruction from flat topology and vertex buffers,
//     bulk and single-feature (geometry)
//   - feature tables with deferred geometry columns and an access-pattern
//     adaptive coordinates resolver (tile)
//
// # Basic Usage
//
// Decoding a geometry column and iterating features:
//
//	import "github.com/arloliu/mlt"
//
//	deferred := mlt.NewDeferredGeometryColumn(tileBytes, columnOffset, numStreams, numFeatures)
//	table, _ := mlt.NewDeferredFeatureTable(deferred,
//	    tile.WithName("roads"),
//	    tile.WithIDColumn(ids),
//	    tile.WithPropertyColumns(props...),
//	)
//
//	layer := table.GetLayer()
//	for _, feature := range layer.All() {
//	    coords, _ := feature.Coordinates()
//	    render(feature.GeometryType(), coords, feature.Properties())
//	}
//
// Geometry-type queries never pay the vertex decode cost; coordinates are
// decoded per feature for sparse access and materialized in bulk once the
// access pattern turns sequential.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the tile
// package, simplifying the most common use cases. For fine-grained control
// (stream decoding, geometry vectors, codecs), use the subpackages
// directly.
package mlt

import (
	"github.com/arloliu/mlt/format"
	"github.com/arloliu/mlt/internal/hash"
	"github.com/arloliu/mlt/tile"
)

// NewDeferredGeometryColumn wraps an undecoded geometry column so geometry
// type queries stay cheap until coordinates are demanded.
//
// Parameters:
//   - data: The raw tile byte slice
//   - startOffset: Byte offset of the column's first stream
//   - numStreams: Number of integer streams the column spans
//   - numFeatures: Feature count of the layer
//
// Returns:
//   - *tile.DeferredGeometryColumn: The deferred column.
func NewDeferredGeometryColumn(data []byte, startOffset, numStreams, numFeatures int) *tile.DeferredGeometryColumn {
	return tile.NewDeferredGeometryColumn(data, startOffset, numStreams, numFeatures)
}

// NewDeferredFeatureTable creates a feature table over a deferred geometry
// column. Vertex decoding happens on first coordinate access.
func NewDeferredFeatureTable(deferred *tile.DeferredGeometryColumn, opts ...tile.FeatureTableOption) (*tile.FeatureTable, error) {
	return tile.NewDeferredFeatureTable(deferred, opts...)
}

// DecompressTile strips the outer tile compression (Zstd, S2, LZ4, or
// none), returning the raw buffer the columnar decoder consumes.
func DecompressTile(data []byte, compression format.CompressionType) ([]byte, error) {
	return tile.DecompressTile(data, compression)
}

// ColumnID converts a layer or property column name to its 64-bit hash
// identifier.
//
// The hash is deterministic, collision-resistant, and fast (~1-2 ns), so
// IDs can be precomputed for frequently queried columns:
//
//	classID := mlt.ColumnID("class")
//	col, ok := table.PropertyColumnByID(classID)
func ColumnID(name string) uint64 {
	return hash.ID(name)
}
