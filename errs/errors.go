// Package errs defines the sentinel errors surfaced by the mlt decoder.
//
// All decode failures wrap one of these sentinels so callers can classify
// errors with errors.Is while still receiving a message that names the
// offending index or stream.
package errs

import "errors"

var (
	// ErrOutOfRange indicates a feature index outside [0, numFeatures).
	ErrOutOfRange = errors.New("feature index out of range")

	// ErrMalformedStream indicates a structurally invalid integer stream:
	// a truncated varint, a FastPFOR exception mismatch, or a payload whose
	// consumed byte count disagrees with the stream metadata.
	ErrMalformedStream = errors.New("malformed integer stream")

	// ErrUnsupportedGeometry indicates a geometry type outside the
	// enumerated set.
	ErrUnsupportedGeometry = errors.New("unsupported geometry type")

	// ErrMissingGeometry indicates a feature table with neither a decoded
	// geometry vector nor a deferred geometry column.
	ErrMissingGeometry = errors.New("feature table has no geometry source")

	// ErrMissingMortonSettings indicates a Morton-encoded vertex buffer
	// without the numBits/coordinateShift parameters.
	ErrMissingMortonSettings = errors.New("morton settings missing")

	// ErrInvalidBitWidth indicates a bit width outside [0, 32] in a packed
	// stream header.
	ErrInvalidBitWidth = errors.New("invalid bit width")

	// ErrBufferUnderrun indicates a stream that references bytes past the
	// end of the tile buffer.
	ErrBufferUnderrun = errors.New("buffer underrun")

	// ErrUnsupportedTechnique indicates an encoding technique the decoder
	// does not implement.
	ErrUnsupportedTechnique = errors.New("unsupported encoding technique")

	// ErrInvalidCompressionType indicates an unknown tile buffer compression.
	ErrInvalidCompressionType = errors.New("invalid compression type")
)
