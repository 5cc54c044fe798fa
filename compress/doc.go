// Package compress provides compression and decompression codecs for tile buffers.
//
// MLT tiles are commonly transported and stored compressed (object storage,
// tile servers, HTTP transfer encoding). This package implements the outer
// compression layer that is stripped before the columnar decoder runs; the
// integer streams inside a tile carry their own encoding (varint, FastPFOR)
// and are not recompressed here.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp** (format.CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	original, _ := codec.Decompress(data) // Returns data unchanged
//
// Use when tiles are served uncompressed, or the transport already handles
// compression.
//
// **Zstandard** (format.CompressionZstd)
//
//	codec := compress.NewZstdCompressor()
//
// The usual choice for tile archives: the best ratio for the columnar
// payloads at acceptable decompression speed. Two implementations are
// selected by build tag: a cgo binding (valyala/gozstd) and a pure-Go
// fallback (klauspost/compress/zstd).
//
// **S2** (format.CompressionS2)
//
//	codec := compress.NewS2Compressor()
//
// Snappy-compatible with better ratios; a good default when tiles are
// decoded far more often than they are written.
//
// **LZ4** (format.CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor()
//
// Fastest decompression; appropriate for hot rendering paths where the
// decode latency budget is tight.
//
// # Codec Selection
//
// Codecs are looked up by format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(tileBytes)
//
// # Thread Safety
//
// All codecs in this package are safe for concurrent use. The pure-Go zstd
// build pools its encoder and decoder instances and LZ4 pools its block
// compressors; the other codec paths keep no pooled state.
package compress
