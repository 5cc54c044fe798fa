// Package endian provides the byte order engine for binary decoding.
//
// MLT integer streams store aligned words in big-endian order regardless of
// the host, so the decoder pins one engine instead of detecting anything at
// runtime:
//
//	import "github.com/arloliu/mlt/endian"
//
//	engine := endian.GetBigEndianEngine()
//	word := engine.Uint32(buf[offset:])
//
// The engine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface, so the same value serves cursor reads and the
// append-style writers of the reference encoders:
//
//	// Reading a stream word
//	v := engine.Uint32(payload[pos:])
//
//	// Appending an encoded word without a temp buffer
//	out = engine.AppendUint32(out, v)
//
// # Thread Safety
//
// The returned EndianEngine is immutable and stateless; it is safe for
// concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.BigEndian and binary.LittleEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine the MLT wire format uses.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
