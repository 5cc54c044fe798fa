// Package fastpfor implements the patched-frame-of-reference integer codec
// used by MLT integer streams.
//
// The wire format is a single length header (the count of block-aligned
// values), a sequence of pages, and a VByte tail for the values that do not
// fill a whole block. Each page holds bit-packed blocks of 256 values at a
// per-block bit width; values wider than the block width keep their low bits
// in the block body and park the high bits in per-width exception streams at
// the end of the page. The VByte tail uses the MSB=1 terminator convention,
// the inverse of common varint.
//
// The decoder reuses growable scratch buffers (packed words and exception
// streams) across calls, so a Decoder must not be shared between goroutines.
// The encoder mirrors that with an explicit Workspace.
package fastpfor

import (
	"fmt"

	"github.com/arloliu/mlt/bitpack"
	"github.com/arloliu/mlt/endian"
	"github.com/arloliu/mlt/errs"
	"github.com/arloliu/mlt/internal/pool"
)

const (
	// BlockSize is the number of values in one bit-packed block.
	BlockSize = 256

	// DefaultPageSize is the number of values per page. Encoders round it
	// down to a multiple of BlockSize; decoders must tolerate any aligned
	// length the stream header declares.
	DefaultPageSize = 65536
)

var bigEndian = endian.GetBigEndianEngine()

// Decoder decodes FastPFOR payloads.
//
// A Decoder owns its scratch buffers and is not safe for concurrent use.
// The zero value is ready to decode.
type Decoder struct {
	// Per-width exception value streams for the current page; index is the
	// exception bit width (maxBits - blockBitWidth), 2..32.
	exceptions [33][]int32
	excUsed    [33]int

	byteContainer []byte
}

// NewDecoder creates a decoder with empty scratch buffers.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes numValues integers from a FastPFOR payload.
//
// The payload is interpreted as big-endian int32 words: the aligned-count
// header, the pages, and finally the VByte tail in natural byte order. The
// returned slice is freshly allocated and owned by the caller.
//
// Errors wrap errs.ErrMalformedStream for structural problems (exception
// count mismatch, invalid exception bit width) and errs.ErrBufferUnderrun
// for truncated payloads. An invalid exception bit width also wraps
// errs.ErrInvalidBitWidth; an invalid block bit width wraps only
// errs.ErrInvalidBitWidth.
func (d *Decoder) Decode(data []byte, numValues int) ([]int32, error) {
	out := make([]int32, numValues)
	if numValues == 0 {
		return out, nil
	}

	wordCount := len(data) / 4
	if wordCount == 0 {
		return nil, fmt.Errorf("%w: fastpfor payload shorter than length header", errs.ErrBufferUnderrun)
	}

	words, cleanup := pool.GetInt32Slice(wordCount)
	defer cleanup()
	for i := range words {
		words[i] = int32(bigEndian.Uint32(data[i*4:])) //nolint:gosec
	}

	aligned := int(words[0])
	if aligned < 0 || aligned > numValues || aligned%BlockSize != 0 {
		return nil, fmt.Errorf("%w: fastpfor aligned count %d for %d values", errs.ErrMalformedStream, aligned, numValues)
	}

	inPos := 1
	outPos := 0
	for outPos < aligned {
		size := aligned - outPos
		if size > DefaultPageSize {
			size = DefaultPageSize
		}

		var err error
		inPos, err = d.decodePage(words, inPos, out, outPos, size)
		if err != nil {
			return nil, err
		}
		outPos += size
	}

	// The tail values live after the last page, four bytes per word slot,
	// read in natural byte order.
	if err := decodeVByteTail(data[inPos*4:], out[aligned:]); err != nil {
		return nil, err
	}

	return out, nil
}

// decodePage decodes one page of size values (a multiple of BlockSize)
// starting at words[inPos], returning the word offset just past the page.
func (d *Decoder) decodePage(words []int32, inPos int, out []int32, outPos, size int) (int, error) {
	initPos := inPos
	if inPos >= len(words) {
		return 0, fmt.Errorf("%w: fastpfor page header", errs.ErrBufferUnderrun)
	}

	// Self-size of the header+blocks section; the metadata section starts
	// right after it.
	headerSize := int(words[inPos])
	inPos++

	inExcept := initPos + headerSize
	if inExcept <= initPos || inExcept >= len(words) {
		return 0, fmt.Errorf("%w: fastpfor page header size %d", errs.ErrMalformedStream, headerSize)
	}

	byteSize := int(words[inExcept])
	inExcept++
	containerWords := (byteSize + 3) / 4
	if byteSize < 0 || inExcept+containerWords > len(words) {
		return 0, fmt.Errorf("%w: fastpfor byte container of %d bytes", errs.ErrMalformedStream, byteSize)
	}

	if cap(d.byteContainer) < containerWords*4 {
		d.byteContainer = make([]byte, containerWords*4)
	}
	d.byteContainer = d.byteContainer[:containerWords*4]
	for i := 0; i < containerWords; i++ {
		bigEndian.PutUint32(d.byteContainer[i*4:], uint32(words[inExcept+i])) //nolint:gosec
	}
	inExcept += containerWords

	if inExcept >= len(words) {
		return 0, fmt.Errorf("%w: fastpfor exception bitmap", errs.ErrBufferUnderrun)
	}
	bitmap := uint32(words[inExcept]) //nolint:gosec
	inExcept++

	// Exception value streams, one per present bit width.
	for k := 2; k <= 32; k++ {
		if bitmap&(1<<(k-2)) == 0 {
			d.exceptions[k] = d.exceptions[k][:0]
			d.excUsed[k] = 0
			continue
		}

		if inExcept >= len(words) {
			return 0, fmt.Errorf("%w: fastpfor exception stream size", errs.ErrBufferUnderrun)
		}
		excCount := int(words[inExcept])
		inExcept++

		excWords := (excCount*k + 31) / 32
		if excCount < 0 || inExcept+excWords > len(words) {
			return 0, fmt.Errorf("%w: fastpfor exception stream of %d values", errs.ErrMalformedStream, excCount)
		}

		if cap(d.exceptions[k]) < excCount {
			d.exceptions[k] = make([]int32, excCount)
		}
		d.exceptions[k] = d.exceptions[k][:excCount]
		if err := bitpack.UnpackExact(words, inExcept, d.exceptions[k], 0, excCount, k); err != nil {
			return 0, err
		}
		d.excUsed[k] = 0
		inExcept += excWords
	}

	// Block bodies follow the header word; patch each block from the byte
	// container and the exception streams.
	byteIdx := 0
	container := d.byteContainer[:byteSize]
	tmpOutPos := outPos
	for run := 0; run < size/BlockSize; run++ {
		if byteIdx+2 > len(container) {
			return 0, fmt.Errorf("%w: fastpfor block header", errs.ErrMalformedStream)
		}
		bitWidth := int(container[byteIdx])
		cExcept := int(container[byteIdx+1])
		byteIdx += 2

		if bitWidth > 32 {
			return 0, fmt.Errorf("%w: block bit width %d", errs.ErrInvalidBitWidth, bitWidth)
		}
		if inPos+8*bitWidth > len(words) {
			return 0, fmt.Errorf("%w: fastpfor block body", errs.ErrBufferUnderrun)
		}
		if err := bitpack.Unpack256(words, inPos, out, tmpOutPos, bitWidth); err != nil {
			return 0, err
		}
		inPos += 8 * bitWidth

		if cExcept > 0 {
			if byteIdx+1+cExcept > len(container) {
				return 0, fmt.Errorf("%w: fastpfor exception positions", errs.ErrMalformedStream)
			}
			maxBits := int(container[byteIdx])
			byteIdx++

			index := maxBits - bitWidth
			switch {
			case index == 1:
				// The lone high bit is implicitly 1; no stored values.
				for i := 0; i < cExcept; i++ {
					pos := int(container[byteIdx])
					byteIdx++
					out[tmpOutPos+pos] |= 1 << bitWidth
				}
			case index >= 2 && index <= 32:
				exc := d.exceptions[index]
				used := d.excUsed[index]
				if used+cExcept > len(exc) {
					return 0, fmt.Errorf("%w: exception count mismatch for width %d", errs.ErrMalformedStream, index)
				}
				for i := 0; i < cExcept; i++ {
					pos := int(container[byteIdx])
					byteIdx++
					out[tmpOutPos+pos] |= exc[used+i] << bitWidth
				}
				d.excUsed[index] = used + cExcept
			default:
				return 0, fmt.Errorf("%w: %w: exception bit width %d", errs.ErrMalformedStream, errs.ErrInvalidBitWidth, index)
			}
		}

		tmpOutPos += BlockSize
	}

	return inExcept, nil
}

// decodeVByteTail decodes len(out) trailing values from data.
//
// Each value is a little-endian base-128 sequence whose final byte has the
// MSB set (the inverse of common varint framing).
func decodeVByteTail(data []byte, out []int32) error {
	var value uint32
	var shift uint
	pos := 0

	for i := range out {
		for {
			if pos >= len(data) {
				return fmt.Errorf("%w: fastpfor vbyte tail", errs.ErrBufferUnderrun)
			}
			b := data[pos]
			pos++

			if b >= 0x80 {
				value |= uint32(b&0x7f) << shift
				out[i] = int32(value) //nolint:gosec
				value = 0
				shift = 0

				break
			}

			value |= uint32(b) << shift
			shift += 7
		}
	}

	return nil
}

// Decode decodes numValues integers from data with a fresh Decoder.
//
// Prefer a reusable Decoder when decoding many streams from one tile.
func Decode(data []byte, numValues int) ([]int32, error) {
	return NewDecoder().Decode(data, numValues)
}
