// Package bitpack unpacks fixed-bit-width integer blocks.
//
// The FastPFOR codec stores blocks of 32 or 256 values packed at a per-block
// bit width; values are laid out LSB-first across consecutive 32-bit words,
// so a w-bit unpack over 32 values consumes exactly w input words. Widths
// 1..12 and 16 take unrolled fast paths, width 0 emits zeros, and every other
// width in [1, 32] goes through the generic routine. All outputs are treated
// as unsigned.
package bitpack

import (
	"fmt"

	"github.com/arloliu/mlt/errs"
)

// Unpack32 decodes 32 values of the given bit width from in[inPos:] into
// out[outPos:] and reports an error for widths outside [0, 32].
//
// Width 0 emits 32 zeros and consumes no input words.
func Unpack32(in []int32, inPos int, out []int32, outPos int, width int) error {
	switch width {
	case 0:
		clear(out[outPos : outPos+32])
	case 1:
		unpack32w1(in, inPos, out, outPos)
	case 2:
		unpack32w2(in, inPos, out, outPos)
	case 3:
		unpack32w3(in, inPos, out, outPos)
	case 4:
		unpack32w4(in, inPos, out, outPos)
	case 5:
		unpack32w5(in, inPos, out, outPos)
	case 6:
		unpack32w6(in, inPos, out, outPos)
	case 7:
		unpack32w7(in, inPos, out, outPos)
	case 8:
		unpack32w8(in, inPos, out, outPos)
	case 9:
		unpack32w9(in, inPos, out, outPos)
	case 10:
		unpack32w10(in, inPos, out, outPos)
	case 11:
		unpack32w11(in, inPos, out, outPos)
	case 12:
		unpack32w12(in, inPos, out, outPos)
	case 16:
		unpack32w16(in, inPos, out, outPos)
	default:
		if width < 0 || width > 32 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidBitWidth, width)
		}
		unpackGeneric32(in, inPos, out, outPos, width)
	}

	return nil
}

// Unpack256 decodes 256 values of the given bit width from in[inPos:] into
// out[outPos:], consuming exactly 8*width input words.
func Unpack256(in []int32, inPos int, out []int32, outPos int, width int) error {
	for i := 0; i < 8; i++ {
		if err := Unpack32(in, inPos+i*width, out, outPos+i*32, width); err != nil {
			return err
		}
	}

	return nil
}

// unpackGeneric32 decodes 32 values of any width in [1, 32], tracking a
// running bit offset and performing one or two shifts per value.
func unpackGeneric32(in []int32, inPos int, out []int32, outPos int, width int) {
	mask := uint32(1)<<width - 1
	if width == 32 {
		mask = ^uint32(0)
	}

	bitOffset := 0
	for i := 0; i < 32; i++ {
		word := bitOffset >> 5
		off := bitOffset & 31

		v := uint32(in[inPos+word]) >> off //nolint:gosec
		if off+width > 32 {
			v |= uint32(in[inPos+word+1]) << (32 - off) //nolint:gosec
		}
		out[outPos+i] = int32(v & mask) //nolint:gosec

		bitOffset += width
	}
}

// UnpackExact decodes count values of the given bit width, count not
// necessarily a multiple of 32. The packed run occupies
// ceil(count*width/32) input words; trailing pad bits are ignored.
//
// FastPFOR exception streams use this shape: each present exception width
// carries its own tightly packed value run.
func UnpackExact(in []int32, inPos int, out []int32, outPos int, count, width int) error {
	if width < 0 || width > 32 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidBitWidth, width)
	}
	if width == 0 {
		clear(out[outPos : outPos+count])
		return nil
	}

	mask := uint32(1)<<width - 1
	if width == 32 {
		mask = ^uint32(0)
	}

	bitOffset := 0
	for i := 0; i < count; i++ {
		word := bitOffset >> 5
		off := bitOffset & 31

		v := uint32(in[inPos+word]) >> off //nolint:gosec
		if off+width > 32 {
			v |= uint32(in[inPos+word+1]) << (32 - off) //nolint:gosec
		}
		out[outPos+i] = int32(v & mask) //nolint:gosec

		bitOffset += width
	}

	return nil
}

// Pack32 packs 32 values of the given bit width from in[inPos:] into
// out[outPos:], writing exactly width output words. Values must already fit
// the width; high bits beyond it are discarded.
//
// The packing layout is the LSB-first inverse of Unpack32. This is the
// encoder-side primitive and only needs the generic shape.
func Pack32(in []int32, inPos int, out []int32, outPos int, width int) error {
	if width < 0 || width > 32 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidBitWidth, width)
	}
	if width == 0 {
		return nil
	}

	clear(out[outPos : outPos+width])
	packExact(in, inPos, out, outPos, 32, width)

	return nil
}

// PackExact packs count values of the given bit width, zeroing the
// ceil(count*width/32) output words first.
func PackExact(in []int32, inPos int, out []int32, outPos int, count, width int) error {
	if width < 0 || width > 32 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidBitWidth, width)
	}
	if width == 0 || count == 0 {
		return nil
	}

	words := (count*width + 31) / 32
	clear(out[outPos : outPos+words])
	packExact(in, inPos, out, outPos, count, width)

	return nil
}

func packExact(in []int32, inPos int, out []int32, outPos int, count, width int) {
	mask := uint32(1)<<width - 1
	if width == 32 {
		mask = ^uint32(0)
	}

	bitOffset := 0
	for i := 0; i < count; i++ {
		v := uint32(in[inPos+i]) & mask //nolint:gosec
		word := bitOffset >> 5
		off := bitOffset & 31

		out[outPos+word] |= int32(v << off) //nolint:gosec
		if off+width > 32 {
			out[outPos+word+1] |= int32(v >> (32 - off)) //nolint:gosec
		}

		bitOffset += width
	}
}
