package bitpack

// Unrolled 32-value unpack routines for the bit widths that dominate real
// tiles (1..12 and 16). Each routine reads exactly w input words and emits
// 32 unsigned values; behavior is identical to the generic unpackGeneric32.

func unpack32w1(in []int32, inPos int, out []int32, outPos int) {
	out[outPos+0] = int32(uint32(in[inPos+0]) & 0x1)
	out[outPos+1] = int32((uint32(in[inPos+0]) >> 1) & 0x1)
	out[outPos+2] = int32((uint32(in[inPos+0]) >> 2) & 0x1)
	out[outPos+3] = int32((uint32(in[inPos+0]) >> 3) & 0x1)
	out[outPos+4] = int32((uint32(in[inPos+0]) >> 4) & 0x1)
	out[outPos+5] = int32((uint32(in[inPos+0]) >> 5) & 0x1)
	out[outPos+6] = int32((uint32(in[inPos+0]) >> 6) & 0x1)
	out[outPos+7] = int32((uint32(in[inPos+0]) >> 7) & 0x1)
	out[outPos+8] = int32((uint32(in[inPos+0]) >> 8) & 0x1)
	out[outPos+9] = int32((uint32(in[inPos+0]) >> 9) & 0x1)
	out[outPos+10] = int32((uint32(in[inPos+0]) >> 10) & 0x1)
	out[outPos+11] = int32((uint32(in[inPos+0]) >> 11) & 0x1)
	out[outPos+12] = int32((uint32(in[inPos+0]) >> 12) & 0x1)
	out[outPos+13] = int32((uint32(in[inPos+0]) >> 13) & 0x1)
	out[outPos+14] = int32((uint32(in[inPos+0]) >> 14) & 0x1)
	out[outPos+15] = int32((uint32(in[inPos+0]) >> 15) & 0x1)
	out[outPos+16] = int32((uint32(in[inPos+0]) >> 16) & 0x1)
	out[outPos+17] = int32((uint32(in[inPos+0]) >> 17) & 0x1)
	out[outPos+18] = int32((uint32(in[inPos+0]) >> 18) & 0x1)
	out[outPos+19] = int32((uint32(in[inPos+0]) >> 19) & 0x1)
	out[outPos+20] = int32((uint32(in[inPos+0]) >> 20) & 0x1)
	out[outPos+21] = int32((uint32(in[inPos+0]) >> 21) & 0x1)
	out[outPos+22] = int32((uint32(in[inPos+0]) >> 22) & 0x1)
	out[outPos+23] = int32((uint32(in[inPos+0]) >> 23) & 0x1)
	out[outPos+24] = int32((uint32(in[inPos+0]) >> 24) & 0x1)
	out[outPos+25] = int32((uint32(in[inPos+0]) >> 25) & 0x1)
	out[outPos+26] = int32((uint32(in[inPos+0]) >> 26) & 0x1)
	out[outPos+27] = int32((uint32(in[inPos+0]) >> 27) & 0x1)
	out[outPos+28] = int32((uint32(in[inPos+0]) >> 28) & 0x1)
	out[outPos+29] = int32((uint32(in[inPos+0]) >> 29) & 0x1)
	out[outPos+30] = int32((uint32(in[inPos+0]) >> 30) & 0x1)
	out[outPos+31] = int32(uint32(in[inPos+0]) >> 31)
}

func unpack32w2(in []int32, inPos int, out []int32, outPos int) {
	out[outPos+0] = int32(uint32(in[inPos+0]) & 0x3)
	out[outPos+1] = int32((uint32(in[inPos+0]) >> 2) & 0x3)
	out[outPos+2] = int32((uint32(in[inPos+0]) >> 4) & 0x3)
	out[outPos+3] = int32((uint32(in[inPos+0]) >> 6) & 0x3)
	out[outPos+4] = int32((uint32(in[inPos+0]) >> 8) & 0x3)
	out[outPos+5] = int32((uint32(in[inPos+0]) >> 10) & 0x3)
	out[outPos+6] = int32((uint32(in[inPos+0]) >> 12) & 0x3)
	out[outPos+7] = int32((uint32(in[inPos+0]) >> 14) & 0x3)
	out[outPos+8] = int32((uint32(in[inPos+0]) >> 16) & 0x3)
	out[outPos+9] = int32((uint32(in[inPos+0]) >> 18) & 0x3)
	out[outPos+10] = int32((uint32(in[inPos+0]) >> 20) & 0x3)
	out[outPos+11] = int32((uint32(in[inPos+0]) >> 22) & 0x3)
	out[outPos+12] = int32((uint32(in[inPos+0]) >> 24) & 0x3)
	out[outPos+13] = int32((uint32(in[inPos+0]) >> 26) & 0x3)
	out[outPos+14] = int32((uint32(in[inPos+0]) >> 28) & 0x3)
	out[outPos+15] = int32(uint32(in[inPos+0]) >> 30)
	out[outPos+16] = int32(uint32(in[inPos+1]) & 0x3)
	out[outPos+17] = int32((uint32(in[inPos+1]) >> 2) & 0x3)
	out[outPos+18] = int32((uint32(in[inPos+1]) >> 4) & 0x3)
	out[outPos+19] = int32((uint32(in[inPos+1]) >> 6) & 0x3)
	out[outPos+20] = int32((uint32(in[inPos+1]) >> 8) & 0x3)
	out[outPos+21] = int32((uint32(in[inPos+1]) >> 10) & 0x3)
	out[outPos+22] = int32((uint32(in[inPos+1]) >> 12) & 0x3)
	out[outPos+23] = int32((uint32(in[inPos+1]) >> 14) & 0x3)
	out[outPos+24] = int32((uint32(in[inPos+1]) >> 16) & 0x3)
	out[outPos+25] = int32((uint32(in[inPos+1]) >> 18) & 0x3)
	out[outPos+26] = int32((uint32(in[inPos+1]) >> 20) & 0x3)
	out[outPos+27] = int32((uint32(in[inPos+1]) >> 22) & 0x3)
	out[outPos+28] = int32((uint32(in[inPos+1]) >> 24) & 0x3)
	out[outPos+29] = int32((uint32(in[inPos+1]) >> 26) & 0x3)
	out[outPos+30] = int32((uint32(in[inPos+1]) >> 28) & 0x3)
	out[outPos+31] = int32(uint32(in[inPos+1]) >> 30)
}

func unpack32w3(in []int32, inPos int, out []int32, outPos int) {
	out[outPos+0] = int32(uint32(in[inPos+0]) & 0x7)
	out[outPos+1] = int32((uint32(in[inPos+0]) >> 3) & 0x7)
	out[outPos+2] = int32((uint32(in[inPos+0]) >> 6) & 0x7)
	out[outPos+3] = int32((uint32(in[inPos+0]) >> 9) & 0x7)
	out[outPos+4] = int32((uint32(in[inPos+0]) >> 12) & 0x7)
	out[outPos+5] = int32((uint32(in[inPos+0]) >> 15) & 0x7)
	out[outPos+6] = int32((uint32(in[inPos+0]) >> 18) & 0x7)
	out[outPos+7] = int32((uint32(in[inPos+0]) >> 21) & 0x7)
	out[outPos+8] = int32((uint32(in[inPos+0]) >> 24) & 0x7)
	out[outPos+9] = int32((uint32(in[inPos+0]) >> 27) & 0x7)
	out[outPos+10] = int32(((uint32(in[inPos+0]) >> 30) | (uint32(in[inPos+1]) << 2)) & 0x7)
	out[outPos+11] = int32((uint32(in[inPos+1]) >> 1) & 0x7)
	out[outPos+12] = int32((uint32(in[inPos+1]) >> 4) & 0x7)
	out[outPos+13] = int32((uint32(in[inPos+1]) >> 7) & 0x7)
	out[outPos+14] = int32((uint32(in[inPos+1]) >> 10) & 0x7)
	out[outPos+15] = int32((uint32(in[inPos+1]) >> 13) & 0x7)
	out[outPos+16] = int32((uint32(in[inPos+1]) >> 16) & 0x7)
	out[outPos+17] = int32((uint32(in[inPos+1]) >> 19) & 0x7)
	out[outPos+18] = int32((uint32(in[inPos+1]) >> 22) & 0x7)
	out[outPos+19] = int32((uint32(in[inPos+1]) >> 25) & 0x7)
	out[outPos+20] = int32((uint32(in[inPos+1]) >> 28) & 0x7)
	out[outPos+21] = int32(((uint32(in[inPos+1]) >> 31) | (uint32(in[inPos+2]) << 1)) & 0x7)
	out[outPos+22] = int32((uint32(in[inPos+2]) >> 2) & 0x7)
	out[outPos+23] = int32((uint32(in[inPos+2]) >> 5) & 0x7)
	out[outPos+24] = int32((uint32(in[inPos+2]) >> 8) & 0x7)
	out[outPos+25] = int32((uint32(in[inPos+2]) >> 11) & 0x7)
	out[outPos+26] = int32((uint32(in[inPos+2]) >> 14) & 0x7)
	out[outPos+27] = int32((uint32(in[inPos+2]) >> 17) & 0x7)
	out[outPos+28] = int32((uint32(in[inPos+2]) >> 20) & 0x7)
	out[outPos+29] = int32((uint32(in[inPos+2]) >> 23) & 0x7)
	out[outPos+30] = int32((uint32(in[inPos+2]) >> 26) & 0x7)
	out[outPos+31] = int32(uint32(in[inPos+2]) >> 29)
}

func unpack32w4(in []int32, inPos int, out []int32, outPos int) {
	out[outPos+0] = int32(uint32(in[inPos+0]) & 0xf)
	out[outPos+1] = int32((uint32(in[inPos+0]) >> 4) & 0xf)
	out[outPos+2] = int32((uint32(in[inPos+0]) >> 8) & 0xf)
	out[outPos+3] = int32((uint32(in[inPos+0]) >> 12) & 0xf)
	out[outPos+4] = int32((uint32(in[inPos+0]) >> 16) & 0xf)
	out[outPos+5] = int32((uint32(in[inPos+0]) >> 20) & 0xf)
	out[outPos+6] = int32((uint32(in[inPos+0]) >> 24) & 0xf)
	out[outPos+7] = int32(uint32(in[inPos+0]) >> 28)
	out[outPos+8] = int32(uint32(in[inPos+1]) & 0xf)
	out[outPos+9] = int32((uint32(in[inPos+1]) >> 4) & 0xf)
	out[outPos+10] = int32((uint32(in[inPos+1]) >> 8) & 0xf)
	out[outPos+11] = int32((uint32(in[inPos+1]) >> 12) & 0xf)
	out[outPos+12] = int32((uint32(in[inPos+1]) >> 16) & 0xf)
	out[outPos+13] = int32((uint32(in[inPos+1]) >> 20) & 0xf)
	out[outPos+14] = int32((uint32(in[inPos+1]) >> 24) & 0xf)
	out[outPos+15] = int32(uint32(in[inPos+1]) >> 28)
	out[outPos+16] = int32(uint32(in[inPos+2]) & 0xf)
	out[outPos+17] = int32((uint32(in[inPos+2]) >> 4) & 0xf)
	out[outPos+18] = int32((uint32(in[inPos+2]) >> 8) & 0xf)
	out[outPos+19] = int32((uint32(in[inPos+2]) >> 12) & 0xf)
	out[outPos+20] = int32((uint32(in[inPos+2]) >> 16) & 0xf)
	out[outPos+21] = int32((uint32(in[inPos+2]) >> 20) & 0xf)
	out[outPos+22] = int32((uint32(in[inPos+2]) >> 24) & 0xf)
	out[outPos+23] = int32(uint32(in[inPos+2]) >> 28)
	out[outPos+24] = int32(uint32(in[inPos+3]) & 0xf)
	out[outPos+25] = int32((uint32(in[inPos+3]) >> 4) & 0xf)
	out[outPos+26] = int32((uint32(in[inPos+3]) >> 8) & 0xf)
	out[outPos+27] = int32((uint32(in[inPos+3]) >> 12) & 0xf)
	out[outPos+28] = int32((uint32(in[inPos+3]) >> 16) & 0xf)
	out[outPos+29] = int32((uint32(in[inPos+3]) >> 20) & 0xf)
	out[outPos+30] = int32((uint32(in[inPos+3]) >> 24) & 0xf)
	out[outPos+31] = int32(uint32(in[inPos+3]) >> 28)
}

func unpack32w5(in []int32, inPos int, out []int32, outPos int) {
	out[outPos+0] = int32(uint32(in[inPos+0]) & 0x1f)
	out[outPos+1] = int32((uint32(in[inPos+0]) >> 5) & 0x1f)
	out[outPos+2] = int32((uint32(in[inPos+0]) >> 10) & 0x1f)
	out[outPos+3] = int32((uint32(in[inPos+0]) >> 15) & 0x1f)
	out[outPos+4] = int32((uint32(in[inPos+0]) >> 20) & 0x1f)
	out[outPos+5] = int32((uint32(in[inPos+0]) >> 25) & 0x1f)
	out[outPos+6] = int32(((uint32(in[inPos+0]) >> 30) | (uint32(in[inPos+1]) << 2)) & 0x1f)
	out[outPos+7] = int32((uint32(in[inPos+1]) >> 3) & 0x1f)
	out[outPos+8] = int32((uint32(in[inPos+1]) >> 8) & 0x1f)
	out[outPos+9] = int32((uint32(in[inPos+1]) >> 13) & 0x1f)
	out[outPos+10] = int32((uint32(in[inPos+1]) >> 18) & 0x1f)
	out[outPos+11] = int32((uint32(in[inPos+1]) >> 23) & 0x1f)
	out[outPos+12] = int32(((uint32(in[inPos+1]) >> 28) | (uint32(in[inPos+2]) << 4)) & 0x1f)
	out[outPos+13] = int32((uint32(in[inPos+2]) >> 1) & 0x1f)
	out[outPos+14] = int32((uint32(in[inPos+2]) >> 6) & 0x1f)
	out[outPos+15] = int32((uint32(in[inPos+2]) >> 11) & 0x1f)
	out[outPos+16] = int32((uint32(in[inPos+2]) >> 16) & 0x1f)
	out[outPos+17] = int32((uint32(in[inPos+2]) >> 21) & 0x1f)
	out[outPos+18] = int32((uint32(in[inPos+2]) >> 26) & 0x1f)
	out[outPos+19] = int32(((uint32(in[inPos+2]) >> 31) | (uint32(in[inPos+3]) << 1)) & 0x1f)
	out[outPos+20] = int32((uint32(in[inPos+3]) >> 4) & 0x1f)
	out[outPos+21] = int32((uint32(in[inPos+3]) >> 9) & 0x1f)
	out[outPos+22] = int32((uint32(in[inPos+3]) >> 14) & 0x1f)
	out[outPos+23] = int32((uint32(in[inPos+3]) >> 19) & 0x1f)
	out[outPos+24] = int32((uint32(in[inPos+3]) >> 24) & 0x1f)
	out[outPos+25] = int32(((uint32(in[inPos+3]) >> 29) | (uint32(in[inPos+4]) << 3)) & 0x1f)
	out[outPos+26] = int32((uint32(in[inPos+4]) >> 2) & 0x1f)
	out[outPos+27] = int32((uint32(in[inPos+4]) >> 7) & 0x1f)
	out[outPos+28] = int32((uint32(in[inPos+4]) >> 12) & 0x1f)
	out[outPos+29] = int32((uint32(in[inPos+4]) >> 17) & 0x1f)
	out[outPos+30] = int32((uint32(in[inPos+4]) >> 22) & 0x1f)
	out[outPos+31] = int32(uint32(in[inPos+4]) >> 27)
}

func unpack32w6(in []int32, inPos int, out []int32, outPos int) {
	out[outPos+0] = int32(uint32(in[inPos+0]) & 0x3f)
	out[outPos+1] = int32((uint32(in[inPos+0]) >> 6) & 0x3f)
	out[outPos+2] = int32((uint32(in[inPos+0]) >> 12) & 0x3f)
	out[outPos+3] = int32((uint32(in[inPos+0]) >> 18) & 0x3f)
	out[outPos+4] = int32((uint32(in[inPos+0]) >> 24) & 0x3f)
	out[outPos+5] = int32(((uint32(in[inPos+0]) >> 30) | (uint32(in[inPos+1]) << 2)) & 0x3f)
	out[outPos+6] = int32((uint32(in[inPos+1]) >> 4) & 0x3f)
	out[outPos+7] = int32((uint32(in[inPos+1]) >> 10) & 0x3f)
	out[outPos+8] = int32((uint32(in[inPos+1]) >> 16) & 0x3f)
	out[outPos+9] = int32((uint32(in[inPos+1]) >> 22) & 0x3f)
	out[outPos+10] = int32(((uint32(in[inPos+1]) >> 28) | (uint32(in[inPos+2]) << 4)) & 0x3f)
	out[outPos+11] = int32((uint32(in[inPos+2]) >> 2) & 0x3f)
	out[outPos+12] = int32((uint32(in[inPos+2]) >> 8) & 0x3f)
	out[outPos+13] = int32((uint32(in[inPos+2]) >> 14) & 0x3f)
	out[outPos+14] = int32((uint32(in[inPos+2]) >> 20) & 0x3f)
	out[outPos+15] = int32(uint32(in[inPos+2]) >> 26)
	out[outPos+16] = int32(uint32(in[inPos+3]) & 0x3f)
	out[outPos+17] = int32((uint32(in[inPos+3]) >> 6) & 0x3f)
	out[outPos+18] = int32((uint32(in[inPos+3]) >> 12) & 0x3f)
	out[outPos+19] = int32((uint32(in[inPos+3]) >> 18) & 0x3f)
	out[outPos+20] = int32((uint32(in[inPos+3]) >> 24) & 0x3f)
	out[outPos+21] = int32(((uint32(in[inPos+3]) >> 30) | (uint32(in[inPos+4]) << 2)) & 0x3f)
	out[outPos+22] = int32((uint32(in[inPos+4]) >> 4) & 0x3f)
	out[outPos+23] = int32((uint32(in[inPos+4]) >> 10) & 0x3f)
	out[outPos+24] = int32((uint32(in[inPos+4]) >> 16) & 0x3f)
	out[outPos+25] = int32((uint32(in[inPos+4]) >> 22) & 0x3f)
	out[outPos+26] = int32(((uint32(in[inPos+4]) >> 28) | (uint32(in[inPos+5]) << 4)) & 0x3f)
	out[outPos+27] = int32((uint32(in[inPos+5]) >> 2) & 0x3f)
	out[outPos+28] = int32((uint32(in[inPos+5]) >> 8) & 0x3f)
	out[outPos+29] = int32((uint32(in[inPos+5]) >> 14) & 0x3f)
	out[outPos+30] = int32((uint32(in[inPos+5]) >> 20) & 0x3f)
	out[outPos+31] = int32(uint32(in[inPos+5]) >> 26)
}

func unpack32w7(in []int32, inPos int, out []int32, outPos int) {
	out[outPos+0] = int32(uint32(in[inPos+0]) & 0x7f)
	out[outPos+1] = int32((uint32(in[inPos+0]) >> 7) & 0x7f)
	out[outPos+2] = int32((uint32(in[inPos+0]) >> 14) & 0x7f)
	out[outPos+3] = int32((uint32(in[inPos+0]) >> 21) & 0x7f)
	out[outPos+4] = int32(((uint32(in[inPos+0]) >> 28) | (uint32(in[inPos+1]) << 4)) & 0x7f)
	out[outPos+5] = int32((uint32(in[inPos+1]) >> 3) & 0x7f)
	out[outPos+6] = int32((uint32(in[inPos+1]) >> 10) & 0x7f)
	out[outPos+7] = int32((uint32(in[inPos+1]) >> 17) & 0x7f)
	out[outPos+8] = int32((uint32(in[inPos+1]) >> 24) & 0x7f)
	out[outPos+9] = int32(((uint32(in[inPos+1]) >> 31) | (uint32(in[inPos+2]) << 1)) & 0x7f)
	out[outPos+10] = int32((uint32(in[inPos+2]) >> 6) & 0x7f)
	out[outPos+11] = int32((uint32(in[inPos+2]) >> 13) & 0x7f)
	out[outPos+12] = int32((uint32(in[inPos+2]) >> 20) & 0x7f)
	out[outPos+13] = int32(((uint32(in[inPos+2]) >> 27) | (uint32(in[inPos+3]) << 5)) & 0x7f)
	out[outPos+14] = int32((uint32(in[inPos+3]) >> 2) & 0x7f)
	out[outPos+15] = int32((uint32(in[inPos+3]) >> 9) & 0x7f)
	out[outPos+16] = int32((uint32(in[inPos+3]) >> 16) & 0x7f)
	out[outPos+17] = int32((uint32(in[inPos+3]) >> 23) & 0x7f)
	out[outPos+18] = int32(((uint32(in[inPos+3]) >> 30) | (uint32(in[inPos+4]) << 2)) & 0x7f)
	out[outPos+19] = int32((uint32(in[inPos+4]) >> 5) & 0x7f)
	out[outPos+20] = int32((uint32(in[inPos+4]) >> 12) & 0x7f)
	out[outPos+21] = int32((uint32(in[inPos+4]) >> 19) & 0x7f)
	out[outPos+22] = int32(((uint32(in[inPos+4]) >> 26) | (uint32(in[inPos+5]) << 6)) & 0x7f)
	out[outPos+23] = int32((uint32(in[inPos+5]) >> 1) & 0x7f)
	out[outPos+24] = int32((uint32(in[inPos+5]) >> 8) & 0x7f)
	out[outPos+25] = int32((uint32(in[inPos+5]) >> 15) & 0x7f)
	out[outPos+26] = int32((uint32(in[inPos+5]) >> 22) & 0x7f)
	out[outPos+27] = int32(((uint32(in[inPos+5]) >> 29) | (uint32(in[inPos+6]) << 3)) & 0x7f)
	out[outPos+28] = int32((uint32(in[inPos+6]) >> 4) & 0x7f)
	out[outPos+29] = int32((uint32(in[inPos+6]) >> 11) & 0x7f)
	out[outPos+30] = int32((uint32(in[inPos+6]) >> 18) & 0x7f)
	out[outPos+31] = int32(uint32(in[inPos+6]) >> 25)
}

func unpack32w8(in []int32, inPos int, out []int32, outPos int) {
	out[outPos+0] = int32(uint32(in[inPos+0]) & 0xff)
	out[outPos+1] = int32((uint32(in[inPos+0]) >> 8) & 0xff)
	out[outPos+2] = int32((uint32(in[inPos+0]) >> 16) & 0xff)
	out[outPos+3] = int32(uint32(in[inPos+0]) >> 24)
	out[outPos+4] = int32(uint32(in[inPos+1]) & 0xff)
	out[outPos+5] = int32((uint32(in[inPos+1]) >> 8) & 0xff)
	out[outPos+6] = int32((uint32(in[inPos+1]) >> 16) & 0xff)
	out[outPos+7] = int32(uint32(in[inPos+1]) >> 24)
	out[outPos+8] = int32(uint32(in[inPos+2]) & 0xff)
	out[outPos+9] = int32((uint32(in[inPos+2]) >> 8) & 0xff)
	out[outPos+10] = int32((uint32(in[inPos+2]) >> 16) & 0xff)
	out[outPos+11] = int32(uint32(in[inPos+2]) >> 24)
	out[outPos+12] = int32(uint32(in[inPos+3]) & 0xff)
	out[outPos+13] = int32((uint32(in[inPos+3]) >> 8) & 0xff)
	out[outPos+14] = int32((uint32(in[inPos+3]) >> 16) & 0xff)
	out[outPos+15] = int32(uint32(in[inPos+3]) >> 24)
	out[outPos+16] = int32(uint32(in[inPos+4]) & 0xff)
	out[outPos+17] = int32((uint32(in[inPos+4]) >> 8) & 0xff)
	out[outPos+18] = int32((uint32(in[inPos+4]) >> 16) & 0xff)
	out[outPos+19] = int32(uint32(in[inPos+4]) >> 24)
	out[outPos+20] = int32(uint32(in[inPos+5]) & 0xff)
	out[outPos+21] = int32((uint32(in[inPos+5]) >> 8) & 0xff)
	out[outPos+22] = int32((uint32(in[inPos+5]) >> 16) & 0xff)
	out[outPos+23] = int32(uint32(in[inPos+5]) >> 24)
	out[outPos+24] = int32(uint32(in[inPos+6]) & 0xff)
	out[outPos+25] = int32((uint32(in[inPos+6]) >> 8) & 0xff)
	out[outPos+26] = int32((uint32(in[inPos+6]) >> 16) & 0xff)
	out[outPos+27] = int32(uint32(in[inPos+6]) >> 24)
	out[outPos+28] = int32(uint32(in[inPos+7]) & 0xff)
	out[outPos+29] = int32((uint32(in[inPos+7]) >> 8) & 0xff)
	out[outPos+30] = int32((uint32(in[inPos+7]) >> 16) & 0xff)
	out[outPos+31] = int32(uint32(in[inPos+7]) >> 24)
}

func unpack32w9(in []int32, inPos int, out []int32, outPos int) {
	out[outPos+0] = int32(uint32(in[inPos+0]) & 0x1ff)
	out[outPos+1] = int32((uint32(in[inPos+0]) >> 9) & 0x1ff)
	out[outPos+2] = int32((uint32(in[inPos+0]) >> 18) & 0x1ff)
	out[outPos+3] = int32(((uint32(in[inPos+0]) >> 27) | (uint32(in[inPos+1]) << 5)) & 0x1ff)
	out[outPos+4] = int32((uint32(in[inPos+1]) >> 4) & 0x1ff)
	out[outPos+5] = int32((uint32(in[inPos+1]) >> 13) & 0x1ff)
	out[outPos+6] = int32((uint32(in[inPos+1]) >> 22) & 0x1ff)
	out[outPos+7] = int32(((uint32(in[inPos+1]) >> 31) | (uint32(in[inPos+2]) << 1)) & 0x1ff)
	out[outPos+8] = int32((uint32(in[inPos+2]) >> 8) & 0x1ff)
	out[outPos+9] = int32((uint32(in[inPos+2]) >> 17) & 0x1ff)
	out[outPos+10] = int32(((uint32(in[inPos+2]) >> 26) | (uint32(in[inPos+3]) << 6)) & 0x1ff)
	out[outPos+11] = int32((uint32(in[inPos+3]) >> 3) & 0x1ff)
	out[outPos+12] = int32((uint32(in[inPos+3]) >> 12) & 0x1ff)
	out[outPos+13] = int32((uint32(in[inPos+3]) >> 21) & 0x1ff)
	out[outPos+14] = int32(((uint32(in[inPos+3]) >> 30) | (uint32(in[inPos+4]) << 2)) & 0x1ff)
	out[outPos+15] = int32((uint32(in[inPos+4]) >> 7) & 0x1ff)
	out[outPos+16] = int32((uint32(in[inPos+4]) >> 16) & 0x1ff)
	out[outPos+17] = int32(((uint32(in[inPos+4]) >> 25) | (uint32(in[inPos+5]) << 7)) & 0x1ff)
	out[outPos+18] = int32((uint32(in[inPos+5]) >> 2) & 0x1ff)
	out[outPos+19] = int32((uint32(in[inPos+5]) >> 11) & 0x1ff)
	out[outPos+20] = int32((uint32(in[inPos+5]) >> 20) & 0x1ff)
	out[outPos+21] = int32(((uint32(in[inPos+5]) >> 29) | (uint32(in[inPos+6]) << 3)) & 0x1ff)
	out[outPos+22] = int32((uint32(in[inPos+6]) >> 6) & 0x1ff)
	out[outPos+23] = int32((uint32(in[inPos+6]) >> 15) & 0x1ff)
	out[outPos+24] = int32(((uint32(in[inPos+6]) >> 24) | (uint32(in[inPos+7]) << 8)) & 0x1ff)
	out[outPos+25] = int32((uint32(in[inPos+7]) >> 1) & 0x1ff)
	out[outPos+26] = int32((uint32(in[inPos+7]) >> 10) & 0x1ff)
	out[outPos+27] = int32((uint32(in[inPos+7]) >> 19) & 0x1ff)
	out[outPos+28] = int32(((uint32(in[inPos+7]) >> 28) | (uint32(in[inPos+8]) << 4)) & 0x1ff)
	out[outPos+29] = int32((uint32(in[inPos+8]) >> 5) & 0x1ff)
	out[outPos+30] = int32((uint32(in[inPos+8]) >> 14) & 0x1ff)
	out[outPos+31] = int32(uint32(in[inPos+8]) >> 23)
}

func unpack32w10(in []int32, inPos int, out []int32, outPos int) {
	out[outPos+0] = int32(uint32(in[inPos+0]) & 0x3ff)
	out[outPos+1] = int32((uint32(in[inPos+0]) >> 10) & 0x3ff)
	out[outPos+2] = int32((uint32(in[inPos+0]) >> 20) & 0x3ff)
	out[outPos+3] = int32(((uint32(in[inPos+0]) >> 30) | (uint32(in[inPos+1]) << 2)) & 0x3ff)
	out[outPos+4] = int32((uint32(in[inPos+1]) >> 8) & 0x3ff)
	out[outPos+5] = int32((uint32(in[inPos+1]) >> 18) & 0x3ff)
	out[outPos+6] = int32(((uint32(in[inPos+1]) >> 28) | (uint32(in[inPos+2]) << 4)) & 0x3ff)
	out[outPos+7] = int32((uint32(in[inPos+2]) >> 6) & 0x3ff)
	out[outPos+8] = int32((uint32(in[inPos+2]) >> 16) & 0x3ff)
	out[outPos+9] = int32(((uint32(in[inPos+2]) >> 26) | (uint32(in[inPos+3]) << 6)) & 0x3ff)
	out[outPos+10] = int32((uint32(in[inPos+3]) >> 4) & 0x3ff)
	out[outPos+11] = int32((uint32(in[inPos+3]) >> 14) & 0x3ff)
	out[outPos+12] = int32(((uint32(in[inPos+3]) >> 24) | (uint32(in[inPos+4]) << 8)) & 0x3ff)
	out[outPos+13] = int32((uint32(in[inPos+4]) >> 2) & 0x3ff)
	out[outPos+14] = int32((uint32(in[inPos+4]) >> 12) & 0x3ff)
	out[outPos+15] = int32(uint32(in[inPos+4]) >> 22)
	out[outPos+16] = int32(uint32(in[inPos+5]) & 0x3ff)
	out[outPos+17] = int32((uint32(in[inPos+5]) >> 10) & 0x3ff)
	out[outPos+18] = int32((uint32(in[inPos+5]) >> 20) & 0x3ff)
	out[outPos+19] = int32(((uint32(in[inPos+5]) >> 30) | (uint32(in[inPos+6]) << 2)) & 0x3ff)
	out[outPos+20] = int32((uint32(in[inPos+6]) >> 8) & 0x3ff)
	out[outPos+21] = int32((uint32(in[inPos+6]) >> 18) & 0x3ff)
	out[outPos+22] = int32(((uint32(in[inPos+6]) >> 28) | (uint32(in[inPos+7]) << 4)) & 0x3ff)
	out[outPos+23] = int32((uint32(in[inPos+7]) >> 6) & 0x3ff)
	out[outPos+24] = int32((uint32(in[inPos+7]) >> 16) & 0x3ff)
	out[outPos+25] = int32(((uint32(in[inPos+7]) >> 26) | (uint32(in[inPos+8]) << 6)) & 0x3ff)
	out[outPos+26] = int32((uint32(in[inPos+8]) >> 4) & 0x3ff)
	out[outPos+27] = int32((uint32(in[inPos+8]) >> 14) & 0x3ff)
	out[outPos+28] = int32(((uint32(in[inPos+8]) >> 24) | (uint32(in[inPos+9]) << 8)) & 0x3ff)
	out[outPos+29] = int32((uint32(in[inPos+9]) >> 2) & 0x3ff)
	out[outPos+30] = int32((uint32(in[inPos+9]) >> 12) & 0x3ff)
	out[outPos+31] = int32(uint32(in[inPos+9]) >> 22)
}

func unpack32w11(in []int32, inPos int, out []int32, outPos int) {
	out[outPos+0] = int32(uint32(in[inPos+0]) & 0x7ff)
	out[outPos+1] = int32((uint32(in[inPos+0]) >> 11) & 0x7ff)
	out[outPos+2] = int32(((uint32(in[inPos+0]) >> 22) | (uint32(in[inPos+1]) << 10)) & 0x7ff)
	out[outPos+3] = int32((uint32(in[inPos+1]) >> 1) & 0x7ff)
	out[outPos+4] = int32((uint32(in[inPos+1]) >> 12) & 0x7ff)
	out[outPos+5] = int32(((uint32(in[inPos+1]) >> 23) | (uint32(in[inPos+2]) << 9)) & 0x7ff)
	out[outPos+6] = int32((uint32(in[inPos+2]) >> 2) & 0x7ff)
	out[outPos+7] = int32((uint32(in[inPos+2]) >> 13) & 0x7ff)
	out[outPos+8] = int32(((uint32(in[inPos+2]) >> 24) | (uint32(in[inPos+3]) << 8)) & 0x7ff)
	out[outPos+9] = int32((uint32(in[inPos+3]) >> 3) & 0x7ff)
	out[outPos+10] = int32((uint32(in[inPos+3]) >> 14) & 0x7ff)
	out[outPos+11] = int32(((uint32(in[inPos+3]) >> 25) | (uint32(in[inPos+4]) << 7)) & 0x7ff)
	out[outPos+12] = int32((uint32(in[inPos+4]) >> 4) & 0x7ff)
	out[outPos+13] = int32((uint32(in[inPos+4]) >> 15) & 0x7ff)
	out[outPos+14] = int32(((uint32(in[inPos+4]) >> 26) | (uint32(in[inPos+5]) << 6)) & 0x7ff)
	out[outPos+15] = int32((uint32(in[inPos+5]) >> 5) & 0x7ff)
	out[outPos+16] = int32((uint32(in[inPos+5]) >> 16) & 0x7ff)
	out[outPos+17] = int32(((uint32(in[inPos+5]) >> 27) | (uint32(in[inPos+6]) << 5)) & 0x7ff)
	out[outPos+18] = int32((uint32(in[inPos+6]) >> 6) & 0x7ff)
	out[outPos+19] = int32((uint32(in[inPos+6]) >> 17) & 0x7ff)
	out[outPos+20] = int32(((uint32(in[inPos+6]) >> 28) | (uint32(in[inPos+7]) << 4)) & 0x7ff)
	out[outPos+21] = int32((uint32(in[inPos+7]) >> 7) & 0x7ff)
	out[outPos+22] = int32((uint32(in[inPos+7]) >> 18) & 0x7ff)
	out[outPos+23] = int32(((uint32(in[inPos+7]) >> 29) | (uint32(in[inPos+8]) << 3)) & 0x7ff)
	out[outPos+24] = int32((uint32(in[inPos+8]) >> 8) & 0x7ff)
	out[outPos+25] = int32((uint32(in[inPos+8]) >> 19) & 0x7ff)
	out[outPos+26] = int32(((uint32(in[inPos+8]) >> 30) | (uint32(in[inPos+9]) << 2)) & 0x7ff)
	out[outPos+27] = int32((uint32(in[inPos+9]) >> 9) & 0x7ff)
	out[outPos+28] = int32((uint32(in[inPos+9]) >> 20) & 0x7ff)
	out[outPos+29] = int32(((uint32(in[inPos+9]) >> 31) | (uint32(in[inPos+10]) << 1)) & 0x7ff)
	out[outPos+30] = int32((uint32(in[inPos+10]) >> 10) & 0x7ff)
	out[outPos+31] = int32(uint32(in[inPos+10]) >> 21)
}

func unpack32w12(in []int32, inPos int, out []int32, outPos int) {
	out[outPos+0] = int32(uint32(in[inPos+0]) & 0xfff)
	out[outPos+1] = int32((uint32(in[inPos+0]) >> 12) & 0xfff)
	out[outPos+2] = int32(((uint32(in[inPos+0]) >> 24) | (uint32(in[inPos+1]) << 8)) & 0xfff)
	out[outPos+3] = int32((uint32(in[inPos+1]) >> 4) & 0xfff)
	out[outPos+4] = int32((uint32(in[inPos+1]) >> 16) & 0xfff)
	out[outPos+5] = int32(((uint32(in[inPos+1]) >> 28) | (uint32(in[inPos+2]) << 4)) & 0xfff)
	out[outPos+6] = int32((uint32(in[inPos+2]) >> 8) & 0xfff)
	out[outPos+7] = int32(uint32(in[inPos+2]) >> 20)
	out[outPos+8] = int32(uint32(in[inPos+3]) & 0xfff)
	out[outPos+9] = int32((uint32(in[inPos+3]) >> 12) & 0xfff)
	out[outPos+10] = int32(((uint32(in[inPos+3]) >> 24) | (uint32(in[inPos+4]) << 8)) & 0xfff)
	out[outPos+11] = int32((uint32(in[inPos+4]) >> 4) & 0xfff)
	out[outPos+12] = int32((uint32(in[inPos+4]) >> 16) & 0xfff)
	out[outPos+13] = int32(((uint32(in[inPos+4]) >> 28) | (uint32(in[inPos+5]) << 4)) & 0xfff)
	out[outPos+14] = int32((uint32(in[inPos+5]) >> 8) & 0xfff)
	out[outPos+15] = int32(uint32(in[inPos+5]) >> 20)
	out[outPos+16] = int32(uint32(in[inPos+6]) & 0xfff)
	out[outPos+17] = int32((uint32(in[inPos+6]) >> 12) & 0xfff)
	out[outPos+18] = int32(((uint32(in[inPos+6]) >> 24) | (uint32(in[inPos+7]) << 8)) & 0xfff)
	out[outPos+19] = int32((uint32(in[inPos+7]) >> 4) & 0xfff)
	out[outPos+20] = int32((uint32(in[inPos+7]) >> 16) & 0xfff)
	out[outPos+21] = int32(((uint32(in[inPos+7]) >> 28) | (uint32(in[inPos+8]) << 4)) & 0xfff)
	out[outPos+22] = int32((uint32(in[inPos+8]) >> 8) & 0xfff)
	out[outPos+23] = int32(uint32(in[inPos+8]) >> 20)
	out[outPos+24] = int32(uint32(in[inPos+9]) & 0xfff)
	out[outPos+25] = int32((uint32(in[inPos+9]) >> 12) & 0xfff)
	out[outPos+26] = int32(((uint32(in[inPos+9]) >> 24) | (uint32(in[inPos+10]) << 8)) & 0xfff)
	out[outPos+27] = int32((uint32(in[inPos+10]) >> 4) & 0xfff)
	out[outPos+28] = int32((uint32(in[inPos+10]) >> 16) & 0xfff)
	out[outPos+29] = int32(((uint32(in[inPos+10]) >> 28) | (uint32(in[inPos+11]) << 4)) & 0xfff)
	out[outPos+30] = int32((uint32(in[inPos+11]) >> 8) & 0xfff)
	out[outPos+31] = int32(uint32(in[inPos+11]) >> 20)
}

func unpack32w16(in []int32, inPos int, out []int32, outPos int) {
	out[outPos+0] = int32(uint32(in[inPos+0]) & 0xffff)
	out[outPos+1] = int32(uint32(in[inPos+0]) >> 16)
	out[outPos+2] = int32(uint32(in[inPos+1]) & 0xffff)
	out[outPos+3] = int32(uint32(in[inPos+1]) >> 16)
	out[outPos+4] = int32(uint32(in[inPos+2]) & 0xffff)
	out[outPos+5] = int32(uint32(in[inPos+2]) >> 16)
	out[outPos+6] = int32(uint32(in[inPos+3]) & 0xffff)
	out[outPos+7] = int32(uint32(in[inPos+3]) >> 16)
	out[outPos+8] = int32(uint32(in[inPos+4]) & 0xffff)
	out[outPos+9] = int32(uint32(in[inPos+4]) >> 16)
	out[outPos+10] = int32(uint32(in[inPos+5]) & 0xffff)
	out[outPos+11] = int32(uint32(in[inPos+5]) >> 16)
	out[outPos+12] = int32(uint32(in[inPos+6]) & 0xffff)
	out[outPos+13] = int32(uint32(in[inPos+6]) >> 16)
	out[outPos+14] = int32(uint32(in[inPos+7]) & 0xffff)
	out[outPos+15] = int32(uint32(in[inPos+7]) >> 16)
	out[outPos+16] = int32(uint32(in[inPos+8]) & 0xffff)
	out[outPos+17] = int32(uint32(in[inPos+8]) >> 16)
	out[outPos+18] = int32(uint32(in[inPos+9]) & 0xffff)
	out[outPos+19] = int32(uint32(in[inPos+9]) >> 16)
	out[outPos+20] = int32(uint32(in[inPos+10]) & 0xffff)
	out[outPos+21] = int32(uint32(in[inPos+10]) >> 16)
	out[outPos+22] = int32(uint32(in[inPos+11]) & 0xffff)
	out[outPos+23] = int32(uint32(in[inPos+11]) >> 16)
	out[outPos+24] = int32(uint32(in[inPos+12]) & 0xffff)
	out[outPos+25] = int32(uint32(in[inPos+12]) >> 16)
	out[outPos+26] = int32(uint32(in[inPos+13]) & 0xffff)
	out[outPos+27] = int32(uint32(in[inPos+13]) >> 16)
	out[outPos+28] = int32(uint32(in[inPos+14]) & 0xffff)
	out[outPos+29] = int32(uint32(in[inPos+14]) >> 16)
	out[outPos+30] = int32(uint32(in[inPos+15]) & 0xffff)
	out[outPos+31] = int32(uint32(in[inPos+15]) >> 16)
}
