package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.NotNil(t, engine)
	require.Equal(t, binary.BigEndian, engine)
}

func TestEngine_ReadsWireWords(t *testing.T) {
	engine := GetBigEndianEngine()

	// An MLT stream word: most significant byte first.
	word := []byte{0x00, 0x00, 0x01, 0x00}
	require.Equal(t, uint32(256), engine.Uint32(word))

	// A FastPFOR aligned-count header of one block.
	header := []byte{0x00, 0x00, 0x01, 0x00}
	require.Equal(t, uint32(256), engine.Uint32(header))

	// All-ones words decode to the full unsigned range; the decoder
	// reinterprets them as int32 itself.
	require.Equal(t, uint32(0xffffffff), engine.Uint32([]byte{0xff, 0xff, 0xff, 0xff}))
}

func TestEngine_AppendRoundTrip(t *testing.T) {
	engine := GetBigEndianEngine()

	words := []uint32{0, 1, 256, 0x7fffffff, 0xffffffff}

	var buf []byte
	for _, w := range words {
		buf = engine.AppendUint32(buf, w)
	}
	require.Len(t, buf, len(words)*4)

	for i, w := range words {
		require.Equal(t, w, engine.Uint32(buf[i*4:]), "word %d", i)
	}
}

func TestEngine_AppendMatchesPut(t *testing.T) {
	engine := GetBigEndianEngine()

	appended := engine.AppendUint32(nil, 0xdeadbeef)

	put := make([]byte, 4)
	engine.PutUint32(put, 0xdeadbeef)

	require.Equal(t, put, appended)
}
