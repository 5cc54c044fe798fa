package fastpfor

import (
	"fmt"
	"sync"

	"github.com/arloliu/mlt/bitpack"
	"github.com/arloliu/mlt/errs"
	ioptions "github.com/arloliu/mlt/internal/options"
)

// The per-exception cost estimate used when choosing a block bit width:
// one position byte plus amortized stream overhead.
const overheadOfEachExcept = 8

// Workspace holds the growable buffers one encoder run needs: the per-width
// exception accumulation streams and the page byte container.
//
// A Workspace is not reentrant. Callers encoding tiles in parallel must give
// each encoder its own Workspace.
type Workspace struct {
	toBePacked    [33][]int32
	byteContainer []byte
	freqs         [33]int
}

// NewWorkspace creates an empty encoder workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

func (w *Workspace) reset() {
	for k := range w.toBePacked {
		w.toBePacked[k] = w.toBePacked[k][:0]
	}
	w.byteContainer = w.byteContainer[:0]
}

// Encoder produces FastPFOR payloads the Decoder understands when the
// encoder uses the default page size (see WithPageSize).
//
// The zero value is not usable; create encoders with NewEncoder. Encoders
// exist to round-trip the decoder in tests and tooling; production tiles are
// written by the MLT encoder toolchain.
type Encoder struct {
	ws       *Workspace
	pageSize int
}

// EncoderOption configures an Encoder.
type EncoderOption = ioptions.Option[*Encoder]

// WithPageSize overrides the values-per-page count. The size is rounded
// down to a multiple of BlockSize and must not end up zero.
//
// The Decoder splits pages at DefaultPageSize, so a payload encoded with a
// different page size decodes only when its aligned value count fits in one
// page of that size.
func WithPageSize(size int) EncoderOption {
	return ioptions.New(func(e *Encoder) error {
		size -= size % BlockSize
		if size <= 0 {
			return fmt.Errorf("page size must hold at least one block of %d values", BlockSize)
		}
		e.pageSize = size

		return nil
	})
}

// WithWorkspace supplies a caller-owned workspace, enabling parallel
// encoding with one workspace per goroutine.
func WithWorkspace(ws *Workspace) EncoderOption {
	return ioptions.New(func(e *Encoder) error {
		if ws == nil {
			return fmt.Errorf("workspace must not be nil")
		}
		e.ws = ws

		return nil
	})
}

// NewEncoder creates an encoder with the default page size and a private
// workspace unless options say otherwise.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		ws:       NewWorkspace(),
		pageSize: DefaultPageSize,
	}
	if err := ioptions.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Encode encodes values into a FastPFOR payload: the aligned-count header
// word, the pages, and the VByte tail, serialized as big-endian words.
//
// The returned byte length is always a multiple of four; the tail is
// zero-padded to the word boundary.
func (e *Encoder) Encode(values []int32) ([]byte, error) {
	aligned := len(values) - len(values)%BlockSize

	words := make([]int32, 1, 1+len(values)/2)
	words[0] = int32(aligned) //nolint:gosec

	for pos := 0; pos < aligned; pos += e.pageSize {
		size := aligned - pos
		if size > e.pageSize {
			size = e.pageSize
		}
		var err error
		words, err = e.encodePage(words, values[pos:pos+size])
		if err != nil {
			return nil, err
		}
	}

	out := make([]byte, 0, len(words)*4+(len(values)-aligned)*5)
	for _, w := range words {
		out = bigEndian.AppendUint32(out, uint32(w)) //nolint:gosec
	}
	out = appendVByteTail(out, values[aligned:])

	for len(out)%4 != 0 {
		out = append(out, 0)
	}

	return out, nil
}

// encodePage appends one encoded page of values (a multiple of BlockSize)
// to words.
func (e *Encoder) encodePage(words []int32, values []int32) ([]int32, error) {
	ws := e.ws
	ws.reset()

	headerPos := len(words)
	words = append(words, 0) // self-size patched below

	var block [BlockSize]int32
	for pos := 0; pos < len(values); pos += BlockSize {
		chunk := values[pos : pos+BlockSize]

		bestB, cExcept, maxBits := ws.bestBitWidths(chunk)
		ws.byteContainer = append(ws.byteContainer, byte(bestB), byte(cExcept))

		if cExcept > 0 {
			ws.byteContainer = append(ws.byteContainer, byte(maxBits))
			index := maxBits - bestB
			if index < 1 || index > 32 {
				return nil, fmt.Errorf("%w: exception bit width %d", errs.ErrInvalidBitWidth, index)
			}
			for i, v := range chunk {
				if bitWidth(uint32(v)) > bestB { //nolint:gosec
					if index != 1 {
						ws.toBePacked[index] = append(ws.toBePacked[index], int32(uint32(v)>>bestB)) //nolint:gosec
					}
					ws.byteContainer = append(ws.byteContainer, byte(i))
				}
			}
		}

		// Pack the low bestB bits of the whole block.
		copy(block[:], chunk)
		start := len(words)
		words = append(words, make([]int32, 8*bestB)...)
		for j := 0; j < BlockSize; j += 32 {
			if err := bitpack.Pack32(block[:], j, words, start+j/32*bestB, bestB); err != nil {
				return nil, err
			}
		}
	}

	words[headerPos] = int32(len(words) - headerPos) //nolint:gosec

	// Metadata section: byte container, exception bitmap, exception streams.
	byteSize := len(ws.byteContainer)
	words = append(words, int32(byteSize)) //nolint:gosec
	for i := 0; i < byteSize; i += 4 {
		var w uint32
		for j := 0; j < 4; j++ {
			var b byte
			if i+j < byteSize {
				b = ws.byteContainer[i+j]
			}
			w = w<<8 | uint32(b)
		}
		words = append(words, int32(w)) //nolint:gosec
	}

	var bitmap uint32
	for k := 2; k <= 32; k++ {
		if len(ws.toBePacked[k]) > 0 {
			bitmap |= 1 << (k - 2)
		}
	}
	words = append(words, int32(bitmap)) //nolint:gosec

	for k := 2; k <= 32; k++ {
		exc := ws.toBePacked[k]
		if len(exc) == 0 {
			continue
		}
		words = append(words, int32(len(exc))) //nolint:gosec
		start := len(words)
		words = append(words, make([]int32, (len(exc)*k+31)/32)...)
		if err := bitpack.PackExact(exc, 0, words, start, len(exc), k); err != nil {
			return nil, err
		}
	}

	return words, nil
}

// bestBitWidths picks the block bit width minimizing body+exception cost.
// Returns the chosen width, the exception count, and the maximum bit width
// present in the block.
func (ws *Workspace) bestBitWidths(chunk []int32) (bestB, cExcept, maxBits int) {
	freqs := &ws.freqs
	for i := range freqs {
		freqs[i] = 0
	}
	for _, v := range chunk {
		freqs[bitWidth(uint32(v))]++ //nolint:gosec
	}

	maxBits = 32
	for maxBits > 0 && freqs[maxBits] == 0 {
		maxBits--
	}

	bestB = maxBits
	bestCost := maxBits * BlockSize
	cExcept = 0
	except := 0
	for b := maxBits - 1; b >= 0; b-- {
		except += freqs[b+1]
		if except == BlockSize {
			break
		}
		cost := except*overheadOfEachExcept + except*(maxBits-b) + b*BlockSize + 8
		if maxBits-b == 1 {
			cost -= except
		}
		if cost < bestCost {
			bestCost = cost
			bestB = b
			cExcept = except
		}
	}

	return bestB, cExcept, maxBits
}

// bitWidth returns the number of significant bits in v (0 for 0).
func bitWidth(v uint32) int {
	n := 0
	for v != 0 {
		n++
		v >>= 1
	}

	return n
}

// appendVByteTail appends values in the MSB=1 terminator byte encoding.
func appendVByteTail(out []byte, values []int32) []byte {
	for _, v := range values {
		u := uint32(v) //nolint:gosec
		for u >= 0x80 {
			out = append(out, byte(u&0x7f))
			u >>= 7
		}
		out = append(out, byte(u|0x80))
	}

	return out
}

// defaultWorkspace backs the package-level Encode used by tests. Guarded by
// defaultWorkspaceMu because a Workspace is not reentrant.
var (
	defaultWorkspace   *Workspace
	defaultWorkspaceMu sync.Mutex
)

// Encode encodes values with a lazily-initialized shared workspace.
//
// Concurrent callers serialize on the shared workspace; use NewEncoder with
// WithWorkspace for parallel encoding.
func Encode(values []int32) ([]byte, error) {
	defaultWorkspaceMu.Lock()
	defer defaultWorkspaceMu.Unlock()

	if defaultWorkspace == nil {
		defaultWorkspace = NewWorkspace()
	}

	enc, err := NewEncoder(WithWorkspace(defaultWorkspace))
	if err != nil {
		return nil, err
	}

	return enc.Encode(values)
}
