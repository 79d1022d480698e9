package blake3

import (
	"hash"

	"github.com/pkg/errors"
)

// Hasher is a streaming BLAKE3 hasher with extendable output.
//
// Finalize, Sum and XOF read the current state without changing it, so a
// Hasher can be squeezed any number of times and written to afterwards;
// further writes extend the same message. A Hasher is not safe for
// concurrent use.
type Hasher struct {
	chunk chunkState
	stack cvStack
	key   [8]uint32
	flags flag
	size  int
}

var _ hash.Hash = (*Hasher)(nil)

func newHasher(key [8]uint32, flags flag, size int) *Hasher {
	return &Hasher{
		chunk: newChunkState(key, 0, flags),
		key:   key,
		flags: flags,
		size:  size,
	}
}

// New constructs a new hasher for the standard hash function.
func New() *Hasher {
	return newHasher(iv, 0, OutLen)
}

// NewSized is like New but Sum appends size bytes of output. size must be
// between 1 and MaxSize.
func NewSized(size int) (*Hasher, error) {
	if size <= 0 || size > MaxSize {
		return nil, errors.WithMessagef(ErrInvalidSize, "got %d, want 1..%d", size, MaxSize)
	}
	return newHasher(iv, 0, size), nil
}

// NewKeyed constructs a new hasher for the keyed hash function. The key
// must be exactly KeyLen bytes.
func NewKeyed(key []byte) (*Hasher, error) {
	if len(key) != KeyLen {
		return nil, errors.WithMessagef(ErrInvalidKeyLength, "got %d bytes, want %d", len(key), KeyLen)
	}
	return newHasher(keyWords(key), keyedHash, OutLen), nil
}

// NewDeriveKey constructs a new hasher for the key derivation function.
// The context string should be hardcoded, globally unique and application
// specific; the key material is written to the returned hasher.
func NewDeriveKey(context string) *Hasher {
	contextHasher := newHasher(iv, deriveKeyContext, KeyLen)
	_, _ = contextHasher.Write([]byte(context))
	var contextKey [KeyLen]byte
	contextHasher.Finalize(contextKey[:])
	return newHasher(keyWords(contextKey[:]), deriveKeyMaterial, OutLen)
}

// Write adds input to the hash state. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		if h.chunk.len() == ChunkLen {
			o := h.chunk.output()
			totalChunks := h.chunk.chunkCounter + 1
			h.stack.addChunkCV(o.chainingValue(), totalChunks, h.key, h.flags)
			h.chunk = newChunkState(h.key, totalChunks, h.flags)
		}

		// Whole chunks with more input behind them never need the block
		// buffer. The last chunk always goes through update so that output
		// can finalize it.
		if h.chunk.len() == 0 && len(p) > ChunkLen {
			counter := h.chunk.chunkCounter
			for len(p) > ChunkLen {
				cv := chunkCVFull(p[:ChunkLen], h.key, counter, h.flags)
				counter++
				h.stack.addChunkCV(cv, counter, h.key, h.flags)
				p = p[ChunkLen:]
			}
			h.chunk = newChunkState(h.key, counter, h.flags)
		}

		want := ChunkLen - h.chunk.len()
		if want > len(p) {
			want = len(p)
		}
		h.chunk.update(p[:want])
		p = p[want:]
	}
	return n, nil
}

// Sum appends Size bytes of output to b and returns the resulting slice.
// It does not change the hash state.
func (h *Hasher) Sum(b []byte) []byte {
	out := make([]byte, h.size)
	h.Finalize(out)
	return append(b, out...)
}

// Reset clears the hash state and keeps the same key, flags and size.
func (h *Hasher) Reset() {
	h.chunk = newChunkState(h.key, 0, h.flags)
	h.stack.reset()
}

// Size returns the number of bytes Sum appends.
func (h *Hasher) Size() int { return h.size }

// BlockSize returns the block size of the underlying compression function.
func (h *Hasher) BlockSize() int { return BlockLen }

// Finalize fills out with output bytes. Calls with different lengths
// return prefixes of the same stream.
func (h *Hasher) Finalize(out []byte) {
	o := h.rootOutput()
	o.rootBytes(out)
}

// Squeeze returns n bytes of output. n must not be negative.
func (h *Hasher) Squeeze(n int) []byte {
	out := make([]byte, n)
	h.Finalize(out)
	return out
}

// Sum256 returns the 32-byte BLAKE3 hash of the current state.
func (h *Hasher) Sum256() [OutLen]byte {
	var out [OutLen]byte
	h.Finalize(out[:])
	return out
}

// XOF returns a reader over the output stream of the current state.
func (h *Hasher) XOF() *OutputReader {
	return &OutputReader{node: h.rootOutput()}
}

// Clone returns an independent copy of the hasher.
func (h *Hasher) Clone() *Hasher {
	c := *h
	return &c
}

func (h *Hasher) rootOutput() output {
	return h.stack.rootOutput(h.chunk.output(), h.key, h.flags)
}
