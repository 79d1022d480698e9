package blake3

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// output is a node that has not been compressed yet. Depending on where it
// sits in the tree it becomes either a chaining value or the root stream.
type output struct {
	inputChainingValue [8]uint32
	blockWords         [16]uint32
	counter            uint64
	blockLen           uint32
	flags              flag
}

func (o *output) chainingValue() [8]uint32 {
	return first8Words(compress(
		&o.inputChainingValue,
		&o.blockWords,
		o.counter,
		o.blockLen,
		o.flags,
	))
}

// rootBlock returns the 64 bytes of root output at the given output block
// counter.
func (o *output) rootBlock(outputBlockCounter uint64) [16]uint32 {
	return compress(
		&o.inputChainingValue,
		&o.blockWords,
		outputBlockCounter,
		o.blockLen,
		o.flags|root,
	)
}

// rootBytes fills out with the root stream starting at output block 0.
func (o *output) rootBytes(out []byte) {
	var outputBlockCounter uint64
	for len(out) > 0 {
		words := o.rootBlock(outputBlockCounter)
		out = out[putWords(out, &words):]
		outputBlockCounter++
	}
}

func parentOutput(left, right [8]uint32, key [8]uint32, flags flag) output {
	var m [16]uint32
	copy(m[:8], left[:])
	copy(m[8:], right[:])
	return output{
		inputChainingValue: key,
		blockWords:         m,
		counter:            0,
		blockLen:           BlockLen,
		flags:              parent | flags,
	}
}

func parentCV(left, right [8]uint32, key [8]uint32, flags flag) [8]uint32 {
	o := parentOutput(left, right, key, flags)
	return o.chainingValue()
}

// OutputReader reads the extendable output of a finished tree. It holds a
// private copy of the root node, so the Hasher it came from may keep
// absorbing without affecting it.
//
// The stream is 2^64-1 bytes long.
type OutputReader struct {
	node  output
	buf   [BlockLen]byte
	off   uint64
	valid bool
}

// Read implements io.Reader. It returns len(p), nil unless the read would
// extend beyond the end of the stream.
func (r *OutputReader) Read(p []byte) (int, error) {
	if r.off == math.MaxUint64 {
		return 0, io.EOF
	}
	if rem := math.MaxUint64 - r.off; uint64(len(p)) > rem {
		p = p[:rem]
	}
	n := len(p)
	for len(p) > 0 {
		pos := r.off % BlockLen
		if pos == 0 || !r.valid {
			r.fill(r.off / BlockLen)
		}
		k := copy(p, r.buf[pos:])
		p = p[k:]
		r.off += uint64(k)
	}
	return n, nil
}

func (r *OutputReader) fill(outputBlockCounter uint64) {
	words := r.node.rootBlock(outputBlockCounter)
	putWords(r.buf[:], &words)
	r.valid = true
}

// Seek implements io.Seeker. Positions past 2^63-1 are reachable but are
// reported as negative offsets.
func (r *OutputReader) Seek(offset int64, whence int) (int64, error) {
	var base uint64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = r.off
	case io.SeekEnd:
		base = math.MaxUint64
	default:
		return 0, errors.Errorf("blake3: invalid whence %d", whence)
	}

	var off uint64
	if offset < 0 {
		back := uint64(-offset)
		if back > base {
			return 0, errors.New("blake3: seek before start of output")
		}
		off = base - back
	} else {
		if uint64(offset) > math.MaxUint64-base {
			return 0, errors.New("blake3: seek beyond end of output")
		}
		off = base + uint64(offset)
	}

	r.off = off
	r.valid = false
	return int64(off), nil
}
