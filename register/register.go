/*
	Package register makes this BLAKE3 engine the multihash BLAKE3 hasher.

	It is meant to be used as a side-effecting import, e.g.

		import (
			_ "github.com/TACITVS/blake3ref/register"
		)

	Importing it replaces whatever BLAKE3 factory go-multihash registered
	by default.
*/
package register

import (
	"hash"

	"github.com/multiformats/go-multihash"
	mhcore "github.com/multiformats/go-multihash/core"

	"github.com/TACITVS/blake3ref/blake3"
)

// DefaultSize is the digest length used when the caller passes -1.
const DefaultSize = blake3.OutLen

func init() {
	mhcore.RegisterVariableSize(mhcore.BLAKE3, newHasher)
}

func newHasher(size int) (hash.Hash, bool) {
	if size == -1 {
		size = DefaultSize
	}
	h, err := blake3.NewSized(size)
	if err != nil {
		return nil, false
	}
	return h, true
}

// Sum returns the BLAKE3 multihash of data with a digest of size bytes, or
// DefaultSize when size is -1.
func Sum(data []byte, size int) (multihash.Multihash, error) {
	return multihash.Sum(data, multihash.BLAKE3, size)
}
