package blake3

import "strings"

const (
	// Output and key sizes, in bytes.
	OutLen   = 32
	KeyLen   = 32
	BlockLen = 64
	ChunkLen = 1024

	// MaxSize is the largest digest NewSized accepts for Sum.
	MaxSize = 128

	// The stack holds one chaining value per completed subtree height;
	// 2^54 chunks of 1 KiB cover every 64-bit input length.
	maxStackDepth = 54

	blocksPerChunk = ChunkLen / BlockLen
)

// flag is the domain separation bitset passed as the last word of the
// compression state.
type flag uint32

const (
	chunkStart flag = 1 << iota
	chunkEnd
	parent
	root
	keyedHash
	deriveKeyContext
	deriveKeyMaterial
)

var flagNames = [...]string{
	"CHUNK_START",
	"CHUNK_END",
	"PARENT",
	"ROOT",
	"KEYED_HASH",
	"DERIVE_KEY_CONTEXT",
	"DERIVE_KEY_MATERIAL",
}

func (f flag) String() string {
	if f == 0 {
		return "0"
	}
	var names []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

var iv = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

var msgPermutation = [16]uint8{2, 6, 3, 10, 7, 0, 4, 13, 1, 11, 12, 5, 9, 14, 15, 8}
