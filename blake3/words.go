package blake3

import "encoding/binary"

func loadBlockSlow(dst *[16]uint32, b []byte) {
	_ = b[BlockLen-1]
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
}

// keyWords unpacks a 32-byte key or chaining value. The caller checks the
// length.
func keyWords(key []byte) [8]uint32 {
	_ = key[KeyLen-1]
	var words [8]uint32
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(key[i*4:])
	}
	return words
}

// putWords packs words little-endian into out, stopping when out is full.
// It returns the number of bytes written.
func putWords(out []byte, words *[16]uint32) int {
	n := 0
	for _, w := range words {
		if len(out)-n >= 4 {
			binary.LittleEndian.PutUint32(out[n:], w)
			n += 4
			continue
		}
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], w)
		n += copy(out[n:], tmp[:])
		break
	}
	return n
}
