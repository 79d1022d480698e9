package blake3

// chunkState accumulates up to ChunkLen bytes of one leaf of the tree.
// Full blocks are folded into chainingValue only once more input arrives,
// so the last block is always available to output.
type chunkState struct {
	chainingValue    [8]uint32
	chunkCounter     uint64
	block            [BlockLen]byte
	blockLen         uint8
	blocksCompressed uint8
	flags            flag
}

func newChunkState(key [8]uint32, chunkCounter uint64, flags flag) chunkState {
	return chunkState{
		chainingValue: key,
		chunkCounter:  chunkCounter,
		flags:         flags,
	}
}

func (c *chunkState) len() int {
	return BlockLen*int(c.blocksCompressed) + int(c.blockLen)
}

func (c *chunkState) startFlag() flag {
	if c.blocksCompressed == 0 {
		return chunkStart
	}
	return 0
}

// update absorbs input. The caller never passes more than the chunk has
// room for.
func (c *chunkState) update(input []byte) {
	for len(input) > 0 {
		if c.blockLen == BlockLen {
			var m [16]uint32
			loadBlock(&m, c.block[:])
			c.chainingValue = first8Words(compress(
				&c.chainingValue,
				&m,
				c.chunkCounter,
				BlockLen,
				c.flags|c.startFlag(),
			))
			c.blocksCompressed++
			clear(c.block[:])
			c.blockLen = 0
		}

		n := copy(c.block[c.blockLen:], input)
		c.blockLen += uint8(n)
		input = input[n:]
	}
}

// output describes the chunk's final block. Its chaining value is the
// subtree hash of the chunk; its root bytes are the message hash when the
// chunk is the whole message.
func (c *chunkState) output() output {
	var m [16]uint32
	loadBlock(&m, c.block[:])
	return output{
		inputChainingValue: c.chainingValue,
		blockWords:         m,
		counter:            c.chunkCounter,
		blockLen:           uint32(c.blockLen),
		flags:              c.flags | c.startFlag() | chunkEnd,
	}
}

// chunkCVFull hashes a complete chunk that is known to be followed by more
// input, skipping the block buffer.
func chunkCVFull(input []byte, key [8]uint32, chunkCounter uint64, flags flag) [8]uint32 {
	_ = input[ChunkLen-1]
	cv := key
	var m [16]uint32
	for i := 0; i < blocksPerChunk; i++ {
		loadBlock(&m, input[i*BlockLen:])
		blockFlags := flags
		if i == 0 {
			blockFlags |= chunkStart
		}
		if i == blocksPerChunk-1 {
			blockFlags |= chunkEnd
		}
		cv = first8Words(compress(&cv, &m, chunkCounter, BlockLen, blockFlags))
	}
	return cv
}
