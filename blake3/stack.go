package blake3

// cvStack holds the chaining values of completed subtrees along the right
// edge of the tree, largest (oldest) at the bottom. Its depth equals the
// number of set bits in the count of completed chunks.
type cvStack struct {
	entries [maxStackDepth][8]uint32
	n       uint8
}

func (s *cvStack) push(cv [8]uint32) {
	s.entries[s.n] = cv
	s.n++
}

func (s *cvStack) pop() [8]uint32 {
	s.n--
	return s.entries[s.n]
}

func (s *cvStack) len() int { return int(s.n) }

func (s *cvStack) reset() { s.n = 0 }

// addChunkCV appends the chaining value of chunk number totalChunks-1.
// Every trailing zero bit of totalChunks marks a subtree that the new
// chunk completes, so it is merged with the entry below before pushing.
func (s *cvStack) addChunkCV(cv [8]uint32, totalChunks uint64, key [8]uint32, flags flag) {
	for totalChunks&1 == 0 {
		cv = parentCV(s.pop(), cv, key, flags)
		totalChunks >>= 1
	}
	s.push(cv)
}

// rootOutput folds the stack into tail, the output of the chunk still being
// filled, walking from the newest entry to the oldest. The stack is not
// modified.
func (s *cvStack) rootOutput(tail output, key [8]uint32, flags flag) output {
	o := tail
	for i := s.len() - 1; i >= 0; i-- {
		o = parentOutput(s.entries[i], o.chainingValue(), key, flags)
	}
	return o
}
