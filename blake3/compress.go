package blake3

import "math/bits"

const rounds = 7

// g mixes two message words into one column or diagonal of the state.
func g(s *[16]uint32, a, b, c, d int, mx, my uint32) {
	s[a] += s[b] + mx
	s[d] = bits.RotateLeft32(s[d]^s[a], -16)
	s[c] += s[d]
	s[b] = bits.RotateLeft32(s[b]^s[c], -12)
	s[a] += s[b] + my
	s[d] = bits.RotateLeft32(s[d]^s[a], -8)
	s[c] += s[d]
	s[b] = bits.RotateLeft32(s[b]^s[c], -7)
}

func round(s *[16]uint32, m *[16]uint32) {
	// Columns.
	g(s, 0, 4, 8, 12, m[0], m[1])
	g(s, 1, 5, 9, 13, m[2], m[3])
	g(s, 2, 6, 10, 14, m[4], m[5])
	g(s, 3, 7, 11, 15, m[6], m[7])
	// Diagonals.
	g(s, 0, 5, 10, 15, m[8], m[9])
	g(s, 1, 6, 11, 12, m[10], m[11])
	g(s, 2, 7, 8, 13, m[12], m[13])
	g(s, 3, 4, 9, 14, m[14], m[15])
}

func permute(m *[16]uint32) {
	var permuted [16]uint32
	for i, j := range msgPermutation {
		permuted[i] = m[j]
	}
	*m = permuted
}

// compress runs the BLAKE3 compression function. The first eight words of
// the result are the chaining value of a non-root node; root output uses
// all sixteen.
func compress(
	cv *[8]uint32,
	block *[16]uint32,
	counter uint64,
	blockLen uint32,
	flags flag,
) [16]uint32 {
	s := [16]uint32{
		cv[0], cv[1], cv[2], cv[3],
		cv[4], cv[5], cv[6], cv[7],
		iv[0], iv[1], iv[2], iv[3],
		uint32(counter), uint32(counter >> 32), blockLen, uint32(flags),
	}

	m := *block
	for r := 0; r < rounds; r++ {
		round(&s, &m)
		if r < rounds-1 {
			permute(&m)
		}
	}

	for i := 0; i < 8; i++ {
		s[i] ^= s[i+8]
		s[i+8] ^= cv[i]
	}
	return s
}

func first8Words(out [16]uint32) [8]uint32 {
	return [8]uint32{
		out[0], out[1], out[2], out[3],
		out[4], out[5], out[6], out[7],
	}
}
