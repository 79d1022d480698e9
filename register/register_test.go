package register

import (
	"testing"

	"github.com/multiformats/go-multihash"
	mhcore "github.com/multiformats/go-multihash/core"
	"github.com/stretchr/testify/require"

	"github.com/TACITVS/blake3ref/blake3"
)

func TestSum(t *testing.T) {
	data := []byte("multihash payload")

	for _, size := range []int{1, 32, 64, blake3.MaxSize} {
		mh, err := Sum(data, size)
		require.NoError(t, err)

		dec, err := multihash.Decode(mh)
		require.NoError(t, err)
		require.Equal(t, uint64(multihash.BLAKE3), dec.Code)
		require.Equal(t, size, dec.Length)

		want := make([]byte, size)
		blake3.Sum(data, want)
		require.Equal(t, want, dec.Digest)
	}
}

func TestSumDefaultSize(t *testing.T) {
	data := []byte("default size")
	mh, err := Sum(data, -1)
	require.NoError(t, err)

	dec, err := multihash.Decode(mh)
	require.NoError(t, err)
	want := blake3.Sum256(data)
	require.Equal(t, want[:], dec.Digest)
}

func TestFactory(t *testing.T) {
	h, ok := newHasher(-1)
	require.True(t, ok)
	require.IsType(t, &blake3.Hasher{}, h)
	require.Equal(t, DefaultSize, h.Size())

	for _, size := range []int{0, blake3.MaxSize + 1} {
		h, ok = newHasher(size)
		require.False(t, ok)
		require.Nil(t, h)
	}
}

func TestRegisteredFactoryIsThisEngine(t *testing.T) {
	for _, size := range []int{-1, 20, 64} {
		h, err := mhcore.GetVariableHasher(mhcore.BLAKE3, size)
		require.NoError(t, err)
		require.IsType(t, &blake3.Hasher{}, h, "size=%d", size)
	}
}
