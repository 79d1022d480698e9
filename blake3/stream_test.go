package blake3

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type stalledReader struct{}

func (stalledReader) Read([]byte) (int, error) { return 0, nil }

func TestHashReader(t *testing.T) {
	input := patternBytes(300000)
	want := Sum256(input)

	var last Progress
	calls := 0
	got, err := HashReader(bytes.NewReader(input), 4096, func(p Progress) {
		calls++
		last = p
	})
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, uint64(len(input)), last.Processed)
	require.Greater(t, calls, 1)

	got, err = HashReader(iotest.OneByteReader(bytes.NewReader(input[:5000])), 0, nil)
	require.NoError(t, err)
	require.Equal(t, Sum256(input[:5000]), got)

	got, err = HashReader(iotest.DataErrReader(bytes.NewReader(input[:3000])), 512, nil)
	require.NoError(t, err)
	require.Equal(t, Sum256(input[:3000]), got)
}

func TestWriteReaderKeepsMode(t *testing.T) {
	input := patternBytes(9000)
	h := mustKeyed(t)
	n, err := h.WriteReader(bytes.NewReader(input), make([]byte, 1000), uint64(len(input)), nil)
	require.NoError(t, err)
	require.Equal(t, int64(len(input)), n)

	want, err := SumKeyed([]byte(vectorKey), input)
	require.NoError(t, err)
	require.Equal(t, want, h.Sum256())
}

func TestWriteReaderError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(bytes.NewReader(patternBytes(100)), iotest.ErrReader(boom))

	h := New()
	n, err := h.WriteReader(r, nil, 0, nil)
	require.Equal(t, int64(100), n)
	require.ErrorIs(t, err, boom)
	require.Equal(t, boom, errors.Cause(err))
}

func TestWriteReaderNoProgress(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	SetLogger(logger)
	defer SetLogger(nil)

	_, err := New().WriteReader(stalledReader{}, make([]byte, 16), 0, nil)
	require.ErrorIs(t, err, io.ErrNoProgress)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Equal(t, uint64(0), entry.Data["processed"])
}

func TestWriteReaderLogsCompletion(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	SetLogger(logger)
	defer SetLogger(nil)

	_, err := HashReader(bytes.NewReader(patternBytes(2000)), 256, nil)
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	require.Equal(t, uint64(0), entries[0].Data["total"])
	require.Equal(t, uint64(2000), entries[1].Data["processed"])
}
