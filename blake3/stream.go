package blake3

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultBufferSize is the read buffer size used when none is given.
const DefaultBufferSize = 256 * 1024
const maxEmptyReads = 8

var log logrus.FieldLogger = discardLogger()

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger replaces the logger used by the reader helpers. A nil logger
// silences them again.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = discardLogger()
	}
	log = l
}

// Progress reports how far a reader has been streamed into a hasher.
type Progress struct {
	Processed uint64
	Total     uint64
	Elapsed   time.Duration
}

// ProgressFunc receives a Progress after every read that returns data.
type ProgressFunc func(Progress)

// WriteReader streams data from r into the hasher using buf and reports progress.
// If total is unknown, pass 0. The callback can call h.Sum256() to snapshot the
// current digest when needed.
func (h *Hasher) WriteReader(r io.Reader, buf []byte, total uint64, onProgress ProgressFunc) (int64, error) {
	if len(buf) == 0 {
		buf = make([]byte, DefaultBufferSize)
	}

	start := time.Now()
	var processed uint64
	emptyReads := 0
	entry := log.WithFields(logrus.Fields{"total": total, "buffer": len(buf)})
	entry.Debug("blake3: streaming reader")

	report := func() {
		if onProgress != nil {
			onProgress(Progress{
				Processed: processed,
				Total:     total,
				Elapsed:   time.Since(start),
			})
		}
	}

	for {
		n, err := r.Read(buf)
		if n > 0 {
			emptyReads = 0
			_, _ = h.Write(buf[:n])
			processed += uint64(n)
			report()
		}

		if err == io.EOF {
			if n == 0 {
				report()
			}
			entry.WithFields(logrus.Fields{
				"processed": processed,
				"elapsed":   time.Since(start),
			}).Debug("blake3: reader drained")
			return int64(processed), nil
		}
		if err != nil {
			entry.WithError(err).WithField("processed", processed).Debug("blake3: reader failed")
			return int64(processed), errors.Wrapf(err, "blake3: read after %d bytes", processed)
		}
		if n == 0 {
			emptyReads++
			if emptyReads >= maxEmptyReads {
				entry.WithField("processed", processed).Warn("blake3: reader made no progress")
				return int64(processed), io.ErrNoProgress
			}
		}
	}
}

// HashReader streams a reader into a new hasher and returns the 32-byte digest.
func HashReader(r io.Reader, bufSize int, onProgress ProgressFunc) ([OutLen]byte, error) {
	h := New()
	buf := make([]byte, bufferSizeOrDefault(bufSize))
	if _, err := h.WriteReader(r, buf, 0, onProgress); err != nil {
		return [OutLen]byte{}, err
	}
	return h.Sum256(), nil
}

func bufferSizeOrDefault(n int) int {
	if n > 0 {
		return n
	}
	return DefaultBufferSize
}
