package blake3

import "github.com/pkg/errors"

var (
	// ErrInvalidKeyLength is returned when a keyed hash is constructed with
	// a key that is not exactly KeyLen bytes.
	ErrInvalidKeyLength = errors.New("blake3: invalid key length")

	// ErrInvalidSize is returned by NewSized for a digest size outside
	// 1..MaxSize.
	ErrInvalidSize = errors.New("blake3: invalid digest size")
)
