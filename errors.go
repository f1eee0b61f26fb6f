package tinflate

import (
	"errors"

	"github.com/jibsen/tinflate/internal/flate"
)

// CorruptInputError reports a structural failure in the compressed input:
// a truncated read, an invalid block type, an incomplete or overfull
// Huffman code, an invalid length or distance symbol, a match reaching
// before the start of the output, or — for the zlib and gzip adapters — a
// header violation or checksum mismatch.
type CorruptInputError = flate.CorruptInputError

// ErrShortBuffer is returned when decoding would write past the end of the
// caller-supplied output buffer.
var ErrShortBuffer = flate.ErrShortBuffer

func corruptErr(offset int, reason string) error {
	return &flate.CorruptInputError{Offset: offset, Reason: reason}
}

// Status codes matching the tinf C library's integer return contract,
// preserved so callers porting code that branches on it have something to
// map onto.
const (
	StatusOK        = 0
	StatusDataError = -3
	StatusBufError  = -5
)

// Code maps err, as returned by this package's entry points, back to the
// status code the original tinf library would have returned.
func Code(err error) int {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrShortBuffer):
		return StatusBufError
	default:
		return StatusDataError
	}
}
