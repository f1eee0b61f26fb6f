// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flate

import (
	"errors"
	"fmt"
)

// CorruptInputError reports a structural failure in the DEFLATE bitstream
// at a given byte offset: a truncated read, an invalid block type, a bad
// stored-block length, an invalid or incomplete Huffman code, an invalid
// length or distance symbol, or a match reaching before the start of the
// output buffer.
type CorruptInputError struct {
	Offset int
	Reason string
}

func (e *CorruptInputError) Error() string {
	return fmt.Sprintf("flate: corrupt input at offset %d: %s", e.Offset, e.Reason)
}

func corrupt(offset int, reason string) error {
	return &CorruptInputError{Offset: offset, Reason: reason}
}

// ErrShortBuffer is returned when decoding would write past the end of the
// caller-supplied output buffer.
var ErrShortBuffer = errors.New("flate: output buffer too small")
