// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flate

// codeLenOrder is the order in which code-length code lengths are
// transmitted in a dynamic block header (RFC 1951 §3.2.7).
var codeLenOrder = [19]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// lengthExtraBits and lengthBase are the extra-bit count and base value for
// length codes 257..285 (index 0 is code 257). Code 285 (index 28) has 0
// extra bits and base 258: the maximum match length. Code 284 (index 27)
// has 5 extra bits and base 227, so its largest value is 227+31 = 258 —
// exactly the maximum, never 259; no special-case clamp is needed beyond
// using this table as-is. Codes 286 and 287 do not exist; callers must
// reject length symbols outside 257..285 before indexing these tables.
var (
	lengthExtraBits = [29]uint{
		0, 0, 0, 0, 0, 0, 0, 0, 1, 1,
		1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
		4, 4, 4, 4, 5, 5, 5, 5, 0,
	}
	lengthBase = [29]uint32{
		3, 4, 5, 6, 7, 8, 9, 10, 11, 13,
		15, 17, 19, 23, 27, 31, 35, 43, 51, 59,
		67, 83, 99, 115, 131, 163, 195, 227, 258,
	}
)

// distExtraBits and distBase are the extra-bit count and base value for the
// 30 legal distance codes (RFC 1951 §3.2.5). Distance codes 30 and 31 never
// occur in valid compressed data.
var (
	distExtraBits = [30]uint{
		0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
		4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
		9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
	}
	distBase = [30]uint32{
		1, 2, 3, 4, 5, 7, 9, 13, 17, 25,
		33, 49, 65, 97, 129, 193, 257, 385, 513, 769,
		1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
	}
)

// buildFixedTables fills lt and dt with the fixed Huffman code lengths of
// RFC 1951 §3.2.6.
func buildFixedTables(lt, dt *huffTable) {
	var litLengths [288]uint8
	for i := 0; i < 144; i++ {
		litLengths[i] = 8
	}
	for i := 144; i < 256; i++ {
		litLengths[i] = 9
	}
	for i := 256; i < 280; i++ {
		litLengths[i] = 7
	}
	for i := 280; i < 288; i++ {
		litLengths[i] = 8
	}
	buildHuffTable(lt, litLengths[:])

	var distLengths [30]uint8
	for i := range distLengths {
		distLengths[i] = 5
	}
	buildHuffTable(dt, distLengths[:])
}
