// Package tinflate implements a compact decompressor for the DEFLATE
// compressed data format (RFC 1951) together with its two standard framing
// envelopes, zlib (RFC 1950) and gzip (RFC 1952).
//
// Every entry point takes a complete compressed input and a caller-owned
// output buffer of known capacity, and reproduces the original bytes in
// place. There is no streaming (push/pull) API: the whole input must be
// available up front, and a single call either succeeds or returns an
// error. There is no compressor, no preset-dictionary (FDICT) support, and
// no output-buffer resizing — a buffer too small to hold the decompressed
// data is reported as ErrShortBuffer rather than grown.
package tinflate
