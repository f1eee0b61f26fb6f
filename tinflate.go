package tinflate

import "github.com/jibsen/tinflate/internal/flate"

// Inflate decompresses a raw DEFLATE stream (RFC 1951, no zlib or gzip
// framing) from src into dst, returning the number of bytes written.
//
// On success err is nil and the returned count is the number of literal and
// matched bytes emitted. On failure the count is the number of bytes
// successfully written before the error and the contents of dst beyond that
// point are unspecified.
func Inflate(dst, src []byte) (int, error) {
	return flate.Decompress(dst, src)
}
