package tinflate

import (
	"hash/adler32"
	"hash/crc32"
)

// Adler32 computes the Adler-32 checksum of data (RFC 1950 §9), the
// checksum zlib streams carry in their trailer. Adler32(nil) is 1.
func Adler32(data []byte) uint32 {
	return adler32.Checksum(data)
}

// CRC32 computes the CRC-32 checksum of data using the reflected
// polynomial 0xEDB88320 (ISO 3309), the checksum gzip streams carry in
// their trailer. CRC32(nil) is 0.
func CRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
