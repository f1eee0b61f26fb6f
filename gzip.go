package tinflate

import (
	"encoding/binary"

	"github.com/jibsen/tinflate/internal/flate"
)

const (
	gzipID1     = 0x1F
	gzipID2     = 0x8B
	gzipDeflate = 8

	flagText        = 1 << 0
	flagHdrCRC      = 1 << 1
	flagExtra       = 1 << 2
	flagName        = 1 << 3
	flagComment     = 1 << 4
	flagReservedSet = 0xE0 // bits 5..7

	// gzipMinLen is the smallest possible gzip member: a 10-byte header, no
	// optional fields, and an 8-byte CRC/size trailer around an empty
	// DEFLATE payload.
	gzipMinLen = 18
)

// Header holds the metadata carried in a gzip member's header. The
// original tinf library parses and discards this; GzipDecompressHeader
// exposes it, in the spirit of buengese/sgzip's seekable gzip reader.
type Header struct {
	Name    string
	Comment string
	Extra   []byte
	ModTime uint32 // seconds since the Unix epoch, as stored in the header
	OS      byte
}

// GzipDecompress decompresses a gzip-wrapped DEFLATE stream (RFC 1952,
// single member) from src into dst, verifying the header and the trailing
// CRC-32 and size fields.
func GzipDecompress(dst, src []byte) (int, error) {
	n, _, err := gzipDecompress(dst, src, false)
	return n, err
}

// GzipDecompressHeader is like GzipDecompress but also returns the parsed
// header fields.
func GzipDecompressHeader(dst, src []byte) (int, Header, error) {
	return gzipDecompress(dst, src, true)
}

func gzipDecompress(dst, src []byte, wantHeader bool) (int, Header, error) {
	var hdr Header

	if len(src) < gzipMinLen {
		return 0, hdr, corruptErr(len(src), "gzip: stream shorter than header+trailer")
	}
	if src[0] != gzipID1 || src[1] != gzipID2 {
		return 0, hdr, corruptErr(0, "gzip: bad magic bytes")
	}
	if src[2] != gzipDeflate {
		return 0, hdr, corruptErr(2, "gzip: unsupported compression method")
	}
	flg := src[3]
	if flg&flagReservedSet != 0 {
		return 0, hdr, corruptErr(3, "gzip: reserved flag bits set")
	}
	if wantHeader {
		hdr.ModTime = binary.LittleEndian.Uint32(src[4:8])
		hdr.OS = src[9]
	}

	pos := 10
	if flg&flagExtra != 0 {
		if pos+2 > len(src) {
			return 0, hdr, corruptErr(pos, "gzip: truncated FEXTRA length")
		}
		xlen := int(binary.LittleEndian.Uint16(src[pos:]))
		pos += 2
		if pos+xlen > len(src) {
			return 0, hdr, corruptErr(pos, "gzip: truncated FEXTRA field")
		}
		if wantHeader {
			hdr.Extra = append([]byte(nil), src[pos:pos+xlen]...)
		}
		pos += xlen
	}
	if flg&flagName != 0 {
		end, err := gzipFindNUL(src, pos)
		if err != nil {
			return 0, hdr, err
		}
		if wantHeader {
			hdr.Name = string(src[pos:end])
		}
		pos = end + 1
	}
	if flg&flagComment != 0 {
		end, err := gzipFindNUL(src, pos)
		if err != nil {
			return 0, hdr, err
		}
		if wantHeader {
			hdr.Comment = string(src[pos:end])
		}
		pos = end + 1
	}
	if flg&flagHdrCRC != 0 {
		if pos+2 > len(src) {
			return 0, hdr, corruptErr(pos, "gzip: truncated FHCRC field")
		}
		want := binary.LittleEndian.Uint16(src[pos:])
		got := uint16(CRC32(src[:pos]) & 0xFFFF)
		if want != got {
			return 0, hdr, corruptErr(pos, "gzip: header checksum mismatch")
		}
		pos += 2
	}

	if pos+8 > len(src) {
		return 0, hdr, corruptErr(pos, "gzip: truncated trailer")
	}

	body := src[pos : len(src)-8]
	n, err := flate.Decompress(dst, body)
	if err != nil {
		return n, hdr, err
	}

	trailer := src[len(src)-8:]
	wantCRC := binary.LittleEndian.Uint32(trailer[0:4])
	wantSize := binary.LittleEndian.Uint32(trailer[4:8])
	if gotCRC := CRC32(dst[:n]); gotCRC != wantCRC {
		return n, hdr, corruptErr(len(src)-8, "gzip: CRC-32 mismatch")
	}
	if uint32(n) != wantSize {
		return n, hdr, corruptErr(len(src)-4, "gzip: size mismatch")
	}
	return n, hdr, nil
}

// gzipFindNUL returns the index of the next NUL byte in src at or after
// start, the terminator for the FNAME and FCOMMENT fields.
func gzipFindNUL(src []byte, start int) (int, error) {
	for i := start; i < len(src); i++ {
		if src[i] == 0 {
			return i, nil
		}
	}
	return 0, corruptErr(start, "gzip: unterminated string field")
}
