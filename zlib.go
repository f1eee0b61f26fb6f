package tinflate

import (
	"encoding/binary"

	"github.com/jibsen/tinflate/internal/flate"
)

// zlibMinLen is the smallest possible zlib stream: a 2-byte header plus a
// 4-byte Adler-32 trailer around an empty DEFLATE payload.
const zlibMinLen = 6

// ZlibDecompress decompresses a zlib-wrapped DEFLATE stream (RFC 1950) from
// src into dst, verifying the header and the trailing Adler-32 checksum.
func ZlibDecompress(dst, src []byte) (int, error) {
	if len(src) < zlibMinLen {
		return 0, corruptErr(len(src), "zlib: stream shorter than header+trailer")
	}

	cmf, flg := src[0], src[1]
	if cmf&0x0F != 8 {
		return 0, corruptErr(0, "zlib: unsupported compression method")
	}
	if cmf>>4 > 7 {
		return 0, corruptErr(0, "zlib: window size exceeds 32K")
	}
	if (int(cmf)*256+int(flg))%31 != 0 {
		return 0, corruptErr(1, "zlib: header checksum mismatch")
	}
	if flg&0x20 != 0 {
		return 0, corruptErr(1, "zlib: preset dictionary (FDICT) not supported")
	}

	body := src[2 : len(src)-4]
	n, err := flate.Decompress(dst, body)
	if err != nil {
		return n, err
	}

	want := binary.BigEndian.Uint32(src[len(src)-4:])
	if got := Adler32(dst[:n]); got != want {
		return n, corruptErr(len(src)-4, "zlib: adler-32 checksum mismatch")
	}
	return n, nil
}
