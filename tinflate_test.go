package tinflate

import (
	"encoding/hex"
	"strings"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	return b
}

// TestScenarios exercises the concrete byte-for-byte scenarios against raw
// DEFLATE, zlib, and gzip inputs.
func TestScenarios(t *testing.T) {
	t.Run("raw fixed-huffman empty block", func(t *testing.T) {
		src := mustHex(t, "03 00")
		dst := make([]byte, 0)
		n, err := Inflate(dst, src)
		if err != nil {
			t.Fatalf("Inflate: %v", err)
		}
		if n != 0 {
			t.Fatalf("n = %d, want 0", n)
		}
	})

	t.Run("raw stored one zero byte", func(t *testing.T) {
		src := mustHex(t, "01 01 00 FE FF 00")
		dst := make([]byte, 1)
		n, err := Inflate(dst, src)
		if err != nil {
			t.Fatalf("Inflate: %v", err)
		}
		if n != 1 || dst[0] != 0x00 {
			t.Fatalf("got n=%d dst=%v, want n=1 dst=[0]", n, dst[:n])
		}
	})

	t.Run("raw dynamic block with only end-of-block", func(t *testing.T) {
		src := mustHex(t, "05 CA 81 00 00 00 00 00 90 FF 6B 01 00")
		dst := make([]byte, 0)
		n, err := Inflate(dst, src)
		if err != nil {
			t.Fatalf("Inflate: %v", err)
		}
		if n != 0 {
			t.Fatalf("n = %d, want 0", n)
		}
	})

	t.Run("zlib one zero byte", func(t *testing.T) {
		src := mustHex(t, "78 9C 63 00 00 00 01 00 01")
		dst := make([]byte, 1)
		n, err := ZlibDecompress(dst, src)
		if err != nil {
			t.Fatalf("ZlibDecompress: %v", err)
		}
		if n != 1 || dst[0] != 0x00 {
			t.Fatalf("got n=%d dst=%v, want n=1 dst=[0]", n, dst[:n])
		}
		if got := Adler32(dst[:n]); got != 0x00010001 {
			t.Fatalf("Adler32(output) = %#x, want %#x", got, 0x00010001)
		}
	})

	t.Run("gzip one zero byte", func(t *testing.T) {
		src := mustHex(t, "1F 8B 08 00 00 00 00 00 02 0B 63 00 00 8D EF 02 D2 01 00 00 00")
		dst := make([]byte, 1)
		n, hdr, err := GzipDecompressHeader(dst, src)
		if err != nil {
			t.Fatalf("GzipDecompressHeader: %v", err)
		}
		if n != 1 || dst[0] != 0x00 {
			t.Fatalf("got n=%d dst=%v, want n=1 dst=[0]", n, dst[:n])
		}
		if hdr.OS != 0x0B {
			t.Fatalf("OS = %#x, want 0x0B", hdr.OS)
		}
	})

	t.Run("error: match overruns short output buffer", func(t *testing.T) {
		src := mustHex(t, "63 00 02 00")
		dst := make([]byte, 3)
		if _, err := Inflate(dst, src); err == nil {
			t.Fatal("got nil error, want an error for the overrunning match")
		}
	})

	t.Run("error: zlib wrong adler-32 trailer", func(t *testing.T) {
		src := mustHex(t, "78 9C 63 00 00 00 01 00 00") // last byte flipped
		dst := make([]byte, 1)
		if _, err := ZlibDecompress(dst, src); err == nil {
			t.Fatal("got nil error, want adler-32 mismatch")
		}
	})

	t.Run("error: gzip wrong size trailer", func(t *testing.T) {
		src := mustHex(t, "1F 8B 08 00 00 00 00 00 02 0B 63 00 00 8D EF 02 D2 02 00 00 00") // size field corrupted
		dst := make([]byte, 2)
		if _, err := GzipDecompress(dst, src); err == nil {
			t.Fatal("got nil error, want size mismatch")
		}
	})
}

func TestInflateRejectsReservedBlockType(t *testing.T) {
	dst := make([]byte, 4)
	if _, err := Inflate(dst, []byte{0b111}); err == nil {
		t.Fatal("got nil error for reserved block type, want a data error")
	}
}

func TestCodeMapsErrorsToStatus(t *testing.T) {
	if Code(nil) != StatusOK {
		t.Fatalf("Code(nil) = %d, want %d", Code(nil), StatusOK)
	}
	if Code(ErrShortBuffer) != StatusBufError {
		t.Fatalf("Code(ErrShortBuffer) = %d, want %d", Code(ErrShortBuffer), StatusBufError)
	}
	if Code(corruptErr(0, "x")) != StatusDataError {
		t.Fatalf("Code(corrupt) = %d, want %d", Code(corruptErr(0, "x")), StatusDataError)
	}
}
