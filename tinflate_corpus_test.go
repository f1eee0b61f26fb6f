package tinflate

import (
	"bytes"
	stdgzip "compress/gzip"
	stdzlib "compress/zlib"
	"context"
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
)

type corpusFile struct {
	name string
	data []byte
}

// corpus stands in for "a corpus of known gzip and zlib captures" (spec.md
// §8): a handful of synthetic plaintexts spanning the shapes that flex
// different block types (empty, short literal-only, long and repetitive,
// and binary-ish).
func corpus() []corpusFile {
	var files []corpusFile
	files = append(files, corpusFile{"empty", nil})
	files = append(files, corpusFile{"short", []byte("hi")})
	files = append(files, corpusFile{"repeating", bytes.Repeat([]byte("corpus verification payload "), 500)})

	binary := make([]byte, 2048)
	for i := range binary {
		binary[i] = byte(i*7 + i*i)
	}
	files = append(files, corpusFile{"binary", binary})

	return files
}

// TestCorpusZlibAndGzip verifies, concurrently across the corpus, the exact
// byte equality of output to the known plaintext for both envelope
// formats — spec.md §8's corpus property.
func TestCorpusZlibAndGzip(t *testing.T) {
	g, _ := errgroup.WithContext(context.Background())

	for _, f := range corpus() {
		f := f
		g.Go(func() error {
			var zbuf bytes.Buffer
			zw := stdzlib.NewWriter(&zbuf)
			if _, err := zw.Write(f.data); err != nil {
				return fmt.Errorf("%s: zlib write: %w", f.name, err)
			}
			if err := zw.Close(); err != nil {
				return fmt.Errorf("%s: zlib close: %w", f.name, err)
			}

			zdst := make([]byte, len(f.data))
			n, err := ZlibDecompress(zdst, zbuf.Bytes())
			if err != nil {
				return fmt.Errorf("%s: ZlibDecompress: %w", f.name, err)
			}
			if !bytes.Equal(zdst[:n], f.data) {
				return fmt.Errorf("%s: zlib output mismatch", f.name)
			}
			return nil
		})

		g.Go(func() error {
			var gbuf bytes.Buffer
			gw := stdgzip.NewWriter(&gbuf)
			if _, err := gw.Write(f.data); err != nil {
				return fmt.Errorf("%s: gzip write: %w", f.name, err)
			}
			if err := gw.Close(); err != nil {
				return fmt.Errorf("%s: gzip close: %w", f.name, err)
			}

			gdst := make([]byte, len(f.data))
			n, err := GzipDecompress(gdst, gbuf.Bytes())
			if err != nil {
				return fmt.Errorf("%s: GzipDecompress: %w", f.name, err)
			}
			if !bytes.Equal(gdst[:n], f.data) {
				return fmt.Errorf("%s: gzip output mismatch", f.name)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
