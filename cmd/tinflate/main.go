// Command tinflate is a small example client of the tinflate library: it
// decompresses a single raw DEFLATE, zlib, or gzip file to stdout, and its
// checksum subcommand prints the Adler-32 or CRC-32 of a file's raw bytes.
// It is not part of
// the library's contract — it only demonstrates wiring it up.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jibsen/tinflate"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var format string
	var bufSize int

	root := &cobra.Command{
		Use:   "tinflate <file>",
		Short: "Decompress a raw DEFLATE, zlib, or gzip file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			dst := make([]byte, bufSize)

			var n int
			switch format {
			case "raw":
				n, err = tinflate.Inflate(dst, src)
			case "zlib":
				n, err = tinflate.ZlibDecompress(dst, src)
			case "gzip":
				n, err = tinflate.GzipDecompress(dst, src)
			default:
				return fmt.Errorf("unknown --format %q (want raw, zlib, or gzip)", format)
			}
			if err != nil {
				return fmt.Errorf("decompress: %w (status %d)", err, tinflate.Code(err))
			}

			_, err = cmd.OutOrStdout().Write(dst[:n])
			return err
		},
	}

	root.Flags().StringVar(&format, "format", "gzip", "input framing: raw, zlib, or gzip")
	root.Flags().IntVar(&bufSize, "bufsize", 1<<24, "output buffer capacity in bytes")

	root.AddCommand(newChecksumCmd())

	return root
}

func newChecksumCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "checksum <file>",
		Short: "Print the Adler-32 or CRC-32 checksum of a file's raw bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			switch kind {
			case "adler32":
				fmt.Fprintf(cmd.OutOrStdout(), "%08x\n", tinflate.Adler32(data))
			case "crc32":
				fmt.Fprintf(cmd.OutOrStdout(), "%08x\n", tinflate.CRC32(data))
			default:
				return fmt.Errorf("unknown --kind %q (want adler32 or crc32)", kind)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "crc32", "checksum to compute: adler32 or crc32")
	return cmd
}
