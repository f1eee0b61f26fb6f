// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flate

const (
	endOfBlock = 256

	// maxNumLit and maxNumDist are the true sizes of the literal/length and
	// distance alphabets (RFC 1951 §3.2.7). HLIT/HDIST values that would
	// exceed them are rejected: see SPEC_FULL.md Part D.3.
	maxNumLit  = 286
	maxNumDist = 30

	// numCodeLenCodes is the size of the meta-Huffman alphabet used to
	// transmit the dynamic header's code lengths.
	numCodeLenCodes = 19

	// maxNumLitArray and maxNumDistArray size the code-length scratch
	// vector generously enough for any HLIT/HDIST the 5-bit header fields
	// can nominally express (257+31=288, 1+31=32), matching the 320-byte
	// scratch vector spec.md §3/§5 calls for, even though buildDynamicTables
	// rejects anything past maxNumLit/maxNumDist before it is used.
	maxNumLitArray  = 288
	maxNumDistArray = 32
)

// decoder holds the state of a single block-decoder invocation: a bit
// reader over the input and a cursor into the caller's output buffer. It is
// created fresh for each top-level Decompress call; Huffman table storage
// is reused across the blocks of that call.
type decoder struct {
	br  bitReader
	dst []byte
	n   int // bytes written to dst so far

	lt, dt          huffTable
	codeLenLengths  [numCodeLenCodes]uint8
	combinedLengths [maxNumLitArray + maxNumDistArray]uint8
}

func newDecoder(dst, src []byte) *decoder {
	return &decoder{br: newBitReader(src), dst: dst}
}

// emitLiteral appends one decoded literal byte to the output.
func (d *decoder) emitLiteral(b byte) error {
	if d.n >= len(d.dst) {
		return ErrShortBuffer
	}
	d.dst[d.n] = b
	d.n++
	return nil
}

// copyMatch realizes a (length, distance) back-reference. Overlapping
// copies (distance < length) are handled one byte at a time so a repeated
// run-length pattern reproduces correctly.
func (d *decoder) copyMatch(length, dist int) error {
	if dist > d.n {
		return corrupt(d.br.pos, "match distance before start of output")
	}
	if d.n+length > len(d.dst) {
		return ErrShortBuffer
	}
	for i := 0; i < length; i++ {
		d.dst[d.n] = d.dst[d.n-dist]
		d.n++
	}
	return nil
}

// decodeBlock reads one DEFLATE block (BFINAL + BTYPE + body) and reports
// whether it was the final block.
func (d *decoder) decodeBlock() (final bool, err error) {
	bits, err := d.br.getBits(3)
	if err != nil {
		return false, err
	}
	final = bits&1 != 0
	switch btype := (bits >> 1) & 3; btype {
	case 0:
		err = d.storedBlock()
	case 1:
		buildFixedTables(&d.lt, &d.dt)
		err = d.blockData(&d.lt, &d.dt)
	case 2:
		if err = d.buildDynamicTables(); err != nil {
			return final, err
		}
		err = d.blockData(&d.lt, &d.dt)
	default:
		err = corrupt(d.br.pos, "reserved block type 3")
	}
	return final, err
}

// storedBlock copies a BTYPE=00 block verbatim.
func (d *decoder) storedBlock() error {
	d.br.alignToByte()

	if d.br.pos+4 > len(d.br.src) {
		return corrupt(d.br.pos, "truncated stored-block header")
	}
	length := int(d.br.src[d.br.pos]) | int(d.br.src[d.br.pos+1])<<8
	nlength := int(d.br.src[d.br.pos+2]) | int(d.br.src[d.br.pos+3])<<8
	d.br.pos += 4

	if length != (^nlength)&0xFFFF {
		return corrupt(d.br.pos, "stored block LEN/NLEN mismatch")
	}

	avail := minInt(len(d.br.src)-d.br.pos, len(d.dst)-d.n)
	if length > avail {
		if len(d.br.src)-d.br.pos < length {
			return corrupt(d.br.pos, "truncated stored block")
		}
		return ErrShortBuffer
	}

	copy(d.dst[d.n:d.n+length], d.br.src[d.br.pos:d.br.pos+length])
	d.br.pos += length
	d.n += length

	d.br.alignToByte()
	return nil
}

// blockData decodes the literal/length and distance stream of a fixed or
// dynamic block until the end-of-block symbol.
func (d *decoder) blockData(lt, dt *huffTable) error {
	for {
		sym, err := decodeSymbol(&d.br, lt)
		if err != nil {
			return err
		}
		switch {
		case sym < endOfBlock:
			if err := d.emitLiteral(byte(sym)); err != nil {
				return err
			}
		case sym == endOfBlock:
			return nil
		default:
			k := sym - 257
			if k >= len(lengthBase) {
				return corrupt(d.br.pos, "invalid length symbol")
			}
			length, err := d.br.getBitsBase(lengthExtraBits[k], lengthBase[k])
			if err != nil {
				return err
			}

			distSym, err := decodeSymbol(&d.br, dt)
			if err != nil {
				return err
			}
			if distSym >= len(distBase) {
				return corrupt(d.br.pos, "invalid distance symbol")
			}
			dist, err := d.br.getBitsBase(distExtraBits[distSym], distBase[distSym])
			if err != nil {
				return err
			}

			if err := d.copyMatch(int(length), int(dist)); err != nil {
				return err
			}
		}
	}
}

// buildDynamicTables reads a dynamic block header (RFC 1951 §3.2.7) and
// builds d.lt and d.dt from it.
func (d *decoder) buildDynamicTables() error {
	hlitRaw, err := d.br.getBitsBase(5, 257)
	if err != nil {
		return err
	}
	hdistRaw, err := d.br.getBitsBase(5, 1)
	if err != nil {
		return err
	}
	hclen, err := d.br.getBitsBase(4, 4)
	if err != nil {
		return err
	}

	hlit := int(hlitRaw)
	hdist := int(hdistRaw)
	if hlit > maxNumLit {
		return corrupt(d.br.pos, "HLIT exceeds literal/length alphabet")
	}
	if hdist > maxNumDist {
		return corrupt(d.br.pos, "HDIST exceeds distance alphabet")
	}

	for i := range d.codeLenLengths {
		d.codeLenLengths[i] = 0
	}
	for i := 0; i < int(hclen); i++ {
		clen, err := d.br.getBits(3)
		if err != nil {
			return err
		}
		d.codeLenLengths[codeLenOrder[i]] = uint8(clen)
	}

	var clTable huffTable
	buildHuffTable(&clTable, d.codeLenLengths[:])
	if clTable.kraftSum() != 1<<maxCodeLen {
		return corrupt(d.br.pos, "incomplete or overfull code-length code")
	}

	total := hlit + hdist
	lengths := d.combinedLengths[:total]
	for i := 0; i < total; {
		sym, err := decodeSymbol(&d.br, &clTable)
		if err != nil {
			return err
		}
		var run int
		var value uint8
		switch sym {
		case 16:
			if i == 0 {
				return corrupt(d.br.pos, "repeat code with no previous length")
			}
			n, err := d.br.getBitsBase(2, 3)
			if err != nil {
				return err
			}
			run = int(n)
			value = lengths[i-1]
		case 17:
			n, err := d.br.getBitsBase(3, 3)
			if err != nil {
				return err
			}
			run = int(n)
			value = 0
		case 18:
			n, err := d.br.getBitsBase(7, 11)
			if err != nil {
				return err
			}
			run = int(n)
			value = 0
		default:
			run = 1
			value = uint8(sym)
		}
		if i+run > total {
			return corrupt(d.br.pos, "code length expansion overruns header")
		}
		for j := 0; j < run; j++ {
			lengths[i] = value
			i++
		}
	}

	if lengths[endOfBlock] == 0 {
		return corrupt(d.br.pos, "literal/length code missing end-of-block symbol")
	}

	buildHuffTable(&d.lt, lengths[:hlit])
	if !d.lt.isDegenerateSingleCode() && d.lt.kraftSum() != 1<<maxCodeLen {
		return corrupt(d.br.pos, "incomplete or overfull literal/length code")
	}

	// A distance code with no symbols at all is also accepted: a block of
	// literals only never reads it, and any match in such a block fails in
	// decodeSymbol.
	buildHuffTable(&d.dt, lengths[hlit:total])
	if ks := d.dt.kraftSum(); !d.dt.isDegenerateSingleCode() && ks != 0 && ks != 1<<maxCodeLen {
		return corrupt(d.br.pos, "incomplete or overfull distance code")
	}

	return nil
}

// Decompress runs the stream driver: it decodes blocks until BFINAL, writing
// into dst, and returns the number of bytes written.
func Decompress(dst, src []byte) (int, error) {
	d := newDecoder(dst, src)
	for {
		final, err := d.decodeBlock()
		if err != nil {
			return d.n, err
		}
		if final {
			return d.n, nil
		}
	}
}
