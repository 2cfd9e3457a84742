// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package tape packs instruction words into the raw punched-tape byte
// format and back.
//
// Each word contributes exactly 12 bits, MSB first, in field order:
// instruction, address, control. Words are concatenated with no padding
// between them; the final partial byte is zero-padded. The format has no
// header or length marker, so a trailing group of fewer than 12 bits is
// indistinguishable from pad and is discarded on read.
package tape

import (
	"bytes"
	"io"
	"iter"

	"github.com/ezrec/ue14500/internal"
	"github.com/ezrec/ue14500/word"
)

// Writer packs 12-bit instruction words MSB-first into a byte stream.
type Writer struct {
	out   io.Writer
	cur   byte
	nbits int
}

// NewWriter creates a Writer emitting to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteWord writes the word's instruction, address, and control fields,
// in that order.
func (wr *Writer) WriteWord(wd word.Word) (err error) {
	fields := []struct {
		value uint32
		width int
	}{
		{wd.Inst().Code(), word.INST_BITS},
		{wd.Addr().Value(), word.ADDR_BITS},
		{wd.Ctrl().Code(), word.CTRL_BITS},
	}

	for _, field := range fields {
		for bit := range internal.BitsMSB(field.value, field.width) {
			err = wr.writeBit(bit)
			if err != nil {
				return
			}
		}
	}

	return
}

func (wr *Writer) writeBit(bit bool) (err error) {
	wr.cur <<= 1
	if bit {
		wr.cur |= 1
	}
	wr.nbits++

	if wr.nbits == 8 {
		_, err = wr.out.Write([]byte{wr.cur})
		wr.cur = 0
		wr.nbits = 0
	}

	return
}

// Flush pads the pending partial byte with zero bits and writes it out.
func (wr *Writer) Flush() (err error) {
	if wr.nbits == 0 {
		return
	}

	wr.cur <<= 8 - wr.nbits
	_, err = wr.out.Write([]byte{wr.cur})
	wr.cur = 0
	wr.nbits = 0

	return
}

// Reader unpacks 12-bit instruction words MSB-first from a byte stream.
type Reader struct {
	in io.Reader
}

// NewReader creates a Reader consuming from in.
func NewReader(in io.Reader) *Reader {
	return &Reader{in: in}
}

// Words returns an iterator that yields words until fewer than 12 bits
// remain. A trailing partial group is pad, not a truncated word, and is
// discarded.
func (rd *Reader) Words() iter.Seq[word.Word] {
	return func(yield func(word.Word) bool) {
		var bits uint32
		var n int

		for bit := range internal.ReadBitsMSB(rd.in) {
			bits <<= 1
			if bit {
				bits |= 1
			}
			n++

			if n == word.WORD_BITS {
				if !yield(word.FromBits(bits)) {
					return
				}
				bits = 0
				n = 0
			}
		}
	}
}

// Marshal packs a program into its byte form. Comment nodes occupy no
// bits and are skipped.
func Marshal(nodes word.Nodes) []byte {
	var buf bytes.Buffer

	wr := NewWriter(&buf)
	for _, wd := range nodes.Words() {
		wr.WriteWord(wd)
	}
	wr.Flush()

	return buf.Bytes()
}

// Unmarshal unpacks words from their byte form.
func Unmarshal(data []byte) (words word.Words) {
	rd := NewReader(bytes.NewReader(data))
	for wd := range rd.Words() {
		words = append(words, wd)
	}

	return
}
