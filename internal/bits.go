package internal

import (
	"io"
	"iter"
)

// BitsMSB yields the low width bits of value, most significant bit
// first.
func BitsMSB(value uint32, width int) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for n := width - 1; n >= 0; n-- {
			if !yield((value>>n)&1 == 1) {
				return
			}
		}
	}
}

// ReadBitsMSB returns an iterator that reads bytes from in and yields
// their bits, most significant bit first. Iteration ends at the first
// read error.
func ReadBitsMSB(in io.Reader) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		var one [1]byte
		for {
			n, err := in.Read(one[:])
			if err != nil || n != 1 {
				return
			}
			for bitpos := 7; bitpos >= 0; bitpos-- {
				if !yield((one[0]>>bitpos)&1 == 1) {
					return
				}
			}
		}
	}
}
