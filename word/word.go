// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package word

// Field layout of a 12-bit instruction word, MSB first.
const (
	INST_MASK = uint32(0b1111_000000_00)
	INST_POS  = 8
	INST_BITS = 4

	ADDR_MASK = uint32(0b0000_111111_00)
	ADDR_POS  = 2
	ADDR_BITS = 6

	CTRL_MASK = uint32(0b0000_000000_11)
	CTRL_BITS = 2

	WORD_BITS = INST_BITS + ADDR_BITS + CTRL_BITS
)

// Word is one 12-bit instruction word. Words are immutable values; the
// With* methods return a modified copy.
type Word struct {
	inst Inst
	addr Addr
	ctrl Ctrl
}

// New creates a word from its three fields.
func New(inst Inst, addr Addr, ctrl Ctrl) Word {
	return Word{inst: inst, addr: addr, ctrl: ctrl}
}

// FromBits decodes a word from its packed 12-bit form. Bits above the
// word are ignored; decoding never fails, as every field code is
// assigned.
func FromBits(bits uint32) Word {
	return Word{
		inst: InstFromBits(bits),
		addr: AddrFromBits(bits),
		ctrl: CtrlFromBits(bits),
	}
}

// Bits returns the packed 12-bit form of the word.
func (wd Word) Bits() uint32 {
	return wd.inst.Code()<<INST_POS | wd.addr.Value()<<ADDR_POS | wd.ctrl.Code()
}

// Inst gets the instruction field.
func (wd Word) Inst() Inst {
	return wd.inst
}

// WithInst creates a new word with the provided instruction.
func (wd Word) WithInst(inst Inst) Word {
	return Word{inst: inst, addr: wd.addr, ctrl: wd.ctrl}
}

// Addr gets the address field.
func (wd Word) Addr() Addr {
	return wd.addr
}

// WithAddr creates a new word with the provided address.
func (wd Word) WithAddr(addr Addr) Word {
	return Word{inst: wd.inst, addr: addr, ctrl: wd.ctrl}
}

// Ctrl gets the tape control field.
func (wd Word) Ctrl() Ctrl {
	return wd.ctrl
}

// WithCtrl creates a new word with the provided control.
func (wd Word) WithCtrl(ctrl Ctrl) Word {
	return Word{inst: wd.inst, addr: wd.addr, ctrl: ctrl}
}
