package word

import (
	"fmt"
	"strings"
)

// Inst is a 4-bit instruction code.
type Inst uint32

const (
	INST_NOP0 = Inst(0b0000)
	INST_LD   = Inst(0b0001)
	INST_ADD  = Inst(0b0010)
	INST_SUB  = Inst(0b0011)
	INST_ONE  = Inst(0b0100)
	INST_NAND = Inst(0b0101)
	INST_OR   = Inst(0b0110)
	INST_XOR  = Inst(0b0111)
	INST_STO  = Inst(0b1000)
	INST_STOC = Inst(0b1001)
	INST_IEN  = Inst(0b1010)
	INST_OEN  = Inst(0b1011)
	INST_IOC  = Inst(0b1100)
	INST_RTN  = Inst(0b1101)
	INST_SKZ  = Inst(0b1110)
	INST_NOPF = Inst(0b1111)
)

// instTable maps every 4-bit code to its mnemonic. The canonical name is
// all lowercase; the title spelling is the mixed-case form also accepted
// by the assembler. Indexed by code; all 16 codes are assigned.
var instTable = [16]struct {
	name  string
	title string
}{
	INST_NOP0: {"nop0", "Nop0"},
	INST_LD:   {"ld", "Ld"},
	INST_ADD:  {"add", "Add"},
	INST_SUB:  {"sub", "Sub"},
	INST_ONE:  {"one", "One"},
	INST_NAND: {"nand", "Nand"},
	INST_OR:   {"or", "Or"},
	INST_XOR:  {"xor", "Xor"},
	INST_STO:  {"sto", "Sto"},
	INST_STOC: {"stoc", "StoC"},
	INST_IEN:  {"ien", "Ien"},
	INST_OEN:  {"oen", "Oen"},
	INST_IOC:  {"ioc", "Ioc"},
	INST_RTN:  {"rtn", "Rtn"},
	INST_SKZ:  {"skz", "Skz"},
	INST_NOPF: {"nopf", "NopF"},
}

// InstFromBits extracts the instruction field from a packed word.
func InstFromBits(bits uint32) Inst {
	return Inst((bits & INST_MASK) >> INST_POS)
}

// Code returns the 4-bit instruction code.
func (in Inst) Code() uint32 {
	return uint32(in) & (INST_MASK >> INST_POS)
}

// Name returns the canonical lowercase mnemonic.
func (in Inst) Name() string {
	return instTable[in.Code()].name
}

// Spellings returns the mnemonic spellings accepted on input: the
// mixed-case title, all-lowercase, and all-uppercase forms.
func (in Inst) Spellings() []string {
	title := instTable[in.Code()].title
	return []string{title, strings.ToLower(title), strings.ToUpper(title)}
}

func (in Inst) String() string {
	return in.Name()
}

// Bin renders the code as fixed-width binary.
func (in Inst) Bin() string {
	return fmt.Sprintf("%04b", in.Code())
}

// Oct renders the code as fixed-width octal.
func (in Inst) Oct() string {
	return fmt.Sprintf("%02o", in.Code())
}
