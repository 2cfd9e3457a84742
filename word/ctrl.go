package word

import (
	"fmt"
)

// Ctrl is a 2-bit tape control code.
type Ctrl uint32

const (
	CTRL_NULL       = Ctrl(0b00)
	CTRL_COPY_SHIFT = Ctrl(0b01)
	CTRL_UNDEFINED  = Ctrl(0b10)
	CTRL_STOP_TAPE  = Ctrl(0b11)
)

// ctrlTable maps every 2-bit code to its display name. Indexed by code;
// all 4 codes are assigned.
var ctrlTable = [4]string{
	CTRL_NULL:       "null",
	CTRL_COPY_SHIFT: "copy and shift out",
	CTRL_UNDEFINED:  "undefined",
	CTRL_STOP_TAPE:  "stop tape",
}

// CtrlOf creates a control from a 2-bit value. Bits above the field
// width are ignored.
func CtrlOf(value uint32) Ctrl {
	return Ctrl(value & CTRL_MASK)
}

// CtrlFromBits extracts the control field from a packed word.
func CtrlFromBits(bits uint32) Ctrl {
	return Ctrl(bits & CTRL_MASK)
}

// Code returns the 2-bit control code.
func (ct Ctrl) Code() uint32 {
	return uint32(ct) & CTRL_MASK
}

// Name returns the display name of the control code.
func (ct Ctrl) Name() string {
	return ctrlTable[ct.Code()]
}

func (ct Ctrl) String() string {
	return ct.Name()
}

// Bin renders the code as fixed-width binary.
func (ct Ctrl) Bin() string {
	return fmt.Sprintf("%02b", ct.Code())
}

// Oct renders the code as fixed-width octal.
func (ct Ctrl) Oct() string {
	return fmt.Sprintf("%01o", ct.Code())
}
