package word

import (
	"fmt"
)

// AddrKind classifies an address value into its addressing-mode range.
type AddrKind int

const (
	ADDR_GENERAL        = AddrKind(0) // general
	ADDR_PARALLEL_READ  = AddrKind(1) // parallel read
	ADDR_EXTERNAL_INPUT = AddrKind(2) // external input
	ADDR_QRR            = AddrKind(3) // qrr
	ADDR_RR             = AddrKind(4) // rr
	ADDR_HIGH_INPUT     = AddrKind(5) // high input
	ADDR_LOW_INPUT      = AddrKind(6) // low input / high z
)

// addrTable maps inclusive ranges of the 6-bit address space to their
// classification. Indexed by AddrKind; the ranges cover 0o00..0o77.
var addrTable = [7]struct {
	lo, hi uint32
	name   string
}{
	ADDR_GENERAL:        {0o00, 0o47, "general"},
	ADDR_PARALLEL_READ:  {0o50, 0o57, "parallel read"},
	ADDR_EXTERNAL_INPUT: {0o60, 0o67, "external input"},
	ADDR_QRR:            {0o70, 0o70, "qrr"},
	ADDR_RR:             {0o71, 0o71, "rr"},
	ADDR_HIGH_INPUT:     {0o72, 0o73, "high input"},
	ADDR_LOW_INPUT:      {0o74, 0o77, "low input / high z"},
}

// Name returns the display name of the classification.
func (ak AddrKind) Name() string {
	return addrTable[ak].name
}

func (ak AddrKind) String() string {
	return ak.Name()
}

// Addr is a 6-bit address value. Its classification is derived from the
// value, never stored alongside it.
type Addr struct {
	value uint32
}

// AddrOf creates an address from a 6-bit value. Bits above the field
// width are ignored.
func AddrOf(value uint32) Addr {
	return Addr{value: value & (ADDR_MASK >> ADDR_POS)}
}

// AddrFromBits extracts the address field from a packed word.
func AddrFromBits(bits uint32) Addr {
	return Addr{value: (bits & ADDR_MASK) >> ADDR_POS}
}

// Value returns the 6-bit address value.
func (ad Addr) Value() uint32 {
	return ad.value
}

// Kind computes the addressing-mode classification of the value.
func (ad Addr) Kind() AddrKind {
	for kind := range AddrKind(len(addrTable)) {
		entry := &addrTable[kind]
		if ad.value >= entry.lo && ad.value <= entry.hi {
			return kind
		}
	}

	// The table covers the whole 6-bit space.
	panic(fmt.Sprintf("addr %#o unclassified", ad.value))
}

// Name returns the display name of the address classification.
func (ad Addr) Name() string {
	return ad.Kind().Name()
}

// Bin renders the value as fixed-width binary.
func (ad Addr) Bin() string {
	return fmt.Sprintf("%06b", ad.value)
}

// Oct renders the value as fixed-width octal.
func (ad Addr) Oct() string {
	return fmt.Sprintf("%02o", ad.value)
}
