// Package word models the 12-bit instruction word of the UE14500 processor.
//
// A word packs three fields, most significant first: a 4-bit instruction
// code, a 6-bit address, and a 2-bit tape control code. The instruction
// and control codes are closed tables covering their whole bit range, so
// decoding a word can never fail. The address carries a derived
// classification into the fixed addressing-mode ranges of the 6-bit
// address space.
package word
