// Package asm reads and writes the UE14500 assembly text format.
//
// A program is a sequence of lines, each either a comment introduced by
// ';' or an instruction word of the form:
//
//	MNEMONIC ADDR CTRL
//
// Mnemonics are case-insensitive. Numerals carry an explicit base prefix:
// 0b binary, 0o octal, or 0h hexadecimal, tried in that fixed order. A
// numeral may also be a $(...) constant expression evaluated at parse
// time. Blank lines are tolerated only around the program, not between
// content lines.
package asm
