package asm

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// numeralBases lists the literal forms in their fixed precedence order:
// binary, then octal, then hexadecimal. The first form whose prefix and
// digit run both match wins.
var numeralBases = []struct {
	prefix string
	radix  uint32
	digit  func(byte) (uint32, bool)
}{
	{"0b", 2, digitBin},
	{"0o", 8, digitOct},
	{"0h", 16, digitHex},
}

func digitBin(ch byte) (value uint32, ok bool) {
	if ch == '0' || ch == '1' {
		return uint32(ch - '0'), true
	}
	return
}

func digitOct(ch byte) (value uint32, ok bool) {
	if ch >= '0' && ch <= '7' {
		return uint32(ch - '0'), true
	}
	return
}

func digitHex(ch byte) (value uint32, ok bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return uint32(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return uint32(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return uint32(ch-'A') + 10, true
	}
	return
}

// lexNumeral consumes a base-prefixed numeral at the start of src and
// returns its value and the number of characters consumed. ok is false
// when no base form matches.
func lexNumeral(src string) (value uint32, size int, ok bool) {
	for _, base := range numeralBases {
		if !strings.HasPrefix(src, base.prefix) {
			continue
		}

		digits := src[len(base.prefix):]
		var n int
		value = 0
		for n < len(digits) {
			digit, valid := base.digit(digits[n])
			if !valid {
				break
			}
			value = value*base.radix + digit
			n++
		}

		if n == 0 {
			// Prefix without digits; try the next base.
			continue
		}

		size = len(base.prefix) + n
		ok = true
		return
	}

	return
}

// evalExpr evaluates a $(...) constant expression with Starlark and
// returns its value as an unsigned 32-bit integer.
func evalExpr(expr string) (value uint32, err error) {
	thread := &starlark.Thread{}
	opts := &syntax.FileOptions{}

	result, err := starlark.EvalOptions(opts, thread, "expr", expr, starlark.StringDict{})
	if err != nil {
		err = ErrExpression(expr)
		return
	}

	st_int, ok := result.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > 0xffff_ffff {
		err = ErrExpression(expr)
		return
	}

	value = uint32(st_int64)
	return
}
