// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"

	"github.com/ezrec/ue14500/word"
)

// instOrder lists the mnemonic alternatives in match order. StoC is
// tried before Sto so the longer literal wins; there is no prefix
// matching beyond that ordering.
var instOrder = []word.Inst{
	word.INST_NOP0,
	word.INST_LD,
	word.INST_ADD,
	word.INST_SUB,
	word.INST_ONE,
	word.INST_NAND,
	word.INST_OR,
	word.INST_XOR,
	word.INST_STOC,
	word.INST_STO,
	word.INST_IEN,
	word.INST_OEN,
	word.INST_IOC,
	word.INST_RTN,
	word.INST_SKZ,
	word.INST_NOPF,
}

// parser walks the source text once, left to right. pos and end index
// into the original text so error offsets survive the edge trimming.
type parser struct {
	src string
	pos int
	end int
}

// Parse parses assembly text into a program of word and comment nodes.
// Blank lines around the program are trimmed; blank lines between
// content lines are a syntax error. Error offsets refer to the original
// text.
func Parse(src string) (nodes word.Nodes, err error) {
	ps := &parser{
		src: src,
		pos: len(src) - len(strings.TrimLeft(src, " \t\r\n")),
		end: len(strings.TrimRight(src, " \t\r\n")),
	}

	for {
		ps.hspace()
		if ps.eoi() {
			break
		}

		var node word.Node
		if ps.peek() == ';' {
			node, err = ps.comment()
		} else {
			node, err = ps.word()
		}
		if err != nil {
			nodes = nil
			return
		}

		nodes = append(nodes, node)
	}

	return
}

func (ps *parser) eoi() bool {
	return ps.pos >= ps.end
}

func (ps *parser) peek() byte {
	return ps.src[ps.pos]
}

// hspace skips blanks within a line.
func (ps *parser) hspace() {
	for !ps.eoi() && (ps.peek() == ' ' || ps.peek() == '\t') {
		ps.pos++
	}
}

// space requires one or more blanks between word fields. next names the
// construct expected after the blanks.
func (ps *parser) space(next error) (err error) {
	if ps.eoi() {
		return &ErrSyntax{Offset: ps.pos, Err: ErrUnexpectedEoi}
	}
	if ps.peek() != ' ' && ps.peek() != '\t' {
		return &ErrSyntax{Offset: ps.pos, Err: next}
	}

	ps.hspace()
	return
}

// lineEnd consumes a newline, or nothing at end of input.
func (ps *parser) lineEnd(expect error) (err error) {
	switch {
	case ps.eoi():
	case ps.peek() == '\n':
		ps.pos++
	case strings.HasPrefix(ps.src[ps.pos:ps.end], "\r\n"):
		ps.pos += 2
	default:
		err = &ErrSyntax{Offset: ps.pos, Err: expect}
	}

	return
}

// inst matches one of the mnemonic spellings at the current position.
func (ps *parser) inst() (in word.Inst, err error) {
	rest := ps.src[ps.pos:ps.end]

	for _, in = range instOrder {
		for _, spell := range in.Spellings() {
			if strings.HasPrefix(rest, spell) {
				ps.pos += len(spell)
				return
			}
		}
	}

	err = &ErrSyntax{
		Offset: ps.pos,
		Err:    ErrExpectedInst{Inst: instOrder[len(instOrder)-1]},
	}
	return
}

// numeral consumes a base-prefixed literal or a $(...) constant
// expression. expect names the field being parsed.
func (ps *parser) numeral(expect error) (value uint32, err error) {
	if ps.eoi() {
		err = &ErrSyntax{Offset: ps.pos, Err: ErrUnexpectedEoi}
		return
	}

	rest := ps.src[ps.pos:ps.end]

	value, size, ok := lexNumeral(rest)
	if ok {
		ps.pos += size
		return
	}

	if expr, size, found := cutExpr(rest); found {
		value, err = evalExpr(expr)
		if err != nil {
			err = &ErrSyntax{Offset: ps.pos, Err: err}
			return
		}
		ps.pos += size
		return
	}

	err = &ErrSyntax{Offset: ps.pos, Err: expect}
	return
}

// cutExpr recognizes a $(...) form and returns the expression text and
// the number of characters consumed.
func cutExpr(src string) (expr string, size int, ok bool) {
	if !strings.HasPrefix(src, "$(") {
		return
	}

	n := strings.IndexByte(src, ')')
	if n < 0 {
		return
	}

	return src[2:n], n + 1, true
}

// comment parses a ';' line. The stored text keeps its leading
// indentation; trailing whitespace is trimmed.
func (ps *parser) comment() (node word.Node, err error) {
	ps.pos++ // ';'

	start := ps.pos
	for !ps.eoi() && ps.peek() != '\n' && ps.peek() != '\r' {
		ps.pos++
	}
	text := strings.TrimRight(ps.src[start:ps.pos], " \t")

	err = ps.lineEnd(ErrExpectedComment)
	if err != nil {
		return
	}

	node = word.Comment(text)
	return
}

// word parses one instruction line: mnemonic, address, control.
func (ps *parser) word() (node word.Node, err error) {
	in, err := ps.inst()
	if err != nil {
		return
	}

	if err = ps.space(ErrExpectedAddr); err != nil {
		return
	}
	addr, err := ps.numeral(ErrExpectedAddr)
	if err != nil {
		return
	}

	if err = ps.space(ErrExpectedCtrl); err != nil {
		return
	}
	ctrl, err := ps.numeral(ErrExpectedCtrl)
	if err != nil {
		return
	}

	if err = ps.lineEnd(ErrExpectedCtrl); err != nil {
		return
	}

	node = word.New(in, word.AddrOf(addr), word.CtrlOf(ctrl))
	return
}
