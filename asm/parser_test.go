package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ue14500/word"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	text := `
	ONE 0o77 0b0
	STOC 0o50 0b0
	STOC 0o51 0b0
	STO 0o52 0b0
	STOC 0o53 0b0
	STO 0o54 0b0
	NOP0 0o77 0b1
	`

	expected := word.Nodes{
		word.New(word.INST_ONE, word.AddrOf(63), word.CTRL_NULL),
		word.New(word.INST_STOC, word.AddrOf(40), word.CTRL_NULL),
		word.New(word.INST_STOC, word.AddrOf(41), word.CTRL_NULL),
		word.New(word.INST_STO, word.AddrOf(42), word.CTRL_NULL),
		word.New(word.INST_STOC, word.AddrOf(43), word.CTRL_NULL),
		word.New(word.INST_STO, word.AddrOf(44), word.CTRL_NULL),
		word.New(word.INST_NOP0, word.AddrOf(63), word.CTRL_COPY_SHIFT),
	}

	nodes, err := Parse(text)
	assert.NoError(err)
	assert.Equal(expected, nodes)
}

func TestParseInst(t *testing.T) {
	assert := assert.New(t)

	for _, spell := range []string{"one", "One", "ONE"} {
		nodes, err := Parse(spell + " 0o0 0b0")
		assert.NoError(err, spell)
		assert.Equal(word.INST_ONE, nodes.Words()[0].Inst(), spell)
	}

	// StoC wins over Sto only on the full literal.
	nodes, err := Parse("stoc 0o0 0b0")
	assert.NoError(err)
	assert.Equal(word.INST_STOC, nodes.Words()[0].Inst())

	nodes, err = Parse("sto 0o0 0b0")
	assert.NoError(err)
	assert.Equal(word.INST_STO, nodes.Words()[0].Inst())
}

func TestParseNumeralBases(t *testing.T) {
	assert := assert.New(t)

	for _, numeral := range []string{"0b111111", "0o77", "0h3f", "0h3F"} {
		nodes, err := Parse("one " + numeral + " 0b0")
		assert.NoError(err, numeral)
		assert.Equal(uint32(63), nodes.Words()[0].Addr().Value(), numeral)
	}
}

func TestParseCtrl(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		numeral string
		ctrl    word.Ctrl
	}{
		{"0b00", word.CTRL_NULL},
		{"0b01", word.CTRL_COPY_SHIFT},
		{"0b10", word.CTRL_UNDEFINED},
		{"0b11", word.CTRL_STOP_TAPE},
		{"0h0", word.CTRL_NULL},
		{"0o1", word.CTRL_COPY_SHIFT},
	}

	for _, entry := range table {
		nodes, err := Parse("nop0 0o0 " + entry.numeral)
		assert.NoError(err, entry.numeral)
		assert.Equal(entry.ctrl, nodes.Words()[0].Ctrl(), entry.numeral)
	}
}

func TestParseComment(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text string
		node word.Comment
	}{
		{";ONE 0o77 00", word.Comment("ONE 0o77 00")},
		{";   \n", word.Comment("")},
		{"; foo bar  \n", word.Comment(" foo bar")},
	}

	for _, entry := range table {
		nodes, err := Parse(entry.text)
		assert.NoError(err, entry.text)
		assert.Equal(word.Nodes{entry.node}, nodes, entry.text)
	}
}

func TestParseCommentOnly(t *testing.T) {
	assert := assert.New(t)

	nodes, err := Parse("; hello\n; world\n")
	assert.NoError(err)
	assert.Equal(word.Nodes{
		word.Comment(" hello"),
		word.Comment(" world"),
	}, nodes)
	assert.Empty(nodes.Words())
}

func TestParseInterleaved(t *testing.T) {
	assert := assert.New(t)

	text := "; load the one\none 0o77 0b0\n; store it\nsto 0o52 0b0\n"

	nodes, err := Parse(text)
	assert.NoError(err)
	assert.Equal(word.Nodes{
		word.Comment(" load the one"),
		word.New(word.INST_ONE, word.AddrOf(63), word.CTRL_NULL),
		word.Comment(" store it"),
		word.New(word.INST_STO, word.AddrOf(42), word.CTRL_NULL),
	}, nodes)
}

func TestParseExpr(t *testing.T) {
	assert := assert.New(t)

	nodes, err := Parse("one $(7 * 8 + 7) 0b0")
	assert.NoError(err)
	assert.Equal(uint32(63), nodes.Words()[0].Addr().Value())

	nodes, err = Parse("one 0o77 $(3)")
	assert.NoError(err)
	assert.Equal(word.CTRL_STOP_TAPE, nodes.Words()[0].Ctrl())

	_, err = Parse("one $(\"no\") 0b0")
	assert.Error(err)
	assert.True(errors.Is(err, ErrExpression("")))
}

func TestParseEmpty(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{"", "   ", "\n\n", " \t \n \r\n "} {
		nodes, err := Parse(text)
		assert.NoError(err, "%q", text)
		assert.Empty(nodes, "%q", text)
	}
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text   string
		expect error
		offset int
	}{
		{"FOO 0o1 0b0", ErrExpectedInst{}, 0},
		{"ONE 99 0b0", ErrExpectedAddr, 4},
		{"ONE 0o88 0b0", ErrExpectedAddr, 4},
		{"ONE 0b 0b0", ErrExpectedAddr, 4},
		{"ONE 0o77 22", ErrExpectedCtrl, 9},
		{"ONE 0o77 0b0 junk", ErrExpectedCtrl, 12},
		{"ONE0o77 0b0", ErrExpectedAddr, 3},
		{"ONE 0o77", ErrUnexpectedEoi, 8},
		{"ONE 0o77 ", ErrUnexpectedEoi, 8},
		{"ONE", ErrUnexpectedEoi, 3},
		{"one 0o77 0b0\n\nsto 0o52 0b0", ErrExpectedInst{}, 13},
		{"one 0o77 0b0\n   \nsto 0o52 0b0", ErrExpectedInst{}, 16},
		{"; fine\rnot a line end", ErrExpectedComment, 6},
		{"one $(63 0b0", ErrExpectedAddr, 4},
	}

	for _, entry := range table {
		_, err := Parse(entry.text)
		assert.Error(err, entry.text)
		if err == nil {
			continue
		}

		assert.True(errors.Is(err, entry.expect), "%v: %v", entry.text, err)

		var se *ErrSyntax
		assert.True(errors.As(err, &se), entry.text)
		if se != nil {
			assert.Equal(entry.offset, se.Offset, entry.text)
		}
	}
}

func TestParseOffsetPastIndent(t *testing.T) {
	assert := assert.New(t)

	// Leading blank lines are trimmed, but reported offsets still
	// count them.
	_, err := Parse("\n  FOO 0o1 0b0")

	var se *ErrSyntax
	assert.True(errors.As(err, &se))
	if se != nil {
		assert.Equal(3, se.Offset)
	}
}
