package asm

import (
	"errors"

	"github.com/ezrec/ue14500/translate"
	"github.com/ezrec/ue14500/word"
)

var f = translate.From

var (
	// Parser errors, each naming the construct expected at the
	// failure point.
	ErrExpectedAddr    = errors.New(f("expected address numeral"))
	ErrExpectedCtrl    = errors.New(f("expected control numeral"))
	ErrExpectedComment = errors.New(f("expected comment"))
	ErrUnexpectedEoi   = errors.New(f("unexpected end of input"))
)

// ErrExpectedInst reports that no instruction mnemonic matched.
type ErrExpectedInst struct {
	Inst word.Inst
}

func (err ErrExpectedInst) Error() string {
	return f("expected instruction '%v'", err.Inst.Name())
}

func (err ErrExpectedInst) Is(target error) (ok bool) {
	_, ok = target.(ErrExpectedInst)
	return
}

// ErrExpression reports a malformed or non-integer $(...) expression.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a constant expression", string(err))
}

func (err ErrExpression) Is(target error) (ok bool) {
	_, ok = target.(ErrExpression)
	return
}

// ErrSyntax locates a failure within the source text.
type ErrSyntax struct {
	Offset int
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("offset %d: %v", err.Offset, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
