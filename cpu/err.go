// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"

	"github.com/ezrec/cpu8/translate"
)

var f = translate.From

var (
	// Encoder errors
	ErrInvalidOperand  = errors.New(f("invalid operand"))
	ErrPaddingOverflow = errors.New(f("padding overflow"))
	ErrUnknownMnemonic = errors.New(f("unknown mnemonic"))
	ErrMalformed       = errors.New(f("malformed literal"))
)

// ErrMnemonic is returned when the mnemonic is not in the opcode table.
type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("unknown instruction '%v'", string(err))
}

func (err ErrMnemonic) Is(target error) bool {
	return target == ErrUnknownMnemonic
}

// ErrMalformedLiteral is returned when a literal is not an integer.
type ErrMalformedLiteral string

func (err ErrMalformedLiteral) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrMalformedLiteral) Is(target error) bool {
	return target == ErrMalformed
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Is(target error) bool {
	return target == ErrMalformed
}

// ErrOperandCount is returned when a mnemonic has the wrong number of operands.
type ErrOperandCount struct {
	Mnemonic string
	Want     []int
	Got      int
}

func (err ErrOperandCount) Error() string {
	return f("%v expects %v operands, got %v", err.Mnemonic, err.Want, err.Got)
}

func (err ErrOperandCount) Is(target error) bool {
	return target == ErrInvalidOperand
}

// ErrOperand is returned when an operand is unknown, or not permitted for
// the mnemonic.
type ErrOperand struct {
	Mnemonic string
	Operand  string
}

func (err ErrOperand) Error() string {
	return f("%v: operand '%v' invalid", err.Mnemonic, err.Operand)
}

func (err ErrOperand) Is(target error) bool {
	return target == ErrInvalidOperand
}

// ErrOverflow is returned when the program does not fit the flash size.
type ErrOverflow struct {
	Size int
	Need int
}

func (err ErrOverflow) Error() string {
	return f("program needs %v bytes, flash size is %v", err.Need, err.Size)
}

func (err ErrOverflow) Is(target error) bool {
	return target == ErrPaddingOverflow
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %v '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
