// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// OperandClass is the kind of an instruction operand.
type OperandClass int

//go:generate go tool stringer -linecomment -type=OperandClass
const (
	OPERAND_REG8      = OperandClass(0) // reg8
	OPERAND_REG16     = OperandClass(1) // reg16
	OPERAND_COND      = OperandClass(2) // cond
	OPERAND_IMMEDIATE = OperandClass(3) // imm
)

// Operand is a classified operand token.
type Operand struct {
	Class   OperandClass
	Text    string // Token as written.
	Code    int    // Register or condition code.
	Literal int64  // Signed value of an immediate.
}

// Bits returns the operand code shifted into its opcode bit position.
func (op Operand) Bits() byte {
	switch op.Class {
	case OPERAND_REG8:
		return byte(op.Code << REG8_SHIFT)
	case OPERAND_REG16:
		return byte(op.Code << REG16_SHIFT)
	case OPERAND_COND:
		return byte(op.Code << COND_SHIFT)
	}
	return 0
}

// Value returns an immediate folded into the unsigned range of width bits.
func (op Operand) Value(width int) uint32 {
	return fold(op.Literal, width)
}

// Classify resolves a token as the first matching class in classes.
func Classify(token string, classes ...OperandClass) (op Operand, err error) {
	op.Text = token
	for _, class := range classes {
		op.Class = class
		switch class {
		case OPERAND_REG8:
			if code, ok := reg8Map[token]; ok {
				op.Code = int(code)
				return
			}
		case OPERAND_REG16:
			if code, ok := reg16Map[token]; ok {
				op.Code = int(code)
				return
			}
		case OPERAND_COND:
			if code, ok := condMap[token]; ok {
				op.Code = int(code)
				return
			}
		case OPERAND_IMMEDIATE:
			op.Literal, err = parseInt(token)
			return
		}
	}

	err = ErrOperand{Operand: token}
	return
}

// ParseLiteral parses an integer token, folding negative values into
// the unsigned range of width bits. A single layer of parentheses is
// ignored. Values wider than width are not checked.
func ParseLiteral(token string, width int) (value uint32, err error) {
	v64, err := parseInt(token)
	if err != nil {
		return
	}

	value = fold(v64, width)
	return
}

// fold applies two's complement to negative values.
func fold(v64 int64, width int) uint32 {
	if v64 < 0 {
		v64 = (int64(1) << width) + v64
	}
	return uint32(v64)
}

// parseInt returns the signed value of a literal token.
func parseInt(token string) (v64 int64, err error) {
	word := token
	if strings.HasPrefix(word, "(") && strings.HasSuffix(word, ")") {
		word = word[1 : len(word)-1]
	}
	word = strings.TrimSpace(word)

	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		return evalExpr(word[2 : len(word)-1])
	}

	if octalLike(word) {
		err = ErrMalformedLiteral(token)
		return
	}

	v64, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrMalformedLiteral(token)
	}
	return
}

// octalLike reports a leading zero followed by more digits, which is
// neither decimal nor an explicitly prefixed base. All zeros is decimal.
func octalLike(word string) bool {
	digits := strings.TrimLeft(word, "+-")
	if len(digits) < 2 || digits[0] != '0' {
		return false
	}
	if digits[1] < '0' || digits[1] > '9' && digits[1] != '_' {
		return false
	}
	return strings.Trim(digits, "0_") != ""
}

// evalExpr does compile-time $(...) evaluations.
func evalExpr(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, nil)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}
