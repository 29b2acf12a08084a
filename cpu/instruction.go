// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"encoding/binary"
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode"
)

// ANNOTATE_COLUMN is where the source comment starts in a listing line.
const ANNOTATE_COLUMN = 10

// Instruction is one encoded source line. It is not modified after encoding.
type Instruction struct {
	LineNo int    // Source line number, 0 if not from a source file.
	Addr   int    // Address of the opcode byte in the memory image.
	Text   string // Normalized source text.

	codes []byte
}

// Bytes returns a copy of the encoded bytes.
func (inst Instruction) Bytes() []byte {
	return slices.Clone(inst.codes)
}

// Codes iterates over the encoded bytes.
func (inst Instruction) Codes() iter.Seq[byte] {
	return slices.Values(inst.codes)
}

// Len returns the number of encoded bytes.
func (inst Instruction) Len() int {
	return len(inst.codes)
}

// Opcode returns the first byte, with operand bits merged in.
func (inst Instruction) Opcode() byte {
	if len(inst.codes) == 0 {
		return 0
	}
	return inst.codes[0]
}

// Hex renders the bytes as space separated two digit hex.
func (inst Instruction) Hex() string {
	words := make([]string, len(inst.codes))
	for n, code := range inst.codes {
		words[n] = fmt.Sprintf("%02x", code)
	}
	return strings.Join(words, " ")
}

// Listing renders the instruction as an output line, without newline.
// With annotate, the source text follows as a comment.
func (inst Instruction) Listing(annotate bool) string {
	line := inst.Hex()
	if annotate {
		if pad := ANNOTATE_COLUMN - len(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		line += "// " + inst.Text
	}
	return line
}

func (inst Instruction) String() string {
	return inst.Listing(true)
}

// Encode encodes a single normalized (lowercase, comment free) source line.
func Encode(line string) (inst Instruction, err error) {
	name, rest := line, ""
	if n := strings.IndexFunc(line, unicode.IsSpace); n >= 0 {
		name, rest = line[:n], strings.TrimSpace(line[n:])
	}

	mn, err := LookupMnemonic(name)
	if err != nil {
		return
	}

	enc := &encoder{mn: mn}
	if len(rest) > 0 {
		for _, arg := range strings.Split(rest, ",") {
			enc.args = append(enc.args, strings.TrimSpace(arg))
		}
	}

	err = enc.encode()
	if err != nil {
		return
	}

	inst = Instruction{Text: line, codes: enc.codes}
	return
}

// encoder accumulates the bytes for one instruction.
type encoder struct {
	mn    Mnemonic
	args  []string
	codes []byte
}

// arity checks the operand count against the permitted counts.
func (enc *encoder) arity(counts ...int) error {
	if !slices.Contains(counts, len(enc.args)) {
		return ErrOperandCount{Mnemonic: enc.mn.Name, Want: counts, Got: len(enc.args)}
	}
	return nil
}

// operand classifies a token, naming the mnemonic on failure.
func (enc *encoder) operand(token string, classes ...OperandClass) (op Operand, err error) {
	op, err = Classify(token, classes...)
	if eo, ok := err.(ErrOperand); ok {
		eo.Mnemonic = enc.mn.Name
		err = eo
	}
	return
}

// invalid reports a resolved operand that the mnemonic does not accept.
func (enc *encoder) invalid(op Operand) error {
	return ErrOperand{Mnemonic: enc.mn.Name, Operand: op.Text}
}

// register resolves a register that may be either width. A 16-bit
// register selects the alternate opcode; af is never accepted.
func (enc *encoder) register(token string) (opcode Opcode, reg Operand, err error) {
	reg, err = enc.operand(token, OPERAND_REG16, OPERAND_REG8)
	if err != nil {
		return
	}

	opcode = enc.mn.Base
	if reg.Class == OPERAND_REG16 {
		if reg.Text == "af" || !enc.mn.HasAlt {
			err = enc.invalid(reg)
			return
		}
		opcode = enc.mn.Alt
	}
	return
}

func (enc *encoder) emit(opcode Opcode, bits byte) {
	enc.codes = append(enc.codes, byte(opcode)|bits)
}

func (enc *encoder) emit8(value uint32) {
	enc.codes = append(enc.codes, byte(value&0xff))
}

func (enc *encoder) emit16(value uint32) {
	enc.codes = binary.LittleEndian.AppendUint16(enc.codes, uint16(value&0xffff))
}

func (enc *encoder) encode() (err error) {
	mn := enc.mn

	switch mn.Family {
	case FAMILY_BARE:
		if err = enc.arity(0); err != nil {
			return
		}
		enc.emit(mn.Base, 0)
	case FAMILY_JUMP:
		if err = enc.arity(1, 2); err != nil {
			return
		}
		opcode := mn.Base
		var bits byte
		target := enc.args[0]
		if len(enc.args) == 2 {
			var cond Operand
			cond, err = enc.operand(enc.args[0], OPERAND_COND)
			if err != nil {
				return
			}
			opcode = mn.Alt
			bits = cond.Bits()
			target = enc.args[1]
		}
		var addr Operand
		addr, err = enc.operand(target, OPERAND_IMMEDIATE)
		if err != nil {
			return
		}
		enc.emit(opcode, bits)
		if mn.Base == OP_JR {
			enc.emit8(addr.Value(8))
		} else {
			enc.emit16(addr.Value(16))
		}
	case FAMILY_ALU:
		if err = enc.arity(1); err != nil {
			return
		}
		var opcode Opcode
		var reg Operand
		opcode, reg, err = enc.register(enc.args[0])
		if err != nil {
			return
		}
		enc.emit(opcode, reg.Bits())
	case FAMILY_LDI:
		if err = enc.arity(2); err != nil {
			return
		}
		var opcode Opcode
		var reg, imm Operand
		opcode, reg, err = enc.register(enc.args[0])
		if err != nil {
			return
		}
		imm, err = enc.operand(enc.args[1], OPERAND_IMMEDIATE)
		if err != nil {
			return
		}
		enc.emit(opcode, reg.Bits())
		if reg.Class == OPERAND_REG16 {
			enc.emit16(imm.Value(16))
		} else {
			enc.emit8(imm.Value(8))
		}
	case FAMILY_MOV:
		if err = enc.arity(1); err != nil {
			return
		}
		var reg Operand
		reg, err = enc.operand(enc.args[0], OPERAND_REG8)
		if err != nil {
			return
		}
		enc.emit(mn.Base, reg.Bits())
	case FAMILY_LOAD, FAMILY_STORE:
		if err = enc.arity(2); err != nil {
			return
		}
		regToken, addrToken := enc.args[0], enc.args[1]
		if mn.Family == FAMILY_STORE {
			regToken, addrToken = addrToken, regToken
		}
		var opcode Opcode
		var reg, addr Operand
		opcode, reg, err = enc.register(regToken)
		if err != nil {
			return
		}
		addr, err = enc.operand(addrToken, OPERAND_IMMEDIATE)
		if err != nil {
			return
		}
		enc.emit(opcode, reg.Bits())
		enc.emit16(addr.Value(16))
	case FAMILY_LDHLI:
		if err = enc.arity(2); err != nil {
			return
		}
		var reg Operand
		reg, err = enc.operand(enc.args[0], OPERAND_REG8)
		if err != nil {
			return
		}
		if enc.args[1] != HLI {
			err = ErrOperand{Mnemonic: mn.Name, Operand: enc.args[1]}
			return
		}
		enc.emit(mn.Base, reg.Bits())
	case FAMILY_STACK:
		if err = enc.arity(1); err != nil {
			return
		}
		var reg Operand
		reg, err = enc.operand(enc.args[0], OPERAND_REG16)
		if err != nil {
			return
		}
		if reg.Text == "sp" {
			err = enc.invalid(reg)
			return
		}
		enc.emit(mn.Base, reg.Bits())
	case FAMILY_RET:
		if err = enc.arity(0, 1); err != nil {
			return
		}
		if len(enc.args) == 0 {
			enc.emit(mn.Base, 0)
			return
		}
		var cond Operand
		cond, err = enc.operand(enc.args[0], OPERAND_COND)
		if err != nil {
			return
		}
		enc.emit(mn.Alt, cond.Bits())
	default:
		err = ErrMnemonic(mn.Name)
	}

	return
}
