package cpu

import (
	"fmt"
)

// Opcode is a base instruction byte, before operand bits are merged in.
type Opcode byte

const (
	OP_NOP    = Opcode(0x00)
	OP_HLT    = Opcode(0x01)
	OP_MOV    = Opcode(0x02)
	OP_LDI    = Opcode(0x03)
	OP_LD     = Opcode(0x04)
	OP_ST     = Opcode(0x05)
	OP_ADD    = Opcode(0x06)
	OP_SUB    = Opcode(0x07)
	OP_OR     = Opcode(0x08)
	OP_AND    = Opcode(0x09)
	OP_XOR    = Opcode(0x0a)
	OP_INC    = Opcode(0x0b)
	OP_DEC    = Opcode(0x0c)
	OP_JR     = Opcode(0x0d)
	OP_JRCC   = Opcode(0x0f)
	OP_INC16  = Opcode(0x10)
	OP_DEC16  = Opcode(0x11)
	OP_ADD16  = Opcode(0x12)
	OP_JP     = Opcode(0x13)
	OP_JPCC   = Opcode(0x14)
	OP_LDI16  = Opcode(0x15)
	OP_LD16   = Opcode(0x16)
	OP_LDHLI  = Opcode(0x17)
	OP_PUSH   = Opcode(0x18)
	OP_POP    = Opcode(0x19)
	OP_CALL   = Opcode(0x1a)
	OP_CALLCC = Opcode(0x1b)
	OP_RET    = Opcode(0x1c)
	OP_RETCC  = Opcode(0x1d)

	// OPCODE_MASK covers every base opcode; operand bits live above it.
	OPCODE_MASK = 0x1f
)

var opcodeName = map[Opcode]string{
	OP_NOP:    "nop",
	OP_HLT:    "hlt",
	OP_MOV:    "mov",
	OP_LDI:    "ldi",
	OP_LD:     "ld",
	OP_ST:     "st",
	OP_ADD:    "add",
	OP_SUB:    "sub",
	OP_OR:     "or",
	OP_AND:    "and",
	OP_XOR:    "xor",
	OP_INC:    "inc",
	OP_DEC:    "dec",
	OP_JR:     "jr",
	OP_JRCC:   "jrcc",
	OP_INC16:  "inc16",
	OP_DEC16:  "dec16",
	OP_ADD16:  "add16",
	OP_JP:     "jp",
	OP_JPCC:   "jpcc",
	OP_LDI16:  "ldi16",
	OP_LD16:   "ld16",
	OP_LDHLI:  "ldhli",
	OP_PUSH:   "push",
	OP_POP:    "pop",
	OP_CALL:   "call",
	OP_CALLCC: "callcc",
	OP_RET:    "ret",
	OP_RETCC:  "retcc",
}

// String returns the opcode table name, or the hex value for unassigned opcodes.
func (op Opcode) String() string {
	name, ok := opcodeName[op]
	if !ok {
		return fmt.Sprintf("op%02x", byte(op))
	}
	return name
}

// Family selects the encoding rule for a mnemonic.
type Family int

//go:generate go tool stringer -linecomment -type=Family
const (
	FAMILY_BARE  = Family(0) // bare
	FAMILY_JUMP  = Family(1) // jump
	FAMILY_ALU   = Family(2) // alu
	FAMILY_LDI   = Family(3) // ldi
	FAMILY_MOV   = Family(4) // mov
	FAMILY_LOAD  = Family(5) // load
	FAMILY_STORE = Family(6) // store
	FAMILY_LDHLI = Family(7) // ldhli
	FAMILY_STACK = Family(8) // stack
	FAMILY_RET   = Family(9) // ret
)

// Mnemonic is a source instruction name and its opcode variants.
type Mnemonic struct {
	Name   string
	Family Family
	Base   Opcode // Plain form.
	Alt    Opcode // 16-bit register or conditional form.
	HasAlt bool
}

// mnemonicMap maps source mnemonics to their encoding entries.
var mnemonicMap = map[string]Mnemonic{
	"nop":   {Name: "nop", Family: FAMILY_BARE, Base: OP_NOP},
	"hlt":   {Name: "hlt", Family: FAMILY_BARE, Base: OP_HLT},
	"jr":    {Name: "jr", Family: FAMILY_JUMP, Base: OP_JR, Alt: OP_JRCC, HasAlt: true},
	"jp":    {Name: "jp", Family: FAMILY_JUMP, Base: OP_JP, Alt: OP_JPCC, HasAlt: true},
	"call":  {Name: "call", Family: FAMILY_JUMP, Base: OP_CALL, Alt: OP_CALLCC, HasAlt: true},
	"inc":   {Name: "inc", Family: FAMILY_ALU, Base: OP_INC, Alt: OP_INC16, HasAlt: true},
	"dec":   {Name: "dec", Family: FAMILY_ALU, Base: OP_DEC, Alt: OP_DEC16, HasAlt: true},
	"add":   {Name: "add", Family: FAMILY_ALU, Base: OP_ADD, Alt: OP_ADD16, HasAlt: true},
	"sub":   {Name: "sub", Family: FAMILY_ALU, Base: OP_SUB},
	"or":    {Name: "or", Family: FAMILY_ALU, Base: OP_OR},
	"and":   {Name: "and", Family: FAMILY_ALU, Base: OP_AND},
	"xor":   {Name: "xor", Family: FAMILY_ALU, Base: OP_XOR},
	"ldi":   {Name: "ldi", Family: FAMILY_LDI, Base: OP_LDI, Alt: OP_LDI16, HasAlt: true},
	"mov":   {Name: "mov", Family: FAMILY_MOV, Base: OP_MOV},
	"ld":    {Name: "ld", Family: FAMILY_LOAD, Base: OP_LD, Alt: OP_LD16, HasAlt: true},
	"st":    {Name: "st", Family: FAMILY_STORE, Base: OP_ST},
	"ldhli": {Name: "ldhli", Family: FAMILY_LDHLI, Base: OP_LDHLI},
	"push":  {Name: "push", Family: FAMILY_STACK, Base: OP_PUSH},
	"pop":   {Name: "pop", Family: FAMILY_STACK, Base: OP_POP},
	"ret":   {Name: "ret", Family: FAMILY_RET, Base: OP_RET, Alt: OP_RETCC, HasAlt: true},
}

// LookupMnemonic returns the encoding entry for a lowercase mnemonic.
func LookupMnemonic(name string) (mn Mnemonic, err error) {
	mn, ok := mnemonicMap[name]
	if !ok {
		err = ErrMnemonic(name)
	}
	return
}

// Reg8 is an 8-bit register code.
type Reg8 int

const (
	REG8_A = Reg8(0)
	REG8_B = Reg8(1)
	REG8_C = Reg8(2)
	REG8_D = Reg8(3)
	REG8_E = Reg8(4)
	REG8_H = Reg8(5)
	REG8_L = Reg8(6)

	REG8_SHIFT = 5
)

// Reg16 is a 16-bit register pair code.
type Reg16 int

const (
	REG16_BC = Reg16(0)
	REG16_DE = Reg16(1)
	REG16_HL = Reg16(2)
	REG16_SP = Reg16(3) // Arithmetic and load only.
	REG16_AF = Reg16(3) // Push and pop only.

	REG16_SHIFT = 6
)

// Cond is a branch condition code.
type Cond int

const (
	COND_Z  = Cond(0)
	COND_C  = Cond(1)
	COND_NZ = Cond(2)
	COND_NC = Cond(3)

	COND_SHIFT = 6
)

var reg8Map = map[string]Reg8{
	"a": REG8_A,
	"b": REG8_B,
	"c": REG8_C,
	"d": REG8_D,
	"e": REG8_E,
	"h": REG8_H,
	"l": REG8_L,
}

var reg16Map = map[string]Reg16{
	"bc": REG16_BC,
	"de": REG16_DE,
	"hl": REG16_HL,
	"sp": REG16_SP,
	"af": REG16_AF,
}

var condMap = map[string]Cond{
	"z":  COND_Z,
	"c":  COND_C,
	"nz": COND_NZ,
	"nc": COND_NC,
}

// HLI is the auto-incrementing indirect operand of ldhli.
const HLI = "(hl+)"
