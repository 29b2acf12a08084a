// Package cpu implements the opcode tables and assembler for the cpu8
// processor.
//
// The cpu8 is a small 8-bit processor with seven 8-bit registers (a-l),
// four 16-bit register pairs (bc, de, hl, sp or af), and a handful of
// 16-bit extension operations. Every instruction is one opcode byte,
// followed by zero to two immediate or address bytes, 16-bit values
// little-endian. The low five bits of the opcode select the operation,
// the high bits hold the register or condition code.
//
// The assembler reads one instruction per line, and produces a flat
// memory image rendered as a hex listing, padded to the flash size.
package cpu
