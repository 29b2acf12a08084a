// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"bytes"
	"io"
	"log"
	"strings"
)

// COMMENT starts a comment that runs to the end of the line.
const COMMENT = "#"

// Assembler is a single pass, line at a time assembler.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// Normalize strips the comment and surrounding whitespace from a line,
// and lowercases it.
func Normalize(text string) string {
	line, _, _ := strings.Cut(text, COMMENT)
	return strings.ToLower(strings.TrimSpace(line))
}

// Parse parses an input stream into a Program. The first bad line aborts
// the parse, and is reported verbatim in an ErrSyntax.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int
	var addr int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
			prog = nil
		}
	}()

	prog = &Program{}

	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		line := Normalize(text)
		if len(line) == 0 {
			continue
		}

		var inst Instruction
		inst, err = Encode(line)
		if err != nil {
			return
		}
		inst.LineNo = lineno
		inst.Addr = addr
		addr += inst.Len()

		if asm.Verbose {
			log.Printf("%v: %04x %-6v %v\n", lineno, inst.Addr, Opcode(inst.Opcode()&OPCODE_MASK), inst.Hex())
		}

		prog.Instructions = append(prog.Instructions, inst)
	}

	err = scanner.Err()
	if err != nil {
		// The failed line was never returned by the scanner.
		lineno += 1
		text = ""
	}
	return
}

// Assemble parses the input, and renders the padded hex listing into
// memory. Nothing is returned unless the whole program assembled.
func (asm *Assembler) Assemble(input io.Reader, size int, annotate bool) (listing []byte, err error) {
	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	var buf bytes.Buffer
	err = prog.WriteHex(&buf, size, annotate)
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("%v bytes, %v bytes padding\n", prog.Len(), size-prog.Len())
	}

	listing = buf.Bytes()
	return
}
