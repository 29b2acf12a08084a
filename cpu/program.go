package cpu

import (
	"bufio"
	"io"
	"iter"
	"slices"

	"github.com/ezrec/cpu8/internal"
)

// Program is the ordered list of encoded instructions. Line order is
// address order.
type Program struct {
	Instructions []Instruction
}

// Len returns the total number of encoded bytes.
func (prog *Program) Len() (total int) {
	for _, inst := range prog.Instructions {
		total += inst.Len()
	}
	return
}

// Codes iterates over the concatenated instruction bytes.
func (prog *Program) Codes() iter.Seq[byte] {
	seqs := make([]iter.Seq[byte], len(prog.Instructions))
	for n, inst := range prog.Instructions {
		seqs[n] = inst.Codes()
	}
	return internal.IterSeqConcat(seqs...)
}

// Padding returns the number of zero bytes needed to fill size.
func (prog *Program) Padding(size int) (pad int, err error) {
	need := prog.Len()
	if size < need {
		err = ErrOverflow{Size: size, Need: need}
		return
	}
	pad = size - need
	return
}

// Image returns the memory image, zero padded to size.
func (prog *Program) Image(size int) (image []byte, err error) {
	pad, err := prog.Padding(size)
	if err != nil {
		return
	}

	image = slices.AppendSeq(make([]byte, 0, size),
		internal.IterSeqConcat(prog.Codes(), internal.IterSeqRepeat(byte(0), pad)))
	return
}

// Debug returns the instruction that covers addr.
func (prog *Program) Debug(addr int) (inst *Instruction) {
	for n, op := range prog.Instructions {
		if addr >= op.Addr && addr < op.Addr+op.Len() {
			inst = &prog.Instructions[n]
			break
		}
	}
	return
}

// WriteHex writes the hex listing: one line per instruction, then a
// final line of zero bytes padding the image to size. Nothing is
// written if the program does not fit.
func (prog *Program) WriteHex(w io.Writer, size int, annotate bool) (err error) {
	pad, err := prog.Padding(size)
	if err != nil {
		return
	}

	out := bufio.NewWriter(w)
	for _, inst := range prog.Instructions {
		out.WriteString(inst.Listing(annotate))
		out.WriteByte('\n')
	}

	for n := range pad {
		if n > 0 {
			out.WriteByte(' ')
		}
		out.WriteString("00")
	}

	err = out.Flush()
	return
}
