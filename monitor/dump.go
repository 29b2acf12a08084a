package monitor

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/cpu8/cpu"
)

// Source returns the assembled source line covering the frame's PC, or
// the empty string if prog is nil or nothing was assembled there.
func Source(prog *cpu.Program, fr Frame) string {
	if prog == nil {
		return ""
	}

	inst := prog.Debug(int(fr.PC))
	if inst == nil {
		return ""
	}

	return fmt.Sprintf("%v: %v", inst.LineNo, inst.Text)
}

// Table renders frames as a register table, one row per frame. With a
// program, each row also shows the source line at PC.
func Table(style table.Style, prog *cpu.Program, frames ...Frame) string {
	tw := table.NewWriter()
	tw.SetStyle(style)

	header := table.Row{"ST", "OP", "", "PC", "SP", "AF", "BC", "DE", "HL"}
	if prog != nil {
		header = append(header, "SOURCE")
	}
	tw.AppendHeader(header)

	for _, fr := range frames {
		row := table.Row{
			fmt.Sprintf("%02d", fr.State()),
			fmt.Sprintf("%02x", fr.Opcode),
			fr.Mnemonic(),
			fmt.Sprintf("%04x", fr.PC),
			fmt.Sprintf("%04x", fr.SP),
			fmt.Sprintf("%04x", fr.AF),
			fmt.Sprintf("%04x", fr.BC),
			fmt.Sprintf("%04x", fr.DE),
			fmt.Sprintf("%04x", fr.HL),
		}
		if prog != nil {
			row = append(row, Source(prog, fr))
		}
		tw.AppendRow(row)
	}

	return tw.Render()
}

// Sink receives decoded frames.
type Sink interface {
	Show(fr Frame) error
}

// TextSink writes each frame as a two line dump.
type TextSink struct {
	Output  io.Writer
	Program *cpu.Program // If set, the source line at PC follows the dump.
}

func (ts *TextSink) Show(fr Frame) (err error) {
	text := fr.String()
	if src := Source(ts.Program, fr); len(src) > 0 {
		text += src + "\n"
	}
	_, err = io.WriteString(ts.Output, text+"\n")
	return
}

// TableSink writes each frame as a single row table.
type TableSink struct {
	Output  io.Writer
	Style   table.Style
	Program *cpu.Program // If set, adds a source column.
}

func (ts *TableSink) Show(fr Frame) (err error) {
	_, err = io.WriteString(ts.Output, Table(ts.Style, ts.Program, fr)+"\n")
	return
}
