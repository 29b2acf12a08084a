// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package monitor decodes the cpu8 status frames sent over the debug
// serial link, and renders them as register dumps.
package monitor

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"

	"github.com/ezrec/cpu8/cpu"
)

// FRAME_SIZE is the wire size of a status frame.
const FRAME_SIZE = 14

// STATE_MASK selects the sequencer state from the status byte.
const STATE_MASK = 0x1f

// Frame is one status frame. On the wire: status, then PC, SP, AF, BC,
// DE and HL most significant byte first, then the current opcode.
type Frame struct {
	Status byte
	PC     uint16
	SP     uint16
	AF     uint16
	BC     uint16
	DE     uint16
	HL     uint16
	Opcode byte
}

// State returns the sequencer state.
func (fr Frame) State() int {
	return int(fr.Status & STATE_MASK)
}

// Mnemonic names the base operation of the current opcode.
func (fr Frame) Mnemonic() string {
	return cpu.Opcode(fr.Opcode & cpu.OPCODE_MASK).String()
}

// AppendBinary appends the wire encoding of the frame.
func (fr Frame) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, fr.Status)
	for _, reg := range []uint16{fr.PC, fr.SP, fr.AF, fr.BC, fr.DE, fr.HL} {
		b = binary.BigEndian.AppendUint16(b, reg)
	}
	b = append(b, fr.Opcode)
	return b, nil
}

// MarshalBinary returns the wire encoding of the frame.
func (fr Frame) MarshalBinary() ([]byte, error) {
	return fr.AppendBinary(make([]byte, 0, FRAME_SIZE))
}

// UnmarshalBinary decodes a frame from exactly FRAME_SIZE bytes.
func (fr *Frame) UnmarshalBinary(data []byte) error {
	if len(data) != FRAME_SIZE {
		return ErrFrameLength
	}

	fr.Status = data[0]
	regs := []*uint16{&fr.PC, &fr.SP, &fr.AF, &fr.BC, &fr.DE, &fr.HL}
	for n, reg := range regs {
		*reg = binary.BigEndian.Uint16(data[1+n*2:])
	}
	fr.Opcode = data[FRAME_SIZE-1]

	return nil
}

// String renders the frame as a two line register dump.
func (fr Frame) String() string {
	return fmt.Sprintf("ST op  PC   SP   AF   BC   DE   HL \n"+
		"%02d %02x %04x %04x %04x %04x %04x %04x\n",
		fr.State(), fr.Opcode, fr.PC, fr.SP, fr.AF, fr.BC, fr.DE, fr.HL)
}

// ReadFrame reads the next frame. io.EOF is returned only when the
// input ends on a frame boundary.
func ReadFrame(input io.Reader) (fr Frame, err error) {
	var buf [FRAME_SIZE]byte

	n, err := io.ReadFull(input, buf[:])
	switch err {
	case nil:
	case io.ErrUnexpectedEOF:
		err = ErrShortFrame(n)
		return
	default:
		return
	}

	err = fr.UnmarshalBinary(buf[:])
	return
}

// Frames iterates over the frames of the input until it ends. A
// failed read is yielded once, and ends the iteration.
func Frames(input io.Reader) iter.Seq2[Frame, error] {
	return func(yield func(Frame, error) bool) {
		for {
			fr, err := ReadFrame(input)
			if err == io.EOF {
				return
			}
			if !yield(fr, err) || err != nil {
				return
			}
		}
	}
}
