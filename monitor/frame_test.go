package monitor

import (
	"bytes"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var wire = []byte{
	0x23,       // status
	0x12, 0x34, // PC
	0xff, 0xfe, // SP
	0x00, 0x80, // AF
	0x00, 0x01, // BC
	0xab, 0xcd, // DE
	0x10, 0x20, // HL
	0x97,       // opcode
}

var decoded = Frame{
	Status: 0x23,
	PC:     0x1234,
	SP:     0xfffe,
	AF:     0x0080,
	BC:     0x0001,
	DE:     0xabcd,
	HL:     0x1020,
	Opcode: 0x97,
}

var _ = Describe("Frame", func() {
	It("should decode the wire layout", func() {
		var fr Frame
		Expect(fr.UnmarshalBinary(wire)).To(Succeed())
		Expect(fr).To(Equal(decoded))
		Expect(fr.State()).To(Equal(3))
		Expect(fr.Mnemonic()).To(Equal("ldhli"))
	})

	It("should encode the wire layout", func() {
		Expect(decoded.MarshalBinary()).To(Equal(wire))
	})

	It("should reject a partial frame", func() {
		var fr Frame
		Expect(fr.UnmarshalBinary(wire[:FRAME_SIZE-1])).To(MatchError(ErrFrameLength))
	})

	It("should render the register dump", func() {
		Expect(decoded.String()).To(Equal(
			"ST op  PC   SP   AF   BC   DE   HL \n" +
				"03 97 1234 fffe 0080 0001 abcd 1020\n"))
	})

	It("should render a register table", func() {
		out := Table(table.StyleDefault, nil, decoded, Frame{Opcode: 0x0e})
		Expect(out).To(ContainSubstring("PC"))
		Expect(out).To(ContainSubstring("ldhli"))
		Expect(out).To(ContainSubstring("1234"))
		Expect(out).To(ContainSubstring("abcd"))
		Expect(out).To(ContainSubstring("op0e"))
	})
})

var _ = Describe("ReadFrame", func() {
	It("should read consecutive frames", func() {
		input := bytes.NewReader(append(append([]byte{}, wire...), wire...))

		fr, err := ReadFrame(input)
		Expect(err).NotTo(HaveOccurred())
		Expect(fr).To(Equal(decoded))

		fr, err = ReadFrame(input)
		Expect(err).NotTo(HaveOccurred())
		Expect(fr).To(Equal(decoded))

		_, err = ReadFrame(input)
		Expect(err).To(Equal(io.EOF))
	})

	It("should report a truncated frame", func() {
		_, err := ReadFrame(bytes.NewReader(wire[:5]))
		Expect(err).To(MatchError(ErrFrameShort))
		Expect(err).To(MatchError(io.ErrUnexpectedEOF))
		Expect(err).To(Equal(ErrShortFrame(5)))
	})

	It("should iterate until the input ends", func() {
		input := bytes.NewReader(append(append([]byte{}, wire...), wire[:3]...))

		var frames []Frame
		var errs []error
		for fr, err := range Frames(input) {
			frames = append(frames, fr)
			errs = append(errs, err)
		}

		Expect(frames).To(HaveLen(2))
		Expect(frames[0]).To(Equal(decoded))
		Expect(errs[0]).NotTo(HaveOccurred())
		Expect(errs[1]).To(MatchError(ErrFrameShort))
	})

	It("should stop quietly on a frame boundary", func() {
		count := 0
		for range Frames(bytes.NewReader(nil)) {
			count++
		}
		Expect(count).To(Equal(0))
	})
})
