package monitor

import (
	"bytes"
	"errors"
	"strings"

	gomock "github.com/golang/mock/gomock"
	"github.com/jedib0t/go-pretty/v6/table"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/cpu8/cpu"
)

var _ = Describe("Monitor", func() {
	var (
		mockCtrl *gomock.Controller
		sink     *MockSink
		mon      *Monitor
		second   Frame
		input    *bytes.Reader
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		sink = NewMockSink(mockCtrl)
		mon = &Monitor{}

		second = decoded
		second.PC = 0x1235
		second.Opcode = 0x01

		raw, _ := second.MarshalBinary()
		input = bytes.NewReader(append(append([]byte{}, wire...), raw...))
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should show every frame in order", func() {
		gomock.InOrder(
			sink.EXPECT().Show(decoded).Return(nil),
			sink.EXPECT().Show(second).Return(nil),
		)

		count, err := mon.Run(input, sink)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))
	})

	It("should stop after Count frames", func() {
		mon.Count = 1
		mon.Verbose = true
		sink.EXPECT().Show(decoded).Return(nil)

		count, err := mon.Run(input, sink)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(1))
	})

	It("should stop when the sink fails", func() {
		fail := errors.New("closed")
		sink.EXPECT().Show(decoded).Return(fail)

		count, err := mon.Run(input, sink)
		Expect(err).To(MatchError(fail))
		Expect(count).To(Equal(0))
	})

	It("should report a truncated frame", func() {
		sink.EXPECT().Show(decoded).Return(nil)

		count, err := mon.Run(bytes.NewReader(append(append([]byte{}, wire...), 0x00)), sink)
		Expect(err).To(MatchError(ErrFrameShort))
		Expect(count).To(Equal(1))
	})

	It("should write text dumps", func() {
		var out bytes.Buffer
		ts := &TextSink{Output: &out}

		count, err := mon.Run(input, ts)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))
		Expect(out.String()).To(Equal(decoded.String() + "\n" + second.String() + "\n"))
	})

	It("should write table dumps", func() {
		var out bytes.Buffer
		ts := &TableSink{Output: &out, Style: table.StyleLight}

		_, err := mon.Run(input, ts)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("1235"))
		Expect(out.String()).To(ContainSubstring("hlt"))
	})
})

var _ = Describe("Source", func() {
	var prog *cpu.Program

	BeforeEach(func() {
		asm := &cpu.Assembler{}
		var err error
		prog, err = asm.Parse(strings.NewReader("# boot\nldi bc,0x1234\nnop\nhlt\n"))
		Expect(err).NotTo(HaveOccurred())
	})

	It("should name the source line at PC", func() {
		Expect(Source(prog, Frame{PC: 0})).To(Equal("2: ldi bc,0x1234"))
		Expect(Source(prog, Frame{PC: 2})).To(Equal("2: ldi bc,0x1234"))
		Expect(Source(prog, Frame{PC: 3})).To(Equal("3: nop"))
		Expect(Source(prog, Frame{PC: 4})).To(Equal("4: hlt"))
	})

	It("should be empty outside the program", func() {
		Expect(Source(prog, Frame{PC: 5})).To(BeEmpty())
		Expect(Source(nil, Frame{PC: 0})).To(BeEmpty())
	})

	It("should annotate text dumps", func() {
		var out bytes.Buffer
		ts := &TextSink{Output: &out, Program: prog}

		Expect(ts.Show(Frame{PC: 3})).To(Succeed())
		Expect(out.String()).To(Equal(Frame{PC: 3}.String() + "3: nop\n\n"))
	})

	It("should add a source column to tables", func() {
		out := Table(table.StyleLight, prog, Frame{PC: 4, Opcode: 0x01})
		Expect(out).To(ContainSubstring("SOURCE"))
		Expect(out).To(ContainSubstring("4: hlt"))

		Expect(Table(table.StyleLight, nil, Frame{PC: 4})).NotTo(ContainSubstring("SOURCE"))
	})
})
