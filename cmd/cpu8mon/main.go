// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/ezrec/cpu8/cpu"
	"github.com/ezrec/cpu8/monitor"
)

func main() {
	var device string
	var count int
	var text bool
	var verbose bool
	var source string

	flag.StringVar(&device, "d", "/dev/ttyUSB1", "Debug link device, already configured for 115200 baud")
	flag.IntVar(&count, "n", 0, "Stop after this many frames")
	flag.BoolVar(&text, "t", false, "Plain text dump, even on a terminal")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&source, "s", "", "Assembly source loaded on the device, to show the line at PC")

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var prog *cpu.Program
	if len(source) != 0 {
		srcf, err := os.Open(source)
		if err != nil {
			atexit.Fatalf("%v: %v", source, err)
		}
		asm := &cpu.Assembler{}
		prog, err = asm.Parse(srcf)
		srcf.Close()
		if err != nil {
			atexit.Fatalf("%v: %v", source, err)
		}
	}

	inf, err := os.Open(device)
	if err != nil {
		atexit.Fatalf("%v: %v", device, err)
	}
	atexit.Register(func() { inf.Close() })

	var sink monitor.Sink = &monitor.TextSink{Output: os.Stdout, Program: prog}
	if !text && term.IsTerminal(int(os.Stdout.Fd())) {
		sink = &monitor.TableSink{Output: os.Stdout, Style: table.StyleLight, Program: prog}
	}

	mon := &monitor.Monitor{Count: count, Verbose: verbose}
	_, err = mon.Run(inf, sink)
	if err != nil {
		atexit.Fatalf("%v: %v", device, err)
	}

	atexit.Exit(0)
}
