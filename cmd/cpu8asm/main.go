// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/ezrec/cpu8/cpu"
	"github.com/ezrec/cpu8/translate"
)

func usage() {
	translate.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] infile outfile flash_size\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var plain bool
	var verbose bool

	flag.BoolVar(&plain, "n", false, "Do not annotate the listing with source lines")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Usage = usage

	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}

	input := flag.Arg(0)
	output := flag.Arg(1)

	size, err := strconv.ParseInt(flag.Arg(2), 0, 32)
	if err != nil || size < 0 {
		log.Fatalf("%v: invalid flash size '%v'", os.Args[0], flag.Arg(2))
	}

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	asm := &cpu.Assembler{Verbose: verbose}
	listing, err := asm.Assemble(inf, int(size), !plain)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	// The output is only touched once the whole program has assembled.
	err = os.WriteFile(output, listing, 0o644)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
