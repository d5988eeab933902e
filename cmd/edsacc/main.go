// Command edsacc translates an EDSAC assembly source file into the
// teleprinter tape format understood by EDSAC simulators.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dcbrls/edsacc/pkg/asm"
	"github.com/dcbrls/edsacc/pkg/utils"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: edsacc [options] [--input=FILE] [--output=FILE]

options:
  -1, -2            select Initial Orders 1 or 2 (default 2)
  --io=N            select Initial Orders N (1 or 2)
  --input=FILE      source file to assemble (default: standard input)
  --output=FILE     tape file to write (default: stdout)
  -d, --debug       annotate the tape with per-word debug tags and a symbol dump
  -h, --help        show this message

exit status:
  0  success
  1  the source could not be parsed
  2  the program could not be linked (undefined symbol, bad address, ...)`)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("edsacc", flag.ContinueOnError)
	fs.Usage = usage

	var io1, io2, debugShort, debugLong, help bool
	var ioFlag, input, output string

	fs.BoolVar(&io1, "1", false, "select Initial Orders 1")
	fs.BoolVar(&io2, "2", false, "select Initial Orders 2")
	fs.StringVar(&ioFlag, "io", "", "select Initial Orders by number")
	fs.StringVar(&input, "input", "", "source file to assemble")
	fs.StringVar(&output, "output", "", "tape file to write")
	fs.BoolVar(&debugShort, "d", false, "annotate the tape with debug tags")
	fs.BoolVar(&debugLong, "debug", false, "annotate the tape with debug tags")
	fs.BoolVar(&help, "h", false, "show this message")
	fs.BoolVar(&help, "help", false, "show this message")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if help {
		usage()
		return 0
	}

	ver := asm.IO2
	switch {
	case ioFlag != "":
		switch ioFlag {
		case "1":
			ver = asm.IO1
		case "2":
			ver = asm.IO2
		default:
			fmt.Fprintf(os.Stderr, "error: unsupported --io value %q\n", ioFlag)
			return 2
		}
	case io1:
		ver = asm.IO1
	case io2:
		ver = asm.IO2
	}

	debug := debugShort || debugLong

	var in *os.File
	if input == "" {
		in = os.Stdin
	} else {
		inPath, _, err := utils.GetPathInfo(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		in, err = os.Open(inPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		defer in.Close()
	}

	var out *os.File
	if output == "" {
		out = os.Stdout
	} else {
		outPath, _, err := utils.GetPathInfo(output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		out, err = os.Create(outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		defer out.Close()
	}

	result, err := asm.Assemble(in, out, ver, debug)
	if result != nil {
		asm.ReportWarnings(result.Warnings)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		switch err.(type) {
		case *asm.ParseError:
			return 1
		case *asm.LinkError:
			return 2
		default:
			return 2
		}
	}
	return 0
}
