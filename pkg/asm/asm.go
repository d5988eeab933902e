package asm

import (
	"fmt"
	"io"
	"os"
)

// Result carries everything Assemble produced beyond the tape itself, for
// callers that want to report warnings or inspect the resolved symbol
// table.
type Result struct {
	Warnings []Warning
	Symbols  *symtable
}

// Assemble reads one EDSAC source file from r, translates it under the
// given Initial Orders convention and writes the resulting tape to w. Debug
// mode adds the bracketed per-word tags and a trailing symbol table dump
// (see emitProgram).
//
// A *ParseError is returned for malformed source; a *LinkError is returned
// when layout or resolution fails (duplicate label, undefined symbol or
// negative address). Callers map these to distinct exit codes; see
// cmd/edsacc.
func Assemble(r io.Reader, w io.Writer, ver IOVersion, debug bool) (*Result, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, wrap(err, "read source")
	}

	parser := NewParser(ver)
	prog, warnings, err := parser.Parse(string(src))
	if err != nil {
		return &Result{Warnings: warnings}, err
	}

	sym, err := layoutProgram(prog, parser.io)
	if err != nil {
		return &Result{Warnings: warnings}, err
	}

	resolveWarnings, err := resolveProgram(prog, sym, parser.io)
	warnings = append(warnings, resolveWarnings...)
	if err != nil {
		return &Result{Warnings: warnings, Symbols: sym}, err
	}

	if err := emitProgram(w, prog, sym, parser.io, debug); err != nil {
		return &Result{Warnings: warnings, Symbols: sym}, err
	}

	return &Result{Warnings: warnings, Symbols: sym}, nil
}

// ReportWarnings writes one "warning:line:col: message" line per warning to
// stderr, matching the "kind:line:col: message" format of parse errors.
func ReportWarnings(warnings []Warning) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, w.String())
	}
}
