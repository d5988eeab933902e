// Package asm translates a single EDSAC source file into the raw instruction
// tape consumed by EDSAC simulators.
//
// The dialect extends the historical EDSAC order code with symbolic labels,
// integer and array constants, array indexing, for/redo/break/continue
// control blocks and a small preprocessor. See Assemble for the entry point.
//
// Pipeline:
//
//	source text -> Parser (lexer + sub-parsers) -> []predicate -> layout -> resolve -> emit
//
// The parser dispatches on the current character and a handful of keyword
// prefixes, delegating to one sub-parser per syntactic construct. Each
// sub-parser appends zero or more predicates to the program and advances the
// parser's cursor; there is no separate token stream or AST. for-blocks are
// lowered into their jump/increment scaffolding directly at parse time.
//
// A predicate is a self-describing emission unit: it knows how to contribute
// to address layout, resolve its own symbolic references, and write its
// textual form. Layout and resolve are both single in-order passes over the
// predicate list; emission is a third.
//
// Supported mnemonics (one letter, taken from "ASHVNTUCRLEGIOFXYZP"):
//
//	<opcode>[ <operand>][#]<suffix>
//
// The operand may be omitted (defaults to address 0), a decimal integer
// literal, a bare label, or an indexed label reference ("name[idx]"), which
// is compiled into a self-modifying patch sequence. Under Initial Orders 2,
// a suffix of K or Z turns the instruction into a zero-width directive that
// biases later address resolution (see the package-level resolve pass).
//
// Comments: "// ... EOL", "/* ... */" and EDSAC-style "[ ... ]".
//
// Labels:
//
//	:foo:		colon-delimited label
//	$x = 3 s	label immediately followed by a constant definition
//
// Constants and arrays:
//
//	= 3 s			one short word
//	= 100000 l		one long (two word) constant
//	= [4]{1s, 2, 3l}	a 4-word array (3l fills two words); missing words are zero-filled
//	CONST(5, P)		one word built directly from a 17-bit value and a literal suffix
//
// Preprocessor directives (each consumes the rest of its line):
//
//	~io 1			select Initial Orders 1 (must precede any code)
//	~use_special_vars	materialise the scratch cell and opcode templates
//				needed by indexed array access and for-blocks
//	~define NAME VALUE	record a textual alias (never substituted downstream)
//
// for-blocks:
//
//	for $i, 10 do
//		...
//		continue
//		...
//	end
package asm
