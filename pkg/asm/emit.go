package asm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// emitter writes the final tape. In debug mode every predicate's textual
// form is preceded by a bracketed tag identifying its kind and address, and
// the symbol table is dumped as a footer; in non-debug mode words are
// concatenated with no separators at all, matching the teleprinter tape
// format EDSAC itself reads.
type emitter struct {
	w     *bufio.Writer
	io    IOVersion
	debug bool
}

func newEmitter(w io.Writer, ver IOVersion, debug bool) *emitter {
	return &emitter{w: bufio.NewWriter(w), io: ver, debug: debug}
}

func (e *emitter) writeRaw(s string) error {
	_, err := e.w.WriteString(s)
	return errors.Wrap(err, "write tape")
}

func (e *emitter) writeTagged(tag, body string) error {
	if e.debug {
		if err := e.writeRaw("    " + tag); err != nil {
			return err
		}
	}
	if err := e.writeRaw(body); err != nil {
		return err
	}
	if e.debug {
		return e.writeRaw("\n")
	}
	return nil
}

// emitProgram renders every predicate in order. In debug mode it also writes
// a header naming the active Initial Orders version and a footer dumping the
// symbol table.
func emitProgram(w io.Writer, prog program, sym *symtable, ver IOVersion, debug bool) error {
	e := newEmitter(w, ver, debug)
	if debug {
		if err := e.writeRaw(fmt.Sprintf("[Initial Orders %d]\n", ver)); err != nil {
			return err
		}
	}
	for _, p := range prog {
		if err := p.emit(e); err != nil {
			return err
		}
	}
	if debug {
		if err := e.writeRaw("[-------------]\n"); err != nil {
			return err
		}
		if err := e.writeRaw("[VARS SECTION]\n"); err != nil {
			return err
		}
		if err := e.writeRaw(sym.String()); err != nil {
			return err
		}
	}
	return e.w.Flush()
}
