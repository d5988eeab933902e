package asm

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError is returned for any malformed source construct. It carries the
// position of the offending token so the caller can render "kind:line:col:
// message" diagnostics.
type ParseError struct {
	Pos Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error:%s: %s", e.Pos, e.Msg)
}

func parseErrorf(pos Position, format string, args ...interface{}) error {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// LinkError is returned by the layout pass for a duplicate label and by the
// resolution pass for an undefined symbol or a negative resolved address.
// Link errors carry no position since resolution runs after the whole
// program has already been laid out.
type LinkError struct {
	Msg string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link:%s", e.Msg)
}

func linkErrorf(format string, args ...interface{}) error {
	return &LinkError{Msg: fmt.Sprintf(format, args...)}
}

// Warning is a non-fatal diagnostic collected during parsing or resolution.
type Warning struct {
	Pos Position
	Msg string
}

func (w Warning) String() string {
	return fmt.Sprintf("warning:%s: %s", w.Pos, w.Msg)
}

// wrap annotates err with a static message using the same error-wrapping
// convention as the rest of the toolchain, without discarding the original
// error for inspection by errors.Cause.
func wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}
