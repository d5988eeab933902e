package asm

import "fmt"

// predicate is one unit of the parsed program: a label, an instruction, a
// directive, a run of constant words, an array pointer, or raw passthrough
// text. Each variant knows how to claim its own address space (layout),
// resolve its symbolic references (resolve) and write its final text
// (emit).
type predicate interface {
	// layout is called once per predicate, in program order, with the
	// address the predicate starts at. It returns the address immediately
	// following the words the predicate will occupy.
	layout(pc int, sym *symtable) (int, error)
	// resolve is called once per predicate, in program order, after
	// layout has finished. It may update rs.origin.
	resolve(rs *resolveState) ([]Warning, error)
	emit(e *emitter) error
}

type program []predicate

// labelPredicate binds a name to the address of the predicate immediately
// following it. It occupies no words of its own.
type labelPredicate struct {
	name string
	pos  Position
	addr int
	bias int
}

func (p *labelPredicate) layout(pc int, sym *symtable) (int, error) {
	p.addr = pc + p.bias
	if err := sym.define(p.name, p.addr); err != nil {
		if le, ok := err.(*LinkError); ok {
			return pc, le
		}
		return pc, &ParseError{Pos: p.pos, Msg: err.Error()}
	}
	return pc, nil
}

func (p *labelPredicate) resolve(rs *resolveState) ([]Warning, error) { return nil, nil }

func (p *labelPredicate) emit(e *emitter) error {
	if !e.debug {
		return nil
	}
	return e.writeRaw(fmt.Sprintf("[%s:]\n", p.name))
}

// commonCmd is the shared shape of an Instruction and a Directive: one
// opcode letter, one operand, an optional long flag and one terminator
// suffix. The two predicate kinds differ only in whether they occupy a word
// of program space and whether a K/Z suffix triggers an origin-offset
// update.
type commonCmd struct {
	opcode   byte
	operand  operand
	long     bool
	suffix   byte
	pc       int
	pos      Position
	resolved int
}

func (c *commonCmd) resolveAddr(rs *resolveState) (*Warning, error) {
	val, warn, err := rs.resolveOperand(c.operand, c.pc, c.suffix, c.pos)
	if err != nil {
		if le, ok := err.(*LinkError); ok {
			le.Msg = fmt.Sprintf("%s (opcode %q, suffix %q)", le.Msg, c.opcode, c.suffix)
		}
		return warn, err
	}
	c.resolved = val
	return warn, nil
}

func (c *commonCmd) render() string {
	var addr string
	if c.resolved != 0 {
		addr = fmt.Sprintf("%d", c.resolved)
	}
	long := ""
	if c.long {
		long = "#"
	}
	return fmt.Sprintf("%c%s%s%c", c.opcode, addr, long, c.suffix)
}

// instructionPredicate is a real machine word: it occupies one word and
// never influences the origin bias.
type instructionPredicate struct {
	commonCmd
}

func (p *instructionPredicate) layout(pc int, sym *symtable) (int, error) {
	p.pc = pc
	return pc + 1, nil
}

func (p *instructionPredicate) resolve(rs *resolveState) ([]Warning, error) {
	warn, err := p.resolveAddr(rs)
	return warnSlice(warn), err
}

func (p *instructionPredicate) emit(e *emitter) error {
	return e.writeTagged(fmt.Sprintf("[i %d]", p.pc), p.render())
}

// directivePredicate occupies no program words. Under Initial Orders 2, a
// G directive with suffix K or Z also updates the resolve pass's running
// origin bias (other opcodes leave it unchanged); Z
// deliberately adds the instruction's own address to that bias twice,
// reproducing the historical assembler's behaviour exactly.
type directivePredicate struct {
	commonCmd
}

func (p *directivePredicate) layout(pc int, sym *symtable) (int, error) {
	p.pc = pc
	return pc, nil
}

func (p *directivePredicate) resolve(rs *resolveState) ([]Warning, error) {
	warn, err := p.resolveAddr(rs)
	if err != nil {
		return warnSlice(warn), err
	}
	if rs.io == IO2 && p.opcode == 'G' && (p.suffix == 'K' || p.suffix == 'Z') {
		rs.origin = p.resolved + p.pc
		if p.suffix == 'Z' {
			rs.origin += p.pc
		}
	}
	return warnSlice(warn), nil
}

func (p *directivePredicate) emit(e *emitter) error {
	return e.writeTagged("[d ~]", p.render())
}

// constBlockPredicate is a run of pre-encoded constant words: either an
// explicit "= value suffix" scalar or the body of an array literal.
type constBlockPredicate struct {
	words []word
	pc    int
}

func (p *constBlockPredicate) layout(pc int, sym *symtable) (int, error) {
	p.pc = pc
	return pc + len(p.words), nil
}

func (p *constBlockPredicate) resolve(rs *resolveState) ([]Warning, error) { return nil, nil }

func (p *constBlockPredicate) emit(e *emitter) error {
	if !e.debug {
		for _, w := range p.words {
			if err := e.writeRaw(w.render(e.io)); err != nil {
				return err
			}
		}
		return nil
	}
	if err := e.writeRaw(fmt.Sprintf("[$ %d]", p.pc)); err != nil {
		return err
	}
	for i, w := range p.words {
		if err := e.writeRaw(fmt.Sprintf("[%d]%s", i, w.render(e.io))); err != nil {
			return err
		}
	}
	return e.writeRaw("\n")
}

// arrayPointerPredicate is inserted immediately before an array's data
// words so that the array's label resolves to the pointer itself; the
// pointer's value is the address of the first data word. It occupies one
// word.
type arrayPointerPredicate struct {
	pc       int
	resolved int
}

func (p *arrayPointerPredicate) layout(pc int, sym *symtable) (int, error) {
	p.pc = pc
	return pc + 1, nil
}

func (p *arrayPointerPredicate) resolve(rs *resolveState) ([]Warning, error) {
	p.resolved = p.pc + 1
	return nil, nil
}

func (p *arrayPointerPredicate) emit(e *emitter) error {
	w := splitShort(p.resolved)
	if !e.debug {
		return e.writeRaw(w.render(e.io))
	}
	return e.writeRaw(fmt.Sprintf("[^ %d]%s\n", p.resolved, w.render(e.io)))
}

// rawTextPredicate passes source text through unchanged: any token the
// dispatcher could not classify (emitted verbatim after a warning).
type rawTextPredicate struct {
	text string
}

func (p *rawTextPredicate) layout(pc int, sym *symtable) (int, error) { return pc, nil }
func (p *rawTextPredicate) resolve(rs *resolveState) ([]Warning, error) { return nil, nil }
func (p *rawTextPredicate) emit(e *emitter) error {
	if p.text == "" {
		return nil
	}
	return e.writeRaw(p.text)
}

func warnSlice(w *Warning) []Warning {
	if w == nil {
		return nil
	}
	return []Warning{*w}
}
