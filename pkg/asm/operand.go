package asm

// operand is the address field of an Instruction or Directive: either a
// literal absolute address or a symbolic reference resolved against the
// symbol table during the resolve pass.
type operand struct {
	symbol  string
	literal int
	isSym   bool
}

func litOperand(v int) operand      { return operand{literal: v} }
func symOperand(name string) operand { return operand{symbol: name, isSym: true} }

// resolveState threads the information that is only available once layout
// has assigned every predicate an address: the symbol table, the active
// Initial Orders convention and the running origin bias that G..K/G..Z
// directives accumulate as resolution walks the program in order.
//
// The origin bias lives on this per-call struct rather than a package or
// parser-level variable, so two resolutions of the same program (or
// concurrent resolutions of different programs) never interfere.
type resolveState struct {
	sym    *symtable
	io     IOVersion
	origin int
}

// resolveOperand turns op into a concrete non-negative address, applying the
// Initial-Orders-specific bias rules from the resolve pass. ownPC is the
// address of the instruction the operand belongs to; the bias rules do not
// use it, since the IO2 '@' and 'Z' suffix forms subtract the running origin
// bias rather than the instruction's own address.
func (rs *resolveState) resolveOperand(op operand, ownPC int, suffix byte, pos Position) (int, *Warning, error) {
	if !op.isSym {
		return op.literal, nil, nil
	}
	base, ok := rs.sym.lookup(op.symbol)
	if !ok {
		return 0, nil, linkErrorf("no such variable %q", op.symbol)
	}

	var val int
	var warn *Warning
	if rs.io == IO1 {
		val = base
	} else {
		switch suffix {
		case 'F', 'K':
			val = base
		case '@', 'Z':
			val = base - rs.origin
		default:
			val = base
			warn = &Warning{Pos: pos, Msg: "symbolic operand with suffix '" + string(suffix) + "' is neither offset-relative nor raw; treating address as raw"}
		}
	}

	if val < 0 {
		return 0, warn, linkErrorf("resolved address for %q is negative (%d)", op.symbol, val)
	}
	return val, warn, nil
}
