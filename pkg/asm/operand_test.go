package asm

import "testing"

func TestResolveOperandLiteralIgnoresSymbolTable(t *testing.T) {
	rs := &resolveState{sym: newSymtable(), io: IO2}
	v, warn, err := rs.resolveOperand(litOperand(7), 0, 'F', Position{})
	if err != nil || warn != nil || v != 7 {
		t.Errorf("resolveOperand(literal 7) = %d, %v, %v; want 7, nil, nil", v, warn, err)
	}
}

func TestResolveOperandIO2RawSuffixes(t *testing.T) {
	sym := newSymtable()
	sym.define("x", 50)
	rs := &resolveState{sym: sym, io: IO2}
	for _, suffix := range []byte{'F', 'K'} {
		v, warn, err := rs.resolveOperand(symOperand("x"), 0, suffix, Position{})
		if err != nil || warn != nil || v != 50 {
			t.Errorf("suffix %q: resolveOperand = %d, %v, %v; want 50, nil, nil", string(suffix), v, warn, err)
		}
	}
}

func TestResolveOperandIO2OffsetSuffixes(t *testing.T) {
	sym := newSymtable()
	sym.define("x", 50)
	rs := &resolveState{sym: sym, io: IO2, origin: 10}
	for _, suffix := range []byte{'@', 'Z'} {
		v, warn, err := rs.resolveOperand(symOperand("x"), 0, suffix, Position{})
		if err != nil || warn != nil || v != 40 {
			t.Errorf("suffix %q: resolveOperand = %d, %v, %v; want 40, nil, nil", string(suffix), v, warn, err)
		}
	}
}

func TestResolveOperandIO2UnknownSuffixWarnsAndTreatsRaw(t *testing.T) {
	sym := newSymtable()
	sym.define("x", 50)
	rs := &resolveState{sym: sym, io: IO2}
	v, warn, err := rs.resolveOperand(symOperand("x"), 0, 'H', Position{Line: 3, Col: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warn == nil {
		t.Fatal("expected a warning for an unrecognised symbolic suffix")
	}
	if warn.Pos != (Position{Line: 3, Col: 7}) {
		t.Errorf("warn.Pos = %v; want the position passed to resolveOperand", warn.Pos)
	}
	if v != 50 {
		t.Errorf("resolveOperand = %d; want 50 (raw)", v)
	}
}

func TestResolveOperandIO1IgnoresOrigin(t *testing.T) {
	sym := newSymtable()
	sym.define("x", 50)
	rs := &resolveState{sym: sym, io: IO1, origin: 10}
	v, _, err := rs.resolveOperand(symOperand("x"), 0, '@', Position{})
	if err != nil || v != 50 {
		t.Errorf("resolveOperand under IO1 = %d, %v; want 50, nil (IO1 has no origin bias)", v, err)
	}
}

func TestResolveOperandUndefinedSymbolFails(t *testing.T) {
	rs := &resolveState{sym: newSymtable(), io: IO2}
	if _, _, err := rs.resolveOperand(symOperand("missing"), 0, 'F', Position{}); err == nil {
		t.Fatal("expected a link error for an undefined symbol")
	} else if _, ok := err.(*LinkError); !ok {
		t.Errorf("got %T; want *LinkError", err)
	}
}

func TestResolveOperandNegativeResultFails(t *testing.T) {
	sym := newSymtable()
	sym.define("x", 5)
	rs := &resolveState{sym: sym, io: IO2, origin: 10}
	if _, _, err := rs.resolveOperand(symOperand("x"), 0, '@', Position{}); err == nil {
		t.Fatal("expected a link error for a negative resolved address")
	}
}
