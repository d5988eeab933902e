package asm

import (
	"strings"
	"testing"
)

func parseOK(t *testing.T, src string) program {
	t.Helper()
	p := NewParser(IO2)
	prog, _, err := p.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return prog
}

func TestCommentsAreSkipped(t *testing.T) {
	tests := []string{
		"T 0 F // trailing comment",
		"T 0 F /* block comment */",
		"T 0 F [edsac style comment]",
		"// leading comment\nT 0 F",
	}
	for _, src := range tests {
		prog := parseOK(t, src)
		if len(prog) != 1 {
			t.Errorf("Parse(%q) produced %d predicates; want 1", src, len(prog))
		}
	}
}

func TestUnterminatedBlockCommentFails(t *testing.T) {
	p := NewParser(IO2)
	if _, _, err := p.Parse("T 0 F /* never closes"); err == nil {
		t.Fatal("expected a parse error for an unterminated block comment")
	}
}

func TestUnterminatedBracketCommentFails(t *testing.T) {
	p := NewParser(IO2)
	if _, _, err := p.Parse("T 0 F [never closes"); err == nil {
		t.Fatal("expected a parse error for an unterminated bracket comment")
	}
}

func TestScalarConstSuffixIsOptional(t *testing.T) {
	p := NewParser(IO2)
	prog, _, err := p.Parse(":x: = 3")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	cb, ok := prog[1].(*constBlockPredicate)
	if !ok {
		t.Fatalf("prog[1] = %T; want *constBlockPredicate", prog[1])
	}
	if len(cb.words) != 1 {
		t.Errorf("len(words) = %d; want 1 (small magnitude defaults to short)", len(cb.words))
	}
}

func TestScalarConstAutoDetectsLongByMagnitude(t *testing.T) {
	p := NewParser(IO2)
	prog, _, err := p.Parse(":x: = 1000000")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	cb := prog[1].(*constBlockPredicate)
	if len(cb.words) != 2 {
		t.Errorf("len(words) = %d; want 2 (large magnitude defaults to long)", len(cb.words))
	}
}

func TestScalarConstRejectsUnknownSuffixCharacter(t *testing.T) {
	p := NewParser(IO2)
	if _, _, err := p.Parse(":x: = 3q"); err == nil {
		t.Fatal("expected a parse error for an unrecognised suffix character")
	}
}

func TestArrayLiteralOverflowFails(t *testing.T) {
	p := NewParser(IO2)
	if _, _, err := p.Parse(":arr: = [1]{1s, 2s}"); err == nil {
		t.Fatal("expected a parse error when the literal list exceeds the declared size")
	}
}

func TestConstCallBuildsLiteralWord(t *testing.T) {
	prog := parseOK(t, "CONST(5, P)")
	if len(prog) != 1 {
		t.Fatalf("got %d predicates; want 1", len(prog))
	}
	if _, ok := prog[0].(*literalWordPredicate); !ok {
		t.Fatalf("prog[0] = %T; want *literalWordPredicate", prog[0])
	}
}

func TestUnknownPreprocessorDirectiveFails(t *testing.T) {
	p := NewParser(IO2)
	if _, _, err := p.Parse("~bogus"); err == nil {
		t.Fatal("expected a parse error for an unknown preprocessor directive")
	}
}

func TestUnterminatedForBlockFails(t *testing.T) {
	p := NewParser(IO2)
	if _, _, err := p.Parse("for $i, 3 do\nbreak"); err == nil {
		t.Fatal("expected a parse error for a for-block missing 'end'")
	}
}

func TestControlKeywordOutsideForBlockFails(t *testing.T) {
	for _, kw := range []string{"redo", "break", "continue"} {
		p := NewParser(IO2)
		if _, _, err := p.Parse(kw); err == nil {
			t.Errorf("%q outside a for-block should fail to parse", kw)
		}
	}
}

func TestLabelSyntaxVariants(t *testing.T) {
	prog := parseOK(t, ":first: second: T 0 F")
	labels := 0
	for _, pr := range prog {
		if lp, ok := pr.(*labelPredicate); ok {
			labels++
			if lp.name != "first" && lp.name != "second" {
				t.Errorf("unexpected label name %q", lp.name)
			}
		}
	}
	if labels != 2 {
		t.Errorf("got %d labels; want 2", labels)
	}
}

func TestEmptyLabelNameFails(t *testing.T) {
	p := NewParser(IO2)
	if _, _, err := p.Parse("::T 0 F"); err == nil {
		t.Fatal("expected a parse error for an empty label name")
	}
}

func TestDefineResolvesTransitively(t *testing.T) {
	p := NewParser(IO2)
	if _, _, err := p.Parse("~define A 1\n~define B A"); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got, want := p.defines["B"], "1"; got != want {
		t.Errorf("defines[B] = %q; want %q (resolved transitively at define time)", got, want)
	}
}

func TestIndexRuneFromHelper(t *testing.T) {
	src := []rune("abc:def")
	if got := indexRuneFrom(src, 0, ':'); got != 3 {
		t.Errorf("indexRuneFrom = %d; want 3", got)
	}
	if got := indexRuneFrom(src, 0, '?'); got != -1 {
		t.Errorf("indexRuneFrom = %d; want -1", got)
	}
}

func TestRawTextFallbackEmitsUnrecognisedToken(t *testing.T) {
	p := NewParser(IO2)
	prog, warnings, err := p.Parse("???")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings; want 1", len(warnings))
	}
	rt, ok := prog[0].(*rawTextPredicate)
	if !ok || !strings.Contains(rt.text, "?") {
		t.Errorf("prog[0] = %#v; want a rawTextPredicate containing the token", prog[0])
	}
}
