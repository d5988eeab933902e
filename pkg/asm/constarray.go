package asm

import "fmt"

// parseConstOrArray parses the right-hand side of "= ..." once the cursor
// sits on the '='. owner is the name just bound by a "$name" label, or
// empty when a bare "= ..." follows a colon-delimited label instead; it is
// not used in the parsing or in the error messages.
func (p *Parser) parseConstOrArray(owner string) error {
	pos := p.pos_()
	p.pos++ // consume '='
	p.skipSpace()
	if p.pos >= len(p.src) {
		return parseErrorf(pos, "expected a value after '='")
	}
	if p.src[p.pos] == '[' {
		return p.parseArrayLiteral(pos)
	}
	return p.parseScalarConst(pos)
}

func (p *Parser) parseScalarConst(pos Position) error {
	val, err := p.readInt()
	if err != nil {
		return err
	}

	// The suffix letter is optional. It is either attached to the digits
	// ('s'/'S'/'l'/'L') or written as the next word on its own (lowercase
	// 's'/'l' only, as in "= 3 s"); any other character attached to the
	// digits is an error. Without a suffix, short-vs-long is decided by the
	// value's magnitude and nothing is consumed beyond the integer itself.
	var sfx rune
	if p.pos < len(p.src) && !isSpace(p.src[p.pos]) {
		sfx = p.src[p.pos]
		if sfx == 's' || sfx == 'S' || sfx == 'l' || sfx == 'L' {
			p.pos++
		} else {
			return parseErrorf(p.pos_(), "unexpected character %q after constant value", sfx)
		}
	} else {
		j := p.pos
		for j < len(p.src) && isSpace(p.src[j]) {
			j++
		}
		if j < len(p.src) && (p.src[j] == 's' || p.src[j] == 'l') && (j+1 == len(p.src) || isSpace(p.src[j+1])) {
			sfx = p.src[j]
			p.pos = j + 1
		}
	}

	var words []word
	switch sfx {
	case 'l', 'L':
		hi, lo := splitLong(int64(val))
		words = []word{hi, lo}
	case 's', 'S':
		words = []word{splitShort(val)}
	default:
		if isLong(int64(val), 0) {
			hi, lo := splitLong(int64(val))
			words = []word{hi, lo}
		} else {
			words = []word{splitShort(val)}
		}
	}
	p.preds = append(p.preds, &constBlockPredicate{words: words})
	return nil
}

// parseArrayLiteral parses "[n]{e0, e1, ...}" where each element is an
// optional '-', decimal digits and an optional trailing 's'/'l' hint.
// Missing trailing elements are zero-filled, encoded the same way as any
// other short word so the padding respects the active Initial Orders
// terminator convention instead of a hardcoded literal.
func (p *Parser) parseArrayLiteral(pos Position) error {
	p.pos++ // consume '['
	size, err := p.readInt()
	if err != nil {
		return err
	}
	if p.pos >= len(p.src) || p.src[p.pos] != ']' {
		return parseErrorf(p.pos_(), "expected ']' after array size")
	}
	p.pos++
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != '{' {
		return parseErrorf(p.pos_(), "expected '{' to open the array literal")
	}
	p.pos++

	var words []word
	for {
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == '}' {
			p.pos++
			break
		}
		if len(words) > 0 {
			if p.pos >= len(p.src) || p.src[p.pos] != ',' {
				return parseErrorf(p.pos_(), "expected ',' between array elements")
			}
			p.pos++
			p.skipSpace()
		}
		v, err := p.readInt()
		if err != nil {
			return err
		}
		long := false
		if p.pos < len(p.src) && (p.src[p.pos] == 'l' || p.src[p.pos] == 'L') {
			long = true
			p.pos++
		} else if p.pos < len(p.src) && (p.src[p.pos] == 's' || p.src[p.pos] == 'S') {
			p.pos++
		}
		if long {
			hi, lo := splitLong(int64(v))
			words = append(words, hi, lo)
		} else {
			words = append(words, splitShort(v))
		}
	}

	if len(words) > size {
		return parseErrorf(pos, "array literal has %d words but was declared with size %d", len(words), size)
	}
	for len(words) < size {
		words = append(words, splitShort(0))
	}

	p.preds = append(p.preds, &arrayPointerPredicate{})
	p.preds = append(p.preds, &constBlockPredicate{words: words})
	return nil
}

// parseConstCall parses "CONST(n, c)": one word whose top/body fields come
// directly from the 17-bit value n and whose terminator is the literal
// character c, bypassing the Initial-Orders-dependent short/long selection
// entirely.
func (p *Parser) parseConstCall() error {
	p.pos += len("CONST(")
	p.skipSpace()
	n, err := p.readInt()
	if err != nil {
		return err
	}
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != ',' {
		return parseErrorf(p.pos_(), "expected ',' in CONST(...)")
	}
	p.pos++
	p.skipSpace()
	if p.pos >= len(p.src) {
		return parseErrorf(p.pos_(), "expected a terminator character in CONST(...)")
	}
	term := byte(p.src[p.pos])
	p.pos++
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != ')' {
		return parseErrorf(p.pos_(), "expected ')' to close CONST(...)")
	}
	p.pos++

	p.preds = append(p.preds, &literalWordPredicate{value: n, term: term})
	return nil
}

// literalWordPredicate renders a word from a raw 17-bit value and an
// explicit terminator character, with no Initial-Orders-dependent decoding
// at all.
type literalWordPredicate struct {
	value int
	term  byte
	pc    int
}

func (p *literalWordPredicate) layout(pc int, sym *symtable) (int, error) {
	p.pc = pc
	return pc + 1, nil
}

func (p *literalWordPredicate) resolve(rs *resolveState) ([]Warning, error) { return nil, nil }

func (p *literalWordPredicate) emit(e *emitter) error {
	top := (p.value >> 12) & 0x1F
	body := p.value & 0xFFF
	text := renderWord(top, body, p.term)
	if !e.debug {
		return e.writeRaw(text)
	}
	return e.writeRaw(fmt.Sprintf("[$ %d]%s\n", p.pc, text))
}
