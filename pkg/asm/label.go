package asm

// parseLabelColon parses both label syntaxes that use a colon delimiter:
// ":name:" (leading == true, cursor sits on the opening ':') and "name:"
// (leading == false, cursor sits on the first character of the name; the
// dispatcher already confirmed the word ends in ':').
func (p *Parser) parseLabelColon(leading bool) error {
	pos := p.pos_()
	if leading {
		p.pos++
		if p.pos < len(p.src) && isSpace(p.src[p.pos]) {
			return parseErrorf(pos, "unexpected space after ':'")
		}
	}
	nameStart := p.pos
	rel := indexRuneFrom(p.src, p.pos, ':')
	if rel < 0 {
		return parseErrorf(pos, "unterminated label, missing closing ':'")
	}
	name := string(p.src[nameStart:rel])
	if name == "" {
		return parseErrorf(pos, "empty label name")
	}
	p.pos = rel + 1
	p.preds = append(p.preds, &labelPredicate{name: name, pos: pos})
	return nil
}

// parseDollarLabel parses "$name" and leaves the cursor positioned right
// after the name, ready for parseConstOrArray to pick up the "= ..." that
// follows.
func (p *Parser) parseDollarLabel() error {
	pos := p.pos_()
	p.pos++
	if p.pos >= len(p.src) || isSpace(p.src[p.pos]) {
		return parseErrorf(pos, "expected a name after '$'")
	}
	nameStart := p.pos
	end := p.findWordEnd(p.pos)
	if eq := indexRuneFrom(p.src, p.pos, '='); eq >= 0 && eq < end {
		end = eq
	}
	name := string(p.src[nameStart:end])
	if name == "" {
		return parseErrorf(pos, "empty label name")
	}
	p.pos = end
	p.preds = append(p.preds, &labelPredicate{name: name, pos: pos})

	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != '=' {
		return parseErrorf(p.pos_(), "expected '=' after '$%s'", name)
	}
	beforeLen := len(p.preds)
	if err := p.parseConstOrArray(name); err != nil {
		return err
	}
	p.applyLabelBias(beforeLen)
	return nil
}

// applyLabelBias implements the two-word-constant adjustment bias: when a
// Label is immediately followed by a two-word scalar Constant block (no
// Array pointer in between), the label is bound one word later so that
// references to it address the low word instead of the high word.
// beforeLen is len(p.preds) immediately before the constant/array was
// parsed.
func (p *Parser) applyLabelBias(beforeLen int) {
	if beforeLen == 0 || len(p.preds) != beforeLen+1 {
		return
	}
	cb, ok := p.preds[len(p.preds)-1].(*constBlockPredicate)
	if !ok || len(cb.words) != 2 {
		return
	}
	if lbl, ok := p.preds[beforeLen-1].(*labelPredicate); ok {
		lbl.bias = 1
	}
}

func indexRuneFrom(src []rune, from int, target rune) int {
	for i := from; i < len(src); i++ {
		if src[i] == target {
			return i
		}
	}
	return -1
}
