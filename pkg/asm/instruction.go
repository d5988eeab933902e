package asm

import "strings"

// parseInstruction parses one "<opcode>[ <operand>][#]<suffix>" line. If the
// operand is an indexed array reference ("name[idx]") control is handed off
// to compileIndexedAccess, which emits a whole self-modifying sequence
// instead of a single predicate.
func (p *Parser) parseInstruction() error {
	pos := p.pos_()
	opcode := byte(p.src[p.pos])
	p.pos++

	op := litOperand(0)
	if p.pos < len(p.src) && (isSpace(p.src[p.pos]) || isDigit(p.src[p.pos]) || p.src[p.pos] == '-') {
		p.skipSpace()
		if p.pos < len(p.src) && (isDigit(p.src[p.pos]) || p.src[p.pos] == '-') {
			v, err := p.readInt()
			if err != nil {
				return err
			}
			op = litOperand(v)
		} else if p.pos < len(p.src) {
			wordEnd := p.findWordEnd(p.pos)
			bracket := indexRuneFromBounded(p.src, p.pos, wordEnd, '[')
			if bracket >= 0 {
				name := string(p.src[p.pos:bracket])
				p.pos = bracket + 1
				closeIdx := indexRuneFrom(p.src, p.pos, ']')
				if closeIdx < 0 {
					return parseErrorf(p.pos_(), "unterminated index, missing ']'")
				}
				inner := strings.TrimSpace(string(p.src[p.pos:closeIdx]))
				p.pos = closeIdx + 1
				return p.parseIndexedInstruction(opcode, name, inner)
			}
			name := string(p.src[p.pos:wordEnd])
			p.pos = wordEnd
			op = symOperand(name)
		}
		p.skipSpace()
	}

	long := false
	if p.io == IO2 && p.pos < len(p.src) && p.src[p.pos] == '#' {
		long = true
		p.pos++
	}
	if p.pos >= len(p.src) || isSpace(p.src[p.pos]) {
		return parseErrorf(p.pos_(), "expected a suffix letter after the opcode")
	}
	suffix := byte(p.src[p.pos])
	p.pos++

	cmd := commonCmd{opcode: opcode, operand: op, long: long, suffix: suffix, pos: pos}
	if p.io == IO2 && (suffix == 'K' || suffix == 'Z') {
		p.preds = append(p.preds, &directivePredicate{commonCmd: cmd})
	} else {
		p.preds = append(p.preds, &instructionPredicate{commonCmd: cmd})
	}
	return nil
}

// parseIndexedInstruction finishes parsing the suffix of an indexed
// instruction and then lowers the whole thing via compileIndexedAccess.
func (p *Parser) parseIndexedInstruction(opcode byte, base, indexSrc string) error {
	if strings.IndexByte(indexableOps, opcode) < 0 {
		return parseErrorf(p.pos_(), "opcode %q does not support indexed operands", string(opcode))
	}
	p.skipSpace()
	// The long flag is consumed but not threaded through: the generated
	// patch sequence always composes its final instruction word from
	// userSuffix alone, not from a second long/short choice.
	if p.io == IO2 && p.pos < len(p.src) && p.src[p.pos] == '#' {
		p.warnings = append(p.warnings, Warning{Pos: p.pos_(), Msg: "long operand in an indexed predicate"})
		p.pos++
	}
	if p.pos >= len(p.src) || isSpace(p.src[p.pos]) {
		return parseErrorf(p.pos_(), "expected a suffix letter after the indexed operand")
	}
	userSuffix := byte(p.src[p.pos])
	p.pos++

	return p.compileIndexedAccess(opcode, base, indexSrc, userSuffix)
}

func indexRuneFromBounded(src []rune, from, to int, target rune) int {
	for i := from; i < to; i++ {
		if src[i] == target {
			return i
		}
	}
	return -1
}
