package asm

import "strings"

// parseForOpen parses "for [$]var[=init], border do" and lowers it
// immediately into its loop-head scaffolding, pushing a forFrame that
// redo/break/continue/end reference for the rest of the block.
//
// $var's own storage cell, an "=init" literal and a literal loop border
// are all data words, not instructions, so they are emitted as one block
// guarded by a single jump-over pair: straight-line code must never fall
// into a data word. The landing label comes after every such word this
// statement introduces, never before.
//
// Lowered shape:
//
//	E <land> F ; G <land> F            only if any of the below are emitted
//	[ :var: ; = 0 s ]                  only if $var introduces the counter
//	[ <ival>: = init s ]               only if "=init" given
//	[ <border-lit>: = border s ]       only if the border is a literal
//	<land>:
//	[ A <ival> F ; T var F ]           only if "=init" given
//	T edsacc#tmp F
//	<redo>:
//	A var F
//	S border F
//	G <end> F
//	A edsacc#tmp F
//	... body ...
func (p *Parser) parseForOpen() error {
	pos := p.pos_()
	p.pos += len("for")
	p.skipSpace()

	dollar := false
	if p.pos < len(p.src) && p.src[p.pos] == '$' {
		dollar = true
		p.pos++
	}
	nameStart := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '=' && p.src[p.pos] != ',' && !isSpace(p.src[p.pos]) {
		p.pos++
	}
	varName := string(p.src[nameStart:p.pos])
	if varName == "" {
		return parseErrorf(pos, "expected a loop variable name after 'for'")
	}

	var initVal *int
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '=' {
		p.pos++
		v, err := p.readInt()
		if err != nil {
			return err
		}
		initVal = &v
		p.skipSpace()
	}

	if p.pos >= len(p.src) || p.src[p.pos] != ',' {
		return parseErrorf(p.pos_(), "expected ',' before the loop border")
	}
	p.pos++
	p.skipSpace()
	borderStart := p.pos
	for p.pos < len(p.src) && !isSpace(p.src[p.pos]) {
		p.pos++
	}
	borderSrc := string(p.src[borderStart:p.pos])
	p.skipSpace()
	if !p.matchesKeyword("do") {
		return parseErrorf(p.pos_(), "expected 'do' to open the for-block body")
	}
	p.pos += len("do")

	frame := forFrame{varName: varName, prefix: p.freshName("for")}
	p.forStack = append(p.forStack, frame)

	needsData := dollar || initVal != nil || isAllDigits(borderSrc)
	land := frame.prefix + "#land"
	if needsData {
		p.emitJumpOverPair(land)
	}

	if dollar {
		p.preds = append(p.preds, &labelPredicate{name: varName, pos: pos})
		p.preds = append(p.preds, &constBlockPredicate{words: []word{splitShort(0)}})
	}

	var ival string
	if initVal != nil {
		ival = p.materializeLiteral(*initVal)
	}

	borderOperand, err := p.borderOperand(borderSrc)
	if err != nil {
		return err
	}

	if needsData {
		p.preds = append(p.preds, &labelPredicate{name: land, pos: pos})
	}

	if initVal != nil {
		p.emitCmd('A', symOperand(ival), 'F')
		p.emitCmd('T', symOperand(varName), 'F')
	}

	p.emitCmd('T', symOperand("edsacc#tmp"), 'F')
	p.preds = append(p.preds, &labelPredicate{name: frame.prefix + "#redo", pos: pos})
	p.emitCmd('A', symOperand(varName), 'F')
	p.emitCmd('S', borderOperand, 'F')
	p.emitCmd('G', symOperand(frame.prefix+"#end"), 'F')
	p.emitCmd('A', symOperand("edsacc#tmp"), 'F')
	return nil
}

func (p *Parser) borderOperand(src string) (operand, error) {
	if isAllDigits(src) {
		v := 0
		neg := strings.HasPrefix(src, "-")
		digits := src
		if neg {
			digits = src[1:]
		}
		for _, r := range digits {
			v = v*10 + int(r-'0')
		}
		if neg {
			v = -v
		}
		return symOperand(p.materializeLiteral(v)), nil
	}
	if src == "" {
		return operand{}, parseErrorf(p.pos_(), "expected a loop border")
	}
	return symOperand(src), nil
}

// emitJumpOverPair emits the jump-over pair (E ... G ...) that skips the
// data words immediately following it, landing at target.
func (p *Parser) emitJumpOverPair(target string) {
	p.emitCmd('E', symOperand(target), 'F')
	p.emitCmd('G', symOperand(target), 'F')
}

func (p *Parser) currentForFrame() (*forFrame, error) {
	if len(p.forStack) == 0 {
		return nil, parseErrorf(p.pos_(), "not inside a for-block")
	}
	return &p.forStack[len(p.forStack)-1], nil
}

func (p *Parser) parseForControl(kw string) error {
	frame, err := p.currentForFrame()
	if err != nil {
		return err
	}
	p.pos += len(kw)
	switch kw {
	case "redo":
		p.emitCmd('E', symOperand(frame.prefix+"#redo"), 'F')
	case "break":
		p.emitCmd('E', symOperand(frame.prefix+"#end"), 'F')
	case "continue":
		p.emitJumpOverPair(frame.prefix + "#cont")
	}
	return nil
}

// parseForEnd closes the innermost for-block: it places the #cont label,
// increments the loop variable by STEP, jumps back to #redo and places the
// #end label.
func (p *Parser) parseForEnd() error {
	pos := p.pos_()
	frame, err := p.currentForFrame()
	if err != nil {
		return err
	}
	p.pos += len("end")

	p.preds = append(p.preds, &labelPredicate{name: frame.prefix + "#cont", pos: pos})
	p.emitCmd('A', symOperand(frame.varName), 'F')
	p.emitCmd('A', symOperand("STEP"), 'F')
	p.emitCmd('T', symOperand(frame.varName), 'F')
	p.emitCmd('E', symOperand(frame.prefix+"#redo"), 'F')
	p.preds = append(p.preds, &labelPredicate{name: frame.prefix + "#end", pos: pos})

	p.forStack = p.forStack[:len(p.forStack)-1]
	return nil
}
