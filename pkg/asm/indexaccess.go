package asm

// opTemplate maps an indexable opcode to the name of the operator-template
// cell ~use_special_vars materialises for it.
var opTemplate = map[byte]string{
	'A': "add",
	'S': "sub",
	'T': "store",
	'U': "save",
}

// compileIndexedAccess lowers "<opcode> <base>[<index>] <suffix>" into the
// self-modifying patch sequence needed because EDSAC has no indexed
// addressing mode of its own: the target address is computed into the
// accumulator, combined with an opcode template, and stored into a dummy
// instruction slot that execution then falls through into.
//
// The sequence (each line one word, except the index materialisation which
// may contribute its own label+constant pair placed after the block):
//
//	T edsacc#tmp F        save the accumulator
//	A base userSuffix      load the array's base address
//	A index F              add the index (dynamic load or a materialised literal)
//	L 0 <shift>             shift the sum into the address field
//	A edsacc#<op> F        add the opcode template
//	T patch F              store the composed instruction into the patch slot
//	A edsacc#tmp F        restore the accumulator
//	P 0 <dummy>             the patch slot itself, executed next
//
// A program with no ~use_special_vars anywhere in it fails with a link
// error, not a parse error: the cells' symbols simply won't resolve.
func (p *Parser) compileIndexedAccess(opcode byte, base, indexSrc string, userSuffix byte) error {
	tmpl, ok := opTemplate[opcode]
	if !ok {
		return parseErrorf(p.pos_(), "opcode %q has no indexed-access template", string(opcode))
	}

	indexOperand, literalIndex, err := p.resolveIndexOperand(indexSrc)
	if err != nil {
		return err
	}

	shiftSuffix := longTerm(p.io)

	patch := p.freshName("patch")

	p.emitCmd('T', symOperand("edsacc#tmp"), 'F')
	p.emitCmd('A', symOperand(base), userSuffix)
	p.emitCmd('A', indexOperand, 'F')
	p.emitCmd('L', litOperand(0), shiftSuffix)
	p.emitCmd('A', symOperand("edsacc#"+tmpl), 'F')
	p.emitCmd('T', symOperand(patch), 'F')
	p.emitCmd('A', symOperand("edsacc#tmp"), 'F')

	// The dummy slot is the zero short word, rendered "P0F" (IO2) or "P0S"
	// (IO1) by the same encoder as any other constant word.
	p.preds = append(p.preds, &labelPredicate{name: patch, pos: p.pos_()})
	p.preds = append(p.preds, &constBlockPredicate{words: []word{splitShort(0)}})

	// A static index is contributed as a Constant block placed immediately
	// after the rest of the patch sequence; forward references resolve
	// fine since layout and resolve both run after parsing completes.
	if literalIndex != nil {
		p.preds = append(p.preds, &labelPredicate{name: indexOperand.symbol, pos: p.pos_()})
		p.preds = append(p.preds, &constBlockPredicate{words: []word{splitShort(*literalIndex)}})
	}
	return nil
}

// resolveIndexOperand turns the text between "[" and "]" into an operand: a
// bare identifier is used directly as a symbol to load-and-add. A literal
// integer must first be materialised into a constant cell, since EDSAC's
// arithmetic opcodes always operate on a memory address's content, never on
// an immediate value; the returned literalIndex pointer tells the caller to
// append that cell once the rest of the patch sequence has been emitted.
func (p *Parser) resolveIndexOperand(src string) (op operand, literalIndex *int, err error) {
	if src == "" {
		return operand{}, nil, parseErrorf(p.pos_(), "empty array index")
	}
	if isAllDigits(src) {
		v := 0
		neg := src[0] == '-'
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
		name := p.freshName("idx")
		return symOperand(name), &v, nil
	}
	return symOperand(src), nil, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	start := 0
	if s[0] == '-' {
		start = 1
	}
	if start >= len(s) {
		return false
	}
	for _, r := range s[start:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (p *Parser) emitCmd(opcode byte, op operand, suffix byte) {
	p.preds = append(p.preds, &instructionPredicate{commonCmd: commonCmd{
		opcode: opcode, operand: op, suffix: suffix,
	}})
}
