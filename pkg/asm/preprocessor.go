package asm

import "strings"

// parsePreprocessor consumes one "~directive ..." line in full. Each
// directive is line-oriented: it never spans multiple lines and nothing
// after it on the same line is reparsed as code.
func (p *Parser) parsePreprocessor() error {
	pos := p.pos_()
	p.pos++ // consume '~'
	lineEnd := p.findLineEnd(p.pos)
	line := strings.TrimSpace(string(p.src[p.pos:lineEnd]))
	p.pos = lineEnd

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return parseErrorf(pos, "empty preprocessor directive")
	}

	switch fields[0] {
	case "io":
		return p.directiveIO(pos, fields)
	case "use_special_vars":
		return p.directiveUseSpecialVars()
	case "define":
		return p.directiveDefine(pos, fields)
	default:
		return parseErrorf(pos, "unknown preprocessor directive '~%s'", fields[0])
	}
}

func (p *Parser) directiveIO(pos Position, fields []string) error {
	if len(p.preds) > 0 {
		return parseErrorf(pos, "~io must appear before any code")
	}
	if len(fields) != 2 {
		return parseErrorf(pos, "~io expects exactly one argument")
	}
	switch fields[1] {
	case "1":
		p.io = IO1
	case "2":
		p.io = IO2
	default:
		return parseErrorf(pos, "unsupported Initial Orders version %q", fields[1])
	}
	return nil
}

// directiveUseSpecialVars is idempotent: the second and later occurrences
// are accepted but have no further effect.
func (p *Parser) directiveUseSpecialVars() error {
	if p.usedSpecialVars {
		return nil
	}
	p.usedSpecialVars = true

	cells := []struct {
		name  string
		value int
	}{
		{"edsacc#tmp", 0},
		{"edsacc#add", opcodeIndex('A') << 13},
		{"edsacc#sub", opcodeIndex('S') << 13},
		{"edsacc#store", opcodeIndex('T') << 13},
		{"edsacc#save", opcodeIndex('U') << 13},
		{"STEP", 1},
	}
	for _, c := range cells {
		p.preds = append(p.preds, &labelPredicate{name: c.name})
		p.preds = append(p.preds, &constBlockPredicate{words: []word{splitShort(c.value)}})
	}
	return nil
}

// directiveDefine records a textual alias. Aliases are resolved against
// previously recorded aliases at definition time (so a chain of defines
// resolves transitively), but the result is never substituted into any
// later label, instruction or constant — only into the value of a later
// ~define.
func (p *Parser) directiveDefine(pos Position, fields []string) error {
	if len(fields) < 3 {
		return parseErrorf(pos, "~define expects a name and a value")
	}
	name := fields[1]
	valueWords := fields[2:]
	resolved := make([]string, len(valueWords))
	for i, w := range valueWords {
		if v, ok := p.defines[w]; ok {
			resolved[i] = v
		} else {
			resolved[i] = w
		}
	}
	p.defines[name] = strings.Join(resolved, " ")
	return nil
}
