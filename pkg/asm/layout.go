package asm

// layoutProgram assigns every predicate its address, installs the
// predefined symbols and returns the final symbol table, in which
// LAST_INSTRUCTION holds the address immediately past the last predicate.
func layoutProgram(prog program, ver IOVersion) (*symtable, error) {
	sym := newSymtable()
	pc := ver.baseAddress()
	for _, p := range prog {
		next, err := p.layout(pc, sym)
		if err != nil {
			return nil, err
		}
		pc = next
	}
	sym.setBuiltin("LAST_INSTRUCTION", pc)
	if ver == IO2 {
		sym.setBuiltin("ONE", 2)
		sym.setBuiltin("RETURN", 3)
		sym.setBuiltin("ZERO", 41)
	}
	return sym, nil
}

// resolveProgram walks prog in order, resolving every predicate's symbolic
// operands against sym. The origin bias used by IO2's '@'/'Z' suffix forms
// lives on the resolveState for the duration of this single walk.
func resolveProgram(prog program, sym *symtable, ver IOVersion) ([]Warning, error) {
	rs := &resolveState{sym: sym, io: ver}
	var warnings []Warning
	for _, p := range prog {
		w, err := p.resolve(rs)
		warnings = append(warnings, w...)
		if err != nil {
			return warnings, err
		}
	}
	return warnings, nil
}
