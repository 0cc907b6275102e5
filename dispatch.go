package mars

// execute carries out the effect of one decoded instruction. ir is the
// instruction fetched at ip; sr and dr are value copies of the cells the A
// and B operands resolved to, captured before any of this step's side
// effects other than pre/post-increment. srcAddr and destAddr are their
// normalized absolute addresses.
func (m *MARS) execute(cw *CoreWarrior, ir Instruction, sr, dr Instruction, ip, srcAddr, destAddr int) {
	core := m.core
	switch ir.OpCode {
	case DAT:
		cw.KillCurrentProcess()

	case NOP:
		// no effect

	case MOV:
		execMove(core, destAddr, sr, ir.Modifier)

	case ADD:
		execArith(cw, core, destAddr, dr, sr, ir.Modifier, func(a, b int) (int, bool) { return a + b, true })

	case SUB:
		execArith(cw, core, destAddr, dr, sr, ir.Modifier, func(a, b int) (int, bool) { return a - b, true })

	case MUL:
		execArith(cw, core, destAddr, dr, sr, ir.Modifier, func(a, b int) (int, bool) { return a * b, true })

	case DIV:
		execArith(cw, core, destAddr, dr, sr, ir.Modifier, func(a, b int) (int, bool) {
			if b == 0 {
				return 0, false
			}
			return a / b, true
		})

	case MOD:
		execArith(cw, core, destAddr, dr, sr, ir.Modifier, func(a, b int) (int, bool) {
			if b == 0 {
				return 0, false
			}
			return a % b, true
		})

	case JMP:
		cw.SetCurrentPointer(srcAddr)

	case JMZ:
		if shouldJump(ir.Modifier, dr) {
			cw.SetCurrentPointer(srcAddr)
		}

	case JMN:
		if !shouldJump(ir.Modifier, dr) {
			cw.SetCurrentPointer(srcAddr)
		}

	case DJN:
		djnDecrement(core, destAddr, ir.Modifier)
		dr = core.Get(destAddr)
		if !shouldJump(ir.Modifier, dr) {
			cw.SetCurrentPointer(srcAddr)
		}

	case CMP, SEQ:
		if seqMatches(ir.Modifier, sr, dr) {
			cw.SetCurrentPointer(cw.CurrentPointer() + 1)
		}

	case SNE:
		if sneMatches(ir.Modifier, sr, dr) {
			cw.SetCurrentPointer(cw.CurrentPointer() + 1)
		}

	case SLT:
		if sltMatches(ir.Modifier, sr, dr) {
			cw.SetCurrentPointer(cw.CurrentPointer() + 1)
		}

	case SPL:
		cw.AddProcess(srcAddr)
	}
}

// fieldPairs reports, for a given modifier, which destination field is
// fed by which source field. It is shared by MOV's assignment semantics
// and the arithmetic opcodes' combine-with-destination semantics, since
// both select fields the same way.
type fieldPair struct{ destA, srcA bool }

func fieldPairs(mod Modifier) []fieldPair {
	switch mod {
	case ModA:
		return []fieldPair{{true, true}}
	case ModB:
		return []fieldPair{{false, false}}
	case ModAB:
		return []fieldPair{{false, true}}
	case ModBA:
		return []fieldPair{{true, false}}
	case ModF, ModI:
		return []fieldPair{{true, true}, {false, false}}
	case ModX:
		return []fieldPair{{true, false}, {false, true}}
	}
	return nil
}

func execMove(core *Core, destAddr int, sr Instruction, mod Modifier) {
	if mod == ModI {
		core.Set(destAddr, sr)
		return
	}
	for _, p := range fieldPairs(mod) {
		srcVal := sr.BValue
		if p.srcA {
			srcVal = sr.AValue
		}
		if p.destA {
			core.SetAValue(destAddr, srcVal)
		} else {
			core.SetBValue(destAddr, srcVal)
		}
	}
}

// execArith applies op to each destination/source field pair the modifier
// selects, combining with the destination's own current value, committing
// each field as soon as it is computed. If op reports failure on a pair
// (division by zero), that field is left unwritten, the process is killed,
// and any remaining pairs are skipped — fields already committed by an
// earlier pair in the same instruction (ModF/ModX's first field) stand.
func execArith(cw *CoreWarrior, core *Core, destAddr int, dr, sr Instruction, mod Modifier, op func(dest, src int) (int, bool)) {
	for _, p := range fieldPairs(mod) {
		destVal, srcVal := dr.BValue, sr.BValue
		if p.destA {
			destVal = dr.AValue
		}
		if p.srcA {
			srcVal = sr.AValue
		}
		v, ok := op(destVal, srcVal)
		if !ok {
			cw.KillCurrentProcess()
			return
		}
		if p.destA {
			core.SetAValue(destAddr, v)
		} else {
			core.SetBValue(destAddr, v)
		}
	}
}

// shouldJump reports whether the field(s) of dr selected by mod are all
// zero.
func shouldJump(mod Modifier, dr Instruction) bool {
	switch mod {
	case ModA, ModBA:
		return dr.AValue == 0
	case ModB, ModAB:
		return dr.BValue == 0
	default: // F, X, I
		return dr.AValue == 0 && dr.BValue == 0
	}
}

// djnDecrement decrements the field(s) of core[destAddr] selected by mod,
// per DJN's own grouping: A and BA decrement only the A field, B and AB
// decrement only the B field, and F, X and I decrement both.
func djnDecrement(core *Core, destAddr int, mod Modifier) {
	switch mod {
	case ModA, ModBA:
		core.SetAValue(destAddr, core.Get(destAddr).AValue-1)
	case ModB, ModAB:
		core.SetBValue(destAddr, core.Get(destAddr).BValue-1)
	default: // F, X, I
		core.SetAValue(destAddr, core.Get(destAddr).AValue-1)
		core.SetBValue(destAddr, core.Get(destAddr).BValue-1)
	}
}

func seqMatches(mod Modifier, sr, dr Instruction) bool {
	switch mod {
	case ModA:
		return sr.AValue == dr.AValue
	case ModB:
		return sr.BValue == dr.BValue
	case ModAB:
		return sr.AValue == dr.BValue
	case ModBA:
		return sr.BValue == dr.AValue
	case ModF:
		return sr.AValue == dr.AValue && sr.BValue == dr.BValue
	case ModX:
		return sr.AValue == dr.BValue && sr.BValue == dr.AValue
	default: // I
		return sr == dr
	}
}

func sneMatches(mod Modifier, sr, dr Instruction) bool {
	return !seqMatches(mod, sr, dr)
}

func sltMatches(mod Modifier, sr, dr Instruction) bool {
	switch mod {
	case ModA:
		return sr.AValue < dr.AValue
	case ModB:
		return sr.BValue < dr.BValue
	case ModAB:
		return sr.AValue < dr.BValue
	case ModBA:
		return sr.BValue < dr.AValue
	case ModF:
		return sr.AValue < dr.AValue && sr.BValue < dr.BValue
	case ModX:
		return sr.AValue < dr.BValue && sr.BValue < dr.AValue
	default: // I
		return instructionLess(sr, dr)
	}
}

// instructionLess gives ModI's SLT a well-defined total order over whole
// instructions, since there is no natural "less than" between two
// arbitrary opcodes: fields are compared in declaration order, most
// significant first.
func instructionLess(a, b Instruction) bool {
	if a.OpCode != b.OpCode {
		return a.OpCode < b.OpCode
	}
	if a.Modifier != b.Modifier {
		return a.Modifier < b.Modifier
	}
	if a.AValue != b.AValue {
		return a.AValue < b.AValue
	}
	if a.AMode != b.AMode {
		return a.AMode < b.AMode
	}
	if a.BValue != b.BValue {
		return a.BValue < b.BValue
	}
	return a.BMode < b.BMode
}
