package mars

// pointerEval is the result of evaluating one operand's addressing mode:
// the displacement from the instruction pointer to the effective cell, plus
// a deferred post-increment to apply once the caller has finished copying
// the operand's register (so postinc never corrupts the value it just
// read).
type pointerEval struct {
	displacement int
	predecAt     int // normalized core address touched by a predecrement, or -1
	postincAt    int // core address needing the deferred increment, or -1
	postincIsA   bool
}

// evalPointer computes the displacement for one operand given its
// addressing mode and raw value. A pre-decrement side effect is applied
// immediately, since the decremented cell is not otherwise observed this
// step; a post-increment is reported but deferred, so the caller can apply
// it after copying the operand's register.
func evalPointer(core *Core, ip int, mode AddressingMode, value int) pointerEval {
	switch mode {
	case Immediate:
		return pointerEval{predecAt: -1, postincAt: -1}
	case Direct:
		return pointerEval{displacement: value, predecAt: -1, postincAt: -1}
	}

	probe := ip + value
	switch mode {
	case APredecrement:
		core.SetAValue(probe, core.Get(probe).AValue-1)
		return pointerEval{
			displacement: value + core.Get(probe).AValue,
			predecAt:     core.Normalize(probe),
			postincAt:    -1,
		}
	case BPredecrement:
		core.SetBValue(probe, core.Get(probe).BValue-1)
		return pointerEval{
			displacement: value + core.Get(probe).BValue,
			predecAt:     core.Normalize(probe),
			postincAt:    -1,
		}
	case APostincrement:
		return pointerEval{displacement: value + core.Get(probe).AValue, predecAt: -1, postincAt: probe, postincIsA: true}
	case BPostincrement:
		return pointerEval{displacement: value + core.Get(probe).BValue, predecAt: -1, postincAt: probe, postincIsA: false}
	case AIndirect:
		return pointerEval{displacement: value + core.Get(probe).AValue, predecAt: -1, postincAt: -1}
	default: // BIndirect
		return pointerEval{displacement: value + core.Get(probe).BValue, predecAt: -1, postincAt: -1}
	}
}

// applyPostinc performs the deferred post-increment, if this evaluation
// carries one, and returns the normalized address it touched.
func (ev pointerEval) applyPostinc(core *Core) (addr int, applied bool) {
	if ev.postincAt < 0 {
		return 0, false
	}
	if ev.postincIsA {
		core.SetAValue(ev.postincAt, core.Get(ev.postincAt).AValue+1)
	} else {
		core.SetBValue(ev.postincAt, core.Get(ev.postincAt).BValue+1)
	}
	return core.Normalize(ev.postincAt), true
}
