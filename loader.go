package mars

// LoadWarriors places a set of warriors into a freshly allocated core and
// returns the engine ready to run. Warrior order is shuffled before
// placement; each warrior after the first lands at roughly
// base + i*(size/len(warriors)), with a small jitter, so that warriors
// start out well separated without favoring any fixed arrangement.
//
// bases, if non-nil, gives an explicit base address for each warrior by
// original (pre-shuffle) index; a zero-length bases disables the override
// and falls back to pseudo-random placement for every warrior.
func LoadWarriors(cfg Config, warriors []*Warrior, bases []int) *MARS {
	core := NewCore(cfg.Size)
	m := NewWithCore(core)
	if len(warriors) == 0 {
		return m
	}

	order := core.rng.Perm(len(warriors))
	base := core.rng.Intn(core.Size())
	spacing := core.Size() / len(warriors)

	for slot, idx := range order {
		w := warriors[idx]
		var addr int
		if idx < len(bases) {
			addr = bases[idx]
		} else {
			addr = base + slot*spacing
			if slot > 0 {
				addr += core.rng.Intn(101) - 50
			}
		}
		core.LoadWarrior(w, addr)
	}
	return m
}
