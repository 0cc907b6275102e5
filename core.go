package mars

import "math/rand"

// DefaultCoreSize is the number of cells in a Core created without an
// explicit size.
const DefaultCoreSize = 8000

// Core is the fixed-size circular memory array shared by all warriors. It
// exclusively owns its cells and the list of live warriors; every write to
// a cell's operand values, or to a process pointer, is normalized to
// [0, Size()) by construction, never left to the caller.
type Core struct {
	size         int
	cells        []Instruction
	warriors     []*CoreWarrior
	warriorIndex int
	rng          *rand.Rand
}

// NewCore allocates a Core of the given size, with every cell set to the
// canonical "kill" instruction DAT.F $0, $0. A size of 0 or less falls back
// to DefaultCoreSize.
func NewCore(size int) *Core {
	if size <= 0 {
		size = DefaultCoreSize
	}
	c := &Core{
		size:  size,
		cells: make([]Instruction, size),
		rng:   rand.New(rand.NewSource(1)),
	}
	for i := range c.cells {
		c.cells[i] = killCell
	}
	return c
}

// Size returns the number of cells in the core.
func (c *Core) Size() int {
	return c.size
}

// Normalize reduces any signed integer to the range [0, Size()).
func (c *Core) Normalize(v int) int {
	v %= c.size
	if v < 0 {
		v += c.size
	}
	return v
}

// Get returns a value copy of the cell at addr (wrapping modularly).
func (c *Core) Get(addr int) Instruction {
	return c.cells[c.Normalize(addr)]
}

// Set overwrites the cell at addr with inst, normalizing both of its
// operand values. Raw whole-cell writes always go through this path so
// that the normalization invariant is total.
func (c *Core) Set(addr int, inst Instruction) {
	inst.AValue = c.Normalize(inst.AValue)
	inst.BValue = c.Normalize(inst.BValue)
	c.cells[c.Normalize(addr)] = inst
}

// SetAValue updates only the A-operand value of the cell at addr.
func (c *Core) SetAValue(addr, v int) {
	c.cells[c.Normalize(addr)].AValue = c.Normalize(v)
}

// SetBValue updates only the B-operand value of the cell at addr.
func (c *Core) SetBValue(addr, v int) {
	c.cells[c.Normalize(addr)].BValue = c.Normalize(v)
}

// Slice returns the contents of cells [a, b), wrapping across the end of
// the core if necessary. If a == b, the result is empty.
func (c *Core) Slice(a, b int) []Instruction {
	a, b = c.Normalize(a), c.Normalize(b)
	if a == b {
		return nil
	}
	if a < b {
		out := make([]Instruction, b-a)
		copy(out, c.cells[a:b])
		return out
	}
	out := make([]Instruction, 0, c.size-a+b)
	out = append(out, c.cells[a:]...)
	out = append(out, c.cells[:b]...)
	return out
}

// Snapshot returns a read-only copy of the entire cell array, so a
// renderer can diff core state between cycles without aliasing into live
// engine memory.
func (c *Core) Snapshot() []Instruction {
	out := make([]Instruction, c.size)
	copy(out, c.cells)
	return out
}

// LoadWarrior creates a CoreWarrior with one process pointing at the
// normalized base address, appends it to the warrior list, and writes the
// warrior's instructions into the core starting at that address.
func (c *Core) LoadWarrior(w *Warrior, base int) *CoreWarrior {
	base = c.Normalize(base)
	cw := newCoreWarrior(w.Name, c.size, base)
	c.warriors = append(c.warriors, cw)
	for i, inst := range w.Instructions {
		c.Set(base+i, inst)
	}
	return cw
}

// CurrentWarrior returns the warrior whose turn it is to run, or nil if no
// warrior is alive.
func (c *Core) CurrentWarrior() *CoreWarrior {
	if len(c.warriors) == 0 {
		return nil
	}
	return c.warriors[c.warriorIndex]
}

// WarriorsCount returns the number of warriors still alive in the core.
func (c *Core) WarriorsCount() int {
	return len(c.warriors)
}

// Warrior returns the i'th live warrior, for read-only inspection by a
// renderer.
func (c *Core) Warrior(i int) *CoreWarrior {
	return c.warriors[i]
}

// RotateWarrior advances the two-level scheduler by one step: if the
// current warrior has no processes left it is removed from the warrior
// list (using the same index-bias trick as process removal, so that the
// following modular increment lands correctly); otherwise the current
// warrior's next_process pointer advances, unless skipInnerAdvance is set.
// Either way, warriorIndex then advances to the next warrior in
// round-robin order.
//
// skipInnerAdvance is set by the engine when the step just executed was an
// SPL: add_process already moved the process cursor to the slot that
// should run next, so this rotation's own advance would overshoot it.
func (c *Core) RotateWarrior(skipInnerAdvance bool) {
	if len(c.warriors) == 0 {
		return
	}
	cw := c.warriors[c.warriorIndex]
	switch {
	case cw.processCount() == 0:
		c.removeCurrentWarrior()
	case !skipInnerAdvance:
		cw.nextProcess()
	}
	if len(c.warriors) == 0 {
		c.warriorIndex = 0
		return
	}
	c.warriorIndex = (c.warriorIndex + 1) % len(c.warriors)
}

func (c *Core) removeCurrentWarrior() {
	i := c.warriorIndex
	c.warriors = append(c.warriors[:i:i], c.warriors[i+1:]...)
	switch {
	case len(c.warriors) == 0:
		c.warriorIndex = 0
	case i != 0:
		c.warriorIndex--
	default:
		c.warriorIndex = len(c.warriors) - 1
	}
}
