package mars

// Config holds the parameters needed to construct a MARS engine.
type Config struct {
	// Size is the number of cells in the core. Zero falls back to
	// DefaultCoreSize.
	Size int
}

// MARS is the execution engine: a Core plus the single-step cycle logic
// that advances it. It holds no state of its own beyond the core and an
// optional trace hook, mirroring how the engines in this family tend to be
// thin wrappers around their memory.
type MARS struct {
	core  *Core
	Trace func(format string, args ...interface{})
}

// New constructs a MARS engine with a freshly allocated core.
func New(cfg Config) *MARS {
	return &MARS{core: NewCore(cfg.Size)}
}

// NewWithCore wraps an already-populated Core, for callers that build the
// core themselves (tests, or a loader that wants fine control over
// placement before any cycle runs).
func NewWithCore(core *Core) *MARS {
	return &MARS{core: core}
}

// Core exposes the underlying memory for inspection by a renderer or
// front end. The engine still owns all mutation; callers should treat
// the returned value as read-mostly outside of Cycle.
func (m *MARS) Core() *Core {
	return m.core
}

// WarriorCount returns the number of warriors still alive.
func (m *MARS) WarriorCount() int {
	return m.core.WarriorsCount()
}

// WarriorName returns the name of the i'th live warrior.
func (m *MARS) WarriorName(i int) string {
	return m.core.Warrior(i).Name()
}

// ProcessCount returns the number of live processes belonging to the i'th
// warrior.
func (m *MARS) ProcessCount(i int) int {
	return m.core.Warrior(i).ProcessCount()
}

// CurrentPointer returns the instruction pointer of the i'th warrior's
// currently executing process.
func (m *MARS) CurrentPointer(i int) int {
	return m.core.Warrior(i).CurrentPointer()
}

// Color returns the color tag assigned to the i'th warrior.
func (m *MARS) Color(i int) Color {
	return m.core.Color(i)
}

// Peek returns the instruction currently stored at addr.
func (m *MARS) Peek(addr int) Instruction {
	return m.core.Get(addr)
}

func (m *MARS) trace(format string, args ...interface{}) {
	if m.Trace != nil {
		m.Trace(format, args...)
	}
}

// Cycle runs a single step of the two-level scheduler: it fetches the
// current warrior's current process, evaluates both operands, advances the
// process's pointer, executes the instruction, and rotates the scheduler to
// the next warrior. It returns the set of core addresses touched during the
// step, in the order they were touched, for a renderer to highlight. A nil
// result means no warrior was alive to run.
func (m *MARS) Cycle() []int {
	core := m.core
	if core.WarriorsCount() == 0 {
		return nil
	}
	written := newWrittenSet()

	cw := core.CurrentWarrior()
	ip := cw.CurrentPointer()
	ir := core.Get(ip)

	// P3: evaluate the A operand.
	aEval := evalPointer(core, ip, ir.AMode, ir.AValue)
	if aEval.predecAt >= 0 {
		written.add(aEval.predecAt)
	}
	srcAddr := core.Normalize(ip + aEval.displacement)
	sr := core.Get(srcAddr)
	if addr, ok := aEval.applyPostinc(core); ok {
		written.add(addr)
	}

	// P4: evaluate the B operand.
	bEval := evalPointer(core, ip, ir.BMode, ir.BValue)
	if bEval.predecAt >= 0 {
		written.add(bEval.predecAt)
	}
	destAddr := core.Normalize(ip + bEval.displacement)
	dr := core.Get(destAddr)
	if addr, ok := bEval.applyPostinc(core); ok {
		written.add(addr)
	}
	written.add(destAddr)

	m.trace("cycle: warrior=%s ip=%d op=%s.%s a=%s%d b=%s%d", cw.Name(), ip, ir.OpCode, ir.Modifier, ir.AMode, ir.AValue, ir.BMode, ir.BValue)

	// P5: advance the process pointer. Any jump below overwrites this.
	cw.SetCurrentPointer(ip + 1)

	// P6: execute.
	m.execute(cw, ir, sr, dr, ip, srcAddr, destAddr)

	// P7: rotate the scheduler to the next warrior. SPL already moved the
	// process cursor to the slot that should run next, so the rotation
	// must not advance it a second time.
	core.RotateWarrior(ir.OpCode == SPL)

	return written.list()
}
