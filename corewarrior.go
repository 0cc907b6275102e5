package mars

// A CoreWarrior is a loaded, running instance of a Warrior: a name and a
// FIFO queue of process pointers (instruction pointers into the owning
// Core), with a cursor identifying which process runs next. It exclusively
// owns its process queue.
type CoreWarrior struct {
	name      string
	size      int // core size, used to normalize pointers without a back-reference to Core
	processes []int
	current   int
	color     Color
}

func newCoreWarrior(name string, coreSize, initialAddress int) *CoreWarrior {
	cw := &CoreWarrior{name: name, size: coreSize, color: White}
	cw.processes = append(cw.processes, cw.normalize(initialAddress))
	return cw
}

func (cw *CoreWarrior) normalize(v int) int {
	v %= cw.size
	if v < 0 {
		v += cw.size
	}
	return v
}

// Name returns the warrior's name.
func (cw *CoreWarrior) Name() string {
	return cw.name
}

// ProcessCount returns the number of live processes belonging to the
// warrior.
func (cw *CoreWarrior) ProcessCount() int {
	return len(cw.processes)
}

func (cw *CoreWarrior) processCount() int {
	return len(cw.processes)
}

// CurrentPointer returns the instruction pointer of the process currently
// executing.
func (cw *CoreWarrior) CurrentPointer() int {
	return cw.processes[cw.current]
}

// SetCurrentPointer updates the instruction pointer of the currently
// executing process, normalizing it.
func (cw *CoreWarrior) SetCurrentPointer(v int) {
	cw.processes[cw.current] = cw.normalize(v)
}

// nextProcess advances the cursor to the next process in the FIFO queue.
func (cw *CoreWarrior) nextProcess() {
	cw.current = (cw.current + 1) % len(cw.processes)
}

// AddProcess inserts a new process pointer immediately after the current
// one, then advances current to it. The scheduler rotation that follows an
// SPL does not call nextProcess(), so the newly-forked process is the one
// that runs on the warrior's next turn.
func (cw *CoreWarrior) AddProcess(addr int) {
	addr = cw.normalize(addr)
	i := cw.current + 1
	cw.processes = append(cw.processes, 0)
	copy(cw.processes[i+1:], cw.processes[i:])
	cw.processes[i] = addr
	cw.current = i
}

// KillCurrentProcess removes the currently executing process from the
// queue. If it was not the first entry, current is decremented so that a
// following nextProcess() lands on what would have been the next process;
// if it was the first entry, current is set to the last slot so that the
// following modular increment wraps back around to zero.
func (cw *CoreWarrior) KillCurrentProcess() {
	i := cw.current
	cw.processes = append(cw.processes[:i:i], cw.processes[i+1:]...)
	switch {
	case i != 0:
		cw.current--
	default:
		cw.current = len(cw.processes) - 1
	}
}
