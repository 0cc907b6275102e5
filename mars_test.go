package mars

import "testing"

func newTestCore(size int, instructions ...Instruction) (*Core, *MARS) {
	c := NewCore(size)
	w := &Warrior{Name: "test", Instructions: instructions}
	c.LoadWarrior(w, 0)
	return c, NewWithCore(c)
}

func TestImp(t *testing.T) {
	c, m := newTestCore(8000, Instruction{OpCode: MOV, Modifier: ModI, AMode: Direct, AValue: 0, BMode: Direct, BValue: 1})

	before := c.Get(1)
	if before == c.Get(0) {
		t.Fatalf("expected core[1] to differ from core[0] before cycle")
	}

	m.Cycle()

	if c.Get(1) != c.Get(0) {
		t.Errorf("exp: core[1] == core[0], got: %+v != %+v", c.Get(1), c.Get(0))
	}
	if got := c.Warrior(0).CurrentPointer(); got != 1 {
		t.Errorf("exp: current pointer 1, got: %d", got)
	}
}

func TestDatKillsWithPredecrementSideEffect(t *testing.T) {
	c, m := newTestCore(8000,
		Instruction{OpCode: DAT, Modifier: ModF, AMode: Direct, AValue: 1, BMode: BPredecrement, BValue: 1},
		Instruction{OpCode: DAT, Modifier: ModF, AMode: Direct, AValue: 1, BMode: Direct, BValue: 1},
	)

	m.Cycle()

	if got := c.Get(1).BValue; got != 0 {
		t.Errorf("exp: core[1].b_value == 0, got: %d", got)
	}
	if got := c.WarriorsCount(); got != 0 {
		t.Errorf("exp: warriors_count == 0, got: %d", got)
	}
}

func TestSplFork(t *testing.T) {
	c, m := newTestCore(8000, Instruction{OpCode: SPL, Modifier: ModB, AMode: Direct, AValue: 0, BMode: Direct, BValue: 0})

	if got := c.Warrior(0).ProcessCount(); got != 1 {
		t.Fatalf("exp: process count 1 before cycle, got: %d", got)
	}

	m.Cycle()

	if got := c.Warrior(0).ProcessCount(); got != 2 {
		t.Errorf("exp: process count 2 after cycle 1, got: %d", got)
	}

	m.Cycle()
	if got := c.Warrior(0).CurrentPointer(); got != 0 {
		t.Errorf("exp: current pointer 0 after cycle 2 (forked child), got: %d", got)
	}
}

func TestDwarf(t *testing.T) {
	c, m := newTestCore(8000,
		Instruction{OpCode: ADD, Modifier: ModAB, AMode: Immediate, AValue: 4, BMode: Direct, BValue: 3},
		Instruction{OpCode: MOV, Modifier: ModI, AMode: Direct, AValue: 2, BMode: BIndirect, BValue: 2},
		Instruction{OpCode: JMP, Modifier: ModB, AMode: Direct, AValue: -2, BMode: Direct, BValue: 0},
		Instruction{OpCode: DAT, Modifier: ModF, AMode: Direct, AValue: 0, BMode: Direct, BValue: 0},
	)

	m.Cycle()
	if got := c.Get(3).BValue; got != 4 {
		t.Errorf("exp: core[3].b_value == 4 after cycle 1, got: %d", got)
	}

	m.Cycle()
	if c.Get(7) != c.Get(3) {
		t.Errorf("exp: core[7] == core[3] after cycle 2, got: %+v != %+v", c.Get(7), c.Get(3))
	}

	m.Cycle()
	if got := c.Warrior(0).CurrentPointer(); got != 0 {
		t.Errorf("exp: current pointer 0 after cycle 3, got: %d", got)
	}

	m.Cycle()
	if got := c.Get(3).BValue; got != 8 {
		t.Errorf("exp: core[3].b_value == 8 after cycle 4, got: %d", got)
	}

	m.Cycle()
	if c.Get(11) != c.Get(3) {
		t.Errorf("exp: core[11] == core[3] after cycle 5, got: %+v != %+v", c.Get(11), c.Get(3))
	}
}

func TestCoreWraparoundLoad(t *testing.T) {
	c := NewCore(8000)
	w := &Warrior{Name: "wrap", Instructions: []Instruction{
		{OpCode: NOP, Modifier: ModF, AMode: Direct, BMode: Direct},
		{OpCode: DAT, Modifier: ModF, AMode: Immediate, BMode: Immediate},
	}}
	cw := c.LoadWarrior(w, c.Size()-1)

	if c.Get(c.Size()-1).OpCode != NOP {
		t.Errorf("exp: core[size-1] holds instruction 0, got opcode %s", c.Get(c.Size()-1).OpCode)
	}
	if c.Get(0).OpCode != DAT {
		t.Errorf("exp: core[0] holds instruction 1, got opcode %s", c.Get(0).OpCode)
	}
	if got := cw.CurrentPointer(); got != c.Size()-1 {
		t.Errorf("exp: first process pointer == size-1, got: %d", got)
	}
}

func TestRotationAfterKill(t *testing.T) {
	c := NewCore(8000)
	wa := c.LoadWarrior(&Warrior{Name: "A"}, 0)
	c.LoadWarrior(&Warrior{Name: "B"}, 100)

	wa.KillCurrentProcess()
	c.RotateWarrior(false)

	if got := c.WarriorsCount(); got != 1 {
		t.Errorf("exp: warriors_count == 1, got: %d", got)
	}
	if got := c.CurrentWarrior().Name(); got != "B" {
		t.Errorf("exp: current warrior B, got: %s", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	c := NewCore(8000)
	for _, v := range []int{-1, 0, 1, 7999, 8000, 8001, -8000, -8001} {
		n := c.Normalize(v)
		if n2 := c.Normalize(n); n2 != n {
			t.Errorf("normalize(%d) = %d, normalize(%d) = %d, want idempotent", v, n, n, n2)
		}
	}
}

func TestModularWrap(t *testing.T) {
	c, _ := newTestCore(8000, Instruction{OpCode: NOP})
	size := c.Size()
	for k := -2; k <= 2; k++ {
		if c.Get(size+k) != c.Get(k) {
			t.Errorf("core[size+%d] != core[%d]", k, k)
		}
	}
	if c.Get(-1) != c.Get(size-1) {
		t.Errorf("core[-1] != core[size-1]")
	}
}

func TestDivideByZeroKillsProcess(t *testing.T) {
	c, m := newTestCore(8000,
		Instruction{OpCode: DIV, Modifier: ModAB, AMode: Immediate, AValue: 0, BMode: Direct, BValue: 1},
		Instruction{OpCode: DAT, Modifier: ModF},
	)
	m.Cycle()
	if got := c.WarriorsCount(); got != 0 {
		t.Errorf("exp: warriors_count == 0 after divide by zero, got: %d", got)
	}
}

func TestDivideByZeroCommitsFieldsBeforeTheZeroDivisor(t *testing.T) {
	c, m := newTestCore(8000,
		Instruction{OpCode: DIV, Modifier: ModF, AMode: Direct, AValue: 2, BMode: Direct, BValue: 1},
		Instruction{OpCode: NOP, Modifier: ModF, AMode: Direct, AValue: 10, BMode: Direct, BValue: 20},
		Instruction{OpCode: DAT, Modifier: ModF, AMode: Direct, AValue: 2, BMode: Direct, BValue: 0},
	)

	m.Cycle()

	if got := c.Get(1).AValue; got != 5 {
		t.Errorf("exp: core[1].a_value == 5 (committed before the zero divisor), got: %d", got)
	}
	if got := c.Get(1).BValue; got != 20 {
		t.Errorf("exp: core[1].b_value == 20 (unwritten after the zero divisor), got: %d", got)
	}
	if got := c.WarriorsCount(); got != 0 {
		t.Errorf("exp: warriors_count == 0 after divide by zero, got: %d", got)
	}
}
