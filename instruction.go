package mars

// An Instruction is the immutable record of one Redcode instruction: an
// opcode, a modifier, and two operands, each a value plus an addressing
// mode. Operand values are signed in source form; once copied into a Core
// cell they are normalized to [0, core size).
type Instruction struct {
	OpCode   OpCode
	Modifier Modifier
	AValue   int
	AMode    AddressingMode
	BValue   int
	BMode    AddressingMode
}

// killCell is the canonical "kill" instruction (DAT.F $0, $0) used to
// populate a freshly allocated Core.
var killCell = Instruction{OpCode: DAT, Modifier: ModF, AMode: Direct, BMode: Direct}
