package mars

// A Warrior is a parsed Redcode program: a name and its ordered
// instructions, not yet placed into a Core.
type Warrior struct {
	Name         string
	Instructions []Instruction
}
