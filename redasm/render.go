package redasm

import (
	"fmt"

	"github.com/beevik/mars"
)

// Render formats an instruction in its canonical text form, the same
// grammar Parse accepts: "OP.MOD amode aval, bmode bval". Because the
// modifier is always written explicitly, re-parsing the result never
// depends on the default-modifier table and always yields an equal
// instruction.
func Render(inst mars.Instruction) string {
	return fmt.Sprintf("%s.%s %s%d, %s%d",
		inst.OpCode, inst.Modifier,
		inst.AMode, inst.AValue,
		inst.BMode, inst.BValue,
	)
}

// RenderWarrior renders every instruction of w, one per line, preceded by
// a ";name" directive line carrying the warrior's name.
func RenderWarrior(w *mars.Warrior) []string {
	lines := make([]string, 0, len(w.Instructions)+1)
	lines = append(lines, ";name "+w.Name)
	for _, inst := range w.Instructions {
		lines = append(lines, Render(inst))
	}
	return lines
}
