package redasm

import (
	"testing"

	"github.com/beevik/mars"
)

func parseOne(t *testing.T, lines []string) *mars.Warrior {
	t.Helper()
	var p Parser
	w, err := p.Parse(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w == nil {
		t.Fatalf("expected a warrior, got nil")
	}
	return w
}

func TestParseImp(t *testing.T) {
	w := parseOne(t, []string{";name Imp", "MOV.I $0, $1"})
	if w.Name != "Imp" {
		t.Errorf("exp: name Imp, got: %s", w.Name)
	}
	if len(w.Instructions) != 1 {
		t.Fatalf("exp: 1 instruction, got: %d", len(w.Instructions))
	}
	inst := w.Instructions[0]
	if inst.OpCode != mars.MOV || inst.Modifier != mars.ModI {
		t.Errorf("exp: MOV.I, got: %s.%s", inst.OpCode, inst.Modifier)
	}
	if inst.AValue != 0 || inst.BValue != 1 {
		t.Errorf("exp: operands 0,1, got: %d,%d", inst.AValue, inst.BValue)
	}
}

func TestParseDatSingleOperand(t *testing.T) {
	w := parseOne(t, []string{"DAT #5"})
	inst := w.Instructions[0]
	if inst.AMode != mars.Immediate || inst.AValue != 0 {
		t.Errorf("exp: a-field defaulted, got mode=%s value=%d", inst.AMode, inst.AValue)
	}
	if inst.BMode != mars.Immediate || inst.BValue != 5 {
		t.Errorf("exp: b-field holds the lone operand, got mode=%s value=%d", inst.BMode, inst.BValue)
	}
}

func TestParseMissingBAllowedForJmp(t *testing.T) {
	w := parseOne(t, []string{"JMP $-2"})
	inst := w.Instructions[0]
	if inst.BMode != mars.Direct || inst.BValue != 0 {
		t.Errorf("exp: defaulted b-field $0, got mode=%s value=%d", inst.BMode, inst.BValue)
	}
}

func TestParseMissingBRejectedForMov(t *testing.T) {
	var p Parser
	_, err := p.Parse([]string{"MOV $0"})
	if err == nil {
		t.Fatalf("expected missing-b-operand error")
	}
}

func TestParseInvalidOpcode(t *testing.T) {
	var p Parser
	_, err := p.Parse([]string{"ZAP $0, $1"})
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("exp: *ParseError, got: %T", err)
	}
	if pe.Err != ErrInvalidOpcode {
		t.Errorf("exp: ErrInvalidOpcode, got: %v", pe.Err)
	}
}

func TestParseDefaultModifierTable(t *testing.T) {
	cases := []struct {
		line string
		want mars.Modifier
	}{
		{"MOV #0, $1", mars.ModAB},
		{"MOV $0, #1", mars.ModB},
		{"MOV $0, $1", mars.ModI},
		{"ADD #0, $1", mars.ModAB},
		{"ADD $0, $1", mars.ModF},
		{"SLT #0, $1", mars.ModAB},
		{"SLT $0, $1", mars.ModB},
		{"JMP $0, $1", mars.ModB},
		{"DAT $0, $1", mars.ModF},
	}
	for _, c := range cases {
		w := parseOne(t, []string{c.line})
		if got := w.Instructions[0].Modifier; got != c.want {
			t.Errorf("%q: exp modifier %s, got %s", c.line, c.want, got)
		}
	}
}

func TestParseEmptyWarriorDropped(t *testing.T) {
	var p Parser
	w, err := p.Parse([]string{"; just a comment", "   "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != nil {
		t.Fatalf("exp: nil warrior for empty source, got: %+v", w)
	}
}

func TestParseRoundTrip(t *testing.T) {
	inst := mars.Instruction{
		OpCode: mars.SLT, Modifier: mars.ModAB,
		AMode: mars.APostincrement, AValue: -3,
		BMode: mars.BPredecrement, BValue: 12,
	}
	line := Render(inst)
	var p Parser
	w, err := p.Parse([]string{line})
	if err != nil {
		t.Fatalf("unexpected error rendering/reparsing %q: %v", line, err)
	}
	if got := w.Instructions[0]; got != inst {
		t.Errorf("round-trip mismatch for %q: exp %+v, got %+v", line, inst, got)
	}
}
