// Package redasm parses Redcode source text into warriors runnable by a
// mars.Core, and renders instructions back to their canonical text form.
package redasm

import (
	"strconv"
	"strings"

	"github.com/beevik/mars"
)

// A Parser converts Redcode source lines into a mars.Warrior. Its zero
// value is ready to use.
type Parser struct {
	// Trace, when non-nil, is called with a line-by-line account of
	// parsing decisions (opcode/modifier resolution, defaulting).
	Trace func(format string, args ...interface{})
}

func (p *Parser) trace(format string, args ...interface{}) {
	if p.Trace != nil {
		p.Trace(format, args...)
	}
}

// Parse converts the lines of one warrior's source into a Warrior. It
// returns (nil, nil) if the source contains no instructions (an empty
// warrior is silently dropped, not an error). It stops and returns the
// first line that fails to parse.
func (p *Parser) Parse(lines []string) (*mars.Warrior, error) {
	w := &mars.Warrior{}
	for i, raw := range lines {
		row := i + 1
		name, hasName, inst, hasInst, err := p.parseLine(row, raw)
		if err != nil {
			return nil, err
		}
		if hasName {
			w.Name = name
		}
		if hasInst {
			w.Instructions = append(w.Instructions, inst)
		}
	}
	if len(w.Instructions) == 0 {
		p.trace("parse: empty warrior dropped")
		return nil, nil
	}
	return w, nil
}

// ParseWarriors parses a batch of warrior source blobs independently,
// collecting every successfully parsed warrior and every parse error
// rather than stopping at the first failure.
func ParseWarriors(blobs [][]string) ([]*mars.Warrior, []error) {
	var warriors []*mars.Warrior
	var errs []error
	var p Parser
	for _, blob := range blobs {
		w, err := p.Parse(blob)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if w != nil {
			warriors = append(warriors, w)
		}
	}
	return warriors, errs
}

// parseLine parses one line of source, returning whichever of a name
// directive or an instruction it contains (a line may contain neither, if
// blank or an ordinary comment).
func (p *Parser) parseLine(row int, raw string) (name string, hasName bool, inst mars.Instruction, hasInst bool, err error) {
	l := newFstring(row, raw)
	l = l.consumeWhitespace()
	if l.isEmpty() {
		return "", false, mars.Instruction{}, false, nil
	}

	if l.startsWithChar(';') {
		rest := l.consume(1)
		word, after := rest.consumeWhile(alpha)
		if strings.EqualFold(word.String(), "name") {
			after = after.consumeWhitespace()
			return strings.TrimSpace(after.String()), true, mars.Instruction{}, false, nil
		}
		return "", false, mars.Instruction{}, false, nil
	}

	inst, err = p.parseInstruction(l)
	if err != nil {
		return "", false, mars.Instruction{}, false, err
	}
	return "", false, inst, true, nil
}

func (p *Parser) parseInstruction(l fstring) (mars.Instruction, error) {
	l = l.stripTrailingComment()

	opTok, rest := l.consumeWhile(alpha)
	if opTok.isEmpty() {
		return mars.Instruction{}, newParseError(l.row, l.full, ErrMalformedLine)
	}
	op, ok := mars.LookupOpCode(strings.ToUpper(opTok.String()))
	if !ok {
		return mars.Instruction{}, newParseError(l.row, l.full, ErrInvalidOpcode)
	}

	var mod mars.Modifier
	modExplicit := false
	if rest.startsWithChar('.') {
		rest = rest.consume(1)
		var modTok fstring
		modTok, rest = rest.consumeWhile(alpha)
		mod, ok = mars.LookupModifier(strings.ToUpper(modTok.String()))
		if !ok {
			return mars.Instruction{}, newParseError(l.row, l.full, ErrInvalidModifier)
		}
		modExplicit = true
	}
	rest = rest.consumeWhitespace()

	defaultMode := mars.Direct
	if op == mars.DAT {
		defaultMode = mars.Immediate
	}

	var (
		aMode, bMode           = defaultMode, defaultMode
		aValue, bValue         int
		haveA, haveB           bool
	)

	if !rest.isEmpty() {
		var opnd operand
		var err error
		opnd, rest, err = parseOperand(rest, defaultMode)
		if err != nil {
			return mars.Instruction{}, err
		}
		aMode, aValue, haveA = opnd.mode, opnd.value, true

		rest = rest.consumeWhitespace()
		if rest.startsWithChar(',') {
			rest = rest.consume(1).consumeWhitespace()
			opnd, rest, err = parseOperand(rest, defaultMode)
			if err != nil {
				return mars.Instruction{}, err
			}
			bMode, bValue, haveB = opnd.mode, opnd.value, true
		}
	}

	switch {
	case haveA && haveB:
		// both operands present, nothing to default

	case haveA && op == mars.DAT:
		// DAT-single-operand rule: the lone operand is the B-field.
		bMode, bValue = aMode, aValue
		aMode, aValue = defaultMode, 0

	case haveA:
		if !allowsMissingB(op) {
			return mars.Instruction{}, newParseError(l.row, l.full, ErrMissingBOperand)
		}
		bMode, bValue = mars.Direct, 0

	default:
		return mars.Instruction{}, newParseError(l.row, l.full, ErrMissingAOperand)
	}

	if !modExplicit {
		mod = defaultModifier(op, aMode, bMode)
	}

	p.trace("parse: %s.%s %s%d, %s%d (line %d)", op, mod, aMode, aValue, bMode, bValue, l.row)

	return mars.Instruction{
		OpCode:   op,
		Modifier: mod,
		AValue:   aValue,
		AMode:    aMode,
		BValue:   bValue,
		BMode:    bMode,
	}, nil
}

// allowsMissingB reports whether op may be written with only one operand
// (which becomes the A-field), leaving BVAL defaulted to 0.
func allowsMissingB(op mars.OpCode) bool {
	switch op {
	case mars.JMP, mars.SPL, mars.NOP:
		return true
	}
	return false
}

type operand struct {
	mode  mars.AddressingMode
	value int
}

// parseOperand parses one `[mode]value` operand, where mode is an optional
// leading addressing-mode glyph and value is a signed decimal integer.
func parseOperand(l fstring, defaultMode mars.AddressingMode) (operand, fstring, error) {
	mode := defaultMode
	if !l.isEmpty() {
		if m, ok := mars.LookupMode(l.str[0]); ok {
			mode = m
			l = l.consume(1)
		}
	}

	var signTok, digitsTok fstring
	if !l.isEmpty() && signChar(l.str[0]) {
		signTok, l = l.trunc(1), l.consume(1)
	}
	digitsTok, l = l.consumeWhile(decimal)
	if digitsTok.isEmpty() {
		return operand{}, l, newParseError(l.row, l.full, ErrIntegerParse)
	}

	text := signTok.String() + digitsTok.String()
	v, err := strconv.Atoi(text)
	if err != nil {
		return operand{}, l, newParseError(l.row, l.full, ErrIntegerParse)
	}

	l = l.consumeWhitespace()
	return operand{mode: mode, value: v}, l, nil
}

// defaultModifier implements the ICWS-88/94 default-modifier table used
// when a line's opcode carries no explicit .MOD suffix.
func defaultModifier(op mars.OpCode, aMode, bMode mars.AddressingMode) mars.Modifier {
	col := modifierColumn(aMode, bMode)
	switch op {
	case mars.DAT, mars.NOP:
		return mars.ModF

	case mars.MOV, mars.CMP, mars.SEQ, mars.SNE:
		switch col {
		case colAImmediate:
			return mars.ModAB
		case colBImmediate:
			return mars.ModB
		default:
			return mars.ModI
		}

	case mars.ADD, mars.SUB, mars.MUL, mars.DIV, mars.MOD:
		switch col {
		case colAImmediate:
			return mars.ModAB
		case colBImmediate:
			return mars.ModB
		default:
			return mars.ModF
		}

	case mars.SLT:
		switch col {
		case colAImmediate:
			return mars.ModAB
		default:
			return mars.ModB
		}

	default: // JMP, JMZ, JMN, DJN, SPL
		return mars.ModB
	}
}

type modifierCol int

const (
	colOther modifierCol = iota
	colAImmediate
	colBImmediate
)

func modifierColumn(aMode, bMode mars.AddressingMode) modifierCol {
	switch {
	case aMode == mars.Immediate:
		return colAImmediate
	case bMode == mars.Immediate:
		return colBImmediate
	default:
		return colOther
	}
}
