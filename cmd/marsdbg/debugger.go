// Command marsdbg is an interactive front end for stepping a MARS
// simulation: load one or more Redcode warriors, single-step or run the
// core, and inspect warrior and cell state between cycles.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/mars"
	"github.com/beevik/mars/redasm"
	"github.com/beevik/term"
)

// palette is the built-in set of colors offered to "colors"; it has no
// meaning to the engine beyond being passed through AssignColors.
var palette = []mars.Color{
	{R: 220, G: 50, B: 50},
	{R: 50, G: 150, B: 220},
	{R: 60, G: 200, B: 90},
	{R: 230, G: 200, B: 40},
	{R: 200, G: 90, B: 220},
	{R: 240, G: 140, B: 40},
}

// A Debugger holds one running (or not-yet-loaded) simulation and the
// state needed to drive it from a command loop.
type Debugger struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	lastCmd     *cmd.Selection
	m           *mars.MARS
	settings    *settings
	cycles      int
}

// New creates a debugger with no simulation loaded.
func New() *Debugger {
	return &Debugger{settings: newSettings()}
}

// RunCommands reads commands from r and writes results to w until the
// input is exhausted or a command requests termination.
func (d *Debugger) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	d.input = bufio.NewScanner(r)
	d.output = bufio.NewWriter(w)
	d.interactive = interactive

	for {
		d.prompt()
		line, err := d.getLine()
		if err != nil {
			break
		}
		if err := d.processCommand(line); err != nil {
			break
		}
	}
}

func (d *Debugger) processCommand(line string) error {
	var c cmd.Selection
	if line != "" {
		var err error
		c, err = cmds.Lookup(line)
		switch {
		case errors.Is(err, cmd.ErrNotFound):
			d.println("command not found.")
			return nil
		case errors.Is(err, cmd.ErrAmbiguous):
			d.println("command is ambiguous.")
			return nil
		case err != nil:
			d.printf("ERROR: %v\n", err)
			return nil
		}
		d.lastCmd = &c
	} else if d.lastCmd != nil {
		c = *d.lastCmd
	}

	if c.Command == nil {
		return nil
	}
	if c.Command.Data == nil {
		return nil
	}
	handler := c.Command.Data.(func(*Debugger, cmd.Selection) error)
	return handler(d, c)
}

func (d *Debugger) prompt() {
	if !d.interactive {
		return
	}
	d.printf("mars> ")
	d.flush()
}

func (d *Debugger) getLine() (string, error) {
	if d.input.Scan() {
		return strings.TrimSpace(d.input.Text()), nil
	}
	if d.input.Err() != nil {
		return "", d.input.Err()
	}
	return "", io.EOF
}

func (d *Debugger) println(args ...any) {
	fmt.Fprintln(d.output, args...)
	d.flush()
}

func (d *Debugger) printf(format string, args ...any) {
	fmt.Fprintf(d.output, format, args...)
	d.flush()
}

func (d *Debugger) flush() {
	d.output.Flush()
}

func (d *Debugger) trace(format string, args ...interface{}) {
	if d.settings.Verbose {
		d.printf(format+"\n", args...)
	}
}

func (d *Debugger) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		d.printf("%s commands:\n", cmds.Title)
		for _, sub := range cmds.Commands {
			if sub.Brief != "" {
				d.printf("    %-10s %s\n", sub.Name, sub.Brief)
			}
		}
		return nil
	}
	sel, err := cmds.Lookup(strings.Join(c.Args, " "))
	if err != nil || sel.Command == nil {
		d.println("command not found.")
		return nil
	}
	if sel.Command.Usage != "" {
		d.printf("Usage: %s\n\n", sel.Command.Usage)
	}
	d.println(sel.Command.Description)
	return nil
}

func (d *Debugger) cmdLoad(c cmd.Selection) error {
	if len(c.Args) == 0 {
		d.println("usage: load <filename> [<filename> ...]")
		return nil
	}

	var blobs [][]string
	for _, filename := range c.Args {
		data, err := os.ReadFile(filename)
		if err != nil {
			d.printf("ERROR: %v\n", err)
			return nil
		}
		blobs = append(blobs, strings.Split(string(data), "\n"))
	}

	warriors, errs := redasm.ParseWarriors(blobs)
	for _, err := range errs {
		d.printf("ERROR: %v\n", err)
	}
	if len(warriors) == 0 {
		d.println("no warriors loaded.")
		return nil
	}

	d.m = mars.LoadWarriors(mars.Config{}, warriors, nil)
	if d.settings.Verbose {
		d.m.Trace = d.trace
	}
	d.cycles = 0
	d.printf("loaded %d warrior(s) into a core of %d cells.\n", len(warriors), d.m.Core().Size())
	return nil
}

func (d *Debugger) cmdStep(c cmd.Selection) error {
	if d.m == nil {
		d.println("no simulation loaded; use 'load' first.")
		return nil
	}
	n := d.settings.StepCount
	if len(c.Args) > 0 {
		v, err := strconv.Atoi(c.Args[0])
		if err != nil {
			d.printf("ERROR: %v\n", err)
			return nil
		}
		n = v
	}
	for i := 0; i < n; i++ {
		written := d.m.Cycle()
		d.cycles++
		if written == nil {
			d.println("no warriors remain alive.")
			return nil
		}
		d.printf("cycle %d: wrote %v\n", d.cycles, written)
	}
	return nil
}

func (d *Debugger) cmdRun(c cmd.Selection) error {
	if d.m == nil {
		d.println("no simulation loaded; use 'load' first.")
		return nil
	}
	max := d.settings.RunMax
	if len(c.Args) > 0 {
		v, err := strconv.Atoi(c.Args[0])
		if err != nil {
			d.printf("ERROR: %v\n", err)
			return nil
		}
		max = v
	}
	for max == 0 || d.cycles < max {
		if d.m.WarriorCount() <= 1 {
			break
		}
		if d.m.Cycle() == nil {
			break
		}
		d.cycles++
	}
	d.printf("stopped after %d cycles with %d warrior(s) alive.\n", d.cycles, d.m.WarriorCount())
	return nil
}

func (d *Debugger) cmdWarriors(c cmd.Selection) error {
	if d.m == nil {
		d.println("no simulation loaded; use 'load' first.")
		return nil
	}
	for i := 0; i < d.m.WarriorCount(); i++ {
		color := d.m.Color(i)
		d.printf("%-16s processes=%-4d pointer=%-6d color=#%02x%02x%02x\n",
			d.m.WarriorName(i), d.m.ProcessCount(i), d.m.CurrentPointer(i),
			color.R, color.G, color.B)
	}
	return nil
}

func (d *Debugger) cmdDump(c cmd.Selection) error {
	if d.m == nil {
		d.println("no simulation loaded; use 'load' first.")
		return nil
	}
	if len(c.Args) == 0 {
		d.println("usage: dump <address> [<count>]")
		return nil
	}
	addr, err := strconv.Atoi(c.Args[0])
	if err != nil {
		d.printf("ERROR: %v\n", err)
		return nil
	}
	n := d.settings.DumpCells
	if len(c.Args) > 1 {
		n, err = strconv.Atoi(c.Args[1])
		if err != nil {
			d.printf("ERROR: %v\n", err)
			return nil
		}
	}
	for i := 0; i < n; i++ {
		cell := d.m.Peek(addr + i)
		d.printf("%6d  %s\n", d.m.Core().Normalize(addr+i), redasm.Render(cell))
	}
	return nil
}

func (d *Debugger) cmdColors(c cmd.Selection) error {
	if d.m == nil {
		d.println("no simulation loaded; use 'load' first.")
		return nil
	}
	d.m.Core().AssignColors(palette)
	return d.cmdWarriors(c)
}

func (d *Debugger) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		d.println("variables:")
		d.settings.Display(d.output)
	case 1:
		d.println("usage: set <var> <value>")
	default:
		key, value := strings.ToLower(c.Args[0]), strings.Join(c.Args[1:], " ")
		var err error
		switch d.settings.Kind(key) {
		case reflect.Invalid:
			err = fmt.Errorf("setting %q not found", key)
		case reflect.Bool:
			var b bool
			b, err = strconv.ParseBool(value)
			if err == nil {
				err = d.settings.Set(key, b)
			}
		case reflect.Int:
			var n int
			n, err = strconv.Atoi(value)
			if err == nil {
				err = d.settings.Set(key, n)
			}
		default:
			err = d.settings.Set(key, value)
		}
		if err != nil {
			d.printf("ERROR: %v\n", err)
			return nil
		}
		if d.m != nil {
			if d.settings.Verbose {
				d.m.Trace = d.trace
			} else {
				d.m.Trace = nil
			}
		}
	}
	return nil
}

func (d *Debugger) cmdQuit(c cmd.Selection) error {
	return errors.New("exiting program")
}

func main() {
	d := New()
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	d.RunCommands(os.Stdin, os.Stdout, interactive)
}
