package main

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree("marsdbg")

	root.AddCommand(cmd.Command{
		Name:        "help",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        (*Debugger).cmdHelp,
	})
	root.AddCommand(cmd.Command{
		Name:  "load",
		Brief: "Load warrior source files into a fresh core",
		Description: "Parse each named Redcode source file into a warrior" +
			" and load all of them into a newly allocated core, replacing" +
			" any simulation already in progress.",
		Usage: "load <filename> [<filename> ...]",
		Data:  (*Debugger).cmdLoad,
	})
	root.AddCommand(cmd.Command{
		Name:  "step",
		Brief: "Execute one or more cycles",
		Description: "Execute the requested number of cycles, one" +
			" instruction per cycle, printing the cells touched by each.",
		Usage: "step [<count>]",
		Data:  (*Debugger).cmdStep,
	})
	root.AddCommand(cmd.Command{
		Name:  "run",
		Brief: "Run until one warrior remains or a cycle ceiling is hit",
		Description: "Execute cycles continuously until at most one" +
			" warrior has live processes, or until the cycle ceiling is" +
			" reached (0 means unbounded).",
		Usage: "run [<max cycles>]",
		Data:  (*Debugger).cmdRun,
	})
	root.AddCommand(cmd.Command{
		Name:        "warriors",
		Brief:       "List the warriors currently alive",
		Description: "Display each live warrior's name, process count, current pointer, and color.",
		Usage:       "warriors",
		Data:        (*Debugger).cmdWarriors,
	})
	root.AddCommand(cmd.Command{
		Name:  "dump",
		Brief: "Dump core cells",
		Description: "Display the contents of consecutive core cells" +
			" starting at the given address.",
		Usage: "dump <address> [<count>]",
		Data:  (*Debugger).cmdDump,
	})
	root.AddCommand(cmd.Command{
		Name:        "colors",
		Brief:       "Assign and display warrior colors",
		Description: "Assign a color from the built-in palette to each live warrior (up to the palette's size) and display the assignment.",
		Usage:       "colors",
		Data:        (*Debugger).cmdColors,
	})
	root.AddCommand(cmd.Command{
		Name:  "set",
		Brief: "Set a configuration variable",
		Description: "Set the value of a configuration variable. To see" +
			" the current values of all configuration variables, type" +
			" set without any arguments.",
		Usage: "set [<var> <value>]",
		Data:  (*Debugger).cmdSet,
	})
	root.AddCommand(cmd.Command{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:       "quit",
		Data:        (*Debugger).cmdQuit,
	})

	root.AddShortcut("l", "load")
	root.AddShortcut("s", "step")
	root.AddShortcut("r", "run")
	root.AddShortcut("w", "warriors")
	root.AddShortcut("d", "dump")
	root.AddShortcut("c", "colors")
	root.AddShortcut("q", "quit")
	root.AddShortcut("?", "help")

	cmds = root
}
