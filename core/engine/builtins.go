package engine

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/josephlewis42/fesh/core/shell"
	"github.com/pborman/getopt/v2"
)

// builtinCommand parses a builtin's flags, every builtin gets -h/--help.
type builtinCommand struct {
	op    shell.BuiltinOp
	flags *getopt.Set
	help  *bool
}

func newBuiltinCommand(op shell.BuiltinOp) *builtinCommand {
	flags := getopt.New()
	return &builtinCommand{
		op:    op,
		flags: flags,
		help:  flags.BoolLong("help", 'h', "show this help and exit"),
	}
}

// PrintHelp writes help for the builtin to the given writer.
func (b *builtinCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, b.op.Usage())
	fmt.Fprintln(w, b.op.Short())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	b.flags.PrintOptions(w)
}

// Run parses argv, if successful the callback is called with the remaining
// positional arguments.
func (b *builtinCommand) Run(e *Engine, argv []string, callback func(args []string) int) int {
	if err := b.flags.Getopt(argv, nil); err != nil {
		e.log.Errorf("%s: %v", b.op.Name(), err)
		b.PrintHelp(e.Stderr)
		return 1
	}

	if *b.help {
		b.PrintHelp(e.Stdout)
		return 0
	}

	return callback(b.flags.Args())
}

// runBuiltin executes a builtin command and returns its status.
func (e *Engine) runBuiltin(cmd shell.Command) int {
	op := cmd.Builtin()
	e.log.Debugf(component, "executing builtin: %s", cmd.Program)

	bc := newBuiltinCommand(op)
	argv := cmd.Argv()

	switch op {
	case shell.BuiltinExit:
		// exit never fails, whatever its arguments.
		e.exit(0)
		return 0

	case shell.BuiltinDebug:
		return bc.Run(e, argv, func([]string) int {
			enabled := e.log.Diagnostics().Toggle()
			e.log.Debugf(component, "debug logging enabled")
			if !enabled {
				fmt.Fprintln(e.Stderr, "debug logging disabled")
			}
			return 0
		})

	case shell.BuiltinAliases:
		return bc.Run(e, argv, e.builtinAliases)

	case shell.BuiltinCd:
		return bc.Run(e, argv, e.builtinCd)

	case shell.BuiltinHistory:
		clearHistory := bc.flags.Bool('c', "clear the history by deleting all entries")
		return bc.Run(e, argv, func([]string) int {
			return e.builtinHistory(*clearHistory)
		})

	case shell.BuiltinNone:
		e.log.Errorf("%s: not a builtin", cmd.Program)
		return 1
	}

	e.log.Errorf("%s: unhandled builtin %d", cmd.Program, op)
	return 1
}

func (e *Engine) builtinAliases([]string) int {
	names := make([]string, 0, len(e.aliases))
	for name := range e.aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(e.Stdout, "%s -> %s\n", name, e.aliases[name])
	}
	return 0
}

func (e *Engine) builtinCd(args []string) int {
	if len(args) == 0 {
		e.log.Errorf("cd: no argument provided")
		return 1
	}

	dir := args[0]
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		e.log.Errorf("cd: %q is not a directory", dir)
		return 1
	}

	if err := os.Chdir(dir); err != nil {
		e.log.Errorf("cd: failed to change directory: %v", err)
		return 1
	}

	if wd, err := os.Getwd(); err == nil {
		os.Setenv("PWD", wd)
	}

	e.log.Debugf(component, "changed directory to: %s", dir)
	return 0
}

func (e *Engine) builtinHistory(clearHistory bool) int {
	if e.history == nil {
		return 0
	}

	if clearHistory {
		if err := e.history.Clear(); err != nil {
			e.log.Errorf("history: %v", err)
			return 1
		}
		return 0
	}

	for i, line := range e.history.Entries() {
		fmt.Fprintf(e.Stdout, "% 5d  %s\n", i+1, line)
	}
	return 0
}
