package shell

import (
	"fmt"
	"strings"
)

// Kind classifies a command as handled by the shell itself or by a child
// process.
type Kind int

const (
	External Kind = iota
	Builtin
)

func (k Kind) String() string {
	switch k {
	case Builtin:
		return "builtin"
	default:
		return "external"
	}
}

// BuiltinOp identifies a shell builtin. The set is closed, callers dispatch on
// it with a switch.
type BuiltinOp int

const (
	BuiltinNone BuiltinOp = iota
	BuiltinExit
	BuiltinDebug
	BuiltinAliases
	BuiltinCd
	BuiltinHistory
)

// BuiltinOps lists every builtin in the order they're documented.
var BuiltinOps = []BuiltinOp{
	BuiltinExit,
	BuiltinDebug,
	BuiltinAliases,
	BuiltinCd,
	BuiltinHistory,
}

// Name returns the program name that invokes the builtin.
func (b BuiltinOp) Name() string {
	switch b {
	case BuiltinExit:
		return "exit"
	case BuiltinDebug:
		return "+debug"
	case BuiltinAliases:
		return "aliases"
	case BuiltinCd:
		return "cd"
	case BuiltinHistory:
		return "history"
	default:
		return ""
	}
}

// Short is a one line description of the builtin.
func (b BuiltinOp) Short() string {
	switch b {
	case BuiltinExit:
		return "Exit the shell with status 0."
	case BuiltinDebug:
		return "Toggle diagnostic output for every component."
	case BuiltinAliases:
		return "List the configured aliases."
	case BuiltinCd:
		return "Change the working directory."
	case BuiltinHistory:
		return "Display or clear the input history."
	default:
		return ""
	}
}

// Usage is a one line synopsis of the builtin.
func (b BuiltinOp) Usage() string {
	switch b {
	case BuiltinCd:
		return "cd DIR"
	case BuiltinHistory:
		return "history [-c]"
	default:
		return b.Name()
	}
}

// LookupBuiltin resolves a program name to its builtin, or BuiltinNone.
func LookupBuiltin(program string) BuiltinOp {
	switch program {
	case "exit":
		return BuiltinExit
	case "+debug":
		return BuiltinDebug
	case "aliases":
		return BuiltinAliases
	case "cd":
		return BuiltinCd
	case "history":
		return BuiltinHistory
	default:
		return BuiltinNone
	}
}

// Command is a single program invocation. Its classification is always
// computed from Program so it can't go stale after an alias rewrites it.
type Command struct {
	Program string
	Args    []string
}

// NewCommand creates a command from its tokens, the first token is the
// program.
func NewCommand(tokens []string) Command {
	return Command{
		Program: tokens[0],
		Args:    append([]string{}, tokens[1:]...),
	}
}

// Builtin returns the builtin the command invokes, if any.
func (c Command) Builtin() BuiltinOp {
	return LookupBuiltin(c.Program)
}

// Kind reports whether the command is a builtin or external program.
func (c Command) Kind() Kind {
	if c.Builtin() != BuiltinNone {
		return Builtin
	}
	return External
}

// Argv returns the program followed by its arguments.
func (c Command) Argv() []string {
	return append([]string{c.Program}, c.Args...)
}

func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// Operator joins two adjacent commands.
type Operator int

const (
	Pipe Operator = iota
	RedirectOverwrite
	RedirectAppend
)

// Token returns the input token for the operator.
func (o Operator) Token() string {
	switch o {
	case Pipe:
		return "|"
	case RedirectOverwrite:
		return ">"
	case RedirectAppend:
		return ">>"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

func (o Operator) String() string {
	switch o {
	case Pipe:
		return "Pipe"
	case RedirectOverwrite:
		return "RedirectOverwrite"
	case RedirectAppend:
		return "RedirectAppend"
	default:
		return o.Token()
	}
}

// IsRedirect is true for operators that send output to a file.
func (o Operator) IsRedirect() bool {
	return o == RedirectOverwrite || o == RedirectAppend
}

func operatorFromToken(tok string) (Operator, bool) {
	switch tok {
	case "|":
		return Pipe, true
	case ">":
		return RedirectOverwrite, true
	case ">>":
		return RedirectAppend, true
	default:
		return 0, false
	}
}

// CommandList is a parsed input line. Operators[i] sits between Commands[i]
// and Commands[i+1]. The command after a redirect operator names the file
// the output goes to.
type CommandList struct {
	Commands  []Command
	Operators []Operator
}

// String renders the list the way it would have been typed.
func (cl *CommandList) String() string {
	var parts []string
	for i, cmd := range cl.Commands {
		parts = append(parts, cmd.String())
		if i < len(cl.Operators) {
			parts = append(parts, cl.Operators[i].Token())
		}
	}
	for i := len(cl.Commands); i < len(cl.Operators); i++ {
		parts = append(parts, cl.Operators[i].Token())
	}
	return strings.Join(parts, " ")
}
