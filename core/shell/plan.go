package shell

// RedirectMode selects how a redirect target is written.
type RedirectMode int

const (
	Overwrite RedirectMode = iota
	Append
)

func (m RedirectMode) String() string {
	if m == Append {
		return "append"
	}
	return "overwrite"
}

// Redirect sends a stage's output to a file.
type Redirect struct {
	Mode   RedirectMode
	Target string
}

// Stage is a command to run along with where its output goes.
type Stage struct {
	Command Command

	// Pipe is set if the output feeds the next stage.
	Pipe bool

	// Redirect is set if the output is written to a file. The stage is run to
	// completion before the next one starts.
	Redirect *Redirect
}

// Stages resolves the operators into explicit per-command output routing.
//
// The command after a redirect is the target path, it must be a single word.
// An operator following a target is ignored and the next command reads the
// shell's stdin.
func (cl *CommandList) Stages() ([]Stage, error) {
	switch {
	case len(cl.Commands) == 0 && len(cl.Operators) == 0:
		return nil, ErrEmptyInput
	case len(cl.Operators) >= len(cl.Commands):
		return nil, syntaxErrorf("operator without a command")
	case len(cl.Operators) != len(cl.Commands)-1:
		return nil, syntaxErrorf("command without an operator")
	}

	var stages []Stage
	for i := 0; i < len(cl.Commands); i++ {
		stage := Stage{Command: cl.Commands[i]}

		if i < len(cl.Operators) {
			switch op := cl.Operators[i]; op {
			case Pipe:
				stage.Pipe = true
			case RedirectOverwrite, RedirectAppend:
				target := cl.Commands[i+1]
				if len(target.Args) > 0 {
					return nil, syntaxErrorf("unexpected %q after redirect target %q", target.Args[0], target.Program)
				}
				mode := Overwrite
				if op == RedirectAppend {
					mode = Append
				}
				stage.Redirect = &Redirect{Mode: mode, Target: target.Program}
				i++
			}
		}

		stages = append(stages, stage)
	}

	return stages, nil
}
