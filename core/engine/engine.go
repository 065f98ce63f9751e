// Package engine runs parsed command lists as chains of operating system
// processes.
package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"unicode/utf8"

	"github.com/josephlewis42/fesh/core/logger"
	"github.com/josephlewis42/fesh/core/shell"
	"github.com/josephlewis42/fesh/core/sink"
)

const component = "Engine"

// SinkWriter materializes redirected output.
type SinkWriter interface {
	Overwrite(path, content string) (int, error)
	Append(path, content string) (int, error)
}

var _ SinkWriter = (*sink.Writer)(nil)

// History is the input history the history builtin shows.
type History interface {
	Entries() []string
	Clear() error
}

// ExitFunc terminates the shell.
type ExitFunc func(code int)

// Engine executes command lists. It isn't safe for concurrent use, the shell
// runs one line at a time.
type Engine struct {
	// Stdin, Stdout and Stderr are inherited by child processes when a stage
	// isn't connected to a pipe or file.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	aliases map[string]string
	sink    SinkWriter
	log     *logger.Logger
	exit    ExitFunc
	history History
}

// Option configures an Engine.
type Option func(*Engine)

// WithIO sets the streams used by the first and last stages and by builtins.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *Engine) {
		e.Stdin = stdin
		e.Stdout = stdout
		e.Stderr = stderr
	}
}

// WithSink replaces the writer used for redirects.
func WithSink(w SinkWriter) Option {
	return func(e *Engine) {
		e.sink = w
	}
}

// WithExit replaces os.Exit for the exit builtin.
func WithExit(exit ExitFunc) Option {
	return func(e *Engine) {
		e.exit = exit
	}
}

// WithHistory connects the history builtin to the input history.
func WithHistory(h History) Option {
	return func(e *Engine) {
		e.history = h
	}
}

// New creates an Engine. The alias table is only read.
func New(aliases map[string]string, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		aliases: aliases,
		sink:    sink.NewOsWriter(),
		log:     log,
		exit:    os.Exit,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Execute runs the list. A leading builtin is run on its own and the rest of
// the list is ignored. Failures are reported to the logger, they never stop
// the shell.
func (e *Engine) Execute(list *shell.CommandList) {
	e.log.Debugf(component, "executing command list: %s", list)

	if len(list.Commands) > 0 && list.Commands[0].Kind() == shell.Builtin {
		cmd := list.Commands[0]
		status := e.runBuiltin(cmd)
		e.log.Debugf(component, "builtin %s exited with status %d", cmd.Program, status)
		return
	}

	stages, err := list.Stages()
	if err != nil {
		e.log.Errorf("%v", err)
		return
	}

	e.wait(e.start(stages))
}

type child struct {
	name string
	cmd  *exec.Cmd
}

// start launches stages left to right and returns the children that need to
// be waited on. Redirect stages run to completion here. The first failure
// stops the walk, children started before it are still returned.
func (e *Engine) start(stages []shell.Stage) (children []child) {
	// Read end of the previous stage's pipe, owned until the next stage starts.
	var prevStdout *os.File
	defer func() {
		closeFile(prevStdout)
	}()

	for _, stage := range stages {
		name := stage.Command.Program
		cmd := exec.Command(name, stage.Command.Args...)
		cmd.Stderr = e.Stderr

		stdin := prevStdout
		prevStdout = nil
		if stdin != nil {
			cmd.Stdin = stdin
		} else {
			cmd.Stdin = e.Stdin
		}

		switch {
		case stage.Redirect != nil:
			err := e.redirect(cmd, stage.Redirect)
			closeFile(stdin)
			if err != nil {
				e.log.Errorf("%v", err)
				return children
			}
			continue

		case stage.Pipe:
			e.log.Debugf(component, "executing pipe from <%s>", name)
			r, w, err := os.Pipe()
			if err != nil {
				closeFile(stdin)
				e.log.Errorf("failed to create pipe for <%s>: %v", name, err)
				return children
			}
			cmd.Stdout = w

			startErr := cmd.Start()
			w.Close()
			closeFile(stdin)
			if startErr != nil {
				r.Close()
				e.log.Errorf("failed to spawn child process <%s>: %v", name, startErr)
				return children
			}
			prevStdout = r

		default:
			cmd.Stdout = e.Stdout

			startErr := cmd.Start()
			closeFile(stdin)
			if startErr != nil {
				e.log.Errorf("failed to spawn child process <%s>: %v", name, startErr)
				return children
			}
		}

		e.log.Debugf(component, "spawned <%s> pid %d", name, cmd.Process.Pid)
		children = append(children, child{name: name, cmd: cmd})
	}

	return children
}

// redirect runs cmd to completion and writes its output to the target.
func (e *Engine) redirect(cmd *exec.Cmd, redirect *shell.Redirect) error {
	e.log.Debugf(component, "executing redirect %s to <%s>", redirect.Mode, redirect.Target)

	out := &bytes.Buffer{}
	cmd.Stdout = out
	if err := cmd.Run(); err != nil && !isExitStatus(err) {
		return fmt.Errorf("error while redirect %s: %w", redirect.Mode, err)
	}

	content := string(bytes.ToValidUTF8(out.Bytes(), []byte(string(utf8.RuneError))))

	var err error
	switch redirect.Mode {
	case shell.Overwrite:
		_, err = e.sink.Overwrite(redirect.Target, content)
	case shell.Append:
		_, err = e.sink.Append(redirect.Target, content)
	}
	if err != nil {
		return fmt.Errorf("error writing to file <%s>: %w", redirect.Target, err)
	}
	return nil
}

// wait reaps children in the order they were started. Exit statuses aren't
// reported, only failures to wait.
func (e *Engine) wait(children []child) {
	for _, c := range children {
		err := c.cmd.Wait()
		switch {
		case err == nil:
			e.log.Debugf(component, "<%s> exited", c.name)
		case isExitStatus(err):
			e.log.Debugf(component, "<%s> %v", c.name, err)
		default:
			e.log.Errorf("failed to wait for child process <%s>: %v", c.name, err)
		}
	}
}

func isExitStatus(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

func closeFile(f *os.File) {
	if f != nil {
		f.Close()
	}
}
