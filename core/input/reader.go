// Package input reads lines from the terminal with editing, history and
// filename completion.
package input

import (
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/fesh/core/config"
	"github.com/josephlewis42/fesh/core/logger"
	"github.com/josephlewis42/fesh/core/shell"
	"github.com/spf13/afero"
)

const component = "InputReader"

// ErrInterrupt is returned by Readline when the user presses Ctrl-C.
var ErrInterrupt = readline.ErrInterrupt

// Reader is the interactive line source of the shell.
type Reader struct {
	rl      *readline.Instance
	log     *logger.Logger
	history *History
}

// New creates a Reader reading from the process' terminal.
func New(cfg *config.Configuration, fs afero.Fs, env shell.Env, log *logger.Logger) (*Reader, error) {
	history := NewHistory(fs, cfg.HistoryPath(env), log)

	rlConfig := &readline.Config{
		Stdin:                  readline.NewCancelableStdin(os.Stdin),
		Stdout:                 os.Stdout,
		Stderr:                 os.Stderr,
		HistoryFile:            history.Path(),
		DisableAutoSaveHistory: true,
		HistorySearchFold:      true,
		AutoComplete:           NewFilenameCompleter(fs, env, os.Getwd),
		VimMode:                cfg.Readline.VimMode(),
	}

	if err := rlConfig.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		return nil, err
	}

	return &Reader{
		rl:      rl,
		log:     log,
		history: history,
	}, nil
}

// Readline shows prompt and reads one line. Surrounding whitespace is
// removed and non-empty lines are added to the history. It returns io.EOF
// when input is closed and ErrInterrupt on Ctrl-C.
func (r *Reader) Readline(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err != nil {
		if err != io.EOF && err != ErrInterrupt {
			r.log.Debugf(component, "readline failed: %v", err)
		}
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}

	r.history.Add(line)
	if err := r.rl.SaveHistory(line); err != nil {
		r.log.Debugf(component, "history can't be saved: %v", err)
	}
	return line, nil
}

// Entries returns the input history, oldest first.
func (r *Reader) Entries() []string {
	return r.history.Entries()
}

// Clear removes all history.
func (r *Reader) Clear() error {
	r.rl.ResetHistory()
	return r.history.Clear()
}

// Close restores the terminal.
func (r *Reader) Close() error {
	return r.rl.Close()
}
