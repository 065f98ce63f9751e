package core

import (
	"errors"
	"io"
	"os"
	"sort"

	"github.com/josephlewis42/fesh/core/config"
	"github.com/josephlewis42/fesh/core/engine"
	"github.com/josephlewis42/fesh/core/input"
	"github.com/josephlewis42/fesh/core/logger"
	"github.com/josephlewis42/fesh/core/shell"
)

const component = "Shell"

// LineReader is the source of input lines.
type LineReader interface {
	// Readline shows prompt and returns the next line. io.EOF ends the
	// session, input.ErrInterrupt discards the current line.
	Readline(prompt string) (string, error)
}

// Prompter renders the prompt shown before each line.
type Prompter interface {
	Render() string
}

// StaticPrompt is a Prompter that always renders the same text.
type StaticPrompt string

// Render implements Prompter.
func (p StaticPrompt) Render() string {
	return string(p)
}

// Shell is the read, parse, execute loop.
type Shell struct {
	cfg    *config.Configuration
	input  LineReader
	prompt Prompter
	engine *engine.Engine
	env    shell.Env
	log    *logger.Logger
}

// NewShell creates a shell. Aliases are taken from the configuration.
func NewShell(cfg *config.Configuration, in LineReader, prompt Prompter, eng *engine.Engine, log *logger.Logger) *Shell {
	return &Shell{
		cfg:    cfg,
		input:  in,
		prompt: prompt,
		engine: eng,
		env:    shell.OSEnv{},
		log:    log,
	}
}

// Init exports the configured environment variables into the process so
// they're seen by expansion and inherited by children.
func (s *Shell) Init() error {
	keys := make([]string, 0, len(s.cfg.Env))
	for key := range s.cfg.Env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := os.Setenv(key, s.cfg.Env[key]); err != nil {
			return err
		}
		s.log.Debugf(component, "exported %s", key)
	}
	return nil
}

// Run reads and executes lines until input is closed. The returned status is
// 0 on end of input.
func (s *Shell) Run() int {
	for {
		line, err := s.input.Readline(s.prompt.Render())

		switch {
		case err == io.EOF:
			return 0 // Input closed, quit.

		case errors.Is(err, input.ErrInterrupt):
			continue

		case err != nil:
			s.log.Errorf("error reading input: %v", err)
			return 1

		case len(line) == 0:
			continue // empty line

		default:
			s.RunLine(line)
		}
	}
}

// RunLine parses and executes a single line.
func (s *Shell) RunLine(line string) {
	list, err := shell.Parse(line, s.env)
	switch {
	case errors.Is(err, shell.ErrEmptyInput):
		return
	case err != nil:
		s.log.Errorf("%v", err)
		return
	}

	s.log.Debugf(component, "parsed input: %s", list)
	list.ApplyAliases(s.cfg.Aliases)
	s.log.Debugf(component, "after alias substitution: %s", list)

	s.engine.Execute(list)
}
