// Package shell turns a line of input into commands joined by operators.
//
// The grammar is deliberately small: tokens are separated by whitespace, there
// is no quoting, and the only operators are "|", ">" and ">>". Each word is
// tilde and $VARIABLE expanded before it's added to its command.
package shell

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyInput is returned when the line has no tokens.
	ErrEmptyInput = errors.New("command input is empty")

	// ErrSyntax is returned when operators and commands don't line up.
	ErrSyntax = errors.New("syntax error")
)

// Parse splits line into a CommandList, expanding words against env.
func Parse(line string, env Env) (*CommandList, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}

	out := &CommandList{}
	var current []string
	flush := func() {
		if len(current) > 0 {
			out.Commands = append(out.Commands, NewCommand(current))
			current = nil
		}
	}

	for _, tok := range tokens {
		if op, ok := operatorFromToken(tok); ok {
			flush()
			out.Operators = append(out.Operators, op)
			continue
		}
		current = append(current, ExpandToken(tok, env))
	}
	flush()

	return out, nil
}

func syntaxErrorf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, a...))
}
