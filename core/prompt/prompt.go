// Package prompt renders the text shown before each input line.
package prompt

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/josephlewis42/fesh/core/config"
	"github.com/josephlewis42/fesh/core/shell"
	"github.com/spf13/afero"
)

var colors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// Prompt renders the prompt described by the configuration.
type Prompt struct {
	cfg   config.Prompt
	fs    afero.Fs
	env   shell.Env
	color *color.Color

	getwd func() (string, error)
}

// New creates a prompt. The filesystem is used to find the git branch of the
// working directory.
func New(cfg config.Prompt, fs afero.Fs, env shell.Env) *Prompt {
	p := &Prompt{
		cfg:   cfg,
		fs:    fs,
		env:   env,
		getwd: os.Getwd,
	}

	if attr, ok := colors[cfg.Color]; ok {
		p.color = color.New(attr, color.Bold)
	}

	return p
}

// Render returns the prompt for the current state of the process:
// "[user@][cwd][ (branch)] text".
func (p *Prompt) Render() string {
	var decorations strings.Builder

	if p.cfg.ShowUsername {
		if user := p.username(); user != "" {
			decorations.WriteString(user)
			decorations.WriteString("@")
		}
	}

	cwd, err := p.getwd()
	if err != nil {
		cwd = ""
	}

	if p.cfg.ShowCwd && cwd != "" {
		decorations.WriteString(p.shortenHome(cwd))
	}

	if p.cfg.ShowBranch && cwd != "" {
		if branch := FindBranch(p.fs, cwd); branch != "" {
			decorations.WriteString(" (")
			decorations.WriteString(branch)
			decorations.WriteString(")")
		}
	}

	if decorations.Len() == 0 {
		return p.cfg.Text
	}

	return p.paint(strings.TrimSpace(decorations.String())) + " " + p.cfg.Text
}

func (p *Prompt) paint(s string) string {
	if p.color == nil {
		return s
	}
	return p.color.Sprint(s)
}

func (p *Prompt) username() string {
	if user := shell.Getenv(p.env, "USER"); user != "" {
		return user
	}
	return shell.Getenv(p.env, "LOGNAME")
}

// shortenHome replaces the home directory prefix of dir with "~".
func (p *Prompt) shortenHome(dir string) string {
	home := strings.TrimSuffix(shell.Getenv(p.env, shell.EnvHome), "/")
	switch {
	case home == "":
		return dir
	case dir == home:
		return "~"
	case strings.HasPrefix(dir, home+"/"):
		return "~" + dir[len(home):]
	default:
		return dir
	}
}

// FindBranch returns the checked out branch of the git repository containing
// dir, the abbreviated commit if HEAD is detached, or "" outside a repository.
func FindBranch(fs afero.Fs, dir string) string {
	dir = filepath.Clean(dir)
	for {
		head, err := afero.ReadFile(fs, filepath.Join(dir, ".git", "HEAD"))
		if err == nil {
			return parseHead(string(head))
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func parseHead(head string) string {
	head = strings.TrimSpace(head)
	if ref := strings.TrimPrefix(head, "ref: "); ref != head {
		return strings.TrimPrefix(ref, "refs/heads/")
	}

	if len(head) > 7 {
		return head[:7]
	}
	return head
}
