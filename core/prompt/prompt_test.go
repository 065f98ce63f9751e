package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/josephlewis42/fesh/core/config"
	"github.com/josephlewis42/fesh/core/shell"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompt(t *testing.T, cfg config.Prompt, cwd string) *Prompt {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/ada/src/fesh/.git/HEAD", []byte("ref: refs/heads/main\n"), 0644))
	require.NoError(t, fs.MkdirAll("/home/ada/src/fesh/core", 0755))

	p := New(cfg, fs, shell.NewMapEnv("HOME=/home/ada", "USER=ada"))
	p.getwd = func() (string, error) { return cwd, nil }
	return p
}

func TestRender(t *testing.T) {
	cases := map[string]struct {
		cfg  config.Prompt
		cwd  string
		want string
	}{
		"text only": {
			cfg:  config.Prompt{Text: "$ "},
			cwd:  "/home/ada",
			want: "$ ",
		},
		"cwd home": {
			cfg:  config.Prompt{Text: "$ ", ShowCwd: true},
			cwd:  "/home/ada",
			want: "~ $ ",
		},
		"cwd under home": {
			cfg:  config.Prompt{Text: "$ ", ShowCwd: true},
			cwd:  "/home/ada/docs",
			want: "~/docs $ ",
		},
		"cwd outside home": {
			cfg:  config.Prompt{Text: "$ ", ShowCwd: true},
			cwd:  "/home/adam",
			want: "/home/adam $ ",
		},
		"username": {
			cfg:  config.Prompt{Text: "> ", ShowUsername: true, ShowCwd: true},
			cwd:  "/tmp",
			want: "ada@/tmp > ",
		},
		"branch": {
			cfg:  config.Prompt{Text: "$ ", ShowCwd: true, ShowBranch: true},
			cwd:  "/home/ada/src/fesh/core",
			want: "~/src/fesh/core (main) $ ",
		},
		"branch outside repository": {
			cfg:  config.Prompt{Text: "$ ", ShowCwd: true, ShowBranch: true},
			cwd:  "/home/ada",
			want: "~ $ ",
		},
		"branch only": {
			cfg:  config.Prompt{Text: "$ ", ShowBranch: true},
			cwd:  "/home/ada/src/fesh",
			want: "(main) $ ",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			p := newTestPrompt(t, tc.cfg, tc.cwd)

			assert.Equal(t, tc.want, p.Render())
		})
	}
}

func TestRender_getwdFails(t *testing.T) {
	p := newTestPrompt(t, config.Prompt{Text: "$ ", ShowCwd: true, ShowBranch: true}, "")
	p.getwd = func() (string, error) { return "", errors.New("deleted") }

	assert.Equal(t, "$ ", p.Render())
}

func TestRender_color(t *testing.T) {
	p := newTestPrompt(t, config.Prompt{Text: "$ ", Color: "blue", ShowCwd: true}, "/home/ada")
	require.NotNil(t, p.color)
	p.color.EnableColor()

	got := p.Render()

	assert.True(t, strings.HasPrefix(got, "\x1b[34;1m~"), "%q", got)
	assert.True(t, strings.HasSuffix(got, "\x1b[0m $ "), "%q", got)
}

func TestRender_noColor(t *testing.T) {
	p := newTestPrompt(t, config.Prompt{Text: "$ ", ShowCwd: true}, "/home/ada")

	assert.Nil(t, p.color)
	assert.Equal(t, "~ $ ", p.Render())
}

func TestParseHead(t *testing.T) {
	cases := []struct {
		head string
		want string
	}{
		{head: "ref: refs/heads/main\n", want: "main"},
		{head: "ref: refs/heads/feature/pipes\n", want: "feature/pipes"},
		{head: "3f4a1c9e2b7d8f0a1b2c3d4e5f60718293a4b5c6\n", want: "3f4a1c9"},
		{head: "", want: ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, parseHead(tc.head), "head %q", tc.head)
	}
}
