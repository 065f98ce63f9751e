package input

import (
	"testing"

	"github.com/josephlewis42/fesh/core/shell"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompleter(t *testing.T) *FilenameCompleter {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, path := range []string{
		"/work/main.go",
		"/work/Makefile",
		"/work/.hidden",
		"/work/core/shell.go",
		"/home/ada/notes.txt",
	} {
		require.NoError(t, afero.WriteFile(fs, path, nil, 0644))
	}
	require.NoError(t, fs.MkdirAll("/work/cmd", 0755))

	env := shell.NewMapEnv("HOME=/home/ada")
	return NewFilenameCompleter(fs, env, func() (string, error) { return "/work", nil })
}

func complete(c *FilenameCompleter, line string) ([]string, int) {
	candidates, length := c.Do([]rune(line), len([]rune(line)))
	var out []string
	for _, candidate := range candidates {
		out = append(out, string(candidate))
	}
	return out, length
}

func TestFilenameCompleter(t *testing.T) {
	cases := map[string]struct {
		line       string
		want       []string
		wantLength int
	}{
		"relative prefix": {
			line:       "cat ma",
			want:       []string{"in.go "},
			wantLength: 2,
		},
		"directory gets slash": {
			line:       "cd co",
			want:       []string{"re/"},
			wantLength: 2,
		},
		"all entries skip hidden": {
			line:       "ls ",
			want:       []string{"Makefile ", "cmd/", "core/", "main.go "},
			wantLength: 0,
		},
		"hidden with dot": {
			line:       "cat .h",
			want:       []string{"idden "},
			wantLength: 2,
		},
		"nested": {
			line:       "vi core/sh",
			want:       []string{"ell.go "},
			wantLength: 2,
		},
		"absolute": {
			line:       "cat /work/M",
			want:       []string{"akefile "},
			wantLength: 1,
		},
		"home": {
			line:       "less ~/no",
			want:       []string{"tes.txt "},
			wantLength: 2,
		},
		"program position": {
			line:       "ma",
			want:       []string{"in.go "},
			wantLength: 2,
		},
		"no match": {
			line:       "cat zz",
			want:       nil,
			wantLength: 2,
		},
		"missing directory": {
			line:       "cat nope/x",
			want:       nil,
			wantLength: 0,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			c := newTestCompleter(t)

			got, length := complete(c, tc.line)

			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantLength, length)
		})
	}
}

func TestFilenameCompleter_cursorInMiddle(t *testing.T) {
	c := newTestCompleter(t)
	line := []rune("cat ma | wc")

	candidates, length := c.Do(line, 6)

	require.Len(t, candidates, 1)
	assert.Equal(t, "in.go ", string(candidates[0]))
	assert.Equal(t, 2, length)
}
