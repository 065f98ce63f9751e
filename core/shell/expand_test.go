package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandToken(t *testing.T) {
	env := NewMapEnv("HOME=/home/u", "A=$B", "B=b", "A_1=x", "EMPTY=")

	cases := []struct {
		tok      string
		expected string
	}{
		{"plain", "plain"},
		{"~", "/home/u"},
		{"~/x", "/home/u/x"},
		{"~x", "~x"},
		{"a~/x", "a~/x"},
		{"$FOO", "$FOO"},
		{"$B", "b"},
		{"$A", "$B"}, // no recursive expansion
		{"$A_1.txt", "x.txt"},
		{"$A_", "$A_"},
		{"$", "$"},
		{"$$", "$$"},
		{"pre$B-post", "preb-post"},
		{"$EMPTY", ""},
		{"$B$B", "bb"},
		{"~/$B", "/home/u/b"},
		{"$HOME/..", "/home/u/.."},
	}

	for _, tc := range cases {
		t.Run(tc.tok, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExpandToken(tc.tok, env))
		})
	}
}

func TestExpandTilde_noHome(t *testing.T) {
	env := NewMapEnv()

	assert.Equal(t, "~", ExpandTilde("~", env))
	assert.Equal(t, "~/x", ExpandTilde("~/x", env))
}

func TestExpandTilde_substitutedTextNotRescanned(t *testing.T) {
	env := NewMapEnv("HOME=/h/$B", "B=b")

	assert.Equal(t, "/h/$B/x", ExpandToken("~/x", env))
}

func TestOSEnv(t *testing.T) {
	t.Setenv("FESH_TEST_VAR", "value")

	assert.Equal(t, "value", ExpandToken("$FESH_TEST_VAR", OSEnv{}))
	assert.Equal(t, "value", Getenv(OSEnv{}, "FESH_TEST_VAR"))
}
