package input

import (
	"testing"

	"github.com/josephlewis42/fesh/core/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistory_loadsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/fesh/history", []byte("ls\n\n  echo hi | wc  \n"), 0600))

	h := NewHistory(fs, "/data/fesh/history", logger.Nop())

	assert.Equal(t, "/data/fesh/history", h.Path())
	assert.Equal(t, []string{"ls", "echo hi | wc"}, h.Entries())
}

func TestNewHistory_createsDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()

	h := NewHistory(fs, "/data/fesh/history", logger.Nop())

	assert.Empty(t, h.Entries())
	exists, err := afero.DirExists(fs, "/data/fesh")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNewHistory_unwritableDirectory(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	h := NewHistory(fs, "/data/fesh/history", logger.Nop())

	assert.Equal(t, "", h.Path())
	h.Add("ls")
	assert.Equal(t, []string{"ls"}, h.Entries())
	assert.NoError(t, h.Clear())
	assert.Empty(t, h.Entries())
}

func TestHistory_clear(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/history", []byte("ls\npwd\n"), 0600))
	h := NewHistory(fs, "/data/history", logger.Nop())
	h.Add("whoami")

	require.NoError(t, h.Clear())

	assert.Empty(t, h.Entries())
	contents, err := afero.ReadFile(fs, "/data/history")
	require.NoError(t, err)
	assert.Empty(t, contents)
}
