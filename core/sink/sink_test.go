package sink

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out.txt", []byte("previous content\n"), 0644))
	w := New(fs)

	t.Run("Overwrite truncates", func(t *testing.T) {
		n, err := w.Overwrite("/out.txt", "new\n")
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		got, err := afero.ReadFile(fs, "/out.txt")
		require.NoError(t, err)
		assert.Equal(t, "new\n", string(got))
	})

	t.Run("Append preserves", func(t *testing.T) {
		n, err := w.Append("/out.txt", "more\n")
		require.NoError(t, err)
		assert.Equal(t, 5, n)

		got, err := afero.ReadFile(fs, "/out.txt")
		require.NoError(t, err)
		assert.Equal(t, "new\nmore\n", string(got))
	})

	t.Run("Append creates", func(t *testing.T) {
		_, err := w.Append("/fresh.txt", "a")
		require.NoError(t, err)

		got, err := afero.ReadFile(fs, "/fresh.txt")
		require.NoError(t, err)
		assert.Equal(t, "a", string(got))
	})

	t.Run("Overwrite creates", func(t *testing.T) {
		_, err := w.Overwrite("/fresh2.txt", "b")
		require.NoError(t, err)

		got, err := afero.ReadFile(fs, "/fresh2.txt")
		require.NoError(t, err)
		assert.Equal(t, "b", string(got))
	})
}

func TestWriter_missingDirectory(t *testing.T) {
	w := NewOsWriter()
	path := filepath.Join(t.TempDir(), "does", "not", "exist.txt")

	_, err := w.Overwrite(path, "x")
	assert.Error(t, err)

	_, err = w.Append(path, "x")
	assert.Error(t, err)
}

func TestWriter_osFs(t *testing.T) {
	w := NewOsWriter()
	path := filepath.Join(t.TempDir(), "out.txt")

	_, err := w.Overwrite(path, "one\n")
	require.NoError(t, err)
	_, err = w.Append(path, "two\n")
	require.NoError(t, err)

	got, err := afero.ReadFile(afero.NewOsFs(), path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(got))
}
