// Package sink writes redirected command output to files.
package sink

import (
	"os"

	"github.com/spf13/afero"
)

const fileMode = 0644

// Writer materializes redirect output on a filesystem.
type Writer struct {
	fs afero.Fs
}

// New creates a Writer backed by fs.
func New(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// NewOsWriter creates a Writer for the real filesystem.
func NewOsWriter() *Writer {
	return New(afero.NewOsFs())
}

// Overwrite replaces the contents of path with content, creating the file if
// needed.
func (w *Writer) Overwrite(path, content string) (int, error) {
	return w.write(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, content)
}

// Append adds content to the end of path, creating the file if needed.
func (w *Writer) Append(path, content string) (int, error) {
	return w.write(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, content)
}

func (w *Writer) write(path string, flag int, content string) (n int, err error) {
	fd, err := w.fs.OpenFile(path, flag, fileMode)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := fd.Close(); err == nil {
			err = closeErr
		}
	}()

	return fd.WriteString(content)
}
